package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	// Create a temporary log file
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	// Write 10 lines of content
	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestTail_SkipsBlankLinesAndCarriageReturns(t *testing.T) {
	input := "[INFO] one\r\n\n   \n[WARNING] two\r\n[ERROR] three\n"

	got, err := Tail(strings.NewReader(input), 2)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	want := []string{"[WARNING] two", "[ERROR] three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tail() = %q, want %q", got, want)
	}

	got, err = Tail(strings.NewReader(input), 0)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	want = []string{"[INFO] one", "[WARNING] two", "[ERROR] three"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tail() = %q, want %q", got, want)
	}
}

func TestTail_EmptyInput(t *testing.T) {
	got, err := Tail(strings.NewReader(""), 5)
	if err != nil {
		t.Fatalf("Tail() error = %v", err)
	}
	if got != nil {
		t.Fatalf("Tail() = %v, want nil", got)
	}
}

func TestTail_LineTooLong(t *testing.T) {
	input := strings.Repeat("x", maxLineBytes+1)
	if _, err := Tail(strings.NewReader(input), 5); err == nil {
		t.Fatal("Tail() returned nil error for an oversized line")
	}
}
