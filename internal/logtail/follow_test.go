package logtail

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func appendFile(t *testing.T, path, data string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(data); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func poll(t *testing.T, f *Follower) []string {
	t.Helper()
	var got []string
	if err := f.Poll(func(line string) { got = append(got, line) }); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	return got
}

func TestOpenThenFollow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	appendFile(t, path, "one\ntwo\nthree\n")

	lines, f, err := Open(path, 2)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if want := []string{"two", "three"}; !reflect.DeepEqual(lines, want) {
		t.Fatalf("Open lines = %v, want %v", lines, want)
	}
	if f.Offset() != int64(len("one\ntwo\nthree\n")) {
		t.Fatalf("Offset = %d, want end of file", f.Offset())
	}

	if got := poll(t, f); got != nil {
		t.Fatalf("Poll with no new data = %v, want nothing", got)
	}

	appendFile(t, path, "four\n\r\npar")
	if got, want := poll(t, f), []string{"four"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll = %v, want %v", got, want)
	}

	appendFile(t, path, "tial\r\n")
	if got, want := poll(t, f), []string{"partial"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll = %v, want %v", got, want)
	}
}

func TestFollowerRestartsAfterTruncation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	appendFile(t, path, "old line one\nold line two\n")

	_, f, err := Open(path, 10)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := os.WriteFile(path, []byte("new\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got, want := poll(t, f), []string{"new"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll after rotation = %v, want %v", got, want)
	}
}

func TestFollowerMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "later.log")

	lines, f, err := Open(path, 10)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if lines != nil {
		t.Fatalf("Open lines = %v, want nil", lines)
	}
	if got := poll(t, f); got != nil {
		t.Fatalf("Poll on missing file = %v, want nothing", got)
	}

	appendFile(t, path, "created\n")
	if got, want := poll(t, f), []string{"created"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Poll = %v, want %v", got, want)
	}
}
