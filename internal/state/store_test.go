package state

import (
	"fmt"
	"testing"
)

func TestStore_PreservesEmissionOrder(t *testing.T) {
	for _, n := range []int{0, 1, 100000} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			var s Store
			for i := range n {
				if err := s.Append(i%7, Priority(i%9), fmt.Sprintf("msg %d", i)); err != nil {
					t.Fatalf("Append(%d) returned error: %v", i, err)
				}
			}

			snap := s.Snapshot()
			if len(snap) != n {
				t.Fatalf("len(Snapshot) = %d, want %d", len(snap), n)
			}
			for i, rec := range snap {
				want := Record{Category: i % 7, Priority: Priority(i % 9), Message: fmt.Sprintf("msg %d", i)}
				if rec != want {
					t.Fatalf("record %d = %#v, want %#v", i, rec, want)
				}
			}
		})
	}
}

func TestStore_AppendCopiesMessage(t *testing.T) {
	var s Store

	buf := []byte("transient")
	if err := s.Append(0, PriorityInfo, string(buf)); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}
	copy(buf, "XXXXXXXXX")

	if got := s.Snapshot()[0].Message; got != "transient" {
		t.Fatalf("Message = %q, want transient", got)
	}
}

func TestStore_AppendFailureLeavesStoreUnchanged(t *testing.T) {
	var s Store
	if err := s.Append(0, PriorityInfo, "kept"); err != nil {
		t.Fatalf("Append returned error: %v", err)
	}

	s.clone = func(string) string { panic("out of memory") }
	if err := s.Append(0, PriorityError, "dropped"); err == nil {
		t.Fatal("Append returned nil error, want failure")
	}
	if got := s.Len(); got != 1 {
		t.Fatalf("Len = %d, want 1", got)
	}

	// The lock must not be left held after a failed append.
	s.clone = nil
	if err := s.Append(0, PriorityInfo, "after"); err != nil {
		t.Fatalf("Append after failure returned error: %v", err)
	}
	if got := s.Len(); got != 2 {
		t.Fatalf("Len = %d, want 2", got)
	}
}

func TestStore_SliceClampsAndClones(t *testing.T) {
	var s Store
	for i := range 5 {
		_ = s.Append(0, PriorityInfo, fmt.Sprintf("%d", i))
	}

	tests := []struct {
		name       string
		start, end int
		want       []string
	}{
		{"middle", 1, 3, []string{"1", "2"}},
		{"negative start", -4, 2, []string{"0", "1"}},
		{"end past length", 3, 50, []string{"3", "4"}},
		{"empty range", 3, 3, nil},
		{"inverted range", 4, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Slice(tt.start, tt.end)
			if len(got) != len(tt.want) {
				t.Fatalf("Slice(%d, %d) returned %d records, want %d", tt.start, tt.end, len(got), len(tt.want))
			}
			for i, rec := range got {
				if rec.Message != tt.want[i] {
					t.Fatalf("Slice(%d, %d)[%d] = %q, want %q", tt.start, tt.end, i, rec.Message, tt.want[i])
				}
			}
		})
	}

	got := s.Slice(0, 1)
	got[0].Message = "mutated"
	if s.Slice(0, 1)[0].Message != "0" {
		t.Fatal("Slice should return a copy of the stored records")
	}
}

func TestStore_ConcurrentAppendsAreSerialized(t *testing.T) {
	var s Store
	const writers, perWriter = 8, 500

	done := make(chan struct{})
	for w := range writers {
		go func() {
			defer func() { done <- struct{}{} }()
			for i := range perWriter {
				_ = s.Append(w, PriorityDebug, fmt.Sprintf("%d", i))
			}
		}()
	}
	for range writers {
		<-done
	}

	if got := s.Len(); got != writers*perWriter {
		t.Fatalf("Len = %d, want %d", got, writers*perWriter)
	}

	// Per-writer order must survive interleaving.
	next := make(map[int]int)
	for _, rec := range s.Snapshot() {
		want := fmt.Sprintf("%d", next[rec.Category])
		if rec.Message != want {
			t.Fatalf("writer %d record = %q, want %q", rec.Category, rec.Message, want)
		}
		next[rec.Category]++
	}
}

func TestPriority_Known(t *testing.T) {
	for p := PriorityTrace; p <= PriorityCritical; p++ {
		if !p.Known() {
			t.Fatalf("%v.Known() = false, want true", p)
		}
	}
	for _, p := range []Priority{0, -1, PriorityCritical + 1, 99} {
		if p.Known() {
			t.Fatalf("Priority(%d).Known() = true, want false", int(p))
		}
	}
}
