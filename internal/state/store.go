package state

import (
	"fmt"
	"strings"
	"sync"
)

// Priority is the severity of a captured record.
type Priority int

// Known priorities, ordered from least to most severe. Values outside
// [PriorityTrace, PriorityCritical] are treated as unknown.
const (
	PriorityTrace Priority = iota + 1
	PriorityVerbose
	PriorityDebug
	PriorityInfo
	PriorityWarn
	PriorityError
	PriorityCritical
)

// Known reports whether p is one of the enumerated priorities.
func (p Priority) Known() bool {
	return p >= PriorityTrace && p <= PriorityCritical
}

func (p Priority) String() string {
	switch p {
	case PriorityTrace:
		return "trace"
	case PriorityVerbose:
		return "verbose"
	case PriorityDebug:
		return "debug"
	case PriorityInfo:
		return "info"
	case PriorityWarn:
		return "warn"
	case PriorityError:
		return "error"
	case PriorityCritical:
		return "critical"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Record is one captured log message.
type Record struct {
	Category int
	Priority Priority
	Message  string
}

// Store is the append-only, ordered sequence of captured records. Insertion
// order is display order. The zero value is ready to use.
type Store struct {
	mu      sync.RWMutex
	records []Record

	// clone copies the message out of the emitter's buffer.
	clone func(string) string
}

// Append adds a record at the end of the store. The message is copied so the
// caller may reuse its buffer. A failure while growing the store is returned
// as an error and leaves the store unchanged.
func (s *Store) Append(category int, priority Priority, message string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("append record: %v", r)
		}
	}()

	clone := s.clone
	if clone == nil {
		clone = strings.Clone
	}
	rec := Record{Category: category, Priority: priority, Message: clone(message)}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// Len returns the number of records captured so far.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Slice returns a copy of the records in [start, end), clamped to the
// current length.
func (s *Store) Slice(start, end int) []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start = max(start, 0)
	end = min(end, len(s.records))
	if start >= end {
		return nil
	}
	dup := make([]Record, end-start)
	copy(dup, s.records[start:end])
	return dup
}

// Snapshot returns a copy of every record in emission order.
func (s *Store) Snapshot() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return nil
	}
	dup := make([]Record, len(s.records))
	copy(dup, s.records)
	return dup
}
