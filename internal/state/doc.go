// Package state holds the process-wide log store shared by the log sink and
// the log viewer.
//
// # Overview
//
// The Store is an append-only sequence of Records. Records are never
// removed, reordered or deduplicated; the order they were appended in is the
// order the viewer shows them in (oldest first).
//
//	Producer (logsink.Sink):       Consumer (logview.View):
//	┌──────────────────┐          ┌──────────────────────┐
//	│ slog.Handle()    │          │ Render(frame)        │
//	│      ↓           │          │      ↓               │
//	│ store.Append()   │─────────→│ store.Len()          │
//	│                  │ (mutex)  │ store.Slice(lo, hi)  │
//	└──────────────────┘          └──────────────────────┘
//
// # Concurrency Model
//
// Appends take the write lock, reads take the read lock:
//
//   - Append(): serializes writers, so emission order from any goroutine is
//     the store order.
//   - Len(), Slice(), Snapshot(): return copies; an append racing a render
//     is either visible to that render or not, never half-visible.
//
// # Failure Semantics
//
// Append copies the message before taking the lock. If growing the record
// slice fails, the runtime panic is recovered and reported as an error with
// the store left at its previous length. Callers on a logging path drop the
// record rather than propagate the error.
//
// # Usage Example
//
//	store := &state.Store{}
//	_ = store.Append(0, state.PriorityInfo, "start")
//	visible := store.Slice(0, 20)
package state
