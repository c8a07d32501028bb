// Package emergency implements the max-priority queue of urgent requests
// waiting for expedited allocation.
//
// Cases are ranked by score (highest first). Equal scores fall back to the
// earlier enqueue timestamp, then the lower request id, then insertion order,
// so PopMax is fully deterministic even when the clock does not advance.
//
// The Queue has its own mutex and is independent of any allocation
// transaction. A popped Case is only a snapshot: the request may have been
// allocated or rescored since it was enqueued.
//
// Complexity: Enqueue and PopMax are O(log n); Snapshot is O(n log n).
package emergency
