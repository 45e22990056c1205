package ports

import "time"

// ChangeRecord describes a single catalog mutation.
type ChangeRecord struct {
	ProductID string
	Operation string // "create", "update", "soft_delete", "update_stock"
	Actor     string // username from the security context
	Timestamp time.Time
}

// ChangeJournal receives catalog mutation records for structured logging.
// Enqueue must never block the request path for long; records for the same
// product are processed in order.
type ChangeJournal interface {
	Enqueue(record ChangeRecord)
}
