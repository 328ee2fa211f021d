package models

// BillEvent represents a bill lifecycle event published for downstream consumers.
type BillEvent struct {
	EventID   string  `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64   `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the event occurred.
	BillID    string  `json:"bill_id"`   // BillID identifies the bill the event concerns.
	UserID    string  `json:"user_id"`   // UserID identifies the bill owner.
	Operation string  `json:"operation"` // Operation is the event type, e.g. "created" or "paid_status".
	Amount    float64 `json:"amount"`    // Amount is the bill total at event time.
}
