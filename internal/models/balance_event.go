package models

// BalanceEvent describes a single balance change on an account, including who owns it and the resulting balance.
type BalanceEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	AccountID string `json:"account_id"` // AccountID identifies the account whose balance changed.
	Owner     string `json:"owner"`      // Owner is the display name of the account owner.
	Currency  string `json:"currency"`   // Currency is the account's currency code.
	Balance   string `json:"balance"`    // Balance is the decimal balance after the change, rendered as a string.
	Operation string `json:"operation"`  // Operation describes the change, e.g. "deposit", "withdraw", or "rollback".
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the change occurred.
}
