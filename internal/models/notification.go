package models

import "github.com/google/uuid"

// NotificationEvent identifies what happened to a transaction.
type NotificationEvent string

// Notification events emitted by the workflow. Delivery is owned by an
// external dispatcher; the engine only publishes intents.
const (
	EventApprovalRequired     NotificationEvent = "APPROVAL_REQUIRED"
	EventDecisionRecorded     NotificationEvent = "DECISION_RECORDED"
	EventTransactionApproved  NotificationEvent = "TRANSACTION_APPROVED"
	EventTransactionRejected  NotificationEvent = "TRANSACTION_REJECTED"
	EventTransactionExecuted  NotificationEvent = "TRANSACTION_EXECUTED"
	EventExecutionFailed      NotificationEvent = "EXECUTION_FAILED"
	EventTransactionExpired   NotificationEvent = "TRANSACTION_EXPIRED"
	EventTransactionCancelled NotificationEvent = "TRANSACTION_CANCELLED"
)

// NotificationIntent is the message the engine hands to the external
// notification dispatcher. Exactly one of RecipientID or RecipientRole is
// set: an id addresses a single actor, a role fans out to everyone holding it.
type NotificationIntent struct {
	RecipientID   string            `json:"recipient_id,omitempty"`   // Target actor id
	RecipientRole string            `json:"recipient_role,omitempty"` // Target role, fan-out resolved by the dispatcher
	TransactionID uuid.UUID         `json:"transaction_id"`           // Transaction the event concerns
	Event         NotificationEvent `json:"event"`                    // What happened
}
