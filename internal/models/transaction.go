package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind is the type of fund movement a transaction represents.
type TransactionKind string

// Supported transaction kinds
const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

// Transaction lifecycle states. PENDING is the only state that accepts
// decisions; every other state is terminal for voting purposes.
const (
	StatusPending         TransactionStatus = "PENDING"
	StatusApproved        TransactionStatus = "APPROVED"
	StatusRejected        TransactionStatus = "REJECTED"
	StatusExpired         TransactionStatus = "EXPIRED"
	StatusExecuted        TransactionStatus = "EXECUTED"
	StatusExecutionFailed TransactionStatus = "EXECUTION_FAILED"
	StatusCancelled       TransactionStatus = "CANCELLED"
)

// TransactionDB represents a transaction row in the database.
type TransactionDB struct {
	TransactionID uuid.UUID         `json:"transaction_id" db:"transaction_id"` // Unique transaction identifier
	Kind          TransactionKind   `json:"kind" db:"kind"`                     // DEPOSIT or WITHDRAWAL
	AccountRef    string            `json:"account_ref" db:"account_ref"`       // Identifier of the target account
	AmountMinor   int64             `json:"amount_minor" db:"amount_minor"`     // Amount in integer minor units
	CreatedBy     string            `json:"created_by" db:"created_by"`         // Actor who submitted the transaction
	Status        TransactionStatus `json:"status" db:"status"`                 // Current lifecycle state
	Version       int64             `json:"version" db:"version"`               // Optimistic-concurrency token, incremented on every mutation
	CreatedAt     time.Time         `json:"created_at" db:"created_at"`         // Submission timestamp
	UpdatedAt     time.Time         `json:"updated_at" db:"updated_at"`         // Timestamp of the last mutation
	Deadline      time.Time         `json:"deadline" db:"deadline"`             // CreatedAt + policy timeout for the kind
}

// Expired reports whether the transaction's approval window has closed.
// Both the lazy check inside Decide and the scheduler sweep use this
// predicate, so there is exactly one definition of "expired".
func (t *TransactionDB) Expired(now time.Time) bool {
	return !now.Before(t.Deadline)
}

// Terminal reports whether the status accepts no further decisions.
func (s TransactionStatus) Terminal() bool {
	return s != StatusPending
}

// TransactionSnapshot is the read projection returned by every workflow
// operation so callers can render progress without a second read.
type TransactionSnapshot struct {
	TransactionID      uuid.UUID         `json:"transaction_id"`
	Kind               TransactionKind   `json:"kind"`
	AccountRef         string            `json:"account_ref"`
	AmountMinor        int64             `json:"amount_minor"`
	CreatedBy          string            `json:"created_by"`
	Status             TransactionStatus `json:"status"`
	ApproveCount       int               `json:"approve_count"`
	RejectCount        int               `json:"reject_count"`
	ApprovalsRequired  int               `json:"approvals_required"`
	RejectionsRequired int               `json:"rejections_required"`
	Deadline           time.Time         `json:"deadline"`
	Version            int64             `json:"version"`
}
