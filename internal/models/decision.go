package models

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is an approver's recorded position on a transaction.
type Verdict string

// Supported verdicts
const (
	VerdictApprove Verdict = "APPROVE"
	VerdictReject  Verdict = "REJECT"
)

// DecisionDB represents a single approver's decision row in the database.
// A decision is immutable once recorded; at most one exists per
// (transaction, approver) pair.
type DecisionDB struct {
	DecisionID    uuid.UUID `json:"decision_id" db:"decision_id"`       // Unique decision identifier
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"` // Transaction the decision applies to
	ApproverID    string    `json:"approver_id" db:"approver_id"`       // Actor who decided
	Role          string    `json:"role" db:"role"`                     // Role held at decision time, snapshotted
	Verdict       Verdict   `json:"verdict" db:"verdict"`               // APPROVE or REJECT
	Comment       *string   `json:"comment,omitempty" db:"comment"`     // Optional free-form comment
	CreatedAt     time.Time `json:"created_at" db:"created_at"`         // Arrival timestamp, defines decision order
}

// CountVerdicts tallies approve and reject decisions in a decision set.
func CountVerdicts(decisions []DecisionDB) (approvals, rejections int) {
	for _, d := range decisions {
		switch d.Verdict {
		case VerdictApprove:
			approvals++
		case VerdictReject:
			rejections++
		}
	}
	return approvals, rejections
}

// HasDecision reports whether the approver already has a decision in the set.
func HasDecision(decisions []DecisionDB, approverID string) bool {
	for _, d := range decisions {
		if d.ApproverID == approverID {
			return true
		}
	}
	return false
}
