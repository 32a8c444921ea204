package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CausedByScheduler marks audit records produced by the timeout sweep
// rather than a human actor.
const CausedByScheduler = "scheduler"

// AuditRecordDB represents one append-only audit ledger row. The sequence
// of records for a transaction, replayed in order, reconstructs its final
// status deterministically.
type AuditRecordDB struct {
	RecordID        int64             `json:"record_id" db:"record_id"`               // Monotonic ledger position, assigned by storage
	TransactionID   uuid.UUID         `json:"transaction_id" db:"transaction_id"`     // Transaction the record belongs to
	FromStatus      TransactionStatus `json:"from_status" db:"from_status"`           // Status before the transition
	ToStatus        TransactionStatus `json:"to_status" db:"to_status"`               // Status after the transition
	CausedBy        string            `json:"caused_by" db:"caused_by"`               // Approver id, creator id, or "scheduler"
	SnapshotVersion int64             `json:"snapshot_version" db:"snapshot_version"` // Transaction version after the transition
	CreatedAt       time.Time         `json:"created_at" db:"created_at"`             // Transition timestamp
}

// ReplayStatus folds an ordered audit trail into the status it describes,
// validating that every record chains from the status the previous record
// left behind. An empty trail or a broken chain is an error.
func ReplayStatus(records []AuditRecordDB) (TransactionStatus, error) {
	if len(records) == 0 {
		return "", fmt.Errorf("empty audit trail")
	}

	status := records[0].FromStatus
	for i, rec := range records {
		if rec.FromStatus != status {
			return "", fmt.Errorf("audit trail broken at record %d: expected from_status %s, got %s",
				i, status, rec.FromStatus)
		}
		status = rec.ToStatus
	}
	return status, nil
}
