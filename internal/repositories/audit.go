package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/avolkhin/mw-approval-engine/internal/logger"
	"github.com/avolkhin/mw-approval-engine/internal/models"
)

// AuditRepository reads the append-only audit ledger. Writes happen inside
// the TransactionRepository commits so state and audit stay atomic.
type AuditRepository struct {
	db *sqlx.DB
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(db *sqlx.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// ListByTransaction returns the audit trail for a transaction in ledger order.
func (r *AuditRepository) ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]models.AuditRecordDB, error) {
	const query = `
		SELECT record_id, transaction_id, from_status, to_status, caused_by, snapshot_version, created_at
		FROM audit_records
		WHERE transaction_id = $1
		ORDER BY record_id
	`

	var records []models.AuditRecordDB
	if err := r.db.SelectContext(ctx, &records, query, transactionID); err != nil {
		logger.Log.Errorw("failed to list audit records", "transaction_id", transactionID, "error", err)
		return nil, err
	}
	return records, nil
}
