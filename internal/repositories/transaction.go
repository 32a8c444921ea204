package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/avolkhin/mw-approval-engine/internal/logger"
	"github.com/avolkhin/mw-approval-engine/internal/models"
)

// Error variables
var (
	// ErrVersionConflict is returned when another mutation committed between
	// the caller's read and its conditional write.
	ErrVersionConflict = errors.New("transaction version conflict")

	// ErrDuplicateDecision is returned when the decision unique constraint
	// on (transaction_id, approver_id) fires.
	ErrDuplicateDecision = errors.New("duplicate decision for approver")
)

const uniqueViolationCode = "23505"

// TransactionRepository is the registry of transaction entities. Every
// write commits the transaction row mutation and its audit record in a
// single database transaction: state and audit land together or not at all.
type TransactionRepository struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create inserts a new pending transaction together with its creation
// audit record.
func (r *TransactionRepository) Create(ctx context.Context, txn *models.TransactionDB, audit models.AuditRecordDB) error {
	const query = `
		INSERT INTO transactions (transaction_id, kind, account_ref, amount_minor, created_by, status, version, created_at, updated_at, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, query,
		txn.TransactionID, txn.Kind, txn.AccountRef, txn.AmountMinor, txn.CreatedBy,
		txn.Status, txn.Version, txn.CreatedAt, txn.UpdatedAt, txn.Deadline,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{txn.TransactionID, txn.Kind, txn.AmountMinor},
		"error", err,
	)
	if err != nil {
		return err
	}

	if err := insertAuditRecord(ctx, tx, audit); err != nil {
		return err
	}
	return tx.Commit()
}

// Get returns a transaction and its decisions in arrival order.
func (r *TransactionRepository) Get(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, []models.DecisionDB, error) {
	const txnQuery = `
		SELECT transaction_id, kind, account_ref, amount_minor, created_by, status, version, created_at, updated_at, deadline
		FROM transactions
		WHERE transaction_id = $1
	`
	const decisionQuery = `
		SELECT decision_id, transaction_id, approver_id, role, verdict, comment, created_at
		FROM decisions
		WHERE transaction_id = $1
		ORDER BY created_at, decision_id
	`

	var txn models.TransactionDB
	err := r.db.GetContext(ctx, &txn, txnQuery, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, nil
		}
		logger.Log.Errorw("failed to get transaction", "transaction_id", transactionID, "error", err)
		return nil, nil, err
	}

	var decisions []models.DecisionDB
	if err := r.db.SelectContext(ctx, &decisions, decisionQuery, transactionID); err != nil {
		logger.Log.Errorw("failed to get decisions", "transaction_id", transactionID, "error", err)
		return nil, nil, err
	}

	return &txn, decisions, nil
}

// CommitDecision appends a decision and moves the transaction to newStatus,
// conditioned on the version observed at read time and on the row still
// being PENDING. The decision, the version bump, and the audit record
// commit atomically. Returns ErrVersionConflict when another mutation won
// the race and ErrDuplicateDecision when the approver already decided.
func (r *TransactionRepository) CommitDecision(
	ctx context.Context,
	transactionID uuid.UUID,
	expectedVersion int64,
	newStatus models.TransactionStatus,
	decision *models.DecisionDB,
	audit models.AuditRecordDB,
) error {
	const decisionQuery = `
		INSERT INTO decisions (decision_id, transaction_id, approver_id, role, verdict, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := updateStatusChecked(ctx, tx, transactionID, expectedVersion, newStatus, models.StatusPending); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, decisionQuery,
		decision.DecisionID, decision.TransactionID, decision.ApproverID,
		decision.Role, decision.Verdict, decision.Comment, decision.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return ErrDuplicateDecision
		}
		logger.Log.Errorw("failed to insert decision", "transaction_id", transactionID, "approver_id", decision.ApproverID, "error", err)
		return err
	}

	if err := insertAuditRecord(ctx, tx, audit); err != nil {
		return err
	}
	return tx.Commit()
}

// CommitTransition moves the transaction to newStatus without appending a
// decision. Used for cancel, expiry, and the post-execution transitions.
// Conditioned on version only: the workflow validates the source status
// against its own read, and the version gate detects any interleaved write.
func (r *TransactionRepository) CommitTransition(
	ctx context.Context,
	transactionID uuid.UUID,
	expectedVersion int64,
	newStatus models.TransactionStatus,
	audit models.AuditRecordDB,
) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := updateStatusChecked(ctx, tx, transactionID, expectedVersion, newStatus, ""); err != nil {
		return err
	}
	if err := insertAuditRecord(ctx, tx, audit); err != nil {
		return err
	}
	return tx.Commit()
}

// ListPendingByKinds returns pending transactions of the given kinds,
// oldest first. An empty kind set yields no rows.
func (r *TransactionRepository) ListPendingByKinds(ctx context.Context, kinds []models.TransactionKind) ([]models.TransactionDB, error) {
	if len(kinds) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT transaction_id, kind, account_ref, amount_minor, created_by, status, version, created_at, updated_at, deadline
		FROM transactions
		WHERE status = 'PENDING' AND kind IN (?)
		ORDER BY created_at
	`, kinds)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var txns []models.TransactionDB
	if err := r.db.SelectContext(ctx, &txns, query, args...); err != nil {
		logger.Log.Errorw("failed to list pending transactions", "kinds", kinds, "error", err)
		return nil, err
	}
	return txns, nil
}

// ListExpired returns pending transactions whose deadline has passed,
// oldest deadline first. Candidates only: the sweep re-reads each one and
// commits through the version-checked transition path.
func (r *TransactionRepository) ListExpired(ctx context.Context, now time.Time) ([]models.TransactionDB, error) {
	const query = `
		SELECT transaction_id, kind, account_ref, amount_minor, created_by, status, version, created_at, updated_at, deadline
		FROM transactions
		WHERE status = 'PENDING' AND deadline <= $1
		ORDER BY deadline
	`

	var txns []models.TransactionDB
	if err := r.db.SelectContext(ctx, &txns, query, now); err != nil {
		logger.Log.Errorw("failed to list expired transactions", "error", err)
		return nil, err
	}
	return txns, nil
}

// updateStatusChecked performs the version-gated status update. The
// fromStatus argument additionally pins the source state; empty means any.
func updateStatusChecked(
	ctx context.Context,
	tx *sqlx.Tx,
	transactionID uuid.UUID,
	expectedVersion int64,
	newStatus models.TransactionStatus,
	fromStatus models.TransactionStatus,
) error {
	query := `
		UPDATE transactions
		SET status = $1, version = version + 1, updated_at = NOW()
		WHERE transaction_id = $2 AND version = $3
	`
	args := []any{newStatus, transactionID, expectedVersion}
	if fromStatus != "" {
		query += ` AND status = $4`
		args = append(args, fromStatus)
	}

	res, err := tx.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrVersionConflict
	}
	return nil
}

// insertAuditRecord appends a ledger row inside the caller's transaction.
// A failed insert aborts the whole commit: a transition is not considered
// committed unless its audit record is durable too.
func insertAuditRecord(ctx context.Context, tx *sqlx.Tx, rec models.AuditRecordDB) error {
	const query = `
		INSERT INTO audit_records (transaction_id, from_status, to_status, caused_by, snapshot_version, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tx.ExecContext(ctx, query,
		rec.TransactionID, rec.FromStatus, rec.ToStatus, rec.CausedBy, rec.SnapshotVersion, rec.CreatedAt,
	)
	if err != nil {
		logger.Log.Errorw("failed to insert audit record", "transaction_id", rec.TransactionID, "error", err)
	}
	return err
}
