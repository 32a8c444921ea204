package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/avolkhin/mw-approval-engine/internal/logger"
	"github.com/avolkhin/mw-approval-engine/internal/models"
	"github.com/avolkhin/mw-approval-engine/internal/policy"
	"github.com/avolkhin/mw-approval-engine/internal/repositories"
)

// Error variables
var (
	// ErrInvalidAmount is returned when a submitted amount is not positive.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrTransactionNotFound is returned when the transaction id is unknown.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTransactionNotPending is returned when the transaction no longer
	// accepts the requested mutation, including when its deadline has passed
	// but the sweep has not retired it yet.
	ErrTransactionNotPending = errors.New("transaction is not pending")

	// ErrUnauthorizedApprover is returned when the role may not decide on
	// the transaction kind.
	ErrUnauthorizedApprover = errors.New("role is not authorized to approve this transaction kind")

	// ErrUnauthorizedActor is returned when the actor may not submit or
	// cancel the transaction.
	ErrUnauthorizedActor = errors.New("actor is not authorized for this operation")

	// ErrDuplicateDecision is returned when the approver already decided.
	ErrDuplicateDecision = errors.New("approver has already decided on this transaction")

	// ErrConcurrentModification is returned when the bounded read-modify-write
	// retry budget is exhausted by competing mutations.
	ErrConcurrentModification = errors.New("too many concurrent modifications")

	// ErrDeadlineNotReached is returned by the expiry path when the
	// transaction's approval window is still open.
	ErrDeadlineNotReached = errors.New("transaction deadline has not been reached")
)

// maxCommitAttempts bounds the optimistic-concurrency retry loop.
const maxCommitAttempts = 5

// TransactionRegistry is the store of transaction entities and the atomic
// read-modify-write primitive every mutation goes through.
type TransactionRegistry interface {
	Create(ctx context.Context, txn *models.TransactionDB, audit models.AuditRecordDB) error
	Get(ctx context.Context, transactionID uuid.UUID) (*models.TransactionDB, []models.DecisionDB, error)
	CommitDecision(ctx context.Context, transactionID uuid.UUID, expectedVersion int64, newStatus models.TransactionStatus, decision *models.DecisionDB, audit models.AuditRecordDB) error
	CommitTransition(ctx context.Context, transactionID uuid.UUID, expectedVersion int64, newStatus models.TransactionStatus, audit models.AuditRecordDB) error
	ListPendingByKinds(ctx context.Context, kinds []models.TransactionKind) ([]models.TransactionDB, error)
}

// AuditTrailReader reads the ordered audit ledger for a transaction.
type AuditTrailReader interface {
	ListByTransaction(ctx context.Context, transactionID uuid.UUID) ([]models.AuditRecordDB, error)
}

// LedgerExecutor is the external collaborator that actually moves funds
// once quorum is reached.
type LedgerExecutor interface {
	Execute(ctx context.Context, transactionID uuid.UUID, kind models.TransactionKind, accountRef string, amountMinor int64) error
}

// Notifier publishes notification intents to the external dispatcher.
// Fire-and-forget: the workflow logs failures and never blocks on them.
type Notifier interface {
	Notify(ctx context.Context, intent models.NotificationIntent) error
}

// ApprovalWorkflow owns the transaction lifecycle: submission, decision
// quorum evaluation, cancellation, and deadline expiry all run through its
// version-checked commit path.
type ApprovalWorkflow struct {
	registry   TransactionRegistry
	audit      AuditTrailReader
	ledger     LedgerExecutor
	notifier   Notifier
	quorum     *policy.Store
	authorizer *policy.Authorizer
	now        func() time.Time
}

// NewApprovalWorkflow creates a new ApprovalWorkflow.
func NewApprovalWorkflow(
	registry TransactionRegistry,
	audit AuditTrailReader,
	ledger LedgerExecutor,
	notifier Notifier,
	quorum *policy.Store,
	authorizer *policy.Authorizer,
) *ApprovalWorkflow {
	return &ApprovalWorkflow{
		registry:   registry,
		audit:      audit,
		ledger:     ledger,
		notifier:   notifier,
		quorum:     quorum,
		authorizer: authorizer,
		now:        time.Now,
	}
}

// Submit creates a new pending transaction with a deadline derived from the
// quorum policy for its kind. The actor's role must carry create capability.
func (wf *ApprovalWorkflow) Submit(
	ctx context.Context,
	kind models.TransactionKind,
	accountRef string,
	amountMinor int64,
	createdBy string,
	role string,
) (*models.TransactionSnapshot, error) {
	if amountMinor <= 0 {
		logger.Log.Warnw("rejected submission with non-positive amount", "amount_minor", amountMinor, "created_by", createdBy)
		return nil, ErrInvalidAmount
	}
	if !wf.authorizer.CanCreate(role) {
		logger.Log.Warnw("rejected submission from unauthorized role", "role", role, "created_by", createdBy)
		return nil, ErrUnauthorizedActor
	}

	rule, err := wf.quorum.Load().Rule(kind)
	if err != nil {
		return nil, err
	}

	now := wf.now()
	txn := &models.TransactionDB{
		TransactionID: uuid.New(),
		Kind:          kind,
		AccountRef:    accountRef,
		AmountMinor:   amountMinor,
		CreatedBy:     createdBy,
		Status:        models.StatusPending,
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
		Deadline:      now.Add(rule.Timeout),
	}
	audit := models.AuditRecordDB{
		TransactionID:   txn.TransactionID,
		FromStatus:      models.StatusPending,
		ToStatus:        models.StatusPending,
		CausedBy:        createdBy,
		SnapshotVersion: txn.Version,
		CreatedAt:       now,
	}

	if err := wf.registry.Create(ctx, txn, audit); err != nil {
		logger.Log.Errorw("failed to create transaction", "kind", kind, "created_by", createdBy, "error", err)
		return nil, err
	}

	logger.Log.Infow("transaction submitted",
		"transaction_id", txn.TransactionID, "kind", kind, "amount_minor", amountMinor, "deadline", txn.Deadline)

	for _, approverRole := range wf.authorizer.ApproverRoles(kind) {
		wf.notify(ctx, models.NotificationIntent{
			RecipientRole: approverRole,
			TransactionID: txn.TransactionID,
			Event:         models.EventApprovalRequired,
		})
	}

	return wf.snapshot(txn, nil, rule), nil
}

// Decide records an approver's verdict and evaluates quorum. When the
// approve threshold is reached the transaction transitions to APPROVED and
// the ledger executor is invoked exactly once, after the transition is
// durably committed. The approve check runs before the reject check.
func (wf *ApprovalWorkflow) Decide(
	ctx context.Context,
	transactionID uuid.UUID,
	approverID string,
	role string,
	verdict models.Verdict,
	comment *string,
) (*models.TransactionSnapshot, error) {
	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		txn, decisions, err := wf.registry.Get(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		if txn == nil {
			return nil, ErrTransactionNotFound
		}

		now := wf.now()
		if txn.Status.Terminal() || txn.Expired(now) {
			return nil, ErrTransactionNotPending
		}
		if !wf.authorizer.CanApprove(role, txn.Kind) {
			logger.Log.Warnw("unauthorized decision attempt",
				"transaction_id", transactionID, "approver_id", approverID, "role", role, "kind", txn.Kind)
			return nil, ErrUnauthorizedApprover
		}
		if models.HasDecision(decisions, approverID) {
			return nil, ErrDuplicateDecision
		}

		rule, err := wf.quorum.Load().Rule(txn.Kind)
		if err != nil {
			return nil, err
		}

		approvals, rejections := models.CountVerdicts(decisions)
		if verdict == models.VerdictApprove {
			approvals++
		} else {
			rejections++
		}

		newStatus := models.StatusPending
		if approvals >= rule.ApprovalsRequired {
			newStatus = models.StatusApproved
		} else if rejections >= rule.RejectionsRequired {
			newStatus = models.StatusRejected
		}

		decision := &models.DecisionDB{
			DecisionID:    uuid.New(),
			TransactionID: transactionID,
			ApproverID:    approverID,
			Role:          role,
			Verdict:       verdict,
			Comment:       comment,
			CreatedAt:     now,
		}
		audit := models.AuditRecordDB{
			TransactionID:   transactionID,
			FromStatus:      models.StatusPending,
			ToStatus:        newStatus,
			CausedBy:        approverID,
			SnapshotVersion: txn.Version + 1,
			CreatedAt:       now,
		}

		err = wf.registry.CommitDecision(ctx, transactionID, txn.Version, newStatus, decision, audit)
		if errors.Is(err, repositories.ErrVersionConflict) {
			continue
		}
		if errors.Is(err, repositories.ErrDuplicateDecision) {
			return nil, ErrDuplicateDecision
		}
		if err != nil {
			logger.Log.Errorw("failed to commit decision",
				"transaction_id", transactionID, "approver_id", approverID, "error", err)
			return nil, err
		}

		txn.Status = newStatus
		txn.Version++
		decisions = append(decisions, *decision)

		logger.Log.Infow("decision recorded",
			"transaction_id", transactionID, "approver_id", approverID, "verdict", verdict,
			"approvals", approvals, "rejections", rejections, "status", newStatus)

		switch newStatus {
		case models.StatusApproved:
			if err := wf.execute(ctx, txn, approverID); err != nil {
				return wf.snapshot(txn, decisions, rule), err
			}
		case models.StatusRejected:
			wf.notify(ctx, models.NotificationIntent{
				RecipientID:   txn.CreatedBy,
				TransactionID: transactionID,
				Event:         models.EventTransactionRejected,
			})
		default:
			for _, approverRole := range wf.authorizer.ApproverRoles(txn.Kind) {
				wf.notify(ctx, models.NotificationIntent{
					RecipientRole: approverRole,
					TransactionID: transactionID,
					Event:         models.EventDecisionRecorded,
				})
			}
		}

		return wf.snapshot(txn, decisions, rule), nil
	}

	return nil, ErrConcurrentModification
}

// Cancel retires a pending transaction. Only its creator or a role with the
// administrator capability may cancel, and the cancellation itself is
// audited and irreversible.
func (wf *ApprovalWorkflow) Cancel(
	ctx context.Context,
	transactionID uuid.UUID,
	actorID string,
	role string,
) (*models.TransactionSnapshot, error) {
	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		txn, decisions, err := wf.registry.Get(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		if txn == nil {
			return nil, ErrTransactionNotFound
		}

		now := wf.now()
		if txn.Status.Terminal() || txn.Expired(now) {
			return nil, ErrTransactionNotPending
		}
		if actorID != txn.CreatedBy && !wf.authorizer.IsAdmin(role) {
			logger.Log.Warnw("unauthorized cancel attempt",
				"transaction_id", transactionID, "actor_id", actorID, "role", role)
			return nil, ErrUnauthorizedActor
		}

		rule, err := wf.quorum.Load().Rule(txn.Kind)
		if err != nil {
			return nil, err
		}

		audit := models.AuditRecordDB{
			TransactionID:   transactionID,
			FromStatus:      models.StatusPending,
			ToStatus:        models.StatusCancelled,
			CausedBy:        actorID,
			SnapshotVersion: txn.Version + 1,
			CreatedAt:       now,
		}

		err = wf.registry.CommitTransition(ctx, transactionID, txn.Version, models.StatusCancelled, audit)
		if errors.Is(err, repositories.ErrVersionConflict) {
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to cancel transaction", "transaction_id", transactionID, "error", err)
			return nil, err
		}

		txn.Status = models.StatusCancelled
		txn.Version++

		logger.Log.Infow("transaction cancelled", "transaction_id", transactionID, "actor_id", actorID)

		wf.notify(ctx, models.NotificationIntent{
			RecipientID:   txn.CreatedBy,
			TransactionID: transactionID,
			Event:         models.EventTransactionCancelled,
		})

		return wf.snapshot(txn, decisions, rule), nil
	}

	return nil, ErrConcurrentModification
}

// Expire retires a pending transaction whose deadline has passed. This is
// the single expiry transition path: the scheduler sweep drives it, and the
// lazy check inside Decide rejects decisions on evaluated-expired
// transactions without competing for the transition.
func (wf *ApprovalWorkflow) Expire(ctx context.Context, transactionID uuid.UUID) (*models.TransactionSnapshot, error) {
	for attempt := 0; attempt < maxCommitAttempts; attempt++ {
		txn, decisions, err := wf.registry.Get(ctx, transactionID)
		if err != nil {
			return nil, err
		}
		if txn == nil {
			return nil, ErrTransactionNotFound
		}
		if txn.Status.Terminal() {
			return nil, ErrTransactionNotPending
		}

		now := wf.now()
		if !txn.Expired(now) {
			return nil, ErrDeadlineNotReached
		}

		rule, err := wf.quorum.Load().Rule(txn.Kind)
		if err != nil {
			return nil, err
		}

		audit := models.AuditRecordDB{
			TransactionID:   transactionID,
			FromStatus:      models.StatusPending,
			ToStatus:        models.StatusExpired,
			CausedBy:        models.CausedByScheduler,
			SnapshotVersion: txn.Version + 1,
			CreatedAt:       now,
		}

		err = wf.registry.CommitTransition(ctx, transactionID, txn.Version, models.StatusExpired, audit)
		if errors.Is(err, repositories.ErrVersionConflict) {
			continue
		}
		if err != nil {
			logger.Log.Errorw("failed to expire transaction", "transaction_id", transactionID, "error", err)
			return nil, err
		}

		txn.Status = models.StatusExpired
		txn.Version++

		logger.Log.Infow("transaction expired", "transaction_id", transactionID, "deadline", txn.Deadline)

		wf.notify(ctx, models.NotificationIntent{
			RecipientID:   txn.CreatedBy,
			TransactionID: transactionID,
			Event:         models.EventTransactionExpired,
		})

		return wf.snapshot(txn, decisions, rule), nil
	}

	return nil, ErrConcurrentModification
}

// GetAuditTrail returns the ordered audit ledger for a transaction.
func (wf *ApprovalWorkflow) GetAuditTrail(ctx context.Context, transactionID uuid.UUID) ([]models.AuditRecordDB, error) {
	records, err := wf.audit.ListByTransaction(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrTransactionNotFound
	}
	return records, nil
}

// ListPending returns pending transactions the role may decide on,
// excluding those whose deadline has already passed.
func (wf *ApprovalWorkflow) ListPending(ctx context.Context, forApproverRole string) ([]models.TransactionSnapshot, error) {
	kinds := wf.authorizer.ApprovableKinds(forApproverRole)
	txns, err := wf.registry.ListPendingByKinds(ctx, kinds)
	if err != nil {
		return nil, err
	}

	now := wf.now()
	snapshots := make([]models.TransactionSnapshot, 0, len(txns))
	for i := range txns {
		txn := txns[i]
		if txn.Expired(now) {
			continue
		}
		rule, err := wf.quorum.Load().Rule(txn.Kind)
		if err != nil {
			return nil, err
		}
		_, decisions, err := wf.registry.Get(ctx, txn.TransactionID)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *wf.snapshot(&txn, decisions, rule))
	}
	return snapshots, nil
}

// execute invokes the external ledger once for a durably approved
// transaction and commits the EXECUTED or EXECUTION_FAILED outcome. Only
// the read-modify-write that won the race into APPROVED reaches here, and
// no registry lock is held while the ledger call is in flight.
func (wf *ApprovalWorkflow) execute(ctx context.Context, txn *models.TransactionDB, causedBy string) error {
	finalStatus := models.StatusExecuted
	event := models.EventTransactionExecuted

	execErr := wf.ledger.Execute(ctx, txn.TransactionID, txn.Kind, txn.AccountRef, txn.AmountMinor)
	if execErr != nil {
		logger.Log.Errorw("ledger execution failed",
			"transaction_id", txn.TransactionID, "kind", txn.Kind, "error", execErr)
		finalStatus = models.StatusExecutionFailed
		event = models.EventExecutionFailed
	}

	audit := models.AuditRecordDB{
		TransactionID:   txn.TransactionID,
		FromStatus:      models.StatusApproved,
		ToStatus:        finalStatus,
		CausedBy:        causedBy,
		SnapshotVersion: txn.Version + 1,
		CreatedAt:       wf.now(),
	}

	if err := wf.registry.CommitTransition(ctx, txn.TransactionID, txn.Version, finalStatus, audit); err != nil {
		logger.Log.Errorw("failed to commit execution outcome",
			"transaction_id", txn.TransactionID, "status", finalStatus, "error", err)
		return err
	}

	txn.Status = finalStatus
	txn.Version++

	logger.Log.Infow("transaction finalized", "transaction_id", txn.TransactionID, "status", finalStatus)

	wf.notify(ctx, models.NotificationIntent{
		RecipientID:   txn.CreatedBy,
		TransactionID: txn.TransactionID,
		Event:         event,
	})
	return nil
}

// notify publishes an intent, logging failures without propagating them.
func (wf *ApprovalWorkflow) notify(ctx context.Context, intent models.NotificationIntent) {
	if wf.notifier == nil {
		logger.Log.Warnw("notifier not configured, skipping intent",
			"transaction_id", intent.TransactionID, "event", intent.Event)
		return
	}
	if err := wf.notifier.Notify(ctx, intent); err != nil {
		logger.Log.Errorw("failed to publish notification intent",
			"transaction_id", intent.TransactionID, "event", intent.Event, "error", err)
	}
}

// snapshot builds the post-operation projection returned to callers.
func (wf *ApprovalWorkflow) snapshot(txn *models.TransactionDB, decisions []models.DecisionDB, rule policy.Rule) *models.TransactionSnapshot {
	approvals, rejections := models.CountVerdicts(decisions)
	return &models.TransactionSnapshot{
		TransactionID:      txn.TransactionID,
		Kind:               txn.Kind,
		AccountRef:         txn.AccountRef,
		AmountMinor:        txn.AmountMinor,
		CreatedBy:          txn.CreatedBy,
		Status:             txn.Status,
		ApproveCount:       approvals,
		RejectCount:        rejections,
		ApprovalsRequired:  rule.ApprovalsRequired,
		RejectionsRequired: rule.RejectionsRequired,
		Deadline:           txn.Deadline,
		Version:            txn.Version,
	}
}
