package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/avolkhin/mw-approval-engine/internal/logger"
	"github.com/avolkhin/mw-approval-engine/internal/models"
)

// LedgerHTTPFacade implements ledger execution against the external ledger
// service over HTTP. Requests carry the transaction id so the ledger side
// can deduplicate a retried call after a crash.
type LedgerHTTPFacade struct {
	baseURL string
	client  *http.Client
}

// NewLedgerHTTPFacade creates a new facade. A nil client falls back to
// http.DefaultClient.
func NewLedgerHTTPFacade(baseURL string, client *http.Client) *LedgerHTTPFacade {
	if client == nil {
		client = http.DefaultClient
	}
	return &LedgerHTTPFacade{baseURL: baseURL, client: client}
}

// executeRequest is the wire shape of a ledger execution call.
type executeRequest struct {
	TransactionID uuid.UUID              `json:"transaction_id"`
	Kind          models.TransactionKind `json:"kind"`
	AccountRef    string                 `json:"account_ref"`
	AmountMinor   int64                  `json:"amount_minor"`
}

// Execute asks the ledger service to move the funds for an approved
// transaction. Any non-2xx response is a failure.
func (f *LedgerHTTPFacade) Execute(
	ctx context.Context,
	transactionID uuid.UUID,
	kind models.TransactionKind,
	accountRef string,
	amountMinor int64,
) error {
	body, err := json.Marshal(executeRequest{
		TransactionID: transactionID,
		Kind:          kind,
		AccountRef:    accountRef,
		AmountMinor:   amountMinor,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/executions", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("ledger execution request failed", "transaction_id", transactionID, "error", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Log.Errorw("ledger execution rejected",
			"transaction_id", transactionID, "status_code", resp.StatusCode)
		return fmt.Errorf("ledger execution failed with status %d", resp.StatusCode)
	}

	logger.Log.Infow("ledger execution succeeded", "transaction_id", transactionID)
	return nil
}
