package policy

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/avolkhin/mw-approval-engine/internal/models"
)

// Capability describes what a role may do. The table is configuration
// data, not code, so operators can add roles without recompiling.
type Capability struct {
	CanCreate  bool                     `json:"can_create"`  // May submit transactions
	CanApprove []models.TransactionKind `json:"can_approve"` // Kinds the role may decide on
	Admin      bool                     `json:"admin"`       // May cancel any pending transaction
}

// Authorizer answers eligibility questions from an immutable role
// capability table. It holds no other state.
type Authorizer struct {
	roles map[string]Capability
}

// NewAuthorizer builds an authorizer from a capability table.
func NewAuthorizer(table map[string]Capability) *Authorizer {
	roles := make(map[string]Capability, len(table))
	for role, cap := range table {
		roles[role] = cap
	}
	return &Authorizer{roles: roles}
}

// LoadAuthorizer reads a JSON capability table from a file.
// The document shape is {"ROLE": {"can_create": bool, "can_approve": ["DEPOSIT", ...], "admin": bool}}.
func LoadAuthorizer(path string) (*Authorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var table map[string]Capability
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, err
	}
	return NewAuthorizer(table), nil
}

// DefaultAuthorizer returns the stock municipal role table: one initiator
// role that submits, five approver roles that decide on both kinds, and an
// admin role that can cancel.
func DefaultAuthorizer() *Authorizer {
	both := []models.TransactionKind{models.Deposit, models.Withdrawal}
	table := map[string]Capability{
		"INITIATOR":  {CanCreate: true},
		"APPROVER_1": {CanApprove: both},
		"APPROVER_2": {CanApprove: both},
		"APPROVER_3": {CanApprove: both},
		"APPROVER_4": {CanApprove: both},
		"APPROVER_5": {CanApprove: both},
		"ADMIN":      {Admin: true},
	}
	return NewAuthorizer(table)
}

// CanCreate reports whether the role may submit transactions.
func (a *Authorizer) CanCreate(role string) bool {
	return a.roles[role].CanCreate
}

// CanApprove reports whether the role may decide on the given kind.
func (a *Authorizer) CanApprove(role string, kind models.TransactionKind) bool {
	for _, k := range a.roles[role].CanApprove {
		if k == kind {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the role carries the administrator capability.
func (a *Authorizer) IsAdmin(role string) bool {
	return a.roles[role].Admin
}

// ApprovableKinds returns the kinds the role may decide on. Used by the
// pending-transaction projection.
func (a *Authorizer) ApprovableKinds(role string) []models.TransactionKind {
	cap := a.roles[role]
	kinds := make([]models.TransactionKind, len(cap.CanApprove))
	copy(kinds, cap.CanApprove)
	return kinds
}

// ApproverRoles returns the roles eligible to decide on a kind, sorted for
// deterministic notification fan-out.
func (a *Authorizer) ApproverRoles(kind models.TransactionKind) []string {
	var roles []string
	for role, cap := range a.roles {
		for _, k := range cap.CanApprove {
			if k == kind {
				roles = append(roles, role)
				break
			}
		}
	}
	sort.Strings(roles)
	return roles
}
