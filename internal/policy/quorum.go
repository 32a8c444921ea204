package policy

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/avolkhin/mw-approval-engine/internal/models"
)

// Error variables
var (
	ErrInvalidRule = errors.New("quorum rule thresholds and timeout must be positive")
	ErrUnknownKind = errors.New("no quorum rule for transaction kind")
)

// Rule holds the quorum requirements for one transaction kind.
type Rule struct {
	ApprovalsRequired  int           // Approve decisions needed to finalize as APPROVED
	RejectionsRequired int           // Reject decisions needed to finalize as REJECTED
	Timeout            time.Duration // Approval window from submission to deadline
}

// Quorum is an immutable per-kind rule set. It is never mutated after
// construction; reconfiguration builds a new Quorum and swaps it into a
// Store so in-flight operations never observe a torn read.
type Quorum struct {
	rules map[models.TransactionKind]Rule
}

// NewQuorum builds a rule set, validating every rule.
func NewQuorum(rules map[models.TransactionKind]Rule) (*Quorum, error) {
	q := &Quorum{rules: make(map[models.TransactionKind]Rule, len(rules))}
	for kind, rule := range rules {
		if rule.ApprovalsRequired <= 0 || rule.RejectionsRequired <= 0 || rule.Timeout <= 0 {
			return nil, ErrInvalidRule
		}
		q.rules[kind] = rule
	}
	return q, nil
}

// Rule returns the rule for a kind.
func (q *Quorum) Rule(kind models.TransactionKind) (Rule, error) {
	rule, ok := q.rules[kind]
	if !ok {
		return Rule{}, ErrUnknownKind
	}
	return rule, nil
}

// Store holds the process-wide quorum configuration snapshot. Load returns
// the current snapshot; Replace installs a whole new one atomically.
type Store struct {
	current atomic.Pointer[Quorum]
}

// NewStore creates a store seeded with an initial snapshot.
func NewStore(initial *Quorum) *Store {
	s := &Store{}
	s.current.Store(initial)
	return s
}

// Load returns the current quorum snapshot.
func (s *Store) Load() *Quorum {
	return s.current.Load()
}

// Replace swaps in a new snapshot. Operations already holding the old
// snapshot finish against it; partial updates are impossible.
func (s *Store) Replace(next *Quorum) {
	s.current.Store(next)
}
