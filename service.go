package finstate

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/mvezin/finstate/date"
)

// Service validates and applies every state transition, scoped to the
// session's active user. Each operation is a single synchronous step: it
// either applies completely or leaves the store untouched.
//
// Operations that reference an id that does not exist (edit, delete,
// mark-read, contribute) are silent no-ops. A stale selection held by the
// presentation layer must never crash a mutation; callers that need to
// distinguish "applied" from "ignored" check the collection beforehand.
type Service struct {
	store   *Store
	session *Session

	today func() date.Date // overridable clock, for tests
	newID func() string    // overridable id factory, for tests
}

// NewService creates a service over the given store and session. Fresh ids
// are time-ordered UUIDs, unique for the lifetime of the session and beyond.
func NewService(store *Store, session *Session) *Service {
	return &Service{
		store:   store,
		session: session,
		today:   date.Today,
		newID:   func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// Session returns the session the service is scoped by.
func (s *Service) Session() *Session { return s.session }

// Read accessors, computed against the active user. They return the live
// collections, never copies.

func (s *Service) Accounts() []Account           { return s.store.Accounts(s.session.ActiveUser) }
func (s *Service) Transactions() []Transaction   { return s.store.Transactions(s.session.ActiveUser) }
func (s *Service) Budgets() []Budget             { return s.store.Budgets(s.session.ActiveUser) }
func (s *Service) Goals() []Goal                 { return s.store.Goals(s.session.ActiveUser) }
func (s *Service) Notifications() []Notification { return s.store.Notifications(s.session.ActiveUser) }

// Account returns the active user's account with the given id.
func (s *Service) Account(id string) (Account, bool) {
	for _, a := range s.Accounts() {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// TransactionInput carries the caller-supplied fields of a new transaction.
type TransactionInput struct {
	Date      date.Date // defaults to today
	Merchant  string
	Amount    Money
	Type      TxType
	Category  string
	AccountID string
}

// AddTransaction validates the input, assigns a fresh id and prepends the
// transaction to the active user's sequence. It deliberately does not touch
// any account balance: balances and transactions are independent fields.
func (s *Service) AddTransaction(input TransactionInput) (Transaction, error) {
	if input.Amount.IsNegative() {
		return Transaction{}, fmt.Errorf("invalid transaction amount %s: must be a non-negative magnitude", input.Amount)
	}
	if _, err := ParseTxType(string(input.Type)); err != nil {
		return Transaction{}, err
	}
	if _, ok := s.Account(input.AccountID); !ok {
		return Transaction{}, fmt.Errorf("unknown account %q for user %q", input.AccountID, s.session.ActiveUser)
	}
	if input.Date.IsZero() {
		input.Date = s.today()
	}

	tx := Transaction{
		ID:        s.newID(),
		Date:      input.Date,
		Merchant:  input.Merchant,
		Amount:    input.Amount,
		Type:      input.Type,
		Category:  input.Category,
		AccountID: input.AccountID,
	}
	txs := s.Transactions()
	updated := make([]Transaction, 0, len(txs)+1)
	updated = append(updated, tx)
	updated = append(updated, txs...)
	s.store.ReplaceTransactions(s.session.ActiveUser, updated)
	return tx, nil
}

// CommitDraft finalizes a draft transaction produced by a composite
// operation, after the caller confirmed it.
func (s *Service) CommitDraft(draft DraftTransaction) (Transaction, error) {
	return s.AddTransaction(TransactionInput{
		Date:      draft.Date,
		Merchant:  draft.Merchant,
		Amount:    draft.Amount,
		Type:      draft.Type,
		Category:  draft.Category,
		AccountID: draft.AccountID,
	})
}

// EditTransaction merges the set fields of the update into the transaction
// with the given id. Unknown ids are a silent no-op.
func (s *Service) EditTransaction(id string, update TransactionUpdate) {
	txs := s.Transactions()
	for i := range txs {
		if txs[i].ID == id {
			update.apply(&txs[i])
			return
		}
	}
}

// GoalInput carries the caller-supplied fields of a new goal.
type GoalInput struct {
	Name          string
	Emoji         string
	AccountID     string
	TargetAmount  Money
	CurrentAmount Money
	Contributions []Contribution
}

// AddGoal assigns a fresh id and appends the goal. Contributions start empty
// when not supplied.
func (s *Service) AddGoal(input GoalInput) (Goal, error) {
	if input.CurrentAmount.IsNegative() {
		return Goal{}, fmt.Errorf("invalid goal amount %s: must be non-negative", input.CurrentAmount)
	}
	if input.AccountID != "" {
		if _, ok := s.Account(input.AccountID); !ok {
			return Goal{}, fmt.Errorf("unknown account %q for user %q", input.AccountID, s.session.ActiveUser)
		}
	}
	g := Goal{
		ID:            s.newID(),
		Name:          input.Name,
		Emoji:         input.Emoji,
		AccountID:     input.AccountID,
		TargetAmount:  input.TargetAmount,
		CurrentAmount: input.CurrentAmount,
		// copied so a caller-held slice cannot alias into the store
		Contributions: append([]Contribution{}, input.Contributions...),
	}
	s.store.ReplaceGoals(s.session.ActiveUser, append(s.Goals(), g))
	return g, nil
}

// AddGoalContribution increases the goal's current amount by the given
// amount and appends a dated contribution record, keeping both in step. A
// negative amount is a withdrawal against the goal; no lower bound is
// imposed here. The contribution must be in the goal's currency. Unknown ids
// are a silent no-op.
func (s *Service) AddGoalContribution(goalID string, amount Money) error {
	goals := s.Goals()
	for i := range goals {
		if goals[i].ID != goalID {
			continue
		}
		if !goals[i].CurrentAmount.Compatible(amount) {
			return fmt.Errorf("invalid contribution %s: goal %q is kept in %s", amount, goals[i].Name, goals[i].CurrentAmount.Currency())
		}
		goals[i].CurrentAmount = goals[i].CurrentAmount.Add(amount)
		goals[i].Contributions = append(goals[i].Contributions, Contribution{
			Date:   s.today(),
			Amount: amount,
		})
		return nil
	}
	return nil
}

// BudgetInput carries the caller-supplied fields of a new budget.
type BudgetInput struct {
	Category string
	Limit    Money
	Spent    Money
	Month    date.Month // defaults to the current month
	AlertAt  Percent
	Rollover bool
}

// AddBudget assigns a fresh id and appends the budget. A second budget for
// the same (category, month) pair is accepted as an independent envelope,
// with a logged notice.
func (s *Service) AddBudget(input BudgetInput) (Budget, error) {
	if !input.Limit.IsPositive() {
		return Budget{}, fmt.Errorf("invalid budget limit %s: must be positive", input.Limit)
	}
	if input.Spent.IsNegative() {
		return Budget{}, fmt.Errorf("invalid budget spent %s: must be non-negative", input.Spent)
	}
	if input.AlertAt < 0 || input.AlertAt > 100 {
		return Budget{}, fmt.Errorf("invalid alert threshold %v: must be between 0 and 100", input.AlertAt)
	}
	if !input.Limit.Compatible(input.Spent) {
		return Budget{}, fmt.Errorf("invalid budget amounts: limit in %s, spent in %s", input.Limit.Currency(), input.Spent.Currency())
	}
	if input.Month.IsZero() {
		input.Month = date.MonthOf(s.today())
	}
	for _, b := range s.Budgets() {
		if b.Category == input.Category && b.Month == input.Month {
			log.Printf("%v: another %q budget already exists for %q", input.Month, input.Category, s.session.ActiveUser)
			break
		}
	}
	b := Budget{
		ID:       s.newID(),
		Category: input.Category,
		Limit:    input.Limit,
		Spent:    input.Spent,
		Month:    input.Month,
		AlertAt:  input.AlertAt,
		Rollover: input.Rollover,
	}
	s.store.ReplaceBudgets(s.session.ActiveUser, append(s.Budgets(), b))
	return b, nil
}

// EditBudget merges the set fields of the update into the budget with the
// given id. Unknown ids are a silent no-op.
func (s *Service) EditBudget(id string, update BudgetUpdate) {
	budgets := s.Budgets()
	for i := range budgets {
		if budgets[i].ID == id {
			update.apply(&budgets[i])
			return
		}
	}
}

// DeleteBudget removes the budget with the given id. Unknown ids are a
// silent no-op.
func (s *Service) DeleteBudget(id string) {
	budgets := s.Budgets()
	for i := range budgets {
		if budgets[i].ID == id {
			updated := make([]Budget, 0, len(budgets)-1)
			updated = append(updated, budgets[:i]...)
			updated = append(updated, budgets[i+1:]...)
			s.store.ReplaceBudgets(s.session.ActiveUser, updated)
			return
		}
	}
}

// UpdateAccountBalance overwrites the balance of the given account. Unknown
// ids are a silent no-op.
func (s *Service) UpdateAccountBalance(accountID string, newBalance Money) {
	accounts := s.Accounts()
	for i := range accounts {
		if accounts[i].ID == accountID {
			accounts[i].Balance = newBalance
			return
		}
	}
}

// RecordBalanceAdjustment sets the account balance to targetBalance and
// returns a draft transaction describing the difference: income when the
// balance went up, expense when it went down. The draft is only a proposal.
// Committing it is the caller's decision, behind its own confirmation gate,
// so the core never fabricates a transaction from a balance edit on its own.
func (s *Service) RecordBalanceAdjustment(accountID string, targetBalance Money) (DraftTransaction, error) {
	account, ok := s.Account(accountID)
	if !ok {
		return DraftTransaction{}, fmt.Errorf("unknown account %q for user %q", accountID, s.session.ActiveUser)
	}
	if !account.Balance.Compatible(targetBalance) {
		return DraftTransaction{}, fmt.Errorf("invalid target balance %s: account %q is kept in %s", targetBalance, account.Name, account.Balance.Currency())
	}

	diff := targetBalance.Sub(account.Balance)
	if diff.IsZero() {
		// Nothing to reconcile, and no draft to offer.
		return DraftTransaction{}, nil
	}

	kind := Income
	if diff.IsNegative() {
		kind = Expense
	}
	s.UpdateAccountBalance(accountID, targetBalance)

	return DraftTransaction{
		Date:      s.today(),
		Merchant:  "Balance adjustment",
		Amount:    diff.Abs(),
		Type:      kind,
		Category:  "adjustment",
		AccountID: accountID,
	}, nil
}

// MarkNotificationRead flips the read flag of one notification. Unknown ids
// are a silent no-op.
func (s *Service) MarkNotificationRead(id string) {
	notifications := s.Notifications()
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].IsRead = true
			return
		}
	}
}

// MarkAllRead flips the read flag of every notification of the active user.
func (s *Service) MarkAllRead() {
	notifications := s.Notifications()
	for i := range notifications {
		notifications[i].IsRead = true
	}
}

// SwitchUser makes newUser the active user and resets all transient session
// state: selections clear, the screen returns to the dashboard, and the
// assistant quota and transcript return to their initial values. The per-user
// collections are untouched. The target user must exist in the store.
func (s *Service) SwitchUser(newUser string) error {
	if !s.store.HasUser(newUser) {
		return fmt.Errorf("unknown user %q", newUser)
	}
	s.session.ActiveUser = newUser
	s.session.Reset()
	return nil
}
