package finstate

import (
	"maps"
	"slices"
)

// Bundle holds every per-user collection. Each slice is exclusively owned by
// the store; readers get the live slice, never a copy, so a mutation is
// immediately visible through any existing selection.
type Bundle struct {
	Accounts      []Account
	Transactions  []Transaction
	Budgets       []Budget
	Goals         []Goal
	Notifications []Notification
}

// Store maps a user identifier to that user's collections. It is a typed
// container, not a rule engine: validation happens in the Service. The whole
// model is single-writer, so the store needs no locking.
type Store struct {
	users map[string]*Bundle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{users: make(map[string]*Bundle)}
}

// AddUser registers a user with the given seed collections. It replaces the
// bundle if the user already exists.
func (s *Store) AddUser(user string, b *Bundle) {
	if b == nil {
		b = &Bundle{}
	}
	s.users[user] = b
}

// HasUser reports whether the user is known to the store.
func (s *Store) HasUser(user string) bool {
	_, ok := s.users[user]
	return ok
}

// Users returns the known user identifiers in stable order.
func (s *Store) Users() []string {
	users := slices.Collect(maps.Keys(s.users))
	slices.Sort(users)
	return users
}

// Bundle returns the collections of the given user, or nil for an unknown
// user.
func (s *Store) Bundle(user string) *Bundle {
	return s.users[user]
}

// Accessors below return the live collection of a user, and an atomic
// replacement for each. An unknown user reads as empty and writes are
// dropped; the Service validates users at its boundary.

func (s *Store) Accounts(user string) []Account {
	if b := s.users[user]; b != nil {
		return b.Accounts
	}
	return nil
}

func (s *Store) ReplaceAccounts(user string, accounts []Account) {
	if b := s.users[user]; b != nil {
		b.Accounts = accounts
	}
}

func (s *Store) Transactions(user string) []Transaction {
	if b := s.users[user]; b != nil {
		return b.Transactions
	}
	return nil
}

func (s *Store) ReplaceTransactions(user string, transactions []Transaction) {
	if b := s.users[user]; b != nil {
		b.Transactions = transactions
	}
}

func (s *Store) Budgets(user string) []Budget {
	if b := s.users[user]; b != nil {
		return b.Budgets
	}
	return nil
}

func (s *Store) ReplaceBudgets(user string, budgets []Budget) {
	if b := s.users[user]; b != nil {
		b.Budgets = budgets
	}
}

func (s *Store) Goals(user string) []Goal {
	if b := s.users[user]; b != nil {
		return b.Goals
	}
	return nil
}

func (s *Store) ReplaceGoals(user string, goals []Goal) {
	if b := s.users[user]; b != nil {
		b.Goals = goals
	}
}

func (s *Store) Notifications(user string) []Notification {
	if b := s.users[user]; b != nil {
		return b.Notifications
	}
	return nil
}

func (s *Store) ReplaceNotifications(user string, notifications []Notification) {
	if b := s.users[user]; b != nil {
		b.Notifications = notifications
	}
}
