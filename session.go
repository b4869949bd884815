package finstate

import "fmt"

// Screen is a typed string identifying a presentation screen.
type Screen string

// Screens the presentation layer can navigate to.
const (
	ScreenDashboard     Screen = "dashboard"
	ScreenAccounts      Screen = "accounts"
	ScreenTransactions  Screen = "transactions"
	ScreenBudgets       Screen = "budgets"
	ScreenGoals         Screen = "goals"
	ScreenNotifications Screen = "notifications"
	ScreenAssist        Screen = "assist"
)

// ParseScreen parses a string into a Screen.
func ParseScreen(s string) (Screen, error) {
	switch Screen(s) {
	case ScreenDashboard, ScreenAccounts, ScreenTransactions, ScreenBudgets,
		ScreenGoals, ScreenNotifications, ScreenAssist:
		return Screen(s), nil
	default:
		return "", fmt.Errorf("unknown screen: %q", s)
	}
}

// DefaultAssistQuota is the number of assistant questions a user gets per
// session.
const DefaultAssistQuota = 5

// ChatMessage is one entry of the assistant transcript.
type ChatMessage struct {
	Role string `json:"role"` // "user" or "assistant"
	Text string `json:"text"`
}

// Session scopes every operation to one active user and carries the
// UI-transient state: the current screen, selections, the active modal, the
// transaction filter, and the assistant quota and transcript.
//
// It is an explicit object passed to whoever needs it, never package state,
// so its lifecycle is visible and testable.
type Session struct {
	ActiveUser            string
	ActiveScreen          Screen
	SelectedAccountID     string
	SelectedTransactionID string
	SelectedGoalID        string
	ActiveModal           string
	TransactionFilter     string

	AssistQuota int
	Transcript  []ChatMessage
}

// NewSession creates a session for the given user with all transient state
// at its initial values.
func NewSession(user string) *Session {
	return &Session{
		ActiveUser:   user,
		ActiveScreen: ScreenDashboard,
		AssistQuota:  DefaultAssistQuota,
	}
}

// Reset clears every transient field back to its initial value, keeping only
// the active user. Called on every user switch.
func (s *Session) Reset() {
	user := s.ActiveUser
	*s = *NewSession(user)
}

// NavParams carries the optional selection updates of a Navigate call. Nil
// fields are left untouched.
type NavParams struct {
	AccountID         *string
	TransactionFilter *string
	GoalID            *string
}

// Navigate updates the active screen and any selection supplied in params as
// one step. It never checks that the referenced ids exist: resolving a stale
// selection is the reader's concern.
func (s *Session) Navigate(screen Screen, params NavParams) {
	s.ActiveScreen = screen
	if params.AccountID != nil {
		s.SelectedAccountID = *params.AccountID
	}
	if params.TransactionFilter != nil {
		s.TransactionFilter = *params.TransactionFilter
	}
	if params.GoalID != nil {
		s.SelectedGoalID = *params.GoalID
	}
}

// UseAssistQuestion consumes one assistant question from the quota. It
// reports false, without going negative, when the quota is exhausted.
func (s *Session) UseAssistQuestion() bool {
	if s.AssistQuota <= 0 {
		return false
	}
	s.AssistQuota--
	return true
}

// Record appends a message to the assistant transcript.
func (s *Session) Record(role, text string) {
	s.Transcript = append(s.Transcript, ChatMessage{Role: role, Text: text})
}
