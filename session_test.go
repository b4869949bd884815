package finstate

import "testing"

func TestNavigate_AtomicUpdate(t *testing.T) {
	session := NewSession("lena")

	accountID := "acc-1"
	filter := "groceries"
	session.Navigate(ScreenTransactions, NavParams{AccountID: &accountID, TransactionFilter: &filter})

	if session.ActiveScreen != ScreenTransactions {
		t.Errorf("screen = %q, want transactions", session.ActiveScreen)
	}
	if session.SelectedAccountID != "acc-1" || session.TransactionFilter != "groceries" {
		t.Errorf("selections not applied: %+v", session)
	}

	// nil params leave previous selections untouched.
	session.Navigate(ScreenDashboard, NavParams{})
	if session.SelectedAccountID != "acc-1" || session.TransactionFilter != "groceries" {
		t.Errorf("nil params cleared selections: %+v", session)
	}
}

func TestNavigate_NeverValidatesIDs(t *testing.T) {
	session := NewSession("lena")
	ghost := "no-such-account"
	session.Navigate(ScreenAccounts, NavParams{AccountID: &ghost})
	if session.SelectedAccountID != ghost {
		t.Errorf("navigate rejected an unresolved id; resolution is the reader's concern")
	}
}

func TestAssistQuota(t *testing.T) {
	session := NewSession("lena")
	for i := 0; i < DefaultAssistQuota; i++ {
		if !session.UseAssistQuestion() {
			t.Fatalf("question %d rejected within quota", i+1)
		}
	}
	if session.UseAssistQuestion() {
		t.Error("question accepted beyond quota")
	}
	if session.AssistQuota != 0 {
		t.Errorf("quota = %d, want 0 (never negative)", session.AssistQuota)
	}
}
