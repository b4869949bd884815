package finstate

import (
	"bytes"
	"strings"
	"testing"
)

const sampleProfile = `{"record":"account","id":"acc-1","name":"Everyday","type":"checking","institution":"Meridian","balance":{"currency":"EUR","amount":5000},"brandColor":"#0A84FF"}
{"record":"account","id":"acc-2","name":"Platinum","type":"credit_card","institution":"Meridian","balance":{"currency":"EUR","amount":-1234},"creditLimit":{"currency":"EUR","amount":5000},"statementBalance":{"currency":"EUR","amount":1234}}
{"record":"transaction","id":"t1","date":"2025-07-10","merchant":"Bakery","amount":{"currency":"EUR","amount":4.5},"type":"expense","category":"groceries","account":"acc-1"}
{"record":"budget","id":"b1","category":"groceries","limit":{"currency":"EUR","amount":180},"spent":{"currency":"EUR","amount":124},"month":"2025-07","alertAt":80}
{"record":"goal","id":"g1","name":"Trip","emoji":"🏝️","accountId":"acc-1","targetAmount":{"currency":"EUR","amount":500},"currentAmount":{"currency":"EUR","amount":250},"contributions":[{"date":"2025-07-01","amount":{"currency":"EUR","amount":250}}]}
{"record":"notification","id":"n1","type":"alert","title":"Budget alert","message":"groceries at 80%","isRead":false}
`

func TestDecodeBundle(t *testing.T) {
	bundle, err := DecodeBundle(strings.NewReader(sampleProfile))
	if err != nil {
		t.Fatalf("DecodeBundle: unexpected error %v", err)
	}

	if len(bundle.Accounts) != 2 || len(bundle.Transactions) != 1 ||
		len(bundle.Budgets) != 1 || len(bundle.Goals) != 1 || len(bundle.Notifications) != 1 {
		t.Fatalf("unexpected collection sizes: %+v", bundle)
	}

	card := bundle.Accounts[1]
	if card.Type != CreditCard || !card.CreditLimit.Equal(EUR(5000)) {
		t.Errorf("credit card decoded as %+v", card)
	}
	utilization, ok := card.CreditUtilization()
	if !ok || !utilization.Equal(24.7) {
		t.Errorf("utilization = %v ok=%v, want 24.7 true", utilization, ok)
	}

	tx := bundle.Transactions[0]
	if tx.Merchant != "Bakery" || !tx.Amount.Equal(EUR(4.5)) || tx.AccountID != "acc-1" {
		t.Errorf("transaction decoded as %+v", tx)
	}

	goal := bundle.Goals[0]
	if !goal.CurrentAmount.Equal(EUR(250)) || len(goal.Contributions) != 1 {
		t.Errorf("goal decoded as %+v", goal)
	}
}

func TestEncodeBundle_RoundTrip(t *testing.T) {
	bundle, err := DecodeBundle(strings.NewReader(sampleProfile))
	if err != nil {
		t.Fatalf("DecodeBundle: unexpected error %v", err)
	}

	// The canonical form must be a fixed point: decode-encode of an already
	// canonical profile yields byte-identical output.
	var first bytes.Buffer
	if err := EncodeBundle(&first, bundle); err != nil {
		t.Fatalf("EncodeBundle: unexpected error %v", err)
	}

	again, err := DecodeBundle(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeBundle (round trip): unexpected error %v", err)
	}
	var second bytes.Buffer
	if err := EncodeBundle(&second, again); err != nil {
		t.Fatalf("EncodeBundle (round trip): unexpected error %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("canonical form is not stable:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

func TestDecodeBundle_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "unknown record kind", line: `{"record":"wallet","id":"x"}`},
		{name: "unknown account type", line: `{"record":"account","id":"x","type":"brokerage"}`},
		{name: "unknown transaction type", line: `{"record":"transaction","id":"x","date":"2025-01-01","type":"refund"}`},
		{name: "broken json", line: `{"record":"account"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeBundle(strings.NewReader(tc.line + "\n")); err == nil {
				t.Errorf("DecodeBundle(%q): want error", tc.line)
			}
		})
	}
}
