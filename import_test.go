package finstate

import (
	"strings"
	"testing"
)

const flatExport = `[
  {"date": "2025-07-10", "merchant": "Bakery", "amount": -4.5, "category": "groceries"},
  {"date": "2025-07-11", "merchant": "Acme Corp", "amount": 2500.0, "category": "salary"},
  {"date": "2025-07-12", "merchant": "Quoted Shop", "amount": "-12.30"}
]`

func TestImportDrafts(t *testing.T) {
	drafts, err := ImportDrafts(strings.NewReader(flatExport), DefaultImportMapping("EUR"), "acc-1")
	if err != nil {
		t.Fatalf("ImportDrafts: unexpected error %v", err)
	}
	if len(drafts) != 3 {
		t.Fatalf("drafts = %d, want 3", len(drafts))
	}

	if d := drafts[0]; d.Type != Expense || !d.Amount.Equal(EUR(4.5)) || d.Merchant != "Bakery" || d.Category != "groceries" {
		t.Errorf("draft 0 = %+v", d)
	}
	if d := drafts[1]; d.Type != Income || !d.Amount.Equal(EUR(2500)) {
		t.Errorf("draft 1 = %+v", d)
	}
	// quoted amounts and missing categories are accepted.
	if d := drafts[2]; d.Type != Expense || !d.Amount.Equal(EUR(12.30)) || d.Category != "" {
		t.Errorf("draft 2 = %+v", d)
	}
	for _, d := range drafts {
		if d.AccountID != "acc-1" {
			t.Errorf("draft not attached to account: %+v", d)
		}
	}
}

func TestImportDrafts_NestedMapping(t *testing.T) {
	export := `{"result": {"entries": [
	  {"booked": "2025-06-30", "counterparty": {"name": "Grid Power"}, "value": {"amount": -60.0}}
	]}}`
	mapping := ImportMapping{
		Records:  "$.result.entries[*]",
		Date:     "$.booked",
		Merchant: "$.counterparty.name",
		Amount:   "$.value.amount",
		Currency: "EUR",
	}

	drafts, err := ImportDrafts(strings.NewReader(export), mapping, "acc-2")
	if err != nil {
		t.Fatalf("ImportDrafts: unexpected error %v", err)
	}
	if len(drafts) != 1 {
		t.Fatalf("drafts = %d, want 1", len(drafts))
	}
	if d := drafts[0]; d.Merchant != "Grid Power" || !d.Amount.Equal(EUR(60)) || d.Type != Expense {
		t.Errorf("draft = %+v", d)
	}
}

func TestImportDrafts_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		export string
	}{
		{name: "amount not numeric", export: `[{"date":"2025-07-01","merchant":"x","amount":"lots"}]`},
		{name: "bad date", export: `[{"date":"yesterday","merchant":"x","amount":1}]`},
		{name: "missing merchant", export: `[{"date":"2025-07-01","amount":1}]`},
		{name: "broken json", export: `{"date":`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ImportDrafts(strings.NewReader(tc.export), DefaultImportMapping("EUR"), "acc-1"); err == nil {
				t.Errorf("want error for %s", tc.name)
			}
		})
	}
}
