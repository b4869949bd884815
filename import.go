package finstate

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mvezin/finstate/date"
)

// Bank exports come in as arbitrary JSON documents. An ImportMapping tells
// the importer where to find each transaction field, as JSONPath
// expressions: Records selects the list of raw records, the other paths are
// evaluated against each record. The importer only produces drafts; the
// caller commits them through AddTransaction once the user confirmed.

// ImportMapping holds the JSONPath expressions of an import profile.
type ImportMapping struct {
	Records  string // selects the list of records, e.g. "$.transactions[*]"
	Date     string // e.g. "$.booked"
	Merchant string // e.g. "$.counterparty.name"
	Amount   string // e.g. "$.amount.value", signed
	Category string // optional
	Currency string // currency code for the amounts, not a path
}

// DefaultImportMapping matches a flat export with one object per
// transaction.
func DefaultImportMapping(currency string) ImportMapping {
	return ImportMapping{
		Records:  "$[*]",
		Date:     "$.date",
		Merchant: "$.merchant",
		Amount:   "$.amount",
		Category: "$.category",
		Currency: currency,
	}
}

// ImportDrafts reads a JSON export and maps it into draft transactions for
// the given account. The sign of the exported amount decides the direction:
// negative becomes an expense, positive an income; the draft carries the
// magnitude. A non-finite or non-numeric amount fails the whole import.
func ImportDrafts(r io.Reader, mapping ImportMapping, accountID string) ([]DraftTransaction, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("could not parse export: %w", err)
	}

	jrecords, err := jsonpath.Get(mapping.Records, doc)
	if err != nil {
		return nil, fmt.Errorf("could not select records with %q: %w", mapping.Records, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single
		// answer: a single record is wrapped into a one-element list.
		records = []any{jrecords}
	}

	drafts := make([]DraftTransaction, 0, len(records))
	for i, record := range records {
		draft, err := mapRecord(record, mapping, accountID)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func mapRecord(record any, mapping ImportMapping, accountID string) (DraftTransaction, error) {
	dateStr, err := getString(record, mapping.Date)
	if err != nil {
		return DraftTransaction{}, err
	}
	on, err := date.Parse(dateStr)
	if err != nil {
		return DraftTransaction{}, err
	}

	merchant, err := getString(record, mapping.Merchant)
	if err != nil {
		return DraftTransaction{}, err
	}

	value, err := getNumber(record, mapping.Amount)
	if err != nil {
		return DraftTransaction{}, err
	}
	amount, err := ParseFloat(value, mapping.Currency)
	if err != nil {
		return DraftTransaction{}, err
	}

	category := ""
	if mapping.Category != "" {
		// the category is best effort: exports without one still import.
		category, _ = getString(record, mapping.Category)
	}

	kind := Income
	if amount.IsNegative() {
		kind = Expense
	}

	return DraftTransaction{
		Date:      on,
		Merchant:  merchant,
		Amount:    amount.Abs(),
		Type:      kind,
		Category:  category,
		AccountID: accountID,
	}, nil
}

// getString evaluates a JSONPath expression expected to yield a string.
func getString(record any, path string) (string, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return "", fmt.Errorf("could not evaluate %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	str, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q: %v is not a string", path, jval)
	}
	return str, nil
}

// getNumber evaluates a JSONPath expression expected to yield a finite
// number. Exports that quote their amounts are accepted too.
func getNumber(record any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return math.NaN(), fmt.Errorf("could not evaluate %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		value, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return math.NaN(), fmt.Errorf("%q: %q is not a number: %w", path, v, err)
		}
		return value, nil
	default:
		return math.NaN(), fmt.Errorf("%q: %v is not a number", path, jval)
	}
}
