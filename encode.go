package finstate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/mvezin/finstate/date"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file persists a user profile as JSONL, one record per line, in a way
// that is human-readable and git-friendly. Each line carries a "record"
// discriminator naming the collection it belongs to. The core itself never
// writes to disk; the presentation layer decides when a profile is loaded
// and saved.

// RecordKind is a typed string identifying the collection a profile line
// belongs to.
type RecordKind string

// Record kinds used in profile files.
const (
	RecAccount      RecordKind = "account"
	RecTransaction  RecordKind = "transaction"
	RecBudget       RecordKind = "budget"
	RecGoal         RecordKind = "goal"
	RecNotification RecordKind = "notification"
)

// jaccount mirrors Account for json decoding.
type jaccount struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Type             string    `json:"type"`
	Institution      string    `json:"institution"`
	Balance          Money     `json:"balance"`
	BrandColor       string    `json:"brandColor"`
	LastSynced       string    `json:"lastSynced"`
	AccountNumber    string    `json:"accountNumber"`
	CreditLimit      Money     `json:"creditLimit"`
	StatementBalance Money     `json:"statementBalance"`
	MinPaymentDue    Money     `json:"minPaymentDue"`
	PaymentDueDate   date.Date `json:"paymentDueDate"`
}

type jtransaction struct {
	ID        string    `json:"id"`
	Date      date.Date `json:"date"`
	Merchant  string    `json:"merchant"`
	Amount    Money     `json:"amount"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
	AccountID string    `json:"account"`
}

type jbudget struct {
	ID       string     `json:"id"`
	Category string     `json:"category"`
	Limit    Money      `json:"limit"`
	Spent    Money      `json:"spent"`
	Month    date.Month `json:"month"`
	AlertAt  float64    `json:"alertAt"`
	Rollover bool       `json:"rollover"`
}

type jgoal struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Emoji         string         `json:"emoji"`
	AccountID     string         `json:"accountId"`
	TargetAmount  Money          `json:"targetAmount"`
	CurrentAmount Money          `json:"currentAmount"`
	Contributions []Contribution `json:"contributions"`
}

type jnotification struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time"`
	IsRead  bool   `json:"isRead"`
	Route   string `json:"route"`
	Icon    string `json:"icon"`
}

// DecodeBundle decodes a user profile from a stream of JSONL data. Lines are
// dispatched on their "record" discriminator; blank lines are skipped.
func DecodeBundle(r io.Reader) (*Bundle, error) {
	bundle := &Bundle{}
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue
		}

		var identifier struct {
			Record RecordKind `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify record in %q: %w", line, string(lineBytes), err)
		}

		switch identifier.Record {
		case RecAccount:
			var j jaccount
			if err := json.Unmarshal(lineBytes, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid account: %w", line, err)
			}
			accountType, err := ParseAccountType(j.Type)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			bundle.Accounts = append(bundle.Accounts, Account{
				ID:               j.ID,
				Name:             j.Name,
				Type:             accountType,
				Institution:      j.Institution,
				Balance:          j.Balance,
				BrandColor:       j.BrandColor,
				LastSynced:       j.LastSynced,
				AccountNumber:    j.AccountNumber,
				CreditLimit:      j.CreditLimit,
				StatementBalance: j.StatementBalance,
				MinPaymentDue:    j.MinPaymentDue,
				PaymentDueDate:   j.PaymentDueDate,
			})

		case RecTransaction:
			var j jtransaction
			if err := json.Unmarshal(lineBytes, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid transaction: %w", line, err)
			}
			txType, err := ParseTxType(j.Type)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			bundle.Transactions = append(bundle.Transactions, Transaction{
				ID:        j.ID,
				Date:      j.Date,
				Merchant:  j.Merchant,
				Amount:    j.Amount,
				Type:      txType,
				Category:  j.Category,
				AccountID: j.AccountID,
			})

		case RecBudget:
			var j jbudget
			if err := json.Unmarshal(lineBytes, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid budget: %w", line, err)
			}
			bundle.Budgets = append(bundle.Budgets, Budget{
				ID:       j.ID,
				Category: j.Category,
				Limit:    j.Limit,
				Spent:    j.Spent,
				Month:    j.Month,
				AlertAt:  Percent(j.AlertAt),
				Rollover: j.Rollover,
			})

		case RecGoal:
			var j jgoal
			if err := json.Unmarshal(lineBytes, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid goal: %w", line, err)
			}
			goal := Goal{
				ID:            j.ID,
				Name:          j.Name,
				Emoji:         j.Emoji,
				AccountID:     j.AccountID,
				TargetAmount:  j.TargetAmount,
				CurrentAmount: j.CurrentAmount,
				Contributions: j.Contributions,
			}
			if goal.Contributions == nil {
				goal.Contributions = []Contribution{}
			}
			bundle.Goals = append(bundle.Goals, goal)

		case RecNotification:
			var j jnotification
			if err := json.Unmarshal(lineBytes, &j); err != nil {
				return nil, fmt.Errorf("line %d: invalid notification: %w", line, err)
			}
			bundle.Notifications = append(bundle.Notifications, Notification(j))

		default:
			return nil, fmt.Errorf("line %d: unknown record kind %q", line, identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read profile: %w", err)
	}
	return bundle, nil
}

// EncodeBundle writes a user profile as canonical JSONL: accounts first,
// then transactions, budgets, goals and notifications, one record per line,
// fields in a fixed order.
func EncodeBundle(w io.Writer, bundle *Bundle) error {
	write := func(kind RecordKind, v json.Marshaler) error {
		var obj jsonObjectWriter
		obj.Append("record", kind)
		body, err := v.MarshalJSON()
		if err != nil {
			return err
		}
		// merge the entity fields after the discriminator.
		line, err := obj.MarshalJSON()
		if err != nil {
			return err
		}
		merged := append(line[:len(line)-1], ',')
		merged = append(merged, body[1:]...)
		if _, err := w.Write(merged); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}

	for _, a := range bundle.Accounts {
		if err := write(RecAccount, a); err != nil {
			return fmt.Errorf("could not encode account %q: %w", a.ID, err)
		}
	}
	for _, t := range bundle.Transactions {
		if err := write(RecTransaction, t); err != nil {
			return fmt.Errorf("could not encode transaction %q: %w", t.ID, err)
		}
	}
	for _, b := range bundle.Budgets {
		if err := write(RecBudget, b); err != nil {
			return fmt.Errorf("could not encode budget %q: %w", b.ID, err)
		}
	}
	for _, g := range bundle.Goals {
		if err := write(RecGoal, g); err != nil {
			return fmt.Errorf("could not encode goal %q: %w", g.ID, err)
		}
	}
	for _, n := range bundle.Notifications {
		if err := write(RecNotification, n); err != nil {
			return fmt.Errorf("could not encode notification %q: %w", n.ID, err)
		}
	}
	return nil
}
