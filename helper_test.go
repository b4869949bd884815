package finstate

import (
	"fmt"

	"github.com/mvezin/finstate/date"
)

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for test to parse a date from const
func day(s string) date.Date { return date.MustParse(s) }

// mustMonth is a helper for test to parse a month from const
func mustMonth(s string) date.Month { return date.MustParseMonth(s) }

// seedService builds a store with one seeded user and a deterministic
// service over it: a fixed clock and sequential ids.
func seedService(user string, bundle *Bundle) *Service {
	store := NewStore()
	store.AddUser(user, bundle)
	service := NewService(store, NewSession(user))
	service.today = func() date.Date { return day("2025-07-15") }
	n := 0
	service.newID = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return service
}
