package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2025-07-31", want: New(2025, time.July, 31)},
		{in: "2025-7-1", want: New(2025, time.July, 1)},
		{in: "2025-13-01", wantErr: true},
		{in: "not-a-date", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q): want error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAddNormalizes(t *testing.T) {
	d := New(2024, time.February, 28)
	if got := d.Add(1).String(); got != "2024-02-29" {
		t.Errorf("Add(1) = %s, want 2024-02-29", got)
	}
	if got := d.Add(2).String(); got != "2024-03-01" {
		t.Errorf("Add(2) = %s, want 2024-03-01", got)
	}
}

func TestOrdering(t *testing.T) {
	a := New(2025, time.January, 10)
	b := New(2025, time.January, 11)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("Before is inconsistent for %v and %v", a, b)
	}
	if !b.After(a) || a.After(b) {
		t.Errorf("After is inconsistent for %v and %v", a, b)
	}
}
