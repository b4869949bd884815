package date

import (
	"testing"
	"time"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in      string
		want    Month
		wantErr bool
	}{
		{in: "2025-07", want: NewMonth(2025, time.July)},
		{in: "2025-12", want: NewMonth(2025, time.December)},
		{in: "2025-13", wantErr: true},
		{in: "2025-07-01", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseMonth(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMonth(%q): want error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMonth(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMonth(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMonthContains(t *testing.T) {
	m := MustParseMonth("2025-07")
	if !m.Contains(MustParse("2025-07-01")) || !m.Contains(MustParse("2025-07-31")) {
		t.Errorf("month %v should contain its own days", m)
	}
	if m.Contains(MustParse("2025-08-01")) || m.Contains(MustParse("2025-06-30")) {
		t.Errorf("month %v should not contain neighbour days", m)
	}
}

func TestMonthNextNormalizes(t *testing.T) {
	if got := MustParseMonth("2025-12").Next(); got != NewMonth(2026, time.January) {
		t.Errorf("Next() = %v, want 2026-01", got)
	}
}
