package data

import (
	"testing"
	"time"
)

func TestNewDateTruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 02:30 on Jan 2 in UTC+5 is still Jan 1 in UTC.
	d := NewDate(time.Date(2026, 1, 2, 2, 30, 0, 0, loc))
	want := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	if !d.Time.Equal(want) {
		t.Errorf("got %v; want %v", d.Time, want)
	}
}

func TestDateArithmetic(t *testing.T) {
	borrowed := MustParseDate("2026-07-01")
	due := borrowed.AddDays(14)
	if got := due.Format("2006-01-02"); got != "2026-07-15" {
		t.Errorf("due date = %s; want 2026-07-15", got)
	}
	today := MustParseDate("2026-07-31")
	if days := due.DaysUntil(today); days != 16 {
		t.Errorf("overdue days = %d; want 16", days)
	}
	if days := today.DaysUntil(due); days != -16 {
		t.Errorf("negative day count = %d; want -16", days)
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := MustParseDate("2026-08-28")
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2026-08-28"` {
		t.Errorf("marshalled date = %s; want %q", b, `"2026-08-28"`)
	}
	var parsed Date
	if err := parsed.UnmarshalJSON(b); err != nil {
		t.Fatal(err)
	}
	if !parsed.Time.Equal(d.Time) {
		t.Errorf("round trip mismatch: %v != %v", parsed.Time, d.Time)
	}
}

func TestBorrowingIsOverdue(t *testing.T) {
	today := MustParseDate("2026-08-28")
	returned := MustParseDate("2026-08-10")
	tests := []struct {
		name      string
		borrowing Borrowing
		dueDays   int
		want      bool
	}{
		{
			"outstanding loan past due",
			Borrowing{BorrowDate: MustParseDate("2026-08-01")},
			14,
			true,
		},
		{
			"outstanding loan on due date",
			Borrowing{BorrowDate: MustParseDate("2026-08-14")},
			14,
			false,
		},
		{
			"outstanding loan within grace period",
			Borrowing{BorrowDate: MustParseDate("2026-08-20")},
			14,
			false,
		},
		{
			"returned loan is never overdue",
			Borrowing{BorrowDate: MustParseDate("2026-07-01"), ReturnDate: &returned},
			14,
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.borrowing.IsOverdue(tt.dueDays, today); got != tt.want {
				t.Errorf("IsOverdue() = %v; want %v", got, tt.want)
			}
		})
	}
}
