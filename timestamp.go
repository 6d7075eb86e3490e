package teller

import (
	"time"
)

// TimestampFormat is the layout used for every timestamp persisted in the
// ledger files, e.g. "Jun 1 2005 01:33PM". It predates this program: the
// data files are hand-editable and existing ones must keep loading.
const TimestampFormat = "Jan 2 2006 03:04PM"

// transferResetDays is the length of the savings transfer window: a
// savings account allows one balance-decreasing operation per rolling
// 30-day period.
const transferResetDays = 30

// Timestamp is a point in time with the persistence granularity of the
// ledger files (minutes).
type Timestamp struct {
	t time.Time
}

// At builds a Timestamp from a time, truncated to the file granularity.
func At(t time.Time) Timestamp {
	return Timestamp{t: t.Truncate(time.Minute)}
}

// ParseTimestamp parses the ledger file timestamp layout.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimestampFormat, s, time.Local)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{t: t}, nil
}

// MustParseTimestamp parses a timestamp and panics on failure. For tests
// and compile-time constants only.
func MustParseTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// NeverTransferred is the sentinel past timestamp given to new savings
// accounts so that no transfer limit applies before the first withdrawal.
func NeverTransferred() Timestamp {
	return MustParseTimestamp("Jan 1 2000 01:00AM")
}

// String formats the timestamp in the ledger file layout.
func (ts Timestamp) String() string { return ts.t.Format(TimestampFormat) }

// Time returns the underlying time.
func (ts Timestamp) Time() time.Time { return ts.t }

// Equal reports whether two timestamps are the same instant.
func (ts Timestamp) Equal(o Timestamp) bool { return ts.t.Equal(o.t) }

// IsZero reports whether the timestamp is unset.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// calendarDaysSince returns the number of whole calendar days between the
// timestamp's date and now's date. Time of day is irrelevant: a transfer
// at 11pm and a check at 1am the next day are one day apart.
func (ts Timestamp) calendarDaysSince(now time.Time) int {
	y1, m1, d1 := ts.t.Date()
	y2, m2, d2 := now.Date()
	a := time.Date(y1, m1, d1, 0, 0, 0, 0, time.UTC)
	b := time.Date(y2, m2, d2, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// TransferLimitReached reports whether a savings account whose last
// balance-decreasing operation happened at last is still inside its
// transfer window at now. This is the single source of truth for the
// limit: it is computed on demand, never cached.
func TransferLimitReached(last Timestamp, now time.Time) bool {
	return last.calendarDaysSince(now) < transferResetDays
}

// DaysUntilNextTransfer returns how many calendar days remain before the
// transfer window of an account last decreased at last expires. Zero
// means transfers are allowed again.
func DaysUntilNextTransfer(last Timestamp, now time.Time) int {
	elapsed := last.calendarDaysSince(now)
	if elapsed >= transferResetDays {
		return 0
	}
	return transferResetDays - elapsed
}
