package dates

import (
	"fmt"
	"strings"
	"time"
)

const (
	shortLayout = "01/02 15:04"
	isoLayout   = "2006-01-02T15:04:05"
)

// ParseError reports a date string that matched none of the short date
// shapes the app API is known to emit.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unrecognized short date %q", e.Input)
}

// Normalizer resolves the app API's short date strings ("MM/DD HH:MM",
// "Today HH:MM", "Yesterday HH:MM") into absolute ISO-8601 timestamps.
// The output carries no timezone offset, matching the input.
type Normalizer interface {
	Normalize(in string, now time.Time) (string, error)
}

// ShortDate reproduces the vendor app's observed resolution rules
// exactly. Two of them are surprising but kept for compatibility with
// what the official app displays:
//
//   - "MM/DD" always gets the reference year attached, even when that
//     places the result in the future (a December entry read in January).
//   - "Yesterday" substitutes the reference day without subtracting one;
//     use CorrectedShortDate if you want the label honored.
type ShortDate struct{}

func (ShortDate) Normalize(in string, now time.Time) (string, error) {
	out, err := normalize(in, now, now)
	if err != nil {
		return "", &ParseError{Input: in}
	}
	return out, nil
}

// CorrectedShortDate resolves like ShortDate except that "Yesterday"
// actually subtracts a day. Swap it in through the Normalizer
// interface; output differs from the vendor app for Yesterday entries.
type CorrectedShortDate struct{}

func (CorrectedShortDate) Normalize(in string, now time.Time) (string, error) {
	out, err := normalize(in, now, now.AddDate(0, 0, -1))
	if err != nil {
		return "", &ParseError{Input: in}
	}
	return out, nil
}

func normalize(in string, now, yesterday time.Time) (string, error) {
	if rest, ok := strings.CutPrefix(in, "Today"); ok {
		return normalize(now.Format("01/02")+rest, now, yesterday)
	}
	if rest, ok := strings.CutPrefix(in, "Yesterday"); ok {
		return normalize(yesterday.Format("01/02")+rest, now, yesterday)
	}
	t, err := time.Parse(shortLayout, in)
	if err != nil {
		return "", &ParseError{Input: in}
	}
	abs := time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
	return abs.Format(isoLayout), nil
}
