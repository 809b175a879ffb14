package stocks

import (
	"fmt"
	"strings"
	"time"
)

// Periods lists the values accepted by PeriodStart.
var Periods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// PeriodStart returns the start of a lookback period ending at now.
func PeriodStart(period string, now time.Time) (time.Time, error) {
	switch strings.ToLower(period) {
	case "1d":
		return now.AddDate(0, 0, -1), nil
	case "5d":
		return now.AddDate(0, 0, -5), nil
	case "1mo":
		return now.AddDate(0, -1, 0), nil
	case "3mo":
		return now.AddDate(0, -3, 0), nil
	case "6mo":
		return now.AddDate(0, -6, 0), nil
	case "1y":
		return now.AddDate(-1, 0, 0), nil
	case "2y":
		return now.AddDate(-2, 0, 0), nil
	case "5y":
		return now.AddDate(-5, 0, 0), nil
	case "10y":
		return now.AddDate(-10, 0, 0), nil
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()), nil
	case "max":
		return time.Unix(0, 0).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%w %q, expected one of %s", ErrUnknownPeriod, period, strings.Join(Periods, ", "))
	}
}
