package domain

import (
	"fmt"
	"strconv"
)

// YearRule maps a game-id range to a year: ids strictly below Below belong to
// Year. The schedule page omits the year, and id ranges are the only stable
// signal; the table is operator-maintained configuration data that needs a new
// entry roughly once a year.
type YearRule struct {
	Below int
	Year  int
}

// ResolveYear returns the year for gameID using the ordered rules; ids at or
// above every threshold get defaultYear.
func ResolveYear(rules []YearRule, defaultYear int, gameID string) (int, error) {
	n, err := strconv.Atoi(gameID)
	if err != nil {
		return 0, fmt.Errorf("game id %q is not numeric: %w", gameID, err)
	}
	for _, r := range rules {
		if n < r.Below {
			return r.Year, nil
		}
	}
	return defaultYear, nil
}

// MonthTable maps source-locale month names to two-digit month numbers.
type MonthTable map[string]string

// Number returns the two-digit month for name. An unrecognized name is an
// explicit error, never a silent skip.
func (t MonthTable) Number(name string) (string, error) {
	m, ok := t[name]
	if !ok {
		return "", fmt.Errorf("unknown month name %q", name)
	}
	return m, nil
}

// ResolveGameDate assembles the full YYYY-MM-DD date for a game from its
// parsed details: year from the id rules, month via the table, day zero-padded
// to two digits.
func ResolveGameDate(det *GameDetails, rules []YearRule, defaultYear int, months MonthTable, gameID string) (string, error) {
	year, err := ResolveYear(rules, defaultYear, gameID)
	if err != nil {
		return "", err
	}
	month, err := months.Number(det.Month)
	if err != nil {
		return "", err
	}
	day := det.Day
	if len(day) == 1 {
		day = "0" + day
	}
	return fmt.Sprintf("%d-%s-%s", year, month, day), nil
}
