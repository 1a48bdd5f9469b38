package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var months = MonthTable{
	"января": "01", "февраля": "02", "марта": "03", "апреля": "04",
	"мая": "05", "июня": "06", "июля": "07", "августа": "08",
	"сентября": "09", "октября": "10", "ноября": "11", "декабря": "12",
}

func TestResolveYear(t *testing.T) {
	rules := []YearRule{
		{Below: 49999, Year: 2022},
		{Below: 69919, Year: 2023},
	}

	tests := []struct {
		name   string
		gameID string
		want   int
	}{
		{"well below first threshold", "10", 2022},
		{"just below first threshold", "49998", 2022},
		{"exactly at first threshold", "49999", 2023},
		{"just below second threshold", "69918", 2023},
		{"exactly at second threshold", "69919", 2024},
		{"above all thresholds", "80000", 2024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveYear(rules, 2024, tt.gameID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveYear_NoRules(t *testing.T) {
	got, err := ResolveYear(nil, 2026, "12345")
	require.NoError(t, err)
	assert.Equal(t, 2026, got)
}

func TestResolveYear_NonNumericID(t *testing.T) {
	_, err := ResolveYear(nil, 2026, "abc")
	require.Error(t, err)
}

func TestMonthTable_Number(t *testing.T) {
	for name, want := range months {
		got, err := months.Number(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestMonthTable_Number_UnknownName(t *testing.T) {
	_, err := months.Number("январь") // nominative, not the genitive the page uses
	require.Error(t, err)
	assert.Contains(t, err.Error(), "январь")
}

func TestResolveGameDate(t *testing.T) {
	rules := []YearRule{{Below: 49999, Year: 2022}}

	tests := []struct {
		name    string
		det     *GameDetails
		gameID  string
		want    string
		wantErr bool
	}{
		{
			name:   "single digit day is zero padded",
			det:    &GameDetails{Day: "5", Month: "августа"},
			gameID: "12345",
			want:   "2022-08-05",
		},
		{
			name:   "two digit day unchanged",
			det:    &GameDetails{Day: "30", Month: "декабря"},
			gameID: "60000",
			want:   "2024-12-30",
		},
		{
			name:    "unknown month fails explicitly",
			det:     &GameDetails{Day: "5", Month: "nonsense"},
			gameID:  "12345",
			wantErr: true,
		},
		{
			name:    "non numeric id fails",
			det:     &GameDetails{Day: "5", Month: "августа"},
			gameID:  "x1",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveGameDate(tt.det, rules, 2024, months, tt.gameID)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
