package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quizreg/internal/domain"
)

func TestParseYearRules(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []domain.YearRule
		wantErr bool
	}{
		{
			name:  "two rules",
			input: "49999:2022,69919:2023",
			want: []domain.YearRule{
				{Below: 49999, Year: 2022},
				{Below: 69919, Year: 2023},
			},
		},
		{
			name:  "single rule with spaces",
			input: " 49999:2022 ",
			want:  []domain.YearRule{{Below: 49999, Year: 2022}},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:    "missing year",
			input:   "49999",
			wantErr: true,
		},
		{
			name:    "non numeric threshold",
			input:   "abc:2022",
			wantErr: true,
		},
		{
			name:    "non numeric year",
			input:   "49999:soon",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseYearRules(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultMonthTable_AllTwelveMonths(t *testing.T) {
	table := DefaultMonthTable()
	require.Len(t, table, 12)

	want := map[string]string{
		"января": "01", "февраля": "02", "марта": "03", "апреля": "04",
		"мая": "05", "июня": "06", "июля": "07", "августа": "08",
		"сентября": "09", "октября": "10", "ноября": "11", "декабря": "12",
	}
	for name, num := range want {
		got, err := table.Number(name)
		require.NoError(t, err, name)
		assert.Equal(t, num, got, name)
	}
}
