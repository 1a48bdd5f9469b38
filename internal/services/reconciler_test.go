package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameIDs(t *testing.T) {
	tests := []struct {
		name       string
		discovered []string
		manual     []string
		handled    []string
		want       []string
	}{
		{
			name:       "one new among handled",
			discovered: []string{"100", "101"},
			manual:     nil,
			handled:    []string{"100"},
			want:       []string{"101"},
		},
		{
			name:       "manual only",
			discovered: nil,
			manual:     []string{"999"},
			handled:    nil,
			want:       []string{"999"},
		},
		{
			name:       "everything handled",
			discovered: []string{"100", "101"},
			manual:     []string{"101"},
			handled:    []string{"100", "101"},
			want:       nil,
		},
		{
			name:       "manual duplicates discovered",
			discovered: []string{"100", "101"},
			manual:     []string{"101", "102"},
			handled:    nil,
			want:       []string{"100", "101", "102"},
		},
		{
			name:       "duplicate within discovered",
			discovered: []string{"100", "100", "101"},
			manual:     nil,
			handled:    nil,
			want:       []string{"100", "101"},
		},
		{
			name:       "all empty",
			discovered: nil,
			manual:     nil,
			handled:    nil,
			want:       nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewGameIDs(tt.discovered, tt.manual, tt.handled)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewGameIDs_OrderFollowsDiscoveredThenManual(t *testing.T) {
	got := NewGameIDs([]string{"3", "1", "2"}, []string{"9", "1", "8"}, nil)
	assert.Equal(t, []string{"3", "1", "2", "9", "8"}, got)
}

func TestNewGameIDs_NeverContainsHandled(t *testing.T) {
	discovered := []string{"1", "2", "3", "4"}
	manual := []string{"3", "5"}
	handled := []string{"2", "4", "5"}
	got := NewGameIDs(discovered, manual, handled)
	for _, h := range handled {
		assert.NotContains(t, got, h)
	}
}

func TestNewGameIDs_UnionIsCommutativeAsSet(t *testing.T) {
	a := []string{"1", "2", "3"}
	b := []string{"3", "4"}
	handled := []string{"2"}

	ab := NewGameIDs(a, b, handled)
	ba := NewGameIDs(b, a, handled)
	assert.ElementsMatch(t, ab, ba)
}

func TestNewGameIDs_Idempotent(t *testing.T) {
	discovered := []string{"7", "8"}
	manual := []string{"9"}
	handled := []string{"8"}

	first := NewGameIDs(discovered, manual, handled)
	second := NewGameIDs(discovered, manual, handled)
	require.Equal(t, first, second)
}

func TestNewGameIDs_DoesNotMutateInputs(t *testing.T) {
	discovered := []string{"1", "2"}
	manual := []string{"3"}
	handled := []string{"1"}
	_ = NewGameIDs(discovered, manual, handled)
	assert.Equal(t, []string{"1", "2"}, discovered)
	assert.Equal(t, []string{"3"}, manual)
	assert.Equal(t, []string{"1"}, handled)
}
