package rangesel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStateClampsInitial(t *testing.T) {
	s := NewState(Bounds{Min: 0, Max: 100}, Selection{Min: -20, Max: 300})
	assert.Equal(t, Selection{Min: 0, Max: 100}, s.Selection())

	s = NewState(Bounds{Min: 0, Max: 100}, Selection{Min: 20, Max: 80})
	assert.Equal(t, Selection{Min: 20, Max: 80}, s.Selection())
	assert.Equal(t, Bounds{Min: 0, Max: 100}, s.Bounds())
}

func TestSetPartialAppliesMinFirst(t *testing.T) {
	s := NewState(Bounds{Min: 0, Max: 100}, Selection{Min: 20, Max: 80})

	// min 90 pins at the old max 80, then max 10 pins at the new min 80
	got := s.SetPartial(Partial{Min: Value(90), Max: Value(10)})
	assert.Equal(t, Selection{Min: 80, Max: 80}, got)
}

func TestSetPartialSkipsMissingFields(t *testing.T) {
	s := NewState(Bounds{Min: 0, Max: 100}, Selection{Min: 20, Max: 80})

	assert.Equal(t, Selection{Min: 20, Max: 40}, s.SetPartial(Partial{Max: Value(40)}))
	assert.Equal(t, Selection{Min: 0, Max: 40}, s.SetPartial(Partial{Min: Value(0)}))
	assert.Equal(t, Selection{Min: 0, Max: 40}, s.SetPartial(Partial{}))
}

func TestSetDirect(t *testing.T) {
	s := NewState(Bounds{Min: 0, Max: 100}, Selection{Min: 20, Max: 80})

	assert.Equal(t, Selection{Min: 20, Max: 20}, s.SetDirect(Max, 5))
	assert.Equal(t, Selection{Min: 20, Max: 20}, s.Selection())
}
