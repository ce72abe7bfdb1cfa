package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"salary-calculator/internal/storage"
)

func TestState_Transitions(t *testing.T) {
	var s State
	assert.False(t, s.HasSelection())

	s = s.Select(7).WithResults([]storage.CalculationResult{{}})
	assert.True(t, s.HasSelection())
	assert.Len(t, s.Results, 1)

	// выбор другого объекта сбрасывает результаты
	s2 := s.Select(8)
	assert.Equal(t, int64(8), s2.SelectedLocationID)
	assert.Empty(t, s2.Results)

	inv := s.Invalidate()
	assert.Equal(t, int64(7), inv.SelectedLocationID)
	assert.Nil(t, inv.Results)

	assert.Equal(t, s, s.LocationRemoved(99))
	assert.Equal(t, State{}, s.LocationRemoved(7))
}
