package session

import "salary-calculator/internal/storage"

// State - выбранный объект и последние результаты. Результаты всегда относятся
// к одному объекту и периоду, поэтому любое изменение состава их сбрасывает.
type State struct {
	SelectedLocationID int64                       `json:"selectedLocationId"` // 0 - ничего не выбрано
	Results            []storage.CalculationResult `json:"results"`
}

func (s State) HasSelection() bool {
	return s.SelectedLocationID != 0
}

// Select выбирает объект и сбрасывает результаты.
func (s State) Select(locationID int64) State {
	return State{SelectedLocationID: locationID}
}

// Invalidate сбрасывает результаты, выбор остаётся.
func (s State) Invalidate() State {
	s.Results = nil
	return s
}

func (s State) WithResults(results []storage.CalculationResult) State {
	s.Results = results
	return s
}

// LocationRemoved: удалили выбранный объект - выбор сбрасывается.
func (s State) LocationRemoved(locationID int64) State {
	if s.SelectedLocationID == locationID {
		return State{}
	}
	return s
}
