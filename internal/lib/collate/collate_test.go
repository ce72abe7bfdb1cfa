package collate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare_CaseInsensitiveOrder(t *testing.T) {
	// по байтам "B" < "a", по правилам языка наоборот
	assert.Negative(t, Compare(Default, "apple", "Banana"))
	assert.Negative(t, Compare(Default, "Неизвестен", "Търговски обект (Ямбол)"))
	assert.Zero(t, Compare(Default, "Склад", "Склад"))
}

func TestSortStableBy(t *testing.T) {
	type item struct {
		label string
		n     int
	}
	items := []item{
		{"Търговски обект (Ямбол)", 1},
		{"Регионален склад (Бургас)", 2},
		{"Търговски обект (Ямбол)", 3},
		{"Централен офис (София)", 4},
		{"Регионален склад (Бургас)", 5},
	}

	SortStableBy(Default, items, func(i item) string { return i.label })

	var order []int
	for _, i := range items {
		order = append(order, i.n)
	}
	assert.Equal(t, []int{2, 5, 1, 3, 4}, order)
}
