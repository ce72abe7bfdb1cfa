// Package collate сортирует строки по правилам языка, а не по байтам.
package collate

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Default - язык интерфейса, названия объектов на болгарском.
var Default = language.Bulgarian

// Compare сравнивает a и b по правилам tag.
func Compare(tag language.Tag, a, b string) int {
	return collate.New(tag).CompareString(a, b)
}

// SortStableBy сортирует items по key, равные элементы сохраняют исходный порядок.
// Collator не потокобезопасен, поэтому создаётся на каждый вызов.
func SortStableBy[T any](tag language.Tag, items []T, key func(T) string) {
	c := collate.New(tag)
	slices.SortStableFunc(items, func(a, b T) int {
		return c.CompareString(key(a), key(b))
	})
}
