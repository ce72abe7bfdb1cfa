package repository

import (
	"sync"
	"time"
)

// IDSource выдаёт идентификаторы для новых записей.
type IDSource interface {
	Next() int64
}

// Sequence - возрастающая последовательность, привязанная к времени в миллисекундах.
// Next всегда строго больше любого выданного или замеченного через Observe id,
// поэтому два создания в один тик часов не дают коллизию.
type Sequence struct {
	mu   sync.Mutex
	last int64
	now  func() time.Time
}

func NewSequence() *Sequence {
	return &Sequence{now: time.Now}
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id

	return id
}

// Observe сдвигает последовательность за id уже сохранённых записей.
func (s *Sequence) Observe(ids ...int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if id > s.last {
			s.last = id
		}
	}
}
