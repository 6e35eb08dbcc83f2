package board

import "github.com/google/uuid"

// Selection is the set of orders marked for a bulk action. It lives outside
// bucket membership entirely: selecting an order changes nothing about where
// it sits on the board.
type Selection map[uuid.UUID]struct{}

func NewSelection() Selection {
	return make(Selection)
}

func (s Selection) Toggle(id uuid.UUID) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

func (s Selection) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

func (s Selection) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

func (s Selection) Clear() {
	for id := range s {
		delete(s, id)
	}
}
