package form

import "github.com/tastebook/tastebook/pkg/data"

// RowList is an ordered, editable collection of form rows. A submittable
// collection always keeps at least one row, so removal of the last
// remaining row is a no-op. Collections with position-derived fields
// pass a renumber func that runs after every structural change.
type RowList[T any] struct {
	rows     []T
	renumber func([]T)
}

func NewRowList[T any](first T, renumber func([]T)) *RowList[T] {
	l := &RowList[T]{rows: []T{first}, renumber: renumber}
	l.applyNumbering()
	return l
}

func (l *RowList[T]) applyNumbering() {
	if l.renumber != nil {
		l.renumber(l.rows)
	}
}

func (l *RowList[T]) Len() int {
	return len(l.rows)
}

func (l *RowList[T]) At(i int) T {
	return l.rows[i]
}

// Rows returns a copy of the collection in display order.
func (l *RowList[T]) Rows() []T {
	out := make([]T, len(l.rows))
	copy(out, l.rows)
	return out
}

// Add appends a row at the end.
func (l *RowList[T]) Add(row T) {
	l.rows = append(l.rows, row)
	l.applyNumbering()
}

// RemoveAt deletes the row at index i and reports whether anything was
// removed. The last remaining row is never removed.
func (l *RowList[T]) RemoveAt(i int) bool {
	if len(l.rows) <= 1 || i < 0 || i >= len(l.rows) {
		return false
	}
	l.rows = append(l.rows[:i], l.rows[i+1:]...)
	l.applyNumbering()
	return true
}

// Update mutates the row at index i in place.
func (l *RowList[T]) Update(i int, fn func(*T)) {
	if i < 0 || i >= len(l.rows) {
		return
	}
	fn(&l.rows[i])
}

// NewIngredientList starts with a single blank ingredient. Ingredient
// order is presentational only, so no renumbering applies.
func NewIngredientList() *RowList[data.Ingredient] {
	return NewRowList(data.Ingredient{}, nil)
}

// NewInstructionList starts with a single blank step and keeps step
// numbers equal to each row's 1-based position.
func NewInstructionList() *RowList[data.Instruction] {
	return NewRowList(data.Instruction{}, func(rows []data.Instruction) {
		for i := range rows {
			rows[i].Step = i + 1
		}
	})
}
