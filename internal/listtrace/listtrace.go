package listtrace

import (
	"fmt"

	"github.com/google/uuid"
)

// List абстракция списка достаточная для построения трассы обхода.
// Ей удовлетворяют оба вида списков данного модуля.
type List[T comparable] interface {
	ID() uuid.UUID
	Do(fn func(v T) bool)
}

// Reporter получатель трассы обхода списка.
// Реализация должна делаться пользователями библиотеки.
type Reporter interface {
	ListBegin(id fmt.Stringer)
	Value(v string)
	ListEnd()
}

// Walk обход списка от головы к хвосту с передачей значений в данный
// Reporter. Сам список при обходе не меняется.
func Walk[T comparable](l List[T], r Reporter) {
	r.ListBegin(l.ID())
	l.Do(func(v T) bool {
		r.Value(fmt.Sprint(v))
		return true
	})
	r.ListEnd()
}
