package seqlist

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"
)

// New конструктор пустого односвязного списка.
func New[T comparable]() *List[T] {
	l := &List[T]{
		id: uuid.New(),
	}
	l.root.list = l

	return l
}

// List односвязный список с одним фиктивным головным узлом. Головной
// узел не несёт пользовательского значения, цепочка завершается nil.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T comparable] struct {
	root Node[T]
	len  int
	id   uuid.UUID
}

// ID идентификатор списка. Используется исключительно в диагностике.
func (l *List[T]) ID() uuid.UUID {
	return l.id
}

// IsEmpty проверка на пустоту. Список пуст тогда и только тогда,
// когда у головного узла нет продолжения.
func (l *List[T]) IsEmpty() bool {
	return l.root.next == nil
}

// Len текущее количество пользовательских узлов в списке.
func (l *List[T]) Len() int {
	return l.len
}

// Insert добавление нового значения сразу за головным узлом, т.е.
// созданный узел становится новой головой списка. Повторяющиеся
// значения допустимы. Возвращается созданный узел.
func (l *List[T]) Insert(v T) *Node[T] {
	n := &Node[T]{value: v}
	l.link(n)

	return n
}

// InsertNode вставка созданного пользователем узла за головным.
// Возвращается ErrNodeAttached если узел уже находится в каком-либо
// списке, сам список при этом не меняется.
func (l *List[T]) InsertNode(n *Node[T]) error {
	if n.list != nil {
		return errors.Just(ErrNodeAttached).
			Stg("list-id", l.id).
			Any("node-value", n.value)
	}

	l.link(n)

	return nil
}

// Remove поиск и удаление первого узла с данным значением, считая от
// головы. При совпадающих значениях удаляется только ближайший к
// голове узел. Возвращается ErrNotFound если значения в списке нет,
// список в этом случае не меняется.
func (l *List[T]) Remove(v T) error {
	for prev := &l.root; prev.next != nil; prev = prev.next {
		if prev.next.value != v {
			continue
		}

		l.unlink(prev)
		return nil
	}

	return errors.Just(ErrNotFound).
		Stg("list-id", l.id).
		Any("value", v)
}

// First первый узел списка или nil для пустого списка.
func (l *List[T]) First() *Node[T] {
	return l.root.next
}

// Do обход списка от головы к хвосту с передачей значений в данную
// функцию. Обход прерывается если fn вернула false.
func (l *List[T]) Do(fn func(v T) bool) {
	for cur := l.root.next; cur != nil; cur = cur.next {
		if !fn(cur.value) {
			return
		}
	}
}

// Values значения списка от головы к хвосту, т.е. в порядке обратном
// порядку вставки. Для пустого списка возвращается nil.
func (l *List[T]) Values() []T {
	if l.len == 0 {
		return nil
	}

	res := make([]T, 0, l.len)
	for cur := l.root.next; cur != nil; cur = cur.next {
		res = append(res, cur.value)
	}

	return res
}

// Clear удаление всех пользовательских узлов: голова снимается до тех
// пор пока список не опустеет. Головной узел остаётся на месте и список
// пригоден для дальнейшей работы.
func (l *List[T]) Clear() {
	for l.root.next != nil {
		l.unlink(&l.root)
	}
}

func (l *List[T]) link(n *Node[T]) {
	n.next = l.root.next
	n.list = l
	l.root.next = n
	l.len++
}

// unlink исключение из списка узла следующего за prev.
func (l *List[T]) unlink(prev *Node[T]) {
	n := prev.next
	prev.next = n.next
	l.len--

	n.cleanup()
}
