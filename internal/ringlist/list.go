package ringlist

import (
	"github.com/google/uuid"
	"github.com/sirkon/errors"
)

// New конструктор пустого кольцевого списка: корневой узел
// замыкается сам на себя.
func New[T comparable]() *List[T] {
	l := &List[T]{
		id: uuid.New(),
	}
	l.root.list = l
	l.root.next = &l.root
	l.root.prev = &l.root

	return l
}

// List кольцевой двусвязный список с одним фиктивным корневым узлом.
// Корневой узел не несёт пользовательского значения и замыкает кольцо
// с обеих сторон, т.е. границей списка с любой стороны служит корень.
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
// когда корневой узел ссылается сам на себя.
func (l *List[T]) IsEmpty() bool {
	return l.root.next == &l.root
}

// Len текущее количество пользовательских узлов в списке.
func (l *List[T]) Len() int {
	return l.len
}

// Insert добавление нового значения сразу за корневым узлом, т.е.
// созданный узел становится новой головой списка, а существующие
// узлы сдвигаются дальше от корня. Повторяющиеся значения допустимы.
// Возвращается созданный узел.
func (l *List[T]) Insert(v T) *Node[T] {
	n := &Node[T]{value: v}
	l.link(n)

	return n
}

// InsertNode вставка созданного пользователем узла за корневым.
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
// голове узел, остальные остаются на месте. Возвращается ErrNotFound
// если значения в списке нет, список в этом случае не меняется.
func (l *List[T]) Remove(v T) error {
	for cur := l.root.next; cur != &l.root; cur = cur.next {
		if cur.value != v {
			continue
		}

		l.unlink(cur)
		return nil
	}

	return errors.Just(ErrNotFound).
		Stg("list-id", l.id).
		Any("value", v)
}

// RemoveNode удаление данного узла из списка. Возвращается ErrNotOwned
// если узел не принадлежит этому списку.
func (l *List[T]) RemoveNode(n *Node[T]) error {
	if n.list != l {
		return errors.Just(ErrNotOwned).
			Stg("list-id", l.id).
			Any("node-value", n.value)
	}

	l.unlink(n)

	return nil
}

// First первый узел списка или nil для пустого списка.
func (l *List[T]) First() *Node[T] {
	if l.root.next == &l.root {
		return nil
	}

	return l.root.next
}

// Do обход списка от головы к хвосту с передачей значений в данную
// функцию. Обход прерывается если fn вернула false. Список при обходе
// не меняется.
func (l *List[T]) Do(fn func(v T) bool) {
	for cur := l.root.next; cur != &l.root; cur = cur.next {
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
	for cur := l.root.next; cur != &l.root; cur = cur.next {
		res = append(res, cur.value)
	}

	return res
}

// Clear удаление всех пользовательских узлов: голова снимается до тех
// пор пока список не опустеет. Корневой узел остаётся на месте и список
// пригоден для дальнейшей работы.
func (l *List[T]) Clear() {
	for l.root.next != &l.root {
		l.unlink(l.root.next)
	}
}

func (l *List[T]) link(n *Node[T]) {
	next := l.root.next

	n.next = next
	n.prev = &l.root
	n.list = l

	next.prev = n
	l.root.next = n
	l.len++
}

func (l *List[T]) unlink(n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	l.len--

	n.cleanup()
}
