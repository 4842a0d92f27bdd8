package ringlist

// NewNode конструктор отдельного, ещё не привязанного к списку узла.
func NewNode[T comparable](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Node узел кольцевого списка содержащий данное значение.
type Node[T comparable] struct {
	prev *Node[T]
	next *Node[T]

	list  *List[T]
	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// Next следующий узел списка или nil, если данный узел последний
// либо не привязан к списку.
func (n *Node[T]) Next() *Node[T] {
	if n.list == nil || n.next == &n.list.root {
		return nil
	}

	return n.next
}

// Prev предыдущий узел списка или nil, если данный узел первый
// либо не привязан к списку.
func (n *Node[T]) Prev() *Node[T] {
	if n.list == nil || n.prev == &n.list.root {
		return nil
	}

	return n.prev
}

func (n *Node[T]) cleanup() {
	// для упрощения работы GC
	n.prev = nil
	n.next = nil
	n.list = nil
}
