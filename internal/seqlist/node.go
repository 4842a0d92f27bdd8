package seqlist

// NewNode конструктор отдельного, ещё не привязанного к списку узла.
func NewNode[T comparable](v T) *Node[T] {
	return &Node[T]{value: v}
}

// Node узел односвязного списка содержащий данное значение.
type Node[T comparable] struct {
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
	return n.next
}

func (n *Node[T]) cleanup() {
	// для упрощения работы GC
	n.next = nil
	n.list = nil
}
