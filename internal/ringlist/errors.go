package ringlist

import "github.com/sirkon/errors"

const (
	// ErrNotFound значения нет в списке.
	ErrNotFound errors.Const = "value is not in the list"

	// ErrNodeAttached узел уже привязан к какому-то списку.
	ErrNodeAttached errors.Const = "node is already attached to a list"

	// ErrNotOwned узел не принадлежит данному списку.
	ErrNotOwned errors.Const = "node does not belong to this list"
)
