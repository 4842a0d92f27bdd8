package main

import (
	"os"

	"github.com/sirkon/errors"
	"github.com/sirkon/message"
	"github.com/sirkon/ringlist/internal/listtrace"
	"github.com/sirkon/ringlist/internal/ringlist"
	"github.com/sirkon/ringlist/internal/seqlist"
)

// Сценарий демонстрации: вставка 2, 8, 5, удаление существующего и
// отсутствующего значений, полная очистка. После каждого шага трасса
// обхода выводится на стандартный вывод.
func main() {
	message.Info("circular doubly linked list")
	ring := ringlist.New[int]()
	ring.Insert(2)
	ring.Insert(8)
	ring.Insert(5)
	dumpRing(ring)

	if err := ring.Remove(2); err != nil {
		message.Critical(errors.Wrap(err, "remove an existing value"))
	}
	dumpRing(ring)

	if err := ring.Remove(7); err != nil {
		message.Warning(errors.Wrap(err, "remove a missing value"))
	}
	dumpRing(ring)

	ring.Clear()
	dumpRing(ring)

	message.Info("singly linked list")
	seq := seqlist.New[int]()
	seq.Insert(2)
	seq.Insert(8)
	seq.Insert(5)
	dumpSeq(seq)

	if err := seq.Remove(2); err != nil {
		message.Critical(errors.Wrap(err, "remove an existing value"))
	}
	dumpSeq(seq)

	if err := seq.Remove(7); err != nil {
		message.Warning(errors.Wrap(err, "remove a missing value"))
	}
	dumpSeq(seq)

	seq.Clear()
	dumpSeq(seq)
}

func dumpRing(l *ringlist.List[int]) {
	if err := listtrace.Dump[int](os.Stdout, l, listtrace.SepRing); err != nil {
		message.Critical(errors.Wrap(err, "dump the ring list"))
	}
}

func dumpSeq(l *seqlist.List[int]) {
	if err := listtrace.Dump[int](os.Stdout, l, listtrace.SepSeq); err != nil {
		message.Critical(errors.Wrap(err, "dump the seq list"))
	}
}
