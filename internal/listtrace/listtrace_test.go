package listtrace_test

import (
	"bytes"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/errors"
	"github.com/sirkon/ringlist/internal/extmocks"
	"github.com/sirkon/ringlist/internal/listtrace"
	"github.com/sirkon/ringlist/internal/ringlist"
	"github.com/sirkon/ringlist/internal/seqlist"
	"github.com/sirkon/ringlist/internal/testlog"
)

func ExampleDump() {
	l := ringlist.New[int]()
	l.Insert(2)
	l.Insert(8)
	l.Insert(5)

	if err := listtrace.Dump[int](os.Stdout, l, listtrace.SepRing); err != nil {
		panic(errors.Wrap(err, "dump the list"))
	}

	// Output:
	// head<-> 5<-> 8<-> 2<-> end
}

func TestWalk(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := ringlist.New[int]()
	l.Insert(2)
	l.Insert(8)
	l.Insert(5)

	r := extmocks.NewReporterMock(ctrl)
	gomock.InOrder(
		r.EXPECT().ListBegin(l.ID()),
		r.EXPECT().Value("5"),
		r.EXPECT().Value("8"),
		r.EXPECT().Value("2"),
		r.EXPECT().ListEnd(),
	)

	listtrace.Walk[int](l, r)
}

func TestWalkEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	l := seqlist.New[string]()

	r := extmocks.NewReporterMock(ctrl)
	gomock.InOrder(
		r.EXPECT().ListBegin(l.ID()),
		r.EXPECT().ListEnd(),
	)

	listtrace.Walk[string](l, r)
}

func TestDump(t *testing.T) {
	t.Run("ring", func(t *testing.T) {
		l := ringlist.New[int]()
		l.Insert(2)
		l.Insert(8)
		l.Insert(5)

		var buf bytes.Buffer
		if err := listtrace.Dump[int](&buf, l, listtrace.SepRing); err != nil {
			testlog.Error(t, errors.Wrap(err, "dump the ring list"))
			return
		}

		const expected = "head<-> 5<-> 8<-> 2<-> end\n"
		if buf.String() != expected {
			t.Errorf("%q expected, got %q", expected, buf.String())
		}
	})

	t.Run("seq", func(t *testing.T) {
		l := seqlist.New[int]()
		l.Insert(2)

		var buf bytes.Buffer
		if err := listtrace.Dump[int](&buf, l, listtrace.SepSeq); err != nil {
			testlog.Error(t, errors.Wrap(err, "dump the seq list"))
			return
		}

		const expected = "head-> 2-> end\n"
		if buf.String() != expected {
			t.Errorf("%q expected, got %q", expected, buf.String())
		}
	})

	t.Run("empty", func(t *testing.T) {
		l := ringlist.New[int]()

		var buf bytes.Buffer
		if err := listtrace.Dump[int](&buf, l, listtrace.SepRing); err != nil {
			testlog.Error(t, errors.Wrap(err, "dump the empty list"))
			return
		}

		const expected = "head<-> end\n"
		if buf.String() != expected {
			t.Errorf("%q expected, got %q", expected, buf.String())
		}
	})

	t.Run("write-failure", func(t *testing.T) {
		l := ringlist.New[int]()
		l.Insert(1)

		err := listtrace.Dump[int](brokenWriter{}, l, listtrace.SepRing)
		if err == nil {
			t.Error("an error expected for the broken writer")
			return
		}

		testlog.Log(t, err)
	})
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, fmt.Errorf("the writer is broken")
}
