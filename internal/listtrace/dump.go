package listtrace

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/errors"
)

const (
	// SepRing разделитель значений в трассе кольцевого двусвязного списка.
	SepRing = "<-> "

	// SepSeq разделитель значений в трассе односвязного списка.
	SepSeq = "-> "
)

// Dump запись текстовой трассы обхода списка в данную писалку, вида
//
//	head<-> 5<-> 8<-> 2<-> end
//
// с переводом строки в конце. Точный текст трассы предназначен для
// человека и не является контрактом совместимости.
func Dump[T comparable](w io.Writer, l List[T], sep string) error {
	var b strings.Builder
	b.WriteString("head")
	b.WriteString(sep)
	l.Do(func(v T) bool {
		fmt.Fprint(&b, v)
		b.WriteString(sep)
		return true
	})
	b.WriteString("end\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "write traversal trace").Stg("list-id", l.ID())
	}

	return nil
}
