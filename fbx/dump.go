package fbx

import (
	"fmt"
	"io"
	"strings"
)

func (a *Attribute) String() string {
	switch v := a.Value.(type) {
	case string:
		return fmt.Sprintf("%q", strings.ReplaceAll(v, "\x00\x01", "::"))
	case []byte:
		return fmt.Sprintf("\"%v\"", v)
	default:
		return fmt.Sprint(v)
	}
}

func (a *Attribute) isArray() bool {
	switch a.Kind {
	case 'b', 'i', 'l', 'f', 'd':
		return true
	}
	return false
}

func (a *Attribute) arrayLen() int {
	n, err := arrayLen(a)
	if err != nil {
		return 0
	}
	return n
}

// Dump writes an ASCII rendering of the element tree, for debugging.
// Long arrays are elided unless full is set.
func (e *Element) Dump(w io.Writer, depth int, full bool) {
	fmt.Fprint(w, strings.Repeat("  ", depth), e.Name, ":")
	arrayReplacer := strings.NewReplacer("[", "{ a:", "]", "}", " ", ", ")
	for i, a := range e.Attributes {
		var s string
		if a.isArray() {
			if n := a.arrayLen(); !full && n > 16 {
				s = fmt.Sprintf("*%d { SKIPPED }", n)
			} else {
				s = fmt.Sprint("*", n, " ", arrayReplacer.Replace(a.String()))
			}
		} else {
			s = a.String()
		}
		if i == 0 {
			fmt.Fprint(w, " ", s)
		} else {
			fmt.Fprint(w, ", ", s)
		}
	}
	if len(e.Children) > 0 || len(e.Attributes) == 0 {
		fmt.Fprintln(w, " {")
		for _, c := range e.Children {
			c.Dump(w, depth+1, full)
		}
		fmt.Fprintln(w, strings.Repeat("  ", depth)+"}")
	} else {
		fmt.Fprintln(w, "")
	}
}
