package fuji

import (
	"fmt"

	"github.com/karaolidis/fujicli-sub000/ptperr"
)

// wireInt is the set of underlying integer widths Fujifilm enumerations are
// declared over.
type wireInt interface {
	~uint16 | ~uint32 | ~int16
}

// enumEntry describes one declared variant: its wire discriminant, its
// canonical display string, the parse aliases accepted for it (the display
// string itself is always implicitly an alias), and any additional wire
// codes that should decode to this same variant.
type enumEntry[T wireInt] struct {
	Value      T
	Display    string
	Aliases    []string
	Alternates []T
}

func enumDecode[T wireInt](typeName string, table []enumEntry[T], wire T) (T, error) {
	for _, e := range table {
		if e.Value == wire {
			return e.Value, nil
		}
		for _, alt := range e.Alternates {
			if alt == wire {
				return e.Value, nil
			}
		}
	}
	return 0, ptperr.Newf(ptperr.InvalidValue, "%d is not a valid %s", wire, typeName)
}

func enumDisplay[T wireInt](typeName string, table []enumEntry[T], v T) string {
	for _, e := range table {
		if e.Value == v {
			return e.Display
		}
	}
	return fmt.Sprintf("%s(%d)", typeName, v)
}

func enumChoices[T wireInt](table []enumEntry[T]) []string {
	choices := make([]string, len(table))
	for i, e := range table {
		choices[i] = e.Display
	}
	return choices
}

func enumParse[T wireInt](typeName string, table []enumEntry[T], input string) (T, error) {
	target := clean(input)
	for _, e := range table {
		if clean(e.Display) == target {
			return e.Value, nil
		}
		for _, alias := range e.Aliases {
			if clean(alias) == target {
				return e.Value, nil
			}
		}
	}
	return 0, parseError(typeName, input, enumChoices(table))
}
