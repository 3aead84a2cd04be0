// Package chromosome orders chromosome labels the way geneticists expect:
// numbered chromosomes by number, ahead of lettered ones (X, Y, Z, W, MT...).
package chromosome

import (
	"fmt"
	"strings"

	"github.com/carbocation/sparkline"
	"gopkg.in/guregu/null.v3"
)

// ID is a chromosome label. The label is optional; an absent label renders
// as the empty string and sorts as a letter label.
type ID struct {
	raw null.String
}

func New(raw string) ID {
	return ID{raw: null.StringFrom(raw)}
}

// FromPtr treats a nil pointer as an absent label.
func FromPtr(raw *string) ID {
	return ID{raw: null.StringFromPtr(raw)}
}

func FromNullString(raw null.String) ID {
	return ID{raw: raw}
}

// Valid reports whether a label was given at all.
func (id ID) Valid() bool {
	return id.raw.Valid
}

func (id ID) String() string {
	return id.raw.ValueOrZero()
}

// IsNumeric reports whether the label is a non-negative integer written only
// with decimal digits. Anything else, including the empty label, is a letter
// label.
func (id ID) IsNumeric() bool {
	s := id.String()
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// Compare orders numeric labels by value, ahead of all letter labels, which
// are ordered bytewise.
func Compare(a, b ID) int {
	aNum, bNum := a.IsNumeric(), b.IsNumeric()

	switch {
	case aNum && bNum:
		return compareDigits(a.String(), b.String())
	case aNum:
		return -1
	case bNum:
		return 1
	}

	return strings.Compare(a.String(), b.String())
}

// compareDigits compares two digit strings by integer value without parsing,
// so labels of any length are handled.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if c := sparkline.CompareOrdered(len(a), len(b)); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

func (id ID) CompareTo(other sparkline.Comparable) (int, error) {
	o, ok := other.(ID)
	if !ok {
		return 0, fmt.Errorf("%w: %T vs %T", sparkline.ErrKindMismatch, id, other)
	}

	return Compare(id, o), nil
}
