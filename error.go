package logtime

import (
	"strconv"

	"github.com/go-faster/errors"
)

//go:generate go run github.com/dmarkham/enumer -type Kind -output kind_enum.go

// Kind classifies parse failure.
type Kind int

// Parse failure kinds.
const (
	TooShort Kind = iota + 1
	InvalidCharYear
	InvalidCharMonth
	InvalidCharDay
	InvalidCharDateSep
	OutOfRangeYear
	OutOfRangeMonth
	OutOfRangeDay
	InvalidCharDateTimeSep
	InvalidCharHour
	InvalidCharMinute
	InvalidCharSecond
	InvalidCharTimeSep
	InvalidCharFraction
	OutOfRangeHour
	OutOfRangeMinute
	OutOfRangeSecond
)

// Error is a classified parse failure.
//
// Offset is the byte position of the offending input, or -1 if the failure
// is not tied to a single position (e.g. decoded value out of range).
type Error struct {
	Kind   Kind
	Offset int
}

func (e *Error) Error() string {
	if e.Offset < 0 {
		return "parse: " + e.Kind.String()
	}
	return "parse: " + e.Kind.String() + " at offset " + strconv.Itoa(e.Offset)
}

// Is reports whether target is *Error of the same Kind.
//
// Offset is ignored, so sentinel errors like ErrTooShort match any offset.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinel errors for errors.Is checks.
var (
	ErrTooShort           = &Error{Kind: TooShort, Offset: -1}
	ErrInvalidCharYear    = &Error{Kind: InvalidCharYear, Offset: -1}
	ErrInvalidCharMonth   = &Error{Kind: InvalidCharMonth, Offset: -1}
	ErrInvalidCharDay     = &Error{Kind: InvalidCharDay, Offset: -1}
	ErrInvalidCharDateSep = &Error{Kind: InvalidCharDateSep, Offset: -1}
	ErrOutOfRangeYear     = &Error{Kind: OutOfRangeYear, Offset: -1}
	ErrOutOfRangeMonth    = &Error{Kind: OutOfRangeMonth, Offset: -1}
	ErrOutOfRangeDay      = &Error{Kind: OutOfRangeDay, Offset: -1}
)

// KindOf returns Kind of err if it wraps *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return 0, false
	}
	return e.Kind, true
}

func errAt(k Kind, offset int) error {
	return &Error{Kind: k, Offset: offset}
}
