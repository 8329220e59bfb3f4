package logtime

import (
	"time"

	"github.com/go-faster/errors"
)

// DateTime is log timestamp: calendar day with time of day, no time zone.
//
// Textual layout is "YYYY-MM-DD HH:MM:SS" with optional fraction of second
// of 1 to 9 digits; 'T' is accepted instead of space as date-time separator.
type DateTime struct {
	Year   uint16 // 0000...9999
	Month  uint8  // 1...12
	Day    uint8  // 1...31
	Hour   uint8  // 0...23
	Minute uint8  // 0...59
	Second uint8  // 0...59
	Nano   uint32 // 0...999999999
}

// DateTimeLayout is textual layout of DateTime without fraction, in terms
// of time.Format.
const DateTimeLayout = "2006-01-02 15:04:05"

// DateTimeLen is minimum length of textual DateTime.
const DateTimeLen = len(DateTimeLayout)

const maxFractionDigits = 9

// pow10 for fraction scaling, indexed by number of parsed digits.
var pow10 = [...]uint32{1e9, 1e8, 1e7, 1e6, 1e5, 1e4, 1e3, 1e2, 1e1, 1e0}

func twoDigits[T input](b T, offset int, k Kind) (int, error) {
	hi, ok := digit(b[offset])
	if !ok {
		return 0, errAt(k, offset)
	}
	lo, ok := digit(b[offset+1])
	if !ok {
		return 0, errAt(k, offset+1)
	}
	return hi*10 + lo, nil
}

// ParseDateTimeBytes parses DateTime from b.
//
// Parsing stops after the fraction of second (or after seconds if there is
// no fraction); remaining bytes are ignored.
func ParseDateTimeBytes(b []byte) (DateTime, error) {
	return parseDateTime(b)
}

// ParseDateTime parses DateTime from s, see ParseDateTimeBytes.
func ParseDateTime(s string) (DateTime, error) {
	return parseDateTime(s)
}

func parseDateTime[T input](b T) (DateTime, error) {
	d, err := parseDate(b)
	if err != nil {
		return DateTime{}, err
	}
	if len(b) < DateTimeLen {
		return DateTime{}, errAt(TooShort, len(b))
	}
	_ = b[DateTimeLen-1]

	if c := b[10]; c != ' ' && c != 'T' {
		return DateTime{}, errAt(InvalidCharDateTimeSep, 10)
	}
	hour, err := twoDigits(b, 11, InvalidCharHour)
	if err != nil {
		return DateTime{}, err
	}
	if b[13] != ':' {
		return DateTime{}, errAt(InvalidCharTimeSep, 13)
	}
	minute, err := twoDigits(b, 14, InvalidCharMinute)
	if err != nil {
		return DateTime{}, err
	}
	if b[16] != ':' {
		return DateTime{}, errAt(InvalidCharTimeSep, 16)
	}
	sec, err := twoDigits(b, 17, InvalidCharSecond)
	if err != nil {
		return DateTime{}, err
	}

	var nano uint32
	if len(b) > DateTimeLen && b[DateTimeLen] == '.' {
		const start = DateTimeLen + 1
		var n int
		for start+n < len(b) && n < maxFractionDigits {
			v, ok := digit(b[start+n])
			if !ok {
				break
			}
			nano = nano*10 + uint32(v)
			n++
		}
		if n == 0 {
			return DateTime{}, errAt(InvalidCharFraction, start)
		}
		nano *= pow10[n]
	}

	switch {
	case hour > 23:
		return DateTime{}, errAt(OutOfRangeHour, 11)
	case minute > 59:
		return DateTime{}, errAt(OutOfRangeMinute, 14)
	case sec > 59:
		return DateTime{}, errAt(OutOfRangeSecond, 17)
	}

	return DateTime{
		Year:   d.Year,
		Month:  d.Month,
		Day:    d.Day,
		Hour:   uint8(hour),
		Minute: uint8(minute),
		Second: uint8(sec),
		Nano:   nano,
	}, nil
}

// Date returns calendar day of t, dropping time of day.
func (t DateTime) Date() Date {
	return DateOf(t)
}

// DateFields implements DateFields.
func (t DateTime) DateFields() (year uint16, month, day uint8) {
	return t.Year, t.Month, t.Day
}

// AppendFormat appends textual representation of t to b.
//
// Fraction is omitted if zero, written as microseconds if t.Nano is a whole
// number of microseconds and as nanoseconds otherwise.
func (t DateTime) AppendFormat(b []byte) []byte {
	b = t.Date().AppendFormat(b)
	b = append(b, ' ')
	b = appendDigits(b, int(t.Hour), 2)
	b = append(b, ':')
	b = appendDigits(b, int(t.Minute), 2)
	b = append(b, ':')
	b = appendDigits(b, int(t.Second), 2)
	switch {
	case t.Nano == 0:
		return b
	case t.Nano%1000 == 0:
		b = append(b, '.')
		return appendDigits(b, int(t.Nano/1000), 6)
	default:
		b = append(b, '.')
		return appendDigits(b, int(t.Nano), maxFractionDigits)
	}
}

func (t DateTime) String() string {
	var buf [DateTimeLen + 1 + maxFractionDigits]byte
	return string(t.AppendFormat(buf[:0]))
}

// Compare returns -1 if t is before o, +1 if after and 0 if equal.
func (t DateTime) Compare(o DateTime) int {
	if c := t.Date().Compare(o.Date()); c != 0 {
		return c
	}
	switch {
	case t.Hour != o.Hour:
		return cmpInt(int(t.Hour), int(o.Hour))
	case t.Minute != o.Minute:
		return cmpInt(int(t.Minute), int(o.Minute))
	case t.Second != o.Second:
		return cmpInt(int(t.Second), int(o.Second))
	default:
		return cmpInt(int(t.Nano), int(o.Nano))
	}
}

// Before reports whether t is before o.
func (t DateTime) Before(o DateTime) bool { return t.Compare(o) < 0 }

// After reports whether t is after o.
func (t DateTime) After(o DateTime) bool { return t.Compare(o) > 0 }

// Time returns t as time.Time in UTC.
func (t DateTime) Time() time.Time {
	return time.Date(
		int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minute), int(t.Second), int(t.Nano),
		time.UTC,
	)
}

// DateTimeOf returns DateTime of v in v's location.
//
// Years outside 0...9999 are not representable: zero DateTime is returned.
func DateTimeOf(v time.Time) DateTime {
	var (
		y, m, d  = v.Date()
		h, mm, s = v.Clock()
	)
	if y < 0 || y > 9999 {
		return DateTime{}
	}
	return DateTime{
		Year:   uint16(y),
		Month:  uint8(m),
		Day:    uint8(d),
		Hour:   uint8(h),
		Minute: uint8(mm),
		Second: uint8(s),
		Nano:   uint32(v.Nanosecond()),
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t DateTime) MarshalText() ([]byte, error) {
	return t.AppendFormat(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *DateTime) UnmarshalText(text []byte) error {
	v, err := ParseDateTimeBytes(text)
	if err != nil {
		return errors.Wrap(err, "datetime")
	}
	*t = v
	return nil
}
