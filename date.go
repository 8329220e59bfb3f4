package logtime

import (
	"encoding/binary"
	"time"

	"github.com/go-faster/city"
	"github.com/go-faster/errors"
)

// Date represents a single Gregorian calendar day.
//
// Zero value is not a valid date. Use ParseDate, ParseDateBytes or NewDate
// to get a validated value.
type Date struct {
	Year  uint16 // 0000...9999
	Month uint8  // 1...12
	Day   uint8  // 1...31
}

// DateLayout is canonical textual layout of Date, in terms of time.Format.
const DateLayout = "2006-01-02"

// DateLen is length of canonical Date representation.
const DateLen = len(DateLayout)

// IsLeapYear reports whether year is a leap year in Gregorian calendar.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns number of days in month of year, or zero if month is
// not in 1...12.
func DaysIn(month, year int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

// NewDate returns validated Date for year, month and day.
func NewDate(year, month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, errAt(OutOfRangeYear, -1)
	}
	if k := checkMonthDay(month, day, year); k != 0 {
		return Date{}, errAt(k, -1)
	}
	return Date{
		Year:  uint16(year),
		Month: uint8(month),
		Day:   uint8(day),
	}, nil
}

// checkMonthDay returns zero Kind if month and day are in range for year.
func checkMonthDay(month, day, year int) Kind {
	maxDays := DaysIn(month, year)
	if maxDays == 0 {
		return OutOfRangeMonth
	}
	if day < 1 || day > maxDays {
		return OutOfRangeDay
	}
	return 0
}

// ParseDateBytes parses Date from the first DateLen bytes of b in
// "YYYY-MM-DD" layout.
//
// Bytes after DateLen are not inspected, so b can be a longer timestamp
// like "2006-01-02 15:04:05.000000".
func ParseDateBytes(b []byte) (Date, error) {
	return parseDate(b)
}

// ParseDate parses Date from s, see ParseDateBytes.
//
// Trailing characters after "YYYY-MM-DD" are ignored.
func ParseDate(s string) (Date, error) {
	return parseDate(s)
}

// input of parsers, indexed in place without conversion.
type input interface {
	~string | ~[]byte
}

func parseDate[T input](b T) (Date, error) {
	if len(b) < DateLen {
		return Date{}, errAt(TooShort, len(b))
	}
	_ = b[DateLen-1]

	var (
		year  int
		month int
		day   int
	)
	for i := 0; i < 4; i++ {
		d, ok := digit(b[i])
		if !ok {
			return Date{}, errAt(InvalidCharYear, i)
		}
		year = year*10 + d
	}
	if b[4] != '-' {
		return Date{}, errAt(InvalidCharDateSep, 4)
	}
	m1, ok := digit(b[5])
	if !ok {
		return Date{}, errAt(InvalidCharMonth, 5)
	}
	m2, ok := digit(b[6])
	if !ok {
		return Date{}, errAt(InvalidCharMonth, 6)
	}
	month = m1*10 + m2
	if b[7] != '-' {
		return Date{}, errAt(InvalidCharDateSep, 7)
	}
	d1, ok := digit(b[8])
	if !ok {
		return Date{}, errAt(InvalidCharDay, 8)
	}
	d2, ok := digit(b[9])
	if !ok {
		return Date{}, errAt(InvalidCharDay, 9)
	}
	day = d1*10 + d2

	switch checkMonthDay(month, day, year) {
	case OutOfRangeMonth:
		return Date{}, errAt(OutOfRangeMonth, 5)
	case OutOfRangeDay:
		return Date{}, errAt(OutOfRangeDay, 8)
	}

	return Date{
		Year:  uint16(year),
		Month: uint8(month),
		Day:   uint8(day),
	}, nil
}

// Valid reports whether d is a valid calendar day.
func (d Date) Valid() bool {
	return d.Year <= 9999 && checkMonthDay(int(d.Month), int(d.Day), int(d.Year)) == 0
}

// AppendFormat appends canonical "YYYY-MM-DD" representation of d to b.
func (d Date) AppendFormat(b []byte) []byte {
	return append(b,
		'0'+byte(d.Year/1000%10),
		'0'+byte(d.Year/100%10),
		'0'+byte(d.Year/10%10),
		'0'+byte(d.Year%10),
		'-',
		'0'+d.Month/10,
		'0'+d.Month%10,
		'-',
		'0'+d.Day/10,
		'0'+d.Day%10,
	)
}

func (d Date) String() string {
	var buf [DateLen]byte
	return string(d.AppendFormat(buf[:0]))
}

// Compare returns -1 if d is before o, +1 if after and 0 if equal.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(int(d.Year), int(o.Year))
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(int(d.Day), int(o.Day))
	}
}

// Before reports whether d is before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

const dateBinaryLen = 4

func (d Date) appendBinary(b []byte) []byte {
	var buf [dateBinaryLen]byte
	binary.LittleEndian.PutUint16(buf[:2], d.Year)
	buf[2] = d.Month
	buf[3] = d.Day
	return append(b, buf[:]...)
}

// Hash returns CityHash64 of binary representation of d.
//
// Equal dates have equal hashes.
func (d Date) Hash() uint64 {
	var buf [dateBinaryLen]byte
	return city.Hash64(d.appendBinary(buf[:0]))
}

// Time returns midnight of d in UTC.
func (d Date) Time() time.Time {
	return time.Date(int(d.Year), time.Month(d.Month), int(d.Day), 0, 0, 0, 0, time.UTC)
}

// Weekday of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// DateOfTime returns Date of t in t's location.
//
// Years outside 0...9999 are not representable: zero Date is returned,
// which is not Valid.
func DateOfTime(t time.Time) Date {
	y, m, day := t.Date()
	if y < 0 || y > 9999 {
		return Date{}
	}
	return Date{
		Year:  uint16(y),
		Month: uint8(m),
		Day:   uint8(day),
	}
}

// DateFields is implemented by timestamp values that carry a calendar date.
type DateFields interface {
	DateFields() (year uint16, month, day uint8)
}

// DateOf projects v to Date.
//
// Fields are copied as is: v is trusted to hold a valid date, so DateOf
// must not be used for validation. Use Date.Valid if in doubt.
func DateOf(v DateFields) Date {
	year, month, day := v.DateFields()
	return Date{
		Year:  year,
		Month: month,
		Day:   day,
	}
}

// DateFields implements DateFields.
func (d Date) DateFields() (year uint16, month, day uint8) {
	return d.Year, d.Month, d.Day
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return d.AppendFormat(make([]byte, 0, DateLen)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(text []byte) error {
	v, err := ParseDateBytes(text)
	if err != nil {
		return errors.Wrap(err, "date")
	}
	*d = v
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// Layout is little-endian uint16 year followed by month and day bytes.
func (d Date) MarshalBinary() ([]byte, error) {
	return d.appendBinary(make([]byte, 0, dateBinaryLen)), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *Date) UnmarshalBinary(data []byte) error {
	if len(data) != dateBinaryLen {
		return errors.Errorf("date: binary length %d != %d", len(data), dateBinaryLen)
	}
	v := Date{
		Year:  binary.LittleEndian.Uint16(data[:2]),
		Month: data[2],
		Day:   data[3],
	}
	if !v.Valid() {
		return errors.Errorf("date: invalid %04d-%02d-%02d", v.Year, v.Month, v.Day)
	}
	*d = v
	return nil
}
