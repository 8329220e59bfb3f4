package logtime

import (
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Parallel()
	t.Run("Valid", func(t *testing.T) {
		for _, tc := range []struct {
			Input string
			Value Date
		}{
			{Input: "1234-12-13", Value: Date{Year: 1234, Month: 12, Day: 13}},
			{Input: "0000-01-01", Value: Date{Year: 0, Month: 1, Day: 1}},
			{Input: "9999-12-31", Value: Date{Year: 9999, Month: 12, Day: 31}},
			{Input: "2011-10-10", Value: Date{Year: 2011, Month: 10, Day: 10}},
			{Input: "1970-01-01T00:00:00Z", Value: Date{Year: 1970, Month: 1, Day: 1}},
		} {
			t.Run(tc.Input, func(t *testing.T) {
				d, err := ParseDate(tc.Input)
				require.NoError(t, err)
				require.Equal(t, tc.Value, d)
				require.True(t, d.Valid())
				require.Equal(t, tc.Input[:DateLen], d.String())
			})
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		for _, tc := range []struct {
			Input  string
			Kind   Kind
			Offset int
		}{
			{Input: "", Kind: TooShort, Offset: 0},
			{Input: "1234-12-1", Kind: TooShort, Offset: 9},
			{Input: "12a4-12-13", Kind: InvalidCharYear, Offset: 2},
			{Input: " 234-12-13", Kind: InvalidCharYear, Offset: 0},
			{Input: "1234x12-13", Kind: InvalidCharDateSep, Offset: 4},
			{Input: "1234-12/13", Kind: InvalidCharDateSep, Offset: 7},
			{Input: "1234-1a-13", Kind: InvalidCharMonth, Offset: 6},
			{Input: "1234-12-x3", Kind: InvalidCharDay, Offset: 8},
			{Input: "1234-12-1x", Kind: InvalidCharDay, Offset: 9},
			{Input: "1234-13-01", Kind: OutOfRangeMonth, Offset: 5},
			{Input: "1234-00-01", Kind: OutOfRangeMonth, Offset: 5},
			{Input: "1234-01-00", Kind: OutOfRangeDay, Offset: 8},
			{Input: "1234-01-32", Kind: OutOfRangeDay, Offset: 8},
			// Month is checked before day.
			{Input: "1234-13-32", Kind: OutOfRangeMonth, Offset: 5},
			// Separator is checked before month digits.
			{Input: "1234xx2-13", Kind: InvalidCharDateSep, Offset: 4},
		} {
			t.Run(tc.Input, func(t *testing.T) {
				_, err := ParseDate(tc.Input)
				require.Error(t, err)

				var e *Error
				require.True(t, errors.As(err, &e))
				require.Equal(t, tc.Kind, e.Kind)
				require.Equal(t, tc.Offset, e.Offset)
				require.ErrorIs(t, err, &Error{Kind: tc.Kind})
			})
		}
	})
	t.Run("Trailing", func(t *testing.T) {
		full, err := ParseDate("1234-12-13 11:12:13.123456")
		require.NoError(t, err)
		short, err := ParseDate("1234-12-13")
		require.NoError(t, err)

		require.Equal(t, short, full)
		require.Equal(t, "1234-12-13", full.String())
		require.Equal(t, "1234-12-13", short.String())
	})
	t.Run("Bytes", func(t *testing.T) {
		d, err := ParseDateBytes([]byte("2020-02-29garbage"))
		require.NoError(t, err)
		require.Equal(t, Date{Year: 2020, Month: 2, Day: 29}, d)
	})
}

func TestParseDate_LeapYear(t *testing.T) {
	t.Parallel()
	for _, year := range []string{"2000", "2020", "2400", "1600", "0004"} {
		d, err := ParseDate(year + "-02-29")
		require.NoError(t, err, year)
		require.Equal(t, uint8(29), d.Day)
	}
	for _, year := range []string{"1900", "2100", "2023", "1700", "0001"} {
		_, err := ParseDate(year + "-02-29")
		require.ErrorIs(t, err, ErrOutOfRangeDay, year)
	}
	_, err := ParseDate("2020-02-30")
	require.ErrorIs(t, err, ErrOutOfRangeDay)
}

func TestParseDate_MonthBoundary(t *testing.T) {
	t.Parallel()
	long := map[int]bool{1: true, 3: true, 5: true, 7: true, 8: true, 10: true, 12: true}
	for m := 1; m <= 12; m++ {
		d := Date{Year: 2023, Month: uint8(m), Day: 31}
		_, err := ParseDate(d.String())
		if long[m] {
			require.NoError(t, err, d.String())
		} else {
			require.ErrorIs(t, err, ErrOutOfRangeDay, d.String())
		}

		d.Day = 30
		_, err = ParseDate(d.String())
		if m == 2 {
			require.ErrorIs(t, err, ErrOutOfRangeDay, d.String())
		} else {
			require.NoError(t, err, d.String())
		}
	}
}

func TestDate_RoundTrip(t *testing.T) {
	t.Parallel()
	var (
		start = time.Date(1000, 1, 1, 0, 0, 0, 0, time.UTC)
		end   = time.Date(2400, 1, 1, 0, 0, 0, 0, time.UTC)
	)
	for v := start; v.Before(end); v = v.AddDate(0, 0, 1) {
		d := DateOfTime(v)
		s := d.String()
		require.Equal(t, v.Format(DateLayout), s)

		parsed, err := ParseDate(s)
		require.NoError(t, err, s)
		require.Equal(t, d, parsed)
		require.True(t, parsed.Time().Equal(v))
		require.Equal(t, v.Weekday(), parsed.Weekday())
	}
}

func TestNewDate(t *testing.T) {
	t.Parallel()
	d, err := NewDate(2024, 2, 29)
	require.NoError(t, err)
	require.Equal(t, "2024-02-29", d.String())

	_, err = NewDate(10000, 1, 1)
	require.ErrorIs(t, err, ErrOutOfRangeYear)
	_, err = NewDate(-1, 1, 1)
	require.ErrorIs(t, err, ErrOutOfRangeYear)
	_, err = NewDate(2024, 13, 1)
	require.ErrorIs(t, err, ErrOutOfRangeMonth)
	_, err = NewDate(2023, 2, 29)
	require.ErrorIs(t, err, ErrOutOfRangeDay)
}

func TestDaysIn(t *testing.T) {
	t.Parallel()
	for year := 1890; year < 2110; year++ {
		for m := time.January; m <= time.December; m++ {
			// Day zero of next month is the last day of m.
			expected := time.Date(year, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Equal(t, expected, DaysIn(int(m), year), "%d-%02d", year, m)
		}
	}
	assert.Zero(t, DaysIn(0, 2020))
	assert.Zero(t, DaysIn(13, 2020))
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()
	dates := []Date{
		{Year: 2021, Month: 1, Day: 1},
		{Year: 2020, Month: 12, Day: 31},
		{Year: 2020, Month: 2, Day: 29},
		{Year: 2020, Month: 3, Day: 1},
		{Year: 1999, Month: 12, Day: 31},
		{Year: 2020, Month: 2, Day: 28},
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	var got []string
	for _, d := range dates {
		got = append(got, d.String())
	}
	// Lexicographic order of canonical form matches chronology.
	require.True(t, sort.StringsAreSorted(got))
	require.Equal(t, []string{
		"1999-12-31",
		"2020-02-28",
		"2020-02-29",
		"2020-03-01",
		"2020-12-31",
		"2021-01-01",
	}, got)

	a := Date{Year: 2020, Month: 5, Day: 5}
	require.Equal(t, 0, a.Compare(a))
	require.False(t, a.Before(a))
	require.False(t, a.After(a))
	require.True(t, a.After(Date{Year: 2020, Month: 5, Day: 4}))
	require.Equal(t, -1, a.Compare(Date{Year: 2021, Month: 1, Day: 1}))
	require.Equal(t, 1, a.Compare(Date{Year: 2019, Month: 12, Day: 31}))
}

func TestDate_Hash(t *testing.T) {
	t.Parallel()
	a, err := ParseDate("2020-01-02")
	require.NoError(t, err)
	b, err := ParseDate("2020-01-02 10:00:00")
	require.NoError(t, err)
	require.Equal(t, a.Hash(), b.Hash())
	require.NotEqual(t, a.Hash(), Date{Year: 2020, Month: 2, Day: 1}.Hash())

	// Comparable, so usable as map key.
	m := map[Date]int{a: 1}
	m[b]++
	require.Equal(t, 2, m[a])
}

func TestDateOf(t *testing.T) {
	t.Parallel()
	dt := DateTime{Year: 2011, Month: 10, Day: 10, Hour: 14, Minute: 59, Second: 31}
	require.Equal(t, Date{Year: 2011, Month: 10, Day: 10}, DateOf(dt))
	require.Equal(t, DateOf(dt), dt.Date())

	// No validation on projection.
	bad := DateTime{Year: 2023, Month: 2, Day: 31}
	d := DateOf(bad)
	require.Equal(t, Date{Year: 2023, Month: 2, Day: 31}, d)
	require.False(t, d.Valid())
}

func TestDate_Text(t *testing.T) {
	t.Parallel()
	type event struct {
		When Date `json:"when"`
	}
	data, err := json.Marshal(event{When: Date{Year: 2006, Month: 1, Day: 2}})
	require.NoError(t, err)
	require.JSONEq(t, `{"when":"2006-01-02"}`, string(data))

	var e event
	require.NoError(t, json.Unmarshal(data, &e))
	require.Equal(t, Date{Year: 2006, Month: 1, Day: 2}, e.When)

	err = json.Unmarshal([]byte(`{"when":"2006-02-30"}`), &e)
	require.ErrorIs(t, err, ErrOutOfRangeDay)
}

func TestDate_Binary(t *testing.T) {
	t.Parallel()
	d := Date{Year: 2006, Month: 1, Day: 2}
	data, err := d.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, []byte{0xd6, 0x07, 1, 2}, data)

	var got Date
	require.NoError(t, got.UnmarshalBinary(data))
	require.Equal(t, d, got)

	require.Error(t, got.UnmarshalBinary(data[:3]))
	require.Error(t, got.UnmarshalBinary([]byte{0xd6, 0x07, 2, 30}))
}

func BenchmarkParseDate(b *testing.B) {
	b.ReportAllocs()
	buf := []byte("1234-12-13 11:12:13.123456")
	b.SetBytes(int64(DateLen))

	var d Date
	for i := 0; i < b.N; i++ {
		v, err := ParseDateBytes(buf)
		if err != nil {
			b.Fatal(err)
		}
		d = v
	}
	_ = d.Valid()
}

func TestDateOfTime_YearRange(t *testing.T) {
	t.Parallel()
	for _, year := range []int{-1, 10000, 65536 + 9, 70000} {
		v := time.Date(year, 3, 1, 0, 0, 0, 0, time.UTC)
		d := DateOfTime(v)
		require.Equal(t, Date{}, d, "%d", year)
		require.False(t, d.Valid(), "%d", year)
		require.Equal(t, DateTime{}, DateTimeOf(v), "%d", year)
	}
	require.Equal(t, Date{Year: 9999, Month: 12, Day: 31},
		DateOfTime(time.Date(9999, 12, 31, 23, 0, 0, 0, time.UTC)))
	require.Equal(t, Date{Year: 0, Month: 1, Day: 1},
		DateOfTime(time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseDate_NoAlloc(t *testing.T) {
	s := "1234-12-13 11:12:13.123456"
	allocs := testing.AllocsPerRun(100, func() {
		if _, err := ParseDate(s); err != nil {
			t.Fatal(err)
		}
	})
	require.Zero(t, allocs)
}

func BenchmarkParseDate_String(b *testing.B) {
	b.ReportAllocs()
	s := "1234-12-13 11:12:13.123456"
	b.SetBytes(int64(DateLen))

	for i := 0; i < b.N; i++ {
		if _, err := ParseDate(s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDate_AppendFormat(b *testing.B) {
	b.ReportAllocs()
	d := Date{Year: 1234, Month: 12, Day: 13}
	buf := make([]byte, 0, DateLen)
	for i := 0; i < b.N; i++ {
		buf = d.AppendFormat(buf[:0])
	}
}
