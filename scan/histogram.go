package scan

import (
	"sort"

	"github.com/go-faster/logtime"
)

// Histogram of log lines per calendar day.
//
// Zero value is ready to use. Not safe for concurrent use.
type Histogram struct {
	Days     map[logtime.Date]int64
	Rejected map[logtime.Kind]int64

	Lines    int64 // total lines seen
	Accepted int64 // lines with valid leading date within bounds
	Filtered int64 // lines with valid leading date out of bounds
}

// Add accepted line with date d.
func (h *Histogram) Add(d logtime.Date) {
	if h.Days == nil {
		h.Days = map[logtime.Date]int64{}
	}
	h.Days[d]++
	h.Accepted++
	h.Lines++
}

// Reject line with failure kind k.
func (h *Histogram) Reject(k logtime.Kind) {
	if h.Rejected == nil {
		h.Rejected = map[logtime.Kind]int64{}
	}
	h.Rejected[k]++
	h.Lines++
}

// Filter line that is out of date bounds.
func (h *Histogram) Filter() {
	h.Filtered++
	h.Lines++
}

// RejectedTotal returns number of rejected lines.
func (h *Histogram) RejectedTotal() int64 {
	var n int64
	for _, v := range h.Rejected {
		n += v
	}
	return n
}

// Merge o into h.
func (h *Histogram) Merge(o *Histogram) {
	for d, n := range o.Days {
		if h.Days == nil {
			h.Days = map[logtime.Date]int64{}
		}
		h.Days[d] += n
	}
	for k, n := range o.Rejected {
		if h.Rejected == nil {
			h.Rejected = map[logtime.Kind]int64{}
		}
		h.Rejected[k] += n
	}
	h.Lines += o.Lines
	h.Accepted += o.Accepted
	h.Filtered += o.Filtered
}

// Dates returns seen dates in chronological order.
func (h *Histogram) Dates() []logtime.Date {
	dates := make([]logtime.Date, 0, len(h.Days))
	for d := range h.Days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// Span returns first and last seen dates, if any.
func (h *Histogram) Span() (first, last logtime.Date, ok bool) {
	for d := range h.Days {
		if !ok || d.Before(first) {
			first = d
		}
		if !ok || d.After(last) {
			last = d
		}
		ok = true
	}
	return first, last, ok
}
