package scan

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/go-faster/errors"

	"github.com/go-faster/logtime"
)

// WriteReport writes human-readable summary of h to w.
func (h *Histogram) WriteReport(w io.Writer) error {
	b := bufio.NewWriter(w)
	for _, d := range h.Dates() {
		fmt.Fprintf(b, "%s %12s\n", d, humanize.Comma(h.Days[d]))
	}
	if first, last, ok := h.Span(); ok {
		fmt.Fprintf(b, "span: %s .. %s\n", first, last)
	}
	fmt.Fprintf(b, "lines: %s\n", humanize.Comma(h.Lines))
	fmt.Fprintf(b, "accepted: %s\n", humanize.Comma(h.Accepted))
	fmt.Fprintf(b, "filtered: %s\n", humanize.Comma(h.Filtered))
	fmt.Fprintf(b, "rejected: %s\n", humanize.Comma(h.RejectedTotal()))

	kinds := make([]logtime.Kind, 0, len(h.Rejected))
	for k := range h.Rejected {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Fprintf(b, "  %s: %s\n", k, humanize.Comma(h.Rejected[k]))
	}

	if err := b.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	return nil
}
