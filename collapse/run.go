package collapse

import "strconv"

// countWidth is the minimum width of the count column.
const countWidth = 4

// Run is a completed run of equal lines.
type Run struct {
	// Line is the first line of the run, terminator included.
	Line []byte
	// Count is the number of lines in the run.
	Count int
}

// AppendTo appends the rendered run to dst. With showCount the line is
// prefixed by Count right-aligned to four columns and a space; the column
// widens for larger counts.
func (r Run) AppendTo(dst []byte, showCount bool) []byte {
	if showCount {
		n := strconv.Itoa(r.Count)
		for i := len(n); i < countWidth; i++ {
			dst = append(dst, ' ')
		}
		dst = append(dst, n...)
		dst = append(dst, ' ')
	}
	return append(dst, r.Line...)
}

// Render returns the rendered run as a new slice.
func (r Run) Render(showCount bool) []byte {
	size := len(r.Line)
	if showCount {
		size += countWidth + 1
	}
	return r.AppendTo(make([]byte, 0, size), showCount)
}
