package collapse

// Collapser tracks the single open run of a pass.
//
// The zero value is ready to use and has no open run.
type Collapser struct {
	pending []byte
	count   int
}

// Push adds line to the pass. When line starts a new run, the run it closes
// is returned with ok set. The first line never closes a run.
//
// line is copied when it becomes the representative of a new run, so callers
// may reuse their buffer.
func (c *Collapser) Push(line []byte) (done Run, ok bool) {
	if c.count == 0 || !Equal(line, c.pending) {
		done, ok = c.Flush()
		c.pending = append(c.pending[:0:0], line...)
	}
	c.count++
	return done, ok
}

// Flush closes the open run and returns it. ok is false when no run is open.
func (c *Collapser) Flush() (done Run, ok bool) {
	if c.count == 0 {
		return Run{}, false
	}
	done = Run{Line: c.pending, Count: c.count}
	c.pending = nil
	c.count = 0
	return done, true
}

// Pending returns the open run without closing it.
func (c *Collapser) Pending() (Run, bool) {
	if c.count == 0 {
		return Run{}, false
	}
	return Run{Line: c.pending, Count: c.count}, true
}
