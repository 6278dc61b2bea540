package collapse

import (
	"context"

	"github.com/kbukum/unic/pipeline"
)

// Runs collapses a pipeline of raw lines into a pipeline of runs, in input
// order. The last run is yielded once the line source is exhausted.
func Runs(lines *pipeline.Pipeline[[]byte]) *pipeline.Pipeline[Run] {
	return pipeline.FromFunc(func(ctx context.Context) pipeline.Iterator[Run] {
		return &runsIter{source: lines.Iter(ctx)}
	})
}

type runsIter struct {
	source pipeline.Iterator[[]byte]
	c      Collapser
	done   bool
}

func (it *runsIter) Next(ctx context.Context) (Run, bool, error) {
	for !it.done {
		line, ok, err := it.source.Next(ctx)
		if err != nil {
			return Run{}, false, err
		}
		if !ok {
			it.done = true
			run, open := it.c.Flush()
			return run, open, nil
		}
		if run, closed := it.c.Push(line); closed {
			return run, true, nil
		}
	}
	return Run{}, false, nil
}

func (it *runsIter) Close() error { return it.source.Close() }
