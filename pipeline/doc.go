// Package pipeline provides lazy, pull-based iterators and the few
// synchronous operators unic composes its pass from.
//
// No work happens until values are pulled via Drain or Iter.
// Each stage pulls from the previous one on demand, so a pipeline over a line
// source never holds more than the value currently in flight.
//
// # Operators
//
//   - Map: transform each value
//   - Tap: side-effect without altering the value (logging, metrics)
//
// # Usage
//
//	lines := pipeline.From(src)
//	runs := collapse.Runs(lines)
//	rendered := pipeline.Map(runs, render)
//	err := pipeline.Drain(rendered, write).Run(ctx)
package pipeline
