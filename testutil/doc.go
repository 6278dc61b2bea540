// Package testutil provides testing infrastructure for unic components.
//
// It extends the component lifecycle pattern with test-only capabilities:
// a Recorder component that logs lifecycle events and can be told to fail,
// automatic cleanup through testing.T, and small I/O fakes for exercising
// read and write failures.
//
// # Quick Start
//
//	func TestSink(t *testing.T) {
//	    testutil.T(t).Setup(sinkComponent)
//	    // sinkComponent is stopped when the test ends
//	}
//
// Lifecycle ordering:
//
//	var events testutil.Events
//	source := testutil.NewRecorder("source", &events)
//	sink := testutil.NewRecorder("sink", &events).FailStop(errFlush)
package testutil
