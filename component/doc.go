// Package component defines the lifecycle contract for the resources a unic
// invocation opens and must release: its line source and its line sink.
//
// Components are registered with a Registry, started in registration order
// before the pass begins and stopped in reverse order afterwards.
package component
