package component

import "context"

// HealthStatus represents the health state of a component.
type HealthStatus string

const (
	StatusHealthy   HealthStatus = "healthy"
	StatusUnhealthy HealthStatus = "unhealthy"
	StatusStopped   HealthStatus = "stopped"
)

// Health holds health information for a component.
type Health struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Message string       `json:"message,omitempty"`
}

// Component represents a lifecycle-managed resource.
type Component interface {
	// Name returns the unique name of the component for registration.
	Name() string

	// Start acquires the resource. An error aborts the invocation before
	// any line is processed.
	Start(ctx context.Context) error

	// Stop releases the resource, flushing any buffered output.
	Stop(ctx context.Context) error

	// Health returns the current health status of the component.
	Health(ctx context.Context) Health
}

// Description holds summary information for diagnostics.
type Description struct {
	// Name is the human-readable display name. If empty, Name() is used.
	Name string
	// Type categorizes the component: "source" or "sink".
	Type string
	// Details is a human-readable one-liner, e.g. "stdin" or "file out.txt".
	Details string
}

// Describable is optionally implemented by Components to self-report what
// they are bound to.
type Describable interface {
	Describe() Description
}
