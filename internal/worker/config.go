// Package worker provides background report prewarming for the route
// analytics service.
package worker

import "time"

// PrewarmConfig holds configuration for the report prewarm job.
type PrewarmConfig struct {
	// Concurrency is the number of reports built in parallel.
	// Default: 3
	Concurrency int

	// Timeout bounds each report build.
	// Default: 60 seconds
	Timeout time.Duration

	// FailureThreshold is the fraction of failed builds above which a run
	// is reported as failed. Default: 0.5
	FailureThreshold float64
}

// DefaultPrewarmConfig returns the default prewarm configuration.
func DefaultPrewarmConfig() PrewarmConfig {
	return PrewarmConfig{
		Concurrency:      3,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.5,
	}
}

func (c PrewarmConfig) withDefaults() PrewarmConfig {
	if c.Concurrency <= 0 {
		c.Concurrency = 3
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 0.5
	}
	return c
}
