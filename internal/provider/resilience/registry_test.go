package resilience_test

import (
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramabhadrarao/route-analytics-pro-v2/internal/provider/resilience"
)

func newRegisteredUpstream(t *testing.T, registry *resilience.Registry, name string) *resilience.Client {
	t.Helper()
	client := resilience.NewClient(resilience.DefaultClientConfig(name))
	registry.Register(name, client)
	return client
}

func TestRegistry_RegisterAndHealth(t *testing.T) {
	registry := resilience.NewRegistry()
	newRegisteredUpstream(t, registry, "routeapi")

	health := registry.Health("routeapi")
	require.NotNil(t, health)
	assert.Equal(t, "routeapi", health.Name)
	assert.Equal(t, gobreaker.StateClosed, health.CircuitState)
	assert.True(t, health.IsHealthy())
	assert.False(t, health.IsDegraded())
}

func TestRegistry_HealthUnregistered(t *testing.T) {
	registry := resilience.NewRegistry()
	assert.Nil(t, registry.Health("nonexistent"))
}

func TestRegistry_RecordSuccess(t *testing.T) {
	registry := resilience.NewRegistry()
	newRegisteredUpstream(t, registry, "routeapi")

	health := registry.Health("routeapi")
	require.NotNil(t, health)
	assert.Nil(t, health.LastSuccessAt)

	registry.RecordSuccess("routeapi")

	health = registry.Health("routeapi")
	require.NotNil(t, health)
	require.NotNil(t, health.LastSuccessAt)
	assert.WithinDuration(t, time.Now(), *health.LastSuccessAt, time.Second)
}

func TestRegistry_RecordFailure(t *testing.T) {
	registry := resilience.NewRegistry()
	newRegisteredUpstream(t, registry, "pdfservice")

	health := registry.Health("pdfservice")
	require.NotNil(t, health)
	assert.Nil(t, health.LastFailureAt)
	assert.Empty(t, health.LastError)

	registry.RecordFailure("pdfservice", assert.AnError)

	health = registry.Health("pdfservice")
	require.NotNil(t, health)
	require.NotNil(t, health.LastFailureAt)
	assert.WithinDuration(t, time.Now(), *health.LastFailureAt, time.Second)
	assert.Equal(t, assert.AnError.Error(), health.LastError)
}

func TestRegistry_RecordOnUnregisteredUpstream(t *testing.T) {
	registry := resilience.NewRegistry()

	// Both are no-ops rather than panics.
	registry.RecordSuccess("nonexistent")
	registry.RecordFailure("nonexistent", assert.AnError)
}

func TestRegistry_AllHealth(t *testing.T) {
	registry := resilience.NewRegistry()
	for _, name := range []string{"routeapi", "pdfservice"} {
		newRegisteredUpstream(t, registry, name)
	}

	healthList := registry.AllHealth()
	assert.Len(t, healthList, 2)

	names := make(map[string]bool)
	for _, h := range healthList {
		names[h.Name] = true
		assert.Equal(t, gobreaker.StateClosed, h.CircuitState)
	}
	assert.True(t, names["routeapi"])
	assert.True(t, names["pdfservice"])
}

func TestUpstreamHealth_States(t *testing.T) {
	tests := []struct {
		state      gobreaker.State
		isHealthy  bool
		isDegraded bool
	}{
		{gobreaker.StateClosed, true, false},
		{gobreaker.StateHalfOpen, false, true},
		{gobreaker.StateOpen, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			h := &resilience.UpstreamHealth{CircuitState: tt.state}
			assert.Equal(t, tt.isHealthy, h.IsHealthy())
			assert.Equal(t, tt.isDegraded, h.IsDegraded())
		})
	}
}
