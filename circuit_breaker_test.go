package lotto

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBreakerConfig() *CircuitBreakerConfig {
	return &CircuitBreakerConfig{
		Enabled:      true,
		Name:         "test-publisher",
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		FailureRatio: 0.6,
		MinRequests:  3,
	}
}

func TestCircuitBreakerPublisher_Opens(t *testing.T) {
	next := &stubPublisher{err: ErrPublishFailed}
	publisher := NewCircuitBreakerPublisher(next, testBreakerConfig(), nil)
	report := newTestReport(t)

	assert.Equal(t, "closed", publisher.State())
	for iter := 0; iter < 3; iter++ {
		err := publisher.Publish(context.Background(), report)
		assert.ErrorIs(t, err, ErrPublishFailed)
	}

	assert.Equal(t, "open", publisher.State())

	// 熔断后不再调用下游
	err := publisher.Publish(context.Background(), report)
	require.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.Len(t, next.reports, 3)

	health := publisher.HealthCheck()
	assert.Equal(t, "open", health["state"])
	assert.Equal(t, false, health["healthy"])

	publisher.Reset()
	assert.Equal(t, "closed", publisher.State())
	assert.Zero(t, publisher.Counts().Requests)
}

func TestCircuitBreakerPublisher_PassesThrough(t *testing.T) {
	next := &stubPublisher{}
	publisher := NewCircuitBreakerPublisher(next, testBreakerConfig(), NewSilentLogger())

	require.NoError(t, publisher.Publish(context.Background(), newTestReport(t)))
	assert.Len(t, next.reports, 1)

	counts := publisher.Counts()
	assert.Equal(t, uint32(1), counts.Requests)
	assert.Equal(t, uint32(1), counts.TotalSuccesses)

	health := publisher.HealthCheck()
	assert.Equal(t, true, health["healthy"])
	assert.Equal(t, 1.0, health["success_rate"])
}

func TestCircuitBreakerPublisher_Disabled(t *testing.T) {
	config := testBreakerConfig()
	config.Enabled = false

	next := &stubPublisher{err: errors.New("boom")}
	publisher := NewCircuitBreakerPublisher(next, config, nil)

	for iter := 0; iter < 5; iter++ {
		assert.EqualError(t, publisher.Publish(context.Background(), newTestReport(t)), "boom")
	}
	assert.Len(t, next.reports, 5)
	assert.Equal(t, "disabled", publisher.State())
	assert.Equal(t, map[string]any{
		"circuit_breaker_enabled": false,
		"state":                   "disabled",
		"healthy":                 true,
	}, publisher.HealthCheck())

	publisher.Reset()
	assert.Equal(t, "disabled", publisher.State())
}
