package lotto

import (
	"context"
	"errors"
	"sync"

	"github.com/sony/gobreaker"
)

// CircuitBreakerPublisher 带熔断器的结果发布器
type CircuitBreakerPublisher struct {
	next ResultPublisher

	mu      sync.RWMutex
	breaker *gobreaker.CircuitBreaker
	logger  Logger
	config  *CircuitBreakerConfig
}

// NewCircuitBreakerPublisher wraps next with a circuit breaker. When the
// breaker is disabled in config, publishes pass straight through.
func NewCircuitBreakerPublisher(
	next ResultPublisher, config *CircuitBreakerConfig, logger Logger,
) *CircuitBreakerPublisher {
	if config == nil {
		config = DefaultCircuitBreakerConfig()
	}
	if logger == nil {
		logger = NewSilentLogger()
	}

	p := &CircuitBreakerPublisher{
		next:   next,
		logger: logger,
		config: config,
	}
	if config.Enabled {
		p.breaker = p.newBreaker()
	}
	return p
}

func (p *CircuitBreakerPublisher) newBreaker() *gobreaker.CircuitBreaker {
	config := p.config
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 当请求数达到最小要求且失败率超过阈值时触发熔断
			return counts.Requests >= config.MinRequests &&
				float64(counts.TotalFailures)/float64(counts.Requests) >= config.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			if config.OnStateChange {
				p.logger.Info("Circuit breaker '%s' state changed from %s to %s", name, from, to)
			}
		},
	})
}

// Publish sends report through the wrapped publisher unless the breaker is open
func (p *CircuitBreakerPublisher) Publish(ctx context.Context, report *GameReport) error {
	p.mu.RLock()
	breaker := p.breaker
	p.mu.RUnlock()

	if breaker == nil {
		// 熔断器未启用，直接执行
		return p.next.Publish(ctx, report)
	}

	_, err := breaker.Execute(func() (any, error) {
		return nil, p.next.Publish(ctx, report)
	})
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return ErrCircuitBreakerOpen.WithDetails("circuit breaker is open, publishes are being rejected")
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return ErrCircuitBreakerOpen.WithDetails("too many requests, circuit breaker is half-open")
	}
	return err
}

// State 获取熔断器状态
func (p *CircuitBreakerPublisher) State() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.breaker == nil {
		return "disabled"
	}

	switch p.breaker.State() {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// Counts 获取熔断器统计信息
func (p *CircuitBreakerPublisher) Counts() gobreaker.Counts {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.breaker == nil {
		return gobreaker.Counts{}
	}
	return p.breaker.Counts()
}

// Reset 重置熔断器 (gobreaker 没有 Reset 方法, 重新创建实例)
func (p *CircuitBreakerPublisher) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.breaker == nil {
		return
	}
	p.breaker = p.newBreaker()
	p.logger.Info("Circuit breaker '%s' has been reset (recreated)", p.config.Name)
}

// HealthCheck reports the breaker state and counters. A disabled breaker is
// always healthy.
func (p *CircuitBreakerPublisher) HealthCheck() map[string]any {
	result := map[string]any{
		"circuit_breaker_enabled": p.config.Enabled,
	}

	state := p.State()
	if state == "disabled" {
		result["state"] = state
		result["healthy"] = true
		return result
	}

	counts := p.Counts()
	result["state"] = state
	result["requests"] = counts.Requests
	result["total_successes"] = counts.TotalSuccesses
	result["total_failures"] = counts.TotalFailures
	result["consecutive_failures"] = counts.ConsecutiveFailures

	// 计算成功率
	if counts.Requests > 0 {
		result["success_rate"] = float64(counts.TotalSuccesses) / float64(counts.Requests)
	} else {
		result["success_rate"] = 0.0
	}

	// 半开状态下连续失败过多也认为不健康
	healthy := true
	switch state {
	case "open":
		healthy = false
	case "half-open":
		if counts.ConsecutiveFailures > 2 {
			healthy = false
		}
	}
	result["healthy"] = healthy

	return result
}
