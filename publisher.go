package lotto

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisResultPublisher publishes finished game reports as JSON on a Redis
// channel. Nothing is stored; subscribers that are not listening miss it.
type RedisResultPublisher struct {
	redisClient *redis.Client
	channel     string
	logger      Logger
	recovery    *ErrorRecovery
}

// NewRedisResultPublisher creates a publisher on DefaultResultChannel with
// the default retry settings
func NewRedisResultPublisher(redisClient *redis.Client, logger Logger) *RedisResultPublisher {
	return NewRedisResultPublisherWithRetry(
		redisClient, logger, DefaultResultChannel, DefaultRetryAttempts, DefaultRetryInterval)
}

// NewRedisResultPublisherWithRetry creates a publisher with custom channel and retry settings
func NewRedisResultPublisherWithRetry(
	redisClient *redis.Client, logger Logger, channel string, retryAttempts int, retryDelay time.Duration,
) *RedisResultPublisher {
	if logger == nil {
		logger = NewSilentLogger()
	}
	if channel == "" {
		channel = DefaultResultChannel
	}

	return &RedisResultPublisher{
		redisClient: redisClient,
		channel:     channel,
		logger:      logger,
		recovery:    NewErrorRecovery(NewDefaultErrorHandler(logger, retryDelay), retryAttempts, logger),
	}
}

// NewRedisResultPublisherFromConfig builds a publisher from the publisher section
func NewRedisResultPublisherFromConfig(
	redisClient *redis.Client, config *PublisherConfig, logger Logger,
) *RedisResultPublisher {
	if config == nil {
		config = DefaultPublisherConfig()
	}
	return NewRedisResultPublisherWithRetry(
		redisClient, logger, config.Channel, config.RetryAttempts, config.RetryInterval)
}

// Channel returns the channel reports are published on
func (p *RedisResultPublisher) Channel() string { return p.channel }

// Publish serializes report and publishes it, retrying transient Redis errors
func (p *RedisResultPublisher) Publish(ctx context.Context, report *GameReport) error {
	data, err := report.Marshal()
	if err != nil {
		p.logger.Error("Failed to serialize report: %v", err)
		return err
	}

	var receivers int64
	err = p.recovery.ExecuteWithRetry(ctx, func() error {
		n, err := p.redisClient.Publish(ctx, p.channel, string(data)).Result()
		if err != nil {
			pubErr := ErrPublishFailed.WithDetails("channel " + p.channel).WithCause(err)
			pubErr.Retryable = IsRetryableError(err)
			return pubErr
		}
		receivers = n
		return nil
	})
	if err != nil {
		return err
	}

	p.logger.Debug("Published report run=%s to %s (%d bytes, %d receivers)",
		report.RunID, p.channel, len(data), receivers)
	return nil
}
