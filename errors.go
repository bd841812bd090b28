package lotto

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ErrorCode 错误代码类型
type ErrorCode string

// 错误代码常量
const (
	// 系统级错误 (1000-1999)
	ErrCodeSystem             ErrorCode = "LOTTO_1000"
	ErrCodeConfigInvalid      ErrorCode = "LOTTO_1001"
	ErrCodeInputClosed        ErrorCode = "LOTTO_1002"
	ErrCodeInvalidRange       ErrorCode = "LOTTO_1003"
	ErrCodeInvalidCount       ErrorCode = "LOTTO_1004"
	ErrCodePublishFailed      ErrorCode = "LOTTO_1005"
	ErrCodeCircuitBreakerOpen ErrorCode = "LOTTO_1006"
	ErrCodeSerialization      ErrorCode = "LOTTO_1007"

	// 输入校验错误 (2000-2999)
	ErrCodeInvalidAmount   ErrorCode = "LOTTO_2001"
	ErrCodeWrongLength     ErrorCode = "LOTTO_2002"
	ErrCodeOutOfRange      ErrorCode = "LOTTO_2003"
	ErrCodeDuplicateNumber ErrorCode = "LOTTO_2004"
)

// ErrorSeverity 错误严重程度
type ErrorSeverity string

const (
	SeverityCritical ErrorSeverity = "critical"
	SeverityHigh     ErrorSeverity = "high"
	SeverityMedium   ErrorSeverity = "medium"
	SeverityLow      ErrorSeverity = "low"
)

// LottoError carries an error code, the user-facing message and retry hints.
type LottoError struct {
	Code      ErrorCode     `json:"code"`
	Message   string        `json:"message"`
	Details   string        `json:"details,omitempty"`
	Severity  ErrorSeverity `json:"severity"`
	Timestamp time.Time     `json:"timestamp"`
	Cause     error         `json:"-"`
	Retryable bool          `json:"retryable"`
}

// Error 实现 error 接口
func (e *LottoError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 实现 errors.Unwrap 接口
func (e *LottoError) Unwrap() error {
	return e.Cause
}

// Is matches any *LottoError with the same code.
func (e *LottoError) Is(target error) bool {
	if t, ok := target.(*LottoError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithCause returns a copy of e with the given cause.
func (e *LottoError) WithCause(cause error) *LottoError {
	c := *e
	c.Cause = cause
	c.Timestamp = time.Now()
	return &c
}

// WithDetails returns a copy of e with the given details.
func (e *LottoError) WithDetails(details string) *LottoError {
	c := *e
	c.Details = details
	c.Timestamp = time.Now()
	return &c
}

// UserMessage is the text shown to the player.
func (e *LottoError) UserMessage() string { return e.Message }

// NewError 创建新的错误
func NewError(code ErrorCode, message string) *LottoError {
	return &LottoError{
		Code:      code,
		Message:   message,
		Severity:  SeverityMedium,
		Timestamp: time.Now(),
	}
}

// NewRetryableError 创建可重试的错误
func NewRetryableError(code ErrorCode, message string) *LottoError {
	err := NewError(code, message)
	err.Retryable = true
	return err
}

// NewValidationError creates an error reported back to the player.
func NewValidationError(code ErrorCode, message string) *LottoError {
	err := NewError(code, message)
	err.Severity = SeverityLow
	return err
}

// 预定义的错误实例
var (
	ErrSystemError        = NewError(ErrCodeSystem, "system error occurred")
	ErrConfigInvalid      = NewError(ErrCodeConfigInvalid, "configuration is invalid")
	ErrInputClosed        = NewError(ErrCodeInputClosed, "input closed before a valid value was entered")
	ErrInvalidRange       = NewError(ErrCodeInvalidRange, "invalid range: min must be less than or equal to max")
	ErrInvalidCount       = NewError(ErrCodeInvalidCount, "invalid count: must not exceed the range size")
	ErrPublishFailed      = NewRetryableError(ErrCodePublishFailed, "failed to publish game report")
	ErrCircuitBreakerOpen = NewRetryableError(ErrCodeCircuitBreakerOpen, "circuit breaker is open")
	ErrSerialization      = NewError(ErrCodeSerialization, "serialization failed")

	ErrInvalidAmount   = NewValidationError(ErrCodeInvalidAmount, MsgInvalidAmount)
	ErrWrongLength     = NewValidationError(ErrCodeWrongLength, MsgWrongLength)
	ErrOutOfRange      = NewValidationError(ErrCodeOutOfRange, MsgOutOfRange)
	ErrDuplicateNumber = NewValidationError(ErrCodeDuplicateNumber, MsgDuplicateNumber)
)

// IsValidationError reports whether err is a player input error that is
// handled by prompting again.
func IsValidationError(err error) bool {
	var lottoErr *LottoError
	if !errors.As(err, &lottoErr) {
		return false
	}
	switch lottoErr.Code {
	case ErrCodeInvalidAmount, ErrCodeWrongLength, ErrCodeOutOfRange, ErrCodeDuplicateNumber:
		return true
	}
	return false
}

// ErrorHandler 错误处理器接口
type ErrorHandler interface {
	HandleError(ctx context.Context, err error) error
	ShouldRetry(err error) bool
	GetRetryDelay(attempt int, err error) time.Duration
}

// DefaultErrorHandler 默认错误处理器
type DefaultErrorHandler struct {
	logger        Logger
	baseDelay     time.Duration
	maxDelay      time.Duration
	backoffFactor float64
}

// NewDefaultErrorHandler 创建默认错误处理器
func NewDefaultErrorHandler(logger Logger, baseDelay time.Duration) *DefaultErrorHandler {
	return &DefaultErrorHandler{
		logger:        logger,
		baseDelay:     baseDelay,
		maxDelay:      MaxRetryDelay,
		backoffFactor: 2.0,
	}
}

// HandleError wraps plain errors into a *LottoError and logs them.
func (h *DefaultErrorHandler) HandleError(_ context.Context, err error) error {
	if err == nil {
		return nil
	}

	var lottoErr *LottoError
	if !errors.As(err, &lottoErr) {
		lottoErr = NewError(ErrCodeSystem, err.Error()).WithCause(err)
		lottoErr.Retryable = IsRetryableError(err)
	}

	switch lottoErr.Severity {
	case SeverityCritical, SeverityHigh:
		h.logger.Error("High severity error: %s", lottoErr.Error())
	case SeverityLow:
		h.logger.Debug("Low severity error: %s", lottoErr.Error())
	default:
		h.logger.Error("Error: %s", lottoErr.Error())
	}

	return lottoErr
}

// ShouldRetry 判断是否应该重试
func (h *DefaultErrorHandler) ShouldRetry(err error) bool {
	var lottoErr *LottoError
	if errors.As(err, &lottoErr) && lottoErr.Retryable {
		return true
	}
	return IsRetryableError(err)
}

// GetRetryDelay returns an exponential backoff delay with ±25% jitter.
func (h *DefaultErrorHandler) GetRetryDelay(attempt int, _ error) time.Duration {
	if attempt <= 0 {
		return h.baseDelay
	}

	delay := float64(h.baseDelay)
	for i := 1; i < attempt; i++ {
		delay *= h.backoffFactor
	}
	delay += delay * 0.25 * (2*rand.Float64() - 1)

	if time.Duration(delay) > h.maxDelay {
		return h.maxDelay
	}
	return time.Duration(delay)
}

// IsRetryableError 检查是否为可重试错误
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"network is unreachable",
		"broken pipe",
		"i/o timeout",
		"dial tcp",
		"read tcp",
		"write tcp",
		"no route to host",
		"redis: connection pool timeout",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// ErrorRecovery 错误恢复策略
type ErrorRecovery struct {
	handler    ErrorHandler
	maxRetries int
	logger     Logger
}

// NewErrorRecovery 创建错误恢复策略
func NewErrorRecovery(handler ErrorHandler, maxRetries int, logger Logger) *ErrorRecovery {
	return &ErrorRecovery{
		handler:    handler,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// ExecuteWithRetry runs operation until it succeeds, fails with a
// non-retryable error, or maxRetries retries are used up.
func (r *ErrorRecovery) ExecuteWithRetry(ctx context.Context, operation func() error) error {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return NewError(ErrCodeSystem, "operation cancelled").WithCause(ctx.Err())
		default:
		}

		err := operation()
		if err == nil {
			if attempt > 0 {
				r.logger.Info("Operation succeeded after %d retries", attempt)
			}
			return nil
		}

		lastErr = r.handler.HandleError(ctx, err)
		if !r.handler.ShouldRetry(lastErr) {
			r.logger.Debug("Error is not retryable: %v", lastErr)
			break
		}

		if attempt < r.maxRetries {
			delay := r.handler.GetRetryDelay(attempt+1, lastErr)
			r.logger.Debug("Retrying operation in %v (attempt %d/%d)", delay, attempt+1, r.maxRetries)

			select {
			case <-ctx.Done():
				return NewError(ErrCodeSystem, "operation cancelled during retry").WithCause(ctx.Err())
			case <-time.After(delay):
			}
		}
	}

	return lastErr
}
