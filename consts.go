package lotto

import "time"

const (
	// TicketPrice is the price of a single ticket
	TicketPrice = 1000

	// MaxPurchaseAmount caps a single purchase (100 tickets)
	MaxPurchaseAmount = 100_000

	// MaxTicketCount is the most tickets one purchase can buy
	MaxTicketCount = MaxPurchaseAmount / TicketPrice

	// NumberMin is the smallest number that can appear on a ticket
	NumberMin = 1

	// NumberMax is the largest number that can appear on a ticket
	NumberMax = 45

	// NumberCount is the number of numbers on a ticket
	NumberCount = 6

	// NumberSeparator separates numbers in user input
	NumberSeparator = ","
)

// Console messages
const (
	MsgInputPurchaseAmount = "구입금액을 입력해 주세요.\n"
	MsgTicketsPurchased    = "개를 구매했습니다."
	MsgInputWinningNumbers = "\n당첨 번호를 입력해 주세요.\n"
	MsgInputBonusNumber    = "\n보너스 번호를 입력해 주세요.\n"
	MsgResultHeader        = "\n당첨 통계"
	MsgResultDivider       = "---"

	MsgInvalidAmount   = "[ERROR] 구입 금액은 1,000원 단위로 입력해야 합니다."
	MsgWrongLength     = "[ERROR] 로또 번호는 6개여야 합니다."
	MsgOutOfRange      = "[ERROR] 로또 번호는 1부터 45 사이의 숫자여야 합니다."
	MsgDuplicateNumber = "[ERROR] 로또 번호는 중복될 수 없습니다."
)

const (
	// DefaultResultChannel is the Redis channel game reports are published on
	DefaultResultChannel = "lotto:results"

	// DefaultRetryAttempts is the default number of publish retry attempts
	DefaultRetryAttempts = 3

	// DefaultRetryInterval is the default base interval between publish retries
	DefaultRetryInterval = 100 * time.Millisecond

	// MaxRetryAttempts is the maximum number of retry attempts allowed
	MaxRetryAttempts = 10

	// MaxRetryDelay caps the exponential backoff between retries
	MaxRetryDelay = 5 * time.Second

	// MaxReportSize is the maximum allowed size of a serialized GameReport (1MB)
	MaxReportSize = 1 << 20
)

const (
	// DefaultCircuitBreakerName is the default name for Circuit Breaker
	DefaultCircuitBreakerName = "lotto-publisher"

	// DefaultCircuitBreakerMaxRequests is the default max requests
	DefaultCircuitBreakerMaxRequests = 3

	// DefaultCircuitBreakerInterval is the default interval
	DefaultCircuitBreakerInterval = 60 * time.Second

	// DefaultCircuitBreakerTimeout is the default timeout
	DefaultCircuitBreakerTimeout = 30 * time.Second

	// DefaultCircuitBreakerFailureRatio is the default failure ratio
	DefaultCircuitBreakerFailureRatio = 0.6

	// DefaultCircuitBreakerMinRequests is the default min requests
	DefaultCircuitBreakerMinRequests = 3

	// DefaultCircuitBreakerOnStateChange is the default on state change
	DefaultCircuitBreakerOnStateChange = true
)

const (
	DefaultRedisAddr         = "localhost:6379"
	DefaultRedisPassword     = ""
	DefaultRedisDB           = 0
	DefaultRedisPoolSize     = 10
	DefaultRedisMinIdleConns = 1
	DefaultRedisMaxRetries   = 3
	DefaultRedisDialTimeout  = 5 * time.Second
	DefaultRedisReadTimeout  = 3 * time.Second
	DefaultRedisWriteTimeout = 3 * time.Second
	DefaultRedisPoolTimeout  = 4 * time.Second
)

const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "std"
)
