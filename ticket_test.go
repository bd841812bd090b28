package lotto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestNewTicket(t *testing.T) {
	tests := []struct {
		name    string
		numbers []int
		want    []int
		wantErr error
	}{
		{"sorted_input", []int{1, 2, 3, 4, 5, 6}, []int{1, 2, 3, 4, 5, 6}, nil},
		{"unsorted_input", []int{45, 3, 17, 1, 22, 8}, []int{1, 3, 8, 17, 22, 45}, nil},
		{"too_few", []int{1, 2, 3, 4, 5}, nil, ErrWrongLength},
		{"too_many", []int{1, 2, 3, 4, 5, 6, 7}, nil, ErrWrongLength},
		{"empty", nil, nil, ErrWrongLength},
		{"zero", []int{0, 1, 2, 3, 4, 5}, nil, ErrOutOfRange},
		{"above_max", []int{1, 2, 3, 4, 5, 46}, nil, ErrOutOfRange},
		{"duplicate", []int{1, 1, 2, 3, 4, 5}, nil, ErrDuplicateNumber},
		// 范围检查先于重复检查
		{"range_before_duplicate", []int{1, 1, 2, 3, 4, 99}, nil, ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := NewTicket(tt.numbers)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, ticket.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ticket.Numbers())
		})
	}
}

func TestTicket_DoesNotAliasInput(t *testing.T) {
	input := []int{6, 5, 4, 3, 2, 1}
	ticket, err := NewTicket(input)
	require.NoError(t, err)

	input[0] = 40
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ticket.Numbers())

	out := ticket.Numbers()
	out[0] = 40
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ticket.Numbers())
}

func TestTicket_String(t *testing.T) {
	assert.Equal(t, "[8, 21, 23, 41, 42, 43]", MustTicket(43, 8, 42, 21, 41, 23).String())
	assert.Equal(t, "[1, 2, 3, 4, 5, 45]", MustTicket(1, 2, 3, 4, 5, 45).String())
}

func TestTicket_Contains(t *testing.T) {
	ticket := MustTicket(1, 10, 20, 30, 40, 45)

	assert.True(t, ticket.Contains(1))
	assert.True(t, ticket.Contains(45))
	assert.False(t, ticket.Contains(2))
	assert.False(t, ticket.Contains(0))
	assert.False(t, ticket.Contains(46))
	assert.False(t, ticket.Contains(-1))
}

func TestTicket_MatchCount(t *testing.T) {
	base := MustTicket(1, 2, 3, 4, 5, 6)

	assert.Equal(t, 6, base.MatchCount(base))
	assert.Equal(t, 5, base.MatchCount(MustTicket(1, 2, 3, 4, 5, 7)))
	assert.Equal(t, 3, base.MatchCount(MustTicket(1, 2, 3, 43, 44, 45)))
	assert.Equal(t, 0, base.MatchCount(MustTicket(40, 41, 42, 43, 44, 45)))
}

func TestMustTicket_Panics(t *testing.T) {
	assert.Panics(t, func() { MustTicket(1, 2, 3) })
	assert.NotPanics(t, func() { MustTicket(1, 2, 3, 4, 5, 6) })
}

func TestPurchaseAmount_TicketCount(t *testing.T) {
	assert.Equal(t, 8, PurchaseAmount(8000).TicketCount())
	assert.Equal(t, 1, PurchaseAmount(1000).TicketCount())
	assert.Equal(t, 100, PurchaseAmount(100000).TicketCount())
}

func TestNewWinningDraw(t *testing.T) {
	numbers := MustTicket(1, 2, 3, 4, 5, 6)

	t.Run("valid", func(t *testing.T) {
		draw, err := NewWinningDraw(numbers, 7)
		require.NoError(t, err)
		assert.Equal(t, 7, draw.Bonus)
		assert.Equal(t, numbers, draw.Numbers)
	})

	t.Run("bonus_in_numbers", func(t *testing.T) {
		_, err := NewWinningDraw(numbers, 6)
		assert.ErrorIs(t, err, ErrDuplicateNumber)
	})

	t.Run("bonus_out_of_range", func(t *testing.T) {
		_, err := NewWinningDraw(numbers, 46)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("zero_ticket", func(t *testing.T) {
		_, err := NewWinningDraw(Ticket{}, 7)
		assert.ErrorIs(t, err, ErrWrongLength)
	})
}

// genTicketNumbers draws six distinct numbers in [1, 45] in random order.
func genTicketNumbers() *rapid.Generator[[]int] {
	return rapid.SliceOfNDistinct(rapid.IntRange(NumberMin, NumberMax), NumberCount, NumberCount, rapid.ID[int])
}

func TestTicket_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := MustTicket(genTicketNumbers().Draw(t, "a")...)
		b := MustTicket(genTicketNumbers().Draw(t, "b")...)

		numbers := a.Numbers()
		for i, n := range numbers {
			if !InNumberRange(n) {
				t.Fatalf("number %d out of range", n)
			}
			if i > 0 && numbers[i-1] >= n {
				t.Fatalf("numbers not strictly ascending: %v", numbers)
			}
		}

		m := a.MatchCount(b)
		if m != b.MatchCount(a) {
			t.Fatalf("match count not symmetric: %d vs %d", m, b.MatchCount(a))
		}
		if m < 0 || m > NumberCount {
			t.Fatalf("match count %d out of [0, 6]", m)
		}

		// 顺序无关
		shuffled := rapid.Permutation(b.Numbers()).Draw(t, "shuffled")
		if got := a.MatchCount(MustTicket(shuffled...)); got != m {
			t.Fatalf("match count changed after reordering: %d vs %d", got, m)
		}
	})
}
