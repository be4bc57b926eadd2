package retry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExponentialBackoff_Defaults(t *testing.T) {
	b := NewExponentialBackoff(3, WithJitter(0))

	assert.Equal(t, 3, b.MaxAttempts())
	assert.Equal(t, 500*time.Millisecond, b.NextDelay(0))
	assert.Equal(t, time.Second, b.NextDelay(1))
	assert.Equal(t, 10*time.Second, b.NextDelay(10), "capped at max delay")
}

func TestExponentialBackoff_NextDelay(t *testing.T) {
	b := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMultiplier(3),
		WithMaxDelay(time.Second),
		WithJitter(0),
	)

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 100 * time.Millisecond},
		{1, 300 * time.Millisecond},
		{2, 900 * time.Millisecond},
		{3, time.Second},
		{4, time.Second},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.NextDelay(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestExponentialBackoff_Jitter(t *testing.T) {
	tests := []struct {
		name   string
		random float64
		want   time.Duration
	}{
		{"lowest", 0.0, 900 * time.Millisecond},
		{"middle", 0.5, time.Second},
		{"high", 0.75, 1050 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewExponentialBackoff(1,
				WithInitialDelay(time.Second),
				WithJitter(0.1),
				WithJitterFunc(func() float64 { return tt.random }),
			)
			assert.Equal(t, tt.want, b.NextDelay(0))
		})
	}
}
