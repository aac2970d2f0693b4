package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		rps  float64
		want int
	}{
		{rps: 0, want: 1},
		{rps: -1, want: 1},
		{rps: 50, want: 1},
		{rps: 1, want: 1},
		{rps: 0.5, want: 2},
		{rps: 0.3, want: 4},
		{rps: 0.1, want: 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, retryAfterSeconds(tt.rps), "rps=%v", tt.rps)
	}
}
