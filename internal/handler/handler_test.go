package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{"no referer", "", "direct"},
		{"search page", "https://google.com/search?q=shorten", "google.com"},
		{"port kept", "http://localhost:3000/app", "localhost:3000"},
		{"short link page", "https://is.gd/abc", "is.gd"},
		{"bare word", "not-a-valid-url", "unknown"},
		{"path only", "/just/a/path", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDomain(tt.referer))
		})
	}
}
