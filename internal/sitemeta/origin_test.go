package sitemeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveOrigin(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{
			name:       "first usable candidate wins",
			candidates: []string{"https://nstc.example.com/login?x=1", "https://other.example"},
			want:       "https://nstc.example.com",
		},
		{
			name:       "skips empty and local candidates",
			candidates: []string{"", "http://localhost:3000", "http://127.0.0.1", "https://prod.example"},
			want:       "https://prod.example",
		},
		{
			name:       "skips relative or broken values",
			candidates: []string{"nstc.example.com", "://bad", "https://ok.example:8443/path"},
			want:       "https://ok.example:8443",
		},
		{
			name:       "falls back when nothing usable",
			candidates: []string{"", "http://0.0.0.0:8080"},
			want:       FallbackOrigin,
		},
		{
			name: "no candidates",
			want: FallbackOrigin,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveOrigin(tt.candidates...))
		})
	}
}
