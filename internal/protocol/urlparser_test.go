package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURL(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		ok     bool
		parsed ParsedURL
	}{
		{
			name: "collection path with id",
			url:  "/api/products/7",
			ok:   true,
			parsed: ParsedURL{
				Path:  "/api/products",
				HasID: true,
				ID:    "7",
			},
		},
		{
			name: "collection path without id",
			url:  "/api/products",
			ok:   true,
			parsed: ParsedURL{
				Path: "/api/products",
			},
		},
		{
			name: "trailing slash is trimmed",
			url:  "api/orders/",
			ok:   true,
			parsed: ParsedURL{
				Path: "/api/orders",
			},
		},
		{
			name: "extra segments: last one is the id",
			url:  "/api/orders/10248/details",
			ok:   true,
			parsed: ParsedURL{
				Path:  "/api/orders",
				HasID: true,
				ID:    "details",
			},
		},
		{
			name: "embedded empty segment counts as a segment",
			url:  "/api//7",
			ok:   true,
			parsed: ParsedURL{
				Path:  "/api/",
				HasID: true,
				ID:    "7",
			},
		},
		{
			name: "single segment fails",
			url:  "/api",
			ok:   false,
		},
		{
			name: "empty input fails",
			url:  "",
			ok:   false,
		},
		{
			name: "only separators fail",
			url:  "///",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, ok := ParseURL(tt.url)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.parsed, parsed)
			}
		})
	}
}
