// File: hoplite/mapper_test.go
package hoplite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCamelToSnake tests case-boundary splitting across the spellings
// the default mappers produce.
func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in    string
		snake string
		kebab string
		upper string
	}{
		{"ListenAddr", "listen_addr", "listen-addr", "LISTEN_ADDR"},
		{"Port", "port", "port", "PORT"},
		{"HTTPPort", "http_port", "http-port", "HTTP_PORT"},
		{"maxRetries", "max_retries", "max-retries", "MAX_RETRIES"},
		{"listen_addr", "listen_addr", "listen-addr", "LISTEN_ADDR"},
		{"listen-addr", "listen_addr", "listen-addr", "LISTEN_ADDR"},
		{"a", "a", "a", "A"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.snake, camelToSnake(tt.in, '_', false))
			assert.Equal(t, tt.kebab, camelToSnake(tt.in, '-', false))
			assert.Equal(t, tt.upper, camelToSnake(tt.in, '_', true))
		})
	}
}

// TestCandidateKeys tests mapper ordering and deduplication.
func TestCandidateKeys(t *testing.T) {
	keys := candidateKeys("ListenAddr", defaultMappers())
	assert.Equal(t, []string{"ListenAddr", "listen_addr", "listen-addr", "LISTEN_ADDR"}, keys)

	t.Run("DuplicatesCollapse", func(t *testing.T) {
		// For an already-snake name, exact and snake agree.
		keys := candidateKeys("port", defaultMappers())
		assert.Equal(t, []string{"port", "PORT"}, keys)
	})

	t.Run("CustomMapperRunsFirst", func(t *testing.T) {
		custom := mapperFunc(func(name string) []string { return []string{"x-" + name} })
		mappers := append([]ParamMapper{custom}, defaultMappers()...)
		keys := candidateKeys("port", mappers)
		assert.Equal(t, "x-port", keys[0])
	})
}

// mapperFunc adapts a function to ParamMapper for tests.
type mapperFunc func(string) []string

func (f mapperFunc) Candidates(name string) []string { return f(name) }
