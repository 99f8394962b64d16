package middleware

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilteredWriter(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		written bool
	}{
		{name: "fast success discarded", line: "12:00:00 | 200 | 1.2ms | GET /health\n", written: false},
		{name: "error status written", line: "12:00:00 | 500 | 1.2ms | GET /api/v1/projects\n", written: true},
		{name: "client error written", line: "12:00:00 | 404 | 0.4ms | GET /api/v1/projects/x\n", written: true},
		{name: "slow success written", line: "12:00:00 | 200 | 1.2s | GET /api/v1/chat/messages\n", written: true},
		{name: "exactly at threshold written", line: "12:00:00 | 200 | 500ms | GET /ws\n", written: true},
		{name: "unparsable written anyway", line: "something unexpected\n", written: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := &filteredWriter{dest: &buf, slowThresholdMs: 500, errorStatusFloor: 400}

			n, err := w.Write([]byte(tt.line))
			require.NoError(t, err)
			assert.Equal(t, len(tt.line), n, "always reports full write")

			if tt.written {
				assert.Equal(t, tt.line, buf.String())
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
