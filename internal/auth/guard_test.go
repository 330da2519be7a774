package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amincahcepu/Remote-Docling/pkg/logger"
)

func TestVerifyDisabledAcceptsAnything(t *testing.T) {
	tl := logger.NewTestLogger()
	g := NewGuard("", tl)

	assert.False(t, g.Enabled())
	assert.NoError(t, g.Verify(""))
	assert.NoError(t, g.Verify("whatever"))
	assert.Empty(t, tl.GetEntries())
}

func TestVerifyMatchingKey(t *testing.T) {
	g := NewGuard("s3cret", logger.NewTestLogger())

	assert.True(t, g.Enabled())
	assert.NoError(t, g.Verify("s3cret"))
}

func TestVerifyRejectsBadKey(t *testing.T) {
	tests := []struct {
		name     string
		provided string
	}{
		{"wrong key", "nope"},
		{"missing key", ""},
		{"prefix of key", "s3c"},
		{"key with suffix", "s3cret "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tl := logger.NewTestLogger()
			g := NewGuard("s3cret", tl)

			err := g.Verify(tt.provided)
			require.ErrorIs(t, err, ErrInvalidKey)
			assert.Equal(t, []string{"Invalid API key attempt"}, tl.Messages("WARN"))
		})
	}
}
