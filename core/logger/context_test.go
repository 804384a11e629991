package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRIDRoundTrip(t *testing.T) {
	ctx := WithRID(Background(), BuildRID(42, 7, 9))
	assert.Equal(t, "42:7:9", RIDFrom(ctx))

	ctx = WithUpdateMeta(ctx, 42, 9, 7)
	assert.Equal(t, int64(9), UserIDFrom(ctx))
	assert.Equal(t, int64(7), ChatIDFrom(ctx))
	assert.Equal(t, 42, UpdateIDFrom(ctx))
}

func TestSanitizeLimit(t *testing.T) {
	assert.Equal(t, "abc", Sanitize("a\x00b\x1bc"))
	assert.Equal(t, "tab\tok", Sanitize("tab\tok"))
	assert.Equal(t, "аб", SanitizeLimit("абвгд", 2))
	assert.Equal(t, "", SanitizeLimit("anything", 0))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "ok", Status(nil))
	assert.Equal(t, "error", Status(assert.AnError))
}
