package callbacks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tele "gopkg.in/telebot.v4"
)

func TestEncodeParseRoundTrip(t *testing.T) {
	payload := Encode("a9cef291062dba543eb97fe5887928f0", "add")
	assert.Equal(t, "a9cef291062dba543eb97fe5887928f0:add", payload)

	ref, err := ParseRef(payload)
	require.NoError(t, err)
	assert.Equal(t, "a9cef291062dba543eb97fe5887928f0", ref.ID)
	assert.Equal(t, "add", ref.Action)
}

func TestParseRefRejectsMalformed(t *testing.T) {
	for _, payload := range []string{"", "noseparator", ":add", "id:", ":"} {
		_, err := ParseRef(payload)
		assert.Error(t, err, "payload %q", payload)
	}
}

func TestParseCallbackData(t *testing.T) {
	cb := &tele.Callback{Data: "\\fproduct|deadbeef:increase"}
	unique, payload := ParseCallbackData(cb)
	assert.Equal(t, "product", unique)
	assert.Equal(t, "deadbeef:increase", payload)

	ref, err := ParseRef(payload)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", ref.ID)
	assert.Equal(t, "increase", ref.Action)
}

func TestParseCallbackDataNoPayload(t *testing.T) {
	unique, payload := ParseCallbackData(&tele.Callback{Data: "\\fadd_category"})
	assert.Equal(t, "add_category", unique)
	assert.Equal(t, "", payload)

	unique, payload = ParseCallbackData(nil)
	assert.Equal(t, "", unique)
	assert.Equal(t, "", payload)
}
