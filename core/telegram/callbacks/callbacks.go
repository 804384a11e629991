package callbacks

import (
	"fmt"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Callback data rides telebot's "\f<unique>|<payload>" encoding. The unique
// key names the entity namespace (category, product, question) and the
// payload carries "<entityID>:<action>". Entity ids are hex digests and chat
// ids are decimal, so the separator is unambiguous.

const refSep = ":"

// Ref is a decoded callback payload: an entity id plus the requested action.
type Ref struct {
	ID     string
	Action string
}

// Encode builds the payload half of callback data for an entity action.
func Encode(id, action string) string {
	return id + refSep + action
}

// ParseRef decodes a payload previously produced by Encode.
func ParseRef(payload string) (Ref, error) {
	parts := strings.SplitN(payload, refSep, 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Ref{}, fmt.Errorf("malformed callback payload: %q", payload)
	}
	return Ref{ID: parts[0], Action: parts[1]}, nil
}

// ParseCallbackData parses telebot's \f<unique>|<payload> encoding.
// Returns unique and payload (may be empty).
func ParseCallbackData(cb *tele.Callback) (string, string) {
	if cb == nil {
		return "", ""
	}
	raw := strings.TrimPrefix(cb.Data, "\\f")
	parts := strings.SplitN(raw, "|", 2)
	unique := strings.TrimSpace(parts[0])
	payload := ""
	if len(parts) == 2 {
		payload = parts[1]
	}
	return unique, payload
}

// Key returns cb.Unique if present; otherwise parses it from Data.
func Key(c tele.Context) string {
	cb := c.Callback()
	if cb == nil {
		return ""
	}
	if cb.Unique != "" {
		return cb.Unique
	}
	k, _ := ParseCallbackData(cb)
	return k
}

// Payload returns the payload (after '|') parsed from Data.
// cb.Data is preferred since cb.Unique may be empty in generic OnCallback.
func Payload(c tele.Context) string {
	cb := c.Callback()
	if cb == nil {
		return ""
	}
	_, payload := ParseCallbackData(cb)
	return payload
}

// RefFrom decodes the entity reference carried by the current callback.
func RefFrom(c tele.Context) (Ref, error) {
	return ParseRef(Payload(c))
}
