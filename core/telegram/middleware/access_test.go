package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v4"
)

type staticMembers map[int64]bool

func (m staticMembers) IsAdmin(userID int64) bool { return m[userID] }

func memberCtx(t *testing.T, userID int64) tele.Context {
	t.Helper()
	b, err := tele.NewBot(tele.Settings{Token: "test", Offline: true})
	require.NoError(t, err)
	return b.NewContext(tele.Update{Message: &tele.Message{
		Sender: &tele.User{ID: userID},
		Chat:   &tele.Chat{ID: userID, Type: tele.ChatPrivate},
	}})
}

func TestAdminOnlyMiddleware(t *testing.T) {
	members := staticMembers{1: true}

	var reached bool
	next := func(tele.Context) error {
		reached = true
		return nil
	}

	h := AdminOnlyMiddleware(AdminOptions{Members: members})(next)

	require.NoError(t, h(memberCtx(t, 1)))
	assert.True(t, reached, "admin passes through to the handler")

	reached = false
	require.NoError(t, h(memberCtx(t, 2)))
	assert.False(t, reached, "non-admin is dropped silently")
}

func TestAdminOnlyMiddlewareOnReject(t *testing.T) {
	var rejected bool
	h := AdminOnlyMiddleware(AdminOptions{
		Members:  staticMembers{},
		OnReject: func(tele.Context) error { rejected = true; return nil },
	})(func(tele.Context) error {
		t.Fatal("handler must not run for non-admins")
		return nil
	})

	require.NoError(t, h(memberCtx(t, 5)))
	assert.True(t, rejected)
}

func TestAdminOnlyMiddlewareNilMembers(t *testing.T) {
	h := AdminOnlyMiddleware(AdminOptions{})(func(tele.Context) error {
		t.Fatal("handler must not run without a membership source")
		return nil
	})
	require.NoError(t, h(memberCtx(t, 1)))
}
