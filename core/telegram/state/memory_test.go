package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDraft struct {
	Title string
}

func TestManagerStateLifecycle(t *testing.T) {
	m := NewMemoryManager()

	assert.Equal(t, StateIdle, m.GetState(1))
	assert.False(t, m.InProgress(1))

	m.SetState(1, State("product_title"))
	assert.Equal(t, State("product_title"), m.GetState(1))
	assert.True(t, m.InProgress(1))
	assert.False(t, m.InProgress(2), "sessions are independent per user")

	m.Clear(1)
	assert.Equal(t, StateIdle, m.GetState(1))
	assert.False(t, m.InProgress(1))
}

func TestManagerDraft(t *testing.T) {
	m := NewMemoryManager()

	assert.Nil(t, m.Draft(7))

	m.SetDraft(7, &testDraft{Title: "chair"})
	d, ok := DraftAs[*testDraft](m, 7)
	require.True(t, ok)
	assert.Equal(t, "chair", d.Title)

	// Wrong draft type never leaks across flows.
	_, ok = DraftAs[*struct{ Other int }](m, 7)
	assert.False(t, ok)

	m.Clear(7)
	assert.Nil(t, m.Draft(7))
}

func TestManagerDraftSurvivesStateChange(t *testing.T) {
	m := NewMemoryManager()
	m.SetDraft(3, &testDraft{Title: "kept"})
	m.SetState(3, State("product_body"))
	m.SetState(3, State("product_title"))

	d, ok := DraftAs[*testDraft](m, 3)
	require.True(t, ok)
	assert.Equal(t, "kept", d.Title)
}
