package memory

import (
	"testing"

	"townmate-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository(t *testing.T) {
	repo := NewSessionRepository()

	if _, found := repo.Get("missing"); found {
		t.Fatal("empty repository returned a session")
	}

	s := &store.Session{ID: "s1", UserID: "u1", LastQuery: "find me tacos"}
	repo.Save(s)

	got, found := repo.Get("s1")
	require.True(t, found)
	assert.Same(t, s, got, "live sessions are shared, not copied")

	// Mutations through the returned pointer are visible on the next read.
	got.Draft = &store.ReservationDraft{RestaurantName: "Luna Rossa"}
	again, _ := repo.Get("s1")
	require.NotNil(t, again.Draft)
	assert.Equal(t, "Luna Rossa", again.Draft.RestaurantName)

	repo.Delete("s1")
	if _, found := repo.Get("s1"); found {
		t.Error("session survived deletion")
	}
}
