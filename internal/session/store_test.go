package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flyawayhq/flyaway/internal/domain"
)

func newTestStore(t *testing.T) (*Store, string, string) {
	t.Helper()
	dir := t.TempDir()
	durable := filepath.Join(dir, "durable", "session.json")
	ephemeral := filepath.Join(dir, "ephemeral", "session.json")
	return NewStore(NewFileStorage(durable), NewFileStorage(ephemeral), nil), durable, ephemeral
}

func testUser() *domain.User {
	return &domain.User{UserID: 12, Email: "asha@flyaway.dev", Role: domain.RoleCustomer}
}

func TestStore_RestoreEmptyIsValid(t *testing.T) {
	store, _, _ := newTestStore(t)
	store.Restore()
	assert.False(t, store.Current().Authenticated())
	assert.Empty(t, store.Token())
}

func TestStore_RememberedSessionSurvivesReload(t *testing.T) {
	store, durable, ephemeral := newTestStore(t)
	require.NoError(t, store.Establish("tok-123", testUser(), true))

	// Simulated reload: a fresh store over the same tiers.
	reloaded := NewStore(NewFileStorage(durable), NewFileStorage(ephemeral), nil)
	reloaded.Restore()

	sess := reloaded.Current()
	require.True(t, sess.Authenticated())
	assert.Equal(t, "tok-123", sess.Token)
	assert.Equal(t, testUser(), sess.User)
}

func TestStore_EphemeralSessionGoneAfterTierCleared(t *testing.T) {
	store, durable, ephemeral := newTestStore(t)
	require.NoError(t, store.Establish("tok-123", testUser(), false))

	// The ephemeral tier disappearing simulates the end of the browser
	// session.
	require.NoError(t, os.Remove(ephemeral))

	reloaded := NewStore(NewFileStorage(durable), NewFileStorage(ephemeral), nil)
	reloaded.Restore()
	assert.False(t, reloaded.Current().Authenticated())
}

func TestStore_EstablishWritesExactlyOneTier(t *testing.T) {
	store, durable, ephemeral := newTestStore(t)

	require.NoError(t, store.Establish("tok-1", testUser(), false))
	_, err := os.Stat(durable)
	assert.True(t, os.IsNotExist(err), "remember=false must not touch the durable tier")
	_, err = os.Stat(ephemeral)
	assert.NoError(t, err)
}

func TestStore_EstablishRequiresBothFields(t *testing.T) {
	store, _, _ := newTestStore(t)
	assert.Error(t, store.Establish("", testUser(), true))
	assert.Error(t, store.Establish("tok", nil, true))
	assert.False(t, store.Current().Authenticated())
}

func TestStore_ClearWipesBothTiersAndMemory(t *testing.T) {
	store, durable, ephemeral := newTestStore(t)
	require.NoError(t, store.Establish("tok-1", testUser(), true))
	require.NoError(t, store.Establish("tok-2", testUser(), false))

	require.NoError(t, store.Clear())
	assert.False(t, store.Current().Authenticated())
	for _, path := range []string{durable, ephemeral} {
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	}

	store.Restore()
	assert.False(t, store.Current().Authenticated())
}

func TestStore_RestoreIgnoresHalfPersistedSession(t *testing.T) {
	store, durable, _ := newTestStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(durable), 0o700))
	require.NoError(t, os.WriteFile(durable, []byte(`{"token":"tok-only"}`), 0o600))

	store.Restore()
	assert.False(t, store.Current().Authenticated(), "token without user never authenticates")
}

func TestStore_DurableTierWins(t *testing.T) {
	store, _, _ := newTestStore(t)
	require.NoError(t, store.Establish("eph", &domain.User{UserID: 1, Email: "a@b.c", Role: domain.RoleCustomer}, false))
	require.NoError(t, store.Establish("dur", &domain.User{UserID: 2, Email: "d@e.f", Role: domain.RoleAdmin}, true))

	store.Restore()
	assert.Equal(t, "dur", store.Token())
}
