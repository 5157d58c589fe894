package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	filestore "github.com/bnema/lms-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/lms-cli/internal/adapters/secrets/pass"
	"github.com/bnema/lms-cli/internal/domain"
	portmocks "github.com/bnema/lms-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "lms/session").Return("pass-session", nil).Once()

	value, err := store.Get(context.Background(), "lms/session")
	require.NoError(t, err)
	assert.Equal(t, "pass-session", value)
}

func TestStoreGetFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "lms/session").Return("", errors.New("pass unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, "lms/session").Return("file-session", nil).Once()

	value, err := store.Get(context.Background(), "lms/session")
	require.NoError(t, err)
	assert.Equal(t, "file-session", value)
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "lms/session").Return("", errors.New("pass failed")).Once()
	fallback.EXPECT().Get(mock.Anything, "lms/session").Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), "lms/session")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "fallback backend")
	assert.ErrorContains(t, err, "pass failed")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutFallsBackWhenPrimaryFails(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, "lms/session", "secret").Return(errors.New("pass failed")).Once()
	fallback.EXPECT().Put(mock.Anything, "lms/session", "secret").Return(nil).Once()

	err := store.Put(context.Background(), "lms/session", "secret")
	require.NoError(t, err)
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, "lms/session", "secret").Return(nil).Once()

	err := store.Put(context.Background(), "lms/session", "secret")
	require.NoError(t, err)
}

func TestStoreDeleteClearsFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, "lms/session").Return(nil).Once()
	fallback.EXPECT().Delete(mock.Anything, "lms/session").Return(nil).Once()

	err := store.Delete(context.Background(), "lms/session")
	require.NoError(t, err)
}

func TestStoreDeleteIgnoresUnavailablePrimaryAndMissingEntries(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, "lms/session").Return(passstore.ErrUnavailable).Once()
	fallback.EXPECT().Delete(mock.Anything, "lms/session").Return(fmt.Errorf("file secret: %w", domain.ErrSecretNotFound)).Once()

	err := store.Delete(context.Background(), "lms/session")
	require.NoError(t, err)
}

func TestStoreDeleteJoinsBackendFailures(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, "lms/session").Return(errors.New("gpg locked")).Once()
	fallback.EXPECT().Delete(mock.Anything, "lms/session").Return(errors.New("read-only file system")).Once()

	err := store.Delete(context.Background(), "lms/session")
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend delete failed: gpg locked")
	assert.ErrorContains(t, err, "fallback backend delete failed: read-only file system")
}

func TestStoreDeleteStopsOnCanceledContext(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Delete(mock.Anything, "lms/session").Return(context.Canceled).Once()

	err := store.Delete(context.Background(), "lms/session")
	require.ErrorIs(t, err, context.Canceled)
}

// A pass store that rejects writes but answers show/rm as "not in the
// password store" leaves the only copy in the file fallback.
func TestStoreDeleteRemovesFallbackCopyWhenPrimaryNeverHeldIt(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := filestore.NewStore(t.TempDir())
	store := NewStore(primary, fallback)

	primary.EXPECT().Put(mock.Anything, "lms/session", "record").Return(errors.New("pass insert: store not initialised")).Once()
	primary.EXPECT().Get(mock.Anything, "lms/session").Return("", fmt.Errorf("pass secret: %w", domain.ErrSecretNotFound))
	primary.EXPECT().Delete(mock.Anything, "lms/session").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), "lms/session", "record"))
	value, err := store.Get(context.Background(), "lms/session")
	require.NoError(t, err)
	require.Equal(t, "record", value)

	require.NoError(t, store.Delete(context.Background(), "lms/session"))

	_, err = store.Get(context.Background(), "lms/session")
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "lms/session").Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), "lms/session")
	require.ErrorIs(t, err, context.Canceled)
}

func TestStoreGetKeepsNotFoundWhenBothBackendsMiss(t *testing.T) {
	t.Parallel()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)
	store := NewStore(primary, fallback)

	primary.EXPECT().Get(mock.Anything, "lms/session").Return("", errors.New("pass command unavailable")).Once()
	fallback.EXPECT().Get(mock.Anything, "lms/session").Return("", fmt.Errorf("file secret: %w", domain.ErrSecretNotFound)).Once()

	_, err := store.Get(context.Background(), "lms/session")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSecretNotFound)
}

func TestNewForBackend(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	auto, err := NewForBackend("auto", root)
	require.NoError(t, err)
	assert.IsType(t, &Store{}, auto)

	fileOnly, err := NewForBackend("file", root)
	require.NoError(t, err)
	assert.IsType(t, &filestore.Store{}, fileOnly)

	passOnly, err := NewForBackend("pass", root)
	require.NoError(t, err)
	assert.IsType(t, &passstore.Store{}, passOnly)

	_, err = NewForBackend("keychain", root)
	assert.ErrorContains(t, err, "unsupported secrets backend")
}
