package keys

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/cryptox"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/guard"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/server/sealer"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2020, 6, 9, 3, 33, 47, 0, time.UTC)

type fixture struct {
	svc   *Service
	repo  *StoreRepository
	clock *timex.ManualClock
}

func newFixture(t *testing.T, s sealer.Sealer) *fixture {
	t.Helper()
	clock := timex.NewManualClock(start)
	repo := NewStoreRepository(docstore.NewMemoryStore(nil), "keys")
	svc := NewService(repo, s,
		guard.NewRateLimiter(clock, guard.DefaultThreshold, guard.DefaultWindow),
		guard.NewTimeLock(clock, guard.DefaultLockFor),
		nil)
	return &fixture{svc: svc, repo: repo, clock: clock}
}

func (f *fixture) stored(t *testing.T, id string) *models.VaultKey {
	t.Helper()
	k, err := f.repo.Get(context.Background(), id)
	require.NoError(t, err)
	return k
}

func TestCreate_GetGated(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)

	stored := f.stored(t, id)
	assert.True(t, stored.HasPin())
	assert.NotEqual(t, "1234", stored.PinHash)
	assert.Nil(t, stored.FirstInvalidAt)
	assert.Nil(t, stored.LockedUntil)

	k, err := f.svc.GetGated(ctx, id, "1234")
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(k.EncryptionKey)
	require.NoError(t, err)
	assert.Len(t, raw, cryptox.KeyLen)

	_, err = f.svc.GetGated(ctx, id, "4321")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)
	assert.Equal(t, 1, f.stored(t, id).InvalidCount)

	_, err = f.svc.GetGated(ctx, id, "1234")
	require.NoError(t, err)
	assert.Zero(t, f.stored(t, id).InvalidCount, "success resets the counter")
}

func TestGetGated_NoPinAlwaysPasses(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	id, err := f.svc.Create(ctx, "")
	require.NoError(t, err)
	assert.False(t, f.stored(t, id).HasPin())

	for _, pin := range []string{"", "anything"} {
		_, err := f.svc.GetGated(ctx, id, pin)
		assert.NoError(t, err)
	}
}

func TestGetGated_ElevenWrongPinsTripCooldown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)

	for i := 1; i <= guard.DefaultThreshold; i++ {
		f.clock.Advance(time.Minute)
		_, err := f.svc.GetGated(ctx, id, "0000")
		require.ErrorIs(t, err, common.ErrorInvalidCredential, "attempt %d", i)
	}

	f.clock.Advance(time.Minute)
	_, err = f.svc.GetGated(ctx, id, "0000")
	require.ErrorIs(t, err, common.ErrRateLimited)

	until, ok := common.Deadline(err)
	require.True(t, ok)
	assert.Equal(t, start.Add(time.Minute).Add(7*24*time.Hour), until)

	// the correct PIN is refused too while the cooldown lasts
	_, err = f.svc.GetGated(ctx, id, "1234")
	assert.ErrorIs(t, err, common.ErrRateLimited)
	assert.Equal(t, 12, f.stored(t, id).InvalidCount)

	// once the window has elapsed the next request gets its comparison
	f.clock.Set(until)
	_, err = f.svc.GetGated(ctx, id, "1234")
	require.NoError(t, err)
	assert.Zero(t, f.stored(t, id).InvalidCount)
}

func TestChangePin_Scenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)
	salt := f.stored(t, id).PinSalt

	_, err = f.svc.GetGated(ctx, id, "1234")
	require.NoError(t, err)

	require.NoError(t, f.svc.ChangePin(ctx, id, "1234", "5678"))
	assert.Equal(t, salt, f.stored(t, id).PinSalt, "rehash keeps the salt")

	_, err = f.svc.GetGated(ctx, id, "1234")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)

	_, err = f.svc.GetGated(ctx, id, "5678")
	assert.NoError(t, err)
}

func TestChangePin_ClearAndSetAgain(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.ChangePin(ctx, id, "9999", ""), common.ErrorInvalidCredential)

	require.NoError(t, f.svc.ChangePin(ctx, id, "1234", ""))
	assert.False(t, f.stored(t, id).HasPin())

	require.NoError(t, f.svc.ChangePin(ctx, id, "", "correct horse"))
	stored := f.stored(t, id)
	assert.True(t, stored.HasPin())

	_, err = f.svc.GetGated(ctx, id, "correct horse")
	assert.NoError(t, err)

	assert.ErrorIs(t, f.svc.ChangePin(ctx, id, "correct horse", "12"), common.ErrorInvalidArgument)
}

func TestResetPin_TimeLock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)

	// a few wrong guesses before the owner gives up on the PIN
	for i := 0; i < 3; i++ {
		_, _ = f.svc.GetGated(ctx, id, "0000")
	}

	err = f.svc.ResetPin(ctx, id, "5678")
	require.ErrorIs(t, err, common.ErrTimeLocked)
	first, ok := common.Deadline(err)
	require.True(t, ok)
	assert.Equal(t, start.Add(30*24*time.Hour), first)

	f.clock.Advance(24 * time.Hour)
	err = f.svc.ResetPin(ctx, id, "5678")
	require.ErrorIs(t, err, common.ErrTimeLocked)
	second, _ := common.Deadline(err)
	assert.Equal(t, first, second, "the deadline does not move")

	_, err = f.svc.GetGated(ctx, id, "5678")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential, "the old PIN stays until the reset goes through")

	f.clock.Set(first)
	require.NoError(t, f.svc.ResetPin(ctx, id, "5678"))

	stored := f.stored(t, id)
	assert.Nil(t, stored.LockedUntil)
	assert.Zero(t, stored.InvalidCount)

	_, err = f.svc.GetGated(ctx, id, "5678")
	assert.NoError(t, err)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Remove(ctx, id, "0000"), common.ErrorInvalidCredential)

	ok, err := f.svc.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, f.svc.Remove(ctx, id, "1234"))

	ok, err = f.svc.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.svc.GetGated(ctx, id, "1234")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestDiscard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)

	require.NoError(t, f.svc.Discard(ctx, id))

	ok, err := f.svc.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInvalidArguments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	_, err := f.svc.Create(ctx, "12")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = f.svc.GetGated(ctx, "not-a-uuid", "1234")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	assert.ErrorIs(t, f.svc.ResetPin(ctx, "8a1d7f3e-7bd4-4f8e-9c2a-1f2e3d4c5b6a", "line\nbreak"), common.ErrorInvalidArgument)
	assert.ErrorIs(t, f.svc.ResetPin(ctx, "8a1d7f3e-7bd4-4f8e-9c2a-1f2e3d4c5b6a", "5678"), common.ErrorNotFound)
}

func TestKeyMaterialIsSealedAtRest(t *testing.T) {
	ctx := context.Background()
	sealKey, err := cryptox.GenerateSecret(32)
	require.NoError(t, err)
	s, err := sealer.NewAESGCM(sealKey)
	require.NoError(t, err)

	f := newFixture(t, s)
	id, err := f.svc.Create(ctx, "")
	require.NoError(t, err)

	k, err := f.svc.GetGated(ctx, id, "")
	require.NoError(t, err)

	atRest := f.stored(t, id).EncryptionKey
	assert.NotEqual(t, k.EncryptionKey, atRest)

	opened, err := s.Open(ctx, atRest)
	require.NoError(t, err)
	assert.Equal(t, k.EncryptionKey, opened)
}

type failingRepo struct {
	Repository
	putErr error
}

func (r *failingRepo) Put(ctx context.Context, k *models.VaultKey) error { return r.putErr }

func TestStoreFailuresAreInternal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)

	f.svc.repo = &failingRepo{Repository: f.repo, putErr: errors.New("connection reset")}

	_, err = f.svc.GetGated(ctx, id, "0000")
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.ErrorContains(t, err, "connection reset")

	_, err = f.svc.Create(ctx, "")
	assert.ErrorIs(t, err, common.ErrorInternal)
}

// barrierRepo holds every Get until n of them are in flight, so concurrent
// calls all read the same version of the record.
type barrierRepo struct {
	Repository
	wg sync.WaitGroup
}

func (r *barrierRepo) Get(ctx context.Context, id string) (*models.VaultKey, error) {
	k, err := r.Repository.Get(ctx, id)
	r.wg.Done()
	r.wg.Wait()
	return k, err
}

func TestConcurrentFailuresCanLoseIncrements(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	id, err := f.svc.Create(ctx, "1234")
	require.NoError(t, err)

	br := &barrierRepo{Repository: f.repo}
	br.wg.Add(2)
	f.svc.repo = br

	var done sync.WaitGroup
	for i := 0; i < 2; i++ {
		done.Add(1)
		go func() {
			defer done.Done()
			_, err := f.svc.GetGated(ctx, id, "0000")
			assert.ErrorIs(t, err, common.ErrorInvalidCredential)
		}()
	}
	done.Wait()

	// both requests read InvalidCount=0 and wrote 1
	assert.Equal(t, 1, f.stored(t, id).InvalidCount)
}
