package owners

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/cryptox"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/guard"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	phone = "+15551234567"
	email = "owner@example.com"
	keyID = "8a1d7f3e-7bd4-4f8e-9c2a-1f2e3d4c5b6a"
	other = "0f9e8d7c-6b5a-4c3d-8e2f-1a0b9c8d7e6f"
)

var start = time.Date(2020, 6, 9, 3, 33, 47, 0, time.UTC)

type fixture struct {
	svc   *Service
	repo  *StoreRepository
	clock *timex.ManualClock
	salt  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	salt, err := cryptox.GenerateSalt()
	require.NoError(t, err)

	clock := timex.NewManualClock(start)
	repo := NewStoreRepository(docstore.NewMemoryStore(nil), "users")
	svc := NewService(repo, salt, guard.NewRateLimiter(clock, guard.DefaultThreshold, guard.DefaultWindow), nil)
	return &fixture{svc: svc, repo: repo, clock: clock, salt: salt}
}

func (f *fixture) stored(t *testing.T, identifier string) *models.Owner {
	t.Helper()
	id, err := cryptox.Hash(identifier, f.salt)
	require.NoError(t, err)
	o, err := f.repo.Get(context.Background(), id)
	require.NoError(t, err)
	return o
}

// verified creates and verifies an owner of keyID.
func (f *fixture) verified(t *testing.T, identifier string) {
	t.Helper()
	code, err := f.svc.Create(context.Background(), identifier, keyID)
	require.NoError(t, err)
	require.NoError(t, f.svc.Verify(context.Background(), identifier, keyID, code, models.OpVerify))
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	code, err := f.svc.Create(ctx, phone, keyID)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)

	o := f.stored(t, phone)
	assert.NotContains(t, o.ID, phone, "the raw identifier is never stored")
	assert.Equal(t, models.OwnerPhone, o.Type)
	assert.Equal(t, keyID, o.KeyID)
	assert.Equal(t, models.OpVerify, o.Op)
	assert.Equal(t, code, o.Code)
	assert.False(t, o.Verified)

	// an unverified owner can be created again, e.g. after a lost code
	again, err := f.svc.Create(ctx, phone, other)
	require.NoError(t, err)
	assert.Equal(t, again, f.stored(t, phone).Code)
	assert.Equal(t, other, f.stored(t, phone).KeyID)
}

func TestCreate_ConflictWhenVerified(t *testing.T) {
	f := newFixture(t)
	f.verified(t, email)

	_, err := f.svc.Create(context.Background(), email, other)
	assert.ErrorIs(t, err, common.ErrorConflict)
	assert.Equal(t, models.OwnerEmail, f.stored(t, email).Type)
}

func TestCreate_InvalidArguments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Create(ctx, "5551234567", keyID)
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	_, err = f.svc.Create(ctx, phone, "NOT-A-KEY")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}

func TestIssueCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// unverified owners cannot get codes for other operations
	_, err := f.svc.Create(ctx, phone, keyID)
	require.NoError(t, err)
	_, err = f.svc.IssueCode(ctx, phone, keyID, models.OpRead)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	f.verified(t, email)

	_, err = f.svc.IssueCode(ctx, email, other, models.OpRead)
	assert.ErrorIs(t, err, common.ErrorNotFound, "key mismatch")

	_, err = f.svc.IssueCode(ctx, "nobody@example.com", keyID, models.OpRead)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, err = f.svc.IssueCode(ctx, email, keyID, models.Operation("launch"))
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)

	code, err := f.svc.IssueCode(ctx, email, keyID, models.OpRemove)
	require.NoError(t, err)

	o := f.stored(t, email)
	assert.Equal(t, models.OpRemove, o.Op)
	assert.Equal(t, code, o.Code)
}

func TestVerify_OperationMismatchScenario(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.verified(t, phone)

	code, err := f.svc.IssueCode(ctx, phone, keyID, models.OpRead)
	require.NoError(t, err)

	err = f.svc.Verify(ctx, phone, keyID, code, models.OpRemove)
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)
	assert.Equal(t, 1, f.stored(t, phone).InvalidCount)

	require.NoError(t, f.svc.Verify(ctx, phone, keyID, code, models.OpRead))

	o := f.stored(t, phone)
	assert.NotEqual(t, code, o.Code, "code rotated")
	assert.Equal(t, models.Operation(""), o.Op)
	assert.Zero(t, o.InvalidCount)
	assert.Nil(t, o.FirstInvalidAt)

	// the consumed code cannot be replayed
	err = f.svc.Verify(ctx, phone, keyID, code, models.OpRead)
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)
}

func TestVerify_StructuralMismatchIsNotCounted(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.verified(t, phone)

	code, err := f.svc.IssueCode(ctx, phone, keyID, models.OpRead)
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.Verify(ctx, phone, other, code, models.OpRead), common.ErrorNotFound)
	assert.ErrorIs(t, f.svc.Verify(ctx, "+15550000000", keyID, code, models.OpRead), common.ErrorNotFound)
	assert.Zero(t, f.stored(t, phone).InvalidCount)

	assert.ErrorIs(t, f.svc.Verify(ctx, phone, keyID, "12345", models.OpRead), common.ErrorInvalidArgument)
}

func TestVerify_RateLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.verified(t, phone)

	code, err := f.svc.IssueCode(ctx, phone, keyID, models.OpRead)
	require.NoError(t, err)
	wrong := "000000"
	if code == wrong {
		wrong = "000001"
	}

	for i := 0; i < guard.DefaultThreshold; i++ {
		require.ErrorIs(t, f.svc.Verify(ctx, phone, keyID, wrong, models.OpRead), common.ErrorInvalidCredential)
	}

	err = f.svc.Verify(ctx, phone, keyID, code, models.OpRead)
	require.ErrorIs(t, err, common.ErrRateLimited, "even the right code is refused")
	until, ok := common.Deadline(err)
	require.True(t, ok)
	assert.Equal(t, start.Add(7*24*time.Hour), until)

	f.clock.Set(until)
	require.NoError(t, f.svc.Verify(ctx, phone, keyID, code, models.OpRead))
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.verified(t, phone)

	assert.ErrorIs(t, f.svc.Remove(ctx, phone, other), common.ErrorNotFound)
	require.NoError(t, f.svc.Remove(ctx, phone, keyID))

	_, err := f.svc.GetVerified(ctx, phone)
	assert.ErrorIs(t, err, common.ErrorNotFound)
	assert.ErrorIs(t, f.svc.Remove(ctx, phone, keyID), common.ErrorNotFound)
}

func TestGetVerified(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Create(ctx, email, keyID)
	require.NoError(t, err)
	_, err = f.svc.GetVerified(ctx, email)
	assert.ErrorIs(t, err, common.ErrorNotFound)

	f.verified(t, email)
	o, err := f.svc.GetVerified(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, keyID, o.KeyID)

	_, err = f.svc.GetVerified(ctx, "not an identifier")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}

type brokenRepo struct{}

func (brokenRepo) Get(ctx context.Context, id string) (*models.Owner, error) {
	return nil, errors.New("table missing")
}
func (brokenRepo) Put(ctx context.Context, o *models.Owner) error { return errors.New("table missing") }
func (brokenRepo) Delete(ctx context.Context, id string) error   { return errors.New("table missing") }

func TestStoreFailuresAreInternal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.svc.repo = brokenRepo{}

	_, err := f.svc.Create(ctx, phone, keyID)
	assert.ErrorIs(t, err, common.ErrorInternal)

	err = f.svc.Verify(ctx, phone, keyID, "123456", models.OpRead)
	assert.ErrorIs(t, err, common.ErrorInternal)
	assert.ErrorContains(t, err, "table missing")
}
