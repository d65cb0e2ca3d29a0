package escrow

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/cryptox"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/guard"
	"github.com/dmitrijs2005/keyescrow/internal/server/keys"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/server/owners"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	phone = "+15551234567"
	email = "owner@example.com"
)

// inbox records the last code dispatched per destination.
type inbox struct {
	mu    sync.Mutex
	codes map[string]string
	types map[string]models.OwnerType
}

func newInbox() *inbox {
	return &inbox{codes: map[string]string{}, types: map[string]models.OwnerType{}}
}

func (i *inbox) Dispatch(ctx context.Context, t models.OwnerType, destination, code string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.codes[destination] = code
	i.types[destination] = t
}

func (i *inbox) last(t *testing.T, destination string) string {
	t.Helper()
	i.mu.Lock()
	defer i.mu.Unlock()
	code, ok := i.codes[destination]
	require.True(t, ok, "no code sent to %s", destination)
	return code
}

type fixture struct {
	svc   *Service
	inbox *inbox
	clock *timex.ManualClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	salt, err := cryptox.GenerateSalt()
	require.NoError(t, err)

	clock := timex.NewManualClock(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
	store := docstore.NewMemoryStore(nil)
	limiter := guard.NewRateLimiter(clock, guard.DefaultThreshold, guard.DefaultWindow)

	ks := keys.NewService(keys.NewStoreRepository(store, "keys"), nil, limiter, guard.NewTimeLock(clock, guard.DefaultLockFor), nil)
	ow := owners.NewService(owners.NewStoreRepository(store, "users"), salt, limiter, nil)

	in := newInbox()
	return &fixture{svc: NewService(ks, ow, in, nil), inbox: in, clock: clock}
}

// createVerified creates a key for identifier and verifies the owner.
func (f *fixture) createVerified(t *testing.T, identifier, pin string) string {
	t.Helper()
	ctx := context.Background()
	keyID, err := f.svc.CreateKey(ctx, identifier, pin)
	require.NoError(t, err)
	require.NoError(t, f.svc.VerifyOwner(ctx, keyID, identifier, f.inbox.last(t, identifier)))
	return keyID
}

func (f *fixture) codeFor(t *testing.T, keyID, identifier string, op models.Operation) string {
	t.Helper()
	require.NoError(t, f.svc.RequestCode(context.Background(), keyID, identifier, op))
	return f.inbox.last(t, identifier)
}

func TestCreateVerifyRead(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	keyID, err := f.svc.CreateKey(ctx, phone, "1234")
	require.NoError(t, err)
	assert.Equal(t, models.OwnerPhone, f.inbox.types[phone])

	// no codes for other operations before the owner is verified
	assert.ErrorIs(t, f.svc.RequestCode(ctx, keyID, phone, models.OpRead), common.ErrorNotFound)

	require.NoError(t, f.svc.VerifyOwner(ctx, keyID, phone, f.inbox.last(t, phone)))

	code := f.codeFor(t, keyID, phone, models.OpRead)
	k, err := f.svc.ReadKey(ctx, keyID, phone, code, "1234")
	require.NoError(t, err)
	assert.Equal(t, keyID, k.ID)
	assert.NotEmpty(t, k.EncryptionKey)

	_, err = f.svc.ReadKey(ctx, keyID, phone, code, "1234")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential, "codes are single use")
}

func TestCreateKey_ConflictForVerifiedOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.createVerified(t, phone, "")

	_, err := f.svc.CreateKey(ctx, phone, "")
	assert.ErrorIs(t, err, common.ErrorConflict)

	_, err = f.svc.CreateKey(ctx, "not-a-phone", "")
	assert.ErrorIs(t, err, common.ErrorInvalidArgument)
}

func TestReadKey_WrongPinAfterValidCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keyID := f.createVerified(t, phone, "1234")

	code := f.codeFor(t, keyID, phone, models.OpRead)
	_, err := f.svc.ReadKey(ctx, keyID, phone, code, "9999")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)
}

func TestCodeForOtherOperationIsRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keyID := f.createVerified(t, phone, "1234")

	code := f.codeFor(t, keyID, phone, models.OpRead)
	assert.ErrorIs(t, f.svc.RemoveKey(ctx, keyID, phone, code, "1234"), common.ErrorInvalidCredential)

	_, err := f.svc.ReadKey(ctx, keyID, phone, code, "1234")
	assert.NoError(t, err, "the code is still good for the operation it was issued for")
}

func TestAddOwner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keyID := f.createVerified(t, phone, "1234")

	assert.ErrorIs(t, f.svc.AddOwner(ctx, keyID, email, "0000"), common.ErrorInvalidCredential)

	require.NoError(t, f.svc.AddOwner(ctx, keyID, email, "1234"))
	assert.Equal(t, models.OwnerEmail, f.inbox.types[email])
	require.NoError(t, f.svc.VerifyOwner(ctx, keyID, email, f.inbox.last(t, email)))

	byPhone, err := f.svc.ReadKey(ctx, keyID, phone, f.codeFor(t, keyID, phone, models.OpRead), "1234")
	require.NoError(t, err)
	byEmail, err := f.svc.ReadKey(ctx, keyID, email, f.codeFor(t, keyID, email, models.OpRead), "1234")
	require.NoError(t, err)
	assert.Equal(t, byPhone.EncryptionKey, byEmail.EncryptionKey)

	assert.ErrorIs(t, f.svc.AddOwner(ctx, keyID, phone, "1234"), common.ErrorConflict)
}

func TestChangePin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keyID := f.createVerified(t, email, "1234")

	code := f.codeFor(t, keyID, email, models.OpChangePin)
	require.NoError(t, f.svc.ChangePin(ctx, keyID, email, code, "1234", "5678"))

	_, err := f.svc.ReadKey(ctx, keyID, email, f.codeFor(t, keyID, email, models.OpRead), "1234")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)
	_, err = f.svc.ReadKey(ctx, keyID, email, f.codeFor(t, keyID, email, models.OpRead), "5678")
	assert.NoError(t, err)
}

func TestResetPin(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keyID := f.createVerified(t, phone, "1234")

	err := f.svc.ResetPin(ctx, keyID, phone, f.codeFor(t, keyID, phone, models.OpResetPin), "5678")
	require.ErrorIs(t, err, common.ErrTimeLocked)
	until, _ := common.Deadline(err)

	f.clock.Set(until.Add(time.Second))
	require.NoError(t, f.svc.ResetPin(ctx, keyID, phone, f.codeFor(t, keyID, phone, models.OpResetPin), "5678"))

	_, err = f.svc.ReadKey(ctx, keyID, phone, f.codeFor(t, keyID, phone, models.OpRead), "5678")
	assert.NoError(t, err)
}

func TestRemoveKey_ReleasesOwners(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keyID := f.createVerified(t, phone, "1234")
	require.NoError(t, f.svc.AddOwner(ctx, keyID, email, "1234"))
	require.NoError(t, f.svc.VerifyOwner(ctx, keyID, email, f.inbox.last(t, email)))

	require.NoError(t, f.svc.RemoveKey(ctx, keyID, phone, f.codeFor(t, keyID, phone, models.OpRemove), "1234"))

	// the other owner can still get codes but the key is gone
	_, err := f.svc.ReadKey(ctx, keyID, email, f.codeFor(t, keyID, email, models.OpRead), "1234")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	// both identifiers are free again
	_, err = f.svc.CreateKey(ctx, phone, "")
	assert.NoError(t, err)
	_, err = f.svc.CreateKey(ctx, email, "")
	assert.NoError(t, err)
}

func TestRemoveOwner_KeepsKey(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keyID := f.createVerified(t, phone, "1234")
	require.NoError(t, f.svc.AddOwner(ctx, keyID, email, "1234"))
	require.NoError(t, f.svc.VerifyOwner(ctx, keyID, email, f.inbox.last(t, email)))

	err := f.svc.RemoveOwner(ctx, keyID, email, f.codeFor(t, keyID, email, models.OpRemove), "0000")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)

	require.NoError(t, f.svc.RemoveOwner(ctx, keyID, email, f.codeFor(t, keyID, email, models.OpRemove), "1234"))

	// the removed owner is gone
	assert.ErrorIs(t, f.svc.RequestCode(ctx, keyID, email, models.OpRead), common.ErrorNotFound)

	// the key and the other owner are untouched
	k, err := f.svc.ReadKey(ctx, keyID, phone, f.codeFor(t, keyID, phone, models.OpRead), "1234")
	require.NoError(t, err)
	assert.Equal(t, keyID, k.ID)

	// the identifier can own a key again
	_, err = f.svc.CreateKey(ctx, email, "")
	assert.NoError(t, err)
}

func TestRemoveOwner_NeedsRemoveCode(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	keyID := f.createVerified(t, phone, "1234")

	err := f.svc.RemoveOwner(ctx, keyID, phone, f.codeFor(t, keyID, phone, models.OpRead), "1234")
	assert.ErrorIs(t, err, common.ErrorInvalidCredential)

	require.NoError(t, f.svc.RequestCode(ctx, keyID, phone, models.OpRead))
}

// failingOwners rejects every Create.
type failingOwners struct {
	OwnerManager
	err error
}

func (o failingOwners) Create(ctx context.Context, identifier, keyID string) (string, error) {
	return "", o.err
}

// recordingKeys remembers the ids it created.
type recordingKeys struct {
	*keys.Service
	created []string
}

func (k *recordingKeys) Create(ctx context.Context, pin string) (string, error) {
	id, err := k.Service.Create(ctx, pin)
	if err == nil {
		k.created = append(k.created, id)
	}
	return id, err
}

func TestCreateKey_OwnerFailureDiscardsKey(t *testing.T) {
	ctx := context.Background()
	clock := timex.NewManualClock(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
	store := docstore.NewMemoryStore(nil)
	limiter := guard.NewRateLimiter(clock, guard.DefaultThreshold, guard.DefaultWindow)
	salt, err := cryptox.GenerateSalt()
	require.NoError(t, err)

	ks := &recordingKeys{Service: keys.NewService(keys.NewStoreRepository(store, "keys"), nil, limiter, guard.NewTimeLock(clock, guard.DefaultLockFor), nil)}
	ow := failingOwners{
		OwnerManager: owners.NewService(owners.NewStoreRepository(store, "users"), salt, limiter, nil),
		err:          common.ErrorConflict,
	}
	svc := NewService(ks, ow, newInbox(), nil)

	_, err = svc.CreateKey(ctx, phone, "1234")
	require.ErrorIs(t, err, common.ErrorConflict)

	require.Len(t, ks.created, 1)
	ok, err := ks.Exists(ctx, ks.created[0])
	require.NoError(t, err)
	assert.False(t, ok, "ownerless key kept")
}
