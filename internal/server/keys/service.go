// Package keys manages vault key records: creation, PIN-gated retrieval,
// PIN change, time-locked PIN reset and deletion.
//
// Every call performs one read, mutates the record in memory and writes it
// back. There is no isolation between the read and the write, so two
// concurrent calls on the same key can lose a rate-limit increment.
package keys

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/cryptox"
	"github.com/dmitrijs2005/keyescrow/internal/logging"
	"github.com/dmitrijs2005/keyescrow/internal/server/guard"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/server/sealer"
	"github.com/dmitrijs2005/keyescrow/internal/server/validation"
)

type Service struct {
	repo    Repository
	sealer  sealer.Sealer
	limiter *guard.RateLimiter
	lock    *guard.TimeLock
	logger  logging.Logger
}

func NewService(repo Repository, s sealer.Sealer, limiter *guard.RateLimiter, lock *guard.TimeLock, logger logging.Logger) *Service {
	if s == nil {
		s = sealer.None{}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{
		repo:    repo,
		sealer:  s,
		limiter: limiter,
		lock:    lock,
		logger:  logging.ForModule(logger, "keys"),
	}
}

func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrorInternal, op, err)
}

// Create stores a new key with fresh key material and returns its id. An
// empty pin creates a key without a PIN.
func (s *Service) Create(ctx context.Context, pin string) (string, error) {
	if !validation.IsOptionalPin(pin) {
		return "", common.ErrorInvalidArgument
	}

	id, err := cryptox.NewID()
	if err != nil {
		return "", err
	}

	material, err := cryptox.GenerateSecret(cryptox.KeyLen)
	if err != nil {
		return "", err
	}

	sealed, err := s.sealer.Seal(ctx, material)
	if err != nil {
		return "", err
	}

	k := &models.VaultKey{ID: id, EncryptionKey: sealed}
	if err := setPin(k, pin); err != nil {
		return "", err
	}

	if err := s.repo.Put(ctx, k); err != nil {
		return "", internal("put key", err)
	}
	return id, nil
}

// Exists reports whether a key with id is stored.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.load(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return false, nil
	}
	return err == nil, err
}

// GetGated returns the key with its key material unsealed once pin matches.
func (s *Service) GetGated(ctx context.Context, id, pin string) (*models.VaultKey, error) {
	k, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkPin(ctx, k, pin); err != nil {
		return nil, err
	}
	if err := s.repo.Put(ctx, k); err != nil {
		return nil, internal("put key", err)
	}

	material, err := s.sealer.Open(ctx, k.EncryptionKey)
	if err != nil {
		return nil, err
	}
	k.EncryptionKey = material
	return k, nil
}

// ChangePin replaces the PIN after checking the current one. An empty
// newPin removes the PIN.
func (s *Service) ChangePin(ctx context.Context, id, pin, newPin string) error {
	if !validation.IsOptionalPin(newPin) {
		return common.ErrorInvalidArgument
	}

	k, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkPin(ctx, k, pin); err != nil {
		return err
	}
	if err := setPin(k, newPin); err != nil {
		return err
	}

	if err := s.repo.Put(ctx, k); err != nil {
		return internal("put key", err)
	}
	return nil
}

// ResetPin replaces the PIN without the current one. The first call starts
// the time lock and fails with *common.TimeLockedError; only a call after
// the deadline goes through. A successful reset also clears the rate limit
// that guarded the old PIN.
func (s *Service) ResetPin(ctx context.Context, id, newPin string) error {
	if !validation.IsOptionalPin(newPin) {
		return common.ErrorInvalidArgument
	}

	k, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if until := s.lock.Check(&k.TimeLock); until != nil {
		if err := s.repo.Put(ctx, k); err != nil {
			return internal("put key", err)
		}
		s.logger.Info(ctx, "pin reset time locked", "key_id", id, "until", *until)
		return &common.TimeLockedError{Until: *until}
	}

	if err := setPin(k, newPin); err != nil {
		return err
	}
	s.limiter.OnSuccess(&k.RateLimit)

	if err := s.repo.Put(ctx, k); err != nil {
		return internal("put key", err)
	}
	return nil
}

// Remove deletes the key after checking the PIN.
func (s *Service) Remove(ctx context.Context, id, pin string) error {
	k, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	if err := s.checkPin(ctx, k, pin); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return internal("delete key", err)
	}
	return nil
}

// Discard deletes a key that never got an owner. It skips the PIN check.
func (s *Service) Discard(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return internal("delete key", err)
	}
	return nil
}

func (s *Service) load(ctx context.Context, id string) (*models.VaultKey, error) {
	if !validation.IsID(id) {
		return nil, common.ErrorInvalidArgument
	}
	k, err := s.repo.Get(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, internal("get key", err)
	}
	return k, nil
}

// checkPin runs the rate limiter and then compares pin. Rejections are
// persisted here; on success the counters are reset in memory and the
// caller writes the record.
func (s *Service) checkPin(ctx context.Context, k *models.VaultKey, pin string) error {
	if until := s.limiter.OnFailure(&k.RateLimit); until != nil {
		if err := s.repo.Put(ctx, k); err != nil {
			return internal("put key", err)
		}
		s.logger.Warn(ctx, "pin attempts rate limited", "key_id", k.ID, "until", *until)
		return &common.RateLimitedError{Until: *until}
	}

	if k.HasPin() {
		digest, err := cryptox.Hash(pin, k.PinSalt)
		if err != nil && !errors.Is(err, common.ErrorInvalidArgument) {
			return err
		}
		if err != nil || !cryptox.Equal(digest, k.PinHash) {
			if err := s.repo.Put(ctx, k); err != nil {
				return internal("put key", err)
			}
			s.logger.Debug(ctx, "pin mismatch", "key_id", k.ID, "invalid_count", k.InvalidCount)
			return common.ErrorInvalidCredential
		}
	}

	s.limiter.OnSuccess(&k.RateLimit)
	return nil
}

// setPin hashes pin under the key's existing salt, or a fresh one if the
// key has none. An empty pin clears the PIN.
func setPin(k *models.VaultKey, pin string) error {
	if pin == "" {
		k.ClearPin()
		return nil
	}

	salt := k.PinSalt
	if salt == "" {
		var err error
		if salt, err = cryptox.GenerateSalt(); err != nil {
			return err
		}
	}

	digest, err := cryptox.Hash(pin, salt)
	if err != nil {
		return err
	}
	k.PinSalt = salt
	k.PinHash = digest
	return nil
}
