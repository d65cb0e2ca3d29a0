// Package owners manages owner records: the binding of a hashed phone
// number or email address to a vault key, and the one-time codes that
// prove control of it.
//
// Owner ids are Hash(identifier, salt) under a process-wide salt resolved
// at startup. Records are read, mutated and written back without isolation,
// like vault keys.
package owners

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/cryptox"
	"github.com/dmitrijs2005/keyescrow/internal/logging"
	"github.com/dmitrijs2005/keyescrow/internal/server/guard"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/server/validation"
)

type Service struct {
	repo    Repository
	salt    string
	limiter *guard.RateLimiter
	logger  logging.Logger
}

func NewService(repo Repository, salt string, limiter *guard.RateLimiter, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{
		repo:    repo,
		salt:    salt,
		limiter: limiter,
		logger:  logging.ForModule(logger, "owners"),
	}
}

func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrorInternal, op, err)
}

// ownerID derives the storage id of identifier.
func (s *Service) ownerID(identifier string) (string, models.OwnerType, error) {
	t, ok := validation.OwnerType(identifier)
	if !ok {
		return "", "", common.ErrorInvalidArgument
	}
	id, err := cryptox.Hash(identifier, s.salt)
	if err != nil {
		return "", "", err
	}
	return id, t, nil
}

func (s *Service) get(ctx context.Context, id string) (*models.Owner, error) {
	o, err := s.repo.Get(ctx, id)
	if errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, internal("get owner", err)
	}
	return o, nil
}

// Create writes an unverified owner bound to keyID with a pending verify
// code and returns the code. It fails with common.ErrorConflict when the
// identifier is already verified.
func (s *Service) Create(ctx context.Context, identifier, keyID string) (string, error) {
	if !validation.IsID(keyID) {
		return "", common.ErrorInvalidArgument
	}
	id, t, err := s.ownerID(identifier)
	if err != nil {
		return "", err
	}

	existing, err := s.get(ctx, id)
	switch {
	case err == nil && existing.Verified:
		return "", common.ErrorConflict
	case err != nil && !errors.Is(err, common.ErrorNotFound):
		return "", err
	}

	code, err := cryptox.GenerateCode()
	if err != nil {
		return "", err
	}

	o := &models.Owner{
		ID:    id,
		Type:  t,
		KeyID: keyID,
		Op:    models.OpVerify,
		Code:  code,
	}
	if err := s.repo.Put(ctx, o); err != nil {
		return "", internal("put owner", err)
	}
	return code, nil
}

// IssueCode rotates the code of a verified owner of keyID and binds it to
// op. It fails with common.ErrorNotFound when there is no such owner.
func (s *Service) IssueCode(ctx context.Context, identifier, keyID string, op models.Operation) (string, error) {
	if !validation.IsID(keyID) || !op.Valid() {
		return "", common.ErrorInvalidArgument
	}
	id, _, err := s.ownerID(identifier)
	if err != nil {
		return "", err
	}

	o, err := s.get(ctx, id)
	if err != nil {
		return "", err
	}
	if !o.Verified || o.KeyID != keyID {
		return "", common.ErrorNotFound
	}

	code, err := cryptox.GenerateCode()
	if err != nil {
		return "", err
	}
	o.Op = op
	o.Code = code

	if err := s.repo.Put(ctx, o); err != nil {
		return "", internal("put owner", err)
	}
	return code, nil
}

// Verify consumes code for op. A missing owner or a keyID mismatch fails
// with common.ErrorNotFound and is not counted. Everything else passes the
// rate limiter first: a tripped limiter fails with *common.RateLimitedError,
// and a wrong code or a code issued for another operation fails with
// common.ErrorInvalidCredential. On success the owner becomes verified and
// the code is rotated so it cannot be replayed.
func (s *Service) Verify(ctx context.Context, identifier, keyID, code string, op models.Operation) error {
	if !validation.IsID(keyID) || !validation.IsCode(code) || !op.Valid() {
		return common.ErrorInvalidArgument
	}
	id, _, err := s.ownerID(identifier)
	if err != nil {
		return err
	}

	o, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if o.KeyID != keyID {
		return common.ErrorNotFound
	}

	if until := s.limiter.OnFailure(&o.RateLimit); until != nil {
		if err := s.repo.Put(ctx, o); err != nil {
			return internal("put owner", err)
		}
		s.logger.Warn(ctx, "code attempts rate limited", "key_id", keyID, "until", *until)
		return &common.RateLimitedError{Until: *until}
	}

	// both checks run so a wrong op costs the same as a wrong code
	opOK := cryptox.Equal(string(o.Op), string(op))
	codeOK := cryptox.Equal(o.Code, code)
	if !opOK || !codeOK {
		if err := s.repo.Put(ctx, o); err != nil {
			return internal("put owner", err)
		}
		s.logger.Debug(ctx, "code mismatch", "key_id", keyID, "op_match", opOK, "invalid_count", o.InvalidCount)
		return common.ErrorInvalidCredential
	}

	next, err := cryptox.GenerateCode()
	if err != nil {
		return err
	}
	s.limiter.OnSuccess(&o.RateLimit)
	o.Verified = true
	o.Op = ""
	o.Code = next

	if err := s.repo.Put(ctx, o); err != nil {
		return internal("put owner", err)
	}
	return nil
}

// Remove deletes the owner if it is bound to keyID.
func (s *Service) Remove(ctx context.Context, identifier, keyID string) error {
	id, _, err := s.ownerID(identifier)
	if err != nil {
		return err
	}

	o, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if o.KeyID != keyID {
		return common.ErrorNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return internal("delete owner", err)
	}
	return nil
}

// GetVerified returns the owner of identifier, or common.ErrorNotFound if
// there is none or it is not verified yet.
func (s *Service) GetVerified(ctx context.Context, identifier string) (*models.Owner, error) {
	id, _, err := s.ownerID(identifier)
	if err != nil {
		return nil, err
	}

	o, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !o.Verified {
		return nil, common.ErrorNotFound
	}
	return o, nil
}
