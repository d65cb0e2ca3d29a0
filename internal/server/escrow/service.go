// Package escrow orchestrates the owner and vault key managers into the
// operations exposed to clients: every sensitive operation first consumes a
// one-time code issued for it, then lets the key manager check the PIN.
package escrow

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/logging"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
	"github.com/dmitrijs2005/keyescrow/internal/server/validation"
)

// KeyManager is implemented by keys.Service.
type KeyManager interface {
	Create(ctx context.Context, pin string) (string, error)
	Exists(ctx context.Context, id string) (bool, error)
	GetGated(ctx context.Context, id, pin string) (*models.VaultKey, error)
	ChangePin(ctx context.Context, id, pin, newPin string) error
	ResetPin(ctx context.Context, id, newPin string) error
	Remove(ctx context.Context, id, pin string) error
	Discard(ctx context.Context, id string) error
}

// OwnerManager is implemented by owners.Service.
type OwnerManager interface {
	Create(ctx context.Context, identifier, keyID string) (string, error)
	IssueCode(ctx context.Context, identifier, keyID string, op models.Operation) (string, error)
	Verify(ctx context.Context, identifier, keyID, code string, op models.Operation) error
	Remove(ctx context.Context, identifier, keyID string) error
	GetVerified(ctx context.Context, identifier string) (*models.Owner, error)
}

// Dispatcher delivers codes. Implemented by notify.Router.
type Dispatcher interface {
	Dispatch(ctx context.Context, t models.OwnerType, destination, code string)
}

type Service struct {
	keys       KeyManager
	owners     OwnerManager
	dispatcher Dispatcher
	logger     logging.Logger
}

func NewService(keys KeyManager, owners OwnerManager, dispatcher Dispatcher, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Service{
		keys:       keys,
		owners:     owners,
		dispatcher: dispatcher,
		logger:     logging.ForModule(logger, "escrow"),
	}
}

func ownerType(identifier string) (models.OwnerType, error) {
	t, ok := validation.OwnerType(identifier)
	if !ok {
		return "", common.ErrorInvalidArgument
	}
	return t, nil
}

// CreateKey creates a key protected by pin and an unverified owner for
// identifier, and sends the owner a verify code. It fails with
// common.ErrorConflict if identifier already owns a key.
func (s *Service) CreateKey(ctx context.Context, identifier, pin string) (string, error) {
	t, err := ownerType(identifier)
	if err != nil {
		return "", err
	}
	if !validation.IsOptionalPin(pin) {
		return "", common.ErrorInvalidArgument
	}

	if err := s.releaseStaleOwner(ctx, identifier); err != nil {
		return "", err
	}

	keyID, err := s.keys.Create(ctx, pin)
	if err != nil {
		return "", err
	}

	code, err := s.owners.Create(ctx, identifier, keyID)
	if err != nil {
		if derr := s.keys.Discard(ctx, keyID); derr != nil {
			s.logger.Error(ctx, "key left without owner", "key_id", keyID, "error", derr)
		}
		return "", err
	}

	s.dispatcher.Dispatch(ctx, t, identifier, code)
	s.logger.Info(ctx, "key created", "key_id", keyID, "owner_type", string(t))
	return keyID, nil
}

// releaseStaleOwner returns common.ErrorConflict when identifier is a
// verified owner of an existing key. A verified owner whose key is gone is
// removed so the identifier can be used again.
func (s *Service) releaseStaleOwner(ctx context.Context, identifier string) error {
	o, err := s.owners.GetVerified(ctx, identifier)
	if errors.Is(err, common.ErrorNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	exists, err := s.keys.Exists(ctx, o.KeyID)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrorConflict
	}
	return s.owners.Remove(ctx, identifier, o.KeyID)
}

// AddOwner binds another identifier to an existing key. The caller proves
// knowledge of the key's PIN; the new owner still has to verify its code.
func (s *Service) AddOwner(ctx context.Context, keyID, identifier, pin string) error {
	t, err := ownerType(identifier)
	if err != nil {
		return err
	}

	if _, err := s.keys.GetGated(ctx, keyID, pin); err != nil {
		return err
	}

	if err := s.releaseStaleOwner(ctx, identifier); err != nil {
		return err
	}

	code, err := s.owners.Create(ctx, identifier, keyID)
	if err != nil {
		return err
	}

	s.dispatcher.Dispatch(ctx, t, identifier, code)
	s.logger.Info(ctx, "owner added", "key_id", keyID, "owner_type", string(t))
	return nil
}

// VerifyOwner consumes the verify code sent by CreateKey or AddOwner.
func (s *Service) VerifyOwner(ctx context.Context, keyID, identifier, code string) error {
	return s.owners.Verify(ctx, identifier, keyID, code, models.OpVerify)
}

// RequestCode sends a verified owner a code for op.
func (s *Service) RequestCode(ctx context.Context, keyID, identifier string, op models.Operation) error {
	t, err := ownerType(identifier)
	if err != nil {
		return err
	}

	code, err := s.owners.IssueCode(ctx, identifier, keyID, op)
	if err != nil {
		return err
	}

	s.dispatcher.Dispatch(ctx, t, identifier, code)
	return nil
}

// ReadKey releases the key material.
func (s *Service) ReadKey(ctx context.Context, keyID, identifier, code, pin string) (*models.VaultKey, error) {
	if err := s.owners.Verify(ctx, identifier, keyID, code, models.OpRead); err != nil {
		return nil, err
	}
	return s.keys.GetGated(ctx, keyID, pin)
}

func (s *Service) ChangePin(ctx context.Context, keyID, identifier, code, pin, newPin string) error {
	if err := s.owners.Verify(ctx, identifier, keyID, code, models.OpChangePin); err != nil {
		return err
	}
	return s.keys.ChangePin(ctx, keyID, pin, newPin)
}

// ResetPin replaces a forgotten PIN. The first accepted request starts the
// time lock; a later request, with a fresh code, completes the reset.
func (s *Service) ResetPin(ctx context.Context, keyID, identifier, code, newPin string) error {
	if err := s.owners.Verify(ctx, identifier, keyID, code, models.OpResetPin); err != nil {
		return err
	}
	return s.keys.ResetPin(ctx, keyID, newPin)
}

// RemoveKey deletes the key and the calling owner. Other owners of the key
// are released lazily by CreateKey and AddOwner.
func (s *Service) RemoveKey(ctx context.Context, keyID, identifier, code, pin string) error {
	if err := s.owners.Verify(ctx, identifier, keyID, code, models.OpRemove); err != nil {
		return err
	}
	if err := s.keys.Remove(ctx, keyID, pin); err != nil {
		return err
	}
	if err := s.owners.Remove(ctx, identifier, keyID); err != nil {
		return err
	}
	s.logger.Info(ctx, "key removed", "key_id", keyID)
	return nil
}

// RemoveOwner unbinds identifier from the key. The key and its other owners
// are kept.
func (s *Service) RemoveOwner(ctx context.Context, keyID, identifier, code, pin string) error {
	if err := s.owners.Verify(ctx, identifier, keyID, code, models.OpRemove); err != nil {
		return err
	}
	if _, err := s.keys.GetGated(ctx, keyID, pin); err != nil {
		return err
	}
	if err := s.owners.Remove(ctx, identifier, keyID); err != nil {
		return err
	}
	s.logger.Info(ctx, "owner removed", "key_id", keyID)
	return nil
}
