// Package sealer protects escrowed key material at rest. The vault key
// manager seals EncryptionKey before every write and opens it after every
// read, so the store only ever sees sealed values.
package sealer

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/cryptox"
)

// Sealer seals and opens base64 key material. Sealed values are base64 too.
type Sealer interface {
	Seal(ctx context.Context, plaintext string) (string, error)
	Open(ctx context.Context, sealed string) (string, error)
}

// None stores key material as is.
type None struct{}

func (None) Seal(ctx context.Context, plaintext string) (string, error) { return plaintext, nil }
func (None) Open(ctx context.Context, sealed string) (string, error)    { return sealed, nil }

// AESGCM seals with a local AES-256 key.
type AESGCM struct {
	key []byte
}

// NewAESGCM takes the base64 form of a 32 byte key.
func NewAESGCM(key string) (*AESGCM, error) {
	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil || len(raw) != cryptox.KeyLen {
		return nil, fmt.Errorf("%w: sealer key must be %d base64 bytes", common.ErrorInvalidArgument, cryptox.KeyLen)
	}
	return &AESGCM{key: raw}, nil
}

func (s *AESGCM) Seal(ctx context.Context, plaintext string) (string, error) {
	sealed, err := cryptox.Seal([]byte(plaintext), s.key)
	if err != nil {
		return "", fmt.Errorf("%w: seal: %v", common.ErrorInternal, err)
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *AESGCM) Open(ctx context.Context, sealed string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: open: %v", common.ErrorInternal, err)
	}
	plain, err := cryptox.Open(raw, s.key)
	if err != nil {
		return "", fmt.Errorf("%w: open: %v", common.ErrorInternal, err)
	}
	defer cryptox.Wipe(plain)
	return string(plain), nil
}
