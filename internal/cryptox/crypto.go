// Package cryptox implements the hashing utility of the escrow: secure
// random secrets and one-time codes, scrypt hashing of PINs and owner
// identifiers, and AES-GCM sealing of key material.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"math/big"

	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/google/uuid"
	"golang.org/x/crypto/scrypt"
)

const (
	// SaltLen is the required decoded salt length for Hash.
	SaltLen = 32
	// KeyLen is the length of generated encryption keys and hash digests.
	KeyLen = 32

	scryptN = 1 << 14
	scryptR = 8
	scryptP = 1

	codeSpace = 1_000_000
)

// randReader is a test seam for the randomness source.
var randReader = rand.Reader

// GenerateSecret returns n cryptographically secure random bytes, base64
// encoded. Used for encryption-key material and salts.
func GenerateSecret(n int) (string, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(randReader, b); err != nil {
		return "", fmt.Errorf("%w: random: %v", common.ErrorInternal, err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// GenerateSalt returns a fresh base64 encoded SaltLen byte salt.
func GenerateSalt() (string, error) {
	return GenerateSecret(SaltLen)
}

// GenerateCode returns a six digit one-time code, uniformly distributed over
// 000000-999999.
func GenerateCode() (string, error) {
	n, err := rand.Int(randReader, big.NewInt(codeSpace))
	if err != nil {
		return "", fmt.Errorf("%w: random: %v", common.ErrorInternal, err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// NewID returns a random (version 4) UUID string.
func NewID() (string, error) {
	id, err := uuid.NewRandomFromReader(randReader)
	if err != nil {
		return "", fmt.Errorf("%w: random: %v", common.ErrorInternal, err)
	}
	return id.String(), nil
}

// Hash derives a deterministic scrypt digest of secret under salt. The salt
// is base64 and must decode to exactly SaltLen bytes.
func Hash(secret, salt string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(salt)
	if err != nil || len(raw) != SaltLen || secret == "" {
		return "", common.ErrorInvalidArgument
	}
	digest, err := scrypt.Key([]byte(secret), raw, scryptN, scryptR, scryptP, KeyLen)
	if err != nil {
		return "", fmt.Errorf("%w: scrypt: %v", common.ErrorInternal, err)
	}
	return base64.StdEncoding.EncodeToString(digest), nil
}

// Equal compares two secrets in constant time.
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Seal encrypts plaintext with AES-GCM under key. The random nonce is
// prepended to the returned ciphertext.
func Seal(plaintext, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesgcm.NonceSize())
	if _, err := io.ReadFull(randReader, nonce); err != nil {
		return nil, err
	}

	return aesgcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal.
func Open(sealed, key []byte) ([]byte, error) {
	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	ns := aesgcm.NonceSize()
	if len(sealed) < ns {
		return nil, fmt.Errorf("sealed data too short")
	}

	return aesgcm.Open(nil, sealed[:ns], sealed[ns:], nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Wipe overwrites b with zeros.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
