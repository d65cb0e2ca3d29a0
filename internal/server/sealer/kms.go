package sealer

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/dmitrijs2005/keyescrow/internal/common"
)

// KMSAPI is the subset of the KMS client used for sealing.
type KMSAPI interface {
	Encrypt(ctx context.Context, in *kms.EncryptInput, optFns ...func(*kms.Options)) (*kms.EncryptOutput, error)
	Decrypt(ctx context.Context, in *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// encryptionContext is bound into every ciphertext; KMS refuses to decrypt
// without it.
var encryptionContext = map[string]string{"purpose": "keyescrow-vault-key"}

// KMS seals with an AWS KMS symmetric key.
type KMS struct {
	client KMSAPI
	keyID  string
}

func NewKMS(client KMSAPI, keyID string) *KMS {
	return &KMS{client: client, keyID: keyID}
}

func NewKMSFromConfig(cfg aws.Config, keyID string) *KMS {
	return NewKMS(kms.NewFromConfig(cfg), keyID)
}

func (s *KMS) Seal(ctx context.Context, plaintext string) (string, error) {
	out, err := s.client.Encrypt(ctx, &kms.EncryptInput{
		KeyId:             aws.String(s.keyID),
		Plaintext:         []byte(plaintext),
		EncryptionContext: encryptionContext,
	})
	if err != nil {
		return "", fmt.Errorf("%w: kms encrypt: %v", common.ErrorInternal, err)
	}
	return base64.StdEncoding.EncodeToString(out.CiphertextBlob), nil
}

func (s *KMS) Open(ctx context.Context, sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("%w: kms decrypt: %v", common.ErrorInternal, err)
	}

	out, err := s.client.Decrypt(ctx, &kms.DecryptInput{
		KeyId:             aws.String(s.keyID),
		CiphertextBlob:    blob,
		EncryptionContext: encryptionContext,
	})
	if err != nil {
		return "", fmt.Errorf("%w: kms decrypt: %v", common.ErrorInternal, err)
	}
	return string(out.Plaintext), nil
}
