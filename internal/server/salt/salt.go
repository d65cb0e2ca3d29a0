// Package salt resolves the process-wide salt owner ids are derived with.
// It is resolved once at startup and handed to the owner manager.
package salt

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/cryptox"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
	"github.com/dmitrijs2005/keyescrow/internal/server/models"
)

// DocumentID is the id of the salt document in the owners table. Owner ids
// are base64 digests and never collide with it.
const DocumentID = "salt"

// Source yields the salt.
type Source interface {
	Salt(ctx context.Context) (string, error)
}

// Resolve reads the salt from src and checks it is usable for hashing.
func Resolve(ctx context.Context, src Source) (string, error) {
	s, err := src.Salt(ctx)
	if err != nil {
		return "", err
	}
	if err := Validate(s); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks that s is base64 for exactly cryptox.SaltLen bytes.
func Validate(s string) error {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(raw) != cryptox.SaltLen {
		return fmt.Errorf("%w: salt must be %d base64 encoded bytes", common.ErrorInvalidArgument, cryptox.SaltLen)
	}
	return nil
}

// Static is a salt taken from configuration.
type Static string

func (s Static) Salt(ctx context.Context) (string, error) { return string(s), nil }

// Store keeps the salt as a document in the owners table and creates it on
// first use.
type Store struct {
	store docstore.Store
	table string
}

func NewStore(store docstore.Store, table string) *Store {
	return &Store{store: store, table: table}
}

func (s *Store) Salt(ctx context.Context) (string, error) {
	var doc models.SaltDocument
	err := s.store.Get(ctx, s.table, DocumentID, &doc)
	if err == nil {
		return doc.Salt, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return "", fmt.Errorf("%w: get salt: %v", common.ErrorInternal, err)
	}

	generated, err := cryptox.GenerateSalt()
	if err != nil {
		return "", err
	}
	doc = models.SaltDocument{ID: DocumentID, Salt: generated}
	if err := s.store.Put(ctx, s.table, DocumentID, &doc); err != nil {
		return "", fmt.Errorf("%w: put salt: %v", common.ErrorInternal, err)
	}
	return generated, nil
}

// SecretsManagerAPI is the subset of the Secrets Manager client used here.
type SecretsManagerAPI interface {
	GetSecretValue(ctx context.Context, in *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManager reads the salt from a secret. The secret is either the
// bare salt or a JSON object with a "salt" field.
type SecretsManager struct {
	client   SecretsManagerAPI
	secretID string
}

func NewSecretsManager(client SecretsManagerAPI, secretID string) *SecretsManager {
	return &SecretsManager{client: client, secretID: secretID}
}

func NewSecretsManagerFromConfig(cfg aws.Config, secretID string) *SecretsManager {
	return NewSecretsManager(secretsmanager.NewFromConfig(cfg), secretID)
}

func (s *SecretsManager) Salt(ctx context.Context) (string, error) {
	out, err := s.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(s.secretID),
	})
	if err != nil {
		return "", fmt.Errorf("%w: get salt secret: %v", common.ErrorInternal, err)
	}

	value := strings.TrimSpace(aws.ToString(out.SecretString))
	if !strings.HasPrefix(value, "{") {
		return value, nil
	}

	var secret struct {
		Salt string `json:"salt"`
	}
	if err := json.Unmarshal([]byte(value), &secret); err != nil {
		return "", fmt.Errorf("%w: parse salt secret: %v", common.ErrorInvalidArgument, err)
	}
	return secret.Salt, nil
}

// SSMAPI is the subset of the SSM client used here.
type SSMAPI interface {
	GetParameter(ctx context.Context, in *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SSM reads the salt from a (usually SecureString) parameter.
type SSM struct {
	client SSMAPI
	name   string
}

func NewSSM(client SSMAPI, name string) *SSM {
	return &SSM{client: client, name: name}
}

func NewSSMFromConfig(cfg aws.Config, name string) *SSM {
	return NewSSM(ssm.NewFromConfig(cfg), name)
}

func (s *SSM) Salt(ctx context.Context) (string, error) {
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(s.name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("%w: get salt parameter: %v", common.ErrorInternal, err)
	}
	if out.Parameter == nil {
		return "", fmt.Errorf("%w: salt parameter %s has no value", common.ErrorInternal, s.name)
	}
	return strings.TrimSpace(aws.ToString(out.Parameter.Value)), nil
}
