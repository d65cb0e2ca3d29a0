// Package s3store implements docstore.Store on an S3 bucket (or MinIO).
// Each document is one object at prefix/table/id.
package s3store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/dmitrijs2005/keyescrow/internal/common"
	"github.com/dmitrijs2005/keyescrow/internal/server/docstore"
)

// API is the subset of the S3 client used by the store.
type API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

var newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
	return s3.NewFromConfig(cfg, optFns...)
}

type Store struct {
	client API
	bucket string
	prefix string
	codec  docstore.Codec
}

func New(client API, bucket, prefix string, codec docstore.Codec) *Store {
	if codec == nil {
		codec = docstore.JSON
	}
	return &Store{client: client, bucket: bucket, prefix: prefix, codec: codec}
}

// NewFromConfig builds the S3 client. A non-empty endpoint switches to
// path-style addressing, as MinIO expects.
func NewFromConfig(cfg aws.Config, endpoint, bucket, prefix string, codec docstore.Codec) *Store {
	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	return New(client, bucket, prefix, codec)
}

func (s *Store) key(table, id string) *string {
	return aws.String(path.Join(s.prefix, docstore.Key(table, id)))
}

func (s *Store) Get(ctx context.Context, table, id string, out any) error {
	obj, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(table, id),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("s3 error: %w", err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return fmt.Errorf("s3 error: %w", err)
	}

	if err := s.codec.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}
	return nil
}

func (s *Store) Put(ctx context.Context, table, id string, doc any) error {
	data, err := s.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode error: %w", err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:               aws.String(s.bucket),
		Key:                  s.key(table, id),
		Body:                 bytes.NewReader(data),
		ContentLength:        aws.Int64(int64(len(data))),
		ServerSideEncryption: types.ServerSideEncryptionAes256,
	})
	if err != nil {
		return fmt.Errorf("s3 error: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, table, id string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    s.key(table, id),
	})
	if err != nil {
		return fmt.Errorf("s3 error: %w", err)
	}
	return nil
}

func (s *Store) Close() error { return nil }
