// Package awsx loads the AWS configuration shared by every AWS-backed
// component of the server.
package awsx

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

var loadDefaultAWSConfig = config.LoadDefaultConfig

// Settings selects the region and, for MinIO or local emulators, static
// credentials. Empty credentials fall back to the default provider chain.
type Settings struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

func Load(ctx context.Context, s Settings) (aws.Config, error) {
	var opts []func(*config.LoadOptions) error
	if s.Region != "" {
		opts = append(opts, config.WithRegion(s.Region))
	}
	if s.AccessKeyID != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.AccessKeyID,
			s.SecretAccessKey,
			"",
		)))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("aws config error: %w", err)
	}
	return cfg, nil
}
