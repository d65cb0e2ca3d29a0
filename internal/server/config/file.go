package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/keyescrow/internal/flagx"
	"github.com/dmitrijs2005/keyescrow/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk form of Config. Durations use timex.Duration so
// both "168h" and integer nanoseconds are accepted.
type FileConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`

	LogBackend string `json:"log_backend" yaml:"log_backend"`
	LogLevel   string `json:"log_level" yaml:"log_level"`
	LogFormat  string `json:"log_format" yaml:"log_format"`

	StoreBackend   string `json:"store_backend" yaml:"store_backend"`
	StoreCodec     string `json:"store_codec" yaml:"store_codec"`
	DatabaseDSN    string `json:"database_dsn" yaml:"database_dsn"`
	SQLitePath     string `json:"sqlite_path" yaml:"sqlite_path"`
	BadgerDir      string `json:"badger_dir" yaml:"badger_dir"`
	DynamoEndpoint string `json:"dynamodb_endpoint" yaml:"dynamodb_endpoint"`
	KeysTable      string `json:"keys_table" yaml:"keys_table"`
	UsersTable     string `json:"users_table" yaml:"users_table"`

	AWSRegion      string `json:"aws_region" yaml:"aws_region"`
	S3RootUser     string `json:"s3_root_user" yaml:"s3_root_user"`
	S3RootPassword string `json:"s3_root_password" yaml:"s3_root_password"`
	S3Bucket       string `json:"s3_bucket" yaml:"s3_bucket"`
	S3Prefix       string `json:"s3_prefix" yaml:"s3_prefix"`
	S3BaseEndpoint string `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`

	SaltSource    string `json:"salt_source" yaml:"salt_source"`
	Salt          string `json:"salt" yaml:"salt"`
	SaltSecretID  string `json:"salt_secret_id" yaml:"salt_secret_id"`
	SaltParameter string `json:"salt_parameter" yaml:"salt_parameter"`

	SealerBackend string `json:"sealer_backend" yaml:"sealer_backend"`
	SealerKey     string `json:"sealer_key" yaml:"sealer_key"`
	KMSKeyID      string `json:"kms_key_id" yaml:"kms_key_id"`

	NotifySMS   string `json:"notify_sms" yaml:"notify_sms"`
	NotifyEmail string `json:"notify_email" yaml:"notify_email"`
	SESFrom     string `json:"ses_from" yaml:"ses_from"`
	NATSURL     string `json:"nats_url" yaml:"nats_url"`
	NATSSubject string `json:"nats_subject" yaml:"nats_subject"`

	RateLimitThreshold int            `json:"rate_limit_threshold" yaml:"rate_limit_threshold"`
	RateLimitWindow    timex.Duration `json:"rate_limit_window" yaml:"rate_limit_window"`
	TimeLockDuration   timex.Duration `json:"time_lock_duration" yaml:"time_lock_duration"`
}

func toFile(c *Config) FileConfig {
	return FileConfig{
		EndpointAddrGRPC:   c.EndpointAddrGRPC,
		LogBackend:         c.LogBackend,
		LogLevel:           c.LogLevel,
		LogFormat:          c.LogFormat,
		StoreBackend:       c.StoreBackend,
		StoreCodec:         c.StoreCodec,
		DatabaseDSN:        c.DatabaseDSN,
		SQLitePath:         c.SQLitePath,
		BadgerDir:          c.BadgerDir,
		DynamoEndpoint:     c.DynamoEndpoint,
		KeysTable:          c.KeysTable,
		UsersTable:         c.UsersTable,
		AWSRegion:          c.AWSRegion,
		S3RootUser:         c.S3RootUser,
		S3RootPassword:     c.S3RootPassword,
		S3Bucket:           c.S3Bucket,
		S3Prefix:           c.S3Prefix,
		S3BaseEndpoint:     c.S3BaseEndpoint,
		SaltSource:         c.SaltSource,
		Salt:               c.Salt,
		SaltSecretID:       c.SaltSecretID,
		SaltParameter:      c.SaltParameter,
		SealerBackend:      c.SealerBackend,
		SealerKey:          c.SealerKey,
		KMSKeyID:           c.KMSKeyID,
		NotifySMS:          c.NotifySMS,
		NotifyEmail:        c.NotifyEmail,
		SESFrom:            c.SESFrom,
		NATSURL:            c.NATSURL,
		NATSSubject:        c.NATSSubject,
		RateLimitThreshold: c.RateLimitThreshold,
		RateLimitWindow:    timex.Duration{Duration: c.RateLimitWindow},
		TimeLockDuration:   timex.Duration{Duration: c.TimeLockDuration},
	}
}

func (f FileConfig) apply(c *Config) {
	c.EndpointAddrGRPC = f.EndpointAddrGRPC
	c.LogBackend = f.LogBackend
	c.LogLevel = f.LogLevel
	c.LogFormat = f.LogFormat
	c.StoreBackend = f.StoreBackend
	c.StoreCodec = f.StoreCodec
	c.DatabaseDSN = f.DatabaseDSN
	c.SQLitePath = f.SQLitePath
	c.BadgerDir = f.BadgerDir
	c.DynamoEndpoint = f.DynamoEndpoint
	c.KeysTable = f.KeysTable
	c.UsersTable = f.UsersTable
	c.AWSRegion = f.AWSRegion
	c.S3RootUser = f.S3RootUser
	c.S3RootPassword = f.S3RootPassword
	c.S3Bucket = f.S3Bucket
	c.S3Prefix = f.S3Prefix
	c.S3BaseEndpoint = f.S3BaseEndpoint
	c.SaltSource = f.SaltSource
	c.Salt = f.Salt
	c.SaltSecretID = f.SaltSecretID
	c.SaltParameter = f.SaltParameter
	c.SealerBackend = f.SealerBackend
	c.SealerKey = f.SealerKey
	c.KMSKeyID = f.KMSKeyID
	c.NotifySMS = f.NotifySMS
	c.NotifyEmail = f.NotifyEmail
	c.SESFrom = f.SESFrom
	c.NATSURL = f.NATSURL
	c.NATSSubject = f.NATSSubject
	c.RateLimitThreshold = f.RateLimitThreshold
	c.RateLimitWindow = f.RateLimitWindow.Duration
	c.TimeLockDuration = f.TimeLockDuration.Duration
}

// parseFile overlays the file named by -c/-config onto config. Keys absent
// from the file keep their current value. A file ending in .yaml or .yml is
// read as YAML, anything else as JSON. Unreadable or invalid files panic.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc := toFile(config)
	if flagx.IsYAML(path) {
		err = yaml.Unmarshal(data, &fc)
	} else {
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(config)
}
