// Package models defines the records persisted by the escrow: the vault key
// record and the owner record. Both compose the guard state value types.
package models

import "time"

// RateLimit is the brute-force guard state embedded in a record.
type RateLimit struct {
	// FirstInvalidAt is the time of the first failed attempt in the window.
	FirstInvalidAt *time.Time `json:"firstInvalid" dynamodbav:"firstInvalid" cbor:"firstInvalid"`
	// InvalidCount is the number of failed attempts including the first.
	InvalidCount int `json:"invalidCount" dynamodbav:"invalidCount" cbor:"invalidCount"`
}

// TimeLock is the one-shot cooldown state guarding PIN resets.
type TimeLock struct {
	LockedUntil *time.Time `json:"lockedUntil" dynamodbav:"lockedUntil" cbor:"lockedUntil"`
}

// VaultKey is the escrowed encryption key record.
type VaultKey struct {
	ID string `json:"id" dynamodbav:"id" cbor:"id"`
	// EncryptionKey is the base64 key material. At rest it holds the sealed
	// form produced by the configured sealer.
	EncryptionKey string `json:"encryptionKey" dynamodbav:"encryptionKey" cbor:"encryptionKey"`
	// PinHash and PinSalt are both empty when no PIN is configured.
	PinHash string `json:"pinHash,omitempty" dynamodbav:"pinHash,omitempty" cbor:"pinHash,omitempty"`
	PinSalt string `json:"pinSalt,omitempty" dynamodbav:"pinSalt,omitempty" cbor:"pinSalt,omitempty"`

	RateLimit
	TimeLock
}

// HasPin reports whether a PIN is configured.
func (k *VaultKey) HasPin() bool {
	return k.PinHash != "" && k.PinSalt != ""
}

// ClearPin removes the PIN from the record.
func (k *VaultKey) ClearPin() {
	k.PinHash = ""
	k.PinSalt = ""
}

// OwnerType is the out-of-band channel kind of an owner identifier.
type OwnerType string

const (
	OwnerPhone OwnerType = "phone"
	OwnerEmail OwnerType = "email"
)

// Owner binds a hashed phone number or email address to a vault key.
type Owner struct {
	// ID is Hash(identifier, globalSalt). The raw identifier is never stored.
	ID    string    `json:"id" dynamodbav:"id" cbor:"id"`
	Type  OwnerType `json:"type" dynamodbav:"type" cbor:"type"`
	KeyID string    `json:"keyId" dynamodbav:"keyId" cbor:"keyId"`
	// Op is the operation the current Code was issued for, empty if none.
	Op Operation `json:"op" dynamodbav:"op" cbor:"op"`
	// Code is the current one-time code. It is rotated after every use.
	Code     string `json:"code" dynamodbav:"code" cbor:"code"`
	Verified bool   `json:"verified" dynamodbav:"verified" cbor:"verified"`

	RateLimit
}

// SaltDocument holds the process-wide owner id salt when it is kept in the
// document store.
type SaltDocument struct {
	ID   string `json:"id" dynamodbav:"id" cbor:"id"`
	Salt string `json:"salt" dynamodbav:"salt" cbor:"salt"`
}
