package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperation_Valid(t *testing.T) {
	for _, op := range Operations {
		assert.True(t, op.Valid(), op)
	}
	assert.False(t, Operation("invalid").Valid())
	assert.False(t, Operation("").Valid())
}

func TestVaultKey_Pin(t *testing.T) {
	k := &VaultKey{}
	assert.False(t, k.HasPin())

	k.PinHash, k.PinSalt = "h", "s"
	assert.True(t, k.HasPin())

	k.ClearPin()
	assert.False(t, k.HasPin())
}

func TestOwner_JSONIsFlat(t *testing.T) {
	first := time.Date(2020, 6, 9, 3, 33, 47, 980_000_000, time.UTC)
	o := Owner{
		ID:        "hash",
		Type:      OwnerPhone,
		KeyID:     "550e8400-e29b-41d4-a716-446655440000",
		Op:        OpRead,
		Code:      "123456",
		Verified:  true,
		RateLimit: RateLimit{FirstInvalidAt: &first, InvalidCount: 3},
	}

	b, err := json.Marshal(o)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(b, &doc))
	assert.Equal(t, "2020-06-09T03:33:47.98Z", doc["firstInvalid"])
	assert.Equal(t, float64(3), doc["invalidCount"])
	assert.Equal(t, "read", doc["op"])
}
