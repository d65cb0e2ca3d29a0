// Package docstore defines the document store the escrow persists its
// records in, the codecs documents are encoded with, and an in-memory
// implementation. Durable backends live in sub-packages.
package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Store is a durable key-value document store addressed by table and
// primary id. No compare-and-swap is offered.
type Store interface {
	// Get decodes the document into out. It returns common.ErrorNotFound
	// when no document exists.
	Get(ctx context.Context, table, id string, out any) error
	// Put creates or replaces the document.
	Put(ctx context.Context, table, id string, doc any) error
	// Delete removes the document. Deleting a missing document is not an error.
	Delete(ctx context.Context, table, id string) error
	Close() error
}

// Codec turns documents into bytes for stores that keep opaque values.
type Codec interface {
	Name() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

type jsonCodec struct{}

func (jsonCodec) Name() string                       { return "json" }
func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

type cborCodec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func (c cborCodec) Name() string                       { return "cbor" }
func (c cborCodec) Marshal(v any) ([]byte, error)      { return c.enc.Marshal(v) }
func (c cborCodec) Unmarshal(data []byte, v any) error { return c.dec.Unmarshal(data, v) }

// JSON is the default codec.
var JSON Codec = jsonCodec{}

// NewCBOR returns a CBOR codec that keeps timestamps at nanosecond precision.
func NewCBOR() (Codec, error) {
	enc, err := cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		return nil, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return nil, err
	}
	return cborCodec{enc: enc, dec: dec}, nil
}

// CodecByName resolves "json" or "cbor".
func CodecByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSON, nil
	case "cbor":
		return NewCBOR()
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}

// Key joins table and id into a flat key for stores without tables.
func Key(table, id string) string {
	return table + "/" + id
}
