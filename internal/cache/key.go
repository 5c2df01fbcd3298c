package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"reset-bridger/internal/description"
	"reset-bridger/internal/model"
)

// Digest identifies a projection input.
type Digest [sha256.Size]byte

// String returns the hex form of d.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d is the zero digest.
func (d Digest) IsZero() bool {
	return d == Digest{}
}

type keyInput struct {
	Schema     uint16
	Convention string
	Chain      []description.Class
}

// KeyFor computes the cache key of class. The key covers the class and every
// ancestor, so editing a superclass invalidates its subclasses. The
// projection direction follows from the convention, which is part of the key.
func KeyFor(class *model.ClassInterface) (Digest, error) {
	if class == nil {
		return Digest{}, fmt.Errorf("cache: nil class")
	}

	in := keyInput{Schema: schemaVersion, Convention: class.Convention.String()}
	for cur := class; cur != nil; cur = cur.Superclass {
		in.Chain = append(in.Chain, description.FromClass(cur))
	}

	data, err := msgpack.Marshal(&in)
	if err != nil {
		return Digest{}, fmt.Errorf("cache: encode key for %s: %w", class.Name, err)
	}

	return sha256.Sum256(data), nil
}
