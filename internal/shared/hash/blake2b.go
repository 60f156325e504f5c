package hash

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

var _ Keyer = blake2bKeyer{}

type blake2bKeyer struct {
	salt string
}

func NewBlake2b(salt string) Keyer {
	return blake2bKeyer{salt: salt}
}

func (k blake2bKeyer) Key(value string) string {
	sum := blake2b.Sum256([]byte(k.salt + value))
	return hex.EncodeToString(sum[:])
}
