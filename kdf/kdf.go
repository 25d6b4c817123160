// Package kdf derives YSC1 key and nonce material from a passphrase.
//
// The passphrase is stretched with scrypt into a fixed-size pool, and the
// pool is expanded to the requested length with salt-indexed personalized
// BLAKE2b.  Derivation is fully deterministic: the same passphrase and salt
// always yield the same material.  This does not perform key exchange; it
// only turns local secret material into the fixed-size keys the cipher
// expects.
package kdf

import (
	"errors"

	blake2b "github.com/minio/blake2b-simd"
	"golang.org/x/crypto/scrypt"

	"gitlab.com/yeun/ysc1"
)

const domainStr = "YSC1.kdf"

// Scrypt cost parameters.
const (
	scryptN = 16384
	scryptR = 12
	scryptP = 1
)

// ErrInvalidSize is the error returned when the requested material size is
// not positive or exceeds what the expansion chain can produce.
var ErrInvalidSize = errors.New("kdf: invalid material size")

// Material derives size bytes of key material from a passphrase and salt.
// The salt need not be secret but must be unique per use; reusing a
// (passphrase, salt) pair yields identical material.
func Material(passphrase, salt []byte, size int) ([]byte, error) {
	if size <= 0 || size > 64*256 {
		return nil, ErrInvalidSize
	}

	pool, err := scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, 32)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, size)
	for i := 0; len(out) < size; i++ {
		hf, err := blake2b.New(&blake2b.Config{
			Key:    pool,
			Person: []byte(domainStr),
			Size:   64,
			Salt:   []byte{byte(i)},
		})
		if err != nil {
			return nil, err
		}
		out = hf.Sum(out)
	}
	for i := range pool {
		pool[i] = 0
	}

	return out[:size], nil
}

// Key512 derives a YSC1-512 key from a passphrase and salt.
func Key512(passphrase, salt []byte) ([]byte, error) {
	return Material(passphrase, salt, ysc1.KeySize512)
}

// Key1024 derives a YSC1-1024 key from a passphrase and salt.
func Key1024(passphrase, salt []byte) ([]byte, error) {
	return Material(passphrase, salt, ysc1.KeySize1024)
}

// Nonce derives a YSC1 nonce from a passphrase and salt.  Deriving the key
// and nonce from the same passphrase requires distinct salts, and a derived
// nonce must never be reused with the same key for different plaintexts.
func Nonce(passphrase, salt []byte) ([]byte, error) {
	return Material(passphrase, salt, ysc1.NonceSize)
}
