// Package ysc1 implements the YSC1 stream cipher, a keyed keystream
// generator built from a (2x2) generalized Lai-Massey permutation network,
// in 512 and 1024 bit key variants.
//
// A Cipher instance is not safe for concurrent use: applying keystream
// advances the block counter and the internal buffer, so callers sharing an
// instance across goroutines must serialize access themselves.
package ysc1 // import "gitlab.com/yeun/ysc1"

import (
	"errors"

	"gitlab.com/yeun/ysc1/internal/api"
	"gitlab.com/yeun/ysc1/internal/ref"
	"gitlab.com/yeun/ysc1/internal/vector"
)

const (
	// KeySize512 is the YSC1-512 key size in bytes.
	KeySize512 = api.KeySize512

	// KeySize1024 is the YSC1-1024 key size in bytes.
	KeySize1024 = api.KeySize1024

	// NonceSize is the YSC1 nonce size in bytes, common to both variants.
	NonceSize = api.NonceSize

	// BlockSize is the size of a YSC1 keystream block in bytes.
	BlockSize = api.BlockSize
)

var (
	// ErrInvalidKey is the error returned when the key is invalid.
	ErrInvalidKey = errors.New("ysc1: key length must be KeySize512/KeySize1024 bytes")

	// ErrInvalidNonce is the error returned when the nonce is invalid.
	ErrInvalidNonce = errors.New("ysc1: nonce length must be NonceSize bytes")

	// ErrExhaustedStream is the error returned when the block counter range
	// for the (key, nonce) pair is spent.  The instance is unusable until
	// it is rekeyed with a fresh nonce.
	ErrExhaustedStream = errors.New("ysc1: keystream blocks per nonce exhausted")

	supportedImpls []api.Implementation
	activeImpl     api.Implementation
)

// Cipher is an instance of YSC1-512 or YSC1-1024 using a particular key and
// nonce.
type Cipher struct {
	state api.State
	buf   [api.BlockSize]byte

	off     int
	keySize int
	spent   bool
}

// New512 returns a new YSC1-512 instance.  key must be KeySize512 bytes and
// nonce NonceSize bytes.
func New512(key, nonce []byte) (*Cipher, error) {
	return newCipher(key, nonce, KeySize512)
}

// New1024 returns a new YSC1-1024 instance.  key must be KeySize1024 bytes
// and nonce NonceSize bytes.
func New1024(key, nonce []byte) (*Cipher, error) {
	return newCipher(key, nonce, KeySize1024)
}

func newCipher(key, nonce []byte, keySize int) (*Cipher, error) {
	c := &Cipher{keySize: keySize}
	if err := c.doReKey(key, nonce); err != nil {
		return nil, err
	}
	return c, nil
}

// Reset zeros the key data so that it will no longer appear in the process's
// memory.  This is hygiene rather than a guarantee: copies the runtime or
// caller made are untouched.
func (c *Cipher) Reset() {
	for i := range c.state.W {
		c.state.W[i] = 0
	}
	for i := range c.buf {
		c.buf[i] = 0
	}
}

// ReKey reinitializes the instance with the provided key and nonce.  The
// variant is fixed at construction; the key must match its size.
func (c *Cipher) ReKey(key, nonce []byte) error {
	c.Reset()
	return c.doReKey(key, nonce)
}

func (c *Cipher) doReKey(key, nonce []byte) error {
	if len(key) != c.keySize {
		return ErrInvalidKey
	}
	if len(nonce) != NonceSize {
		return ErrInvalidNonce
	}

	ref.InitState(&c.state, key, nonce)
	c.off = api.BlockSize
	c.spent = false

	return nil
}

// Seek sets the block counter to a given offset, discarding any buffered
// keystream.
func (c *Cipher) Seek(blockCounter uint64) error {
	c.state.Ctr = blockCounter
	c.off = api.BlockSize
	c.spent = false
	return nil
}

// ApplyKeyStream XORs the keystream into p in place.  Applying the same
// (key, nonce) keystream to the same region twice returns it to its
// original value.  A zero-length p is a no-op.
func (c *Cipher) ApplyKeyStream(p []byte) error {
	return c.XORKeyStream(p, p)
}

// XORKeyStream sets dst to the result of XORing src with the key stream.
// Dst and src may be the same slice but otherwise should not overlap.  On
// ErrExhaustedStream no part of dst is written.
func (c *Cipher) XORKeyStream(dst, src []byte) error {
	if len(dst) < len(src) {
		src = src[:len(dst)]
	}
	if err := c.reserve(len(src)); err != nil {
		return err
	}

	for remaining := len(src); remaining > 0; {
		// Process multiple blocks at once.
		if c.off == api.BlockSize {
			nrBlocks := remaining / api.BlockSize
			directBytes := nrBlocks * api.BlockSize
			if nrBlocks > 0 {
				activeImpl.Blocks(&c.state, dst, src, nrBlocks)
				remaining -= directBytes
				if remaining == 0 {
					return nil
				}
				dst = dst[directBytes:]
				src = src[directBytes:]
			}

			// If there's a partial block, generate 1 block of keystream into
			// the internal buffer.
			activeImpl.Blocks(&c.state, c.buf[:], nil, 1)
			c.off = 0
		}

		// Process partial blocks from the buffered keystream.
		toXor := api.BlockSize - c.off
		if remaining < toXor {
			toXor = remaining
		}
		if toXor > 0 {
			c.xorBufBytes(dst, src, toXor)

			dst = dst[toXor:]
			src = src[toXor:]

			remaining -= toXor
		}
	}

	return nil
}

func (c *Cipher) xorBufBytes(dst, src []byte, n int) {
	// Force bounds check elimination.
	buf := c.buf[c.off:]
	_ = buf[n-1]
	_ = dst[n-1]
	_ = src[n-1]

	for i := 0; i < n; i++ {
		dst[i] = buf[i] ^ src[i]
	}
	c.off += n
}

// KeyStream sets dst to the raw keystream.  On ErrExhaustedStream no part
// of dst is written.
func (c *Cipher) KeyStream(dst []byte) error {
	if err := c.reserve(len(dst)); err != nil {
		return err
	}

	for remaining := len(dst); remaining > 0; {
		// Process multiple blocks at once.
		if c.off == api.BlockSize {
			nrBlocks := remaining / api.BlockSize
			directBytes := nrBlocks * api.BlockSize
			if nrBlocks > 0 {
				activeImpl.Blocks(&c.state, dst, nil, nrBlocks)
				remaining -= directBytes
				if remaining == 0 {
					return nil
				}
				dst = dst[directBytes:]
			}

			// If there's a partial block, generate 1 block of keystream into
			// the internal buffer.
			activeImpl.Blocks(&c.state, c.buf[:], nil, 1)
			c.off = 0
		}

		// Process partial blocks from the buffered keystream.
		toCopy := api.BlockSize - c.off
		if remaining < toCopy {
			toCopy = remaining
		}
		if toCopy > 0 {
			copy(dst[:toCopy], c.buf[c.off:c.off+toCopy])
			dst = dst[toCopy:]
			remaining -= toCopy
			c.off += toCopy
		}
	}

	return nil
}

// reserve fails a request up front if serving n bytes would need more block
// counter values than remain, so a failing call never produces partial
// output.  When a request claims the final counter value it marks the
// instance spent; the counter word itself wraps in the backend, so the flag
// is what keeps a wrapped instance from looking fresh.
func (c *Cipher) reserve(n int) error {
	buffered := 0
	if c.off < api.BlockSize {
		buffered = api.BlockSize - c.off
	}
	if n <= buffered {
		return nil
	}
	nrBlocks := uint64((n - buffered + api.BlockSize - 1) / api.BlockSize)
	left := ^uint64(0) - c.state.Ctr
	if c.spent || nrBlocks-1 > left {
		return ErrExhaustedStream
	}
	if nrBlocks-1 == left {
		c.spent = true
	}
	return nil
}

func init() {
	supportedImpls = vector.Register(supportedImpls)
	supportedImpls = ref.Register(supportedImpls)
	activeImpl = supportedImpls[0]
}
