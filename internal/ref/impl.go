// Package ref provides the portable YSC1 implementation.
package ref

import (
	"encoding/binary"
	"math/bits"

	"gitlab.com/yeun/ysc1/internal/api"
)

// Impl is the reference implementation (exposed for testing).
var Impl = &implRef{}

type implRef struct{}

func (impl *implRef) Name() string {
	return "ref"
}

// ortho is the fixed-point-free bijection applied to the right half of each
// Lai-Massey pair.  Addition by an odd constant has no fixed points;
// conjugating it with a half-word rotation preserves that while mixing the
// word halves.
func ortho(x uint64) uint64 {
	return bits.RotateLeft64(bits.RotateLeft64(x, 32)+api.OrthoC, 32)
}

// mixPair applies one Lai-Massey step to the lane pair starting at word
// offsets lo and ro: the diffusion value T = F(left XOR right) is computed
// by the two-layer ARX function keyed with the round constant rc, then
// left += T and right = ortho(right) + T, word by word.  F couples
// neighboring words (i+1 in the add layer, i+2 in the xor layer) so a
// difference in any word of the pair reaches the whole lane.
func mixPair(w []uint64, lo, ro, q int, rc uint64) {
	var d, a [8]uint64

	for i := 0; i < q; i++ {
		d[i] = w[lo+i] ^ w[ro+i]
	}
	mask := q - 1
	for i := 0; i < q; i++ {
		a[i] = bits.RotateLeft64((d[i]^rc)+d[(i+1)&mask], api.RotA[i])
	}
	for i := 0; i < q; i++ {
		t := bits.RotateLeft64(a[i]^a[(i+2)&mask], api.RotB[i])
		w[lo+i] += t
		w[ro+i] = ortho(w[ro+i]) + t
	}
}

// PermuteRound applies round r of the 2x2 Lai-Massey permutation to the
// state words w: a row half-round over lane pairs (A,B) and (C,D), a column
// half-round over (A,C) and (B,D), then the sigma word rotation.  len(w)
// must be 4 lanes of a power-of-two word count, at most 8 words per lane.
func PermuteRound(w []uint64, r int) {
	q := len(w) / 4

	rc := api.Rcon[2*r]
	mixPair(w, 0, q, q, rc)
	mixPair(w, 2*q, 3*q, q, rc)

	rc = api.Rcon[2*r+1]
	mixPair(w, 0, 2*q, q, rc)
	mixPair(w, q, 3*q, q, rc)

	first := w[0]
	copy(w, w[1:])
	w[len(w)-1] = first
}

// InitState derives the initial cipher state from a key and nonce whose
// lengths have already been validated.  Key and nonce words are packed
// little-endian across the quadrant lanes; the YSC1-1024 state's last lane
// is seeded from the Tau words.  The packed state is then mixed with the
// variant's initialization round count.
func InitState(s *api.State, key, nonce []byte) {
	var words, initRounds int
	switch len(key) {
	case api.KeySize512:
		words, initRounds = api.StateWords512, api.InitRounds512
	case api.KeySize1024:
		words, initRounds = api.StateWords1024, api.InitRounds1024
	default:
		panic("ysc1/internal/ref: invalid key size")
	}

	for i := 0; i < len(key)/8; i++ {
		s.W[i] = binary.LittleEndian.Uint64(key[8*i:])
	}
	off := len(key) / 8
	for i := 0; i < api.NonceSize/8; i++ {
		s.W[off+i] = binary.LittleEndian.Uint64(nonce[8*i:])
	}
	if words == api.StateWords1024 {
		copy(s.W[24:], api.Tau[:])
	}
	s.Words = words
	s.Ctr = 0

	for r := 0; r < initRounds; r++ {
		PermuteRound(s.W[:words], r)
	}
}

func (impl *implRef) Blocks(s *api.State, dst, src []byte, nrBlocks int) {
	var w [api.MaxStateWords]uint64

	for n := 0; n < nrBlocks; n++ {
		copy(w[:s.Words], s.W[:s.Words])
		w[0] ^= s.Ctr

		for r := 0; r < api.BlockRounds; r++ {
			PermuteRound(w[:s.Words], r)
		}

		_ = dst[api.BlockSize-1] // Force bounds check elimination.

		if src != nil {
			_ = src[api.BlockSize-1] // Force bounds check elimination.
			for i := 0; i < api.BlockSize/8; i++ {
				binary.LittleEndian.PutUint64(dst[8*i:],
					binary.LittleEndian.Uint64(src[8*i:])^w[i])
			}
			src = src[api.BlockSize:]
		} else {
			for i := 0; i < api.BlockSize/8; i++ {
				binary.LittleEndian.PutUint64(dst[8*i:], w[i])
			}
		}
		dst = dst[api.BlockSize:]

		// Running into the end of the counter space is the caller's
		// responsibility to prevent; the API layer refuses requests
		// that would get here.
		s.Ctr++
	}
}

// Register appends the implementation to the provided slice, and returns the
// new slice.
func Register(impls []api.Implementation) []api.Implementation {
	return append(impls, Impl)
}
