package vector

import (
	"encoding/binary"
	"math/bits"

	"gitlab.com/yeun/ysc1/internal/api"
	"gitlab.com/yeun/ysc1/internal/ref"
)

// batchSize is the number of consecutive counter values processed together,
// one per lane of the interleaved state.
const batchSize = 4

// lanes holds one state word for batchSize consecutive blocks.
type lanes [batchSize]uint64

// Impl is the batch implementation (exposed for testing).  Output is
// bit-identical to the ref implementation for every counter value; the
// equivalence test enforces this.
var Impl = &implBatch{}

type implBatch struct{}

func (impl *implBatch) Name() string {
	return "batch4"
}

func rotl(x lanes, n int) lanes {
	for i := range x {
		x[i] = bits.RotateLeft64(x[i], n)
	}
	return x
}

func xor(a, b lanes) lanes {
	for i := range a {
		a[i] ^= b[i]
	}
	return a
}

func add(a, b lanes) lanes {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

func xorc(a lanes, c uint64) lanes {
	for i := range a {
		a[i] ^= c
	}
	return a
}

func addc(a lanes, c uint64) lanes {
	for i := range a {
		a[i] += c
	}
	return a
}

func ortho(x lanes) lanes {
	return rotl(addc(rotl(x, 32), api.OrthoC), 32)
}

// mixPair is the interleaved form of the scalar backend's Lai-Massey step;
// same word-level arithmetic, applied to all four blocks of the batch at
// once.
func mixPair(v []lanes, lo, ro, q int, rc uint64) {
	var d, a [8]lanes

	for i := 0; i < q; i++ {
		d[i] = xor(v[lo+i], v[ro+i])
	}
	mask := q - 1
	for i := 0; i < q; i++ {
		a[i] = rotl(add(xorc(d[i], rc), d[(i+1)&mask]), api.RotA[i])
	}
	for i := 0; i < q; i++ {
		t := rotl(xor(a[i], a[(i+2)&mask]), api.RotB[i])
		v[lo+i] = add(v[lo+i], t)
		v[ro+i] = add(ortho(v[ro+i]), t)
	}
}

func permuteRound(v []lanes, r int) {
	q := len(v) / 4

	rc := api.Rcon[2*r]
	mixPair(v, 0, q, q, rc)
	mixPair(v, 2*q, 3*q, q, rc)

	rc = api.Rcon[2*r+1]
	mixPair(v, 0, 2*q, q, rc)
	mixPair(v, q, 3*q, q, rc)

	first := v[0]
	copy(v, v[1:])
	v[len(v)-1] = first
}

// blocks4 generates batchSize consecutive blocks, with the state words
// interleaved so every round operates on all four blocks at once.
func blocks4(s *api.State, dst, src []byte) {
	var v [api.MaxStateWords]lanes

	for i := 0; i < s.Words; i++ {
		w := s.W[i]
		v[i] = lanes{w, w, w, w}
	}
	for j := 0; j < batchSize; j++ {
		v[0][j] ^= s.Ctr + uint64(j)
	}

	for r := 0; r < api.BlockRounds; r++ {
		permuteRound(v[:s.Words], r)
	}

	_ = dst[batchSize*api.BlockSize-1] // Force bounds check elimination.

	if src != nil {
		_ = src[batchSize*api.BlockSize-1] // Force bounds check elimination.
		for j := 0; j < batchSize; j++ {
			base := j * api.BlockSize
			for i := 0; i < api.BlockSize/8; i++ {
				binary.LittleEndian.PutUint64(dst[base+8*i:],
					binary.LittleEndian.Uint64(src[base+8*i:])^v[i][j])
			}
		}
	} else {
		for j := 0; j < batchSize; j++ {
			base := j * api.BlockSize
			for i := 0; i < api.BlockSize/8; i++ {
				binary.LittleEndian.PutUint64(dst[base+8*i:], v[i][j])
			}
		}
	}

	s.Ctr += batchSize
}

func (impl *implBatch) Blocks(s *api.State, dst, src []byte, nrBlocks int) {
	for nrBlocks >= batchSize {
		blocks4(s, dst, src)
		dst = dst[batchSize*api.BlockSize:]
		if src != nil {
			src = src[batchSize*api.BlockSize:]
		}
		nrBlocks -= batchSize
	}
	if nrBlocks > 0 {
		// Sub-batch tails take the scalar path.
		ref.Impl.Blocks(s, dst, src, nrBlocks)
	}
}
