// Package api provides the YSC1 implementation abstract interface and the
// algorithm's fixed parameter tables.
package api

const (
	// BlockSize is the size of a YSC1 keystream block in bytes.
	BlockSize = 64

	// KeySize512 is the YSC1-512 key size in bytes.
	KeySize512 = 64

	// KeySize1024 is the YSC1-1024 key size in bytes.
	KeySize1024 = 128

	// NonceSize is the nonce size in bytes, common to both variants.
	NonceSize = 64

	// StateWords512 is the YSC1-512 state size as 64 bit unsigned words.
	StateWords512 = 16

	// StateWords1024 is the YSC1-1024 state size as 64 bit unsigned words.
	StateWords1024 = 32

	// MaxStateWords is the widest state either variant uses.
	MaxStateWords = StateWords1024

	// InitRounds512 is the number of key schedule rounds for YSC1-512.
	InitRounds512 = 16

	// InitRounds1024 is the number of key schedule rounds for YSC1-1024.
	InitRounds1024 = 20

	// BlockRounds is the number of permutation rounds per keystream block.
	BlockRounds = 8

	// OrthoC is the additive constant of the orthomorphism.
	OrthoC = uint64(0x9E3779B97F4A7C15)
)

// Rcon is the round constant table.  Each round r consumes Rcon[2r] for the
// row half-round and Rcon[2r+1] for the column half-round; the table covers
// the deepest round count either variant reaches (20 init rounds).
//
// Provisional values pending the authoritative Amaryllis-1024 constant
// table: a splitmix64 sequence seeded with the leading hex digits of pi.
var Rcon = [2 * InitRounds1024]uint64{
	0x2CB0F69F4ABEA221, 0x9417034723148989,
	0xDD555950609DFE03, 0xDBAFB150DEB12800,
	0x7E789B2E6C442CB6, 0xF41E5636C7E4F8C4,
	0x0959D150F8FBA7E4, 0xA97316F13CDB9EEA,
	0x74CD8258F9520068, 0x55C74A62E116868B,
	0xD2F4C799A2023CBD, 0xDF98CB79A37B51B9,
	0x396F5885524F3905, 0xAF1D56386CA3B276,
	0xA9FFBE6B5104E85A, 0x6BD0C51B9FD533B3,
	0x980CE91C50AB4B56, 0x28AC395780FE62C5,
	0x768912E3A6BCEDC7, 0x50B3E8C9332C7C88,
	0xCE3BBFE520BD47DA, 0xCBA6C8E8E0BB7C4F,
	0xBF194DB8434A346D, 0x7D8F2A7B60416D7F,
	0x0849D1F6E0E10A5E, 0x7654B590D064E22F,
	0x16D1DA9507DF3AF2, 0xF63AEF1089EA30E4,
	0x9ADE6673CC6C522B, 0x4C75BC274E37087C,
	0xD35E12B49F51F27B, 0x22DDF2FFCEE481EA,
	0x06007FB13C59A1F1, 0x8966A38C651EA4DA,
	0x25242F018FC01AC6, 0xA73EC74FA31B717C,
	0x7EE0ABDD9797D3A2, 0x5C06FF7DC4AC1880,
	0x8434E41042C28A7D, 0x770A372D64327351,
}

// RotA and RotB are the per-word rotation amounts of the two layers of the
// ARX diffusion function F.  A lane of q words consumes the first q entries.
var (
	RotA = [8]int{11, 12, 13, 14, 15, 16, 17, 18}
	RotB = [8]int{7, 9, 11, 13, 15, 17, 19, 21}
)

// Tau seeds the fourth quadrant lane of the YSC1-1024 state, whose key and
// nonce material fill only the first three lanes.  Hex digits of pi.
var Tau = [8]uint64{
	0x243F6A8885A308D3, 0x13198A2E03707344,
	0xA4093822299F31D0, 0x082EFA98EC4E6C89,
	0x452821E638D01377, 0xBE5466CF34E90C6C,
	0xC0AC29B7C97C50DD, 0x3F84D5B5B5470917,
}

// State is the per-instance cipher state shared with the backends.  W[:Words]
// holds the four quadrant lanes derived from the key and nonce; it is never
// modified after initialization.  Ctr is the index of the next keystream
// block and is advanced by the backends, one per block produced.
type State struct {
	W     [MaxStateWords]uint64
	Words int
	Ctr   uint64
}

// Implementation is a YSC1 backend.
type Implementation interface {
	// Name returns the name of the implementation.
	Name() string

	// Blocks calculates nrBlocks consecutive YSC1 keystream blocks,
	// advancing s.Ctr once per block.  If src is not nil, dst will be set
	// to the XOR of src with the key stream, otherwise dst will be set to
	// the key stream.
	Blocks(s *State, dst, src []byte, nrBlocks int)
}
