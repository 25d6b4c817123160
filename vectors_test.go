package ysc1

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/BurntSushi/toml"
)

type knownVector struct {
	Variant   string
	Key       string
	Nonce     string
	Keystream string
}

type vectorFile struct {
	Vector []knownVector
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex in vector file: %v", err)
	}
	return b
}

func TestKnownVectors(t *testing.T) {
	var vf vectorFile
	if _, err := toml.DecodeFile("testdata/vectors.toml", &vf); err != nil {
		t.Fatalf("load vectors: %v", err)
	}
	if len(vf.Vector) == 0 {
		t.Fatal("no vectors loaded")
	}

	newFor := func(variant string, key, nonce []byte) (*Cipher, error) {
		if variant == "512" {
			return New512(key, nonce)
		}
		return New1024(key, nonce)
	}

	for i, v := range vf.Vector {
		if v.Variant != "512" && v.Variant != "1024" {
			t.Fatalf("vector %d: unknown variant %q", i, v.Variant)
		}
		key := mustHex(t, v.Key)
		nonce := mustHex(t, v.Nonce)
		want := mustHex(t, v.Keystream)

		c, err := newFor(v.Variant, key, nonce)
		if err != nil {
			t.Fatalf("vector %d: %v", i, err)
		}

		got := make([]byte, len(want))
		if err := c.KeyStream(got); err != nil {
			t.Fatalf("vector %d: %v", i, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("vector %d (YSC1-%s): keystream mismatch\n got %x\nwant %x",
				i, v.Variant, got, want)
		}

		// ApplyKeyStream over zeros must equal the raw keystream.
		c2, err := newFor(v.Variant, key, nonce)
		if err != nil {
			t.Fatalf("vector %d: %v", i, err)
		}
		zeros := make([]byte, len(want))
		if err := c2.ApplyKeyStream(zeros); err != nil {
			t.Fatalf("vector %d: %v", i, err)
		}
		if !bytes.Equal(zeros, want) {
			t.Errorf("vector %d (YSC1-%s): ApplyKeyStream over zeros diverges from KeyStream",
				i, v.Variant)
		}
	}
}
