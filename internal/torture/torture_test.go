// Copyright (c) 2025-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package torture

import (
	"context"
	"errors"
	"math/big"
	"reflect"
	"testing"
)

// TestClassifyPath ensures the division path classifier mirrors the
// dispatch strategy selection for operands that target each class.
func TestClassifyPath(t *testing.T) {
	tests := []struct {
		name string   // test description
		u    []uint64 // numerator words, little endian
		v    []uint64 // divisor words, little endian
		want int      // expected path class
	}{{
		name: "zero numerator",
		u:    []uint64{0},
		v:    []uint64{5},
		want: classZeroNumerator,
	}, {
		name: "fewer numerator words",
		u:    []uint64{5},
		v:    []uint64{0, 1},
		want: classEarlyExit,
	}, {
		name: "same words smaller normalized top word",
		u:    []uint64{9, 5},
		v:    []uint64{1, 6},
		want: classEarlyExit,
	}, {
		name: "same words equal normalized top word",
		u:    []uint64{5, 5, 5},
		v:    []uint64{6, 5, 5},
		want: classZeroQuotient,
	}, {
		name: "single word divisor already normalized",
		u:    []uint64{1, 2},
		v:    []uint64{1 << 63},
		want: classBy1,
	}, {
		name: "single word divisor needs shift",
		u:    []uint64{1, 2},
		v:    []uint64{3},
		want: classBy1Shifted,
	}, {
		name: "double word divisor already normalized",
		u:    []uint64{1, 2, 3},
		v:    []uint64{0, 1 << 63},
		want: classBy2,
	}, {
		name: "double word divisor needs shift",
		u:    []uint64{1, 2, 3},
		v:    []uint64{0, 1},
		want: classBy2Shifted,
	}, {
		name: "multi word divisor already normalized",
		u:    []uint64{1, 2, 3, 4},
		v:    []uint64{7, 7, 1 << 63},
		want: classKnuth,
	}, {
		name: "multi word divisor needs shift",
		u:    []uint64{1, 2, 3, 4},
		v:    []uint64{7, 7, 2},
		want: classKnuthShifted,
	}}

	for _, test := range tests {
		u := bigFromWords(test.u)
		v := bigFromWords(test.v)
		if got := classifyPath(u, v); got != test.want {
			t.Errorf("%s: unexpected class -- got %d, want %d", test.name,
				got, test.want)
			continue
		}
	}
}

// TestEngineRun ensures a short engine run over a couple of widths checks
// the requested number of vectors without finding failures and reports
// coverage.
func TestEngineRun(t *testing.T) {
	eng, err := New(&Config{
		Seed:          0x1538,
		Widths:        []int{256, 512},
		MaxIterations: 200,
	})
	if err != nil {
		t.Fatalf("unexpected error creating engine: %v", err)
	}

	stats, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error running engine: %v", err)
	}
	if stats.Iterations != 200 {
		t.Fatalf("unexpected iterations -- got %d, want %d",
			stats.Iterations, 200)
	}
	if stats.Failures != 0 {
		t.Fatalf("engine reported %d failures", stats.Failures)
	}
	if stats.PathsCovered == 0 || stats.ShapesCovered == 0 {
		t.Fatalf("unexpected coverage -- got %d paths, %d shapes",
			stats.PathsCovered, stats.ShapesCovered)
	}
}

// TestEngineUnsupportedWidth ensures creating an engine with a width that
// has no corresponding type fails with the expected error.
func TestEngineUnsupportedWidth(t *testing.T) {
	_, err := New(&Config{Widths: []int{100}})
	if !errors.Is(err, ErrUnsupportedWidth) {
		t.Fatalf("unexpected error -- got %v, want %v", err,
			ErrUnsupportedWidth)
	}
}

// TestCorpus ensures vectors round trip through the corpus including
// deduplication and persistence across a close and reopen.
func TestCorpus(t *testing.T) {
	path := t.TempDir()
	corpus, err := OpenCorpus(path)
	if err != nil {
		t.Fatalf("unexpected error opening corpus: %v", err)
	}

	vec := &Vector{
		Bits: 256,
		N:    big.NewInt(100).Bytes(),
		D:    big.NewInt(9).Bytes(),
	}
	added, err := corpus.Add(vec)
	if err != nil {
		t.Fatalf("unexpected error adding vector: %v", err)
	}
	if !added {
		t.Fatal("vector was not added to an empty corpus")
	}

	// Adding the same vector again must be a no-op.
	added, err = corpus.Add(vec)
	if err != nil {
		t.Fatalf("unexpected error adding duplicate vector: %v", err)
	}
	if added {
		t.Fatal("duplicate vector was added")
	}

	if count, err := corpus.Count(); err != nil || count != 1 {
		t.Fatalf("unexpected count -- got (%d, %v), want (1, nil)", count,
			err)
	}

	var got []*Vector
	err = corpus.ForEach(func(v *Vector) error {
		got = append(got, v)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error iterating corpus: %v", err)
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0], vec) {
		t.Fatalf("unexpected corpus contents -- got %+v, want %+v", got, vec)
	}

	// The vector must survive closing and reopening the corpus.
	if err := corpus.Close(); err != nil {
		t.Fatalf("unexpected error closing corpus: %v", err)
	}
	corpus, err = OpenCorpus(path)
	if err != nil {
		t.Fatalf("unexpected error reopening corpus: %v", err)
	}
	defer corpus.Close()
	if count, err := corpus.Count(); err != nil || count != 1 {
		t.Fatalf("unexpected count after reopen -- got (%d, %v), want "+
			"(1, nil)", count, err)
	}
}

// TestVectorSerialization ensures vectors survive a serialization round
// trip and that malformed entries are rejected.
func TestVectorSerialization(t *testing.T) {
	vec := &Vector{
		Bits: 1024,
		N:    []byte{0x01, 0x02, 0x03},
		D:    []byte{0xff},
	}
	got, err := deserializeVector(serializeVector(vec))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, vec) {
		t.Fatalf("unexpected vector -- got %+v, want %+v", got, vec)
	}

	tests := []struct {
		name       string // test description
		serialized []byte
	}{{
		name:       "empty",
		serialized: nil,
	}, {
		name:       "truncated header",
		serialized: []byte{0x00, 0x01},
	}, {
		name: "numerator length beyond entry",
		serialized: []byte{
			0x00, 0x01, 0x00, 0x00, // width
			0xff, 0x00, 0x00, 0x00, // numerator length
			0x00, 0x00, 0x00, 0x00,
		},
	}, {
		name: "divisor length mismatch",
		serialized: []byte{
			0x00, 0x01, 0x00, 0x00, // width
			0x01, 0x00, 0x00, 0x00, // numerator length
			0xaa,                   // numerator
			0x09, 0x00, 0x00, 0x00, // divisor length
			0xbb, // divisor
		},
	}}
	for _, test := range tests {
		if _, err := deserializeVector(test.serialized); !errors.Is(err,
			ErrCorpusEntry) {

			t.Errorf("%s: unexpected error -- got %v, want %v", test.name,
				err, ErrCorpusEntry)
			continue
		}
	}
}

// TestEngineReplay ensures replaying a corpus checks every stored vector
// and that replay without a corpus fails with the expected error.
func TestEngineReplay(t *testing.T) {
	corpus, err := OpenCorpus(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error opening corpus: %v", err)
	}
	defer corpus.Close()

	// Store two vectors that divide correctly, so a replay against working
	// division code reports them all checked with no remaining failures.
	vectors := []*Vector{{
		Bits: 256,
		N:    big.NewInt(100).Bytes(),
		D:    big.NewInt(9).Bytes(),
	}, {
		Bits: 512,
		N:    new(big.Int).Lsh(big.NewInt(1), 500).Bytes(),
		D:    big.NewInt(3).Bytes(),
	}}
	for _, vec := range vectors {
		if _, err := corpus.Add(vec); err != nil {
			t.Fatalf("unexpected error adding vector: %v", err)
		}
	}

	eng, err := New(&Config{Seed: 0x1538, Corpus: corpus})
	if err != nil {
		t.Fatalf("unexpected error creating engine: %v", err)
	}
	stats, err := eng.Replay(context.Background())
	if err != nil {
		t.Fatalf("unexpected error replaying corpus: %v", err)
	}
	if stats.Iterations != 2 || stats.Failures != 0 {
		t.Fatalf("unexpected replay stats -- got (%d, %d), want (2, 0)",
			stats.Iterations, stats.Failures)
	}

	// Replay requires a corpus.
	eng, err = New(&Config{Seed: 0x1538})
	if err != nil {
		t.Fatalf("unexpected error creating engine: %v", err)
	}
	if _, err := eng.Replay(context.Background()); !errors.Is(err, ErrCorpus) {
		t.Fatalf("unexpected error -- got %v, want %v", err, ErrCorpus)
	}
}
