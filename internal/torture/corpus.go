// Copyright (c) 2025-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package torture

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	ldberrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"lukechampine.com/blake3"
)

// Corpus persists division vectors that produced mismatched results so they
// can be replayed against later versions of the division code.  Vectors are
// keyed by a hash of their serialization, which deduplicates repeated
// discoveries of the same failure.
type Corpus struct {
	db *leveldb.DB
}

// convertLdbErr converts the passed leveldb error into a corpus error with
// the passed description and the original error string attached.
func convertLdbErr(ldbErr error, desc string) Error {
	return makeError(ErrCorpus, fmt.Sprintf("%s: %v", desc, ldbErr))
}

// serializeVector returns the provided vector serialized for storage.
//
// The serialized format is:
//
//	[width][numerator length][numerator][divisor length][divisor]
//
//	Field             Type     Size
//	width             uint32   4 bytes
//	numerator length  uint32   4 bytes
//	numerator         []byte   variable
//	divisor length    uint32   4 bytes
//	divisor           []byte   variable
//
// All integers are little endian and the operand bytes are big endian as in
// the vector itself.
func serializeVector(v *Vector) []byte {
	serialized := make([]byte, 12+len(v.N)+len(v.D))
	byteOrder.PutUint32(serialized[0:4], uint32(v.Bits))
	byteOrder.PutUint32(serialized[4:8], uint32(len(v.N)))
	offset := 8 + copy(serialized[8:], v.N)
	byteOrder.PutUint32(serialized[offset:offset+4], uint32(len(v.D)))
	copy(serialized[offset+4:], v.D)
	return serialized
}

// byteOrder is the byte order used to serialize the numeric fields of
// stored vectors.
var byteOrder = binary.LittleEndian

// deserializeVector decodes a vector from its serialized storage format and
// returns an error with kind ErrCorpusEntry when the data is malformed.
func deserializeVector(serialized []byte) (*Vector, error) {
	if len(serialized) < 12 {
		str := fmt.Sprintf("corpus entry is too short (%d bytes)",
			len(serialized))
		return nil, makeError(ErrCorpusEntry, str)
	}

	var vec Vector
	vec.Bits = int(byteOrder.Uint32(serialized[0:4]))
	nLen := byteOrder.Uint32(serialized[4:8])
	if uint32(len(serialized)-12) < nLen {
		str := fmt.Sprintf("corpus entry numerator length %d exceeds the "+
			"entry size %d", nLen, len(serialized))
		return nil, makeError(ErrCorpusEntry, str)
	}
	vec.N = serialized[8 : 8+nLen]

	offset := 8 + nLen
	dLen := byteOrder.Uint32(serialized[offset : offset+4])
	if uint32(len(serialized))-offset-4 != dLen {
		str := fmt.Sprintf("corpus entry divisor length %d does not match "+
			"the entry size %d", dLen, len(serialized))
		return nil, makeError(ErrCorpusEntry, str)
	}
	vec.D = serialized[offset+4 : offset+4+dLen]
	return &vec, nil
}

// OpenCorpus opens the corpus database at the provided path and creates it
// when it does not already exist.  A corrupted database is recovered when
// possible.
func OpenCorpus(path string) (*Corpus, error) {
	opts := opt.Options{
		Strict:      opt.DefaultStrict,
		Compression: opt.NoCompression,
		Filter:      filter.NewBloomFilter(10),
	}
	db, err := leveldb.OpenFile(path, &opts)
	if err != nil {
		if !ldberrors.IsCorrupted(err) {
			return nil, convertLdbErr(err, "failed to open corpus")
		}

		log.Warnf("Corpus at %q is corrupted, attempting recovery", path)
		db, err = leveldb.RecoverFile(path, &opts)
		if err != nil {
			return nil, convertLdbErr(err, "failed to recover corpus")
		}
	}
	return &Corpus{db: db}, nil
}

// Close releases the underlying database.  The corpus must not be used
// afterward.
func (c *Corpus) Close() error {
	if err := c.db.Close(); err != nil {
		return convertLdbErr(err, "failed to close corpus")
	}
	return nil
}

// Add stores the provided vector in the corpus.  It returns false with no
// error when an identical vector is already present.
func (c *Corpus) Add(v *Vector) (bool, error) {
	serialized := serializeVector(v)
	key := blake3.Sum256(serialized)
	has, err := c.db.Has(key[:], nil)
	if err != nil {
		return false, convertLdbErr(err, "failed to check corpus for vector")
	}
	if has {
		return false, nil
	}
	if err := c.db.Put(key[:], serialized, nil); err != nil {
		return false, convertLdbErr(err, "failed to store vector")
	}
	return true, nil
}

// Count returns the number of vectors currently stored in the corpus.
func (c *Corpus) Count() (uint64, error) {
	var total uint64
	iter := c.db.NewIterator(nil, nil)
	for iter.Next() {
		total++
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return 0, convertLdbErr(err, "corpus iteration failed")
	}
	return total, nil
}

// ForEach invokes the provided function with every vector in the corpus and
// stops either at the end or when the function returns an error, in which
// case that error is returned to the caller.
func (c *Corpus) ForEach(fn func(v *Vector) error) error {
	iter := c.db.NewIterator(nil, nil)
	defer iter.Release()
	for iter.Next() {
		// The value slice is only valid until the next iteration, so the
		// vector has to copy out of it before the callback may retain it.
		serialized := make([]byte, len(iter.Value()))
		copy(serialized, iter.Value())
		vec, err := deserializeVector(serialized)
		if err != nil {
			return err
		}
		if err := fn(vec); err != nil {
			return err
		}
	}
	if err := iter.Error(); err != nil {
		return convertLdbErr(err, "corpus iteration failed")
	}
	return nil
}
