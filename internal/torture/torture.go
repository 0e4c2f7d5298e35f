// Copyright (c) 2025-2026 The intx developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package torture implements a randomized differential tester for the fixed
// precision division code.  It generates operand pairs that skew toward the
// patterns that historically break long division implementations, checks
// every result against the stdlib big integer implementation, and can
// persist any mismatches it finds for later replay.
package torture

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	mrand "math/rand"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jrick/bitset"

	"github.com/jafar75/intx"
)

// Vector describes a single division case, namely a numerator and divisor
// pair at one of the supported widths.  The operands are stored as big
// endian bytes.
type Vector struct {
	Bits int
	N    []byte
	D    []byte
}

// supportedWidths lists the widths in bits the engine can exercise.
var supportedWidths = []int{256, 512, 1024, 2048, 4096}

// runDivMod performs the division under test at the given width and returns
// the resulting quotient and remainder as big integers.
func runDivMod(bits int, u, v *big.Int) (*big.Int, *big.Int, error) {
	switch bits {
	case 256:
		var n, d, r intx.Uint256
		n.SetBig(u)
		d.SetBig(v)
		n.DivMod(&d, &r)
		return n.ToBig(), r.ToBig(), nil

	case 512:
		var n, d, r intx.Uint512
		n.SetBig(u)
		d.SetBig(v)
		n.DivMod(&d, &r)
		return n.ToBig(), r.ToBig(), nil

	case 1024:
		var n, d, r intx.Uint1024
		n.SetBig(u)
		d.SetBig(v)
		n.DivMod(&d, &r)
		return n.ToBig(), r.ToBig(), nil

	case 2048:
		var n, d, r intx.Uint2048
		n.SetBig(u)
		d.SetBig(v)
		n.DivMod(&d, &r)
		return n.ToBig(), r.ToBig(), nil

	case 4096:
		var n, d, r intx.Uint4096
		n.SetBig(u)
		d.SetBig(v)
		n.DivMod(&d, &r)
		return n.ToBig(), r.ToBig(), nil
	}

	str := fmt.Sprintf("width %d is not supported", bits)
	return nil, nil, makeError(ErrUnsupportedWidth, str)
}

// Division path classes for generation coverage tracking.  They mirror the
// strategy selection rules of the division dispatch so the engine can report
// which code paths its generated vectors reached.
const (
	classZeroNumerator = iota
	classEarlyExit
	classZeroQuotient
	classBy1
	classBy1Shifted
	classBy2
	classBy2Shifted
	classKnuth
	classKnuthShifted

	// NumPathClasses is the total number of division path classes tracked
	// for coverage.
	NumPathClasses
)

// Generator shape classes for generation coverage tracking.
const (
	shapeUniform = iota
	shapeOneRuns
	shapeSparse
	shapeNearMultiple
	shapeTinyDivisor
	shapeTopHeavy

	// NumShapes is the total number of generator shape classes tracked for
	// coverage.
	NumShapes
)

var bigOne = big.NewInt(1)

// wordMask is the mask of a single 64-bit word for extracting words from big
// integers.
var wordMask = new(big.Int).SetUint64(^uint64(0))

// bigWord returns word i of v in the base 2^64 little endian word view the
// fixed width types use.
func bigWord(v *big.Int, i int) uint64 {
	var tmp big.Int
	tmp.Rsh(v, uint(i)*64)
	tmp.And(&tmp, wordMask)
	return tmp.Uint64()
}

// bigFromWords returns the big integer with the provided base 2^64 words in
// little endian order.
func bigFromWords(w []uint64) *big.Int {
	buf := make([]byte, len(w)*8)
	for i, word := range w {
		binary.BigEndian.PutUint64(buf[(len(w)-1-i)*8:], word)
	}
	return new(big.Int).SetBytes(buf)
}

// widthMask returns the value mask 2^bits - 1.
func widthMask(bits int) *big.Int {
	mask := new(big.Int).Lsh(bigOne, uint(bits))
	return mask.Sub(mask, bigOne)
}

// classifyPath returns the division path class the provided operands take,
// mirroring the strategy selection rules of the division dispatch.  The
// divisor must not be zero.
func classifyPath(u, v *big.Int) int {
	if u.Sign() == 0 {
		return classZeroNumerator
	}

	m := (u.BitLen() + 63) / 64
	n := (v.BitLen() + 63) / 64
	if m < n {
		return classEarlyExit
	}

	// The dispatch normalizes both operands by the shift that sets the most
	// significant bit of the divisor top word.
	shift := uint(n*64 - v.BitLen())

	if u.Cmp(v) < 0 {
		// A smaller numerator with the same significant word count exits
		// early only when its top normalized word is below the divisor
		// one.  Otherwise the full division runs and produces a zero
		// quotient.
		un := new(big.Int).Lsh(u, shift)
		vn := new(big.Int).Lsh(v, shift)
		if bigWord(un, m-1) < bigWord(vn, n-1) {
			return classEarlyExit
		}
		return classZeroQuotient
	}

	switch {
	case n == 1:
		if shift != 0 {
			return classBy1Shifted
		}
		return classBy1
	case n == 2:
		if shift != 0 {
			return classBy2Shifted
		}
		return classBy2
	default:
		if shift != 0 {
			return classKnuthShifted
		}
		return classKnuth
	}
}

// Config houses the configuration options for the torture engine.
type Config struct {
	// Seed seeds the operand generator.  A seed of zero selects one based
	// on the current time.
	Seed int64

	// Widths selects the widths in bits to exercise.  All supported widths
	// are exercised when it is empty.
	Widths []int

	// MaxIterations caps the number of generated vectors.  Zero means the
	// run only stops on context cancellation.
	MaxIterations uint64

	// ReportInterval is the number of iterations between progress reports
	// to the package logger.  A reasonable default is used when zero.
	ReportInterval uint64

	// Corpus optionally persists every mismatching vector for later
	// replay.
	Corpus *Corpus

	// FailFast stops a run at the first mismatch when set.
	FailFast bool
}

// Stats summarizes an engine run.
type Stats struct {
	// Iterations is the number of vectors that were generated and checked.
	Iterations uint64

	// Failures is the number of vectors whose results disagreed with the
	// reference implementation.
	Failures uint64

	// PathsCovered and ShapesCovered report how many of the division path
	// and generator shape classes were hit at least once.
	PathsCovered  int
	ShapesCovered int
}

// Engine generates division vectors and cross checks the fixed width
// results against the stdlib big integer implementation.
type Engine struct {
	cfg      Config
	rng      *mrand.Rand
	coverage bitset.Bytes
}

// New returns a torture engine ready to run with the provided configuration.
func New(cfg *Config) (*Engine, error) {
	e := Engine{cfg: *cfg}
	if e.cfg.Seed == 0 {
		e.cfg.Seed = time.Now().UnixNano()
	}
	if len(e.cfg.Widths) == 0 {
		e.cfg.Widths = supportedWidths
	}
	for _, bits := range e.cfg.Widths {
		var supported bool
		for _, want := range supportedWidths {
			if bits == want {
				supported = true
				break
			}
		}
		if !supported {
			str := fmt.Sprintf("width %d is not supported", bits)
			return nil, makeError(ErrUnsupportedWidth, str)
		}
	}
	if e.cfg.ReportInterval == 0 {
		e.cfg.ReportInterval = 1 << 17
	}
	e.rng = mrand.New(mrand.NewSource(e.cfg.Seed))
	e.coverage = bitset.NewBytes(NumPathClasses + NumShapes)
	return &e, nil
}

// randWords returns the given number of words where the leading sig words
// are random and the rest are zero.
func (e *Engine) randWords(words, sig int) []uint64 {
	w := make([]uint64, words)
	for i := 0; i < sig; i++ {
		w[i] = e.rng.Uint64()
	}
	return w
}

// randRunWords returns words filled from a palette of all zero bits, all one
// bits, and random values, which produces long carry and borrow chains.
func (e *Engine) randRunWords(words int) []uint64 {
	w := make([]uint64, words)
	sig := 1 + e.rng.Intn(words)
	for i := 0; i < sig; i++ {
		switch e.rng.Intn(3) {
		case 0:
			w[i] = ^uint64(0)
		case 1:
			w[i] = 0
		default:
			w[i] = e.rng.Uint64()
		}
	}
	return w
}

// randSparseWords returns mostly zero words with a few random bits set,
// which produces values right at the word and width boundaries.
func (e *Engine) randSparseWords(words int) []uint64 {
	w := make([]uint64, words)
	for i := 1 + e.rng.Intn(4); i > 0; i-- {
		w[e.rng.Intn(words)] |= 1 << uint(e.rng.Intn(64))
	}
	return w
}

// generate produces the next vector along with the shape that produced it.
//
// The shapes skew the operands toward the patterns that break long division
// implementations: runs of one bits, sparse bits around word boundaries,
// divisors of every significant size, numerators that are near multiples of
// the divisor so the digit estimation runs at its correction bounds, and
// numerators that replicate the divisor top words so the estimation windows
// degenerate.
func (e *Engine) generate() (*Vector, int) {
	bits := e.cfg.Widths[e.rng.Intn(len(e.cfg.Widths))]
	words := bits / 64
	shape := e.rng.Intn(NumShapes)

	var u, v *big.Int
	switch shape {
	case shapeUniform:
		u = bigFromWords(e.randWords(words, 1+e.rng.Intn(words)))
		v = bigFromWords(e.randWords(words, 1+e.rng.Intn(words)))

	case shapeOneRuns:
		u = bigFromWords(e.randRunWords(words))
		v = bigFromWords(e.randRunWords(words))

	case shapeSparse:
		u = bigFromWords(e.randSparseWords(words))
		v = bigFromWords(e.randSparseWords(words))

	case shapeNearMultiple:
		// The numerator is one less than a multiple of the divisor plus
		// the divisor itself, so the true quotient digits sit right at
		// the top of their range.
		v = bigFromWords(e.randWords(words, 1+e.rng.Intn(words/2+1)))
		if v.Sign() == 0 {
			v.SetUint64(1 + uint64(e.rng.Intn(1000)))
		}
		q := bigFromWords(e.randWords(words, 1+e.rng.Intn(2)))
		u = new(big.Int).Mul(v, q)
		u.Add(u, v)
		u.Sub(u, big.NewInt(int64(1+e.rng.Intn(4))))
		u.And(u, widthMask(bits))

	case shapeTinyDivisor:
		u = bigFromWords(e.randWords(words, words))
		v = new(big.Int).SetUint64(1 + uint64(e.rng.Intn(1000)))

	case shapeTopHeavy:
		// The numerator replicates the divisor top words so the division
		// windows start out degenerate.  The divisor top bit is forced so
		// no normalization shift disturbs the replication.
		n := 3 + e.rng.Intn(words-2)
		vw := e.randWords(words, n)
		vw[n-1] |= 1 << 63
		uw := e.randWords(words, words)
		uw[words-1] = vw[n-1]
		uw[words-2] = vw[n-2]
		u = bigFromWords(uw)
		v = bigFromWords(vw)
	}

	if v.Sign() == 0 {
		v.SetUint64(1 + uint64(e.rng.Intn(1000)))
	}
	return &Vector{Bits: bits, N: u.Bytes(), D: v.Bytes()}, shape
}

// checkVector runs a single vector through the width under test and the
// reference implementation and reports whether they agree.  Disagreements
// are logged and recorded in the corpus when one is configured.
func (e *Engine) checkVector(vec *Vector, u, v *big.Int) (bool, error) {
	if v.Sign() == 0 {
		return false, makeError(ErrCorpusEntry, "vector has a zero divisor")
	}

	gotQ, gotR, err := runDivMod(vec.Bits, u, v)
	if err != nil {
		return false, err
	}
	wantQ, wantR := new(big.Int).QuoRem(u, v, new(big.Int))
	if gotQ.Cmp(wantQ) == 0 && gotR.Cmp(wantR) == 0 {
		return true, nil
	}

	report := struct {
		Bits         int
		N, D         string
		GotQ, GotR   string
		WantQ, WantR string
	}{
		Bits:  vec.Bits,
		N:     u.Text(16),
		D:     v.Text(16),
		GotQ:  gotQ.Text(16),
		GotR:  gotR.Text(16),
		WantQ: wantQ.Text(16),
		WantR: wantR.Text(16),
	}
	log.Errorf("mismatched division result:\n%s", spew.Sdump(report))

	if e.cfg.Corpus != nil {
		added, err := e.cfg.Corpus.Add(vec)
		if err != nil {
			return false, err
		}
		if added {
			log.Infof("Recorded failing %d-bit vector in the corpus",
				vec.Bits)
		}
	}
	return false, nil
}

// countCoverage returns the number of coverage bits set in [from, to).
func (e *Engine) countCoverage(from, to int) int {
	var total int
	for i := from; i < to; i++ {
		if e.coverage.Get(i) {
			total++
		}
	}
	return total
}

// Run generates and checks vectors until the context is canceled or the
// configured iteration budget is exhausted and returns the run summary.
func (e *Engine) Run(ctx context.Context) (*Stats, error) {
	log.Infof("Torture run starting (seed %d, widths %v)", e.cfg.Seed,
		e.cfg.Widths)

	var stats Stats
	for ctx.Err() == nil {
		if e.cfg.MaxIterations != 0 &&
			stats.Iterations >= e.cfg.MaxIterations {

			break
		}

		vec, shape := e.generate()
		u := new(big.Int).SetBytes(vec.N)
		v := new(big.Int).SetBytes(vec.D)
		e.coverage.Set(NumPathClasses + shape)
		e.coverage.Set(classifyPath(u, v))

		ok, err := e.checkVector(vec, u, v)
		if err != nil {
			return nil, err
		}
		stats.Iterations++
		if !ok {
			stats.Failures++
			if e.cfg.FailFast {
				break
			}
		}

		if stats.Iterations%e.cfg.ReportInterval == 0 {
			log.Debugf("%d vectors checked (%d failures, %d/%d paths, "+
				"%d/%d shapes)", stats.Iterations, stats.Failures,
				e.countCoverage(0, NumPathClasses), NumPathClasses,
				e.countCoverage(NumPathClasses, NumPathClasses+NumShapes),
				NumShapes)
		}
	}

	stats.PathsCovered = e.countCoverage(0, NumPathClasses)
	stats.ShapesCovered = e.countCoverage(NumPathClasses,
		NumPathClasses+NumShapes)
	log.Infof("Torture run complete: %d vectors checked, %d failures",
		stats.Iterations, stats.Failures)
	return &stats, nil
}

// Replay runs every vector in the corpus against the current division code
// and returns the replay summary.  Vectors that still fail remain in the
// corpus and are reported as failures again.
func (e *Engine) Replay(ctx context.Context) (*Stats, error) {
	if e.cfg.Corpus == nil {
		return nil, makeError(ErrCorpus, "no corpus configured for replay")
	}

	var stats Stats
	err := e.cfg.Corpus.ForEach(func(vec *Vector) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		u := new(big.Int).SetBytes(vec.N)
		v := new(big.Int).SetBytes(vec.D)
		ok, err := e.checkVector(vec, u, v)
		if err != nil {
			return err
		}
		stats.Iterations++
		if !ok {
			stats.Failures++
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) ||
			errors.Is(err, context.DeadlineExceeded) {

			return &stats, nil
		}
		return nil, err
	}

	log.Infof("Corpus replay complete: %d vectors checked, %d still failing",
		stats.Iterations, stats.Failures)
	return &stats, nil
}
