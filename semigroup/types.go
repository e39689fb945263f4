// Package semigroup: configuration, sentinels and errors.
//
// Options:
//
//	– BatchSize:  how many new elements one Enumerate call aims to add
//	              before pausing (default 8192).
//	– MaxThreads: goroutines used by the idempotent search (default
//	              runtime.NumCPU()).
//	– Reporting:  when true, the engine logs a progress line per word
//	              length class through report.Logger().
//
// Errors (sentinel):
//
//	– ErrNoGenerators     if New is given no generators.
//	– ErrDegreeMismatch   if the generators disagree on degree.
//	– ErrOptionViolation  if an option is set to a nonsensical value.
//	– ErrIndexOutOfBounds if a position, letter or sorted index is outside
//	                      the enumerated range.
//	– ErrNotMember        if an element queried for factorisation does not
//	                      belong to the semigroup.
package semigroup

import (
	"errors"
	"math"
	"runtime"
)

// Sentinel errors returned by the enumeration engine.
var (
	// ErrNoGenerators indicates that New was called with an empty slice.
	ErrNoGenerators = errors.New("semigroup: no generators given")

	// ErrDegreeMismatch indicates that two generators have different
	// degrees; all elements of one semigroup must share a degree.
	ErrDegreeMismatch = errors.New("semigroup: generators of unequal degree")

	// ErrOptionViolation indicates that an option carries a value the
	// engine cannot work with (BatchSize or MaxThreads below 1).
	ErrOptionViolation = errors.New("semigroup: invalid option value")

	// ErrIndexOutOfBounds indicates a position, letter or sorted index
	// outside the valid range.
	ErrIndexOutOfBounds = errors.New("semigroup: index out of bounds")

	// ErrNotMember indicates that the queried element is not an element
	// of the semigroup.
	ErrNotMember = errors.New("semigroup: element is not a member")
)

// Undefined marks an absent position: the prefix and suffix of a
// one-letter word, or a failed lookup.
const Undefined = -1

// LimitMax asks Enumerate for the whole semigroup.
const LimitMax = math.MaxInt

// Options configures a Semigroup at construction time.
//
// BatchSize  – soft target of new elements per Enumerate call. Must be ≥ 1.
// MaxThreads – goroutines for the idempotent search. Must be ≥ 1.
// Reporting  – emit a progress log line per completed word length class.
type Options struct {
	BatchSize  int
	MaxThreads int
	Reporting  bool
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// WithBatchSize sets the soft target of new elements per Enumerate call.
// Values below 1 cause New to return ErrOptionViolation.
func WithBatchSize(n int) Option {
	return func(o *Options) {
		o.BatchSize = n
	}
}

// WithMaxThreads sets the number of goroutines the idempotent search
// fans out over. Values below 1 cause New to return ErrOptionViolation.
func WithMaxThreads(n int) Option {
	return func(o *Options) {
		o.MaxThreads = n
	}
}

// WithReport enables the per-class progress log line.
func WithReport() Option {
	return func(o *Options) {
		o.Reporting = true
	}
}

// DefaultOptions returns an Options struct initialized with the engine
// defaults.
//
// Defaults:
//   - BatchSize:  8192 (one Enumerate call adds about this many elements).
//   - MaxThreads: runtime.NumCPU().
//   - Reporting:  false.
func DefaultOptions() Options {
	return Options{
		BatchSize:  8192,
		MaxThreads: runtime.NumCPU(),
		Reporting:  false,
	}
}

// validate reports whether the options are usable.
func (o Options) validate() error {
	if o.BatchSize < 1 {
		return ErrOptionViolation
	}
	if o.MaxThreads < 1 {
		return ErrOptionViolation
	}

	return nil
}
