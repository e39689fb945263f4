// Package semigroup enumerates a finitely generated semigroup of
// multiplicable elements and exposes its structure: positions, words,
// Cayley tables, defining rules and idempotents.
//
// 🚀 What does the engine do?
//
//	Given generators a₀,…,a_{k−1} (values satisfying element.Element),
//	the engine lists every distinct product of generators exactly once,
//	in short-lex order of their minimal words. Alongside the elements it
//	records, per position:
//	  • first/final letter, prefix/suffix position, word length
//	  • the right and left Cayley graphs (position × letter tables)
//	  • the defining rules of the presentation it discovers on the way
//
//	Most products are never multiplied: whenever the suffix of a word is
//	known to reduce, the product is read off the tables instead. That is
//	what makes the enumeration fast in practice.
//
// ✨ Key features:
//   - lazy, resumable enumeration: Enumerate(limit) grows the structure
//     in batches and stops; EnumerateAll finishes the job
//   - context-aware variant (EnumerateContext) for cancellation
//   - position queries, membership tests and minimal factorisations
//   - rule stream (ResetNextRelation / NextRelation)
//   - idempotent search fanned out over MaxThreads goroutines
//   - incremental growth: AddGenerators and Closure extend a partially
//     or fully enumerated semigroup without starting over
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/froipin/element"
//	    "github.com/katalvlaran/froipin/semigroup"
//	)
//
//	x, _ := element.NewTransformation([]int{1, 0, 2})
//	y, _ := element.NewTransformation([]int{0, 0, 2})
//	S, err := semigroup.New([]element.Element{x, y})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(S.Size(), S.NrRules())
//
// Performance:
//
//   - Time:  O(n·k·c) for n elements over k generators of product cost c,
//     with the reduction shortcut skipping the multiplication for every
//     pair whose suffix already reduces
//   - Space: O(n·k) table cells plus the n stored elements
//
// See examples in example_test.go.
package semigroup
