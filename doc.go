// Package froipin is your in-memory playground for enumerating,
// querying, and dissecting finitely generated semigroups — from raw
// generators to Cayley graphs and Green's classes.
//
// 🚀 What is froipin?
//
//	A breadth-first enumeration engine that, given a handful of
//	generators, incrementally discovers every element together with:
//		• Word data: shortest factorisations, prefixes, suffixes, lengths
//		• Cayley tables: right and left products against every generator
//		• Defining relations: a confluent rewriting system as a stream
//		• Idempotents: counted and listed with a parallel scan
//		• Graph views: BFS words, topological order, R/L-classes via SCCs
//
// ✨ Why choose froipin?
//
//   - Lazy by construction – enumerate in batches, resume any time
//   - Deterministic – positions follow the breadth-first word order
//   - Generic elements – transformations, partial perms, boolean and
//     tropical matrices, bipartitions, PBRs, or your own Element
//   - Extensible – add generators to a half-enumerated semigroup and
//     keep every position you already handed out
//
// Under the hood, everything is organized under six subpackages:
//
//	element/   — the Element contract & concrete element types
//	semigroup/ — the enumeration engine: tables, queries, relations
//	cayley/    — Cayley graphs: walks, SCCs, topological sorts
//	recvec/    — flat rectangular tables the engine grows row by row
//	semiring/  — the arithmetic behind the matrix element types
//	report/    — structured progress logging for long enumerations
//
// Quick ASCII example:
//
//	    a──ab──aba…
//	   ╱
//	  ∅
//	   ╲
//	    b──ba──bab…
//
//	elements appear level by level: generators first, then all products
//	of length two, and so on until the multiplication closes.
//
// Dive into the package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/froipin
package froipin
