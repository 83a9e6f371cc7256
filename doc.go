// Package lvalign is a pairwise sequence alignment toolkit: global, local
// and edit-distance alignment with tie-aware traceback that enumerates one
// or every co-optimal alignment.
//
// 🚀 What is lvalign?
//
//	A small, dependency-light library that brings together:
//		• Scoring policies: general, Levenshtein, transpose and extended-gap
//		• Dense integer matrices for score and traceback tables
//		• Needleman-Wunsch, Smith-Waterman and Wagner-Fischer builders
//		• A lazy, stack-based traceback (no recursion)
//		• Similarity, distance and normalized metrics
//		• FASTA input and SAM CIGAR output
//
// Under the hood, everything is organized under these subpackages:
//
//	scoring/     — scoring policies, defaults and validation
//	matrix/      — row-major Dense grid of ints
//	align/       — builders, pointer flags, traceback, Model facade
//	seqfile/     — memory-mapped FASTA reader
//	cmd/lvalign  — command-line front end
//	examples/    — runnable walkthroughs
//
// Quick start:
//
//	m, err := align.Compute(align.NeedlemanWunsch, "ACCG", "ACG",
//	  align.WithAllAlignments(true))
//	alns, err := m.Align()
//	fmt.Println(alns, m.Similarity(), m.NormalizedDistance())
package lvalign
