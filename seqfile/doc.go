// Package seqfile loads sequences from FASTA files for alignment.
//
// ReadFASTA maps the file read-only and hands the bytes to the biogo FASTA
// parser; Parse accepts any io.Reader. Records keep their order in the
// file. Sequence letters are returned as written; align.NewData performs
// case normalization.
package seqfile
