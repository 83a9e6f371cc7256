// SPDX-License-Identifier: MIT

package seqfile

import "errors"

var (
	// ErrNoRecords indicates that the input held no FASTA record.
	ErrNoRecords = errors.New("seqfile: no FASTA records")

	// ErrNotRegular indicates a path that is not a regular file.
	ErrNotRegular = errors.New("seqfile: not a regular file")
)
