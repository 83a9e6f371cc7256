// SPDX-License-Identifier: MIT

package seqfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/edsrzf/mmap-go"
)

// Record is one FASTA entry.
type Record struct {
	ID   string // first word of the header line
	Desc string // remainder of the header line
	Seq  string // concatenated sequence lines
}

// ReadFASTA reads every record of the FASTA file at path.
// The file is memory-mapped for the duration of the parse.
func ReadFASTA(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFASTA(%q): %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("ReadFASTA(%q): %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("ReadFASTA(%q): %w", path, ErrNotRegular)
	}
	// Empty files cannot be mapped.
	if fi.Size() == 0 {
		return nil, fmt.Errorf("ReadFASTA(%q): %w", path, ErrNoRecords)
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("ReadFASTA(%q): mmap: %w", path, err)
	}
	defer m.Unmap()

	recs, err := Parse(bytes.NewReader(m))
	if err != nil {
		return nil, fmt.Errorf("ReadFASTA(%q): %w", path, err)
	}

	return recs, nil
}

// Parse reads FASTA records from r until EOF.
func Parse(r io.Reader) ([]Record, error) {
	fr := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.Protein))

	var out []Record
	for {
		s, err := fr.Read()
		if s != nil {
			if ls, ok := s.(*linear.Seq); ok {
				out = append(out, Record{
					ID:   ls.ID,
					Desc: ls.Desc,
					Seq:  string(alphabet.LettersToBytes(ls.Seq)),
				})
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return out, fmt.Errorf("Parse(record %d): %w", len(out)+1, err)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoRecords
	}

	return out, nil
}

// First returns the first record of the FASTA file at path.
func First(path string) (Record, error) {
	recs, err := ReadFASTA(path)
	if err != nil {
		return Record{}, err
	}

	return recs[0], nil
}
