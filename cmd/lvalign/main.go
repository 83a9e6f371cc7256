// Command lvalign aligns two sequences and prints the alignments followed by
// similarity, distance and their normalized forms.
//
// Usage:
//
//	lvalign [flags] QUERY SUBJECT
//	lvalign [flags] -query-fasta q.fa -subject-fasta s.fa
//
// Examples:
//
//	lvalign -algo nw -all ACCG ACG
//	lvalign -algo sw -matrix -cigar GCATGCG GATTACA
//	lvalign -algo wf kitten sitting
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/lvalign/align"
	"github.com/katalvlaran/lvalign/scoring"
	"github.com/katalvlaran/lvalign/seqfile"
)

// errUsage reports a malformed command line.
var errUsage = errors.New("lvalign: expected QUERY and SUBJECT or -query-fasta/-subject-fasta")

// errIdentityUnused reports -identity combined with an algorithm whose
// matches are always free.
var errIdentityUnused = errors.New("lvalign: -identity applies only to nw and sw")

// options is the parsed command line.
type options struct {
	algo         string
	all          bool
	identity     int
	mismatch     int
	gap          int
	showMatrix   bool
	showCigar    bool
	queryFasta   string
	subjectFasta string
	args         []string
	set          map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("lvalign", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.algo, "algo", "nw", "algorithm: nw, sw or wf")
	fs.BoolVar(&o.all, "all", false, "print every co-optimal alignment")
	fs.IntVar(&o.identity, "identity", 0, "match reward, nw and sw only (rejected with wf); default per algorithm")
	fs.IntVar(&o.mismatch, "mismatch", 0, "mismatch penalty or substitution cost; default per algorithm")
	fs.IntVar(&o.gap, "gap", 0, "gap penalty or cost; default per algorithm")
	fs.BoolVar(&o.showMatrix, "matrix", false, "print the score and pointer matrices")
	fs.BoolVar(&o.showCigar, "cigar", false, "print the CIGAR string of each alignment")
	fs.StringVar(&o.queryFasta, "query-fasta", "", "read the query from the first record of a FASTA file")
	fs.StringVar(&o.subjectFasta, "subject-fasta", "", "read the subject from the first record of a FASTA file")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	o.args = fs.Args()

	return o, nil
}

// policy overlays explicitly set flags on the algorithm's default scoring.
func (o *options) policy(a align.Algorithm) scoring.Policy {
	def := align.DefaultScoring(a)
	pick := func(name string, flagVal, defVal int) int {
		if o.set[name] {
			return flagVal
		}
		return defVal
	}
	mismatch := pick("mismatch", o.mismatch, def.MismatchScore())
	gap := pick("gap", o.gap, def.GapScore())
	if a == align.WagnerFischer {
		return scoring.Levenshtein{Substitution: mismatch, Gap: gap}
	}

	return scoring.General{
		Identity: pick("identity", o.identity, def.MatchScore()),
		Mismatch: mismatch,
		Gap:      gap,
	}
}

// sequences resolves the query and subject from FASTA files or arguments.
func (o *options) sequences() (query, subject string, err error) {
	args := o.args
	next := func(path string) (string, error) {
		if path != "" {
			rec, err := seqfile.First(path)
			return rec.Seq, err
		}
		if len(args) == 0 {
			return "", errUsage
		}
		v := args[0]
		args = args[1:]
		return v, nil
	}
	if query, err = next(o.queryFasta); err != nil {
		return "", "", err
	}
	if subject, err = next(o.subjectFasta); err != nil {
		return "", "", err
	}
	if len(args) != 0 {
		return "", "", errUsage
	}

	return query, subject, nil
}

// run executes one alignment and writes the report to w.
func run(args []string, w, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	alg, err := align.ParseAlgorithm(o.algo)
	if err != nil {
		return err
	}
	if alg == align.WagnerFischer && o.set["identity"] {
		return fmt.Errorf("-algo %s: %w", o.algo, errIdentityUnused)
	}
	query, subject, err := o.sequences()
	if err != nil {
		return err
	}

	m, err := align.Compute(alg, query, subject,
		align.WithScoring(o.policy(alg)),
		align.WithAllAlignments(o.all))
	if err != nil {
		return err
	}

	if o.showMatrix {
		b := m.Built()
		fmt.Fprintf(w, "Score matrix:\n%v\n", b.ScoreMatrix())
		fmt.Fprintf(w, "Pointer matrix:\n%v\n", b.LegacyPointerMatrix())
	}

	alns, err := m.Align()
	if err != nil {
		return err
	}
	if len(alns) == 0 {
		fmt.Fprintln(w, "No alignment")
	}
	for n, a := range alns {
		fmt.Fprintf(w, "Alignment %d:\n%s\n", n+1, a)
		if o.showCigar {
			fmt.Fprintf(w, "CIGAR: %s\n", a.Cigar())
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Similarity: %d\n", m.Similarity())
	fmt.Fprintf(w, "Distance: %d\n", m.Distance())
	fmt.Fprintf(w, "Normalized Similarity: %.4f\n", m.NormalizedSimilarity())
	fmt.Fprintf(w, "Normalized Distance: %.4f\n", m.NormalizedDistance())

	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lvalign: ")
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}
