// Package aoc is a small toolkit for solving Advent of Code puzzles: lazy
// sequence helpers, parsing helpers and a runner that dispatches to the
// day solvers of a program.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"io/fs"
	"iter"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples parses every Go file at the top of src and returns the
// samples found in method doc comments, keyed by method name. A sample
// without input reuses the input of the previous sample in the same file.
func extractSamples(src fs.FS) (map[string]sample, error) {
	names, err := fs.Glob(src, "*.go")
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	samples := make(map[string]sample)
	for _, name := range names {
		b, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, name, b, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s to extract samples: %w", name, err)
		}
		var lastInput string
		for _, d := range f.Decls {
			fd, ok := d.(*ast.FuncDecl)
			if !ok || fd.Doc == nil {
				continue
			}
			for _, c := range fd.Doc.List {
				s, ok := parseSample(c.Text)
				if ok {
					s.input = Or(s.input, lastInput)
					samples[fd.Name.Name] = s
					lastInput = s.input
					break
				}
			}
		}
	}
	return samples, nil
}

// Puzzle is the input of one puzzle part. Solvers embed a *Puzzle; the
// runner fills it in before calling the solver method.
type Puzzle struct {
	Year       int
	Day        int
	SampleMode bool

	solver partSolver
	input  []byte
	logger *log.Logger // nil unless debugging
}

// NewPuzzle returns a Puzzle over input, for driving solvers directly.
func NewPuzzle(input string) *Puzzle {
	return &Puzzle{input: []byte(input)}
}

// Lines returns the lines of the input, without line endings. The
// sequence may be ranged over more than once.
func (p *Puzzle) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := p.input
		for len(rest) > 0 {
			var line []byte
			line, rest, _ = bytes.Cut(rest, []byte("\n"))
			if !yield(string(bytes.TrimSuffix(line, []byte("\r")))) {
				return
			}
		}
	}
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	y := -1
	for line := range p.Lines() {
		y++
		onLine(y, line)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Fingerprint returns a hash of the input, so a debug run can be tied to
// the exact bytes it read.
func (p *Puzzle) Fingerprint() deephash.Sum {
	return deephash.Hash(&p.input)
}

func (p *Puzzle) Debugf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
	}
}

func (p *Puzzle) load(cfg Config, samples map[string]sample) error {
	if cfg.Sample {
		s, ok := samples[p.solver.Name]
		if !ok {
			return fmt.Errorf("no sample found for %v", p.solver.Name)
		}
		p.input = []byte(s.input)
		return nil
	}
	f, err := os.Open(filepath.Join(cfg.InputDir, fmt.Sprintf("day%02d.txt", p.Day)))
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	defer f.Close()
	b, err := readInput(f)
	if err != nil {
		return fmt.Errorf("reading input %s: %w", f.Name(), err)
	}
	p.input = b
	return nil
}

// readInput reads all lines of r, normalizing line endings to "\n".
func readInput(r io.Reader) ([]byte, error) {
	var b bytes.Buffer
	for line, err := range Lines(r) {
		if err != nil {
			return nil, err
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

type partSolver struct {
	Day  int
	Part int
	Name string // method name
	ID   string // command-line identifier
}

// partID returns the command-line identifier of a puzzle part: the
// two-digit day, with every part after the first suffixed by a letter
// ("01", "01b", "01c", ...).
func partID(day, part int) string {
	id := fmt.Sprintf("%02d", day)
	if part > 1 {
		id += string(rune('a' + part - 1))
	}
	return id
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+)$`)

var solverMethodType = reflect.TypeOf(func() (any, error) { return nil, nil })

// extractMethods finds the methods of x named D{day}p{part}. The methods
// must have the signature func() (any, error).
func extractMethods(x any) (map[string]partSolver, error) {
	v := reflect.ValueOf(x)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("got solver %T; want pointer to struct", x)
	}
	if f, ok := v.Elem().Type().FieldByName("Puzzle"); !ok || f.Type != reflect.TypeOf((*Puzzle)(nil)) {
		return nil, fmt.Errorf("solver %T does not embed *aoc.Puzzle", x)
	}
	vt := v.Type()
	parts := make(map[string]partSolver)
	for i := 0; i < vt.NumMethod(); i++ {
		mt := vt.Method(i)
		matches := methodRx.FindStringSubmatch(mt.Name)
		if len(matches) != 3 {
			continue
		}
		if got := v.Method(i).Type(); got != solverMethodType {
			return nil, fmt.Errorf("method %s has type %v; want %v", mt.Name, got, solverMethodType)
		}
		ps := partSolver{
			Day:  Int(matches[1]),
			Part: Int(matches[2]),
			Name: mt.Name,
		}
		ps.ID = partID(ps.Day, ps.Part)
		if dup, ok := parts[ps.ID]; ok {
			return nil, fmt.Errorf("methods %s and %s both map to %q", dup.Name, ps.Name, ps.ID)
		}
		parts[ps.ID] = ps
	}
	return parts, nil
}

// Config is the run configuration, built once at startup.
type Config struct {
	Name     string // program name, for usage output
	InputDir string // directory holding day%02d.txt input files
	Sample   bool   // run against the doc comment sample and check its answer
	Debug    bool

	Stdout io.Writer
	Stderr io.Writer
}

// ParseConfig parses command-line flags into a Config. It returns the
// remaining positional arguments.
func ParseConfig(name string, args []string, stdout, stderr io.Writer) (Config, []string, error) {
	cfg := Config{
		Name:   name,
		Stdout: stdout,
		Stderr: stderr,
	}
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&cfg.InputDir, "input-dir", "inputs", "directory containing dayNN.txt inputs")
	flags.BoolVar(&cfg.Sample, "sample", false, "run against the sample from the solver's doc comment")
	flags.BoolVar(&cfg.Debug, "debug", false, "debug mode")
	if err := flags.Parse(args); err != nil {
		return Config{}, nil, err
	}
	return cfg, flags.Args(), nil
}

// Registry maps puzzle identifiers to the solver methods of one program.
type Registry struct {
	year    int
	solver  reflect.Value // pointer to the solver struct
	parts   map[string]partSolver
	samples map[string]sample
}

// NewRegistry registers the D{day}p{part} methods of slvr, which must be a
// pointer to a struct embedding *Puzzle. Samples are read from the doc
// comments of the Go sources in src.
func NewRegistry(year int, src fs.FS, slvr any) (*Registry, error) {
	parts, err := extractMethods(slvr)
	if err != nil {
		return nil, err
	}
	samples, err := extractSamples(src)
	if err != nil {
		return nil, err
	}
	return &Registry{
		year:    year,
		solver:  reflect.ValueOf(slvr),
		parts:   parts,
		samples: samples,
	}, nil
}

// IDs returns the sorted identifiers of all registered puzzle parts.
func (r *Registry) IDs() []string {
	ids := maps.Keys(r.parts)
	slices.Sort(ids)
	return ids
}

// Run runs the puzzle part named by args[0] and prints its answer. It
// returns the process exit code: 0 on success, 1 if the part is missing
// or unknown, 2 if the part failed.
func (r *Registry) Run(cfg Config, args []string) int {
	if len(args) == 0 {
		r.usage(cfg)
		return 1
	}
	ps, ok := r.parts[args[0]]
	if !ok {
		r.usage(cfg)
		return 1
	}
	got, err := r.solve(cfg, ps)
	if err != nil {
		fmt.Fprintf(cfg.Stderr, "%s: %v\n", ps.ID, err)
		return 2
	}
	printAnswer(cfg.Stdout, got)
	return 0
}

func (r *Registry) solve(cfg Config, ps partSolver) (any, error) {
	p := &Puzzle{
		Year:       r.year,
		Day:        ps.Day,
		SampleMode: cfg.Sample,
		solver:     ps,
	}
	if cfg.Debug {
		p.logger = log.New(cfg.Stderr, "", 0)
	}
	if err := p.load(cfg, r.samples); err != nil {
		return nil, err
	}
	p.Debugf("%d day %d part %d: %d bytes of input, fingerprint %v", p.Year, ps.Day, ps.Part, len(p.input), p.Fingerprint())

	r.solver.Elem().FieldByName("Puzzle").Set(reflect.ValueOf(p))
	fn := r.solver.MethodByName(ps.Name).Interface().(func() (any, error))

	t0 := time.Now()
	got, err := fn()
	if err != nil {
		return nil, err
	}
	p.Debugf("%d day %d part %d: took %v", p.Year, ps.Day, ps.Part, time.Since(t0).Round(time.Microsecond))
	if cfg.Sample {
		if want := r.samples[ps.Name].want; fmt.Sprint(got) != want {
			return nil, fmt.Errorf("sample: got %v ❌; want %v", got, want)
		}
		p.Debugf("%d day %d part %d: sample ✅", p.Year, ps.Day, ps.Part)
	}
	return got, nil
}

func (r *Registry) usage(cfg Config) {
	fmt.Fprintf(cfg.Stdout, "Usage: %s [flags] <NN>\n", cfg.Name)
	fmt.Fprintf(cfg.Stdout, "Puzzles: %s\n", strings.Join(r.IDs(), " "))
}

// printAnswer prints v framed by dashed lines as wide as the message.
func printAnswer(w io.Writer, v any) {
	answer := fmt.Sprintf(" The answer is %v ", v)
	sep := strings.Repeat("-", len(answer))
	fmt.Fprintf(w, "\n%s\n%s\n%s\n\n", sep, answer, sep)
}

// Main registers slvr, runs the part named on the command line and exits.
func Main(year int, src fs.FS, slvr any) {
	r, err := NewRegistry(year, src, slvr)
	if err != nil {
		log.Fatalf("aoc: %v", err)
	}
	cfg, args, err := ParseConfig(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(2)
	}
	os.Exit(r.Run(cfg, args))
}

// maxLineSize is the longest line Lines accepts.
const maxLineSize = 1 << 20

// Lines returns the lines of r, without line endings. If reading r fails,
// or a line is longer than 1 MiB, the sequence ends with the error.
func Lines(r io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		s := bufio.NewScanner(r)
		s.Buffer(nil, maxLineSize)
		for s.Scan() {
			if !yield(s.Text(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield("", err)
		}
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// Atoi parses s, ignoring surrounding whitespace.
func Atoi(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Int returns the int value of the string. It panics if s is not a number.
func Int(s string) int {
	return MustGet(Atoi(s))
}
