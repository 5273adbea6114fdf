package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		comment string
		want    sample
	}{
		{
			comment: `/*
want=1

some-input
*/`,
			want: sample{
				want: "1",
				input: `some-input
`,
			},
		},

		{
			comment: `/*
want=1234

multi-line-input

with-blank-line
*/`,
			want: sample{
				want: "1234",
				input: `multi-line-input

with-blank-line
`,
			},
		},
		{
			comment: `// want=45000`,
			want: sample{
				want: "45000",
			},
		},
	}

	for _, tt := range tests {
		if got, ok := parseSample(tt.comment); !ok || got != tt.want {
			t.Errorf("parseSample = %+v, want %+v", got, tt.want)
		}
	}

	if got, ok := parseSample("// D1p1 solves part one."); ok {
		t.Errorf("parseSample(prose) = %+v, true; want false", got)
	}
}

const testSource = `package main

/*
want=3

a
b
c
*/
func (s testSolver) D1p1() (any, error) { return nil, nil }

// want=abc
func (s testSolver) D1p2() (any, error) { return nil, nil }

// D2p1 has no sample.
func (s testSolver) D2p1() (any, error) { return nil, nil }

/*
want=7

x
*/
func (s testSolver) D3p1() (any, error) { return nil, nil }
`

type testSolver struct {
	*Puzzle
}

func (s testSolver) D1p1() (any, error) {
	n := 0
	for range s.Lines() {
		n++
	}
	return n, nil
}

func (s testSolver) D1p2() (any, error) {
	var b strings.Builder
	s.ForLines(func(line string) {
		b.WriteString(line)
	})
	return b.String(), nil
}

func (s testSolver) D2p1() (any, error) {
	return nil, errors.New("malformed line 3")
}

// D3p1 returns a wrong answer for its sample.
func (s testSolver) D3p1() (any, error) {
	return 8, nil
}

func (s testSolver) Helper() int { return 0 }

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	src := fstest.MapFS{
		"solver.go": {Data: []byte(testSource)},
		"notes.txt": {Data: []byte("want=1\n\nignored\n")},
	}
	r, err := NewRegistry(2022, src, &testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestExtractSamples(t *testing.T) {
	got, err := extractSamples(fstest.MapFS{"solver.go": {Data: []byte(testSource)}})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]sample{
		"D1p1": {want: "3", input: "a\nb\nc\n"},
		"D1p2": {want: "abc", input: "a\nb\nc\n"},
		"D3p1": {want: "7", input: "x\n"},
	}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(sample{})); diff != "" {
		t.Errorf("extractSamples mismatch (-want +got):\n%s", diff)
	}
}

func TestPartID(t *testing.T) {
	tests := []struct {
		day, part int
		want      string
	}{
		{1, 1, "01"},
		{1, 2, "01b"},
		{12, 1, "12"},
		{25, 3, "25c"},
	}
	for _, tt := range tests {
		if got := partID(tt.day, tt.part); got != tt.want {
			t.Errorf("partID(%d, %d) = %q; want %q", tt.day, tt.part, got, tt.want)
		}
	}
}

type badSignature struct {
	*Puzzle
}

func (badSignature) D1p1() any { return nil }

type noPuzzle struct{}

func (noPuzzle) D1p1() (any, error) { return nil, nil }

func TestExtractMethods(t *testing.T) {
	parts, err := extractMethods(&testSolver{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]partSolver{
		"01":  {Day: 1, Part: 1, Name: "D1p1", ID: "01"},
		"01b": {Day: 1, Part: 2, Name: "D1p2", ID: "01b"},
		"02":  {Day: 2, Part: 1, Name: "D2p1", ID: "02"},
		"03":  {Day: 3, Part: 1, Name: "D3p1", ID: "03"},
	}
	if diff := cmp.Diff(want, parts); diff != "" {
		t.Errorf("extractMethods mismatch (-want +got):\n%s", diff)
	}

	for _, x := range []any{testSolver{}, &badSignature{}, &noPuzzle{}} {
		if _, err := extractMethods(x); err == nil {
			t.Errorf("extractMethods(%T) returned no error", x)
		}
	}
}

func TestRegistryIDs(t *testing.T) {
	got := testRegistry(t).IDs()
	if want := []string{"01", "01b", "02", "03"}; !slices.Equal(got, want) {
		t.Errorf("IDs() = %q; want %q", got, want)
	}
}

func TestParseConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg, args, err := ParseConfig("aoc22", []string{"-sample", "-input-dir", "in", "01b"}, &stdout, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Sample || cfg.Debug || cfg.InputDir != "in" || cfg.Name != "aoc22" {
		t.Errorf("ParseConfig = %+v", cfg)
	}
	if !slices.Equal(args, []string{"01b"}) {
		t.Errorf("args = %q; want [01b]", args)
	}

	cfg, _, err = ParseConfig("aoc22", nil, &stdout, &stderr)
	if err != nil || cfg.InputDir != "inputs" {
		t.Errorf("ParseConfig(nil) = %+v, %v; want InputDir inputs", cfg, err)
	}
	if _, _, err := ParseConfig("aoc22", []string{"-h"}, &stdout, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("ParseConfig(-h) error = %v; want flag.ErrHelp", err)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day01.txt"), []byte("first\nsecond\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		args       []string
		sample     bool
		debug      bool
		wantCode   int
		wantStdout string
		wantStderr string // substring
	}{
		{
			name:       "answer",
			args:       []string{"01"},
			wantCode:   0,
			wantStdout: "\n-----------------\n The answer is 2 \n-----------------\n\n",
		},
		{
			name:       "part-b",
			args:       []string{"01b"},
			wantCode:   0,
			wantStdout: "\n---------------------------\n The answer is firstsecond \n---------------------------\n\n",
		},
		{
			name:       "sample",
			args:       []string{"01"},
			sample:     true,
			wantCode:   0,
			wantStdout: "\n-----------------\n The answer is 3 \n-----------------\n\n",
		},
		{
			name:       "sample-reused-input",
			args:       []string{"01b"},
			sample:     true,
			wantCode:   0,
			wantStdout: "\n-------------------\n The answer is abc \n-------------------\n\n",
		},
		{
			name:       "debug",
			args:       []string{"01"},
			debug:      true,
			wantCode:   0,
			wantStdout: "\n-----------------\n The answer is 2 \n-----------------\n\n",
			wantStderr: "2022 day 1 part 1: 13 bytes of input, fingerprint ",
		},
		{
			name:       "missing",
			wantCode:   1,
			wantStdout: "Usage: aoc22 [flags] <NN>\nPuzzles: 01 01b 02 03\n",
		},
		{
			name:       "unknown",
			args:       []string{"07"},
			wantCode:   1,
			wantStdout: "Usage: aoc22 [flags] <NN>\nPuzzles: 01 01b 02 03\n",
		},
		{
			name:       "no-input-file",
			args:       []string{"03"},
			wantCode:   2,
			wantStderr: "03: reading input: ",
		},
		{
			name:       "solver-error",
			args:       []string{"02"},
			wantCode:   2,
			wantStderr: "02: malformed line 3",
		},
		{
			name:       "no-sample",
			args:       []string{"02"},
			sample:     true,
			wantCode:   2,
			wantStderr: "no sample found for D2p1",
		},
		{
			name:       "wrong-sample-answer",
			args:       []string{"03"},
			sample:     true,
			wantCode:   2,
			wantStderr: "sample: got 8 ❌; want 7",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			cfg := Config{
				Name:     "aoc22",
				InputDir: dir,
				Sample:   tt.sample,
				Debug:    tt.debug,
				Stdout:   &stdout,
				Stderr:   &stderr,
			}
			if got := testRegistry(t).Run(cfg, tt.args); got != tt.wantCode {
				t.Errorf("Run(%q) = %d; want %d (stderr: %s)", tt.args, got, tt.wantCode, stderr.String())
			}
			if got := stdout.String(); got != tt.wantStdout {
				t.Errorf("stdout = %q; want %q", got, tt.wantStdout)
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q; want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestPuzzleLines(t *testing.T) {
	p := NewPuzzle("a\nb\n\nc")
	want := []string{"a", "b", "", "c"}
	for range 2 {
		if got := slices.Collect(p.Lines()); !slices.Equal(got, want) {
			t.Errorf("Lines() = %q; want %q", got, want)
		}
	}
	var ys []int
	p.ForLinesY(func(y int, _ string) { ys = append(ys, y) })
	if !slices.Equal(ys, []int{0, 1, 2, 3}) {
		t.Errorf("ForLinesY rows = %v; want [0 1 2 3]", ys)
	}
	if p.Fingerprint() != NewPuzzle("a\nb\n\nc").Fingerprint() {
		t.Error("equal inputs have different fingerprints")
	}
	if p.Fingerprint() == NewPuzzle("a\nb\n").Fingerprint() {
		t.Error("different inputs have equal fingerprints")
	}
}

func TestPuzzleLinesCRLF(t *testing.T) {
	got := slices.Collect(NewPuzzle("a\r\nb\r\n").Lines())
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Errorf("Lines() = %q; want %q", got, want)
	}
}

func TestLinesStopsEarly(t *testing.T) {
	r := strings.NewReader("1\n2\n3\n")
	for line, err := range Lines(r) {
		if line != "1" || err != nil {
			t.Errorf("first line = %q, %v; want 1, nil", line, err)
		}
		break
	}
}

var errDiskGone = errors.New("disk gone")

// failingReader returns its data, then fails.
type failingReader struct {
	data string
}

func (r *failingReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, errDiskGone
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestLinesError(t *testing.T) {
	tests := []struct {
		name      string
		r         io.Reader
		wantLines []string
		wantErr   error
	}{
		{
			name:      "read-failure",
			r:         &failingReader{data: "a\nb\n"},
			wantLines: []string{"a", "b"},
			wantErr:   errDiskGone,
		},
		{
			name:      "line-too-long",
			r:         strings.NewReader("short\n" + strings.Repeat("x", maxLineSize+1) + "\n"),
			wantLines: []string{"short"},
			wantErr:   bufio.ErrTooLong,
		},
		{
			name:      "ok",
			r:         strings.NewReader("a\n\nb"),
			wantLines: []string{"a", "", "b"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []string
			var gotErr error
			for line, err := range Lines(tt.r) {
				if err != nil {
					gotErr = err
					continue
				}
				lines = append(lines, line)
			}
			if !slices.Equal(lines, tt.wantLines) {
				t.Errorf("lines = %q; want %q", lines, tt.wantLines)
			}
			if !errors.Is(gotErr, tt.wantErr) {
				t.Errorf("err = %v; want %v", gotErr, tt.wantErr)
			}

		})
	}
}

func TestReadInput(t *testing.T) {
	got, err := readInput(strings.NewReader("a\r\nb"))
	if err != nil || string(got) != "a\nb\n" {
		t.Errorf("readInput = %q, %v; want %q, nil", got, err, "a\nb\n")
	}
	if _, err := readInput(&failingReader{data: "a\n"}); !errors.Is(err, errDiskGone) {
		t.Errorf("readInput error = %v; want %v", err, errDiskGone)
	}
}

// An unreadable input is reported and exits 2 instead of crashing.
func TestRunInputTooLong(t *testing.T) {
	dir := t.TempDir()
	big := "first\n" + strings.Repeat("x", maxLineSize+1) + "\n"
	if err := os.WriteFile(filepath.Join(dir, "day01.txt"), []byte(big), 0644); err != nil {
		t.Fatal(err)
	}
	var stdout, stderr bytes.Buffer
	cfg := Config{
		Name:     "aoc22",
		InputDir: dir,
		Stdout:   &stdout,
		Stderr:   &stderr,
	}
	if got := testRegistry(t).Run(cfg, []string{"01"}); got != 2 {
		t.Errorf("Run = %d; want 2", got)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q; want empty", stdout.String())
	}
	if want := bufio.ErrTooLong.Error(); !strings.Contains(stderr.String(), want) {
		t.Errorf("stderr = %q; want it to contain %q", stderr.String(), want)
	}
}
