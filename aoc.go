// Package aoc is a small toolkit for solving Advent of Code puzzles: a
// sample-checking puzzle runner, grid and graph helpers, and a generic
// shortest-path search engine.
package aoc

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"
	"tailscale.com/util/deephash"
)

// ErrSampleMismatch is returned by Run when a part's answer for its sample
// input differs from the want= value in its doc comment.
var ErrSampleMismatch = errors.New("sample answer mismatch")

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(funcName, comment string) (sample, bool) {
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

// extractSamples returns the samples found in the doc comments of the
// functions in src, keyed by function name. A sample without an input
// reuses the input of the previous one.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "aoc.go", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		funcName := fd.Name.Name
		for _, c := range fd.Doc.List {
			s, ok := parseSample(funcName, c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[funcName] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

type Puzzle struct {
	year       int
	day        day
	SampleMode bool

	cfg     Config
	log     zerolog.Logger
	solver  partSolver
	samples map[string]sample
	input   []byte
}

// Day returns the puzzle's day number.
func (p *Puzzle) Day() int {
	return p.day.day
}

func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		name := filepath.Join(p.cfg.InputDir, fmt.Sprint(p.year), fmt.Sprintf("%d.input", p.Day()))
		p.input = MustGet(os.ReadFile(name))
		p.log.Debug().Str("file", name).Str("digest", deephash.Hash(&p.input).String()).Msg("loaded input")
	}
	return p.input
}

// String returns the input with surrounding newlines trimmed.
func (p *Puzzle) String() string {
	return TrimNewlines(string(p.Input()))
}

// Lines returns the lines of the input.
func (p *Puzzle) Lines() []string {
	return strings.Split(p.String(), "\n")
}

// Grid returns the input as a byte grid.
func (p *Puzzle) Grid() Grid[byte] {
	return ParseGrid(p.String())
}

// Param returns the day's config parameter for the current mode, or def.
func (p *Puzzle) Param(name string, def int) int {
	return p.cfg.Param(p.Day(), p.SampleMode, name, def)
}

// Logger returns the logger for the running part.
func (p *Puzzle) Logger() zerolog.Logger {
	return p.log
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

func (p *Puzzle) ForLinesY(onLine func(int, string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	MustDo(s.Err())
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debug logs v at debug level.
func (p *Puzzle) Debug(v ...any) {
	p.log.Debug().Msg(fmt.Sprint(v...))
}

// Debugf logs at debug level, but only while running the sample.
func (p *Puzzle) Debugf(format string, args ...any) {
	if p.SampleMode {
		p.log.Debug().Msgf(format, args...)
	}
}

func (p *Puzzle) Sample() sample {
	sample, ok := p.samples[p.solver.Name]
	if !ok {
		panic(fmt.Sprintf("no sample found for %v", p.solver.Name))
	}
	return sample
}

type day struct {
	day   int
	parts []partSolver
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

// extractMethods collects the methods of x named D{day}p{part}. The methods
// must take no arguments and return any.
func extractMethods(x any) (map[int]day, error) {
	rx := regexp.MustCompile(`^D(\d+)p(\d+.*)$`)
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("solver: got %T; want pointer to struct", x)
	}
	vt := rv.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		matches := rx.FindStringSubmatch(mn)
		if len(matches) != 3 {
			continue
		}
		m, ok := rv.Method(i).Interface().(func() any)
		if !ok {
			return nil, fmt.Errorf("solver method %s: want func() any", mn)
		}
		d := Int(matches[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   m,
			Part: matches[2],
			Name: mn,
		})
	}
	days := make(map[int]day, len(byDays))
	for d, parts := range byDays {
		slices.SortFunc(parts, func(i, j partSolver) int {
			return strings.Compare(i.Part, j.Part)
		})
		days[d] = day{parts: parts, day: d}
	}
	return days, nil
}

// Options selects what Run executes.
type Options struct {
	Day        int // 0 runs every registered day
	Part       string
	OnlySample bool
	SkipSample bool
	Config     Config
}

func runDay(slvr any, opts Options, day day, samples map[string]sample) (err error) {
	p := Puzzle{
		year:    opts.Config.Year,
		day:     day,
		cfg:     opts.Config,
		samples: samples,
	}
	fmt.Println("Running day", day.day)
	reflect.ValueOf(slvr).Elem().FieldByName("Puzzle").Set(reflect.ValueOf(&p))
	for _, ps := range day.parts {
		p.solver = ps
		if opts.Part != "" && ps.Part != opts.Part {
			continue
		}

		for _, sm := range []bool{true, false} {
			if !sm && opts.OnlySample {
				continue
			} else if sm && opts.SkipSample {
				continue
			}
			p.SampleMode = sm
			p.log = log.With().Int("day", day.day).Str("part", ps.Part).Bool("sample", sm).Logger()
			p.log.Debug().Str("func", ps.Name).Msg("running")
			if !sm {
				// Prime the input.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			p.log.Info().Dur("took", took).Msg("solved")
			if sm {
				sample := p.Sample()
				if fmt.Sprint(got) != sample.want {
					fmt.Printf("part %s: %v %s; want %v\n", ps.Part, got, color.Red.Sprint("❌"), sample.want)
					return fmt.Errorf("day %d part %s: %w", day.day, ps.Part, ErrSampleMismatch)
				}
				fmt.Printf("part %s sample: %v %s (%v) \n", ps.Part, got, color.Green.Sprint("✅"), took)
			} else {
				fmt.Printf("part %s: %v (took %v) \n", ps.Part, got, took)
			}
		}
	}
	return nil
}

// Run solves the days registered on slvr, a pointer to a struct embedding
// *Puzzle. src is the solver's source file, from which the samples are
// extracted.
func Run(src []byte, slvr any, opts Options) error {
	samples, err := extractSamples(src)
	if err != nil {
		return err
	}
	days, err := extractMethods(slvr)
	if err != nil {
		return err
	}

	if opts.Day != 0 {
		day, ok := days[opts.Day]
		if !ok {
			return fmt.Errorf("no day %d", opts.Day)
		}
		return runDay(slvr, opts, day, samples)
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	var errs []error
	for _, day := range dayNums {
		if err := runDay(slvr, opts, days[day], samples); err != nil {
			errs = append(errs, err)
		}
		fmt.Println()
	}
	return errors.Join(errs...)
}
