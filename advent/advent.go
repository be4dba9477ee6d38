package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/wait"
	"github.com/felixge/fgprof"
)

const defaultConfig = "advent.ini"

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", defaultConfig, "INI `file` holding input locations and puzzle parameters")
		verbose    = flag.Bool("v", false, "Log parameters and timings")
		profile    = flag.String("fgprof", "", "Write a wall-clock profile of the run to `file`")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	configSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configSet = true
		}
	})
	cfg, err := loadConfig(*configFile, configSet)
	if err != nil {
		log.Fatal(err)
	}
	cfg.verbose = *verbose

	if err := run(cfg, *profile, flag.Args()); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags] <solution> [input]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] all\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s [flags] repl\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	fmt.Fprintln(os.Stderr, strings.Join(sortedNames(), " "))
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

func run(cfg *config, profile string, args []string) (err error) {
	if profile != "" {
		f, ferr := os.Create(profile)
		if ferr != nil {
			return ferr
		}
		stop := fgprof.Start(f, fgprof.FormatPprof)
		defer func() {
			if err1 := stop(); err == nil {
				err = err1
			}
			if err1 := f.Close(); err == nil {
				err = err1
			}
		}()
	}

	switch args[0] {
	case "all":
		return runAll(cfg, os.Stdout)
	case "repl":
		return repl(cfg)
	}
	if len(args) > 2 {
		return errors.New("too many arguments")
	}
	var input string
	if len(args) == 2 {
		input = args[1]
	}
	return runOne(context.Background(), cfg, os.Stdout, args[0], input)
}

func runOne(ctx context.Context, cfg *config, w io.Writer, name, input string) error {
	if _, ok := solutions[name]; !ok {
		return fmt.Errorf("unknown solution %q", name)
	}
	p, err := cfg.puzzle(ctx, name, input)
	if err != nil {
		return err
	}
	a, err := solve(p)
	if err != nil {
		return fmt.Errorf("day %s: %w", name, err)
	}
	a.print(w)
	return nil
}

// runAll solves every registered day concurrently and prints the answers in
// order. Days without an input file are skipped.
func runAll(cfg *config, w io.Writer) error {
	names := sortedNames()
	answers := make([]*answer, len(names))
	var wg wait.Group
	for i, name := range names {
		wg.Go(func(quit <-chan struct{}) error {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				select {
				case <-quit:
					cancel()
				case <-ctx.Done():
				}
			}()
			p, err := cfg.puzzle(ctx, name, "")
			if errors.Is(err, fs.ErrNotExist) {
				log.Printf("Skipping day %s: %s", name, err)
				return nil
			}
			if err != nil {
				return err
			}
			a, err := solve(p)
			if err != nil {
				return fmt.Errorf("day %s: %w", name, err)
			}
			answers[i] = &a
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return err
	}
	for i, a := range answers {
		if a == nil {
			continue
		}
		fmt.Fprintf(w, "day %s\n", names[i])
		a.print(w)
	}
	return nil
}

func solve(p *puzzle) (answer, error) {
	start := time.Now()
	a, err := solutions[p.name](p)
	p.logf("Solved in %s", time.Since(start).Round(time.Millisecond))
	return a, err
}

type answer struct {
	part1 string
	part2 string
}

func newAnswer(part1, part2 any) answer {
	return answer{fmt.Sprint(part1), fmt.Sprint(part2)}
}

func (a answer) print(w io.Writer) {
	for i, part := range []string{a.part1, a.part2} {
		if strings.Contains(part, "\n") {
			fmt.Fprintf(w, "part%d:\n%s", i+1, part)
			if !strings.HasSuffix(part, "\n") {
				fmt.Fprintln(w)
			}
			continue
		}
		fmt.Fprintf(w, "part%d: %s\n", i+1, part)
	}
}

type solver func(*puzzle) (answer, error)

var solutions = make(map[string]solver)

func register(name string, fn solver) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

func sortedNames() []string {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	return names
}

func nameLess(name0, name1 string) bool {
	n0, s0 := splitName(name0)
	n1, s1 := splitName(name1)
	if n0 < n1 {
		return true
	}
	if n0 > n1 {
		return false
	}
	return s0 < s1
}

func splitName(name string) (int, string) {
	i := 0
	for ; i < len(name); i++ {
		c := name[i]
		if c < '0' || c > '9' {
			break
		}
	}
	n, err := strconv.Atoi(name[:i])
	if err != nil {
		panic(err)
	}
	return n, name[i:]
}

// inputLines splits s into lines, trimming surrounding whitespace from each
// and dropping blank ones.
func inputLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
