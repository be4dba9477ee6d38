package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

const defaultInputDir = "input"

// config is the parsed INI file. The global section may set inputdir; each
// [N] section holds settings for day N, including an optional input path.
type config struct {
	file    ini.File
	verbose bool
}

// loadConfig reads the INI file at path. If required is false, a missing
// file yields an empty config.
func loadConfig(path string, required bool) (*config, error) {
	f, err := ini.LoadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &config{file: make(ini.File)}, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	return &config{file: f}, nil
}

func (c *config) inputDir() string {
	if dir, ok := c.file.Get("", "inputdir"); ok {
		return dir
	}
	return defaultInputDir
}

// inputPath locates the input for the named day: the day's input setting,
// or else dayNN under the input directory.
func (c *config) inputPath(name string) string {
	if path, ok := c.file.Get(name, "input"); ok {
		return path
	}
	n, suffix := splitName(name)
	return filepath.Join(c.inputDir(), fmt.Sprintf("day%02d%s", n, suffix))
}

// puzzle loads the input for the named day. If input is empty the configured
// path is used; "-" means stdin.
func (c *config) puzzle(ctx context.Context, name, input string) (*puzzle, error) {
	if input == "" {
		input = c.inputPath(name)
	}
	var b []byte
	var err error
	if input == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(input)
	}
	if err != nil {
		return nil, err
	}
	p := &puzzle{
		ctx:     ctx,
		name:    name,
		text:    string(b),
		params:  c.file[name], // not Section, which writes to the map
		verbose: c.verbose,
	}
	if len(p.params) > 0 {
		p.logf("Parameters: %# v", pretty.Formatter(p.params))
	}
	return p, nil
}

// A puzzle is the input handed to a solver.
type puzzle struct {
	ctx     context.Context
	name    string
	text    string
	params  ini.Section
	verbose bool
}

func (p *puzzle) intParam(key string, def int) (int, error) {
	s, ok := p.params[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad value for %s: %s", key, err)
	}
	return n, nil
}

func (p *puzzle) int64Param(key string, def int64) (int64, error) {
	s, ok := p.params[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("bad value for %s: %s", key, err)
	}
	return n, nil
}

func (p *puzzle) logf(format string, args ...any) {
	if !p.verbose {
		return
	}
	log.Printf("day %s: "+format, append([]any{p.name}, args...)...)
}
