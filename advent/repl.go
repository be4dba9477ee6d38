package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// repl reads "<solution> [input]" lines from the terminal and solves each one.
func repl(cfg *config) error {
	var history string
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".advent_history")
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "advent> ",
		HistoryFile: history,
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		if quit := replLine(cfg, os.Stdout, line); quit {
			return nil
		}
	}
}

func replLine(cfg *config, w io.Writer, line string) (quit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprintln(w, "enter <solution> [input]; solutions:", strings.Join(sortedNames(), " "))
		return false
	}
	if len(fields) > 2 {
		fmt.Fprintln(w, "error: too many arguments")
		return false
	}
	var input string
	if len(fields) == 2 {
		input = fields[1]
	}
	if err := runOne(context.Background(), cfg, w, fields[0], input); err != nil {
		fmt.Fprintln(w, "error:", err)
	}
	return false
}
