package main

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("14", day14)
}

func day14(p *puzzle) (answer, error) {
	input := strings.TrimSpace(p.text)
	n, err := strconv.Atoi(input)
	if err != nil || n < 0 {
		return answer{}, fmt.Errorf("bad recipe count %q", input)
	}
	before, err := recipesBefore(input)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(recipesAfter(n), before), nil
}

// A scoreboard holds recipe scores as digits and the positions of the two elves.
type scoreboard struct {
	scores []byte
	elf0   int
	elf1   int
}

func newScoreboard() *scoreboard {
	return &scoreboard{scores: []byte{3, 7}, elf0: 0, elf1: 1}
}

func (s *scoreboard) step() {
	sum := s.scores[s.elf0] + s.scores[s.elf1]
	if sum >= 10 {
		s.scores = append(s.scores, sum/10)
	}
	s.scores = append(s.scores, sum%10)
	s.elf0 = (s.elf0 + 1 + int(s.scores[s.elf0])) % len(s.scores)
	s.elf1 = (s.elf1 + 1 + int(s.scores[s.elf1])) % len(s.scores)
}

// recipesAfter returns the scores of the ten recipes after the first n.
func recipesAfter(n int) string {
	s := newScoreboard()
	for len(s.scores) < n+10 {
		s.step()
	}
	digits := make([]byte, 10)
	for i, d := range s.scores[n : n+10] {
		digits[i] = '0' + d
	}
	return string(digits)
}

// recipesBefore returns how many recipes appear before the score sequence
// given by the digits of pattern.
func recipesBefore(pattern string) (int, error) {
	if pattern == "" {
		return 0, errors.New("empty pattern")
	}
	want := make([]byte, len(pattern))
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("pattern %q contains a non-digit", pattern)
		}
		want[i] = c - '0'
	}
	s := newScoreboard()
	checked := 0 // scores before this index can't start a match
	for {
		for ; checked+len(want) <= len(s.scores); checked++ {
			if bytes.Equal(s.scores[checked:checked+len(want)], want) {
				return checked, nil
			}
		}
		s.step()
	}
}
