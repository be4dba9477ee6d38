package main

import (
	"bytes"
	"errors"
)

func init() {
	register("5", day5)
}

func day5(p *puzzle) (answer, error) {
	polymer := bytes.TrimSpace([]byte(p.text))
	for _, c := range polymer {
		if lower(c) < 'a' || lower(c) > 'z' {
			return answer{}, errors.New("polymer contains a non-letter unit")
		}
	}
	return newAnswer(len(react(polymer, 0)), shortestImproved(polymer)), nil
}

// react fully reacts polymer, skipping every unit of type skip (in either
// case). Pass skip = 0 to keep all units.
func react(polymer []byte, skip byte) []byte {
	var stack []byte
	for _, c := range polymer {
		if skip != 0 && lower(c) == skip {
			continue
		}
		if n := len(stack); n > 0 && reacts(stack[n-1], c) {
			stack = stack[:n-1]
			continue
		}
		stack = append(stack, c)
	}
	return stack
}

func shortestImproved(polymer []byte) int {
	// Removing a unit from the already-reacted polymer gives the same result
	// and is much faster.
	reacted := react(polymer, 0)
	best := len(reacted)
	for unit := byte('a'); unit <= 'z'; unit++ {
		best = min(best, len(react(reacted, unit)))
	}
	return best
}

func reacts(a, b byte) bool {
	return a != b && lower(a) == lower(b)
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
