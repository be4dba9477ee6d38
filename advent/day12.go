package main

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
)

func init() {
	register("12", day12)
}

func day12(p *puzzle) (answer, error) {
	generations, err := p.int64Param("generations", 50_000_000_000)
	if err != nil {
		return answer{}, err
	}
	pots, rules, err := parsePots(p.text)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(potSum(pots, rules, 20), potSum(pots, rules, generations)), nil
}

// potRules holds the 5-pot neighborhoods, packed into 5 bits with the
// leftmost pot as the high bit, that produce a plant.
type potRules [32]bool

// A potRow is a run of pots. plants[i] reports whether pot offset+i has a
// plant. The first and last pots in plants always hold plants.
type potRow struct {
	offset int64
	plants []bool
}

var (
	initialPotsRegexp = regexp.MustCompile(`^initial state: ([#.]+)$`)
	potRuleRegexp     = regexp.MustCompile(`^([#.]{5}) => ([#.])$`)
)

func parsePots(s string) (potRow, *potRules, error) {
	lines := inputLines(s)
	if len(lines) == 0 {
		return potRow{}, nil, errors.New("empty input")
	}
	m := initialPotsRegexp.FindStringSubmatch(lines[0])
	if m == nil {
		return potRow{}, nil, fmt.Errorf("couldn't parse initial state %q", lines[0])
	}
	plants := make([]bool, len(m[1]))
	for i := range plants {
		plants[i] = m[1][i] == '#'
	}
	rules := new(potRules)
	for _, line := range lines[1:] {
		rm := potRuleRegexp.FindStringSubmatch(line)
		if rm == nil {
			return potRow{}, nil, fmt.Errorf("couldn't parse rule %q", line)
		}
		if rm[2] != "#" {
			continue
		}
		var key int
		for i := 0; i < 5; i++ {
			key <<= 1
			if rm[1][i] == '#' {
				key |= 1
			}
		}
		rules[key] = true
	}
	if rules[0] {
		return potRow{}, nil, errors.New("empty pots sprout plants: the row would be infinite")
	}
	return trimPots(potRow{plants: plants}), rules, nil
}

func trimPots(r potRow) potRow {
	i := 0
	for i < len(r.plants) && !r.plants[i] {
		i++
	}
	j := len(r.plants)
	for j > i && !r.plants[j-1] {
		j--
	}
	return potRow{offset: r.offset + int64(i), plants: r.plants[i:j]}
}

func (r potRow) next(rules *potRules) potRow {
	// A plant can appear at most two pots beyond either end.
	n := len(r.plants)
	next := make([]bool, n+4)
	var key int
	for i := 0; i < n+4; i++ {
		// Slide pot i (in r.plants coordinates) into the window,
		// whose center is then pot i-2.
		key = (key << 1) & 0x1f
		if i < n && r.plants[i] {
			key |= 1
		}
		next[i] = rules[key]
	}
	// next[i] is the new state of pot i-2, which sits at offset+i-2.
	return trimPots(potRow{offset: r.offset - 2, plants: next})
}

func (r potRow) sum() int64 {
	var sum int64
	for i, p := range r.plants {
		if p {
			sum += r.offset + int64(i)
		}
	}
	return sum
}

func (r potRow) count() int64 {
	var n int64
	for _, p := range r.plants {
		if p {
			n++
		}
	}
	return n
}

// potSum returns the sum of the numbers of the pots holding plants after the
// given number of generations. Once a generation is just the previous one
// shifted, every later generation shifts the same way, so the rest is
// extrapolated.
func potSum(r potRow, rules *potRules, generations int64) int64 {
	for g := int64(0); g < generations; g++ {
		next := r.next(rules)
		if bytes.Equal(packPots(next.plants), packPots(r.plants)) {
			shift := next.offset - r.offset
			remaining := generations - g
			return r.sum() + remaining*shift*r.count()
		}
		r = next
	}
	return r.sum()
}

func packPots(plants []bool) []byte {
	b := make([]byte, len(plants))
	for i, p := range plants {
		if p {
			b[i] = '#'
		} else {
			b[i] = '.'
		}
	}
	return b
}
