package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

func init() {
	register("3", day3)
}

func day3(p *puzzle) (answer, error) {
	claims, err := parseClaims(p.text)
	if err != nil {
		return answer{}, err
	}
	fabric := make(map[vec2]int)
	for _, c := range claims {
		c.each(func(v vec2) { fabric[v]++ })
	}
	var overlap int
	for _, n := range fabric {
		if n >= 2 {
			overlap++
		}
	}
	id, err := intactClaim(claims, fabric)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(overlap, id), nil
}

type claim struct {
	id            int
	x, y          int
	width, height int
}

func (c claim) each(fn func(vec2)) {
	for x := c.x; x < c.x+c.width; x++ {
		for y := c.y; y < c.y+c.height; y++ {
			fn(vec2{x, y})
		}
	}
}

var claimRegexp = regexp.MustCompile(`#(\d+)\s@\s(\d+),(\d+):\s(\d+)x(\d+)`)

func parseClaims(s string) ([]claim, error) {
	var claims []claim
	for _, line := range inputLines(s) {
		m := claimRegexp.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("couldn't parse claim %q", line)
		}
		var ns [5]int
		for i := range ns {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, err
			}
			ns[i] = n
		}
		claims = append(claims, claim{
			id:     ns[0],
			x:      ns[1],
			y:      ns[2],
			width:  ns[3],
			height: ns[4],
		})
	}
	return claims, nil
}

func intactClaim(claims []claim, fabric map[vec2]int) (int, error) {
	for _, c := range claims {
		intact := true
		c.each(func(v vec2) {
			if fabric[v] != 1 {
				intact = false
			}
		})
		if intact {
			return c.id, nil
		}
	}
	return 0, errors.New("all claims overlap")
}

type vec2 struct {
	x, y int
}

func (v vec2) add(v1 vec2) vec2 {
	return vec2{v.x + v1.x, v.y + v1.y}
}

func (v vec2) scalarMul(n int) vec2 {
	return vec2{v.x * n, v.y * n}
}

func (v vec2) String() string {
	return fmt.Sprintf("%d,%d", v.x, v.y)
}
