package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

func init() {
	register("6", day6)
}

func day6(p *puzzle) (answer, error) {
	limit, err := p.intParam("distance", 10000)
	if err != nil {
		return answer{}, err
	}
	points, err := parsePoints(p.text)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(largestFiniteArea(points), safeRegionSize(points, limit)), nil
}

var pointRegexp = regexp.MustCompile(`^(\d+),\s*(\d+)$`)

func parsePoints(s string) ([]vec2, error) {
	var points []vec2
	for _, line := range inputLines(s) {
		m := pointRegexp.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("couldn't parse coordinate %q", line)
		}
		x, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, err
		}
		y, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, err
		}
		points = append(points, vec2{x, y})
	}
	if len(points) == 0 {
		return nil, errors.New("no coordinates")
	}
	return points, nil
}

type bounds struct {
	min, max vec2
}

func boundsOf(points []vec2) bounds {
	b := bounds{points[0], points[0]}
	for _, p := range points[1:] {
		b.min.x = min(b.min.x, p.x)
		b.min.y = min(b.min.y, p.y)
		b.max.x = max(b.max.x, p.x)
		b.max.y = max(b.max.y, p.y)
	}
	return b
}

func (b bounds) onEdge(v vec2) bool {
	return v.x == b.min.x || v.x == b.max.x || v.y == b.min.y || v.y == b.max.y
}

func manhattan(a, b vec2) int {
	return abs(a.x-b.x) + abs(a.y-b.y)
}

// closest returns the index of the point uniquely closest to v,
// or -1 if there is a tie.
func closest(points []vec2, v vec2) int {
	best, bestDist := -1, -1
	for i, p := range points {
		d := manhattan(p, v)
		switch {
		case bestDist < 0 || d < bestDist:
			best, bestDist = i, d
		case d == bestDist:
			best = -1
		}
	}
	return best
}

// largestFiniteArea finds the size of the largest region closest to a
// single point, ignoring regions that extend forever. Any region reaching
// the bounding box of the points is infinite.
func largestFiniteArea(points []vec2) int {
	b := boundsOf(points)
	areas := make([]int, len(points))
	infinite := make([]bool, len(points))
	for x := b.min.x; x <= b.max.x; x++ {
		for y := b.min.y; y <= b.max.y; y++ {
			v := vec2{x, y}
			i := closest(points, v)
			if i < 0 {
				continue
			}
			if b.onEdge(v) {
				infinite[i] = true
			}
			areas[i]++
		}
	}
	var best int
	for i, a := range areas {
		if !infinite[i] {
			best = max(best, a)
		}
	}
	return best
}

// safeRegionSize counts locations whose total distance to all points is
// less than limit. Only the bounding box is searched.
func safeRegionSize(points []vec2, limit int) int {
	b := boundsOf(points)
	var n int
	for x := b.min.x; x <= b.max.x; x++ {
		for y := b.min.y; y <= b.max.y; y++ {
			v := vec2{x, y}
			var total int
			for _, p := range points {
				total += manhattan(p, v)
			}
			if total < limit {
				n++
			}
		}
	}
	return n
}
