package main

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

func init() {
	register("10", day10)
}

func day10(p *puzzle) (answer, error) {
	lights, err := parseLights(p.text)
	if err != nil {
		return answer{}, err
	}
	t := convergence(lights)
	return newAnswer(renderLights(lights, t), t), nil
}

type light struct {
	pos vec2
	vel vec2
}

func (l light) at(t int) vec2 {
	return l.pos.add(l.vel.scalarMul(t))
}

var lightRegexp = regexp.MustCompile(`position=<\s*(-?\d+),\s*(-?\d+)>\s*velocity=<\s*(-?\d+),\s*(-?\d+)>`)

func parseLights(s string) ([]light, error) {
	var lights []light
	for _, line := range inputLines(s) {
		m := lightRegexp.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("couldn't parse light %q", line)
		}
		var ns [4]int
		for i := range ns {
			n, err := strconv.Atoi(m[i+1])
			if err != nil {
				return nil, err
			}
			ns[i] = n
		}
		lights = append(lights, light{
			pos: vec2{ns[0], ns[1]},
			vel: vec2{ns[2], ns[3]},
		})
	}
	if len(lights) == 0 {
		return nil, errors.New("no lights")
	}
	return lights, nil
}

func lightBounds(lights []light, t int) bounds {
	points := make([]vec2, len(lights))
	for i, l := range lights {
		points[i] = l.at(t)
	}
	return boundsOf(points)
}

func (b bounds) area() int {
	return (b.max.x - b.min.x) * (b.max.y - b.min.y)
}

// convergence returns the first second at which the lights' bounding box
// stops shrinking. That's when the message is readable.
func convergence(lights []light) int {
	t := 0
	area := lightBounds(lights, 0).area()
	for {
		next := lightBounds(lights, t+1).area()
		if next >= area {
			return t
		}
		t++
		area = next
	}
}

// renderLights draws the lights at second t, one line per row,
// with '#' for a light and '.' for darkness.
func renderLights(lights []light, t int) string {
	b := lightBounds(lights, t)
	lit := make(map[vec2]bool)
	for _, l := range lights {
		lit[l.at(t)] = true
	}
	var sb strings.Builder
	for y := b.min.y; y <= b.max.y; y++ {
		for x := b.min.x; x <= b.max.x; x++ {
			if lit[vec2{x, y}] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
