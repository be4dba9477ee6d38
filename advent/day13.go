package main

import (
	"errors"
	"sort"
	"strings"
)

func init() {
	register("13", day13)
}

func day13(p *puzzle) (answer, error) {
	tracks, carts := parseTracks(p.text)
	if len(carts) < 2 {
		return answer{}, errors.New("need at least two carts")
	}
	first, err := firstCrash(tracks, carts)
	if err != nil {
		return answer{}, err
	}
	tracks, carts = parseTracks(p.text)
	last, err := lastCart(tracks, carts)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(first, last), nil
}

var (
	cartUp    = vec2{0, -1}
	cartDown  = vec2{0, 1}
	cartLeft  = vec2{-1, 0}
	cartRight = vec2{1, 0}
)

type cart struct {
	pos     vec2
	dir     vec2
	turns   int // intersections passed
	crashed bool
}

// Turning left or right with y pointing down.
func (c *cart) turnLeft()  { c.dir = vec2{c.dir.y, -c.dir.x} }
func (c *cart) turnRight() { c.dir = vec2{-c.dir.y, c.dir.x} }

func (c *cart) move(tracks map[vec2]byte) {
	c.pos = c.pos.add(c.dir)
	switch tracks[c.pos] {
	case '/':
		c.dir = vec2{-c.dir.y, -c.dir.x}
	case '\\':
		c.dir = vec2{c.dir.y, c.dir.x}
	case '+':
		switch c.turns % 3 {
		case 0:
			c.turnLeft()
		case 2:
			c.turnRight()
		}
		c.turns++
	}
}

// parseTracks records the curves and intersections of the track map,
// which are the only places a cart changes direction.
func parseTracks(s string) (map[vec2]byte, []*cart) {
	tracks := make(map[vec2]byte)
	var carts []*cart
	for y, line := range strings.Split(s, "\n") {
		for x := 0; x < len(line); x++ {
			pos := vec2{x, y}
			switch c := line[x]; c {
			case '/', '\\', '+':
				tracks[pos] = c
			case '^':
				carts = append(carts, &cart{pos: pos, dir: cartUp})
			case 'v':
				carts = append(carts, &cart{pos: pos, dir: cartDown})
			case '<':
				carts = append(carts, &cart{pos: pos, dir: cartLeft})
			case '>':
				carts = append(carts, &cart{pos: pos, dir: cartRight})
			}
		}
	}
	return tracks, carts
}

const maxCartTicks = 1_000_000

// tickCarts moves every cart once, top row first and left to right within a
// row. Carts that collide are marked crashed and the positions of the
// collisions are returned in order.
func tickCarts(tracks map[vec2]byte, carts []*cart) []vec2 {
	sort.Slice(carts, func(i, j int) bool {
		a, b := carts[i].pos, carts[j].pos
		if a.y != b.y {
			return a.y < b.y
		}
		return a.x < b.x
	})
	var crashes []vec2
	for _, c := range carts {
		if c.crashed {
			continue
		}
		c.move(tracks)
		for _, other := range carts {
			if other != c && !other.crashed && other.pos == c.pos {
				c.crashed = true
				other.crashed = true
				crashes = append(crashes, c.pos)
				break
			}
		}
	}
	return crashes
}

func firstCrash(tracks map[vec2]byte, carts []*cart) (vec2, error) {
	for range maxCartTicks {
		if crashes := tickCarts(tracks, carts); len(crashes) > 0 {
			return crashes[0], nil
		}
	}
	return vec2{}, errors.New("carts never crash")
}

func lastCart(tracks map[vec2]byte, carts []*cart) (vec2, error) {
	if len(carts)%2 == 0 {
		return vec2{}, errors.New("an even number of carts can all crash")
	}
	for range maxCartTicks {
		tickCarts(tracks, carts)
		live := carts[:0]
		for _, c := range carts {
			if !c.crashed {
				live = append(live, c)
			}
		}
		carts = live
		if len(carts) == 1 {
			return carts[0].pos, nil
		}
	}
	return vec2{}, errors.New("carts never stop crashing")
}
