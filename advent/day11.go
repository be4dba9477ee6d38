package main

import (
	"fmt"
	"strconv"
	"strings"
)

func init() {
	register("11", day11)
}

func day11(p *puzzle) (answer, error) {
	serial, err := strconv.Atoi(strings.TrimSpace(p.text))
	if err != nil {
		return answer{}, fmt.Errorf("bad grid serial number: %s", err)
	}
	g := newPowerGrid(serial)
	x, y, _ := g.best(3, 3)
	x2, y2, size := g.best(1, gridSize)
	return newAnswer(fmt.Sprintf("%d,%d", x, y), fmt.Sprintf("%d,%d,%d", x2, y2, size)), nil
}

const gridSize = 300

func cellPower(x, y, serial int) int {
	rack := x + 10
	return (rack*y+serial)*rack/100%10 - 5
}

// A powerGrid is a summed-area table of the fuel cell power levels:
// sat[x][y] is the total power of all cells (x', y') with x' <= x and y' <= y.
// Row and column 0 are zero.
type powerGrid struct {
	sat [gridSize + 1][gridSize + 1]int
}

func newPowerGrid(serial int) *powerGrid {
	g := new(powerGrid)
	for x := 1; x <= gridSize; x++ {
		for y := 1; y <= gridSize; y++ {
			g.sat[x][y] = cellPower(x, y, serial) + g.sat[x-1][y] + g.sat[x][y-1] - g.sat[x-1][y-1]
		}
	}
	return g
}

// square returns the total power of the size x size square
// whose top-left cell is (x, y).
func (g *powerGrid) square(x, y, size int) int {
	x1, y1 := x+size-1, y+size-1
	return g.sat[x1][y1] - g.sat[x-1][y1] - g.sat[x1][y-1] + g.sat[x-1][y-1]
}

// best finds the square with the most power among sizes in [minSize, maxSize].
// Ties go to the first found, scanning by x, then y, then size.
func (g *powerGrid) best(minSize, maxSize int) (x, y, size int) {
	bestPower := 0
	found := false
	for cx := 1; cx <= gridSize; cx++ {
		for cy := 1; cy <= gridSize; cy++ {
			limit := min(maxSize, gridSize+1-max(cx, cy))
			for s := minSize; s <= limit; s++ {
				if p := g.square(cx, cy, s); !found || p > bestPower {
					x, y, size, bestPower, found = cx, cy, s, p, true
				}
			}
		}
	}
	return x, y, size
}
