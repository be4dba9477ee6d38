package main

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
)

func init() {
	register("7", day7)
}

func day7(p *puzzle) (answer, error) {
	workers, err := p.intParam("workers", 5)
	if err != nil {
		return answer{}, err
	}
	base, err := p.intParam("base", 60)
	if err != nil {
		return answer{}, err
	}
	if workers < 1 {
		return answer{}, errors.New("need at least one worker")
	}
	steps, err := parseSteps(p.text)
	if err != nil {
		return answer{}, err
	}
	order, _, err := steps.schedule(1, 0)
	if err != nil {
		return answer{}, err
	}
	_, elapsed, err := steps.schedule(workers, base)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(order, elapsed), nil
}

// stepGraph records, for each step, the steps that wait on it.
type stepGraph map[byte][]byte

var stepRegexp = regexp.MustCompile(`^Step ([A-Z]) must be finished before step ([A-Z]) can begin\.$`)

func parseSteps(s string) (stepGraph, error) {
	g := make(stepGraph)
	for _, line := range inputLines(s) {
		m := stepRegexp.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("couldn't parse step %q", line)
		}
		before, after := m[1][0], m[2][0]
		g[before] = append(g[before], after)
		if _, ok := g[after]; !ok {
			g[after] = nil
		}
	}
	return g, nil
}

type stepJob struct {
	step byte
	done int
}

// schedule runs the steps with the given number of workers. Step X takes
// base plus its letter's position in the alphabet (A=1) seconds. Whenever
// workers are idle, they pick up the alphabetically first available steps.
// It returns the order steps were started in and the total time taken.
func (g stepGraph) schedule(workers, base int) (string, int, error) {
	waiting := make(map[byte]int)
	for _, afters := range g {
		for _, a := range afters {
			waiting[a]++
		}
	}
	ready := newMinHeap(func(a, b byte) bool { return a < b })
	for step := range g {
		if waiting[step] == 0 {
			ready.Push(step)
		}
	}

	var (
		order []byte
		busy  []stepJob
		now   int
	)
	for ready.Len() > 0 || len(busy) > 0 {
		for len(busy) < workers && ready.Len() > 0 {
			step := ready.Pop()
			order = append(order, step)
			busy = append(busy, stepJob{step, now + base + int(step-'A') + 1})
		}
		if len(busy) == 0 {
			break
		}
		sort.Slice(busy, func(i, j int) bool { return busy[i].done < busy[j].done })
		now = busy[0].done
		for len(busy) > 0 && busy[0].done == now {
			for _, a := range g[busy[0].step] {
				waiting[a]--
				if waiting[a] == 0 {
					ready.Push(a)
				}
			}
			busy = busy[1:]
		}
	}
	if len(order) != len(g) {
		return "", 0, errors.New("steps have a dependency cycle")
	}
	return string(order), now, nil
}
