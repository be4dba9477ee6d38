package main

import (
	"errors"
	"fmt"
	"strconv"
)

func init() {
	register("1", day1)
}

func day1(p *puzzle) (answer, error) {
	changes, err := parseChanges(p.text)
	if err != nil {
		return answer{}, err
	}
	freq, err := firstRepeatedFrequency(changes)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(sumInts(changes), freq), nil
}

func parseChanges(s string) ([]int, error) {
	var changes []int
	for _, line := range inputLines(s) {
		n, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("bad frequency change: %s", err)
		}
		changes = append(changes, n)
	}
	return changes, nil
}

func sumInts(ns []int) int {
	var sum int
	for _, n := range ns {
		sum += n
	}
	return sum
}

var errNoRepeat = errors.New("frequency never repeats")

// firstRepeatedFrequency applies changes cyclically, starting from 0, and
// returns the first running total that has been seen before.
func firstRepeatedFrequency(changes []int) (int, error) {
	if len(changes) == 0 {
		return 0, errNoRepeat
	}
	// Each pass shifts every running total by the sum of the changes, so two
	// totals more than (max-min)/|drift| passes apart can never collide.
	drift := sumInts(changes)
	lo, hi, freq := 0, 0, 0
	for _, c := range changes {
		freq += c
		lo = min(lo, freq)
		hi = max(hi, freq)
	}
	passes := 2
	if drift != 0 {
		passes += (hi - lo) / abs(drift)
	}

	seen := map[int]struct{}{0: {}}
	freq = 0
	for range passes {
		for _, c := range changes {
			freq += c
			if _, ok := seen[freq]; ok {
				return freq, nil
			}
			seen[freq] = struct{}{}
		}
	}
	return 0, errNoRepeat
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
