package main

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
)

func init() {
	register("4", day4)
}

func day4(p *puzzle) (answer, error) {
	guards, err := parseGuardLog(p.text)
	if err != nil {
		return answer{}, err
	}
	if len(guards) == 0 {
		return answer{}, errors.New("no guard ever fell asleep")
	}
	return newAnswer(sleepiestGuard(guards), sleepiestMinute(guards)), nil
}

// sleepMinutes counts, for each minute of the midnight hour,
// how many times a guard was asleep.
type sleepMinutes [60]int

func (s *sleepMinutes) total() int {
	var n int
	for _, c := range s {
		n += c
	}
	return n
}

// max returns the minute spent asleep most often (the earliest on ties) and
// its count.
func (s *sleepMinutes) max() (minute, count int) {
	for m, c := range s {
		if c > count {
			minute, count = m, c
		}
	}
	return minute, count
}

var (
	guardLogRegexp   = regexp.MustCompile(`^\[\d{4}-\d\d-\d\d \d\d:(\d\d)\] (.*)$`)
	beginShiftRegexp = regexp.MustCompile(`^Guard #(\d+) begins shift$`)
)

func parseGuardLog(s string) (map[int]*sleepMinutes, error) {
	lines := inputLines(s)
	// The timestamps sort lexically.
	sort.Strings(lines)

	guards := make(map[int]*sleepMinutes)
	onDuty := -1
	asleepAt := -1
	for _, line := range lines {
		m := guardLogRegexp.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("couldn't parse log %q", line)
		}
		minute, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, err
		}
		switch event := m[2]; event {
		case "falls asleep":
			if onDuty < 0 {
				return nil, fmt.Errorf("nobody on duty at %q", line)
			}
			asleepAt = minute
		case "wakes up":
			if asleepAt < 0 {
				return nil, fmt.Errorf("wake without sleep at %q", line)
			}
			sm := guards[onDuty]
			if sm == nil {
				sm = new(sleepMinutes)
				guards[onDuty] = sm
			}
			for t := asleepAt; t < minute; t++ {
				sm[t]++
			}
			asleepAt = -1
		default:
			gm := beginShiftRegexp.FindStringSubmatch(event)
			if gm == nil {
				return nil, fmt.Errorf("couldn't parse event %q", event)
			}
			id, err := strconv.Atoi(gm[1])
			if err != nil {
				return nil, err
			}
			onDuty = id
			asleepAt = -1
		}
	}
	return guards, nil
}

func sortedGuardIDs(guards map[int]*sleepMinutes) []int {
	ids := make([]int, 0, len(guards))
	for id := range guards {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// sleepiestGuard implements strategy 1: the guard with the most minutes
// asleep, times that guard's most-slept minute.
func sleepiestGuard(guards map[int]*sleepMinutes) int {
	best, bestTotal := -1, -1
	for _, id := range sortedGuardIDs(guards) {
		if total := guards[id].total(); total > bestTotal {
			best, bestTotal = id, total
		}
	}
	minute, _ := guards[best].max()
	return best * minute
}

// sleepiestMinute implements strategy 2: the guard most frequently asleep on
// the same minute, times that minute.
func sleepiestMinute(guards map[int]*sleepMinutes) int {
	best, bestMinute, bestCount := -1, 0, -1
	for _, id := range sortedGuardIDs(guards) {
		if minute, count := guards[id].max(); count > bestCount {
			best, bestMinute, bestCount = id, minute, count
		}
	}
	return best * bestMinute
}
