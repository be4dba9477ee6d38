package main

import (
	"errors"
	"regexp"
)

func init() {
	register("2", day2)
}

func day2(p *puzzle) (answer, error) {
	ids := boxIDRegexp.FindAllString(p.text, -1)
	common, err := prototypeCommon(ids)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(boxChecksum(ids), common), nil
}

var boxIDRegexp = regexp.MustCompile(`[a-z]+`)

// boxChecksum multiplies the number of ids containing some letter exactly
// twice by the number containing some letter exactly three times.
func boxChecksum(ids []string) int {
	var twos, threes int
	for _, id := range ids {
		var counts [26]int
		for i := 0; i < len(id); i++ {
			counts[id[i]-'a']++
		}
		var two, three bool
		for _, n := range counts {
			switch n {
			case 2:
				two = true
			case 3:
				three = true
			}
		}
		if two {
			twos++
		}
		if three {
			threes++
		}
	}
	return twos * threes
}

// prototypeCommon finds the two ids that differ in exactly one position and
// returns their remaining letters.
func prototypeCommon(ids []string) (string, error) {
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			if len(a) != len(b) {
				continue
			}
			diff := -1
			for j := 0; j < len(a); j++ {
				if a[j] == b[j] {
					continue
				}
				if diff >= 0 {
					diff = -2
					break
				}
				diff = j
			}
			if diff >= 0 {
				return a[:diff] + a[diff+1:], nil
			}
		}
	}
	return "", errors.New("couldn't find the prototype boxes")
}
