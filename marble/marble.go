// Package marble plays the elves' marble game from Advent of Code 2018 day 9.
//
// Players take turns placing numbered marbles into a circle. Marble t is
// placed between the marbles 1 and 2 positions clockwise of the current
// marble, unless t is a multiple of 23: then the player keeps t, removes the
// marble 7 positions counter-clockwise of the current marble and keeps that
// too.
package marble

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/cespare/aoc2018/ring"
)

// ErrInvalidArgument is wrapped by errors for unusable game parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// A Circle is the circle of marbles. It must start out holding only marble 0.
// *ring.Ring and *ring.Linked are Circles.
type Circle interface {
	Insert(v int)
	Remove() int
	RotateLeft(n int)
	RotateRight(n int)
}

const (
	scoringMultiple = 23
	removeOffset    = 7
	insertOffset    = 2

	// cancelCheck is how many turns Play runs between checks of its context.
	cancelCheck = 1 << 12
)

// A Game tracks the circle and the score of each player.
type Game struct {
	circle  Circle
	players int
	turn    int
	scores  map[int]int64
}

// NewGame starts a game for the given number of players on c.
func NewGame(players int, c Circle) (*Game, error) {
	if players <= 0 {
		return nil, fmt.Errorf("%w: %d players", ErrInvalidArgument, players)
	}
	return &Game{
		circle:  c,
		players: players,
		scores:  make(map[int]int64),
	}, nil
}

// Turn plays the next turn.
func (g *Game) Turn() {
	g.turn++
	t := g.turn
	if t%scoringMultiple == 0 {
		g.circle.RotateLeft(removeOffset)
		player := (t - 1) % g.players
		g.scores[player] += int64(t) + int64(g.circle.Remove())
		return
	}
	g.circle.RotateRight(insertOffset)
	g.circle.Insert(t)
}

// Turns reports how many turns have been played.
func (g *Game) Turns() int { return g.turn }

// Play plays turns until last have been played in total.
// If ctx is canceled first, Play stops between turns and returns ctx.Err().
func (g *Game) Play(ctx context.Context, last int) error {
	if last < 0 {
		return fmt.Errorf("%w: last marble %d", ErrInvalidArgument, last)
	}
	for g.turn < last {
		if g.turn%cancelCheck == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		g.Turn()
	}
	return nil
}

// HighScore returns the best score so far, or 0 if nobody has scored.
func (g *Game) HighScore() int64 {
	var best int64
	for _, s := range g.scores {
		if s > best {
			best = s
		}
	}
	return best
}

// Scores returns a copy of the scores, keyed by zero-based player number.
// Players who haven't scored are absent.
func (g *Game) Scores() map[int]int64 {
	scores := make(map[int]int64, len(g.scores))
	for p, s := range g.scores {
		scores[p] = s
	}
	return scores
}

// Simulate plays a full game with the given number of players, up to and
// including marble last, and returns the winning score.
func Simulate(players, last int) (int64, error) {
	g, err := NewGame(players, ring.New())
	if err != nil {
		return 0, err
	}
	if err := g.Play(context.Background(), last); err != nil {
		return 0, err
	}
	return g.HighScore(), nil
}

var rulesRegexp = regexp.MustCompile(`(\d+) players?; last marble is worth (\d+) points?`)

// ParseRules extracts the player count and last marble value from a puzzle
// input such as "10 players; last marble is worth 1618 points".
func ParseRules(s string) (players, last int, err error) {
	m := rulesRegexp.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("cannot parse game rules from %q", s)
	}
	if players, err = strconv.Atoi(m[1]); err != nil {
		return 0, 0, err
	}
	if last, err = strconv.Atoi(m[2]); err != nil {
		return 0, 0, err
	}
	return players, last, nil
}
