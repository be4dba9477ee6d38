package main

import (
	"context"

	"github.com/cespare/aoc2018/marble"
	"github.com/cespare/aoc2018/ring"
	"github.com/dustin/go-humanize"
)

func init() {
	register("9", day9)
}

func day9(p *puzzle) (answer, error) {
	scale, err := p.intParam("scale", 100)
	if err != nil {
		return answer{}, err
	}
	players, last, err := marble.ParseRules(p.text)
	if err != nil {
		return answer{}, err
	}
	score1, err := playMarbles(p, players, last)
	if err != nil {
		return answer{}, err
	}
	score2, err := playMarbles(p, players, last*scale)
	if err != nil {
		return answer{}, err
	}
	return newAnswer(score1, score2), nil
}

func playMarbles(p *puzzle, players, last int) (int64, error) {
	r := ring.New()
	g, err := marble.NewGame(players, r)
	if err != nil {
		return 0, err
	}
	ctx := p.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	p.logf("Playing %s marbles with %d players", humanize.Comma(int64(last)), players)
	if err := g.Play(ctx, last); err != nil {
		return 0, err
	}
	p.logf("Circle ended with %s marbles in %s arena slots",
		humanize.Comma(int64(r.Len())), humanize.Comma(int64(r.Cap())))
	return g.HighScore(), nil
}
