package main

import (
	"fmt"

	"cavegen/pkg/cave"
	"cavegen/pkg/grid"
)

// stats summarises one generated map.
type stats struct {
	rings         int
	holes         int
	solidFraction float64
	// largestOpen is the share of open floor in the biggest connected cave.
	largestOpen float64
	caves       int
}

func measure(res *cave.Result) stats {
	var s stats
	for _, c := range res.Contours {
		s.rings += c.Len()
		s.holes += c.Holes()
	}
	g := res.Grid
	total := g.W * g.H
	solid := g.Count(grid.Solid)
	s.solidFraction = float64(solid) / float64(total)

	open := total - solid
	regions := g.Regions(grid.Empty)
	s.caves = len(regions)
	if open > 0 {
		largest := 0
		for _, r := range regions {
			largest = max(largest, len(r))
		}
		s.largestOpen = float64(largest) / float64(open)
	}
	return s
}

// summary averages stats over every seed of one parameter set.
type summary struct {
	params cave.Params
	runs   int
	mean   stats
}

func summarize(p cave.Params, results []*cave.Result) summary {
	sum := summary{params: p, runs: len(results)}
	if len(results) == 0 {
		return sum
	}
	var rings, holes, caves int
	var solid, largest float64
	for _, res := range results {
		s := measure(res)
		rings += s.rings
		holes += s.holes
		caves += s.caves
		solid += s.solidFraction
		largest += s.largestOpen
	}
	n := float64(len(results))
	sum.mean = stats{
		rings:         int(float64(rings)/n + 0.5),
		holes:         int(float64(holes)/n + 0.5),
		caves:         int(float64(caves)/n + 0.5),
		solidFraction: solid / n,
		largestOpen:   largest / n,
	}
	return sum
}

func (s summary) String() string {
	p := s.params
	return fmt.Sprintf("spawn=%.0f create=%d destroy=%d iter=%d | rings=%d holes=%d caves=%d solid=%.2f largestCave=%.2f",
		p.SpawnChance, p.CreateLimit, p.DestroyLimit, p.Iterations,
		s.mean.rings, s.mean.holes, s.mean.caves, s.mean.solidFraction, s.mean.largestOpen)
}
