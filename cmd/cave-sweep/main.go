// Command cave-sweep generates many caves per parameter combination and ranks
// the combinations by how connected their open space is.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"time"

	"cavegen/pkg/cave"
)

func main() {
	seeds := flag.Int("seeds", 16, "maps generated per parameter set")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 80, "grid width")
	height := flag.Int("h", 80, "grid height")
	top := flag.Int("top", 10, "number of ranked results to print")
	flag.Parse()

	base := cave.DefaultParams()
	base.Width, base.Height = *width, *height
	sets := combinations(base)

	fmt.Printf("Sweeping %d parameter sets (%d seeds each, %d workers)\n", len(sets), *seeds, *workers)

	seedList := make([]int64, *seeds)
	for i := range seedList {
		seedList[i] = int64(i + 1)
	}

	start := time.Now()
	all, err := sweep(context.Background(), sets, seedList, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", min(*top, len(all)), elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < *top; i++ {
		fmt.Printf("%2d) %s\n", i+1, all[i])
	}
}

func combinations(base cave.Params) []cave.Params {
	var sets []cave.Params
	for _, spawn := range []float64{45, 50, 55, 60, 65, 70} {
		for _, create := range []int{4, 5} {
			for _, destroy := range []int{3, 4, 5} {
				for _, iterations := range []int{3, 5, 8} {
					p := base
					p.SpawnChance = spawn
					p.CreateLimit = create
					p.DestroyLimit = destroy
					p.Iterations = iterations
					sets = append(sets, p)
				}
			}
		}
	}
	return sets
}

// sweep runs every set over seeds and ranks the summaries, most connected
// open space first.
func sweep(ctx context.Context, sets []cave.Params, seeds []int64, workers int) ([]summary, error) {
	all := make([]summary, 0, len(sets))
	for _, p := range sets {
		results, err := cave.GenerateMany(ctx, p, seeds, workers)
		if err != nil {
			return nil, fmt.Errorf("%+v: %w", p, err)
		}
		all = append(all, summarize(p, results))
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].mean.largestOpen > all[j].mean.largestOpen })
	return all, nil
}
