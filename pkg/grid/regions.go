package grid

// Regions finds the 8-connected components of cells holding s. Each component
// is a slice of row-major cell indices in BFS order; components are ordered by
// their first cell in row-major order.
//
// Time: O(W·H·8), Memory: O(W·H).
func (g *Grid) Regions(s State) [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	queue := make([]int, 0, 64)
	for i0, c := range g.cells {
		if c != s || seen[i0] {
			continue
		}
		seen[i0] = true
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := u%g.W, u/g.W
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					vx, vy := ux+dx, uy+dy
					if !g.InBounds(vx, vy) {
						continue
					}
					v := g.Index(vx, vy)
					if seen[v] || g.cells[v] != s {
						continue
					}
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		comp := make([]int, len(queue))
		copy(comp, queue)
		comps = append(comps, comp)
	}
	return comps
}
