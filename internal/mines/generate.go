package mines

import "math/rand/v2"

// placeMines picks p.Mines distinct cells uniformly at random. Sparse grids
// use rejection sampling; grids more than half mined use a partial shuffle
// so the number of draws stays bounded.
func placeMines(p GameParams, r *rand.Rand) []bool {
	grid := make([]bool, p.Size())

	if 2*p.Mines <= p.Size() {
		for placed := 0; placed < p.Mines; {
			row, col := r.IntN(p.Rows), r.IntN(p.Cols)
			if i := row*p.Cols + col; !grid[i] {
				grid[i] = true
				placed++
			}
		}
		return grid
	}

	idx := make([]int, p.Size())
	for i := range idx {
		idx[i] = i
	}
	for k := range p.Mines {
		j := k + r.IntN(len(idx)-k)
		idx[k], idx[j] = idx[j], idx[k]
		grid[idx[k]] = true
	}
	return grid
}
