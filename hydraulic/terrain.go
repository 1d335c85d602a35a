package hydraulic

// Interpolate densifies the terrain by linear interpolation, producing
// extra+2 evenly spaced samples per segment inclusive of both endpoints, with
// shared endpoints emitted once. Start and end points are preserved exactly.
// extra <= 0 returns a copy of the terrain unchanged.
func (t Terrain) Interpolate(extra int) Terrain {
	if extra <= 0 || len(t.X) < 2 {
		return Terrain{X: append([]float64(nil), t.X...), Z: append([]float64(nil), t.Z...)}
	}

	n := (len(t.X)-1)*(extra+1) + 1
	xs := make([]float64, 0, n)
	zs := make([]float64, 0, n)

	for i := 0; i < len(t.X)-1; i++ {
		steps := extra + 1
		first := 0
		if i > 0 {
			first = 1 // shared endpoint already emitted by the previous segment
		}
		for j := first; j <= steps; j++ {
			frac := float64(j) / float64(steps)
			xs = append(xs, t.X[i]+(t.X[i+1]-t.X[i])*frac)
			zs = append(zs, t.Z[i]+(t.Z[i+1]-t.Z[i])*frac)
		}
	}

	return Terrain{X: xs, Z: zs}
}
