package hydraulic

// BoundaryConstrainedProfile builds the backward profile anchored at
// finalHead, overlays every known-head pump, then solves the head of the
// single unknown-head pump so the first sample matches
// initialHead + Z[0] exactly, and inserts it. Both boundaries end up
// satisfied: the far end is preserved by every insertion, the near end is
// closed by the solved pump. The pump list must contain exactly one pump with
// Unknown set; anything else is a configuration error.
//
// The returned pump list carries the known pumps in ascending position order
// followed by the solved pump with its computed head.
func BoundaryConstrainedProfile(terrain Terrain, fluid Fluid, pipe Pipe, initialHead, finalHead float64, pumps []Pump) (Result, error) {
	var (
		known   []Pump
		unknown []Pump
	)
	for _, pm := range pumps {
		if pm.Unknown {
			unknown = append(unknown, pm)
		} else {
			known = append(known, pm)
		}
	}
	if len(unknown) != 1 {
		return Result{}, ErrUnknownPumpCount
	}

	res, err := BackwardProfile(terrain, fluid, pipe, finalHead, known)
	if err != nil {
		return Result{}, err
	}

	// The surplus of the current first head over the desired one is exactly
	// the head the missing pump must deliver.
	gap := res.Profile.StartHead() - (initialHead + terrain.Z[0])
	solved := Pump{Position: unknown[0].Position, Head: gap}

	prof, err := res.Profile.InsertPump(solved.Position, solved.Head)
	if err != nil {
		return Result{}, err
	}

	// res.Pumps is already position-ordered; the solved pump goes last.
	resolved := append(append([]Pump(nil), res.Pumps...), solved)

	res.Profile = prof
	res.Pumps = resolved

	return res, nil
}
