package ca

// CustomRuleFunc is a user-supplied transition rule. It receives a mutable
// coordinate (modifying *coord relocates the cell in the next buffer — a
// motion rule), the read-only neighborhood sequence, and the focus cell
// pre-populated with its current value (any field may be mutated). An
// error aborts the in-flight step: already-written next entries are
// discarded by virtue of not swapping, and the engine remains in its
// pre-step state.
type CustomRuleFunc[T Cell] func(coord *Coord, neighbors Neighbors[T], focus *T) error

// applyRule computes the new coordinate and new cell value for one focus
// cell under the given rule. For Parity and Majority, the returned
// coordinate always equals c (no motion) and only State is set; every
// other field of T is reset to its zero value, per spec: "other fields
// reset to default."
func applyRule[T Cell](rule RuleType, numStates int, c Coord, neighbors Neighbors[T], focus T, custom CustomRuleFunc[T]) (Coord, T, error) {
	switch rule {
	case Parity:
		sum := 0
		for _, n := range neighbors.Cells {
			sum += n.GetState()
		}
		var v T
		v.SetState(((sum % numStates) + numStates) % numStates)
		return c, v, nil

	case Majority:
		counts := make([]int, numStates)
		for _, n := range neighbors.Cells {
			s := n.GetState()
			if s >= 0 && s < numStates {
				counts[s]++
			}
		}
		best, bestCount := 0, -1
		for s, cnt := range counts {
			if cnt > bestCount {
				best, bestCount = s, cnt
			}
		}
		var v T
		v.SetState(best)
		return c, v, nil

	case Custom:
		if custom == nil {
			return c, focus, NewError(ErrCustomRuleMissing)
		}
		newCoord := c
		newFocus := focus
		if err := custom(&newCoord, neighbors, &newFocus); err != nil {
			return c, focus, err
		}
		return newCoord, newFocus, nil

	default:
		return c, focus, NewError(ErrInvalidState)
	}
}
