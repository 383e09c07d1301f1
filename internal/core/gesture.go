package core

// ClassifySwipe turns a pointer drag from (startX, startY) to (endX, endY) into a
// direction action. The axis with the larger displacement wins and the
// displacement along it must exceed threshold. Screen y grows downward, so a
// drag toward smaller y is Up.
func ClassifySwipe(startX, startY, endX, endY, threshold int) (Action, bool) {
	dx := startX - endX
	dy := startY - endY

	if Abs(dx) > Abs(dy) {
		if Abs(dx) <= threshold {
			return ActionNone, false
		}
		if dx > 0 {
			return ActionLeft, true
		}
		return ActionRight, true
	}

	if Abs(dy) <= threshold {
		return ActionNone, false
	}
	if dy > 0 {
		return ActionUp, true
	}
	return ActionDown, true
}
