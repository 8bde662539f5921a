package control

import "image"

// PointerDown starts a paint gesture at p. Playback is frozen for the length
// of the gesture and the pressed cell is toggled; the toggled value is then
// stamped on every cell the drag visits. A press while a gesture is already
// active is ignored.
func (c *Controller) PointerDown(p image.Point) Decision {
	if c.gesture.active {
		return rejected(ReasonGestureActive)
	}
	x, y, ok := c.CellAt(p)
	if !ok {
		return rejected(ReasonOutsideGrid)
	}
	cur, err := c.engine.Cell(x, y)
	if err != nil {
		return rejected(ReasonOutsideGrid)
	}

	c.wasPausedDown = c.paused
	c.paused = true
	c.armed = false
	c.gesture = gesture{active: true, value: cur.Toggle()}
	// The gesture stays active on a failed write so the release still
	// restores the pause state.
	if !c.paint(x, y) {
		return rejected(ReasonEngine)
	}
	c.requestRedraw()
	return accepted()
}

// PointerMove stamps the gesture's paint value on the cell under p and
// requests a draw-only refresh.
func (c *Controller) PointerMove(p image.Point) Decision {
	if !c.gesture.active {
		return rejected(ReasonNoGesture)
	}
	x, y, ok := c.CellAt(p)
	if !ok {
		return rejected(ReasonOutsideGrid)
	}
	if !c.paint(x, y) {
		return rejected(ReasonEngine)
	}
	c.requestRedraw()
	return accepted()
}

// PointerUp ends the gesture wherever the pointer is, restoring the pause
// state that was in effect when it began.
func (c *Controller) PointerUp() Decision {
	if !c.gesture.active {
		return rejected(ReasonNoGesture)
	}
	c.gesture.active = false
	if !c.wasPausedDown {
		c.paused = false
		if c.fault == nil {
			c.arm()
		}
	}
	return accepted()
}

func (c *Controller) paint(x, y int) bool {
	if err := c.engine.SetCell(x, y, c.gesture.value); err != nil {
		c.fail(PhasePaint, err)
		return false
	}
	return true
}
