package control

// TogglePause flips between playing and paused. While a fault is pending it
// resumes, which is the retry path.
func (c *Controller) TogglePause() Decision {
	if c.paused || c.fault != nil {
		return c.Resume()
	}
	return c.Pause()
}

// Pause stops the loop. A frame the host already holds becomes a no-op when
// it fires.
func (c *Controller) Pause() Decision {
	if c.gesture.active {
		return rejected(ReasonGestureActive)
	}
	if c.paused {
		return rejected(ReasonAlreadyPaused)
	}
	c.paused = true
	c.armed = false
	return accepted()
}

// Resume restarts the loop and clears a pending engine fault. It re-uses a
// frame callback the host still holds rather than queueing a second one.
func (c *Controller) Resume() Decision {
	if c.gesture.active {
		return rejected(ReasonGestureActive)
	}
	if !c.paused && c.fault == nil {
		return rejected(ReasonNotPaused)
	}
	if c.fault != nil {
		c.log.Info("resuming after engine fault", "error", c.fault)
		c.fault = nil
		if err := c.sync(); err != nil {
			c.fail(PhaseConnect, err)
			return rejected(ReasonEngine)
		}
	}
	c.paused = false
	c.arm()
	return accepted()
}

// Step advances exactly one generation while paused.
func (c *Controller) Step() Decision {
	switch {
	case !c.paused:
		return rejected(ReasonNotPaused)
	case c.gesture.active:
		return rejected(ReasonGestureActive)
	case c.fault != nil:
		return rejected(ReasonFaulted)
	}
	if err := c.frame(); err != nil {
		return rejected(ReasonEngine)
	}
	return accepted()
}
