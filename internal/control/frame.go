package control

// onFrame is the callback handed to the scheduler. Pause is observed here, at
// the top of the invocation: a callback whose request was cancelled by a
// pause returns without stepping.
func (c *Controller) onFrame() {
	c.queued = false
	if !c.armed {
		return
	}
	if err := c.frame(); err != nil {
		return
	}
	if c.paused {
		c.armed = false
		return
	}
	c.arm()
}

// frame runs one generation: step, full redraw, counters. It never schedules
// anything itself; re-arming belongs to the scheduled callback. Errors are
// engine faults and have already been recorded and logged.
func (c *Controller) frame() error {
	now := c.now()
	c.metrics.BeginFrame(now)

	start := now
	if err := c.engine.Step(); err != nil {
		return c.fail(PhaseStep, err)
	}
	mid := c.now()
	c.metrics.AddTick(mid.Sub(start))

	if err := c.surface.Present(c.view); err != nil {
		return c.fail(PhaseDraw, err)
	}
	c.metrics.AddDraw(c.now().Sub(mid))
	c.metrics.EndFrame()
	return nil
}
