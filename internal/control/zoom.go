package control

// Wheel maps a scroll delta to an explicit zoom: scrolling up (negative delta)
// grows cells, scrolling down shrinks them.
func (c *Controller) Wheel(deltaY float64) Decision {
	switch {
	case deltaY < 0:
		return c.ZoomIn()
	case deltaY > 0:
		return c.ZoomOut()
	default:
		return rejected(ReasonNoDelta)
	}
}

// ZoomIn grows cells by one pixel.
func (c *Controller) ZoomIn() Decision {
	if c.cellSize >= c.maxCellSize {
		return rejected(ReasonAtMaximum)
	}
	return c.SetZoom(c.cellSize + 1)
}

// ZoomOut shrinks cells by one pixel.
func (c *Controller) ZoomOut() Decision {
	if c.cellSize <= 1 {
		return rejected(ReasonAtMinimum)
	}
	return c.SetZoom(c.cellSize - 1)
}

// SetZoom applies an explicit cell size. Any accepted change locks out
// auto-fit for the rest of the session.
func (c *Controller) SetZoom(n int) Decision {
	switch {
	case n < 1 || n > c.maxCellSize:
		return rejected(ReasonOutOfRange)
	case n == c.cellSize:
		return rejected(ReasonUnchanged)
	}
	if err := c.applyCellSize(n); err != nil {
		return rejected(ReasonEngine)
	}
	c.autoFitLocked = true
	return accepted()
}

// Fit sizes cells so the grid fills a viewport of the given width. It is
// ignored once the user has zoomed explicitly.
func (c *Controller) Fit(viewportWidth int) Decision {
	if c.autoFitLocked {
		return rejected(ReasonLocked)
	}
	n := viewportWidth / c.size.W
	if n <= 0 {
		return rejected(ReasonNoFit)
	}
	n = min(n, c.maxCellSize)
	if n == c.cellSize {
		return rejected(ReasonUnchanged)
	}
	if err := c.applyCellSize(n); err != nil {
		return rejected(ReasonEngine)
	}
	return accepted()
}

// applyCellSize resizes the engine framebuffer first and only then adopts the
// new size, so a failed resize leaves the controller, surface and engine in
// agreement. The view is re-fetched because the engine may have reallocated
// it.
func (c *Controller) applyCellSize(n int) error {
	if err := c.engine.SetCellPixelSize(n); err != nil {
		return c.fail(PhaseResize, err)
	}
	if err := c.sync(); err != nil {
		return c.fail(PhaseResize, err)
	}
	if c.paused {
		return c.present(PhaseRedraw)
	}
	return nil
}

// sync adopts the engine's current cell size and re-fetches its view.
func (c *Controller) sync() error {
	n := c.engine.CellPixelSize()
	c.cellSize = n
	c.surface.Resize(n*c.size.W, n*c.size.H)
	view, err := c.engine.Framebuffer()
	if err != nil {
		return err
	}
	c.view = view
	return nil
}
