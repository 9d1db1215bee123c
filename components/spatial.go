package components

// Cell is a forager's position on the landscape grid.
type Cell struct {
	X, Y int
}

// Index returns the row-major index of the cell in a grid of the given width.
func (c Cell) Index(width int) int {
	return c.Y*width + c.X
}
