package effect

// Displacement is the pointer displacement state owned by one mounted
// Effect. The move handler writes it; hover handlers read a snapshot.
type Displacement struct {
	LastX, LastY   float64
	DeltaX, DeltaY float64
}

// Track records a pointer sample at (x, y). The delta is the difference from
// the previous sample only; it is never accumulated or decayed.
func (d *Displacement) Track(x, y float64) {
	d.DeltaX = x - d.LastX
	d.DeltaY = y - d.LastY
	d.LastX = x
	d.LastY = y
}

// Snapshot returns the current delta by value.
func (d *Displacement) Snapshot() (dx, dy float64) {
	return d.DeltaX, d.DeltaY
}

// Reset zeroes the state.
func (d *Displacement) Reset() {
	*d = Displacement{}
}
