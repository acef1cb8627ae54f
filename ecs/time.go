package ecs

// Time is the frame clock. Delta is in seconds.
type Time struct {
	delta   float64
	elapsed float64
	frame   uint64
}

func (t *Time) advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	t.delta = dt
	t.elapsed += dt
	t.frame++
}

func (t *Time) Delta() float64   { return t.delta }
func (t *Time) Elapsed() float64 { return t.elapsed }
func (t *Time) Frame() uint64    { return t.frame }
