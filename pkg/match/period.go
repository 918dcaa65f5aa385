package match

// Period is one playing period (half, extra-time half, shootout). Start and
// End are seconds since the match clock started; record timestamps are
// seconds since the period started.
type Period struct {
	ID    int
	Start float64
	End   float64
}

// Duration returns the length of the period in seconds.
func (p *Period) Duration() float64 {
	return p.End - p.Start
}
