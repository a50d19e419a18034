package console

// lcg is a 64 bit linear congruential generator with the multiplier and
// increment of MMIX.
type lcg struct {
	state uint64
}

func (l *lcg) next() uint64 {
	l.state = l.state*6364136223846793005 + 1442695040888963407
	return l.state
}
