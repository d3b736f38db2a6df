package core

import "time"

// Clock abstracts the blocking waits used for step pulse timing so tests
// can substitute a virtual clock instead of sleeping for real.
type Clock interface {
	Sleep(d time.Duration)
}

// RealClock waits on the wall clock.
type RealClock struct{}

func (RealClock) Sleep(d time.Duration) { time.Sleep(d) }
