/*
Copyright 2024 Tim St. Pierre
Blocking delays for the lcm1602 character display
*/
package lcm1602

import "time"

// Delay blocks the calling goroutine for at least the given duration.
//
// The controller's busy flag cannot be read through the backpack, so every
// operation that needs the controller to settle takes a Delay.
type Delay interface {
	Sleep(d time.Duration)
}

// DelayFunc adapts a function to the Delay interface.
type DelayFunc func(d time.Duration)

func (f DelayFunc) Sleep(d time.Duration) {
	f(d)
}

// SleepDelay waits with time.Sleep.
var SleepDelay Delay = DelayFunc(time.Sleep)
