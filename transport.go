/*
Copyright 2024 Tim St. Pierre
Bus transports for the lcm1602 character display
*/
package lcm1602

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"
	"tinygo.org/x/drivers"
)

// conn is a bus bound to the backpack's address. Only writes are issued.
type conn interface {
	Tx(w, r []byte) error
	String() string
}

// tinyGoDev binds a TinyGo I²C bus to a peripheral address.
type tinyGoDev struct {
	bus  drivers.I2C
	addr uint16
}

func (t *tinyGoDev) Tx(w, r []byte) error {
	return t.bus.Tx(t.addr, w, r)
}

func (t *tinyGoDev) String() string {
	return fmt.Sprintf("tinygo-i2c(%#x)", t.addr)
}

var _ conn = &i2c.Dev{}
var _ conn = &tinyGoDev{}
