/*
Copyright 2024 Tim St. Pierre
Options for lcm1602 character display
*/
package lcm1602

// Backlight is the state of the backpack's backlight line. Its value is the
// bit that is OR'd into every byte written to the backpack.
type Backlight byte

const (
	BacklightOff Backlight = 0x00
	BacklightOn  Backlight = 1 << BACKLIGHT
)

func (b Backlight) String() string {
	if b == BacklightOff {
		return "off"
	}
	return "on"
}

// Opts holds the display configuration consumed by NewI2C and NewTinyGo.
//
// Fields are not validated. A zero address or a row count the display does
// not have is sent to the hardware as is.
type Opts struct {
	// The I²C slave address
	I2CAddr uint16
	// Zero based number of rows. 0 selects single line mode, anything else
	// multi-line mode. Displays with more than two physical rows have not
	// been verified.
	Rows        uint8
	CursorOn    bool
	CursorBlink bool
	Backlight   Backlight
}

var DefaultOpts = Opts{
	I2CAddr:   0x27,
	Rows:      1,
	Backlight: BacklightOn,
}

func (o Opts) WithAddress(addr uint16) Opts {
	o.I2CAddr = addr
	return o
}

func (o Opts) WithRows(rows uint8) Opts {
	o.Rows = rows
	return o
}

func (o Opts) WithCursorOn(on bool) Opts {
	o.CursorOn = on
	return o
}

// WithCursorBlink only has an effect when the cursor is on.
func (o Opts) WithCursorBlink(on bool) Opts {
	o.CursorBlink = on
	return o
}

func (o Opts) WithBacklight(b Backlight) Opts {
	o.Backlight = b
	return o
}

// functionSet returns the FunctionSet command for the configured row count.
func (o *Opts) functionSet() byte {
	if o.Rows == 0 {
		return CMD_Function_Set
	}
	return CMD_Function_Set | OPT_2_Lines
}

// displayControl returns the DisplayControl command with the display on and
// the configured cursor flags.
func (o *Opts) displayControl() byte {
	option := byte(CMD_Display_Control | OPT_Enable_Display)
	if o.CursorOn {
		option |= OPT_Enable_Cursor
		if o.CursorBlink {
			option |= OPT_Enable_Blink
		}
	}
	return option
}
