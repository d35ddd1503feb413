/*
Copyright 2024 Tim St. Pierre
Controls an HD44780 based character LCD through a PCF8574 I2C backpack
in 4 bit mode. The backpack cannot be read, so the driver is write only
and relies on fixed delays instead of the busy flag.
*/
package lcm1602

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/i2c"
	"tinygo.org/x/drivers"
)

const (
	// Commands
	CMD_Clear_Display        = 0x01
	CMD_Return_Home          = 0x02
	CMD_Entry_Mode           = 0x04
	CMD_Display_Control      = 0x08
	CMD_Cursor_Display_Shift = 0x10
	CMD_Function_Set         = 0x20

	// Options
	OPT_Increment      = 0x02 // CMD_Entry_Mode 0 = Decrement
	OPT_Enable_Display = 0x04 // CMD_Display_Control
	OPT_Enable_Cursor  = 0x02 // CMD_Display_Control
	OPT_Enable_Blink   = 0x01 // CMD_Display_Control
	OPT_Shift_Right    = 0x04 // CMD_Cursor_Display_Shift 0 = Left
	OPT_8_Bit          = 0x10 // CMD_Function_Set 0 = 4 bit
	OPT_2_Lines        = 0x08 // CMD_Function_Set 0 = 1 line

	// Backpack pins
	RS        = 0
	WR        = 1
	EN        = 2
	BACKLIGHT = 3
)

// mode selects the controller register a byte is written to.
type mode byte

const (
	modeCommand mode = 0x00
	modeData    mode = 1 << RS
)

const (
	powerOnDelay = 80 * time.Millisecond
	resetDelay   = 5 * time.Millisecond
	homeDelay    = 10 * time.Millisecond

	// DDRAM offset between the start of two rows.
	rowStride = 40

	cmdShiftCursor = CMD_Cursor_Display_Shift | OPT_Shift_Right
)

// Dev is an initialized display.
//
// Dev owns the bus for its whole lifetime. Each command is several
// separate bus writes and a foreign write between the two edges of an
// enable pulse corrupts the latched nibble. Dev is not safe for concurrent
// use.
//
// After any method returns an error the display is in an unknown state and
// the Dev must be discarded.
type Dev struct {
	c         conn
	rows      uint8
	backlight Backlight
	cursor    bool
	blink     bool
}

func (d *Dev) String() string {
	return fmt.Sprintf("lcm1602{%s rows=%d cursor=%t blink=%t}", d.c, d.rows, d.cursor, d.blink)
}

// NewI2C initializes the display and returns a device that communicates
// over a periph I²C bus.
//
// Use default options if nil is used. delay is used for the power on wait
// and the reset sequence.
func NewI2C(b i2c.Bus, opts *Opts, delay Delay) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	return makeDev(&i2c.Dev{Bus: b, Addr: opts.I2CAddr}, opts, delay)
}

// NewTinyGo is like NewI2C for a TinyGo I²C bus such as machine.I2C0.
func NewTinyGo(b drivers.I2C, opts *Opts, delay Delay) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	return makeDev(&tinyGoDev{bus: b, addr: opts.I2CAddr}, opts, delay)
}

// makeDev runs the power on sequence. The controller may be in 8 bit mode,
// 4 bit mode or halfway through a previous initialization, so it is reset
// with three 8 bit FunctionSet nibbles before being switched to 4 bit mode.
func makeDev(c conn, opts *Opts, delay Delay) (*Dev, error) {
	d := &Dev{
		c:         c,
		rows:      opts.Rows,
		backlight: opts.Backlight,
		cursor:    opts.CursorOn,
		blink:     opts.CursorBlink,
	}
	logger := log.WithFields(log.Fields{"conn": c.String(), "rows": opts.Rows})
	logger.Debug("Initializing display")

	delay.Sleep(powerOnDelay)

	for i := 0; i < 3; i++ {
		if err := d.sendNibble(CMD_Function_Set | OPT_8_Bit); err != nil {
			return nil, err
		}
		delay.Sleep(resetDelay)
	}

	// From here on every byte goes out as two nibbles.
	if err := d.sendNibble(CMD_Function_Set); err != nil {
		return nil, err
	}

	if err := d.command(opts.functionSet()); err != nil {
		return nil, err
	}
	if err := d.command(opts.displayControl()); err != nil {
		return nil, err
	}
	if err := d.Clear(); err != nil {
		return nil, err
	}
	delay.Sleep(homeDelay)
	// Left to right, no display shift.
	if err := d.command(CMD_Entry_Mode | OPT_Increment); err != nil {
		return nil, err
	}
	if err := d.SetBacklight(d.backlight); err != nil {
		return nil, err
	}
	logger.Debug("Display ready")
	return d, nil
}

// Rows returns the configured zero based row count.
func (d *Dev) Rows() uint8 {
	return d.rows
}

// Backlight returns the current backlight state.
func (d *Dev) Backlight() Backlight {
	return d.backlight
}

// SetBacklight switches the backlight immediately. The new state is carried
// by every following write. The enable line is left low.
func (d *Dev) SetBacklight(b Backlight) error {
	d.backlight = b
	return d.writeByte(byte(b))
}

// Clear blanks the display and moves the cursor to the top left. The
// controller needs up to 10ms before it accepts the next command.
func (d *Dev) Clear() error {
	return d.command(CMD_Clear_Display)
}

// ReturnHome moves the cursor to the top left and waits for the controller
// to reset its address counter.
func (d *Dev) ReturnHome(delay Delay) error {
	if err := d.command(CMD_Return_Home); err != nil {
		return err
	}
	delay.Sleep(homeDelay)
	return nil
}

// SetCursor moves the cursor to the zero based row and col.
//
// The cursor is homed and then shifted right one cell at a time, which
// works regardless of the row start addresses of the controller variant.
func (d *Dev) SetCursor(row, col uint8, delay Delay) error {
	if err := d.ReturnHome(delay); err != nil {
		return err
	}
	shift := int(row)*rowStride + int(col)
	for i := 0; i < shift; i++ {
		if err := d.command(cmdShiftCursor); err != nil {
			return err
		}
	}
	return nil
}

// WriteStr writes s at the cursor position. Each character is sent as one
// character code of the controller's font table, the low byte of its code
// point; no translation is done.
func (d *Dev) WriteStr(s string) error {
	_, err := d.WriteString(s)
	return err
}

// WriteString implements io.StringWriter. On error it returns the byte
// offset in s of the character that failed.
func (d *Dev) WriteString(s string) (int, error) {
	for i, r := range s {
		if err := d.send(byte(r), modeData); err != nil {
			return i, err
		}
	}
	return len(s), nil
}

// Write implements io.Writer.
func (d *Dev) Write(buf []byte) (int, error) {
	for i, c := range buf {
		if err := d.send(c, modeData); err != nil {
			return i, err
		}
	}
	return len(buf), nil
}

func (d *Dev) command(data byte) error {
	return d.send(data, modeCommand)
}

// send writes data as two nibbles, high nibble first, each tagged with the
// register select bits of m.
func (d *Dev) send(data byte, m mode) error {
	log.Tracef("Sending %#02x mode %#x", data, m)
	if err := d.sendNibble(data&0xf0 | byte(m)); err != nil {
		return err
	}
	return d.sendNibble(data<<4 | byte(m))
}

// sendNibble pulses the enable line with nibble on D4-D7. The rising edge
// byte carries the data, the falling edge byte holds RS and RW so the
// controller latches the nibble into the right register.
func (d *Dev) sendNibble(nibble byte) error {
	if err := d.writeByte(nibble | 1<<EN); err != nil {
		return err
	}
	return d.writeByte(nibble & (1<<RS | 1<<WR))
}

// writeByte sets the backpack's output register. The backlight line shares
// that register, so its bit is added to every byte.
func (d *Dev) writeByte(data byte) error {
	data |= byte(d.backlight)
	log.Tracef("Writing %08b", data)
	return d.c.Tx([]byte{data}, nil)
}
