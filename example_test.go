package lcm1602_test

import (
	"fmt"
	"log"
	"time"

	"github.com/tstpierre-tc/lcm1602"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func Example() {
	// Make sure periph is initialized.
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}

	// Open default I²C bus.
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	opts := lcm1602.DefaultOpts.WithAddress(0x27).WithRows(1).WithCursorOn(false)
	dev, err := lcm1602.NewI2C(bus, &opts, lcm1602.SleepDelay)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(dev)

	if err := dev.WriteStr("Hello"); err != nil {
		log.Fatal(err)
	}
	if err := dev.SetCursor(1, 0, lcm1602.SleepDelay); err != nil {
		log.Fatal(err)
	}
	if _, err := fmt.Fprintf(dev, "up %s", 3*time.Second); err != nil {
		log.Fatal(err)
	}
}

func ExampleDev_SetBacklight() {
	if _, err := host.Init(); err != nil {
		log.Fatal(err)
	}
	bus, err := i2creg.Open("")
	if err != nil {
		log.Fatalf("failed to open I²C: %v", err)
	}
	defer bus.Close()

	dev, err := lcm1602.NewI2C(bus, nil, lcm1602.SleepDelay)
	if err != nil {
		log.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		fmt.Println("toggling backlight")
		if err := dev.SetBacklight(lcm1602.BacklightOff); err != nil {
			log.Fatal(err)
		}
		time.Sleep(500 * time.Millisecond)
		if err := dev.SetBacklight(lcm1602.BacklightOn); err != nil {
			log.Fatal(err)
		}
		time.Sleep(500 * time.Millisecond)
	}
}
