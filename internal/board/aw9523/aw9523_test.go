// internal/board/aw9523/aw9523_test.go
package aw9523

import (
	"errors"
	"fmt"
	"testing"

	"periph.io/x/conn/v3/physic"
)

// fakeBus emulates a single AW9523 on an I2C bus as a register file.
type fakeBus struct {
	addr   uint16
	regs   map[byte]byte
	writes [][2]byte // (reg, value) in write order
	fail   bool
}

func newFakeBus(addr uint16) *fakeBus {
	return &fakeBus{
		addr: addr,
		regs: map[byte]byte{regChipID: chipID},
	}
}

func (f *fakeBus) String() string { return "fake" }

func (f *fakeBus) SetSpeed(freq physic.Frequency) error { return nil }

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	if f.fail {
		return errors.New("bus failure")
	}
	if addr != f.addr {
		return fmt.Errorf("no device at 0x%02X", addr)
	}
	switch {
	case len(w) == 1 && len(r) == 1:
		r[0] = f.regs[w[0]]
		return nil
	case len(w) == 2 && len(r) == 0:
		f.regs[w[0]] = w[1]
		f.writes = append(f.writes, [2]byte{w[0], w[1]})
		return nil
	default:
		return fmt.Errorf("unexpected transfer w=%d r=%d", len(w), len(r))
	}
}

func TestNew_InitSequence(t *testing.T) {
	bus := newFakeBus(0x58)

	if _, err := New(bus, 0x58); err != nil {
		t.Fatalf("New() err=%v", err)
	}

	want := [][2]byte{
		{regSoftReset, 0x00},
		{regLEDMode0, 0x00},
		{regLEDMode0 + 1, 0x00},
	}
	if len(bus.writes) != len(want) {
		t.Fatalf("init writes = %v, want %v", bus.writes, want)
	}
	for i, w := range want {
		if bus.writes[i] != w {
			t.Errorf("init write %d = %v, want %v", i, bus.writes[i], w)
		}
	}
}

func TestNew_WrongChipID(t *testing.T) {
	bus := newFakeBus(0x58)
	bus.regs[regChipID] = 0x42

	if _, err := New(bus, 0x58); err == nil {
		t.Fatal("New() expected chip id error")
	}
}

func TestNew_NoDevice(t *testing.T) {
	bus := newFakeBus(0x58)

	if _, err := New(bus, 0x59); err == nil {
		t.Fatal("New() expected error for absent device")
	}
}

func TestSetCurrent_RegisterMapping(t *testing.T) {
	cases := []struct {
		pin int
		reg byte
	}{
		{0, 0x24},
		{7, 0x2B},
		{8, 0x20},
		{11, 0x23},
		{12, 0x2C},
		{15, 0x2F},
	}

	for _, c := range cases {
		bus := newFakeBus(0x58)
		d, err := New(bus, 0x58)
		if err != nil {
			t.Fatalf("New() err=%v", err)
		}
		bus.writes = nil

		if err := d.SetCurrent(c.pin, 0xAB); err != nil {
			t.Fatalf("SetCurrent(%d) err=%v", c.pin, err)
		}
		if len(bus.writes) != 1 || bus.writes[0] != [2]byte{c.reg, 0xAB} {
			t.Errorf("SetCurrent(%d) wrote %v, want [[%#02x 0xab]]", c.pin, bus.writes, c.reg)
		}
	}
}

func TestSetCurrent_OutOfRange(t *testing.T) {
	bus := newFakeBus(0x58)
	d, err := New(bus, 0x58)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if err := d.SetCurrent(-1, 0); err == nil {
		t.Error("SetCurrent(-1) expected error")
	}
	if err := d.SetCurrent(16, 0); err == nil {
		t.Error("SetCurrent(16) expected error")
	}
}

func TestPin_SwitchToOutput(t *testing.T) {
	bus := newFakeBus(0x58)
	d, err := New(bus, 0x58)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	// Pin 9 lives on port 1, bit 1.
	bus.regs[regConfig0+1] = 0xFF // all inputs
	bus.regs[regOutput0+1] = 0x00

	p, err := d.Pin(9)
	if err != nil {
		t.Fatalf("Pin(9) err=%v", err)
	}
	if err := p.SwitchToOutput(true); err != nil {
		t.Fatalf("SwitchToOutput err=%v", err)
	}

	if got := bus.regs[regConfig0+1]; got != 0xFD {
		t.Errorf("config p1 = %#02x, want 0xfd", got)
	}
	if got := bus.regs[regOutput0+1]; got != 0x02 {
		t.Errorf("output p1 = %#02x, want 0x02", got)
	}
}

func TestSetCurrent_BusFailure(t *testing.T) {
	bus := newFakeBus(0x58)
	d, err := New(bus, 0x58)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	bus.fail = true

	if err := d.SetCurrent(0, 0xFF); err == nil {
		t.Fatal("SetCurrent() expected bus error")
	}
}

func TestPin_OutOfRange(t *testing.T) {
	bus := newFakeBus(0x58)
	d, err := New(bus, 0x58)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if _, err := d.Pin(16); err == nil {
		t.Error("Pin(16) expected error")
	}
	if _, err := d.Pin(-1); err == nil {
		t.Error("Pin(-1) expected error")
	}
}
