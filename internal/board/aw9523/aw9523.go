// internal/board/aw9523/aw9523.go
package aw9523

import (
	"fmt"

	"periph.io/x/conn/v3/i2c"

	"github.com/metarmap/metarmap/internal/board"
)

// Register map (AW9523B datasheet).
const (
	regOutput0   = 0x02 // output state, port 0/1 at 0x02/0x03
	regConfig0   = 0x04 // pin direction, 0 = output
	regChipID    = 0x10
	regLEDMode0  = 0x12 // pin mode, 0 = constant-current LED, port 0/1 at 0x12/0x13
	regSoftReset = 0x7F

	chipID   = 0x23
	pinCount = 16
)

// Dev is one AW9523 16-channel LED driver on an I2C bus. It implements
// board.Board.
type Dev struct {
	dev i2c.Dev
}

// New opens the device at addr and prepares it for LED duty: verifies
// the chip ID, soft-resets, and switches all 16 pins to constant-current
// mode.
func New(bus i2c.Bus, addr uint16) (*Dev, error) {
	d := &Dev{dev: i2c.Dev{Bus: bus, Addr: addr}}

	id, err := d.readReg(regChipID)
	if err != nil {
		return nil, fmt.Errorf("aw9523: read chip id at 0x%02X: %w", addr, err)
	}
	if id != chipID {
		return nil, fmt.Errorf("aw9523: unexpected chip id 0x%02X at 0x%02X (want 0x%02X)", id, addr, chipID)
	}

	if err := d.writeReg(regSoftReset, 0x00); err != nil {
		return nil, fmt.Errorf("aw9523: soft reset at 0x%02X: %w", addr, err)
	}

	// Reset leaves pins in GPIO mode; flip both ports to LED mode.
	if err := d.writeReg(regLEDMode0, 0x00); err != nil {
		return nil, fmt.Errorf("aw9523: set led mode p0 at 0x%02X: %w", addr, err)
	}
	if err := d.writeReg(regLEDMode0+1, 0x00); err != nil {
		return nil, fmt.Errorf("aw9523: set led mode p1 at 0x%02X: %w", addr, err)
	}

	return d, nil
}

// Pin returns the digital channel handle for index.
func (d *Dev) Pin(index int) (board.Pin, error) {
	if index < 0 || index >= pinCount {
		return nil, fmt.Errorf("aw9523: pin %d out of range [0,%d]", index, pinCount-1)
	}
	return &pin{d: d, idx: index}, nil
}

// SetCurrent sets the constant-current level for one pin. The DIM
// registers interleave the two ports:
//
//	pins 0-7   -> 0x24..0x2B
//	pins 8-11  -> 0x20..0x23
//	pins 12-15 -> 0x2C..0x2F
func (d *Dev) SetCurrent(index int, value uint8) error {
	var reg byte
	switch {
	case index >= 0 && index <= 7:
		reg = 0x24 + byte(index)
	case index >= 8 && index <= 11:
		reg = 0x20 + byte(index-8)
	case index >= 12 && index <= 15:
		reg = 0x2C + byte(index-12)
	default:
		return fmt.Errorf("aw9523: pin %d out of range [0,%d]", index, pinCount-1)
	}
	return d.writeReg(reg, value)
}

// ---- pin handle ----

type pin struct {
	d   *Dev
	idx int
}

// SwitchToOutput drives the pin as an output at the given level.
func (p *pin) SwitchToOutput(level bool) error {
	mask := byte(1) << (p.idx % 8)
	port := byte(p.idx / 8)

	// Direction: clear the config bit (0 = output).
	if err := p.d.updateReg(regConfig0+port, mask, false); err != nil {
		return fmt.Errorf("aw9523: pin %d direction: %w", p.idx, err)
	}
	if err := p.d.updateReg(regOutput0+port, mask, level); err != nil {
		return fmt.Errorf("aw9523: pin %d output: %w", p.idx, err)
	}
	return nil
}

// ---- raw register access ----

func (d *Dev) readReg(reg byte) (byte, error) {
	var buf [1]byte
	if err := d.dev.Tx([]byte{reg}, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Dev) writeReg(reg, value byte) error {
	return d.dev.Tx([]byte{reg, value}, nil)
}

// updateReg read-modify-writes a single bit.
func (d *Dev) updateReg(reg, mask byte, set bool) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	next := cur &^ mask
	if set {
		next |= mask
	}
	if next == cur {
		return nil
	}
	return d.writeReg(reg, next)
}
