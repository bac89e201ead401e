//go:build tinygo && avr && atmega328p

package tinygo_dcmotor

import (
	"device/avr"

	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

// ATmega328P returns the platform table of the Arduino Uno: digital pins 2 to 7
// on port D, 8 to 13 on port B, and the 8-bit timers 0 and 2.
func ATmega328P() (*Platform, tinygoerrors.ErrorCode) {
	return NewPlatform(
		DefaultBankSize,
		[]PinBank{
			{First: 2, Last: 7, DDR: avr.DDRD, Port: avr.PORTD},
			{First: 8, Last: 13, DDR: avr.DDRB, Port: avr.PORTB},
		},
		map[TimerID]TimerRef{
			Timer0: {
				ControlA: avr.TCCR0A,
				ControlB: avr.TCCR0B,
				CompareA: avr.OCR0A,
				CompareB: avr.OCR0B,
			},
			Timer2: {
				ControlA: avr.TCCR2A,
				ControlB: avr.TCCR2B,
				CompareA: avr.OCR2A,
				CompareB: avr.OCR2B,
			},
		},
	)
}
