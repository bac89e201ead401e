package tinygo_dcmotor

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

type (
	// Register is an 8-bit memory-mapped hardware register.
	//
	// TinyGo's *volatile.Register8 satisfies it on the target, *MemoryRegister on the host.
	Register interface {
		Get() uint8
		Set(value uint8)
		SetBits(value uint8)
		ClearBits(value uint8)
	}

	// Handler is the interface to handle a DC motor pair driven by one PWM timer
	Handler interface {
		State() State
		GetSpeed(channel Channel) (uint8, tinygoerrors.ErrorCode)
		SetSpeed(channel Channel, level int) tinygoerrors.ErrorCode
		SetSpeedA(level int) tinygoerrors.ErrorCode
		SetSpeedB(level int) tinygoerrors.ErrorCode
		Stop(channel Channel) tinygoerrors.ErrorCode
		StopA() tinygoerrors.ErrorCode
		StopB() tinygoerrors.ErrorCode
		Release() tinygoerrors.ErrorCode
	}
)
