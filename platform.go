package tinygo_dcmotor

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

type (
	// TimerID is the identity of a PWM timer peripheral known to a platform.
	TimerID uint8

	// PinRef references the registers controlling one digital output pin.
	PinRef struct {
		DDR  Register
		Port Register
		Mask uint8
	}

	// TimerRef references the control and compare registers of one PWM timer.
	TimerRef struct {
		ControlA Register
		ControlB Register
		CompareA Register
		CompareB Register
	}

	// PinBank maps a contiguous range of pin identifiers onto one register bank.
	PinBank struct {
		First int
		Last  int
		DDR   Register
		Port  Register
	}

	// Platform is the configuration table of a target chip: which pin identifiers
	// resolve to which register banks, and which timers exist.
	Platform struct {
		bankSize int
		banks    []PinBank
		timers   map[TimerID]TimerRef
	}
)

const (
	Timer0 TimerID = iota
	Timer2
)

const (
	// DefaultBankSize is the number of pins per register bank on 8-bit AVR chips
	DefaultBankSize = 8
)

// NewPlatform creates a new platform configuration table
//
// Parameters:
//
// bankSize: Number of pins sharing one register bank
// banks: Supported pin ranges and their register banks
// timers: Timer identities and their registers
//
// Returns:
//
// The platform and an error code if the table is inconsistent
func NewPlatform(
	bankSize int,
	banks []PinBank,
	timers map[TimerID]TimerRef,
) (*Platform, tinygoerrors.ErrorCode) {
	// Registers are 8 bits wide, so a bank holds at most 8 pins
	if bankSize <= 0 || bankSize > 8 {
		return nil, ErrorCodeDCMotorInvalidPlatform
	}

	for i, bank := range banks {
		if bank.First < 0 || bank.First > bank.Last {
			return nil, ErrorCodeDCMotorInvalidPlatform
		}
		if bank.DDR == nil || bank.Port == nil {
			return nil, ErrorCodeDCMotorInvalidPlatform
		}

		// A range must not spill into the next bank
		if bank.First/bankSize != bank.Last/bankSize {
			return nil, ErrorCodeDCMotorInvalidPlatform
		}

		// Ranges must be disjoint
		for _, other := range banks[:i] {
			if bank.First <= other.Last && other.First <= bank.Last {
				return nil, ErrorCodeDCMotorInvalidPlatform
			}
		}
	}

	copied := make(map[TimerID]TimerRef, len(timers))
	for id, timer := range timers {
		copied[id] = timer
	}

	return &Platform{
		bankSize: bankSize,
		banks:    append([]PinBank(nil), banks...),
		timers:   copied,
	}, tinygoerrors.ErrorCodeNil
}

// BankSize returns the number of pins per register bank.
func (p *Platform) BankSize() int {
	return p.bankSize
}

// ResolvePin resolves a pin identifier into its registers and bit mask
//
// Parameters:
//
// id: The pin identifier
//
// Returns:
//
// The pin reference and whether the identifier falls within a supported range
func (p *Platform) ResolvePin(id int) (PinRef, bool) {
	if p == nil {
		return PinRef{}, false
	}
	for _, bank := range p.banks {
		if id >= bank.First && id <= bank.Last {
			return PinRef{
				DDR:  bank.DDR,
				Port: bank.Port,
				Mask: 1 << uint(id%p.bankSize),
			}, true
		}
	}
	return PinRef{}, false
}

// Timer resolves a timer identity into its registers
//
// Parameters:
//
// id: The timer identity
//
// Returns:
//
// The timer reference and whether all four of its registers are known
func (p *Platform) Timer(id TimerID) (TimerRef, bool) {
	if p == nil {
		return TimerRef{}, false
	}
	timer, ok := p.timers[id]
	if !ok || !timer.valid() {
		return TimerRef{}, false
	}
	return timer, true
}

// valid reports whether both pin registers are set
func (r PinRef) valid() bool {
	return r.DDR != nil && r.Port != nil && r.Mask != 0
}

// valid reports whether all four timer registers are set
func (t TimerRef) valid() bool {
	return t.ControlA != nil && t.ControlB != nil && t.CompareA != nil && t.CompareB != nil
}

// compare returns the compare register of the given channel
func (t TimerRef) compare(channel Channel) Register {
	switch channel {
	case ChannelA:
		return t.CompareA
	case ChannelB:
		return t.CompareB
	default:
		return nil
	}
}
