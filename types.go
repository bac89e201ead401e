package tinygo_dcmotor

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

type (
	// Hooks are optional callbacks run after an operation has written its registers.
	Hooks struct {
		AfterInitialize func(timer TimerID, pinA, pinB int)
		AfterSetSpeed   func(channel Channel, level int, compare uint8)
		AfterStop       func(channel Channel)
		AfterRelease    func()
	}

	// DefaultHandler is the default implementation to drive a DC motor pair from
	// the two compare units of one PWM timer. The zero value is uninitialized.
	//
	// A handler has no locking. Calls on the same handler must not be interleaved
	// by different goroutines; each register sequence is only protected against
	// interrupt handlers.
	DefaultHandler struct {
		a       PinRef
		b       PinRef
		timer   TimerRef
		timerID TimerID
		state   State
		hooks   *Hooks
	}
)

var _ Handler = (*DefaultHandler)(nil)

const (
	// ControlAPattern selects inverting compare output on both channels
	// (COMnA = COMnB = 11) and fast PWM from BOTTOM to 0xFF (WGMn[1:0] = 11)
	ControlAPattern uint8 = 0b1111_0011

	// ControlBPattern keeps WGMn2 cleared and selects the clock prescaler (CSn = 100)
	ControlBPattern uint8 = 0b0000_0100

	// CompareMax is the compare value yielding a 0% duty cycle on an inverted output
	CompareMax uint8 = 255

	// CompareMin is the lowest compare value ever written by SetSpeed
	CompareMin uint8 = 1
)

// NewDefaultHandler creates a new instance of DefaultHandler
//
// Parameters:
//
// platform: The configuration table of the target chip
// timer: The timer whose compare units drive both motors
// pinA: The pin gating motor A
// pinB: The pin gating motor B
// hooks: Optional callbacks run after each operation, may be nil
//
// Returns:
//
// An instance of DefaultHandler with both motors stopped and an error if any occurred during initialization
func NewDefaultHandler(
	platform *Platform,
	timer TimerID,
	pinA int,
	pinB int,
	hooks *Hooks,
) (*DefaultHandler, tinygoerrors.ErrorCode) {
	handler := &DefaultHandler{hooks: hooks}
	if err := handler.Initialize(platform, timer, pinA, pinB); err != tinygoerrors.ErrorCodeNil {
		return nil, err
	}
	return handler, tinygoerrors.ErrorCodeNil
}

// SetHooks replaces the callbacks run after each operation.
func (h *DefaultHandler) SetHooks(hooks *Hooks) {
	if h != nil {
		h.hooks = hooks
	}
}

// Initialize binds the handler to a timer and two pins, configures the pins as
// outputs and starts the timer in inverted fast PWM with both motors stopped
//
// Parameters:
//
// platform: The configuration table of the target chip
// timer: The timer whose compare units drive both motors
// pinA: The pin gating motor A
// pinB: The pin gating motor B
//
// Returns:
//
// An error if the mapping could not be resolved or the handler is already active, otherwise nil
func (h *DefaultHandler) Initialize(
	platform *Platform,
	timer TimerID,
	pinA int,
	pinB int,
) tinygoerrors.ErrorCode {
	if h == nil {
		return ErrorCodeDCMotorNilHandler
	}
	if h.state == StateActive {
		return ErrorCodeDCMotorInvalidReferenceState
	}

	// Resolve everything before touching any register
	a, okA := platform.ResolvePin(pinA)
	b, okB := platform.ResolvePin(pinB)
	t, okT := platform.Timer(timer)
	if !okA || !okB || !okT {
		h.state = StateUninitialized
		return ErrorCodeDCMotorInvalidHardwareMapping
	}

	irq := disableInterrupts()

	// Configure the pins as outputs
	a.DDR.SetBits(a.Mask)
	b.DDR.SetBits(b.Mask)

	// Clear any previous timer configuration
	t.ControlA.Set(0)
	t.ControlB.Set(0)

	// Inverted fast PWM on both channels, then start the clock
	t.ControlA.SetBits(ControlAPattern)
	t.ControlB.SetBits(ControlBPattern)

	// Start with both motors stopped
	t.CompareA.Set(CompareMax)
	t.CompareB.Set(CompareMax)

	restoreInterrupts(irq)

	h.a = a
	h.b = b
	h.timer = t
	h.timerID = timer
	h.state = StateActive

	if h.hooks != nil && h.hooks.AfterInitialize != nil {
		h.hooks.AfterInitialize(timer, pinA, pinB)
	}
	return tinygoerrors.ErrorCodeNil
}

// State returns the lifecycle state of the handler.
func (h *DefaultHandler) State() State {
	if h == nil {
		return StateUninitialized
	}
	return h.state
}

// TimerID returns the timer the handler is bound to, and false unless the
// handler is active.
func (h *DefaultHandler) TimerID() (TimerID, bool) {
	if h == nil || h.state != StateActive {
		return 0, false
	}
	return h.timerID, true
}

// checkActive returns an error code unless the handler is active with every register resolved
func (h *DefaultHandler) checkActive() tinygoerrors.ErrorCode {
	if h == nil {
		return ErrorCodeDCMotorNilHandler
	}
	if h.state != StateActive || !h.a.valid() || !h.b.valid() || !h.timer.valid() {
		return ErrorCodeDCMotorInvalidReferenceState
	}
	return tinygoerrors.ErrorCodeNil
}

// CompareValue maps a speed level onto the compare register value of an
// inverted PWM output. The result is always within [CompareMin, CompareMax].
func CompareValue(level int) uint8 {
	// Clamp the level first, 255 - level overflows for levels near math.MinInt
	if level <= 0 {
		return CompareMax
	}
	if level >= int(CompareMax) {
		return CompareMin
	}
	return CompareMax - uint8(level)
}

// SetSpeed sets the speed of one motor.
//
// Parameters:
//
// channel: The channel of the motor.
// level: Speed value, 0 (stop) to 255 (full speed). Values outside are clamped.
//
// Returns:
//
// An error if the speed could not be set, otherwise nil.
func (h *DefaultHandler) SetSpeed(channel Channel, level int) tinygoerrors.ErrorCode {
	if err := h.checkActive(); err != tinygoerrors.ErrorCodeNil {
		return err
	}
	register := h.timer.compare(channel)
	if register == nil {
		return ErrorCodeDCMotorUnknownChannel
	}

	compare := CompareValue(level)

	irq := disableInterrupts()
	register.Set(compare)
	restoreInterrupts(irq)

	if h.hooks != nil && h.hooks.AfterSetSpeed != nil {
		h.hooks.AfterSetSpeed(channel, level, compare)
	}
	return tinygoerrors.ErrorCodeNil
}

// SetSpeedA sets the speed of motor A.
func (h *DefaultHandler) SetSpeedA(level int) tinygoerrors.ErrorCode {
	return h.SetSpeed(ChannelA, level)
}

// SetSpeedB sets the speed of motor B.
func (h *DefaultHandler) SetSpeedB(level int) tinygoerrors.ErrorCode {
	return h.SetSpeed(ChannelB, level)
}

// GetSpeed returns the speed level currently applied to one motor, read back
// from its compare register.
func (h *DefaultHandler) GetSpeed(channel Channel) (uint8, tinygoerrors.ErrorCode) {
	if err := h.checkActive(); err != tinygoerrors.ErrorCodeNil {
		return 0, err
	}
	register := h.timer.compare(channel)
	if register == nil {
		return 0, ErrorCodeDCMotorUnknownChannel
	}
	return CompareMax - register.Get(), tinygoerrors.ErrorCodeNil
}

// Stop stops one motor by writing the maximum compare value.
//
// Parameters:
//
// channel: The channel of the motor.
//
// Returns:
//
// An error if the motor could not be stopped, otherwise nil.
func (h *DefaultHandler) Stop(channel Channel) tinygoerrors.ErrorCode {
	if err := h.checkActive(); err != tinygoerrors.ErrorCodeNil {
		return err
	}
	register := h.timer.compare(channel)
	if register == nil {
		return ErrorCodeDCMotorUnknownChannel
	}

	irq := disableInterrupts()
	register.Set(CompareMax)
	restoreInterrupts(irq)

	if h.hooks != nil && h.hooks.AfterStop != nil {
		h.hooks.AfterStop(channel)
	}
	return tinygoerrors.ErrorCodeNil
}

// StopA stops motor A.
func (h *DefaultHandler) StopA() tinygoerrors.ErrorCode {
	return h.Stop(ChannelA)
}

// StopB stops motor B.
func (h *DefaultHandler) StopB() tinygoerrors.ErrorCode {
	return h.Stop(ChannelB)
}

// Release drives both pins low, returns them to inputs and turns the timer off.
// The handler can not be used afterwards unless it is initialized again.
//
// Returns:
//
// An error if the handler is not active, otherwise nil.
func (h *DefaultHandler) Release() tinygoerrors.ErrorCode {
	if err := h.checkActive(); err != tinygoerrors.ErrorCodeNil {
		return err
	}

	irq := disableInterrupts()

	// Drive the pins low before they stop being outputs
	h.a.Port.ClearBits(h.a.Mask)
	h.b.Port.ClearBits(h.b.Mask)
	h.a.DDR.ClearBits(h.a.Mask)
	h.b.DDR.ClearBits(h.b.Mask)

	// Turn the timer off
	h.timer.ControlA.Set(0)
	h.timer.ControlB.Set(0)
	h.timer.CompareA.Set(0)
	h.timer.CompareB.Set(0)

	restoreInterrupts(irq)

	h.a = PinRef{}
	h.b = PinRef{}
	h.timer = TimerRef{}
	h.state = StateReleased

	if h.hooks != nil && h.hooks.AfterRelease != nil {
		h.hooks.AfterRelease()
	}
	return tinygoerrors.ErrorCodeNil
}
