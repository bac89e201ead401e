package tinygo_dcmotor

type (
	// Channel is an enum to represent the PWM output channels of a timer.
	Channel uint8

	// State is an enum to represent the lifecycle state of a motor handler.
	State uint8
)

const (
	ChannelNil Channel = iota
	ChannelA
	ChannelB
)

const (
	StateUninitialized State = iota
	StateActive
	StateReleased
)

// OtherChannel returns the channel sharing the same timer.
func (c Channel) OtherChannel() Channel {
	switch c {
	case ChannelA:
		return ChannelB
	case ChannelB:
		return ChannelA
	default:
		return ChannelNil
	}
}

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelA:
		return "A"
	case ChannelB:
		return "B"
	default:
		return "nil"
	}
}

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateActive:
		return "active"
	case StateReleased:
		return "released"
	default:
		return "unknown"
	}
}
