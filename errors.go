package tinygo_dcmotor

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

const (
	// ErrorCodeDCMotorStartNumber is the starting number for DC motor-related error codes.
	ErrorCodeDCMotorStartNumber uint16 = 5240
)

const (
	ErrorCodeDCMotorInvalidHardwareMapping tinygoerrors.ErrorCode = tinygoerrors.ErrorCode(iota + ErrorCodeDCMotorStartNumber)
	ErrorCodeDCMotorInvalidReferenceState
	ErrorCodeDCMotorNilHandler
	ErrorCodeDCMotorUnknownChannel
	ErrorCodeDCMotorInvalidPlatform
)
