//go:build tinygo

package tinygo_dcmotor

import (
	tinygologger "github.com/ralvarezdev/tinygo-logger"
)

var (
	// initializePrefix is the prefix for the log message when the handler is initialized on a timer
	initializePrefix = []byte("Initialize DC Motor handler on timer:")

	// setSpeedAPrefix is the prefix for the log message when setting the compare value of motor A
	setSpeedAPrefix = []byte("Set DC Motor A compare value to:")

	// setSpeedBPrefix is the prefix for the log message when setting the compare value of motor B
	setSpeedBPrefix = []byte("Set DC Motor B compare value to:")

	// stopAPrefix is the prefix for the log message when stopping motor A
	stopAPrefix = []byte("Stop DC Motor A")

	// stopBPrefix is the prefix for the log message when stopping motor B
	stopBPrefix = []byte("Stop DC Motor B")

	// releasePrefix is the prefix for the log message when the handler is released
	releasePrefix = []byte("Release DC Motor handler")
)

// NewLoggerHooks creates hooks that log every handler operation at debug level
//
// Parameters:
//
// logger: The logger to log messages
//
// Returns:
//
// The hooks, or nil if the logger is nil
func NewLoggerHooks(logger tinygologger.Logger) *Hooks {
	if logger == nil {
		return nil
	}

	return &Hooks{
		AfterInitialize: func(timer TimerID, pinA, pinB int) {
			logger.AddMessageWithUint32(
				initializePrefix,
				uint32(timer),
				true,
				true,
				false,
			)
			logger.Debug()
		},
		AfterSetSpeed: func(channel Channel, level int, compare uint8) {
			prefix := setSpeedAPrefix
			if channel == ChannelB {
				prefix = setSpeedBPrefix
			}
			logger.AddMessageWithUint32(
				prefix,
				uint32(compare),
				true,
				true,
				false,
			)
			logger.Debug()
		},
		AfterStop: func(channel Channel) {
			prefix := stopAPrefix
			if channel == ChannelB {
				prefix = stopBPrefix
			}
			logger.AddMessage(
				prefix,
				true,
			)
			logger.Debug()
		},
		AfterRelease: func() {
			logger.AddMessage(
				releasePrefix,
				true,
			)
			logger.Debug()
		},
	}
}
