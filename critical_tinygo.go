//go:build tinygo

package tinygo_dcmotor

import "runtime/interrupt"

type interruptState = interrupt.State

// disableInterrupts disables interrupts and returns the previous state
func disableInterrupts() interruptState {
	return interrupt.Disable()
}

// restoreInterrupts restores the interrupt state
func restoreInterrupts(state interruptState) {
	interrupt.Restore(state)
}
