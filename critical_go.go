//go:build !tinygo

package tinygo_dcmotor

// interruptState is a placeholder for the interrupt state on regular Go
type interruptState uintptr

// disableInterrupts is a no-op on regular Go
func disableInterrupts() interruptState {
	return 0
}

// restoreInterrupts is a no-op on regular Go
func restoreInterrupts(interruptState) {}
