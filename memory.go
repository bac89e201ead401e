package tinygo_dcmotor

import (
	tinygoerrors "github.com/ralvarezdev/tinygo-errors"
)

type (
	// Memory is a plain byte array standing in for the data space of a chip,
	// so the handler can run against simulated registers on the host.
	Memory struct {
		cells  []uint8
		writes uint32
	}

	// MemoryRegister is a Register view onto one byte of a Memory
	MemoryRegister struct {
		memory  *Memory
		address uintptr
	}
)

// ATmega328P data-space addresses of the registers used by the handler
const (
	AddressDDRB   uintptr = 0x24
	AddressPORTB  uintptr = 0x25
	AddressDDRD   uintptr = 0x2a
	AddressPORTD  uintptr = 0x2b
	AddressTCCR0A uintptr = 0x44
	AddressTCCR0B uintptr = 0x45
	AddressOCR0A  uintptr = 0x47
	AddressOCR0B  uintptr = 0x48
	AddressTCCR2A uintptr = 0xb0
	AddressTCCR2B uintptr = 0xb1
	AddressOCR2A  uintptr = 0xb3
	AddressOCR2B  uintptr = 0xb4

	// MemorySize covers the ATmega328P register file and I/O space
	MemorySize = 0x100
)

// NewMemory creates a zeroed memory of the given size in bytes.
func NewMemory(size int) *Memory {
	return &Memory{cells: make([]uint8, size)}
}

// Register returns the register located at the given address.
func (m *Memory) Register(address uintptr) *MemoryRegister {
	return &MemoryRegister{memory: m, address: address}
}

// Peek reads a byte without going through a register.
func (m *Memory) Peek(address uintptr) uint8 {
	return m.cells[address]
}

// Poke writes a byte without counting it as a register write.
func (m *Memory) Poke(address uintptr, value uint8) {
	m.cells[address] = value
}

// Writes returns the number of register writes performed so far.
func (m *Memory) Writes() uint32 {
	return m.writes
}

// Get reads the register.
func (r *MemoryRegister) Get() uint8 {
	return r.memory.cells[r.address]
}

// Set writes the register and counts the write.
func (r *MemoryRegister) Set(value uint8) {
	r.memory.cells[r.address] = value
	r.memory.writes++
}

// SetBits sets the bits of value with a read-modify-write.
func (r *MemoryRegister) SetBits(value uint8) {
	r.Set(r.Get() | value)
}

// ClearBits clears the bits of value with a read-modify-write.
func (r *MemoryRegister) ClearBits(value uint8) {
	r.Set(r.Get() &^ value)
}

// NewMemoryPlatform creates a platform laid out like the ATmega328P of an
// Arduino Uno, backed by the given memory
//
// Parameters:
//
// memory: The memory holding the simulated registers, at least MemorySize bytes
//
// Returns:
//
// The platform and an error code if it could not be built
func NewMemoryPlatform(memory *Memory) (*Platform, tinygoerrors.ErrorCode) {
	if memory == nil || len(memory.cells) < MemorySize {
		return nil, ErrorCodeDCMotorInvalidPlatform
	}
	return NewPlatform(
		DefaultBankSize,
		[]PinBank{
			{First: 2, Last: 7, DDR: memory.Register(AddressDDRD), Port: memory.Register(AddressPORTD)},
			{First: 8, Last: 13, DDR: memory.Register(AddressDDRB), Port: memory.Register(AddressPORTB)},
		},
		map[TimerID]TimerRef{
			Timer0: {
				ControlA: memory.Register(AddressTCCR0A),
				ControlB: memory.Register(AddressTCCR0B),
				CompareA: memory.Register(AddressOCR0A),
				CompareB: memory.Register(AddressOCR0B),
			},
			Timer2: {
				ControlA: memory.Register(AddressTCCR2A),
				ControlB: memory.Register(AddressTCCR2B),
				CompareA: memory.Register(AddressOCR2A),
				CompareB: memory.Register(AddressOCR2B),
			},
		},
	)
}
