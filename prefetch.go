package m68k

// ProgramIterator streams consecutive big-endian 16-bit program words from
// a bus, starting at a given address and advancing by two per word. The CPU
// core fetches its own instructions through fetchPC; PeekNextWord reads
// through this iterator, and it is exported for tooling (disassemblers,
// trace loggers) that needs to walk code word by word.
type ProgramIterator struct {
	bus  Bus
	addr uint32
}

// NewProgramIterator returns an iterator positioned at start.
func NewProgramIterator(bus Bus, start uint32) *ProgramIterator {
	return &ProgramIterator{bus: bus, addr: start}
}

// Addr returns the address the next word will be fetched from.
func (it *ProgramIterator) Addr() uint32 {
	return it.addr
}

// Next fetches the word at the current address and advances by two. A
// non-zero vector reports a fault instead of a value: vecAddressError for a
// fetch from an odd address, or whatever the bus reports if it implements
// FaultingBus.
func (it *ProgramIterator) Next() (word uint16, vector uint8) {
	if it.addr&1 != 0 {
		return 0, vecAddressError
	}
	addr := it.addr & 0xFFFFFF
	it.addr += 2
	if fb, ok := it.bus.(FaultingBus); ok {
		val, vec := fb.ReadFault(Word, addr)
		return uint16(val), vec
	}
	return uint16(it.bus.Read(Word, addr)), 0
}

// PeekNextWord returns the program word at PC without advancing PC or
// raising exceptions. Intended for shims and tests inspecting the
// instruction stream.
func (c *CPU) PeekNextWord() uint16 {
	w, _ := NewProgramIterator(c.bus, c.reg.PC).Next()
	return w
}

// NextWord fetches the program word at PC and advances PC by 2. Faults are
// queued through the normal exception path.
func (c *CPU) NextWord() uint16 {
	return c.fetchPC()
}

// NextLong fetches the program long at PC and advances PC by 4.
func (c *CPU) NextLong() uint32 {
	return c.fetchPCLong()
}
