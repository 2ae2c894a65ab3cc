package m68k

// EA addressing mode categories.
const (
	eaDataReg   = iota // Data register direct (Dn)
	eaAddrReg          // Address register direct (An)
	eaMemory           // All memory addressing modes
	eaImmediate        // Immediate (#imm)
)

// ea represents a resolved effective address operand. Resolution fetches
// any extension words exactly once; read and write reuse the computed
// address, so a handler that reads, computes, and writes back touches the
// instruction stream only during resolution.
type ea struct {
	mode uint8  // eaDataReg, eaAddrReg, eaMemory, eaImmediate
	reg  uint8  // register number (for register modes)
	addr uint32 // memory address (for memory modes)
	imm  uint32 // immediate value (for immediate mode)
}

// read returns the value at this effective address.
func (e ea) read(c *CPU, sz Size) uint32 {
	switch e.mode {
	case eaDataReg:
		return c.reg.D[e.reg] & sz.Mask()
	case eaAddrReg:
		return c.reg.A[e.reg] & sz.Mask()
	case eaMemory:
		return c.readBus(sz, e.addr)
	case eaImmediate:
		return e.imm & sz.Mask()
	}
	return 0
}

// write stores a value at this effective address.
// Data register writes preserve upper bits for byte/word operations.
// Address register writes always store the full 32-bit value.
func (e ea) write(c *CPU, sz Size, val uint32) {
	switch e.mode {
	case eaDataReg:
		mask := sz.Mask()
		c.reg.D[e.reg] = (c.reg.D[e.reg] & ^mask) | (val & mask)
	case eaAddrReg:
		c.reg.A[e.reg] = val
	case eaMemory:
		c.writeBus(sz, e.addr, val)
	}
}

// address returns the memory address (only valid for memory EAs).
func (e ea) address() uint32 {
	return e.addr
}

// stride returns how far (An)+ and -(An) move the address register: the
// operand size, except that byte accesses through A7 move by two so the
// stack pointer stays word-aligned.
func stride(reg uint8, sz Size) uint32 {
	if reg == 7 && sz == Byte {
		return 2
	}
	return uint32(sz)
}

// resolveEA decodes and resolves an effective address from a mode/register
// pair (bits 5-3 and 2-0 of the standard EA field), fetching extension
// words from the instruction stream as needed. A mode/register combination
// outside the twelve defined modes raises an illegal-instruction exception.
func (c *CPU) resolveEA(mode, reg uint8, sz Size) ea {
	switch mode {
	case 0: // Dn
		return ea{mode: eaDataReg, reg: reg}

	case 1: // An
		return ea{mode: eaAddrReg, reg: reg}

	case 2: // (An)
		return ea{mode: eaMemory, addr: c.reg.A[reg]}

	case 3: // (An)+
		addr := c.reg.A[reg]
		c.reg.A[reg] += stride(reg, sz)
		return ea{mode: eaMemory, addr: addr}

	case 4: // -(An)
		c.reg.A[reg] -= stride(reg, sz)
		return ea{mode: eaMemory, addr: c.reg.A[reg]}

	case 5: // d16(An)
		disp := int16(c.fetchPC())
		return ea{mode: eaMemory, addr: uint32(int32(c.reg.A[reg]) + int32(disp))}

	case 6: // d8(An,Xn)
		ext := c.fetchPC()
		return ea{mode: eaMemory, addr: c.calcIndex(c.reg.A[reg], ext)}

	case 7:
		return c.resolveEA7(reg, sz)
	}

	c.exception(vecIllegalInstruction)
	return ea{}
}

// resolveEA7 handles the mode-7 group: absolute, PC-relative, and
// immediate operands, selected by the register field.
func (c *CPU) resolveEA7(reg uint8, sz Size) ea {
	switch reg {
	case 0: // abs.W, sign-extended to a full address
		addr := int16(c.fetchPC())
		return ea{mode: eaMemory, addr: uint32(int32(addr))}

	case 1: // abs.L
		return ea{mode: eaMemory, addr: c.fetchPCLong()}

	case 2: // d16(PC), displacement relative to the extension word
		pc := c.reg.PC
		disp := int16(c.fetchPC())
		return ea{mode: eaMemory, addr: uint32(int32(pc) + int32(disp))}

	case 3: // d8(PC,Xn)
		pc := c.reg.PC
		ext := c.fetchPC()
		return ea{mode: eaMemory, addr: c.calcIndex(pc, ext)}

	case 4: // #imm
		switch sz {
		case Byte:
			return ea{mode: eaImmediate, imm: uint32(c.fetchPC() & 0xFF)}
		case Word:
			return ea{mode: eaImmediate, imm: uint32(c.fetchPC())}
		case Long:
			return ea{mode: eaImmediate, imm: c.fetchPCLong()}
		}
	}

	c.exception(vecIllegalInstruction)
	return ea{}
}

// calcIndex computes a base + d8(Xn) indexed address from a brief extension
// word: bit 15 selects A/D, bits 14-12 the index register, bit 11 word or
// long index width, bits 7-0 the signed displacement.
func (c *CPU) calcIndex(base uint32, ext uint16) uint32 {
	disp := int8(ext & 0xFF)
	xn := (ext >> 12) & 7

	var idx int32
	if ext&0x8000 != 0 {
		idx = int32(c.reg.A[xn])
	} else {
		idx = int32(c.reg.D[xn])
	}

	// Bit 11: 0 = sign-extend word index, 1 = full long index
	if ext&0x0800 == 0 {
		idx = int32(int16(idx))
	}

	return uint32(int32(base) + idx + int32(disp))
}
