package m68k

func init() {
	registerBcc()
	registerBRA()
	registerBSR()
	registerDBcc()
	registerJMP()
	registerJSR()
	registerRTS()
	registerRTE()
	registerRTR()
	registerScc()
}

// --- Bcc ---

func registerBcc() {
	// Encoding: 0110 CCCC DDDDDDDD
	// CC = condition (2-15; 0=BRA, 1=BSR handled separately)
	// DD = 8-bit displacement (0 = 16-bit extension, FF = 32-bit extension on 020+)
	for cc := uint16(2); cc < 16; cc++ {
		for disp := uint16(0); disp < 256; disp++ {
			opcode := 0x6000 | cc<<8 | disp
			opcodeTable[opcode] = opBcc
		}
	}
}

func opBcc(c *CPU) {
	cc := (c.ir >> 8) & 0xF
	disp := int32(int8(c.ir & 0xFF))
	base := c.reg.PC // PC after opcode fetch = instruction address + 2

	if disp == 0 {
		disp = int32(int16(c.fetchPC()))
	}

	if c.testCondition(cc) {
		// Displacement is relative to instruction address + 2
		c.reg.PC = uint32(int32(base) + disp)
		c.cycles += c.details.BCC_BRANCH
	} else if int8(c.ir&0xFF) == 0 {
		c.cycles += c.details.BCC_NO_BRANCH_WORD
	} else {
		c.cycles += c.details.BCC_NO_BRANCH_BYTE
	}
}

// --- BRA ---

func registerBRA() {
	for disp := uint16(0); disp < 256; disp++ {
		opcode := 0x6000 | disp
		opcodeTable[opcode] = opBRA
	}
}

func opBRA(c *CPU) {
	disp := int32(int8(c.ir & 0xFF))
	base := c.reg.PC // PC after fetching opcode word

	if disp == 0 {
		disp = int32(int16(c.fetchPC()))
		c.cycles += c.details.BRA_WORD
	} else {
		c.cycles += c.details.BRA_BYTE
	}

	c.reg.PC = uint32(int32(base) + disp)
}

// --- BSR ---

func registerBSR() {
	for disp := uint16(0); disp < 256; disp++ {
		opcode := 0x6100 | disp
		opcodeTable[opcode] = opBSR
	}
}

func opBSR(c *CPU) {
	disp := int32(int8(c.ir & 0xFF))
	base := c.reg.PC

	if disp == 0 {
		disp = int32(int16(c.fetchPC()))
		c.cycles += c.details.BSR_WORD
	} else {
		c.cycles += c.details.BSR_BYTE
	}

	c.pushLong(c.reg.PC)
	c.reg.PC = uint32(int32(base) + disp)
}

// --- DBcc ---

func registerDBcc() {
	// Encoding: 0101 CCCC 1100 1DDD
	for cc := uint16(0); cc < 16; cc++ {
		for dn := uint16(0); dn < 8; dn++ {
			opcode := 0x50C8 | cc<<8 | dn
			opcodeTable[opcode] = opDBcc
		}
	}
}

func opDBcc(c *CPU) {
	cc := (c.ir >> 8) & 0xF
	dn := c.ir & 7

	disp := int16(c.fetchPC())

	if c.testCondition(cc) {
		// Condition true: no branch, no decrement
		c.cycles += c.details.DBCC_TRUE
		return
	}

	// Decrement low word of Dn
	val := int16(c.reg.D[dn]&0xFFFF) - 1
	c.reg.D[dn] = (c.reg.D[dn] & 0xFFFF0000) | uint32(uint16(val))

	if val == -1 {
		// Counter expired: fall through
		c.cycles += c.details.DBCC_FALSE_NO_BRANCH
	} else {
		// Branch
		c.reg.PC = uint32(int32(c.reg.PC) - 2 + int32(disp))
		c.cycles += c.details.DBCC_FALSE_BRANCH
	}
}

// --- JMP ---

func registerJMP() {
	// Encoding: 0100 1110 11ss ssss (control addressing modes)
	for mode := uint16(2); mode < 8; mode++ {
		if mode == 3 || mode == 4 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			opcode := 0x4EC0 | mode<<3 | reg
			opcodeTable[opcode] = opJMP
		}
	}
}

func opJMP(c *CPU) {
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	dst := c.resolveEA(mode, reg, Word)
	c.reg.PC = dst.address()

	c.cycles += c.jumpCycles(mode, reg, false)
}

// jumpCycles returns the per-EA-mode cost of a JMP or JSR for this variant.
func (c *CPU) jumpCycles(mode, reg uint8, jsr bool) uint64 {
	d := c.details
	switch mode {
	case 2:
		if jsr {
			return d.JSR_ARI
		}
		return d.JMP_ARI
	case 5:
		if jsr {
			return d.JSR_ARIWD
		}
		return d.JMP_ARIWD
	case 6:
		if jsr {
			return d.JSR_ARIWI8
		}
		return d.JMP_ARIWI8
	case 7:
		switch reg {
		case 0:
			if jsr {
				return d.JSR_ABSSHORT
			}
			return d.JMP_ABSSHORT
		case 1:
			if jsr {
				return d.JSR_ABSLONG
			}
			return d.JMP_ABSLONG
		case 2:
			if jsr {
				return d.JSR_PCIWD
			}
			return d.JMP_PCIWD
		case 3:
			if jsr {
				return d.JSR_PCIWI8
			}
			return d.JMP_PCIWI8
		}
	}
	return 0
}

// --- JSR ---

func registerJSR() {
	for mode := uint16(2); mode < 8; mode++ {
		if mode == 3 || mode == 4 {
			continue
		}
		for reg := uint16(0); reg < 8; reg++ {
			if mode == 7 && reg > 3 {
				continue
			}
			opcode := 0x4E80 | mode<<3 | reg
			opcodeTable[opcode] = opJSR
		}
	}
}

func opJSR(c *CPU) {
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	dst := c.resolveEA(mode, reg, Word)
	c.pushLong(c.reg.PC)
	c.reg.PC = dst.address()

	c.cycles += c.jumpCycles(mode, reg, true)
}

// --- RTS ---

func registerRTS() {
	opcodeTable[0x4E75] = opRTS
}

func opRTS(c *CPU) {
	c.reg.PC = c.popLong()
	c.cycles += c.details.RTS
}

// --- RTE ---

func registerRTE() {
	opcodeTable[0x4E73] = opRTE
}

func opRTE(c *CPU) {
	if !c.supervisor() {
		c.exception(vecPrivilegeViolation)
		return
	}

	// The SCC68070 frame carries a format/vector word above the SR; the
	// MC68000 short frame starts directly at the SR.
	if c.details.StackFormat == StackFormatSCC68070 {
		c.popWord()
	}
	sr := c.popWord()
	pc := c.popLong()
	c.setSR(sr)
	c.reg.PC = pc

	c.cycles += c.details.RTE
}

// --- RTR ---

func registerRTR() {
	opcodeTable[0x4E77] = opRTR
}

func opRTR(c *CPU) {
	ccr := c.popWord()
	c.setCCR(uint8(ccr))
	c.reg.PC = c.popLong()

	c.cycles += c.details.RTR
}

// --- Scc ---

func registerScc() {
	// Encoding: 0101 CCCC 11ss ssss
	for cc := uint16(0); cc < 16; cc++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x50C0 | cc<<8 | mode<<3 | reg
				opcodeTable[opcode] = opScc
			}
		}
	}
}

func opScc(c *CPU) {
	cc := (c.ir >> 8) & 0xF
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	dst := c.resolveEA(mode, reg, Byte)

	if c.testCondition(cc) {
		dst.write(c, Byte, 0xFF)
		if mode == 0 {
			c.cycles += c.details.SCC_REG_TRUE
		} else {
			c.cycles += c.details.SCC_MEM_TRUE + c.eaWriteCycles(mode, reg, Byte)
		}
	} else {
		dst.write(c, Byte, 0x00)
		if mode == 0 {
			c.cycles += c.details.SCC_REG_FALSE
		} else {
			c.cycles += c.details.SCC_MEM_FALSE + c.eaWriteCycles(mode, reg, Byte)
		}
	}
}
