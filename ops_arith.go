package m68k

func init() {
	registerADD()
	registerADDA()
	registerADDI()
	registerADDQ()
	registerADDX()
	registerSUB()
	registerSUBA()
	registerSUBI()
	registerSUBQ()
	registerSUBX()
	registerCMP()
	registerCMPA()
	registerCMPI()
	registerCMPM()
	registerMULU()
	registerMULS()
	registerDIVU()
	registerDIVS()
	registerNEG()
	registerNEGX()
	registerCLR()
	registerEXT()
	registerCHK()
}

// --- ADD ---

// registerADD registers ADD <ea>,Dn and ADD Dn,<ea>.
// Encoding: 1101 DDD O SS eee eee
//
//	O=0: <ea>+Dn->Dn  O=1: Dn+<ea>-><ea>
func registerADD() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			// Direction 0: <ea>,Dn (all source EAs)
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					// An direct only valid for Word/Long
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0xD000 | dn<<9 | szBits<<6 | mode<<3 | reg
					opcodeTable[opcode] = opADDtoReg
				}
			}
			// Direction 1: Dn,<ea> (memory alterable only)
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					opcode := 0xD000 | dn<<9 | (szBits+4)<<6 | mode<<3 | reg
					opcodeTable[opcode] = opADDtoEA
				}
			}
		}
	}
}

func opADDtoReg(c *CPU) {
	dn := (c.ir >> 9) & 7
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, sz)
	s := src.read(c, sz)
	d := c.reg.D[dn] & sz.Mask()
	result := s + d
	c.setFlagsAdd(s, d, result, sz)

	mask := sz.Mask()
	c.reg.D[dn] = (c.reg.D[dn] & ^mask) | (result & mask)

	fetch := c.eaFetchCycles(mode, reg, sz)
	if sz != Long {
		c.cycles += c.details.ADD_REG_BW + fetch
	} else if mode >= 2 && !(mode == 7 && reg == 4) {
		c.cycles += c.details.ADD_REG_L + fetch
	} else {
		c.cycles += c.details.ADD_REG_L_RDIMM + fetch
	}
}

func opADDtoEA(c *CPU) {
	dn := (c.ir >> 9) & 7
	sz := sizeEncoding(((c.ir >> 6) & 7) - 4)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	s := c.reg.D[dn] & sz.Mask()
	result := s + d
	c.setFlagsAdd(s, d, result, sz)
	dst.write(c, sz, result)

	fetch := c.eaFetchCycles(mode, reg, sz)
	if sz == Long {
		c.cycles += c.details.ADD_MEM_L + fetch
	} else {
		c.cycles += c.details.ADD_MEM_BW + fetch
	}
}

// --- ADDA ---

func registerADDA() {
	for an := uint16(0); an < 8; an++ {
		for _, szBit := range []uint16{3, 7} { // 3=Word, 7=Long
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					opcode := 0xD000 | an<<9 | szBit<<6 | mode<<3 | reg
					opcodeTable[opcode] = opADDA
				}
			}
		}
	}
}

func opADDA(c *CPU) {
	an := (c.ir >> 9) & 7
	sz := Word
	if (c.ir>>6)&7 == 7 {
		sz = Long
	}
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, sz)
	val := src.read(c, sz)
	if sz == Word {
		val = uint32(int32(int16(val)))
	}
	c.reg.A[an] += val

	// ADDA does not affect condition codes
	fetch := c.eaFetchCycles(mode, reg, sz)
	switch {
	case sz == Word:
		c.cycles += c.details.ADDA_WORD + fetch
	case mode >= 2 && !(mode == 7 && reg == 4):
		c.cycles += c.details.ADDA_LONG + fetch
	default:
		c.cycles += c.details.ADDA_LONG_RDIMM + fetch
	}
}

// --- ADDI ---

func registerADDI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x0600 | szBits<<6 | mode<<3 | reg
				opcodeTable[opcode] = opADDI
			}
		}
	}
}

func opADDI(c *CPU) {
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	result := imm + d
	c.setFlagsAdd(imm, d, result, sz)
	dst.write(c, sz, result)

	if mode == 0 {
		if sz == Long {
			c.cycles += c.details.ADDI_REG_L
		} else {
			c.cycles += c.details.ADDI_REG_BW
		}
	} else {
		fetch := c.eaFetchCycles(mode, reg, sz)
		if sz == Long {
			c.cycles += c.details.ADDI_MEM_L + fetch
		} else {
			c.cycles += c.details.ADDI_MEM_BW + fetch
		}
	}
}

// --- ADDQ ---

func registerADDQ() {
	for data := uint16(0); data < 8; data++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					// Byte size not valid for An
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0x5000 | data<<9 | szBits<<6 | mode<<3 | reg
					opcodeTable[opcode] = opADDQ
				}
			}
		}
	}
}

func opADDQ(c *CPU) {
	data := uint32((c.ir >> 9) & 7)
	if data == 0 {
		data = 8
	}
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	if mode == 1 {
		// ADDQ to An: always 32-bit, no flags
		c.reg.A[reg] += data
		c.cycles += c.details.ADDQ_REG_L
		return
	}

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	result := data + d
	c.setFlagsAdd(data, d, result, sz)
	dst.write(c, sz, result)

	if mode == 0 {
		if sz == Long {
			c.cycles += c.details.ADDQ_REG_L
		} else {
			c.cycles += c.details.ADDQ_REG_BW
		}
	} else {
		fetch := c.eaFetchCycles(mode, reg, sz)
		if sz == Long {
			c.cycles += c.details.ADDQ_MEM_L + fetch
		} else {
			c.cycles += c.details.ADDQ_MEM_BW + fetch
		}
	}
}

// --- ADDX ---

func registerADDX() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				// Dn,Dn
				opcodeTable[0xD100|rx<<9|szBits<<6|ry] = opADDXreg
				// -(Ax),-(Ay)
				opcodeTable[0xD108|rx<<9|szBits<<6|ry] = opADDXmem
			}
		}
	}
}

func opADDXreg(c *CPU) {
	rx := (c.ir >> 9) & 7
	sz := sizeEncoding((c.ir >> 6) & 3)
	ry := c.ir & 7

	s := c.reg.D[ry]
	d := c.reg.D[rx]
	result, carry, overflow := extAdd(d, s, c.reg.SR&flagX != 0, sz)
	c.setFlagsExtended(result, carry, overflow, sz)

	mask := sz.Mask()
	c.reg.D[rx] = (c.reg.D[rx] & ^mask) | result

	if sz == Long {
		c.cycles += c.details.ADDX_REG_L
	} else {
		c.cycles += c.details.ADDX_REG_BW
	}
}

func opADDXmem(c *CPU) {
	rx := (c.ir >> 9) & 7
	sz := sizeEncoding((c.ir >> 6) & 3)
	ry := c.ir & 7

	src := c.resolveEA(4, uint8(ry), sz) // -(Ay)
	s := src.read(c, sz)
	dst := c.resolveEA(4, uint8(rx), sz) // -(Ax)
	d := dst.read(c, sz)
	result, carry, overflow := extAdd(d, s, c.reg.SR&flagX != 0, sz)
	c.setFlagsExtended(result, carry, overflow, sz)

	dst.write(c, sz, result)
	if sz == Long {
		c.cycles += c.details.ADDX_MEM_L
	} else {
		c.cycles += c.details.ADDX_MEM_BW
	}
}

// --- SUB ---

func registerSUB() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			// <ea>,Dn
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0x9000 | dn<<9 | szBits<<6 | mode<<3 | reg
					opcodeTable[opcode] = opSUBtoReg
				}
			}
			// Dn,<ea>
			for mode := uint16(2); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					opcode := 0x9000 | dn<<9 | (szBits+4)<<6 | mode<<3 | reg
					opcodeTable[opcode] = opSUBtoEA
				}
			}
		}
	}
}

func opSUBtoReg(c *CPU) {
	dn := (c.ir >> 9) & 7
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, sz)
	s := src.read(c, sz)
	d := c.reg.D[dn] & sz.Mask()
	result := d - s
	c.setFlagsSub(s, d, result, sz)

	mask := sz.Mask()
	c.reg.D[dn] = (c.reg.D[dn] & ^mask) | (result & mask)

	fetch := c.eaFetchCycles(mode, reg, sz)
	if sz != Long {
		c.cycles += c.details.SUB_REG_BW + fetch
	} else if mode >= 2 && !(mode == 7 && reg == 4) {
		c.cycles += c.details.SUB_REG_L + fetch
	} else {
		c.cycles += c.details.SUB_REG_L_RDIMM + fetch
	}
}

func opSUBtoEA(c *CPU) {
	dn := (c.ir >> 9) & 7
	sz := sizeEncoding(((c.ir >> 6) & 7) - 4)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	s := c.reg.D[dn] & sz.Mask()
	result := d - s
	c.setFlagsSub(s, d, result, sz)
	dst.write(c, sz, result)

	fetch := c.eaFetchCycles(mode, reg, sz)
	if sz == Long {
		c.cycles += c.details.SUB_MEM_L + fetch
	} else {
		c.cycles += c.details.SUB_MEM_BW + fetch
	}
}

// --- SUBA ---

func registerSUBA() {
	for an := uint16(0); an < 8; an++ {
		for _, szBit := range []uint16{3, 7} {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					opcode := 0x9000 | an<<9 | szBit<<6 | mode<<3 | reg
					opcodeTable[opcode] = opSUBA
				}
			}
		}
	}
}

func opSUBA(c *CPU) {
	an := (c.ir >> 9) & 7
	sz := Word
	if (c.ir>>6)&7 == 7 {
		sz = Long
	}
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, sz)
	val := src.read(c, sz)
	if sz == Word {
		val = uint32(int32(int16(val)))
	}
	c.reg.A[an] -= val

	fetch := c.eaFetchCycles(mode, reg, sz)
	switch {
	case sz == Word:
		c.cycles += c.details.SUBA_WORD + fetch
	case mode >= 2 && !(mode == 7 && reg == 4):
		c.cycles += c.details.SUBA_LONG + fetch
	default:
		c.cycles += c.details.SUBA_LONG_RDIMM + fetch
	}
}

// --- SUBI ---

func registerSUBI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x0400 | szBits<<6 | mode<<3 | reg
				opcodeTable[opcode] = opSUBI
			}
		}
	}
}

func opSUBI(c *CPU) {
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	result := d - imm
	c.setFlagsSub(imm, d, result, sz)
	dst.write(c, sz, result)

	if mode == 0 {
		if sz == Long {
			c.cycles += c.details.SUBI_REG_L
		} else {
			c.cycles += c.details.SUBI_REG_BW
		}
	} else {
		fetch := c.eaFetchCycles(mode, reg, sz)
		if sz == Long {
			c.cycles += c.details.SUBI_MEM_L + fetch
		} else {
			c.cycles += c.details.SUBI_MEM_BW + fetch
		}
	}
}

// --- SUBQ ---

func registerSUBQ() {
	for data := uint16(0); data < 8; data++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 1 {
						continue
					}
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0x5100 | data<<9 | szBits<<6 | mode<<3 | reg
					opcodeTable[opcode] = opSUBQ
				}
			}
		}
	}
}

func opSUBQ(c *CPU) {
	data := uint32((c.ir >> 9) & 7)
	if data == 0 {
		data = 8
	}
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	if mode == 1 {
		c.reg.A[reg] -= data
		c.cycles += c.details.SUBQ_AREG_BW
		return
	}

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	result := d - data
	c.setFlagsSub(data, d, result, sz)
	dst.write(c, sz, result)

	if mode == 0 {
		if sz == Long {
			c.cycles += c.details.SUBQ_REG_L
		} else {
			c.cycles += c.details.SUBQ_DREG_BW
		}
	} else {
		fetch := c.eaFetchCycles(mode, reg, sz)
		if sz == Long {
			c.cycles += c.details.SUBQ_MEM_L + fetch
		} else {
			c.cycles += c.details.SUBQ_MEM_BW + fetch
		}
	}
}

// --- SUBX ---

func registerSUBX() {
	for rx := uint16(0); rx < 8; rx++ {
		for ry := uint16(0); ry < 8; ry++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				opcodeTable[0x9100|rx<<9|szBits<<6|ry] = opSUBXreg
				opcodeTable[0x9108|rx<<9|szBits<<6|ry] = opSUBXmem
			}
		}
	}
}

func opSUBXreg(c *CPU) {
	rx := (c.ir >> 9) & 7
	sz := sizeEncoding((c.ir >> 6) & 3)
	ry := c.ir & 7

	s := c.reg.D[ry]
	d := c.reg.D[rx]
	result, borrow, overflow := extSub(d, s, c.reg.SR&flagX != 0, sz)
	c.setFlagsExtended(result, borrow, overflow, sz)

	mask := sz.Mask()
	c.reg.D[rx] = (c.reg.D[rx] & ^mask) | result

	if sz == Long {
		c.cycles += c.details.SUBX_REG_L
	} else {
		c.cycles += c.details.SUBX_REG_BW
	}
}

func opSUBXmem(c *CPU) {
	rx := (c.ir >> 9) & 7
	sz := sizeEncoding((c.ir >> 6) & 3)
	ry := c.ir & 7

	src := c.resolveEA(4, uint8(ry), sz)
	s := src.read(c, sz)
	dst := c.resolveEA(4, uint8(rx), sz)
	d := dst.read(c, sz)
	result, borrow, overflow := extSub(d, s, c.reg.SR&flagX != 0, sz)
	c.setFlagsExtended(result, borrow, overflow, sz)

	dst.write(c, sz, result)
	if sz == Long {
		c.cycles += c.details.SUBX_MEM_L
	} else {
		c.cycles += c.details.SUBX_MEM_BW
	}
}

// --- CMP ---

func registerCMP() {
	for dn := uint16(0); dn < 8; dn++ {
		for szBits := uint16(0); szBits < 3; szBits++ {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					if mode == 1 && szBits == 0 {
						continue
					}
					opcode := 0xB000 | dn<<9 | szBits<<6 | mode<<3 | reg
					opcodeTable[opcode] = opCMP
				}
			}
		}
	}
}

func opCMP(c *CPU) {
	dn := (c.ir >> 9) & 7
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, sz)
	s := src.read(c, sz)
	d := c.reg.D[dn] & sz.Mask()
	result := d - s
	c.setFlagsCmp(s, d, result, sz)

	fetch := c.eaFetchCycles(mode, reg, sz)
	if sz == Long {
		c.cycles += c.details.CMP_L + fetch
	} else {
		c.cycles += c.details.CMP_BW + fetch
	}
}

// --- CMPA ---

func registerCMPA() {
	for an := uint16(0); an < 8; an++ {
		for _, szBit := range []uint16{3, 7} {
			for mode := uint16(0); mode < 8; mode++ {
				for reg := uint16(0); reg < 8; reg++ {
					if mode == 7 && reg > 4 {
						continue
					}
					opcode := 0xB000 | an<<9 | szBit<<6 | mode<<3 | reg
					opcodeTable[opcode] = opCMPA
				}
			}
		}
	}
}

func opCMPA(c *CPU) {
	an := (c.ir >> 9) & 7
	sz := Word
	if (c.ir>>6)&7 == 7 {
		sz = Long
	}
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, sz)
	val := src.read(c, sz)
	if sz == Word {
		val = uint32(int32(int16(val)))
	}
	d := c.reg.A[an]
	result := d - val
	c.setFlagsCmp(val, d, result, Long)

	c.cycles += c.details.CMPA + c.eaFetchCycles(mode, reg, sz)
}

// --- CMPI ---

func registerCMPI() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x0C00 | szBits<<6 | mode<<3 | reg
				opcodeTable[opcode] = opCMPI
			}
		}
	}
}

func opCMPI(c *CPU) {
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	var imm uint32
	if sz == Long {
		imm = c.fetchPCLong()
	} else {
		imm = uint32(c.fetchPC()) & sz.Mask()
	}

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	result := d - imm
	c.setFlagsCmp(imm, d, result, sz)

	if mode == 0 {
		if sz == Long {
			c.cycles += c.details.CMPI_REG_L
		} else {
			c.cycles += c.details.CMPI_REG_BW
		}
	} else {
		fetch := c.eaFetchCycles(mode, reg, sz)
		if sz == Long {
			c.cycles += c.details.CMPI_MEM_L + fetch
		} else {
			c.cycles += c.details.CMPI_MEM_BW + fetch
		}
	}
}

// --- CMPM ---

func registerCMPM() {
	for ax := uint16(0); ax < 8; ax++ {
		for ay := uint16(0); ay < 8; ay++ {
			for szBits := uint16(0); szBits < 3; szBits++ {
				opcode := 0xB108 | ax<<9 | szBits<<6 | ay
				opcodeTable[opcode] = opCMPM
			}
		}
	}
}

func opCMPM(c *CPU) {
	sz := sizeEncoding((c.ir >> 6) & 3)
	ay := c.ir & 7
	ax := (c.ir >> 9) & 7

	src := c.resolveEA(3, uint8(ay), sz) // (Ay)+
	s := src.read(c, sz)
	dst := c.resolveEA(3, uint8(ax), sz) // (Ax)+
	d := dst.read(c, sz)
	result := d - s
	c.setFlagsCmp(s, d, result, sz)

	if sz == Long {
		c.cycles += c.details.CMPM_L
	} else {
		c.cycles += c.details.CMPM_BW
	}
}

// --- MULU ---

func registerMULU() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := 0xC0C0 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opMULU
			}
		}
	}
}

func opMULU(c *CPU) {
	dn := (c.ir >> 9) & 7
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, Word)
	s := src.read(c, Word)
	d := c.reg.D[dn] & 0xFFFF
	result := s * d
	c.reg.D[dn] = result

	c.setFlagsLogical(result, Long)
	c.cycles += c.details.MULU + c.eaFetchCycles(mode, reg, Word) // base varies with operand bits; table carries the worst case
}

// --- MULS ---

func registerMULS() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := 0xC1C0 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opMULS
			}
		}
	}
}

func opMULS(c *CPU) {
	dn := (c.ir >> 9) & 7
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, Word)
	s := int32(int16(src.read(c, Word)))
	d := int32(int16(c.reg.D[dn] & 0xFFFF))
	result := uint32(s * d)
	c.reg.D[dn] = result

	c.setFlagsLogical(result, Long)
	c.cycles += c.details.MULS + c.eaFetchCycles(mode, reg, Word) // base varies with operand bits; table carries the worst case
}

// --- DIVU ---

func registerDIVU() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := 0x80C0 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opDIVU
			}
		}
	}
}

func opDIVU(c *CPU) {
	dn := (c.ir >> 9) & 7
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, Word)
	divisor := src.read(c, Word)

	if divisor == 0 {
		c.exception(vecDivideByZero)
		return
	}

	dividend := c.reg.D[dn]
	quotient := dividend / divisor
	remainder := dividend % divisor

	if quotient > 0xFFFF {
		// Overflow
		c.reg.SR |= flagV
		c.reg.SR &^= flagC
	} else {
		c.reg.D[dn] = (remainder&0xFFFF)<<16 | (quotient & 0xFFFF)
		c.setFlagsLogical(quotient, Word)
	}

	c.cycles += c.details.DIVU + c.eaFetchCycles(mode, reg, Word) // base varies with operand bits; table carries the worst case
}

// --- DIVS ---

func registerDIVS() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := 0x81C0 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opDIVS
			}
		}
	}
}

func opDIVS(c *CPU) {
	dn := (c.ir >> 9) & 7
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, Word)
	divisor := int32(int16(src.read(c, Word)))

	if divisor == 0 {
		c.exception(vecDivideByZero)
		return
	}

	dividend := int32(c.reg.D[dn])
	quotient := dividend / divisor
	remainder := dividend % divisor

	if quotient > 32767 || quotient < -32768 {
		c.reg.SR |= flagV | flagN
		c.reg.SR &^= flagC | flagZ
	} else {
		c.reg.D[dn] = uint32(remainder&0xFFFF)<<16 | uint32(quotient)&0xFFFF
		c.setFlagsLogical(uint32(quotient), Word)
	}

	c.cycles += c.details.DIVS + c.eaFetchCycles(mode, reg, Word) // base varies with operand bits; table carries the worst case
}

// --- NEG ---

func registerNEG() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x4400 | szBits<<6 | mode<<3 | reg
				opcodeTable[opcode] = opNEG
			}
		}
	}
}

func opNEG(c *CPU) {
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	result := uint32(0) - d
	c.setFlagsSub(d, 0, result, sz)
	dst.write(c, sz, result)

	if mode == 0 {
		if sz == Long {
			c.cycles += c.details.NEG_REG_L
		} else {
			c.cycles += c.details.NEG_REG_BW
		}
	} else {
		fetch := c.eaFetchCycles(mode, reg, sz)
		if sz == Long {
			c.cycles += c.details.NEG_MEM_L + fetch
		} else {
			c.cycles += c.details.NEG_MEM_BW + fetch
		}
	}
}

// --- NEGX ---

func registerNEGX() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x4000 | szBits<<6 | mode<<3 | reg
				opcodeTable[opcode] = opNEGX
			}
		}
	}
}

func opNEGX(c *CPU) {
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	dst := c.resolveEA(mode, reg, sz)
	d := dst.read(c, sz)
	result, borrow, overflow := extSub(0, d, c.reg.SR&flagX != 0, sz)
	c.setFlagsExtended(result, borrow, overflow, sz)
	dst.write(c, sz, result)

	if mode == 0 {
		if sz == Long {
			c.cycles += c.details.NEGX_REG_L
		} else {
			c.cycles += c.details.NEGX_REG_BW
		}
	} else {
		fetch := c.eaFetchCycles(mode, reg, sz)
		if sz == Long {
			c.cycles += c.details.NEGX_MEM_L + fetch
		} else {
			c.cycles += c.details.NEGX_MEM_BW + fetch
		}
	}
}

// --- CLR ---

func registerCLR() {
	for szBits := uint16(0); szBits < 3; szBits++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 1 {
					continue
				}
				opcode := 0x4200 | szBits<<6 | mode<<3 | reg
				opcodeTable[opcode] = opCLR
			}
		}
	}
}

func opCLR(c *CPU) {
	sz := sizeEncoding((c.ir >> 6) & 3)
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	dst := c.resolveEA(mode, reg, sz)
	dst.write(c, sz, 0)

	// CLR always sets Z, clears NVC
	c.reg.SR &^= flagN | flagV | flagC
	c.reg.SR |= flagZ

	if mode == 0 {
		if sz == Long {
			c.cycles += c.details.CLR_REG_L
		} else {
			c.cycles += c.details.CLR_REG_BW
		}
	} else {
		fetch := c.eaFetchCycles(mode, reg, sz)
		if sz == Long {
			c.cycles += c.details.CLR_MEM_L + fetch
		} else {
			c.cycles += c.details.CLR_MEM_BW + fetch
		}
	}
}

// --- EXT ---

func registerEXT() {
	for dn := uint16(0); dn < 8; dn++ {
		// EXT.W (byte->word): opmode 010
		opcodeTable[0x4880|dn] = opEXTW
		// EXT.L (word->long): opmode 011
		opcodeTable[0x48C0|dn] = opEXTL
	}
}

func opEXTW(c *CPU) {
	dn := c.ir & 7
	val := uint32(int16(int8(c.reg.D[dn])))
	c.reg.D[dn] = (c.reg.D[dn] & 0xFFFF0000) | (val & 0xFFFF)
	c.setFlagsLogical(val, Word)
	c.cycles += c.details.EXT
}

func opEXTL(c *CPU) {
	dn := c.ir & 7
	val := uint32(int32(int16(c.reg.D[dn])))
	c.reg.D[dn] = val
	c.setFlagsLogical(val, Long)
	c.cycles += c.details.EXT
}

// --- CHK ---

// registerCHK registers CHK <ea>,Dn (word only on 68000).
// Encoding: 0100 DDD 110 MMM RRR
func registerCHK() {
	for dn := uint16(0); dn < 8; dn++ {
		for mode := uint16(0); mode < 8; mode++ {
			if mode == 1 {
				continue
			}
			for reg := uint16(0); reg < 8; reg++ {
				if mode == 7 && reg > 4 {
					continue
				}
				opcode := 0x4180 | dn<<9 | mode<<3 | reg
				opcodeTable[opcode] = opCHK
			}
		}
	}
}

func opCHK(c *CPU) {
	dn := (c.ir >> 9) & 7
	mode := uint8((c.ir >> 3) & 7)
	reg := uint8(c.ir & 7)

	src := c.resolveEA(mode, reg, Word)
	bound := int16(src.read(c, Word))
	val := int16(c.reg.D[dn] & 0xFFFF)

	if val < 0 {
		c.reg.SR &^= flagN | flagZ | flagV | flagC
		c.reg.SR |= flagN
		c.exception(vecCHK)
		return
	}
	if val > bound {
		c.reg.SR &^= flagN | flagZ | flagV | flagC
		c.exception(vecCHK)
		return
	}

	c.cycles += c.details.CHK_NO_TRAP + c.eaFetchCycles(mode, reg, Word)
}
