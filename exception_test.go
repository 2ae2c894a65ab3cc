package m68k

import "testing"

// TestResetSequence boots a CPU through vector 0: the first Step delivers
// the pending hardware reset, loading SSP from address 0 and PC from
// address 4, and charges the variant's reset vector time.
func TestResetSequence(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 0, 0x00001000) // initial SSP
	writeLong(bus, 4, 0x00000008) // initial PC

	cpu := New(bus)
	cycles := cpu.Step()

	reg := cpu.Registers()
	if reg.A[7] != 0x1000 || reg.SSP != 0x1000 {
		t.Errorf("SSP = 0x%08X (A7 0x%08X), want 0x00001000", reg.SSP, reg.A[7])
	}
	if reg.PC != 0x8 {
		t.Errorf("PC = 0x%08X, want 0x00000008", reg.PC)
	}
	if reg.SR&flagS == 0 {
		t.Error("supervisor bit clear after reset")
	}
	if reg.SR&flagT != 0 {
		t.Error("trace bit set after reset")
	}
	if cycles != int(MC68000.VectorReset) {
		t.Errorf("reset consumed %d cycles, want %d", cycles, MC68000.VectorReset)
	}
	if len(cpu.pending) != 0 {
		t.Errorf("%d exceptions still pending after reset", len(cpu.pending))
	}
}

// TestIdleBranchLoop runs the canonical bra.s $-2 idle loop after reset:
// every step lands back on the same instruction with no pending exceptions.
func TestIdleBranchLoop(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 0, 0x00001000)
	writeLong(bus, 4, 0x00000008)
	writeWord(bus, 8, 0x60FE) // bra.s $-2

	cpu := New(bus)
	cpu.Step() // deliver reset

	for i := 0; i < 3; i++ {
		cycles := cpu.Step()
		if got := cpu.Registers().PC; got != 8 {
			t.Fatalf("step %d: PC = 0x%08X, want 0x00000008", i, got)
		}
		if cycles != int(MC68000.BRA_BYTE) {
			t.Fatalf("step %d: %d cycles, want %d", i, cycles, MC68000.BRA_BYTE)
		}
		if len(cpu.pending) != 0 {
			t.Fatalf("step %d: %d exceptions pending", i, len(cpu.pending))
		}
	}
}

// TestIllegalInstructionFrame checks that the explicit ILLEGAL opcode pushes
// an MC68000 short frame (SR then PC, six bytes) and vectors through entry 4.
func TestIllegalInstructionFrame(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 0x10, 0x2000) // illegal-instruction handler
	writeWord(bus, 0x1000, 0x4AFC)

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})
	cpu.Step()

	reg := cpu.Registers()
	if reg.PC != 0x2000 {
		t.Errorf("PC = 0x%08X, want 0x00002000", reg.PC)
	}
	if reg.A[7] != 0x10000-6 {
		t.Errorf("SSP = 0x%08X, want 0x%08X (6-byte frame)", reg.A[7], 0x10000-6)
	}
	if sr := bus.Read(Word, 0xFFFA); sr != 0x2700 {
		t.Errorf("stacked SR = 0x%04X, want 0x2700", sr)
	}
	if pc := bus.Read(Long, 0xFFFC); pc != 0x1000 {
		t.Errorf("stacked PC = 0x%08X, want 0x00001000", pc)
	}
}

// TestPrivilegeViolation executes MOVE to SR in user mode: vector 8 fires
// and delivery itself enters supervisor mode.
func TestPrivilegeViolation(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 0x20, 0x3000) // privilege-violation handler
	writeWord(bus, 0x1000, 0x46C0)

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x0000, USP: 0x8000, SSP: 0x10000})
	cpu.Step()

	reg := cpu.Registers()
	if reg.SR&flagS == 0 {
		t.Error("supervisor bit clear after privilege-violation delivery")
	}
	if reg.PC != 0x3000 {
		t.Errorf("PC = 0x%08X, want 0x00003000", reg.PC)
	}
	if reg.A[7] != 0x10000-6 {
		t.Errorf("frame pushed to 0x%08X, want SSP 0x%08X", reg.A[7], 0x10000-6)
	}
	if reg.USP != 0x8000 {
		t.Errorf("USP = 0x%08X, want 0x00008000", reg.USP)
	}
}

// TestCMPByteUnderflow pins the CCR after CMP.B D0,D1 with D1-D0 wrapping:
// 0x01 - 0x80 sets N, V, and C, clears Z, and leaves X alone.
func TestCMPByteUnderflow(t *testing.T) {
	bus := &testBus{}
	writeWord(bus, 0x1000, 0xB200) // cmp.b d0,d1

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{
		D:   [8]uint32{0x00000080, 0x00000001},
		PC:  0x1000,
		SR:  0x2700 | flagX,
		SSP: 0x10000,
	})
	cpu.Step()

	reg := cpu.Registers()
	if reg.SR&flagN == 0 {
		t.Error("N clear, want set")
	}
	if reg.SR&flagZ != 0 {
		t.Error("Z set, want clear")
	}
	if reg.SR&flagV == 0 {
		t.Error("V clear, want set")
	}
	if reg.SR&flagC == 0 {
		t.Error("C clear, want set")
	}
	if reg.SR&flagX == 0 {
		t.Error("X changed, want untouched")
	}
	if reg.D[1] != 0x00000001 {
		t.Errorf("D1 = 0x%08X, want 0x00000001 (CMP must not store)", reg.D[1])
	}
}

// TestDIVUByZero checks that dividing by zero vectors through entry 5 and
// leaves the destination register untouched.
func TestDIVUByZero(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 0x14, 0x4000) // zero-divide handler
	writeWord(bus, 0x1000, 0x80FC) // divu.w #imm,d0
	writeWord(bus, 0x1002, 0x0000)

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{
		D:   [8]uint32{0x12345678},
		PC:  0x1000,
		SR:  0x2700,
		SSP: 0x10000,
	})
	cpu.Step()

	reg := cpu.Registers()
	if reg.PC != 0x4000 {
		t.Errorf("PC = 0x%08X, want 0x00004000", reg.PC)
	}
	if reg.D[0] != 0x12345678 {
		t.Errorf("D0 = 0x%08X, want 0x12345678 (unchanged)", reg.D[0])
	}
}

// TestSCC68070Timing checks that the variant table drives instruction cost:
// the same NOP costs 4 cycles on an MC68000 and 7 on an SCC68070.
func TestSCC68070Timing(t *testing.T) {
	for _, tc := range []struct {
		details *CPUDetails
		want    int
	}{
		{MC68000, 4},
		{SCC68070, 7},
	} {
		bus := &testBus{}
		writeWord(bus, 0x1000, 0x4E71)
		cpu := NewNoReset(bus, tc.details)
		cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})
		if got := cpu.Step(); got != tc.want {
			t.Errorf("%s: NOP = %d cycles, want %d", tc.details.Name, got, tc.want)
		}
	}
}

// TestSCC68070Frame checks the SCC68070 format-0 frame: format/vector word
// on top of SR and PC (eight bytes), and that RTE unwinds it.
func TestSCC68070Frame(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 0x10, 0x2000) // illegal-instruction handler
	writeWord(bus, 0x1000, 0x4AFC)
	writeWord(bus, 0x2000, 0x4E73) // rte

	cpu := NewNoReset(bus, SCC68070)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})
	cpu.Step()

	reg := cpu.Registers()
	if reg.A[7] != 0x10000-8 {
		t.Fatalf("SSP = 0x%08X, want 0x%08X (8-byte frame)", reg.A[7], 0x10000-8)
	}
	if fv := bus.Read(Word, 0xFFF8); fv != 0x0010 {
		t.Errorf("format/vector word = 0x%04X, want 0x0010", fv)
	}
	if sr := bus.Read(Word, 0xFFFA); sr != 0x2700 {
		t.Errorf("stacked SR = 0x%04X, want 0x2700", sr)
	}
	if pc := bus.Read(Long, 0xFFFC); pc != 0x1000 {
		t.Errorf("stacked PC = 0x%08X, want 0x00001000", pc)
	}
	if reg.PC != 0x2000 {
		t.Fatalf("PC = 0x%08X, want 0x00002000", reg.PC)
	}

	cpu.Step() // rte
	reg = cpu.Registers()
	if reg.PC != 0x1000 {
		t.Errorf("PC after RTE = 0x%08X, want 0x00001000", reg.PC)
	}
	if reg.A[7] != 0x10000 {
		t.Errorf("SSP after RTE = 0x%08X, want 0x00010000", reg.A[7])
	}
}

// TestTrace checks that with T set an instruction completes and then
// vectors through entry 9, stacking the next instruction's address, and
// that delivery clears T so the handler itself is not traced.
func TestTrace(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 0x24, 0x5000) // trace handler
	fillNOPs(bus, 0x1000, 2)
	fillNOPs(bus, 0x5000, 2)

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700 | flagT, SSP: 0x10000})
	cpu.Step()

	reg := cpu.Registers()
	if reg.PC != 0x5000 {
		t.Fatalf("PC = 0x%08X, want 0x00005000 (trace handler)", reg.PC)
	}
	if reg.SR&flagT != 0 {
		t.Error("T still set inside the trace handler")
	}
	if pc := bus.Read(Long, 0xFFFC); pc != 0x1002 {
		t.Errorf("stacked PC = 0x%08X, want 0x00001002 (after the traced NOP)", pc)
	}

	// The handler runs untraced.
	cpu.Step()
	if got := cpu.Registers().PC; got != 0x5002 {
		t.Errorf("PC = 0x%08X, want 0x00005002", got)
	}
}

// TestInterruptMasking checks that a level-1 interrupt waits while the mask
// is 7, fires once the mask drops, and raises the mask to its own level.
func TestInterruptMasking(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 25*4, 0x5000) // autovector level 1
	fillNOPs(bus, 0x1000, 4)
	fillNOPs(bus, 0x5000, 4)

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	cpu.RequestInterrupt(1, nil)
	cpu.Step()
	if got := cpu.Registers().PC; got != 0x1002 {
		t.Fatalf("masked interrupt delivered: PC = 0x%08X", got)
	}
	if len(cpu.pending) != 1 {
		t.Fatalf("masked interrupt dropped from pending set")
	}

	cpu.setSR(0x2000) // lower the mask to 0
	cycles := cpu.Step()
	reg := cpu.Registers()
	if reg.PC != 0x5002 {
		t.Fatalf("PC = 0x%08X, want 0x00005002 (handler entered, one NOP run)", reg.PC)
	}
	if mask := (reg.SR >> 8) & 7; mask != 1 {
		t.Errorf("interrupt mask = %d, want 1", mask)
	}
	want := int(MC68000.VectorExecutionTime(25)) + int(MC68000.NOP)
	if cycles != want {
		t.Errorf("delivery step = %d cycles, want %d", cycles, want)
	}
}

// TestNonMaskableInterrupt checks that level 7 is delivered even at mask 7.
func TestNonMaskableInterrupt(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 31*4, 0x5000) // autovector level 7
	fillNOPs(bus, 0x1000, 2)
	fillNOPs(bus, 0x5000, 2)

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	cpu.RequestInterrupt(7, nil)
	cpu.Step()
	if got := cpu.Registers().PC; got != 0x5002 {
		t.Errorf("PC = 0x%08X, want 0x00005002", got)
	}
}

// TestExternalResetRequest checks that RequestReset displaces other pending
// exceptions and reboots through vector 0 at the next step.
func TestExternalResetRequest(t *testing.T) {
	bus := &testBus{}
	writeLong(bus, 0, 0x20000)
	writeLong(bus, 4, 0x6000)
	fillNOPs(bus, 0x1000, 2)

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	cpu.RequestInterrupt(2, nil)
	cpu.RequestReset()
	cycles := cpu.Step()

	reg := cpu.Registers()
	if reg.PC != 0x6000 || reg.A[7] != 0x20000 {
		t.Errorf("PC/SSP = 0x%08X/0x%08X, want 0x6000/0x20000", reg.PC, reg.A[7])
	}
	if cycles != int(MC68000.VectorReset) {
		t.Errorf("reset step = %d cycles, want %d", cycles, MC68000.VectorReset)
	}
	if len(cpu.pending) != 0 {
		t.Errorf("%d exceptions survived the reset", len(cpu.pending))
	}
}

// TestDecoderTable spot-checks the opcode table: known instructions decode,
// the explicit ILLEGAL and the unimplemented line-A/line-F blocks do not.
func TestDecoderTable(t *testing.T) {
	known := []uint16{
		0x4E71, // nop
		0x4E75, // rts
		0x60FE, // bra.s
		0xB200, // cmp.b d0,d1
		0x3010, // move.w (a0),d0
		0xD040, // add.w d0,d0
		0xC0FC, // mulu #imm,d0
		0x48E7, // movem.l regs,-(a7)
	}
	for _, op := range known {
		if opcodeTable[op] == nil {
			t.Errorf("opcode 0x%04X has no handler", op)
		}
	}

	if opcodeTable[0x4AFC] != nil {
		t.Error("ILLEGAL (0x4AFC) must not decode")
	}
	for op := 0xA000; op <= 0xAFFF; op++ {
		if opcodeTable[op] != nil {
			t.Fatalf("line-A opcode 0x%04X has a handler", op)
		}
	}
	for op := 0xF000; op <= 0xFFFF; op++ {
		if opcodeTable[op] != nil {
			t.Fatalf("line-F opcode 0x%04X has a handler", op)
		}
	}

	valid := 0
	for op := 0; op < 65536; op++ {
		if opcodeTable[op] != nil {
			valid++
		}
	}
	if valid < 30000 {
		t.Errorf("only %d opcodes decode; table looks underpopulated", valid)
	}
}

// TestProgramIterator checks big-endian word streaming, address tracking,
// and the odd-address fault.
func TestProgramIterator(t *testing.T) {
	bus := &testBus{}
	writeWord(bus, 0x100, 0x1234)
	writeWord(bus, 0x102, 0xABCD)

	it := NewProgramIterator(bus, 0x100)
	if w, vec := it.Next(); w != 0x1234 || vec != 0 {
		t.Errorf("first word = 0x%04X vec %d, want 0x1234 vec 0", w, vec)
	}
	if it.Addr() != 0x102 {
		t.Errorf("Addr() = 0x%08X, want 0x00000102", it.Addr())
	}
	if w, vec := it.Next(); w != 0xABCD || vec != 0 {
		t.Errorf("second word = 0x%04X vec %d, want 0xABCD vec 0", w, vec)
	}

	odd := NewProgramIterator(bus, 0x101)
	if _, vec := odd.Next(); vec != vecAddressError {
		t.Errorf("odd fetch vec = %d, want %d", vec, vecAddressError)
	}
}

// TestRegisterAccessors checks the partial-width data register writes and
// the A7 stack-pointer aliasing.
func TestRegisterAccessors(t *testing.T) {
	cpu := NewNoReset(&testBus{}, MC68000)

	cpu.SetDataReg(0, 0xAABBCCDD)
	cpu.SetDataRegByte(0, 0x11)
	if got := cpu.DataReg(0); got != 0xAABBCC11 {
		t.Errorf("byte write: D0 = 0x%08X, want 0xAABBCC11", got)
	}
	cpu.SetDataRegWord(0, 0x2233)
	if got := cpu.DataReg(0); got != 0xAABB2233 {
		t.Errorf("word write: D0 = 0x%08X, want 0xAABB2233", got)
	}

	// Supervisor mode: A7 is the SSP and writes keep the shadow in sync.
	cpu.SetAddrReg(7, 0x9000)
	if got := cpu.AddrReg(7); got != 0x9000 {
		t.Errorf("A7 = 0x%08X, want 0x00009000", got)
	}
	if cpu.reg.SSP != 0x9000 {
		t.Errorf("SSP shadow = 0x%08X, want 0x00009000", cpu.reg.SSP)
	}
}

// TestPeekNextWord checks that peeking does not advance PC.
func TestPeekNextWord(t *testing.T) {
	bus := &testBus{}
	writeWord(bus, 0x1000, 0x4E71)

	cpu := NewNoReset(bus, MC68000)
	cpu.SetState(Registers{PC: 0x1000, SR: 0x2700, SSP: 0x10000})

	if w := cpu.PeekNextWord(); w != 0x4E71 {
		t.Errorf("PeekNextWord = 0x%04X, want 0x4E71", w)
	}
	if got := cpu.Registers().PC; got != 0x1000 {
		t.Errorf("PC moved to 0x%08X on peek", got)
	}
	if w := cpu.NextWord(); w != 0x4E71 {
		t.Errorf("NextWord = 0x%04X, want 0x4E71", w)
	}
	if got := cpu.Registers().PC; got != 0x1002 {
		t.Errorf("PC = 0x%08X after NextWord, want 0x00001002", got)
	}
}
