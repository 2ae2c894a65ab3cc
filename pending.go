package m68k

// exceptionGroup orders pending exceptions by priority. Entries with a
// lower group value are always serviced before entries with a higher one,
// matching the 68000 family's documented exception priority:
// reset, then access faults, then address faults, then the group-1
// synchronous faults, then pending interrupts, then the group-2 traps.
type exceptionGroup uint8

const (
	groupReset exceptionGroup = iota
	groupAccessError
	groupAddressError
	groupFault // illegal instruction, privilege violation, trace
	groupInterrupt
	groupTrap // TRAP, TRAPV, CHK, divide-by-zero
)

// pendingException is one entry in the CPU's priority-ordered pending set.
type pendingException struct {
	vector     uint8
	group      exceptionGroup
	level      uint8 // interrupt priority level (1-7); unused otherwise
	autoVector bool  // true if vector should be derived as 24+level
}

// raisePending inserts an exception into the pending set. Each group holds
// at most one entry: a fresh fault or interrupt of a given class replaces
// whatever of that class was already waiting.
func (c *CPU) raisePending(p pendingException) {
	for i := range c.pending {
		if c.pending[i].group == p.group {
			c.pending[i] = p
			return
		}
	}
	c.pending = append(c.pending, p)
}

// raise queues a synchronous fault exception (bus error, address error,
// illegal instruction, privilege violation, trace, CHK, TRAPV, or
// divide-by-zero) for immediate delivery.
func (c *CPU) raise(vector uint8) {
	c.raisePending(pendingException{vector: vector, group: groupForVector(vector)})
}

// groupForVector classifies a synchronous exception vector into its
// priority group.
func groupForVector(vector uint8) exceptionGroup {
	switch vector {
	case vecBusError:
		return groupAccessError
	case vecAddressError:
		return groupAddressError
	case vecIllegalInstruction, vecPrivilegeViolation, vecTrace, vecLineA, vecLineF:
		return groupFault
	default:
		return groupTrap
	}
}

// RequestInterrupt queues a hardware interrupt at the given priority level
// (1-7). Pass nil for vector to use auto-vectoring (vector = 24+level). A
// higher level replaces a lower level still waiting to be serviced.
func (c *CPU) RequestInterrupt(level uint8, vector *uint8) {
	for i := range c.pending {
		if c.pending[i].group == groupInterrupt {
			if level > c.pending[i].level {
				c.pending[i].level = level
				c.pending[i].autoVector = vector == nil
				if vector != nil {
					c.pending[i].vector = *vector
				}
			}
			return
		}
	}
	p := pendingException{group: groupInterrupt, level: level, autoVector: vector == nil}
	if vector != nil {
		p.vector = *vector
	}
	c.pending = append(c.pending, p)
}

// popPending removes and returns the highest-priority pending exception
// eligible for delivery right now, if any. An interrupt entry is eligible
// only once its level exceeds the current interrupt mask, or is level 7
// (non-maskable).
func (c *CPU) popPending() (pendingException, bool) {
	best := -1
	for i := range c.pending {
		p := c.pending[i]
		if p.group == groupInterrupt {
			mask := uint8((c.reg.SR >> 8) & 7)
			if p.level <= mask && p.level != 7 {
				continue
			}
		}
		if best == -1 || p.group < c.pending[best].group {
			best = i
		}
	}
	if best == -1 {
		return pendingException{}, false
	}
	p := c.pending[best]
	c.pending = append(c.pending[:best], c.pending[best+1:]...)
	return p, true
}

// hasPending reports whether an exception of the given group is waiting.
func (c *CPU) hasPending(g exceptionGroup) bool {
	for i := range c.pending {
		if c.pending[i].group == g {
			return true
		}
	}
	return false
}

// deliverPending services the highest-priority eligible pending exception,
// if any, and reports whether one was delivered.
func (c *CPU) deliverPending() bool {
	p, ok := c.popPending()
	if !ok {
		return false
	}
	c.stopped = false

	if p.group == groupReset {
		c.hardwareReset()
		c.cycles += c.details.VectorReset
		return true
	}

	if p.group == groupInterrupt {
		vec := p.vector
		if p.autoVector {
			vec = vecSpuriousInterrupt + p.level
		}
		c.deliverException(vec, c.reg.PC, int(p.level))
		return true
	}

	pushPC := c.reg.PC
	if p.group == groupFault && p.vector != vecTrace {
		// Group-1 faults push the address of the faulting instruction.
		// Trace is the exception: it fires after its instruction completed,
		// so its frame carries the next instruction's address.
		pushPC = c.prevPC
	}
	c.deliverException(p.vector, pushPC, -1)
	return true
}

// deliverException performs the common part of exception delivery shared
// by synchronous faults, traps, and interrupts: enter supervisor mode,
// optionally set a new interrupt mask, push the return frame in this
// variant's stack format, and load PC from the vector table. newLevel < 0
// leaves the interrupt mask unchanged.
func (c *CPU) deliverException(vector uint8, pushPC uint32, newLevel int) {
	if c.inException {
		// A fault occurred while already pushing an exception frame (e.g.
		// the stack pointer itself is misaligned): a double bus fault, the
		// one condition this CPU cannot recover from in software.
		c.halted = true
		return
	}
	c.inException = true
	defer func() { c.inException = false }()

	oldSR := c.reg.SR

	if c.reg.SR&flagS == 0 {
		c.reg.USP = c.reg.A[7]
		c.reg.A[7] = c.reg.SSP
	}
	c.reg.SR = (c.reg.SR | flagS) &^ flagT
	if newLevel >= 0 {
		c.reg.SR = (c.reg.SR & 0xF8FF) | uint16(newLevel)<<8
	}

	c.pushFrame(vector, pushPC, oldSR)

	addr := c.readBus(Long, uint32(vector)*4)
	if addr == 0 {
		addr = c.readBus(Long, vecUninitialized*4)
		if addr == 0 {
			c.halted = true
			return
		}
	}
	c.reg.PC = addr
	c.cycles += c.details.VectorExecutionTime(vector)
}

// pushFrame pushes the return frame for the given vector in this CPU
// variant's stack format. The SCC68070 always uses its format-code-0 mid
// frame (format/vector word, SR, PC); the MC68000 uses the 6-byte short
// frame for every exception in this implementation (the extended 14-byte
// bus/address-error frame is not synthesized, since this core does not
// track the faulting access's full bus-cycle state needed to fill it
// faithfully).
func (c *CPU) pushFrame(vector uint8, pushPC uint32, oldSR uint16) {
	switch c.details.StackFormat {
	case StackFormatSCC68070:
		c.pushLong(pushPC)
		c.pushWord(oldSR)
		c.pushWord(uint16(vector) * 4) // format 0, vector offset in low word
	default:
		c.pushLong(pushPC)
		c.pushWord(oldSR)
	}
}
