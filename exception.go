package m68k

// MC68000 family exception vector numbers.
const (
	vecResetSSP           = 0
	vecResetPC            = 1
	vecBusError           = 2
	vecAddressError       = 3
	vecIllegalInstruction = 4
	vecDivideByZero       = 5
	vecCHK                = 6
	vecTRAPV              = 7
	vecPrivilegeViolation = 8
	vecTrace              = 9
	vecLineA              = 10
	vecLineF              = 11
	vecUninitialized      = 15
	vecSpuriousInterrupt  = 24
	vecAutoVector1        = 25
	vecTrap0              = 32 // TRAP #0 through TRAP #15 = vectors 32-47
)

// exception queues a synchronous fault or trap for immediate delivery and
// drains it right away. Instruction handlers call this the moment they
// detect a condition the processor defines as exceptional (illegal
// opcode, privilege violation, CHK/TRAPV/TRAP, division by zero); on real
// hardware these are precise faults serviced before anything else the
// current instruction would otherwise have done, so raising and
// delivering happen back to back rather than waiting for the next Step.
func (c *CPU) exception(vector int) {
	c.raise(uint8(vector))
	c.deliverPending()
}
