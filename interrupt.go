package m68k

// checkInterrupt services any pending hardware interrupt that is currently
// eligible given the CPU's interrupt mask. Called at the start of every
// Step; delivery (if any) uses the same priority-ordered pending-exception
// path as synchronous faults.
func (c *CPU) checkInterrupt() {
	c.deliverPending()
}
