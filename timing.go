package m68k

// eaFetchCycles returns the source operand EA timing for this CPU's variant.
// For register-direct modes (Dn, An) returns 0. For memory/immediate modes
// returns the fetch cost from the variant's EA timing table. Long adds 4 to
// all non-zero values, matching the extra extension-word fetch.
func (c *CPU) eaFetchCycles(mode, reg uint8, sz Size) uint64 {
	base := c.details.eaTiming(mode, reg)
	if sz == Long && base > 0 {
		base += 4
	}
	return base
}

// eaWriteCycles returns the destination EA write timing for this CPU's
// variant. Same as eaFetchCycles except -(An) costs the same as the other
// simple memory modes rather than the predecrement-read cost (writing
// doesn't need the extra cycle needed to decrement-then-read).
func (c *CPU) eaWriteCycles(mode, reg uint8, sz Size) uint64 {
	var base uint64
	switch mode {
	case 0, 1: // Dn, An
		base = 0
	case 2, 3, 4: // (An), (An)+, -(An)
		base = c.details.EA_ARI
	case 5: // d16(An)
		base = c.details.EA_ARIWD
	case 6: // d8(An,Xn)
		base = c.details.EA_ARIWI8
	case 7:
		switch reg {
		case 0: // abs.W
			base = c.details.EA_ABSSHORT
		case 1: // abs.L
			base = c.details.EA_ABSLONG
		}
	}
	if sz == Long && base > 0 {
		base += 4
	}
	return base
}
