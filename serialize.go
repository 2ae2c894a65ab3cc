package m68k

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 2

// maxSerializedPending is the fixed number of pending-exception slots
// carried in the serialized state. Each of the six exception groups holds
// at most one entry, so the set can never overflow it.
const maxSerializedPending = 6

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 1 + 8*4 + 8*4 + 4 + 2 + 4 + 4 + 2 + 8 + 2 + 1 + 1 + 4 + 1 + 1 + maxSerializedPending*4 + 4

// SerializeSize is the number of bytes needed for Serialize/Deserialize.
const SerializeSize = cpuSerializeSize

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize bytes. Returns an error if the buffer is too small.
// Bus references are not included; the variant (MC68000 or SCC68070) is
// recorded so Deserialize can restore the matching CPUDetails table.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("m68k: serialize buffer too small")
	}
	if len(c.pending) > maxSerializedPending {
		return errors.New("m68k: too many pending exceptions to serialize")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	for i := 0; i < 8; i++ {
		be.PutUint32(buf[off:], c.reg.D[i])
		off += 4
	}
	for i := 0; i < 8; i++ {
		be.PutUint32(buf[off:], c.reg.A[i])
		off += 4
	}

	be.PutUint32(buf[off:], c.reg.PC)
	off += 4
	be.PutUint16(buf[off:], c.reg.SR)
	off += 2
	be.PutUint32(buf[off:], c.reg.USP)
	off += 4
	be.PutUint32(buf[off:], c.reg.SSP)
	off += 4
	be.PutUint16(buf[off:], c.reg.IR)
	off += 2

	be.PutUint64(buf[off:], c.cycles)
	off += 8
	be.PutUint16(buf[off:], c.ir)
	off += 2

	buf[off] = boolByte(c.stopped)
	off++
	buf[off] = boolByte(c.halted)
	off++

	be.PutUint32(buf[off:], c.prevPC)
	off += 4

	buf[off] = variantByte(c.details)
	off++

	buf[off] = uint8(len(c.pending))
	off++
	for i := 0; i < maxSerializedPending; i++ {
		if i < len(c.pending) {
			p := c.pending[i]
			buf[off] = p.vector
			buf[off+1] = uint8(p.group)
			buf[off+2] = p.level
			buf[off+3] = boolByte(p.autoVector)
		} else {
			buf[off] = 0
			buf[off+1] = 0
			buf[off+2] = 0
			buf[off+3] = 0
		}
		off += 4
	}

	be.PutUint32(buf[off:], uint32(int32(c.deficit)))
	return nil
}

func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func variantByte(d *CPUDetails) uint8 {
	if d == SCC68070 {
		return 1
	}
	return 0
}

func variantFromByte(b uint8) *CPUDetails {
	if b == 1 {
		return SCC68070
	}
	return MC68000
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize bytes. Returns an error if the buffer is too small or
// the version does not match. The bus and cycleBus fields are left unchanged.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("m68k: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("m68k: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	for i := 0; i < 8; i++ {
		c.reg.D[i] = be.Uint32(buf[off:])
		off += 4
	}
	for i := 0; i < 8; i++ {
		c.reg.A[i] = be.Uint32(buf[off:])
		off += 4
	}

	c.reg.PC = be.Uint32(buf[off:])
	off += 4
	c.reg.SR = be.Uint16(buf[off:])
	off += 2
	c.reg.USP = be.Uint32(buf[off:])
	off += 4
	c.reg.SSP = be.Uint32(buf[off:])
	off += 4
	c.reg.IR = be.Uint16(buf[off:])
	off += 2

	c.cycles = be.Uint64(buf[off:])
	off += 8
	c.ir = be.Uint16(buf[off:])
	off += 2

	c.stopped = buf[off] != 0
	off++
	c.halted = buf[off] != 0
	off++

	c.prevPC = be.Uint32(buf[off:])
	off += 4

	c.details = variantFromByte(buf[off])
	off++

	count := int(buf[off])
	off++
	c.pending = c.pending[:0]
	for i := 0; i < maxSerializedPending; i++ {
		if i < count {
			c.pending = append(c.pending, pendingException{
				vector:     buf[off],
				group:      exceptionGroup(buf[off+1]),
				level:      buf[off+2],
				autoVector: buf[off+3] != 0,
			})
		}
		off += 4
	}

	c.deficit = int(int32(be.Uint32(buf[off:])))
	return nil
}
