package domain

import "encoding/binary"

// CounterSize returns ctr(n): the number of bytes needed for an unsigned
// little-endian counter that must be able to hold values up to n.
// Grounded on hivekit's width-adaptive encode helpers (internal/format/encoding.go)
// but here the width itself is data-dependent rather than fixed per field.
func CounterSize(n int) int {
	switch {
	case n <= 0xFF:
		return 1
	case n <= 0xFFFF:
		return 2
	default:
		return 4
	}
}

// GetCounter reads a little-endian unsigned counter of the given width at off.
func GetCounter(b []byte, off, width int) uint32 {
	switch width {
	case 1:
		return uint32(b[off])
	case 2:
		return uint32(binary.LittleEndian.Uint16(b[off : off+2]))
	default:
		return binary.LittleEndian.Uint32(b[off : off+4])
	}
}

// SetCounter writes v as a little-endian unsigned counter of the given width at off.
func SetCounter(b []byte, off, width int, v uint32) {
	switch width {
	case 1:
		b[off] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b[off:off+2], uint16(v))
	default:
		binary.LittleEndian.PutUint32(b[off:off+4], v)
	}
}
