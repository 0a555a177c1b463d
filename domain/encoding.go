package domain

import "encoding/binary"

// Little-endian scalar encode/decode helpers backing Basic reads/writes.
// Grounded on hivekit's internal/format/encoding.go, which wraps
// encoding/binary.LittleEndian the same way after benchmarking unsafe
// alternatives and finding no measurable benefit.

func leGet16(b []byte) uint16 { return binary.LittleEndian.Uint16(b[:2]) }
func leGet32(b []byte) uint32 { return binary.LittleEndian.Uint32(b[:4]) }
func leGet64(b []byte) uint64 { return binary.LittleEndian.Uint64(b[:8]) }

func lePut16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b[:2], v) }
func lePut32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b[:4], v) }
func lePut64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b[:8], v) }
