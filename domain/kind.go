package domain

// Kind enumerates the eleven basic scalar kinds a Basic domain may hold.
// Mirrors the basic-kind cases of original_source/src/common.hpp's Domen::Variant,
// rendered as a byte enum with a width table the way hivekit's format package
// pairs small enums with their on-the-wire sizes (internal/format/consts.go).
type Kind byte

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
	KindBool
)

var kindNames = [...]string{
	KindU8:   "U8",
	KindU16:  "U16",
	KindU32:  "U32",
	KindU64:  "U64",
	KindI8:   "I8",
	KindI16:  "I16",
	KindI32:  "I32",
	KindI64:  "I64",
	KindF32:  "F32",
	KindF64:  "F64",
	KindBool: "Bool",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "InvalidKind"
}

// Width returns the natural byte width of k.
func (k Kind) Width() int {
	switch k {
	case KindU8, KindI8, KindBool:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32:
		return 4
	case KindU64, KindI64, KindF64:
		return 8
	}
	return 0
}
