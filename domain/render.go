package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// Render produces the canonical textual form of v (to_string in spec.md
// §4.2 / §6): basics as "Name(value)", arrays as "Name cap:len [ e1, e2, … ]",
// Mul as "Name { f1: v1, f2: v2, … }", Add as "Name::case" or
// "Name::case(payload)". Arrays of the text aliases (Str/String/Text/BigText)
// additionally get the decoded text appended as a quoted string after the
// closing bracket. This is a debugging/display form, not required to
// round-trip through the parser.
func Render(v View) (string, error) {
	d, err := v.domain()
	if err != nil {
		return "", err
	}
	switch d.Shape {
	case ShapeBasic:
		return renderBasic(v, d)
	case ShapeArray:
		return renderArray(v, d)
	case ShapeComplex:
		if d.Variant == VariantAdd {
			return renderAdd(v, d)
		}
		return renderMul(v, d)
	default:
		return "", &InvalidVariantValue{Value: byte(d.Shape)}
	}
}

// String renders v, panicking only if v's domain/buffer violate the
// package's own invariants (a malformed Registry, never normal data).
func (v View) String() string {
	s, err := Render(v)
	if err != nil {
		panic(err)
	}
	return s
}

func renderBasic(v View, d *Domain) (string, error) {
	var val string
	switch d.Kind {
	case KindU8:
		x, err := UnwrapBasic[uint8](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%d", x)
	case KindU16:
		x, err := UnwrapBasic[uint16](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%d", x)
	case KindU32:
		x, err := UnwrapBasic[uint32](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%d", x)
	case KindU64:
		x, err := UnwrapBasic[uint64](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%d", x)
	case KindI8:
		x, err := UnwrapBasic[int8](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%d", x)
	case KindI16:
		x, err := UnwrapBasic[int16](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%d", x)
	case KindI32:
		x, err := UnwrapBasic[int32](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%d", x)
	case KindI64:
		x, err := UnwrapBasic[int64](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%d", x)
	case KindF32:
		x, err := UnwrapBasic[float32](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%f", x)
	case KindF64:
		x, err := UnwrapBasic[float64](v)
		if err != nil {
			return "", err
		}
		val = fmt.Sprintf("%f", x)
	case KindBool:
		x, err := UnwrapBasic[bool](v)
		if err != nil {
			return "", err
		}
		if x {
			val = "true"
		} else {
			val = "false"
		}
	default:
		return "", &InvalidVariantValue{Value: byte(d.Kind)}
	}
	return fmt.Sprintf("%s(%s)", d.Name, val), nil
}

func renderArray(v View, d *Domain) (string, error) {
	length, err := v.Length()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d:%d [ ", d.Name, d.Capacity, length)
	for i := 0; i < length; i++ {
		elem, err := v.elemAt(d, i)
		if err != nil {
			return "", err
		}
		s, err := Render(elem)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		b.WriteString(", ")
	}
	b.WriteString("]")

	if textArrayAliases[d.Name] {
		if decoded, ok := decodeTextArray(v, d, length); ok {
			fmt.Fprintf(&b, " %q", decoded)
		}
	}
	return b.String(), nil
}

// decodeTextArray decodes a text-array's raw I8 bytes via charmap, the way
// hivekit's internal/reader decodes legacy 8-bit registry names
// (internal/reader/key.go's use of charmap.Windows1252). Used only to
// enrich to_string's display; it never affects the canonical bracketed
// element listing.
func decodeTextArray(v View, d *Domain, length int) (string, bool) {
	ctrWidth := CounterSize(d.Capacity)
	elemSize, err := v.reg.SizeOf(d.ElemIndex)
	if err != nil || elemSize != 1 {
		return "", false
	}
	raw := v.buf[v.off+ctrWidth : v.off+ctrWidth+length]
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

func renderMul(v View, d *Domain) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s { ", d.Name)
	off := v.off
	for _, f := range d.Fields {
		field := View{reg: v.reg, domainIdx: f.DomainIndex, buf: v.buf, off: off}
		s, err := Render(field)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s: %s, ", f.Name, s)
		sz, err := v.reg.SizeOf(f.DomainIndex)
		if err != nil {
			return "", err
		}
		off += sz
	}
	b.WriteString("}")
	return b.String(), nil
}

func renderAdd(v View, d *Domain) (string, error) {
	tag, err := v.GetVariant()
	if err != nil {
		return "", err
	}
	if tag < 0 || tag >= len(d.Fields) {
		return "", &InvalidVariantValue{Value: byte(tag)}
	}
	f := d.Fields[tag]
	if !f.HasDomain {
		return fmt.Sprintf("%s::%s", d.Name, f.Name), nil
	}
	tagWidth := CounterSize(len(d.Fields))
	payload := View{reg: v.reg, domainIdx: f.DomainIndex, buf: v.buf, off: v.off + tagWidth}
	s, err := Render(payload)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s::%s(%s)", d.Name, f.Name, s), nil
}
