package domain

import (
	"fmt"
	"math"

	"github.com/toadb/toadb/internal/bufcheck"
)

// View is a non-owning (domain, byte-pointer) cursor (spec.md §3). It is
// cheaply copied and performs every read/write in the package — the only
// place that manipulates raw bytes, per spec.md §4.2. Grounded on hivekit's
// VK/NK types (hive/vk.go, hive/nk.go), which are likewise plain
// "buf + offset" structs with no hidden state.
type View struct {
	reg       *Registry
	domainIdx int
	buf       []byte
	off       int
}

// NewView builds a View over buf at byte offset off for the domain at domainIdx.
// Callers that already hold a Value should prefer Value.View.
func NewView(reg *Registry, domainIdx int, buf []byte, off int) View {
	return View{reg: reg, domainIdx: domainIdx, buf: buf, off: off}
}

// Registry returns the shared registry this view resolves its domain through.
func (v View) Registry() *Registry { return v.reg }

// DomainIndex returns the registry index of this view's domain.
func (v View) DomainIndex() int { return v.domainIdx }

func (v View) domain() (*Domain, error) { return v.reg.Get(v.domainIdx) }

// SizeOf returns size_of(v's domain).
func (v View) SizeOf() (int, error) { return v.reg.SizeOf(v.domainIdx) }

// bytes returns v's backing slice for n bytes starting at its offset. A
// registry-derived offset is always in bounds; a failure here means the
// caller built a View over the wrong buffer.
func (v View) bytes(n int) []byte {
	b, ok := bufcheck.Slice(v.buf, v.off, n)
	if !ok {
		panic(fmt.Sprintf("domain: view offset %d/%d out of bounds for buffer of length %d", v.off, n, len(v.buf)))
	}
	return b
}

// -----------------------------------------------------------------------
// Basic read/write
// -----------------------------------------------------------------------

// Basic is the set of Go types that may back a Basic domain's value.
type Basic interface {
	uint8 | uint16 | uint32 | uint64 | int8 | int16 | int32 | int64 | float32 | float64 | bool
}

func kindOf[T Basic]() Kind {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return KindU8
	case uint16:
		return KindU16
	case uint32:
		return KindU32
	case uint64:
		return KindU64
	case int8:
		return KindI8
	case int16:
		return KindI16
	case int32:
		return KindI32
	case int64:
		return KindI64
	case float32:
		return KindF32
	case float64:
		return KindF64
	case bool:
		return KindBool
	}
	panic("domain: unreachable basic kind")
}

func typeName[T Basic]() string {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return "uint8"
	case uint16:
		return "uint16"
	case uint32:
		return "uint32"
	case uint64:
		return "uint64"
	case int8:
		return "int8"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case bool:
		return "bool"
	}
	return "?"
}

// UnwrapBasic reads v's buffer as T. Fails with UnwrapInvalidVariant if T
// does not match the domain's basic Kind (spec.md §4.2).
func UnwrapBasic[T Basic](v View) (T, error) {
	var zero T
	d, err := v.domain()
	if err != nil {
		return zero, err
	}
	want := kindOf[T]()
	if d.Shape != ShapeBasic || d.Kind != want {
		return zero, &UnwrapInvalidVariant{Domain: d.Name, Want: d.Kind, Got: typeName[T]()}
	}
	return readBasic[T](v.bytes(want.Width())), nil
}

// SetBasic writes val into v's buffer as T. Fails with UnwrapInvalidVariant
// if T does not match the domain's basic Kind.
func SetBasic[T Basic](v View, val T) error {
	d, err := v.domain()
	if err != nil {
		return err
	}
	want := kindOf[T]()
	if d.Shape != ShapeBasic || d.Kind != want {
		return &UnwrapInvalidVariant{Domain: d.Name, Want: d.Kind, Got: typeName[T]()}
	}
	writeBasic(v.bytes(want.Width()), val)
	return nil
}

func readBasic[T Basic](b []byte) T {
	var out T
	switch p := any(&out).(type) {
	case *uint8:
		*p = b[0]
	case *uint16:
		*p = leGet16(b)
	case *uint32:
		*p = leGet32(b)
	case *uint64:
		*p = leGet64(b)
	case *int8:
		*p = int8(b[0])
	case *int16:
		*p = int16(leGet16(b))
	case *int32:
		*p = int32(leGet32(b))
	case *int64:
		*p = int64(leGet64(b))
	case *float32:
		*p = math.Float32frombits(leGet32(b))
	case *float64:
		*p = math.Float64frombits(leGet64(b))
	case *bool:
		*p = b[0] != 0
	}
	return out
}

func writeBasic[T Basic](b []byte, val T) {
	switch x := any(val).(type) {
	case uint8:
		b[0] = x
	case uint16:
		lePut16(b, x)
	case uint32:
		lePut32(b, x)
	case uint64:
		lePut64(b, x)
	case int8:
		b[0] = byte(x)
	case int16:
		lePut16(b, uint16(x))
	case int32:
		lePut32(b, uint32(x))
	case int64:
		lePut64(b, uint64(x))
	case float32:
		lePut32(b, math.Float32bits(x))
	case float64:
		lePut64(b, math.Float64bits(x))
	case bool:
		if x {
			b[0] = 1
		} else {
			b[0] = 0
		}
	}
}

// -----------------------------------------------------------------------
// Complex navigation: Mul field access, Add selection
// -----------------------------------------------------------------------

// Field navigates to a named field of a Mul or Add domain (spec.md §4.2).
// For Mul, the returned view is the packed sub-field at its declared offset.
// For Add, selecting a field also transitions the tag to that field's index;
// a tagless field has no payload, so the returned view is the zero View and
// must not be read or written further.
func (v View) Field(name string) (View, error) {
	d, err := v.domain()
	if err != nil {
		return View{}, err
	}
	if d.Shape != ShapeComplex {
		return View{}, &NotComplexVariant{Domain: d.Name}
	}
	idx := d.FieldIndex(name)
	if idx < 0 {
		return View{}, &DomainHasNoSuchField{Domain: d.Name, Field: name}
	}
	return v.fieldAtIndex(d, idx)
}

// FieldAt navigates to the field at position i within a Mul or Add domain's
// field list (spec.md §4.2's "view[i] by position").
func (v View) FieldAt(i int) (View, error) {
	d, err := v.domain()
	if err != nil {
		return View{}, err
	}
	if d.Shape != ShapeComplex {
		return View{}, &NotComplexVariant{Domain: d.Name}
	}
	if i < 0 || i >= len(d.Fields) {
		return View{}, &FieldIndexOutOfRange{Domain: d.Name, Index: i, Len: len(d.Fields)}
	}
	return v.fieldAtIndex(d, i)
}

func (v View) fieldAtIndex(d *Domain, idx int) (View, error) {
	f := d.Fields[idx]
	if d.Variant == VariantMul {
		off := v.off
		for i := 0; i < idx; i++ {
			sz, err := v.reg.SizeOf(d.Fields[i].DomainIndex)
			if err != nil {
				return View{}, err
			}
			off += sz
		}
		return View{reg: v.reg, domainIdx: f.DomainIndex, buf: v.buf, off: off}, nil
	}

	// Add: selecting a field transitions the tag.
	tagWidth := CounterSize(len(d.Fields))
	SetCounter(v.buf, v.off, tagWidth, uint32(idx))
	if !f.HasDomain {
		return View{}, nil
	}
	return View{reg: v.reg, domainIdx: f.DomainIndex, buf: v.buf, off: v.off + tagWidth}, nil
}

// GetVariant reads the selected case index of an Add domain. Fails with
// NotAddVariant otherwise.
func (v View) GetVariant() (int, error) {
	d, err := v.domain()
	if err != nil {
		return 0, err
	}
	if d.Shape != ShapeComplex || d.Variant != VariantAdd {
		return 0, &NotAddVariant{Domain: d.Name}
	}
	tagWidth := CounterSize(len(d.Fields))
	return int(GetCounter(v.buf, v.off, tagWidth)), nil
}

// -----------------------------------------------------------------------
// Array operations
// -----------------------------------------------------------------------

func (v View) arrayDomain() (*Domain, error) {
	d, err := v.domain()
	if err != nil {
		return nil, err
	}
	if d.Shape != ShapeArray {
		return nil, &NotArrayVariant{Domain: d.Name}
	}
	return d, nil
}

// Length reads the array's current element count.
func (v View) Length() (int, error) {
	d, err := v.arrayDomain()
	if err != nil {
		return 0, err
	}
	width := CounterSize(d.Capacity)
	return int(GetCounter(v.buf, v.off, width)), nil
}

// SetLength sets the array's element count. Fails with
// ArrayLengthOutOfBounds if n exceeds capacity.
func (v View) SetLength(n int) error {
	d, err := v.arrayDomain()
	if err != nil {
		return err
	}
	if n > d.Capacity || n < 0 {
		return &ArrayLengthOutOfBounds{Domain: d.Name, Length: n, Capacity: d.Capacity}
	}
	width := CounterSize(d.Capacity)
	SetCounter(v.buf, v.off, width, uint32(n))
	return nil
}

// elemAt returns the sub-view of element i without any bounds check against
// the current length; used internally by Push/PushBasic (which write the new
// element before bumping the length counter), Assign, and rendering.
func (v View) elemAt(d *Domain, i int) (View, error) {
	elemSize, err := v.reg.SizeOf(d.ElemIndex)
	if err != nil {
		return View{}, err
	}
	ctrWidth := CounterSize(d.Capacity)
	off := v.off + ctrWidth + i*elemSize
	return View{reg: v.reg, domainIdx: d.ElemIndex, buf: v.buf, off: off}, nil
}

// Elem returns the view of element i. Fails with ArrayIndexOutOfRange if i is
// at or beyond the current length (spec.md §4.2's "operator[i]").
func (v View) Elem(i int) (View, error) {
	d, err := v.arrayDomain()
	if err != nil {
		return View{}, err
	}
	length, err := v.Length()
	if err != nil {
		return View{}, err
	}
	if i < 0 || i >= length {
		return View{}, &ArrayIndexOutOfRange{Domain: d.Name, Index: i, Length: length}
	}
	return v.elemAt(d, i)
}

// PushBasic bumps the array's length by one and writes val into the new
// slot. The array's element domain must be Basic of kind T.
func PushBasic[T Basic](v View, val T) error {
	d, err := v.arrayDomain()
	if err != nil {
		return err
	}
	length, err := v.Length()
	if err != nil {
		return err
	}
	if length >= d.Capacity {
		return &ArrayLengthOutOfBounds{Domain: d.Name, Length: length + 1, Capacity: d.Capacity}
	}
	slot, err := v.elemAt(d, length)
	if err != nil {
		return err
	}
	if err := SetBasic(slot, val); err != nil {
		return err
	}
	return v.SetLength(length + 1)
}

// Push bumps the array's length by one and assigns src into the new slot,
// after checking src is compatible with the array's element domain.
func (v View) Push(src View) error {
	d, err := v.arrayDomain()
	if err != nil {
		return err
	}
	if !v.reg.IsCompatible(d.ElemIndex, src.domainIdx) {
		elemDomain, _ := v.reg.Get(d.ElemIndex)
		srcDomain, _ := v.reg.Get(src.domainIdx)
		return &AssignIncompatibleDomains{Dst: elemDomain.Name, Src: srcDomain.Name}
	}
	length, err := v.Length()
	if err != nil {
		return err
	}
	if length >= d.Capacity {
		return &ArrayLengthOutOfBounds{Domain: d.Name, Length: length + 1, Capacity: d.Capacity}
	}
	slot, err := v.elemAt(d, length)
	if err != nil {
		return err
	}
	if err := slot.Assign(src); err != nil {
		return err
	}
	return v.SetLength(length + 1)
}

// Pop decrements the array's length. Fails with PopFromEmptyArray if the
// array is currently empty.
func (v View) Pop() error {
	d, err := v.arrayDomain()
	if err != nil {
		return err
	}
	length, err := v.Length()
	if err != nil {
		return err
	}
	if length == 0 {
		return &PopFromEmptyArray{Domain: d.Name}
	}
	return v.SetLength(length - 1)
}

// -----------------------------------------------------------------------
// Assignment
// -----------------------------------------------------------------------

// Assign copies src into v (dst.assign(src) in spec.md §4.2). The domains
// must be compatible per Registry.IsCompatible; see spec.md §4.2 for the
// per-shape algorithm.
func (v View) Assign(src View) error {
	dstDomain, err := v.domain()
	if err != nil {
		return err
	}
	srcDomain, err := src.domain()
	if err != nil {
		return err
	}
	if !v.reg.IsCompatible(v.domainIdx, src.domainIdx) {
		return &AssignIncompatibleDomains{Dst: dstDomain.Name, Src: srcDomain.Name}
	}

	switch dstDomain.Shape {
	case ShapeBasic:
		size := dstDomain.Kind.Width()
		copy(v.bytes(size), src.bytes(size))
		return nil

	case ShapeArray:
		srcLen, err := src.Length()
		if err != nil {
			return err
		}
		if srcLen > dstDomain.Capacity {
			return &ArrayLengthOutOfBounds{Domain: dstDomain.Name, Length: srcLen, Capacity: dstDomain.Capacity}
		}
		if err := v.SetLength(srcLen); err != nil {
			return err
		}
		for i := 0; i < srcLen; i++ {
			dstElem, err := v.elemAt(dstDomain, i)
			if err != nil {
				return err
			}
			srcElem, err := src.elemAt(srcDomain, i)
			if err != nil {
				return err
			}
			if err := dstElem.Assign(srcElem); err != nil {
				return err
			}
		}
		return nil

	case ShapeComplex:
		if dstDomain.Variant == VariantAdd {
			tag, err := src.GetVariant()
			if err != nil {
				return err
			}
			if tag >= len(dstDomain.Fields) {
				return &AssignIncompatibleDomains{Dst: dstDomain.Name, Src: srcDomain.Name}
			}
			tagWidth := CounterSize(len(dstDomain.Fields))
			SetCounter(v.buf, v.off, tagWidth, uint32(tag))
			f := dstDomain.Fields[tag]
			if !f.HasDomain {
				return nil
			}
			dstPayload := View{reg: v.reg, domainIdx: f.DomainIndex, buf: v.buf, off: v.off + tagWidth}
			srcPayload := View{reg: v.reg, domainIdx: srcDomain.Fields[tag].DomainIndex, buf: src.buf, off: src.off + tagWidth}
			return dstPayload.Assign(srcPayload)
		}

		dstOff, srcOff := v.off, src.off
		for i, f := range dstDomain.Fields {
			dstFieldSize, err := v.reg.SizeOf(f.DomainIndex)
			if err != nil {
				return err
			}
			srcFieldSize, err := v.reg.SizeOf(srcDomain.Fields[i].DomainIndex)
			if err != nil {
				return err
			}
			dstField := View{reg: v.reg, domainIdx: f.DomainIndex, buf: v.buf, off: dstOff}
			srcField := View{reg: v.reg, domainIdx: srcDomain.Fields[i].DomainIndex, buf: src.buf, off: srcOff}
			if err := dstField.Assign(srcField); err != nil {
				return err
			}
			dstOff += dstFieldSize
			srcOff += srcFieldSize
		}
		return nil

	default:
		return &InvalidVariantValue{Value: byte(dstDomain.Shape)}
	}
}
