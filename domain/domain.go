package domain

// Shape discriminates the three domain forms named in spec.md §3: Basic,
// Array, and Complex (Mul/Add). Modeled as a sum type with one constructor
// per kind per the tagged-union design note in spec.md §9, rather than the
// C prototype's untagged union (original_source/src/common.hpp's Domen).
type Shape byte

const (
	ShapeBasic Shape = iota
	ShapeArray
	ShapeComplex
)

func (s Shape) String() string {
	switch s {
	case ShapeBasic:
		return "Basic"
	case ShapeArray:
		return "Array"
	case ShapeComplex:
		return "Complex"
	default:
		return "InvalidShape"
	}
}

// ComplexVariant discriminates the two complex shapes: Mul (product/record)
// and Add (sum/tagged union).
type ComplexVariant byte

const (
	VariantMul ComplexVariant = iota
	VariantAdd
)

func (v ComplexVariant) String() string {
	if v == VariantAdd {
		return "Add"
	}
	return "Mul"
}

// Field is one member of a Complex domain: a name plus an optional element
// domain index. Add fields may be tagless (enum-like cases), in which case
// HasDomain is false and DomainIndex is meaningless.
type Field struct {
	Name        string
	DomainIndex int
	HasDomain   bool
}

// Domain is a named, registered type. An alias (e.g. "Day" over U8) is just
// another Basic domain sharing the same Kind as its basis — spec.md §3 notes
// aliases are "indistinguishable from their basis at the value level except
// by name", so no separate Alias shape is needed.
type Domain struct {
	Name string

	Shape Shape

	// Valid when Shape == ShapeBasic.
	Kind Kind

	// Valid when Shape == ShapeArray.
	ElemIndex int
	Capacity  int

	// Valid when Shape == ShapeComplex.
	Variant ComplexVariant
	Fields  []Field
}

// FieldIndex returns the position of name within a Complex domain's field
// list, or -1 if no field has that name.
func (d *Domain) FieldIndex(name string) int {
	for i, f := range d.Fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
