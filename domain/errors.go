package domain

import "fmt"

// Every error below is its own catchable type carrying the names, indices,
// or kinds involved, the way hivekit models its edit operations as a family
// of small structs behind a shared interface instead of one stringly-typed
// error (internal/regtext/parser.go's OpCreateKey/OpDeleteKey/OpSetValue).

// UnknownDomainName is raised when a name does not resolve to a registered domain.
type UnknownDomainName struct{ Name string }

func (e *UnknownDomainName) Error() string {
	return fmt.Sprintf("domain: unknown domain name %q", e.Name)
}

// DomainIndexOutOfRange is raised when an index is outside the registry's bounds.
type DomainIndexOutOfRange struct {
	Index int
	Len   int
}

func (e *DomainIndexOutOfRange) Error() string {
	return fmt.Sprintf("domain: index %d out of range (registry has %d domains)", e.Index, e.Len)
}

// DuplicateDomainName is raised when adding a domain whose name already exists.
type DuplicateDomainName struct{ Name string }

func (e *DuplicateDomainName) Error() string {
	return fmt.Sprintf("domain: duplicate domain name %q", e.Name)
}

// InvalidVariantValue is an internal invariant check failure: a Variant byte
// that does not correspond to any known shape.
type InvalidVariantValue struct{ Value byte }

func (e *InvalidVariantValue) Error() string {
	return fmt.Sprintf("domain: invalid variant value %d", e.Value)
}

// UnwrapInvalidVariant is raised when unwrap_basic/set_basic is called with a
// Go type that does not match the domain's basic Kind.
type UnwrapInvalidVariant struct {
	Domain string
	Want   Kind
	Got    string
}

func (e *UnwrapInvalidVariant) Error() string {
	return fmt.Sprintf("domain: %s is %s, cannot unwrap as %s", e.Domain, e.Want, e.Got)
}

// NotComplexVariant is raised when field navigation is attempted on a domain
// that is neither Mul nor Add.
type NotComplexVariant struct{ Domain string }

func (e *NotComplexVariant) Error() string {
	return fmt.Sprintf("domain: %s is not a Mul or Add domain", e.Domain)
}

// NotAddVariant is raised when get_variant() is called on a non-Add domain.
type NotAddVariant struct{ Domain string }

func (e *NotAddVariant) Error() string {
	return fmt.Sprintf("domain: %s is not an Add domain", e.Domain)
}

// NotArrayVariant is raised when an array-only operation targets a non-array domain.
type NotArrayVariant struct{ Domain string }

func (e *NotArrayVariant) Error() string {
	return fmt.Sprintf("domain: %s is not an Array domain", e.Domain)
}

// DomainHasNoSuchField is raised when a field name does not exist on a complex domain.
type DomainHasNoSuchField struct {
	Domain string
	Field  string
}

func (e *DomainHasNoSuchField) Error() string {
	return fmt.Sprintf("domain: %s has no field %q", e.Domain, e.Field)
}

// FieldIndexOutOfRange is raised when a positional field index of a complex
// domain is out of range (array element indices raise ArrayIndexOutOfRange).
type FieldIndexOutOfRange struct {
	Domain string
	Index  int
	Len    int
}

func (e *FieldIndexOutOfRange) Error() string {
	return fmt.Sprintf("domain: %s field index %d out of range (has %d)", e.Domain, e.Index, e.Len)
}

// ArrayIndexOutOfRange is raised when an element index is at or beyond the array's length.
type ArrayIndexOutOfRange struct {
	Domain string
	Index  int
	Length int
}

func (e *ArrayIndexOutOfRange) Error() string {
	return fmt.Sprintf("domain: %s index %d out of range (length %d)", e.Domain, e.Index, e.Length)
}

// ArrayLengthOutOfBounds is raised when set_length/push would exceed capacity.
type ArrayLengthOutOfBounds struct {
	Domain   string
	Length   int
	Capacity int
}

func (e *ArrayLengthOutOfBounds) Error() string {
	return fmt.Sprintf("domain: %s length %d exceeds capacity %d", e.Domain, e.Length, e.Capacity)
}

// PopFromEmptyArray is raised when pop() is called on a zero-length array.
type PopFromEmptyArray struct{ Domain string }

func (e *PopFromEmptyArray) Error() string {
	return fmt.Sprintf("domain: pop from empty array %s", e.Domain)
}

// AssignIncompatibleDomains is raised when dst.assign(src) is attempted across
// incompatible domains.
type AssignIncompatibleDomains struct {
	Dst string
	Src string
}

func (e *AssignIncompatibleDomains) Error() string {
	return fmt.Sprintf("domain: cannot assign %s into %s: incompatible domains", e.Src, e.Dst)
}
