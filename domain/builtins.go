package domain

// NewDefaultRegistry returns a Registry seeded exactly as spec.md §3
// requires: the eleven basic kinds, the alias Key ≡ U64, the Add domain
// Month (jan…dec), the aliases Day/Year/Seconds/Time_Stamp, the Mul domain
// Date, and the four I8 array aliases Str/String/Text/BigText. Grounded on
// original_source/experiments/1.cpp, which builds exactly this Date/Month
// scenario against a "default_domains()" registry.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	r.MustAddBasic(BasicDef{Name: "U8", Kind: KindU8})
	r.MustAddBasic(BasicDef{Name: "U16", Kind: KindU16})
	r.MustAddBasic(BasicDef{Name: "U32", Kind: KindU32})
	r.MustAddBasic(BasicDef{Name: "U64", Kind: KindU64})
	r.MustAddBasic(BasicDef{Name: "I8", Kind: KindI8})
	r.MustAddBasic(BasicDef{Name: "I16", Kind: KindI16})
	r.MustAddBasic(BasicDef{Name: "I32", Kind: KindI32})
	r.MustAddBasic(BasicDef{Name: "I64", Kind: KindI64})
	r.MustAddBasic(BasicDef{Name: "F32", Kind: KindF32})
	r.MustAddBasic(BasicDef{Name: "F64", Kind: KindF64})
	r.MustAddBasic(BasicDef{Name: "Bool", Kind: KindBool})

	r.MustAddBasic(BasicDef{Name: "Key", Kind: KindU64})

	r.MustAddComplex(ComplexDef{
		Name:    "Month",
		Variant: VariantAdd,
		Fields: []ComplexFieldDef{
			{Name: "jan"}, {Name: "feb"}, {Name: "mar"}, {Name: "apr"},
			{Name: "may"}, {Name: "jun"}, {Name: "jul"}, {Name: "aug"},
			{Name: "sep"}, {Name: "oct"}, {Name: "nov"}, {Name: "dec"},
		},
	})

	r.MustAddBasic(BasicDef{Name: "Day", Kind: KindU8})
	r.MustAddBasic(BasicDef{Name: "Year", Kind: KindU16})
	r.MustAddBasic(BasicDef{Name: "Seconds", Kind: KindU32})
	r.MustAddBasic(BasicDef{Name: "Time_Stamp", Kind: KindU64})

	r.MustAddComplex(ComplexDef{
		Name:    "Date",
		Variant: VariantMul,
		Fields: []ComplexFieldDef{
			{Name: "day", Domain: "Day"},
			{Name: "month", Domain: "Month"},
			{Name: "year", Domain: "Year"},
			{Name: "time", Domain: "Seconds"},
		},
	})

	r.MustAddArray(ArrayDef{Name: "Str", Elem: "I8", Capacity: 64})
	r.MustAddArray(ArrayDef{Name: "String", Elem: "I8", Capacity: 255})
	r.MustAddArray(ArrayDef{Name: "Text", Elem: "I8", Capacity: 1024})
	r.MustAddArray(ArrayDef{Name: "BigText", Elem: "I8", Capacity: 65535})

	return r
}

// textArrayAliases names the built-in array domains that carry text, used by
// render.go to decide when to append a charmap-decoded string after the
// default numeric element listing.
var textArrayAliases = map[string]bool{
	"Str":     true,
	"String":  true,
	"Text":    true,
	"BigText": true,
}
