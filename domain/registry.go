package domain

import "log/slog"

// Registry is the append-only sequence of domains described in spec.md §3/§4.1.
// It is shared by reference with every Value, View, and table.Table derived
// from it (spec.md §5); domains are never removed or mutated once added, so
// indices handed out earlier remain valid forever. Grounded on hivekit's
// Hive struct, which is likewise held by reference from every view derived
// from it (hive/hive.go).
type Registry struct {
	domains []Domain
	byName  map[string]int
	logger  *slog.Logger
}

// BasicDef describes a Basic (or alias) domain to add.
type BasicDef struct {
	Name string
	Kind Kind
}

// ArrayDef describes an Array domain to add.
type ArrayDef struct {
	Name     string
	Elem     string
	Capacity int
}

// ComplexFieldDef describes one field of a Complex domain being added.
// Domain is empty for a tagless Add case.
type ComplexFieldDef struct {
	Name   string
	Domain string
}

// ComplexDef describes a Mul or Add domain to add.
type ComplexDef struct {
	Name    string
	Variant ComplexVariant
	Fields  []ComplexFieldDef
}

// NewRegistry returns an empty registry with no seeded domains. Most callers
// want NewDefaultRegistry (builtins.go), which seeds the built-ins named in
// spec.md §3.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

func (r *Registry) append(d Domain) int {
	idx := len(r.domains)
	r.domains = append(r.domains, d)
	r.byName[d.Name] = idx
	if r.logger != nil {
		r.logger.Debug("domain registered", "name", d.Name, "shape", d.Shape.String(), "index", idx)
	}
	return idx
}

// AddBasic appends a Basic domain (or an alias of one, e.g. Day over U8) and
// returns its index.
func (r *Registry) AddBasic(def BasicDef) (int, error) {
	if _, exists := r.byName[def.Name]; exists {
		return 0, &DuplicateDomainName{Name: def.Name}
	}
	return r.append(Domain{Name: def.Name, Shape: ShapeBasic, Kind: def.Kind}), nil
}

// AddArray appends an Array domain and returns its index. The element domain
// must already be registered (forward references are forbidden, spec.md §3).
func (r *Registry) AddArray(def ArrayDef) (int, error) {
	if _, exists := r.byName[def.Name]; exists {
		return 0, &DuplicateDomainName{Name: def.Name}
	}
	elemIdx, err := r.IndexOf(def.Elem)
	if err != nil {
		return 0, err
	}
	return r.append(Domain{
		Name:      def.Name,
		Shape:     ShapeArray,
		ElemIndex: elemIdx,
		Capacity:  def.Capacity,
	}), nil
}

// AddComplex appends a Mul or Add domain and returns its index. Every typed
// field's domain must already be registered.
func (r *Registry) AddComplex(def ComplexDef) (int, error) {
	if _, exists := r.byName[def.Name]; exists {
		return 0, &DuplicateDomainName{Name: def.Name}
	}
	seen := make(map[string]bool, len(def.Fields))
	fields := make([]Field, 0, len(def.Fields))
	for _, fd := range def.Fields {
		if seen[fd.Name] {
			return 0, &DuplicateDomainName{Name: def.Name + "." + fd.Name}
		}
		seen[fd.Name] = true
		if fd.Domain == "" {
			if def.Variant != VariantAdd {
				return 0, &UnknownDomainName{Name: "(tagless field in Mul domain " + def.Name + ")"}
			}
			fields = append(fields, Field{Name: fd.Name})
			continue
		}
		idx, err := r.IndexOf(fd.Domain)
		if err != nil {
			return 0, err
		}
		fields = append(fields, Field{Name: fd.Name, DomainIndex: idx, HasDomain: true})
	}
	return r.append(Domain{
		Name:    def.Name,
		Shape:   ShapeComplex,
		Variant: def.Variant,
		Fields:  fields,
	}), nil
}

// MustAdd* variants panic on error; intended for seeding built-ins and tests
// where the definition is known to be well-formed, the way
// original_source/experiments/1.cpp chains domains.add({...}) without
// checking a return value.

func (r *Registry) MustAddBasic(def BasicDef) int {
	idx, err := r.AddBasic(def)
	if err != nil {
		panic(err)
	}
	return idx
}

func (r *Registry) MustAddArray(def ArrayDef) int {
	idx, err := r.AddArray(def)
	if err != nil {
		panic(err)
	}
	return idx
}

func (r *Registry) MustAddComplex(def ComplexDef) int {
	idx, err := r.AddComplex(def)
	if err != nil {
		panic(err)
	}
	return idx
}

// IndexOf resolves name to its stable registry index.
func (r *Registry) IndexOf(name string) (int, error) {
	idx, ok := r.byName[name]
	if !ok {
		return 0, &UnknownDomainName{Name: name}
	}
	return idx, nil
}

// Get returns the domain at idx.
func (r *Registry) Get(idx int) (*Domain, error) {
	if idx < 0 || idx >= len(r.domains) {
		return nil, &DomainIndexOutOfRange{Index: idx, Len: len(r.domains)}
	}
	return &r.domains[idx], nil
}

// Len returns the number of registered domains.
func (r *Registry) Len() int { return len(r.domains) }

// SizeOf computes size_of(idx) per the invariants in spec.md §3.
func (r *Registry) SizeOf(idx int) (int, error) {
	d, err := r.Get(idx)
	if err != nil {
		return 0, err
	}
	switch d.Shape {
	case ShapeBasic:
		return d.Kind.Width(), nil
	case ShapeArray:
		elemSize, err := r.SizeOf(d.ElemIndex)
		if err != nil {
			return 0, err
		}
		return CounterSize(d.Capacity) + d.Capacity*elemSize, nil
	case ShapeComplex:
		if d.Variant == VariantMul {
			total := 0
			for _, f := range d.Fields {
				sz, err := r.SizeOf(f.DomainIndex)
				if err != nil {
					return 0, err
				}
				total += sz
			}
			return total, nil
		}
		maxPayload := 0
		for _, f := range d.Fields {
			if !f.HasDomain {
				continue
			}
			sz, err := r.SizeOf(f.DomainIndex)
			if err != nil {
				return 0, err
			}
			if sz > maxPayload {
				maxPayload = sz
			}
		}
		return CounterSize(len(d.Fields)) + maxPayload, nil
	default:
		return 0, &InvalidVariantValue{Value: byte(d.Shape)}
	}
}

// IsCompatible reports whether src may be assigned into dst per the
// compatibility relation in spec.md §3: same basic kind; arrays with
// compatible elements (capacity need not match); or Mul/Add domains where
// dst's field list is a compatibility-prefix of src's.
func (r *Registry) IsCompatible(dst, src int) bool {
	d, err := r.Get(dst)
	if err != nil {
		return false
	}
	s, err := r.Get(src)
	if err != nil {
		return false
	}
	if d.Shape != s.Shape {
		return false
	}
	switch d.Shape {
	case ShapeBasic:
		return d.Kind == s.Kind
	case ShapeArray:
		return r.IsCompatible(d.ElemIndex, s.ElemIndex)
	case ShapeComplex:
		if d.Variant != s.Variant {
			return false
		}
		if len(d.Fields) > len(s.Fields) {
			return false
		}
		for i, df := range d.Fields {
			sf := s.Fields[i]
			if df.Name != sf.Name || df.HasDomain != sf.HasDomain {
				return false
			}
			if df.HasDomain && !r.IsCompatible(df.DomainIndex, sf.DomainIndex) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
