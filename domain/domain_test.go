package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toadb/toadb/domain"
)

// Grounded on original_source/experiments/1.cpp: build the default registry,
// write a Date value, and check the rendering spec.md §8 scenario 1 names.
func TestDefaultRegistryDateValue(t *testing.T) {
	reg := domain.NewDefaultRegistry()

	dateIdx, err := reg.IndexOf("Date")
	require.NoError(t, err)

	val, err := domain.NewValue(reg, dateIdx)
	require.NoError(t, err)
	view := val.View()

	day, err := view.Field("day")
	require.NoError(t, err)
	require.NoError(t, domain.SetBasic(day, uint8(26)))

	month, err := view.Field("month")
	require.NoError(t, err)
	_, err = month.Field("jan")
	require.NoError(t, err)

	year, err := view.Field("year")
	require.NoError(t, err)
	require.NoError(t, domain.SetBasic(year, uint16(2004)))

	timeField, err := view.Field("time")
	require.NoError(t, err)
	require.NoError(t, domain.SetBasic(timeField, uint32(0)))

	rendered, err := domain.Render(view)
	require.NoError(t, err)
	require.Contains(t, rendered, "day: Day(26)")
	require.Contains(t, rendered, "month: Month::jan")
	require.Contains(t, rendered, "year: Year(2004)")
	require.Contains(t, rendered, "time: Seconds(0)")
}

// Grounded on original_source/experiments/1.cpp's Vector2/3/4 + Vector Add
// domain scenario (spec.md §8 scenario 2).
func TestSumDomainVector(t *testing.T) {
	reg := domain.NewDefaultRegistry()

	for _, name := range []string{"Vector2", "Vector3", "Vector4"} {
		n := int(name[len(name)-1] - '0')
		fields := make([]domain.ComplexFieldDef, 0, n)
		for _, axis := range []string{"x", "y", "z", "w"}[:n] {
			fields = append(fields, domain.ComplexFieldDef{Name: axis, Domain: "F32"})
		}
		_, err := reg.AddComplex(domain.ComplexDef{Name: name, Variant: domain.VariantMul, Fields: fields})
		require.NoError(t, err)
	}

	_, err := reg.AddComplex(domain.ComplexDef{
		Name:    "Vector",
		Variant: domain.VariantAdd,
		Fields: []domain.ComplexFieldDef{
			{Name: "v2", Domain: "Vector2"},
			{Name: "v3", Domain: "Vector3"},
			{Name: "v4", Domain: "Vector4"},
		},
	})
	require.NoError(t, err)

	vecIdx, err := reg.IndexOf("Vector")
	require.NoError(t, err)
	val, err := domain.NewValue(reg, vecIdx)
	require.NoError(t, err)
	view := val.View()

	v2, err := view.Field("v2")
	require.NoError(t, err)
	x, err := v2.Field("x")
	require.NoError(t, err)
	require.NoError(t, domain.SetBasic(x, float32(2.5)))
	y, err := v2.Field("y")
	require.NoError(t, err)
	require.NoError(t, domain.SetBasic(y, float32(4.5)))

	rendered, err := domain.Render(view)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rendered, "Vector::v2(Vector2 { x: F32(2.500000), y: F32(4.500000), })"),
		"got %q", rendered)

	v3, err := view.Field("v3")
	require.NoError(t, err)
	for _, f := range []struct {
		name string
		val  float32
	}{{"x", 1}, {"y", 2}, {"z", 3}} {
		fv, err := v3.Field(f.name)
		require.NoError(t, err)
		require.NoError(t, domain.SetBasic(fv, f.val))
	}

	rendered, err = domain.Render(view)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(rendered, "Vector::v3("), "got %q", rendered)
	require.NotContains(t, rendered, "v2", "overwriting the variant must not leak the old payload's rendering")
}

// Grounded on original_source/experiments/array.cpp (spec.md §8 scenario 3).
func TestArrayPushPop(t *testing.T) {
	reg := domain.NewDefaultRegistry()
	_, err := reg.AddArray(domain.ArrayDef{Name: "U8_10", Elem: "U8", Capacity: 10})
	require.NoError(t, err)

	idx, err := reg.IndexOf("U8_10")
	require.NoError(t, err)
	val, err := domain.NewValue(reg, idx)
	require.NoError(t, err)
	view := val.View()

	require.NoError(t, view.SetLength(0))
	for _, n := range []uint8{12, 2, 4, 6, 8, 10} {
		require.NoError(t, domain.PushBasic(view, n))
	}

	length, err := view.Length()
	require.NoError(t, err)
	require.Equal(t, 6, length)

	for i, want := range []uint8{12, 2, 4, 6, 8, 10} {
		elem, err := view.Elem(i)
		require.NoError(t, err)
		got, err := domain.UnwrapBasic[uint8](elem)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.NoError(t, view.Pop())
	length, err = view.Length()
	require.NoError(t, err)
	require.Equal(t, 5, length)

	_, err = view.Elem(5)
	require.Error(t, err)
	require.IsType(t, &domain.ArrayIndexOutOfRange{}, err)
}

func TestArrayOverflowAndEmptyPop(t *testing.T) {
	reg := domain.NewDefaultRegistry()
	_, err := reg.AddArray(domain.ArrayDef{Name: "U8_1", Elem: "U8", Capacity: 1})
	require.NoError(t, err)
	idx, err := reg.IndexOf("U8_1")
	require.NoError(t, err)
	val, err := domain.NewValue(reg, idx)
	require.NoError(t, err)
	view := val.View()

	require.NoError(t, domain.PushBasic(view, uint8(1)))
	err = domain.PushBasic(view, uint8(2))
	require.Error(t, err)
	require.IsType(t, &domain.ArrayLengthOutOfBounds{}, err)

	length, err := view.Length()
	require.NoError(t, err)
	require.Equal(t, 1, length, "failed push must not mutate length")

	require.NoError(t, view.Pop())
	err = view.Pop()
	require.Error(t, err)
	require.IsType(t, &domain.PopFromEmptyArray{}, err)
}

// Grounded on original_source/experiments/assign.cpp (spec.md §8 scenario 4).
func TestAssignmentWidening(t *testing.T) {
	reg := domain.NewDefaultRegistry()
	_, err := reg.AddComplex(domain.ComplexDef{
		Name: "Person", Variant: domain.VariantMul,
		Fields: []domain.ComplexFieldDef{{Name: "name", Domain: "String"}, {Name: "age", Domain: "U8"}},
	})
	require.NoError(t, err)
	_, err = reg.AddComplex(domain.ComplexDef{
		Name: "CS_Student", Variant: domain.VariantMul,
		Fields: []domain.ComplexFieldDef{
			{Name: "name", Domain: "String"}, {Name: "age", Domain: "U8"}, {Name: "fav_lang", Domain: "String"},
		},
	})
	require.NoError(t, err)

	personIdx, _ := reg.IndexOf("Person")
	csIdx, _ := reg.IndexOf("CS_Student")

	personVal, err := domain.NewValue(reg, personIdx)
	require.NoError(t, err)
	csVal, err := domain.NewValue(reg, csIdx)
	require.NoError(t, err)

	csView := csVal.View()
	csName, err := csView.Field("name")
	require.NoError(t, err)
	for _, c := range "Vlad" {
		require.NoError(t, domain.PushBasic(csName, int8(c)))
	}
	csAge, err := csView.Field("age")
	require.NoError(t, err)
	require.NoError(t, domain.SetBasic(csAge, uint8(21)))

	personView := personVal.View()
	require.NoError(t, personView.Assign(csView))

	require.True(t, reg.IsCompatible(personIdx, csIdx))
	require.False(t, reg.IsCompatible(csIdx, personIdx))

	err = csView.Assign(personView)
	require.Error(t, err)
	require.IsType(t, &domain.AssignIncompatibleDomains{}, err)
}

// A compatible Add pair (dst's cases are a prefix of src's) must not panic
// when src's active case falls outside that prefix — it must fail with
// AssignIncompatibleDomains instead (spec.md §4.2/§2: never panic on
// compatible domains).
func TestAssignAddAcrossPrefixOutOfRangeTag(t *testing.T) {
	reg := domain.NewDefaultRegistry()
	_, err := reg.AddComplex(domain.ComplexDef{
		Name: "AB", Variant: domain.VariantAdd,
		Fields: []domain.ComplexFieldDef{{Name: "a"}, {Name: "b"}},
	})
	require.NoError(t, err)
	_, err = reg.AddComplex(domain.ComplexDef{
		Name: "ABC", Variant: domain.VariantAdd,
		Fields: []domain.ComplexFieldDef{{Name: "a"}, {Name: "b"}, {Name: "c"}},
	})
	require.NoError(t, err)

	abIdx, _ := reg.IndexOf("AB")
	abcIdx, _ := reg.IndexOf("ABC")
	require.True(t, reg.IsCompatible(abIdx, abcIdx))

	abcVal, err := domain.NewValue(reg, abcIdx)
	require.NoError(t, err)
	abcView := abcVal.View()
	_, err = abcView.Field("c")
	require.NoError(t, err)

	abVal, err := domain.NewValue(reg, abIdx)
	require.NoError(t, err)
	abView := abVal.View()

	require.NotPanics(t, func() {
		err = abView.Assign(abcView)
	})
	require.Error(t, err)
	require.IsType(t, &domain.AssignIncompatibleDomains{}, err)
}
