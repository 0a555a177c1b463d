package table_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/toadb/toadb/domain"
	"github.com/toadb/toadb/table"
)

func setString(t *testing.T, v domain.View, s string) {
	t.Helper()
	require.NoError(t, v.SetLength(0))
	for _, c := range s {
		require.NoError(t, domain.PushBasic(v, int8(c)))
	}
}

// Grounded on original_source/experiments/table.cpp (spec.md §8 scenario 5).
func TestTableRoundTrip(t *testing.T) {
	reg := domain.NewDefaultRegistry()
	tbl, err := table.NewByName(reg, []table.ColumnDef{
		{Name: "name", Domain: "Str"},
		{Name: "age", Domain: "I32"},
	})
	require.NoError(t, err)

	strIdx, err := reg.IndexOf("Str")
	require.NoError(t, err)
	i32Idx, err := reg.IndexOf("I32")
	require.NoError(t, err)

	insert := func(name string, age int32) {
		nameVal, err := domain.NewValue(reg, strIdx)
		require.NoError(t, err)
		ageVal, err := domain.NewValue(reg, i32Idx)
		require.NoError(t, err)

		setString(t, nameVal.View(), name)
		require.NoError(t, domain.SetBasic(ageVal.View(), age))

		require.NoError(t, tbl.InsertRow([]domain.View{nameVal.View(), ageVal.View()}))
	}

	insert("Vlad", 10)
	insert("Vova", 12)

	require.Equal(t, 2, tbl.Len())
	rows := tbl.Rows()
	require.Len(t, rows, 2)

	wantNames := []string{"Vlad", "Vova"}
	wantAges := []int32{10, 12}
	for i, row := range rows {
		nameField, err := row.Field("name")
		require.NoError(t, err)
		rendered, err := domain.Render(nameField)
		require.NoError(t, err)
		require.Contains(t, rendered, wantNames[i])

		ageField, err := row.Field("age")
		require.NoError(t, err)
		age, err := domain.UnwrapBasic[int32](ageField)
		require.NoError(t, err)
		require.Equal(t, wantAges[i], age)
	}
}

func TestInsertRowRejectsIncompatibleColumn(t *testing.T) {
	reg := domain.NewDefaultRegistry()
	tbl, err := table.NewByName(reg, []table.ColumnDef{{Name: "age", Domain: "I32"}})
	require.NoError(t, err)

	boolIdx, err := reg.IndexOf("Bool")
	require.NoError(t, err)
	badVal, err := domain.NewValue(reg, boolIdx)
	require.NoError(t, err)

	err = tbl.InsertRow([]domain.View{badVal.View()})
	require.Error(t, err)
	require.IsType(t, &table.FailedToInsertRow{}, err)
	require.Equal(t, 0, tbl.Len(), "a failed insert must not grow the row store")
}

func TestInsertRowColumnCountMismatch(t *testing.T) {
	reg := domain.NewDefaultRegistry()
	tbl, err := table.NewByName(reg, []table.ColumnDef{
		{Name: "name", Domain: "Str"},
		{Name: "age", Domain: "I32"},
	})
	require.NoError(t, err)

	i32Idx, _ := reg.IndexOf("I32")
	ageVal, err := domain.NewValue(reg, i32Idx)
	require.NoError(t, err)

	err = tbl.InsertRow([]domain.View{ageVal.View()})
	require.Error(t, err)
	require.IsType(t, &table.FailedToInsertRow{}, err)
}
