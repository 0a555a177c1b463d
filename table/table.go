// Package table stores fixed-width rows over a flat byte region, schema'd by
// an ordered list of (name, domain) columns (spec.md §4.3). Grounded on
// hivekit's Hive type (hive/hive.go), which likewise owns one flat byte
// buffer and hands out borrowed views/iterators over it.
package table

import (
	"github.com/toadb/toadb/domain"
	"github.com/toadb/toadb/internal/bufcheck"
)

// Column names one field of a Table's schema.
type Column struct {
	Name      string
	DomainIdx int
}

// Table is a contiguous byte region of fixed-width rows whose schema is a
// list of (name, domain-index) pairs (spec.md §4.3). It exclusively owns its
// byte store; row views borrow from it and are invalidated across an
// insertion that reallocates the store (spec.md §5).
type Table struct {
	reg      *domain.Registry
	columns  []Column
	rowWidth int
	data     []byte
	rowCount int
}

// New builds a Table over reg with the given ordered (name, domain index)
// columns. Row width is computed once, up front, per spec.md §4.3.
func New(reg *domain.Registry, columns []Column) (*Table, error) {
	width := 0
	for _, c := range columns {
		sz, err := reg.SizeOf(c.DomainIdx)
		if err != nil {
			return nil, err
		}
		width += sz
	}
	return &Table{reg: reg, columns: columns, rowWidth: width}, nil
}

// ColumnDef names a column's domain by name, for construction via NewByName.
type ColumnDef struct {
	Name   string
	Domain string
}

// NewByName builds a Table resolving each column's domain by name.
func NewByName(reg *domain.Registry, fields []ColumnDef) (*Table, error) {
	columns := make([]Column, 0, len(fields))
	for _, f := range fields {
		idx, err := reg.IndexOf(f.Domain)
		if err != nil {
			return nil, err
		}
		columns = append(columns, Column{Name: f.Name, DomainIdx: idx})
	}
	return New(reg, columns)
}

// Registry returns the shared registry this table's columns resolve through.
func (t *Table) Registry() *domain.Registry { return t.reg }

// Columns returns the table's schema.
func (t *Table) Columns() []Column { return t.columns }

// RowWidth returns the byte width of one row.
func (t *Table) RowWidth() int { return t.rowWidth }

// Len returns the number of rows currently stored.
func (t *Table) Len() int { return t.rowCount }

// Column looks up a column by name, reporting NoSuchColumn if absent.
func (t *Table) Column(name string) (Column, error) {
	for _, c := range t.columns {
		if c.Name == name {
			return c, nil
		}
	}
	return Column{}, &NoSuchColumn{Name: name}
}

// InsertRow assigns values — one view per column, in column order — into a
// newly allocated row slot. If any column assignment fails, the row is
// discarded (the store is left at its prior length) and FailedToInsertRow
// wraps the underlying cause, per spec.md §4.3.
func (t *Table) InsertRow(values []domain.View) error {
	if len(values) != len(t.columns) {
		return &FailedToInsertRow{Cause: &ColumnCountMismatch{Want: len(t.columns), Got: len(values)}}
	}

	row := make([]byte, t.rowWidth)
	off := 0
	for i, col := range t.columns {
		dst := domain.NewView(t.reg, col.DomainIdx, row, off)
		if err := dst.Assign(values[i]); err != nil {
			return &FailedToInsertRow{Cause: err}
		}
		sz, err := t.reg.SizeOf(col.DomainIdx)
		if err != nil {
			return &FailedToInsertRow{Cause: err}
		}
		off += sz
	}

	t.data = append(t.data, row...)
	t.rowCount++
	return nil
}

// Row returns the view-backed row at index i.
func (t *Table) Row(i int) (Row, error) {
	if i < 0 || i >= t.rowCount {
		return Row{}, &RowIndexOutOfRange{Index: i, Len: t.rowCount}
	}
	off := i * t.rowWidth
	if !bufcheck.Has(t.data, off, t.rowWidth) {
		return Row{}, &RowIndexOutOfRange{Index: i, Len: t.rowCount}
	}
	return Row{table: t, off: off}, nil
}

// Rows returns every row currently stored, in insertion order.
func (t *Table) Rows() []Row {
	rows := make([]Row, t.rowCount)
	for i := range rows {
		rows[i] = Row{table: t, off: i * t.rowWidth}
	}
	return rows
}

// Row is a borrowed view over one row's bytes, scoped to its table's columns.
type Row struct {
	table *Table
	off   int
}

// Field returns the view of this row's named column, erroring NoSuchColumn
// if the name is not one of the table's columns.
func (r Row) Field(name string) (domain.View, error) {
	col, err := r.table.Column(name)
	if err != nil {
		return domain.View{}, err
	}
	return r.FieldAt(r.table.indexOfColumn(col))
}

// FieldAt returns the view of the column at position i.
func (r Row) FieldAt(i int) (domain.View, error) {
	if i < 0 || i >= len(r.table.columns) {
		return domain.View{}, &FieldIndexOutOfRange{Index: i, Len: len(r.table.columns)}
	}
	off := r.off
	for j := 0; j < i; j++ {
		sz, err := r.table.reg.SizeOf(r.table.columns[j].DomainIdx)
		if err != nil {
			return domain.View{}, err
		}
		off += sz
	}
	col := r.table.columns[i]
	return domain.NewView(r.table.reg, col.DomainIdx, r.table.data, off), nil
}

func (t *Table) indexOfColumn(col Column) int {
	for i, c := range t.columns {
		if c.Name == col.Name {
			return i
		}
	}
	return -1
}
