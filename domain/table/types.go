package table

import (
	"math"
	"strconv"

	"goeda/domain/core"
)

// Kind represents the semantic type of a column
type Kind string

const (
	KindNumeric     Kind = "numeric"
	KindCategorical Kind = "categorical"
)

// Column is a single named, row-aligned sequence of values. Numeric columns
// store float64 cells, categorical columns store string cells. Missing cells
// are tracked in an explicit null mask regardless of kind.
type Column struct {
	name   string
	kind   Kind
	floats []float64
	labels []string
	nulls  []bool
}

// NewNumericColumn creates a numeric column. NaN cells are recorded as missing.
func NewNumericColumn(name string, values []float64) *Column {
	c := &Column{
		name:   name,
		kind:   KindNumeric,
		floats: make([]float64, len(values)),
		nulls:  make([]bool, len(values)),
	}
	copy(c.floats, values)
	for i, v := range values {
		if math.IsNaN(v) {
			c.nulls[i] = true
		}
	}
	return c
}

// NewCategoricalColumn creates a categorical column. Empty cells are recorded
// as missing.
func NewCategoricalColumn(name string, values []string) *Column {
	c := &Column{
		name:   name,
		kind:   KindCategorical,
		labels: make([]string, len(values)),
		nulls:  make([]bool, len(values)),
	}
	copy(c.labels, values)
	for i, v := range values {
		if v == "" {
			c.nulls[i] = true
		}
	}
	return c
}

// Name returns the column name
func (c *Column) Name() string { return c.name }

// Kind returns the column kind
func (c *Column) Kind() Kind { return c.kind }

// IsNumeric returns true for numeric columns
func (c *Column) IsNumeric() bool { return c.kind == KindNumeric }

// Len returns the number of rows in the column
func (c *Column) Len() int { return len(c.nulls) }

// IsNull reports whether the cell at row i is missing
func (c *Column) IsNull(i int) bool { return c.nulls[i] }

// NullCount returns the number of missing cells
func (c *Column) NullCount() int {
	count := 0
	for _, n := range c.nulls {
		if n {
			count++
		}
	}
	return count
}

// Float returns the numeric value at row i. NaN for missing cells.
func (c *Column) Float(i int) float64 {
	if c.nulls[i] {
		return math.NaN()
	}
	return c.floats[i]
}

// SetFloat overwrites the numeric cell at row i and clears its null flag
func (c *Column) SetFloat(i int, v float64) {
	c.floats[i] = v
	c.nulls[i] = false
}

// Label returns the categorical value at row i ("" for missing cells)
func (c *Column) Label(i int) string {
	if c.nulls[i] {
		return ""
	}
	return c.labels[i]
}

// NonNull returns the non-missing numeric values in row order
func (c *Column) NonNull() []float64 {
	values := make([]float64, 0, len(c.floats))
	for i, v := range c.floats {
		if !c.nulls[i] {
			values = append(values, v)
		}
	}
	return values
}

// CellString renders the cell at row i as a string, the representation used
// for distinct-value enumeration. Missing cells render as "".
func (c *Column) CellString(i int) string {
	if c.nulls[i] {
		return ""
	}
	if c.kind == KindCategorical {
		return c.labels[i]
	}
	return strconv.FormatFloat(c.floats[i], 'f', -1, 64)
}

// Clone returns a deep copy of the column
func (c *Column) Clone() *Column {
	clone := &Column{
		name:  c.name,
		kind:  c.kind,
		nulls: make([]bool, len(c.nulls)),
	}
	copy(clone.nulls, c.nulls)
	if c.floats != nil {
		clone.floats = make([]float64, len(c.floats))
		copy(clone.floats, c.floats)
	}
	if c.labels != nil {
		clone.labels = make([]string, len(c.labels))
		copy(clone.labels, c.labels)
	}
	return clone
}

// Table is an ordered collection of equal-length named columns.
// Column names are unique within a table.
type Table struct {
	name    string
	columns []*Column
	byName  map[string]*Column
}

// New creates an empty table
func New(name string) *Table {
	return &Table{
		name:   name,
		byName: make(map[string]*Column),
	}
}

// Name returns the table name
func (t *Table) Name() string { return t.name }

// AddColumn appends a column, enforcing unique names and row alignment
func (t *Table) AddColumn(c *Column) error {
	if c.name == "" {
		return core.NewInvalidInputError("column name cannot be empty")
	}
	if _, exists := t.byName[c.name]; exists {
		return core.NewInvalidInputError("duplicate column name " + strconv.Quote(c.name))
	}
	if len(t.columns) > 0 && c.Len() != t.NumRows() {
		return core.NewInvalidInputError("column " + strconv.Quote(c.name) + " is not row-aligned with the table")
	}
	t.columns = append(t.columns, c)
	t.byName[c.name] = c
	return nil
}

// Column returns the named column or ErrColumnNotFound
func (t *Table) Column(name string) (*Column, error) {
	c, ok := t.byName[name]
	if !ok {
		return nil, core.NewColumnNotFoundError(name)
	}
	return c, nil
}

// NumericColumn returns the named column, failing when it is absent or not numeric
func (t *Table) NumericColumn(name string) (*Column, error) {
	c, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	if !c.IsNumeric() {
		return nil, core.NewNonNumericColumnError(name)
	}
	return c, nil
}

// Columns returns the columns in insertion order
func (t *Table) Columns() []*Column { return t.columns }

// ColumnNames returns the column names in insertion order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// NumCols returns the number of columns
func (t *Table) NumCols() int { return len(t.columns) }

// NumRows returns the number of rows
func (t *Table) NumRows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Clone returns a deep copy. Remediation mutates in place, so callers that
// want a non-destructive run clone first.
func (t *Table) Clone() *Table {
	clone := New(t.name)
	for _, c := range t.columns {
		cc := c.Clone()
		clone.columns = append(clone.columns, cc)
		clone.byName[cc.name] = cc
	}
	return clone
}
