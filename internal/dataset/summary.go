package dataset

const headRows = 5

type ObjectProfile struct {
	Column string
	Unique int
	Counts []ValueCount
}

// Summary reúne tudo que o dashboard mostra antes dos gráficos.
type Summary struct {
	Name           string
	Rows           int
	Columns        int
	ColumnNames    []string
	Kinds          []ColumnKind
	Describe       []NumericStats
	DescribeObject []ObjectStats
	Head           [][]string
	Objects        []ObjectProfile
	Correlation    *Matrix
	Nulls          []NullCount
	Outliers       []OutlierReport
}

func Summarize(t *Table) *Summary {
	rows, cols := t.Shape()
	s := &Summary{
		Name:        t.Name,
		Rows:        rows,
		Columns:     cols,
		ColumnNames: t.Columns,
		Kinds:       t.Kinds(),
		Describe:    t.Describe(),
		Head:        t.Head(headRows),
		Correlation: t.Correlation(),
		Nulls:       t.NullCounts(),
		Outliers:    t.Outliers(),
	}
	if len(s.Describe) == 0 {
		s.DescribeObject = t.DescribeObjects()
	}

	for _, col := range t.ObjectColumns() {
		counts, _ := t.ValueCounts(col)
		s.Objects = append(s.Objects, ObjectProfile{
			Column: col,
			Unique: len(counts),
			Counts: counts,
		})
	}
	return s
}

// TotalNulls soma os nulos de todas as colunas.
func (s *Summary) TotalNulls() int {
	total := 0
	for _, n := range s.Nulls {
		total += n.Nulls
	}
	return total
}
