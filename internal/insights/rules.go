package insights

import (
	"context"
	"fmt"
	"math"

	"listinglab/internal/dataset"
)

const (
	strongCorrelation   = 0.8
	highCardinalityRate = 0.9
)

type Suggester interface {
	Suggest(ctx context.Context, s *dataset.Summary) ([]string, error)
}

// RuleSuggester gera sugestões a partir do resumo, sem chamar serviços externos.
type RuleSuggester struct{}

func (RuleSuggester) Suggest(_ context.Context, s *dataset.Summary) ([]string, error) {
	var out []string

	if s.Rows == 0 {
		return []string{"The file has a header but no rows; upload a file with data to analyse."}, nil
	}

	for _, n := range s.Nulls {
		if n.Nulls == 0 {
			continue
		}
		pct := 100 * float64(n.Nulls) / float64(s.Rows)
		if n.Nulls == s.Rows {
			out = append(out, fmt.Sprintf("Column %q is entirely empty; consider dropping it.", n.Column))
			continue
		}
		out = append(out, fmt.Sprintf("Column %q has %d missing values (%.1f%%); impute or drop those rows before modelling.", n.Column, n.Nulls, pct))
	}

	for _, o := range s.Outliers {
		if o.Count > 0 {
			out = append(out, fmt.Sprintf("Column %q has %d values outside [%.4g, %.4g]; inspect them for entry errors.", o.Column, o.Count, o.Lower, o.Upper))
		}
	}

	for _, d := range s.Describe {
		if d.Count > 1 && d.Std == 0 {
			out = append(out, fmt.Sprintf("Column %q is constant (%.4g) and carries no information.", d.Column, d.Min))
		}
	}

	if m := s.Correlation; m != nil {
		for i := range m.Columns {
			for j := i + 1; j < len(m.Columns); j++ {
				r := m.Values[i][j]
				if !math.IsNaN(r) && math.Abs(r) >= strongCorrelation {
					out = append(out, fmt.Sprintf("Columns %q and %q are strongly correlated (r=%.2f); one of them may be redundant.", m.Columns[i], m.Columns[j], r))
				}
			}
		}
	}

	for _, p := range s.Objects {
		if s.Rows >= 10 && float64(p.Unique) >= highCardinalityRate*float64(s.Rows) {
			out = append(out, fmt.Sprintf("Text column %q is almost unique per row (%d distinct); it looks like an identifier rather than a category.", p.Column, p.Unique))
		}
	}

	if len(out) == 0 {
		out = append(out, "No missing values, outliers or redundant columns were detected.")
	}
	return out, nil
}
