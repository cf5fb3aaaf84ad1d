package insights

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"listinglab/internal/dataset"
)

func summaryOf(t *testing.T, csv string) *dataset.Summary {
	t.Helper()
	tbl, err := dataset.Load("data.csv", strings.NewReader(csv))
	require.NoError(t, err)
	return dataset.Summarize(tbl)
}

func TestRuleSuggesterFindsProblems(t *testing.T) {
	s := summaryOf(t, "a,b,c,k\n1,2,,5\n2,4,,5\n3,6,,5\n4,8,1,5\n100,200,,5\n")

	out, err := RuleSuggester{}.Suggest(context.Background(), s)
	require.NoError(t, err)

	joined := strings.Join(out, "\n")
	require.Contains(t, joined, `Column "c" has 4 missing values`)
	require.Contains(t, joined, `Columns "a" and "b" are strongly correlated`)
	require.Contains(t, joined, `Column "k" is constant`)
	require.Contains(t, joined, `Column "a" has 1 values outside`)
}

func TestRuleSuggesterCleanData(t *testing.T) {
	s := summaryOf(t, "a,b\n1,9\n2,3\n3,7\n")
	out, err := RuleSuggester{}.Suggest(context.Background(), s)
	require.NoError(t, err)
	require.Equal(t, []string{"No missing values, outliers or redundant columns were detected."}, out)
}

type brokenSuggester struct{}

func (brokenSuggester) Suggest(context.Context, *dataset.Summary) ([]string, error) {
	return nil, errors.New("quota exceeded")
}

func TestFallbackUsesRules(t *testing.T) {
	s := summaryOf(t, "a\n1\n2\n3\n")
	out, err := Fallback{Primary: brokenSuggester{}, Secondary: RuleSuggester{}}.Suggest(context.Background(), s)
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestNewWithoutKeyUsesRules(t *testing.T) {
	require.IsType(t, RuleSuggester{}, New("", ""))
}

func TestSplitSuggestions(t *testing.T) {
	require.Equal(t, []string{"Drop column x", "Impute y"}, splitSuggestions("- Drop column x\n\n* Impute y\n"))
}

func TestDescribeMentionsShape(t *testing.T) {
	s := summaryOf(t, "name,qty\npen,3\nbook,\n")
	text := Describe(s)
	require.Contains(t, text, "2 rows, 2 columns")
	require.Contains(t, text, "- qty: 1")
}
