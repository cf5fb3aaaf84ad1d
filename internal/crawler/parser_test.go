package crawler

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"listinglab/internal/model"
)

const fullCard = `
<div class="_1AtVbE">
  <img class="_396cs4" src="https://img.example/phone.jpg">
  <div class="_4rR01T">Phone X (Blue, 128 GB)</div>
  <ul><li class="rgWa7D">6 GB RAM | 128 GB ROM</li><li class="rgWa7D">6.5 inch display</li></ul>
  <div class="_30jeq3">₹12,999</div>
  <div class="_3I9_wc">₹15,999</div>
  <div class="_3Ay6Sb"><span>18% off</span></div>
</div>`

func TestParseListingsFullCard(t *testing.T) {
	listings, err := ParseListings(strings.NewReader("<html><body>"+fullCard+"</body></html>"), DefaultSelectors())
	require.NoError(t, err)

	expected := []model.Listing{{
		Name:          "Phone X (Blue, 128 GB)",
		Description:   "6 GB RAM | 128 GB ROM",
		OriginalPrice: "15999",
		Discount:      "18",
		Price:         "12999",
		ImageURL:      "https://img.example/phone.jpg",
	}}
	if diff := cmp.Diff(expected, listings); diff != "" {
		t.Fatalf("unexpected listings (-want +got):\n%s", diff)
	}
}

func TestParseListingsMissingElementsUseSentinel(t *testing.T) {
	page := `<html><body>
<div class="_1AtVbE"><div class="_4rR01T">Only a name</div></div>
<div class="_1AtVbE"><img class="_396cs4"><div class="_30jeq3">₹499</div></div>
</body></html>`

	listings, err := ParseListings(strings.NewReader(page), DefaultSelectors())
	require.NoError(t, err)
	require.Len(t, listings, 2)

	require.Equal(t, model.Listing{
		Name:          "Only a name",
		Description:   model.Sentinel,
		OriginalPrice: model.Sentinel,
		Discount:      model.Sentinel,
		Price:         model.Sentinel,
		ImageURL:      model.Sentinel,
	}, listings[0])

	// img sem src também vira sentinela
	require.Equal(t, model.Sentinel, listings[1].Name)
	require.Equal(t, model.Sentinel, listings[1].ImageURL)
	require.Equal(t, "499", listings[1].Price)

	for _, l := range listings {
		for _, field := range l.Row() {
			require.NotEmpty(t, field)
		}
	}
}

func TestParseListingsNoContainers(t *testing.T) {
	listings, err := ParseListings(strings.NewReader("<html><body><p>nothing</p></body></html>"), DefaultSelectors())
	require.NoError(t, err)
	require.Empty(t, listings)
}
