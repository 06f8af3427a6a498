package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rroute/core/rtr"
)

// Exercise the trie partition directly through the engine by registering
// paths over the hash thresholds, including prefix splits in both
// directions.
func TestTreeSplits(t *testing.T) {
	r := rtr.New[string]()

	// "/blogs..." then "/blog..." forces a split of an existing node
	_ = r.AddRoute(rtr.MethodGet, "/blogs/archive/2023/january/all", "Blogs archive")
	_ = r.AddRoute(rtr.MethodGet, "/blog/archive/2023/january/all", "Blog archive")

	data, _, _, found := r.FindRoute(rtr.MethodGet, "/blogs/archive/2023/january/all")
	assert.True(t, found)
	assert.Equal(t, data, "Blogs archive")

	data, _, _, found = r.FindRoute(rtr.MethodGet, "/blog/archive/2023/january/all")
	assert.True(t, found)
	assert.Equal(t, data, "Blog archive")
}

func TestTreeShorterPathAfterLonger(t *testing.T) {
	r := rtr.New[string]()

	_ = r.AddRoute(rtr.MethodGet, "/service/internal/billing/invoices", "Invoices")
	// a strict prefix of the above, still long enough for the trie
	_ = r.AddRoute(rtr.MethodGet, "/service/internal/billing", "Billing")

	data, _, _, found := r.FindRoute(rtr.MethodGet, "/service/internal/billing")
	assert.True(t, found)
	assert.Equal(t, data, "Billing")

	data, _, _, found = r.FindRoute(rtr.MethodGet, "/service/internal/billing/invoices")
	assert.True(t, found)
	assert.Equal(t, data, "Invoices")

	// partial prefixes are not matches
	_, _, _, found = r.FindRoute(rtr.MethodGet, "/service/internal/bill")
	assert.Equal(t, found, false)
	_, _, _, found = r.FindRoute(rtr.MethodGet, "/service/internal/billing/inv")
	assert.Equal(t, found, false)
}

func TestTreeReplaceRoute(t *testing.T) {
	r := rtr.New[string]()

	_ = r.AddRoute(rtr.MethodGet, "/reports/quarterly/earnings/summary", "v1")
	_ = r.AddRoute(rtr.MethodGet, "/reports/quarterly/earnings/summary", "v2")

	data, _, _, found := r.FindRoute(rtr.MethodGet, "/reports/quarterly/earnings/summary")
	assert.True(t, found)
	assert.Equal(t, data, "v2")
}
