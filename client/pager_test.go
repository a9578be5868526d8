package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func pagerWith(n int) *Pager[string] {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf("item-%02d", i)
	}
	p := &Pager[string]{}
	p.SetItems(items)
	return p
}

func TestPagerSplitsPagesOfTen(t *testing.T) {
	p := pagerWith(23)

	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 3, p.PageCount())
	assert.Len(t, p.Current(), 10)

	p.Next()
	assert.Equal(t, 2, p.Page())
	assert.Len(t, p.Current(), 10)

	p.Next()
	assert.Equal(t, 3, p.Page())
	assert.Len(t, p.Current(), 3)
}

func TestPagerClampsNavigation(t *testing.T) {
	p := pagerWith(23)

	p.Prev()
	assert.Equal(t, 1, p.Page(), "going before page 1 is a no-op")

	p.SetPage(3)
	p.Next()
	assert.Equal(t, 3, p.Page(), "going past the last page is a no-op")

	p.SetPage(0)
	assert.Equal(t, 1, p.Page())

	p.SetPage(4)
	assert.Equal(t, 3, p.Page())
}

func TestPagerSetItemsResetsToFirstPage(t *testing.T) {
	p := pagerWith(23)
	p.SetPage(3)

	p.SetItems(p.Items())
	assert.Equal(t, 1, p.Page())
}

func TestPagerReplaceItemsClampsAfterShrink(t *testing.T) {
	p := pagerWith(23)
	p.SetPage(3)

	// Deletes shrank the collection below the current page.
	p.ReplaceItems(p.Items()[:15])
	assert.Equal(t, 2, p.Page())
	assert.Len(t, p.Current(), 5)

	p.ReplaceItems(nil)
	assert.Equal(t, 1, p.Page())
	assert.Empty(t, p.Current())
}

func TestPagerEmptyCollection(t *testing.T) {
	p := &Pager[string]{}
	p.SetItems(nil)

	assert.Equal(t, 1, p.Page())
	assert.Equal(t, 1, p.PageCount())
	assert.Empty(t, p.Current())
}
