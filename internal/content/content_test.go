package content_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/content"
)

const sample = `
## Before You Begin

Some intro text.

### Assess Your Space

**Measure twice, cut once**

- first bullet
- second bullet

1. step one
2. step two

## What to Expect: Timeline

Closing paragraph.
`

func TestTableOfContents(t *testing.T) {
	t.Parallel()

	toc := content.TableOfContents(sample)
	require.Len(t, toc, 2)
	assert.Equal(t, "Before You Begin", toc[0].Text)
	assert.Equal(t, "before-you-begin", toc[0].Anchor)
	assert.Equal(t, "What to Expect: Timeline", toc[1].Text)
	assert.Equal(t, "what-to-expect-timeline", toc[1].Anchor)
}

func TestBlocks(t *testing.T) {
	t.Parallel()

	blocks := content.Blocks(sample)
	require.Len(t, blocks, 10)

	assert.Equal(t, content.BlockHeading2, blocks[0].Kind)
	assert.Equal(t, "Before You Begin", blocks[0].Text)
	assert.Equal(t, "before-you-begin", blocks[0].Anchor)

	assert.Equal(t, content.BlockParagraph, blocks[1].Kind)

	assert.Equal(t, content.BlockHeading3, blocks[2].Kind)
	assert.Equal(t, "Assess Your Space", blocks[2].Text)
	assert.Empty(t, blocks[2].Anchor)

	assert.Equal(t, content.BlockBold, blocks[3].Kind)
	assert.Equal(t, "Measure twice, cut once", blocks[3].Text)

	assert.Equal(t, content.BlockBullet, blocks[4].Kind)
	assert.Equal(t, "first bullet", blocks[4].Text)
	assert.Equal(t, content.BlockBullet, blocks[5].Kind)

	assert.Equal(t, content.BlockNumbered, blocks[6].Kind)
	assert.Equal(t, "step one", blocks[6].Text)
	assert.Equal(t, content.BlockNumbered, blocks[7].Kind)

	assert.Equal(t, content.BlockHeading2, blocks[8].Kind)
	assert.Equal(t, content.BlockParagraph, blocks[9].Kind)
}

func TestAnchor(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Before You Begin":     "before-you-begin",
		"Spring (March – May)": "spring-march-may-",
		"Covers 2-5 m²":        "covers-2-5-m-",
		"already-slugged":      "already-slugged",
	}
	for in, want := range cases {
		assert.Equal(t, want, content.Anchor(in), "input %q", in)
	}
}

func TestGuideContentParses(t *testing.T) {
	t.Parallel()

	store, err := catalog.Default()
	require.NoError(t, err)

	for _, g := range store.Guides() {
		toc := content.TableOfContents(g.Content)
		assert.NotEmpty(t, toc, "guide %s has no headings", g.Slug)
		assert.NotEmpty(t, content.Blocks(g.Content), "guide %s has no blocks", g.Slug)
	}
}
