package content

import (
	"regexp"
	"strings"
)

// BlockKind classifies one rendered line of guide content.
type BlockKind string

const (
	BlockHeading2  BlockKind = "h2"
	BlockHeading3  BlockKind = "h3"
	BlockBold      BlockKind = "bold"
	BlockBullet    BlockKind = "bullet"
	BlockNumbered  BlockKind = "numbered"
	BlockParagraph BlockKind = "paragraph"
)

// Block is one line of guide content with its markup stripped. Anchor is
// set for h2 blocks only.
type Block struct {
	Kind   BlockKind `json:"kind"`
	Text   string    `json:"text"`
	Anchor string    `json:"anchor,omitempty"`
}

// Heading is a table-of-contents entry derived from an h2 line.
type Heading struct {
	Text   string `json:"text"`
	Anchor string `json:"anchor"`
}

var numberedRe = regexp.MustCompile(`^\d+\. `)
var anchorRe = regexp.MustCompile(`[^a-z0-9]+`)

// TableOfContents lists the second-level headings in document order.
func TableOfContents(raw string) []Heading {
	var out []Heading
	for _, line := range strings.Split(raw, "\n") {
		if text, ok := strings.CutPrefix(line, "## "); ok {
			out = append(out, Heading{Text: text, Anchor: Anchor(text)})
		}
	}
	return out
}

// Blocks parses guide content line by line into renderable blocks. Blank
// lines are dropped. The format is a deliberately small markdown subset:
// h2, h3, full-line bold, bullets and numbered lists; everything else is
// a paragraph.
func Blocks(raw string) []Block {
	var out []Block
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			text := strings.TrimPrefix(line, "## ")
			out = append(out, Block{Kind: BlockHeading2, Text: text, Anchor: Anchor(text)})
		case strings.HasPrefix(line, "### "):
			out = append(out, Block{Kind: BlockHeading3, Text: strings.TrimPrefix(line, "### ")})
		case strings.HasPrefix(line, "**") && strings.HasSuffix(line, "**") && len(line) > 4:
			out = append(out, Block{Kind: BlockBold, Text: strings.ReplaceAll(line, "**", "")})
		case strings.HasPrefix(line, "- "):
			out = append(out, Block{Kind: BlockBullet, Text: strings.TrimPrefix(line, "- ")})
		case numberedRe.MatchString(line):
			out = append(out, Block{Kind: BlockNumbered, Text: numberedRe.ReplaceAllString(line, "")})
		case strings.TrimSpace(line) == "":
			// skip
		default:
			out = append(out, Block{Kind: BlockParagraph, Text: line})
		}
	}
	return out
}

// Anchor derives a URL fragment from a heading: lowercased, with runs of
// anything outside [a-z0-9] collapsed to a single hyphen.
func Anchor(text string) string {
	return anchorRe.ReplaceAllString(strings.ToLower(text), "-")
}
