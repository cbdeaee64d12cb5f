package search

import (
	"sort"
	"strings"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/models"
)

// Relevance weights per matched term. A term can hit all three fields of
// the same product, so the per-term ceiling is 17.
const (
	weightName      = 10
	weightShortDesc = 5
	weightAnywhere  = 2
)

const maxSuggestions = 5

// Result pairs a product with its relevance score.
type Result struct {
	Product models.Product `json:"product"`
	Score   int            `json:"score"`
}

// Engine scores catalog products against synonym-expanded queries.
type Engine struct {
	store *catalog.Store
}

// NewEngine returns a search engine over the given catalog.
func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Search returns all products with a positive relevance score for the
// query, highest score first. Ties keep catalog order. A blank query
// returns no results.
func (e *Engine) Search(query string) []Result {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	terms := expandQuery(query)
	results := make([]Result, 0)
	for _, p := range e.store.Products() {
		if score := scoreProduct(&p, terms); score > 0 {
			results = append(results, Result{Product: p, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// Suggestions returns up to five completions for a partial query: product
// names whose name contains it, then canonical synonym keywords, title
// cased. Queries shorter than two characters get nothing.
func (e *Engine) Suggestions(query string) []string {
	if len(query) < 2 {
		return nil
	}

	q := strings.ToLower(query)
	var out []string
	seen := make(map[string]bool)

	for _, p := range e.store.Products() {
		if strings.Contains(strings.ToLower(p.Name), q) && !seen[p.Name] {
			seen[p.Name] = true
			out = append(out, p.Name)
		}
	}
	for _, g := range synonymGroups {
		if strings.Contains(g.key, q) {
			title := strings.ToUpper(g.key[:1]) + g.key[1:]
			if !seen[title] {
				seen[title] = true
				out = append(out, title)
			}
		}
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// expandQuery lowercases and splits the query, then unions in every
// synonym group any term belongs to. Order is deterministic: original
// terms first, then group members in table order.
func expandQuery(query string) []string {
	terms := strings.Fields(strings.ToLower(query))
	seen := make(map[string]bool, len(terms))
	expanded := make([]string, 0, len(terms))
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			expanded = append(expanded, t)
		}
	}
	for _, t := range terms {
		add(t)
	}

	for _, t := range terms {
		for _, g := range synonymGroups {
			if g.key != t && !containsString(g.aliases, t) {
				continue
			}
			add(g.key)
			for _, a := range g.aliases {
				add(a)
			}
		}
	}
	return expanded
}

func scoreProduct(p *models.Product, terms []string) int {
	name := strings.ToLower(p.Name)
	short := strings.ToLower(p.ShortDescription)
	haystack := searchableText(p)

	score := 0
	for _, term := range terms {
		if strings.Contains(name, term) {
			score += weightName
		}
		if strings.Contains(short, term) {
			score += weightShortDesc
		}
		if strings.Contains(haystack, term) {
			score += weightAnywhere
		}
	}
	return score
}

// searchableText concatenates every text field the catch-all weight
// scans. Name and short description appear here too, so a name hit also
// collects the anywhere weight.
func searchableText(p *models.Product) string {
	parts := []string{p.Name, p.ShortDescription, p.LongDescription, string(p.Type)}
	for _, g := range p.Goals {
		parts = append(parts, string(g))
	}
	for _, b := range p.Badges {
		parts = append(parts, string(b))
	}
	for _, e := range p.Exposure {
		parts = append(parts, string(e))
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
