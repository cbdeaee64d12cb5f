package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/jungleyourself/internal/catalog"
	"github.com/example/jungleyourself/internal/models"
)

// Scoring weights for the kit finder. Goal matches stack, the rest are
// awarded at most once per kit.
const (
	weightSizeMatch        = 30
	weightExposureMatch    = 25
	weightSurfaceMatch     = 20
	weightPerGoal          = 15
	weightMaintenanceMatch = 10
)

const maxRecommendations = 3
const maxAddons = 2

// Recommendation is a scored kit with human-readable match reasons. The
// top result carries BestMatch.
type Recommendation struct {
	Product   models.Product `json:"product"`
	Score     int            `json:"score"`
	Reasons   []string       `json:"reasons"`
	BestMatch bool           `json:"best_match"`
}

// Engine scores kits against completed wizard questionnaires.
type Engine struct {
	store *catalog.Store
}

// NewEngine returns a recommendation engine over the given catalog.
func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Recommend returns up to three kits scored against the wizard answers,
// best first. Kits with no overlap at all are excluded rather than shown
// with a zero score. Ties keep catalog order.
func (e *Engine) Recommend(state models.WizardState) []Recommendation {
	var recs []Recommendation
	for _, kit := range e.store.ProductsByType(models.TypeKit) {
		rec := scoreKit(&kit, state)
		if rec.Score > 0 {
			recs = append(recs, rec)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	if len(recs) > 0 {
		recs[0].BestMatch = true
	}
	return recs
}

func scoreKit(kit *models.Product, state models.WizardState) Recommendation {
	rec := Recommendation{Product: *kit}

	// Bands intersect rather than contain: a 5-10 kit still matches a
	// 2-5 terrace at the shared boundary.
	if state.TerraceSizeM2 != nil && kit.CoverageM2 != nil {
		if kit.CoverageM2.Min <= state.TerraceSizeM2.Max && kit.CoverageM2.Max >= state.TerraceSizeM2.Min {
			rec.Score += weightSizeMatch
			rec.Reasons = append(rec.Reasons,
				fmt.Sprintf("Covers %g-%g m²", kit.CoverageM2.Min, kit.CoverageM2.Max))
		}
	}

	if state.SurfaceType != "" && kit.SupportsSurface(state.SurfaceType) {
		rec.Score += weightSurfaceMatch
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("Works on %s", state.SurfaceType))
	}

	if state.Exposure != "" && kit.SuitsExposure(state.Exposure) {
		rec.Score += weightExposureMatch
		rec.Reasons = append(rec.Reasons,
			fmt.Sprintf("Suited for %s", strings.ReplaceAll(string(state.Exposure), "-", " ")))
	}

	var matched []string
	for _, g := range state.Goals {
		if kit.HasGoal(g) {
			matched = append(matched, string(g))
		}
	}
	if len(matched) > 0 {
		rec.Score += len(matched) * weightPerGoal
		noun := "goal"
		if len(matched) > 1 {
			noun = "goals"
		}
		rec.Reasons = append(rec.Reasons,
			fmt.Sprintf("Matches your %s: %s", noun, strings.Join(matched, ", ")))
	}

	if state.MaintenancePreference != "" && kit.Maintenance == state.MaintenancePreference {
		rec.Score += weightMaintenanceMatch
		rec.Reasons = append(rec.Reasons, fmt.Sprintf("%s maintenance", kit.Maintenance))
	}

	return rec
}

// Addons suggests up to two components alongside the recommended kits:
// the pollinator plant pack for biodiversity goals, and the drip
// irrigation kit whenever the garden will need regular watering.
func (e *Engine) Addons(state models.WizardState) []models.Product {
	var addons []models.Product

	if hasGoal(state.Goals, models.GoalBiodiversity) {
		if p, ok := e.store.ProductByID("plant-pack-pollinator"); ok {
			addons = append(addons, *p)
		}
	}
	if hasGoal(state.Goals, models.GoalEdible) || state.MaintenancePreference != models.MaintenanceLow {
		if p, ok := e.store.ProductByID("irrigation-drip-kit"); ok {
			addons = append(addons, *p)
		}
	}

	if len(addons) > maxAddons {
		addons = addons[:maxAddons]
	}
	return addons
}

// Related returns other products of the same type or sharing a goal with
// the given product, in catalog order. A limit below 1 falls back to 4.
func (e *Engine) Related(productID string, limit int) []models.Product {
	if limit < 1 {
		limit = 4
	}
	base, ok := e.store.ProductByID(productID)
	if !ok {
		return nil
	}

	var out []models.Product
	for _, p := range e.store.Products() {
		if p.ID == base.ID {
			continue
		}
		if p.Type == base.Type || sharesGoal(&p, base) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func sharesGoal(a, b *models.Product) bool {
	for _, g := range b.Goals {
		if a.HasGoal(g) {
			return true
		}
	}
	return false
}

func hasGoal(goals []models.Goal, goal models.Goal) bool {
	for _, g := range goals {
		if g == goal {
			return true
		}
	}
	return false
}
