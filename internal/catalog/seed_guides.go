package catalog

import "github.com/example/jungleyourself/internal/models"

var seedGuides = []models.Guide{
	{
		ID:      "guide-1",
		Slug:    "complete-beginners-guide-terrace-garden",
		Title:   "The Complete Beginner's Guide to Terrace Gardens",
		Excerpt: "Everything you need to know before starting your first terrace garden project, from assessing your space to choosing the right materials.",
		Content: `
## Before You Begin

Starting a terrace garden is one of the most rewarding home improvement projects you can undertake. But before you order materials or start digging, there are a few important considerations.

### Assess Your Space

**Measure your terrace** – Know exactly how many square metres you're working with. Sketch the shape and note any obstacles like drains, vents, or air conditioning units.

**Check sun exposure** – Spend a day observing how sunlight moves across your space. Note which areas get full sun (6+ hours), partial shade (3-6 hours), or full shade.

**Consider access** – How will you get materials up to your terrace? Measure doorways and lift capacities. Most of our kits come in packages under 25kg for easy handling.

### Weight and Structural Concerns

This is the most common worry for new terrace gardeners, and rightfully so. Here's what you need to know:

Most modern buildings are designed to support 150-200 kg/m² on terraces and balconies. A typical extensive green roof (like our Sedum Carpet Kit) weighs just 60-100 kg/m² when fully saturated. That's often less than a hot tub or a few people at a barbecue!

However, **we always recommend checking with your building administrator** or consulting a structural engineer for installations over 10m² or on older buildings.

### The Layer System

Every terrace garden follows the same basic structure:

1. **Protection layer** – Root barrier membrane protects your existing surface
2. **Drainage layer** – Removes excess water whilst retaining some moisture
3. **Filter layer** – Geotextile prevents soil washing into drainage
4. **Growing medium** – Lightweight substrate replaces heavy garden soil
5. **Plants** – The fun part!

Our kits include all these layers, pre-calculated for your coverage area.

## Choosing Your First Project

Start small. Seriously. A 2-3m² garden that thrives will teach you more than a 15m² project that struggles. You can always expand later.

Consider your goals:
- **Low maintenance?** Choose a sedum or succulent system
- **Growing food?** You'll need deeper substrate and more attention
- **Wildlife friendly?** Our Biodiversity Haven includes native plants

## What to Expect: Timeline

**Planning phase:** 1-2 weeks
**Ordering and delivery:** 3-7 days
**Installation:** 2-6 hours for small projects, 1-2 days for larger ones
**Establishment:** Plants need 4-8 weeks to settle in
**Full maturity:** 1-2 growing seasons

Ready to start? Use our [Kit Finder](/kit-finder) to get personalised recommendations.
`,
		Image:           "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=800&h=400&fit=crop",
		ReadTime:        8,
		Category:        models.GuideInstallation,
		RelatedProducts: []string{"kit-starter-small", "kit-family-medium"},
		PublishedAt:     "2024-10-15",
	},
	{
		ID:      "guide-2",
		Slug:    "installation-step-by-step",
		Title:   "Step-by-Step Installation Guide",
		Excerpt: "Detailed walkthrough of installing a terrace garden system, with tips from professional installers.",
		Content: `
## Tools You'll Need

Before starting, gather these items:
- Tape measure
- Utility knife or sharp scissors
- Broom or brush for cleaning
- Level (optional but helpful)
- Gloves
- Knee pads (trust us on this one)

## Step 1: Prepare the Surface

**Clean thoroughly.** Sweep away all debris, leaves, and dirt. The surface doesn't need to be perfect, but loose material can cause issues.

**Check for damage.** Look for cracks in tiles or damaged waterproofing. Now is the time to address any issues – not after you've installed your garden.

**Plan drainage direction.** Water needs somewhere to go. Identify your terrace drains and ensure your installation won't block them.

## Step 2: Lay the Root Barrier

Roll out the root barrier membrane across your entire area. Overlap sheets by at least 15cm. The membrane should extend up any walls or edging by 5cm.

**Pro tip:** Let the membrane sit in the sun for 30 minutes before cutting – it becomes more flexible and easier to work with.

## Step 3: Install Drainage Layer

Position drainage mats with the cups facing up. These will catch and store water. Overlap mat edges slightly – they're designed to interlock.

For areas near drains, you may need to cut mats to fit. Use a utility knife and wear gloves – the edges can be sharp.

## Step 4: Add Filter Geotextile

Lay the filter fabric over the drainage layer. This is the easiest step – just roll it out and overlap edges by 10cm. The fabric is light and easy to handle.

## Step 5: Install Edging

Before adding substrate, position your edging to contain the growing medium. Most edging systems simply push into place along the edges.

For corners, use corner connectors or cut and overlap the edging at 45-degree angles.

## Step 6: Add Substrate

Now the satisfying part. Empty substrate bags onto the filter fabric and spread evenly with a rake or by hand.

For most ornamental plantings, aim for 10cm depth. For vegetables, go deeper – 15cm minimum.

**Important:** Substrate should sit about 2cm below the top of your edging to prevent overflow during heavy rain.

## Step 7: Plant!

Make holes in the substrate slightly larger than your plant root balls. Place plants, firm in gently, and water immediately.

Space plants according to their mature size – they'll fill in faster than you expect.

## Step 8: Initial Care

Water deeply immediately after planting. For the first 4-6 weeks, check soil moisture regularly. Once established, most terrace gardens need much less attention.

Need supplies? [Shop our components](/shop) or [find the right kit](/kit-finder) for your project.
`,
		Image:           "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?w=800&h=400&fit=crop",
		ReadTime:        6,
		Category:        models.GuideInstallation,
		RelatedProducts: []string{"membrane-root-barrier", "drainage-mat-20mm", "geotextile-premium"},
		PublishedAt:     "2024-10-22",
	},
	{
		ID:      "guide-3",
		Slug:    "seasonal-maintenance-calendar",
		Title:   "Seasonal Maintenance Calendar",
		Excerpt: "Month-by-month guide to keeping your terrace garden healthy and beautiful throughout the year.",
		Content: `
## Spring (March – May)

**March:** As temperatures rise, check for winter damage. Remove any dead material and debris. This is the best time to add fresh substrate if levels have dropped.

**April:** Begin regular watering as growth accelerates. Feed plants with slow-release fertiliser. Divide overcrowded perennials.

**May:** Peak planting season. Add new plants, sow seeds, and enjoy the explosion of growth. Check irrigation systems are working properly.

## Summer (June – August)

**June:** Monitor water needs closely, especially during hot spells. Terrace gardens dry out faster than ground-level beds. Deadhead flowering plants to encourage more blooms.

**July:** The height of summer means peak watering demand. Consider mulching to retain moisture. Harvest herbs and vegetables regularly.

**August:** Continue watering but reduce feeding as plants prepare for autumn. Take cuttings from favourite plants. Check drainage is working during summer storms.

## Autumn (September – November)

**September:** Plant spring bulbs and autumn-flowering plants. Reduce watering as growth slows. Good time to divide and move plants.

**October:** Clear fallen leaves before they smother plants. Add a layer of compost or fresh substrate. Check edging and drainage for any maintenance needs.

**November:** Final tidy-up before winter. Cut back herbaceous perennials. Protect tender plants with fleece if frost is expected.

## Winter (December – February)

**December – February:** The quiet season. Keep the garden clear of debris. Water only during prolonged dry spells. Plan next year's improvements!

## Quick Reference: Common Tasks

| Task | Frequency |
|------|-----------|
| Watering | Daily in summer, weekly in spring/autumn |
| Feeding | Monthly during growing season |
| Weeding | Weekly during growing season |
| Checking drainage | After heavy rain |
| Full inspection | Twice yearly (spring/autumn) |

For specific care advice, see our plant-specific guides or [contact our team](/support).
`,
		Image:           "https://images.unsplash.com/photo-1459411552884-841db9b3cc2a?w=800&h=400&fit=crop",
		ReadTime:        5,
		Category:        models.GuideMaintenance,
		RelatedProducts: []string{"substrate-universal", "irrigation-drip-kit"},
		PublishedAt:     "2024-11-01",
	},
	{
		ID:      "guide-4",
		Slug:    "best-plants-for-terrace-gardens",
		Title:   "Best Plants for Terrace Gardens",
		Excerpt: "Our top picks for plants that thrive in rooftop conditions – drought-tolerant, wind-resistant, and beautiful.",
		Content: `
## The Challenges of Terrace Growing

Terraces and rooftops present unique challenges: more wind, more sun, faster drainage, and temperature extremes. The good news? Plenty of plants thrive in these conditions.

## For Full Sun Terraces

**Sedums and Succulents** – The ultimate terrace plants. Virtually indestructible, drought-tolerant, and available in endless varieties.

**Mediterranean Herbs** – Lavender, rosemary, thyme, and oregano love the heat and drainage of terrace conditions. Bonus: they smell amazing and attract pollinators.

**Ornamental Grasses** – Stipa, Festuca, and Carex add movement and texture. They're tough as nails and look good year-round.

**Echinacea and Rudbeckia** – Long-flowering perennials that handle heat and drought whilst feeding butterflies.

## For Partial Shade

**Heuchera** – Evergreen foliage in stunning colours from lime green to deep purple. Thrives in light shade.

**Ferns** – Japanese painted ferns and lady ferns bring delicate texture. Need consistent moisture.

**Hostas** – Classic shade plants with bold foliage. Protect from afternoon sun.

**Astilbe** – Feathery plumes of flowers in shade. Keep soil moist.

## For Windy Terraces

Wind is often the biggest challenge. Choose low-growing plants and avoid tall, top-heavy specimens.

- Creeping thyme
- Sedum spurium
- Aubrieta
- Sempervivum
- Armeria (sea thrift)

## Quick Start Plant Lists

### Low Maintenance Mix
1. Sedum acre
2. Sedum album
3. Sempervivum
4. Festuca glauca
5. Armeria maritima

### Pollinator Paradise
1. Lavandula
2. Thymus
3. Origanum
4. Sedum spectabile
5. Echinacea

### Edible Terrace
1. Cherry tomatoes
2. Chillies
3. Herbs (basil, mint, coriander)
4. Salad leaves
5. Strawberries

Ready to plant? Check out our [Pollinator Plant Pack](/product/pollinator-plant-pack) or [Sedum Mats](/product/sedum-mat-pre-grown) for instant coverage.
`,
		Image:           "https://images.unsplash.com/photo-1463936575829-25148e1db1b8?w=800&h=400&fit=crop",
		ReadTime:        6,
		Category:        models.GuideInspiration,
		RelatedProducts: []string{"plant-pack-pollinator", "plant-pack-sedum", "substrate-sedum"},
		PublishedAt:     "2024-11-10",
	},
	{
		ID:      "guide-5",
		Slug:    "understanding-drainage-systems",
		Title:   "Understanding Drainage Systems",
		Excerpt: "Why proper drainage is crucial and how to choose the right system for your terrace.",
		Content: `
## Why Drainage Matters

Without proper drainage, water pools against your waterproofing, creating pressure that finds every tiny weakness. It's also bad for plants – most garden plants hate wet feet.

A good drainage system:
- Removes excess water quickly
- Retains some moisture for dry periods
- Protects the terrace structure
- Keeps plant roots healthy

## Types of Drainage Layers

### 20mm Standard Drainage Mat
Best for: Small terraces, balconies, normal rainfall areas
Water storage: 5 litres per m²
Weight (dry): 0.8 kg/m²

### 25mm Enhanced Drainage Mat
Best for: Medium terraces, vegetable gardens, rainy climates
Water storage: 8 litres per m²
Weight (dry): 1.0 kg/m²

### 40mm Heavy Duty Drainage Mat
Best for: Large installations, intensive green roofs, storm management
Water storage: 15 litres per m²
Weight (dry): 1.5 kg/m²

## How Drainage Mats Work

Our drainage mats have a dimpled profile that creates channels for water to flow while cups retain some moisture. Think of it as a built-in reservoir system.

The geotextile filter on top prevents substrate particles from clogging the drainage channels – that's why it's essential to always use both layers together.

## Signs of Drainage Problems

Watch out for:
- Water pooling on the surface after rain
- Moss growth on substrate surface
- Yellow leaves and rotting roots
- Musty smell from the garden bed

## Improving Existing Drainage

If your garden is already installed and showing drainage issues:

1. Check that drains aren't blocked
2. Consider adding drainage channels at the edges
3. Improve surface drainage by adding a layer of gravel mulch
4. Reduce watering frequency

For serious issues, it may be worth lifting sections to add additional drainage layer.

[Shop our drainage solutions](/shop) or [get advice from our team](/support).
`,
		Image:           "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?w=800&h=400&fit=crop",
		ReadTime:        5,
		Category:        models.GuideTips,
		RelatedProducts: []string{"drainage-mat-20mm", "drainage-mat-25mm", "drainage-mat-40mm", "geotextile-premium"},
		PublishedAt:     "2024-11-15",
	},
}
