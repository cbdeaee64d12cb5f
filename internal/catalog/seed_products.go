package catalog

import "github.com/example/jungleyourself/internal/models"

// Placeholder imagery until the brand shoot is delivered.
var seedImages = map[string]string{
	"kit":        "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=600&h=400&fit=crop",
	"membrane":   "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=600&h=400&fit=crop",
	"drainage":   "https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?w=600&h=400&fit=crop",
	"substrate":  "https://images.unsplash.com/photo-1464226184884-fa280b87c399?w=600&h=400&fit=crop",
	"plants":     "https://images.unsplash.com/photo-1459411552884-841db9b3cc2a?w=600&h=400&fit=crop",
	"geotextile": "https://images.unsplash.com/photo-1518495973542-4542c06a5843?w=600&h=400&fit=crop",
	"edging":     "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=600&h=400&fit=crop",
	"irrigation": "https://images.unsplash.com/photo-1563514227147-6d2ff665a6a0?w=600&h=400&fit=crop",
}

var seedProducts = []models.Product{
	// Kits
	{
		ID:               "kit-starter-small",
		Name:             "Starter Garden Kit – 2-5 m²",
		Slug:             "starter-garden-kit-small",
		Type:             models.TypeKit,
		ShortDescription: "Everything you need to transform a small balcony or terrace into a thriving green space.",
		LongDescription: `The perfect introduction to terrace gardening. This comprehensive kit includes all essential layers and materials for creating a lightweight, well-draining garden bed on your balcony or small terrace.

Designed for beginners, the Starter Garden Kit comes with detailed step-by-step instructions and all necessary materials pre-cut to size. No specialised tools required – just basic household items.

The modular design allows for easy installation on tile, concrete, or wooden decking surfaces. The drainage system ensures proper water management, protecting your terrace from water damage whilst keeping plants healthy.`,
		Price:    189,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["kit"], Alt: "Starter Garden Kit components laid out"},
			{URL: seedImages["substrate"], Alt: "Installation in progress"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  3,
		WeightPerUnit: 45,
		WeightPerM2:   15,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalLowMaintenance, models.GoalAesthetics},
		Badges:        []models.Badge{models.BadgeBeginnerFriendly, models.BadgeLightweight, models.BadgeBestSeller},
		SizeCategory:  models.SizeSmall,
		CoverageM2:    &models.CoverageRange{Min: 2, Max: 5},
		IncludedItems: []models.IncludedItem{
			{ProductID: "membrane-root-barrier", Quantity: 5, Unit: "m²"},
			{ProductID: "drainage-mat-20mm", Quantity: 5, Unit: "m²"},
			{ProductID: "geotextile-premium", Quantity: 5, Unit: "m²"},
			{ProductID: "substrate-universal", Quantity: 3, Unit: "bags (25L)"},
			{ProductID: "edging-aluminium", Quantity: 4, Unit: "m"},
		},
		StillNeeded:  []string{"Plants (choose your own)", "Watering can or hose", "Gardening gloves"},
		ToolsNeeded:  []string{"Scissors or utility knife", "Tape measure", "Level (optional)"},
		TimeEstimate: "2-3 hours",
		Documents: []models.ProductDocument{
			{Name: "Installation Guide", URL: "#", Type: "instructions"},
			{Name: "Technical Datasheet", URL: "#", Type: "datasheet"},
		},
		Reviews: []models.Review{
			{ID: "r1", Author: "María G.", Rating: 5, Date: "2024-11-15", Title: "Perfect for beginners!",
				Content: "I had zero gardening experience and managed to install this in one afternoon. The instructions were crystal clear.", Verified: true},
			{ID: "r2", Author: "Thomas B.", Rating: 4, Date: "2024-10-28", Title: "Great quality materials",
				Content: "Everything arrived well-packaged. Would have liked more substrate included, but overall very happy.", Verified: true},
		},
		FAQs: []models.ProductFAQ{
			{Question: "Is this kit suitable for a rented apartment?",
				Answer: "Yes! The system is completely removable and won't damage your terrace. You can take it with you when you move."},
			{Question: "How much does the complete installation weigh?",
				Answer: "When fully installed with substrate and plants, expect approximately 15-20 kg/m² when saturated with water."},
		},
	},
	{
		ID:               "kit-family-medium",
		Name:             "Family Garden Kit – 5-10 m²",
		Slug:             "family-garden-kit-medium",
		Type:             models.TypeKit,
		ShortDescription: "Transform your terrace into a productive family garden with this comprehensive medium-sized kit.",
		LongDescription: `Create a substantial green space perfect for growing herbs, vegetables, and ornamental plants. The Family Garden Kit provides everything needed for medium-sized terraces and rooftops.

This kit includes an integrated drip irrigation system, making maintenance effortless. The enhanced drainage layer handles heavy rainfall whilst the premium substrate provides optimal growing conditions.

Ideal for families who want to introduce children to gardening or urban dwellers seeking a productive outdoor space.`,
		Price:    349,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["kit"], Alt: "Family Garden Kit overview"},
			{URL: seedImages["irrigation"], Alt: "Irrigation system detail"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  5,
		WeightPerUnit: 95,
		WeightPerM2:   18,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceMedium,
		Goals:         []models.Goal{models.GoalAesthetics, models.GoalEdible, models.GoalBiodiversity},
		Badges:        []models.Badge{models.BadgeBeginnerFriendly, models.BadgeBestSeller},
		SizeCategory:  models.SizeMedium,
		CoverageM2:    &models.CoverageRange{Min: 5, Max: 10},
		IncludedItems: []models.IncludedItem{
			{ProductID: "membrane-root-barrier", Quantity: 10, Unit: "m²"},
			{ProductID: "drainage-mat-25mm", Quantity: 10, Unit: "m²"},
			{ProductID: "geotextile-premium", Quantity: 10, Unit: "m²"},
			{ProductID: "substrate-universal", Quantity: 8, Unit: "bags (25L)"},
			{ProductID: "edging-aluminium", Quantity: 8, Unit: "m"},
			{ProductID: "irrigation-drip-kit", Quantity: 1, Unit: "set"},
		},
		StillNeeded:  []string{"Plants of your choice", "Timer for irrigation (optional)", "Gardening tools"},
		ToolsNeeded:  []string{"Scissors or utility knife", "Tape measure", "Screwdriver"},
		TimeEstimate: "4-6 hours",
		Documents: []models.ProductDocument{
			{Name: "Installation Guide", URL: "#", Type: "instructions"},
			{Name: "Irrigation Setup", URL: "#", Type: "instructions"},
		},
		Reviews: []models.Review{
			{ID: "r3", Author: "Carlos M.", Rating: 5, Date: "2024-12-01", Title: "Growing tomatoes on our roof!",
				Content: "Never thought we could have a proper vegetable garden in our city apartment. The kids love it!", Verified: true},
		},
		FAQs: []models.ProductFAQ{
			{Question: "Can I grow vegetables in this system?",
				Answer: "Absolutely! The substrate depth is sufficient for most vegetables including tomatoes, peppers, lettuce, and herbs."},
		},
	},
	{
		ID:               "kit-biodiversity-medium",
		Name:             "Biodiversity Haven Kit – 5-10 m²",
		Slug:             "biodiversity-haven-kit-medium",
		Type:             models.TypeKit,
		ShortDescription: "Create a wildlife-friendly garden that supports pollinators, birds, and beneficial insects.",
		LongDescription: `Designed in collaboration with urban ecologists, the Biodiversity Haven Kit transforms your terrace into a thriving ecosystem. The varied substrate depths and native plant recommendations create diverse microhabitats.

Includes special features like a small insect hotel mount and bird-safe planting guidance. The sedum and wildflower substrate mix provides excellent drainage whilst supporting diverse plant life.

Perfect for environmentally conscious homeowners who want to make a positive impact on urban biodiversity.`,
		Price:    399,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["plants"], Alt: "Biodiversity garden with wildflowers"},
			{URL: seedImages["kit"], Alt: "Kit components"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  5,
		WeightPerUnit: 85,
		WeightPerM2:   16,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking, models.SurfaceGravel},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalBiodiversity, models.GoalLowMaintenance},
		Badges:        []models.Badge{models.BadgeBiodiversity, models.BadgeLowMaintenance, models.BadgeNew},
		SizeCategory:  models.SizeMedium,
		CoverageM2:    &models.CoverageRange{Min: 5, Max: 10},
		IncludedItems: []models.IncludedItem{
			{ProductID: "membrane-root-barrier", Quantity: 10, Unit: "m²"},
			{ProductID: "drainage-mat-25mm", Quantity: 10, Unit: "m²"},
			{ProductID: "geotextile-premium", Quantity: 10, Unit: "m²"},
			{ProductID: "substrate-sedum", Quantity: 6, Unit: "bags (25L)"},
			{ProductID: "edging-corten", Quantity: 8, Unit: "m"},
			{ProductID: "plant-pack-pollinator", Quantity: 1, Unit: "set"},
		},
		StillNeeded:  []string{"Additional native plants (optional)", "Insect hotel (optional)"},
		ToolsNeeded:  []string{"Scissors", "Tape measure", "Watering can"},
		TimeEstimate: "3-5 hours",
		Documents: []models.ProductDocument{
			{Name: "Biodiversity Guide", URL: "#", Type: "instructions"},
			{Name: "Native Plant List", URL: "#", Type: "datasheet"},
		},
		Reviews: []models.Review{
			{ID: "r4", Author: "Elena S.", Rating: 5, Date: "2024-11-20", Title: "Bees everywhere!",
				Content: "Within weeks we had bees, butterflies, and even a robin visiting. Feels wonderful to help nature.", Verified: true},
		},
		FAQs: []models.ProductFAQ{
			{Question: "What plants are included?",
				Answer: "The pollinator plant pack includes a mix of sedum, thyme, lavender plugs, and wildflower seeds suited to your climate zone."},
		},
	},
	{
		ID:               "kit-professional-large",
		Name:             "Professional Rooftop Kit – 10-20 m²",
		Slug:             "professional-rooftop-kit-large",
		Type:             models.TypeKit,
		ShortDescription: "Commercial-grade materials for serious rooftop garden installations.",
		LongDescription: `Our most comprehensive kit, designed for larger terraces and rooftops. Features professional-grade materials that meet building regulations for intensive green roofs.

Includes reinforced drainage system, deep substrate capability, and all fixings for permanent installation. The modular design allows for zoning – create different areas for relaxation, growing, and wildlife.

Recommended for homeowners committed to a significant green transformation or those working with contractors.`,
		Price:    749,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["kit"], Alt: "Professional rooftop installation"},
			{URL: seedImages["drainage"], Alt: "Heavy-duty drainage system"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  7,
		WeightPerUnit: 180,
		WeightPerM2:   22,
		Compatibility: []models.SurfaceType{models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceMedium,
		Goals:         []models.Goal{models.GoalAesthetics, models.GoalShade, models.GoalDrainage},
		Badges:        []models.Badge{models.BadgeBestSeller},
		SizeCategory:  models.SizeLarge,
		CoverageM2:    &models.CoverageRange{Min: 10, Max: 20},
		IncludedItems: []models.IncludedItem{
			{ProductID: "membrane-root-barrier", Quantity: 20, Unit: "m²"},
			{ProductID: "drainage-mat-40mm", Quantity: 20, Unit: "m²"},
			{ProductID: "geotextile-premium", Quantity: 20, Unit: "m²"},
			{ProductID: "substrate-universal", Quantity: 16, Unit: "bags (25L)"},
			{ProductID: "edging-aluminium", Quantity: 16, Unit: "m"},
			{ProductID: "irrigation-drip-kit", Quantity: 2, Unit: "sets"},
		},
		StillNeeded:  []string{"Plants", "Irrigation timer", "Structural assessment (recommended)"},
		ToolsNeeded:  []string{"Utility knife", "Tape measure", "Level", "Drill (for edging)"},
		TimeEstimate: "1-2 days",
		Documents: []models.ProductDocument{
			{Name: "Professional Installation Guide", URL: "#", Type: "instructions"},
			{Name: "Load Calculations", URL: "#", Type: "datasheet"},
		},
		Reviews: []models.Review{
			{ID: "r5", Author: "Arquitecto J.R.", Rating: 5, Date: "2024-10-15", Title: "Excellent for professional projects",
				Content: "Used this kit for a client project. Materials are top quality and the documentation is thorough.", Verified: true},
		},
		FAQs: []models.ProductFAQ{
			{Question: "Do I need a structural engineer?",
				Answer: "For installations over 10m², we recommend consulting a structural engineer to verify your roof can support the load. We provide load calculation documents to assist."},
		},
	},
	{
		ID:               "kit-shade-garden",
		Name:             "Shade Garden Kit – 2-5 m²",
		Slug:             "shade-garden-kit-small",
		Type:             models.TypeKit,
		ShortDescription: "Specially designed for north-facing terraces and shaded balconies.",
		LongDescription: `Not every terrace bathes in sunlight. The Shade Garden Kit is specifically formulated for north-facing balconies, covered terraces, and areas with limited sun exposure.

Features a moisture-retaining substrate blend and includes shade-tolerant plant recommendations. The drainage system prevents waterlogging whilst maintaining adequate moisture for ferns, hostas, and other shade lovers.`,
		Price:    209,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["plants"], Alt: "Lush shade garden"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  3,
		WeightPerUnit: 48,
		WeightPerM2:   16,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalShade, models.GoalAesthetics, models.GoalLowMaintenance},
		Badges:        []models.Badge{models.BadgeBeginnerFriendly, models.BadgeLightweight},
		SizeCategory:  models.SizeSmall,
		CoverageM2:    &models.CoverageRange{Min: 2, Max: 5},
		IncludedItems: []models.IncludedItem{
			{ProductID: "membrane-root-barrier", Quantity: 5, Unit: "m²"},
			{ProductID: "drainage-mat-20mm", Quantity: 5, Unit: "m²"},
			{ProductID: "geotextile-premium", Quantity: 5, Unit: "m²"},
			{ProductID: "substrate-shade", Quantity: 4, Unit: "bags (25L)"},
			{ProductID: "edging-aluminium", Quantity: 4, Unit: "m"},
		},
		StillNeeded:  []string{"Shade-tolerant plants", "Mulch (recommended)"},
		ToolsNeeded:  []string{"Scissors", "Tape measure"},
		TimeEstimate: "2-3 hours",
		Documents: []models.ProductDocument{
			{Name: "Shade Plant Guide", URL: "#", Type: "instructions"},
		},
		FAQs: []models.ProductFAQ{
			{Question: "Will this work on a covered balcony that gets no direct sun?",
				Answer: "Yes! This kit is designed for exactly those conditions. We include a list of plants that thrive in deep shade."},
		},
	},
	{
		ID:               "kit-drainage-focus",
		Name:             "Storm-Ready Drainage Kit – 5-10 m²",
		Slug:             "storm-ready-drainage-kit",
		Type:             models.TypeKit,
		ShortDescription: "Enhanced drainage system for areas with heavy rainfall or drainage concerns.",
		LongDescription: `Living in a rainy climate or dealing with drainage issues? The Storm-Ready Kit features our most robust water management system. The 40mm drainage layer handles even the heaviest downpours.

Includes overflow outlets and water retention capabilities that slow runoff whilst keeping your plants happy. Perfect for Mediterranean climates with intense but infrequent rainfall.`,
		Price:    429,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["drainage"], Alt: "Advanced drainage system"},
		},
		StockStatus:   models.StockLowStock,
		LeadTimeDays:  5,
		WeightPerUnit: 90,
		WeightPerM2:   14,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalDrainage, models.GoalLowMaintenance},
		Badges:        []models.Badge{models.BadgeLightweight, models.BadgeLowMaintenance},
		SizeCategory:  models.SizeMedium,
		CoverageM2:    &models.CoverageRange{Min: 5, Max: 10},
		IncludedItems: []models.IncludedItem{
			{ProductID: "membrane-root-barrier", Quantity: 10, Unit: "m²"},
			{ProductID: "drainage-mat-40mm", Quantity: 10, Unit: "m²"},
			{ProductID: "geotextile-premium", Quantity: 10, Unit: "m²"},
			{ProductID: "substrate-universal", Quantity: 6, Unit: "bags (25L)"},
			{ProductID: "edging-aluminium", Quantity: 8, Unit: "m"},
		},
		StillNeeded:  []string{"Plants", "Overflow connector (if needed)"},
		ToolsNeeded:  []string{"Scissors", "Tape measure", "Level"},
		TimeEstimate: "4-5 hours",
		Documents: []models.ProductDocument{
			{Name: "Drainage Guide", URL: "#", Type: "instructions"},
		},
	},
	{
		ID:               "kit-sedum-extensive",
		Name:             "Sedum Carpet Kit – 10-20 m²",
		Slug:             "sedum-carpet-kit-large",
		Type:             models.TypeKit,
		ShortDescription: "Ultra-lightweight sedum roof system for maximum coverage with minimum maintenance.",
		LongDescription: `Create a living carpet of succulent sedum that practically takes care of itself. This extensive green roof system is the lightest option we offer, making it suitable for structures with limited load capacity.

The sedum substrate is just 8cm deep yet supports a vibrant mix of drought-tolerant succulents that change colour through the seasons. Requires no irrigation once established and only 1-2 maintenance visits per year.`,
		Price:    599,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["plants"], Alt: "Sedum carpet in bloom"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  7,
		WeightPerUnit: 120,
		WeightPerM2:   10,
		Compatibility: []models.SurfaceType{models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalLowMaintenance, models.GoalBiodiversity, models.GoalDrainage},
		Badges:        []models.Badge{models.BadgeLightweight, models.BadgeLowMaintenance, models.BadgeBiodiversity},
		SizeCategory:  models.SizeLarge,
		CoverageM2:    &models.CoverageRange{Min: 10, Max: 20},
		IncludedItems: []models.IncludedItem{
			{ProductID: "membrane-root-barrier", Quantity: 20, Unit: "m²"},
			{ProductID: "drainage-mat-20mm", Quantity: 20, Unit: "m²"},
			{ProductID: "geotextile-premium", Quantity: 20, Unit: "m²"},
			{ProductID: "substrate-sedum", Quantity: 10, Unit: "bags (25L)"},
			{ProductID: "plant-pack-sedum", Quantity: 20, Unit: "m² coverage"},
		},
		StillNeeded:  []string{"Edge restraint (optional)", "Initial watering access"},
		ToolsNeeded:  []string{"Scissors", "Rake", "Watering access"},
		TimeEstimate: "1 day",
		Documents: []models.ProductDocument{
			{Name: "Sedum Care Guide", URL: "#", Type: "instructions"},
		},
	},

	// Components
	{
		ID:               "membrane-root-barrier",
		Name:             "Root Barrier Membrane",
		Slug:             "root-barrier-membrane",
		Type:             models.TypeComponent,
		ShortDescription: "Heavy-duty HDPE root barrier to protect your terrace surface.",
		LongDescription: `Essential protection for any terrace garden installation. This 0.5mm HDPE membrane creates an impenetrable barrier against root penetration, protecting tiles, concrete, and waterproofing layers.

UV-stabilised for exposed edges and resistant to common garden chemicals. Easy to install with overlap joints – no special tools or adhesives required.

Sold per square metre. We recommend adding 10% extra for overlaps.`,
		Price:    8.5,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["membrane"], Alt: "Root barrier membrane roll"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  2,
		WeightPerUnit: 0.5,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking, models.SurfaceGravel},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalDrainage},
		Documents: []models.ProductDocument{
			{Name: "Technical Specifications", URL: "#", Type: "datasheet"},
		},
		FAQs: []models.ProductFAQ{
			{Question: "How much overlap do I need between sheets?",
				Answer: "We recommend a minimum 15cm overlap between sheets. Use our membrane tape for extra security."},
		},
	},
	{
		ID:               "drainage-mat-20mm",
		Name:             "Drainage Mat 20mm",
		Slug:             "drainage-mat-20mm",
		Type:             models.TypeComponent,
		ShortDescription: "Lightweight drainage layer for standard terrace gardens.",
		LongDescription: `Our 20mm drainage mat provides essential water management for most terrace garden applications. The dimpled design creates air pockets and water channels beneath your substrate.

Made from recycled HDPE, each mat includes water retention cups that store moisture for dry periods whilst allowing excess water to drain freely. Ideal for small to medium installations.`,
		Price:    12,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["drainage"], Alt: "Drainage mat detail"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  2,
		WeightPerUnit: 0.8,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalDrainage},
		Badges:        []models.Badge{models.BadgeLightweight},
		Documents: []models.ProductDocument{
			{Name: "Flow Rate Specifications", URL: "#", Type: "datasheet"},
		},
	},
	{
		ID:               "drainage-mat-25mm",
		Name:             "Drainage Mat 25mm",
		Slug:             "drainage-mat-25mm",
		Type:             models.TypeComponent,
		ShortDescription: "Enhanced drainage layer for intensive gardens and rainy climates.",
		LongDescription: `Step up to the 25mm drainage mat for larger installations or areas with heavy rainfall. Greater water storage capacity and improved airflow support healthier root development.

The interlocking edge design ensures continuous drainage across large areas without gaps or pooling. Essential for vegetable gardens and intensive green roofs.`,
		Price:    15,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["drainage"], Alt: "Drainage mat 25mm"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  2,
		WeightPerUnit: 1.0,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalDrainage},
	},
	{
		ID:               "drainage-mat-40mm",
		Name:             "Drainage Mat 40mm – Heavy Duty",
		Slug:             "drainage-mat-40mm-heavy-duty",
		Type:             models.TypeComponent,
		ShortDescription: "Professional-grade drainage for intensive green roofs and storm management.",
		LongDescription: `Our heaviest-duty drainage solution, designed for professional installations and areas requiring serious water management. The 40mm profile handles extreme rainfall events whilst maintaining optimal growing conditions.

Features integrated inspection channels and connection points for overflow systems. Meets intensive green roof standards for commercial buildings.`,
		Price:    22,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["drainage"], Alt: "Heavy duty drainage"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  3,
		WeightPerUnit: 1.5,
		Compatibility: []models.SurfaceType{models.SurfaceConcrete},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalDrainage},
	},
	{
		ID:               "geotextile-premium",
		Name:             "Filter Geotextile – Premium",
		Slug:             "filter-geotextile-premium",
		Type:             models.TypeComponent,
		ShortDescription: "Prevents substrate washing into drainage whilst allowing water through.",
		LongDescription: `This non-woven geotextile is the critical layer between your substrate and drainage mat. It prevents fine particles from clogging the drainage system whilst allowing water to pass freely.

Our premium grade is extra durable for installations where root penetration pressure is high. Also known as filter fabric or separation mesh.`,
		Price:    4.5,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["geotextile"], Alt: "Geotextile fabric"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  2,
		WeightPerUnit: 0.2,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking, models.SurfaceGravel},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalDrainage},
		FAQs: []models.ProductFAQ{
			{Question: "What's the difference between this and the root barrier?",
				Answer: "The root barrier is waterproof and stops roots. The geotextile allows water through whilst filtering out soil particles. You need both!"},
		},
	},
	{
		ID:               "substrate-universal",
		Name:             "Universal Growing Substrate – 25L",
		Slug:             "universal-growing-substrate-25l",
		Type:             models.TypeComponent,
		ShortDescription: "Lightweight, well-draining growing medium for most terrace plants.",
		LongDescription: `Our specially formulated terrace substrate combines mineral aggregates with organic matter for optimal plant growth. Significantly lighter than garden soil whilst providing better drainage and aeration.

Suitable for ornamentals, herbs, and most vegetables. The pH is balanced for a wide range of plants. Each 25L bag covers approximately 0.25m² at 10cm depth.`,
		Price:    18,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["substrate"], Alt: "Growing substrate"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  2,
		WeightPerUnit: 12,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceMedium,
		Goals:         []models.Goal{models.GoalAesthetics, models.GoalEdible},
		FAQs: []models.ProductFAQ{
			{Question: "How many bags do I need?",
				Answer: "For 10cm depth, you need approximately 4 bags per m². For vegetables, we recommend 15cm depth (6 bags per m²)."},
		},
	},
	{
		ID:               "substrate-sedum",
		Name:             "Sedum & Succulent Substrate – 25L",
		Slug:             "sedum-succulent-substrate-25l",
		Type:             models.TypeComponent,
		ShortDescription: "Mineral-rich, fast-draining mix for sedums and drought-tolerant plants.",
		LongDescription: `Specially formulated for extensive green roofs and drought-tolerant plantings. This highly mineral substrate drains almost instantly whilst retaining just enough moisture for sedum and succulents.

Contains crusite, pumice, and composted bark. Extremely lightweight when dry – perfect for structures with load limitations.`,
		Price:    16,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["substrate"], Alt: "Sedum substrate"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  2,
		WeightPerUnit: 10,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalLowMaintenance, models.GoalBiodiversity},
		Badges:        []models.Badge{models.BadgeLightweight, models.BadgeLowMaintenance},
	},
	{
		ID:               "substrate-shade",
		Name:             "Shade Garden Substrate – 25L",
		Slug:             "shade-garden-substrate-25l",
		Type:             models.TypeComponent,
		ShortDescription: "Moisture-retaining mix for ferns, hostas, and shade-loving plants.",
		LongDescription: `Formulated for the unique needs of shade gardens where evaporation is lower but drainage remains essential. Contains extra organic matter and moisture-retaining minerals.

Perfect for north-facing balconies and covered terraces. Supports ferns, hostas, heuchera, and other shade-loving plants.`,
		Price:    19,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["substrate"], Alt: "Shade substrate"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  2,
		WeightPerUnit: 13,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalShade, models.GoalAesthetics},
	},
	{
		ID:               "edging-aluminium",
		Name:             "Aluminium Edging Profile – 2m",
		Slug:             "aluminium-edging-profile-2m",
		Type:             models.TypeComponent,
		ShortDescription: "Clean, modern border to contain your substrate and define garden edges.",
		LongDescription: `These powder-coated aluminium profiles create a clean, professional edge to your terrace garden. At 15cm high, they contain substrate whilst providing a contemporary aesthetic.

Easy to install with corner connectors (sold separately) and compatible with all our drainage systems. Available in anthracite grey.`,
		Price:    24,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["edging"], Alt: "Aluminium edging"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  3,
		WeightPerUnit: 1.2,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalAesthetics},
	},
	{
		ID:               "edging-corten",
		Name:             "Corten Steel Edging – 2m",
		Slug:             "corten-steel-edging-2m",
		Type:             models.TypeComponent,
		ShortDescription: "Weathering steel edging that develops a beautiful rust patina over time.",
		LongDescription: `For those who appreciate natural materials, our Corten steel edging develops a protective rust patina that stops further corrosion. The warm orange-brown colour complements green foliage beautifully.

Each piece arrives with a mill finish and will develop its characteristic patina over 6-12 months of outdoor exposure.`,
		Price:    38,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["edging"], Alt: "Corten steel edging"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  5,
		WeightPerUnit: 2.5,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking, models.SurfaceGravel},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalAesthetics, models.GoalBiodiversity},
	},
	{
		ID:               "irrigation-drip-kit",
		Name:             "Drip Irrigation Starter Kit",
		Slug:             "drip-irrigation-starter-kit",
		Type:             models.TypeComponent,
		ShortDescription: "Complete drip system for up to 10m² with adjustable drippers.",
		LongDescription: `Take the guesswork out of watering with this complete drip irrigation kit. Includes 25m of 16mm main line, 50 adjustable drippers, connectors, and a tap adapter.

Compatible with standard garden taps and optional timers. Each dripper can be adjusted from 0-40 litres per hour. Covers up to 10m² depending on plant density.`,
		Price:    45,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["irrigation"], Alt: "Drip irrigation kit"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  2,
		WeightPerUnit: 2,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking, models.SurfaceGravel},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade, models.ExposureShade},
		Maintenance:   models.MaintenanceMedium,
		Goals:         []models.Goal{models.GoalEdible, models.GoalAesthetics},
		Badges:        []models.Badge{models.BadgeBeginnerFriendly},
		Documents: []models.ProductDocument{
			{Name: "Installation Guide", URL: "#", Type: "instructions"},
		},
	},
	{
		ID:               "plant-pack-pollinator",
		Name:             "Pollinator Plant Pack",
		Slug:             "pollinator-plant-pack",
		Type:             models.TypeComponent,
		ShortDescription: "24 plug plants chosen to support bees and butterflies throughout the seasons.",
		LongDescription: `This carefully curated selection of 24 plug plants provides nectar and pollen from spring through autumn. Includes lavender, sedum, thyme, oregano, echinacea, and wildflower plugs.

All plants are grown without neonicotinoids and are suited to terrace growing conditions. Covers approximately 2-3m² depending on spacing.`,
		Price:    65,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["plants"], Alt: "Pollinator plant selection"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  5,
		WeightPerUnit: 4,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun, models.ExposurePartialShade},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalBiodiversity, models.GoalAesthetics},
		Badges:        []models.Badge{models.BadgeBiodiversity},
	},
	{
		ID:               "plant-pack-sedum",
		Name:             "Sedum Mat – Pre-grown (per m²)",
		Slug:             "sedum-mat-pre-grown",
		Type:             models.TypeComponent,
		ShortDescription: "Instant green roof coverage with pre-grown sedum mats.",
		LongDescription: `Skip the waiting – our pre-grown sedum mats provide instant coverage with an established mix of 6-8 sedum varieties. Simply roll out onto prepared substrate for an immediate green roof.

Each mat is grown for 18 months before harvest, ensuring robust plants with well-developed root systems. Mats arrive fresh and should be installed within 48 hours.`,
		Price:    35,
		Currency: "EUR",
		Images: []models.ProductImage{
			{URL: seedImages["plants"], Alt: "Sedum mat"},
		},
		StockStatus:   models.StockInStock,
		LeadTimeDays:  7,
		WeightPerUnit: 20,
		Compatibility: []models.SurfaceType{models.SurfaceTile, models.SurfaceConcrete, models.SurfaceDecking},
		Exposure:      []models.Exposure{models.ExposureFullSun},
		Maintenance:   models.MaintenanceLow,
		Goals:         []models.Goal{models.GoalLowMaintenance, models.GoalBiodiversity, models.GoalDrainage},
		Badges:        []models.Badge{models.BadgeLowMaintenance, models.BadgeBiodiversity},
	},
}
