package search

// synonymGroup binds a canonical keyword to its aliases. Expansion is
// two-way: hitting either the key or any alias pulls in the whole group.
// Aliases include the Spanish terms customers actually type.
type synonymGroup struct {
	key     string
	aliases []string
}

// Kept as a slice, not a map, so expansion and suggestions are
// deterministic.
var synonymGroups = []synonymGroup{
	{"geotextile", []string{"mesh", "malla", "filter", "fabric", "tela"}},
	{"membrane", []string{"barrier", "sheet", "liner", "membrana"}},
	{"drainage", []string{"drenaje", "water", "drain"}},
	{"substrate", []string{"soil", "tierra", "growing medium", "compost", "sustrato"}},
	{"sedum", []string{"succulent", "suculenta", "stonecrop"}},
	{"edging", []string{"border", "edge", "borde", "perfil"}},
	{"irrigation", []string{"watering", "drip", "riego", "goteo"}},
	{"kit", []string{"pack", "bundle", "set", "sistema"}},
	{"plants", []string{"plantas", "flowers", "flores", "vegetation"}},
	{"rooftop", []string{"roof", "terrace", "terraza", "balcony", "balcón"}},
	{"lightweight", []string{"light", "ligero", "liviano"}},
	{"biodiversity", []string{"wildlife", "pollinator", "bees", "butterflies", "eco"}},
}
