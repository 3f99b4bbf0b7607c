package distribution

// categoryMapping links a canonical category keyword to the spellings and
// translations sellers use for it. Keys and values are already normalized.
//
// Beauty and health/wellness are kept as separate families: no beauty entry
// may list a health or wellness term and vice versa.
var categoryMapping = map[string][]string{
	// beauty
	"beaute":     {"beauty", "cosmetique", "cosmetiques", "cosmetics", "maquillage", "makeup", "soins beaute", "parfumerie"},
	"beauty":     {"beaute", "cosmetique", "cosmetiques", "cosmetics", "maquillage", "makeup"},
	"cosmetique": {"beaute", "beauty", "cosmetiques", "cosmetics", "maquillage"},
	"maquillage": {"makeup", "beaute", "beauty", "cosmetique"},
	"parfumerie": {"parfum", "parfums", "perfume", "fragrance", "beaute"},

	// health and wellness
	"sante":           {"health", "medical", "pharmacie", "parapharmacie", "soins medicaux"},
	"health":          {"sante", "medical", "pharmacie"},
	"bien etre":       {"wellness", "fitness", "relaxation", "detente", "wellbeing"},
	"wellness":        {"bien etre", "fitness", "relaxation"},
	"sante bien etre": {"sante", "health", "bien etre", "wellness", "fitness", "medical"},

	"mode":         {"fashion", "vetements", "vetement", "habillement", "clothing", "pret a porter"},
	"fashion":      {"mode", "vetements", "clothing"},
	"vetements":    {"mode", "fashion", "clothing", "habillement"},
	"chaussures":   {"shoes", "baskets", "sneakers", "sandales"},
	"accessoires":  {"accessories", "bijoux", "jewelry", "montres", "sacs", "maroquinerie"},
	"electronique": {"electronics", "high tech", "tech", "informatique", "multimedia"},
	"telephones":   {"phones", "smartphones", "telephonie", "mobile", "telephone"},
	"informatique": {"computers", "ordinateurs", "pc", "laptop", "electronique"},
	"maison":       {"home", "decoration", "deco", "meubles", "furniture", "maison deco"},
	"cuisine":      {"kitchen", "ustensiles", "electromenager", "arts de la table"},
	"alimentation": {"food", "epicerie", "alimentaire", "grocery", "boissons", "produits locaux"},
	"enfants":      {"kids", "bebe", "baby", "jouets", "toys", "puericulture"},
	"sport":        {"sports", "loisirs", "outdoor", "equipement sportif"},
	"auto moto":    {"auto", "moto", "automobile", "vehicules", "pieces auto"},
}

// beautyQueries are the normalized queries that trigger the beauty keyword sweep.
var beautyQueries = map[string]struct{}{
	"beaute":            {},
	"beauty":            {},
	"cosmetique":        {},
	"cosmetiques":       {},
	"cosmetics":         {},
	"maquillage":        {},
	"makeup":            {},
	"soins beaute":      {},
	"beaute cosmetique": {},
	"parfumerie":        {},
}

// healthQueries are the normalized queries that trigger the health/wellness keyword sweep.
var healthQueries = map[string]struct{}{
	"sante":              {},
	"health":             {},
	"bien etre":          {},
	"wellness":           {},
	"sante bien etre":    {},
	"sante et bien etre": {},
	"health wellness":    {},
	"parapharmacie":      {},
}

// beautyKeywords are matched against a product's normalized name, description and category.
var beautyKeywords = []string{
	"cosmetique", "cosmetic", "maquillage", "makeup", "rouge a levres", "lipstick",
	"vernis", "nail polish", "parfum", "perfume", "mascara", "fond de teint",
	"eyeliner", "gloss", "serum visage", "creme visage", "soin visage", "skincare",
	"beaute", "beauty", "lait corporel", "savon", "shampoing", "perruque", "tissage",
}

// healthKeywords mirror beautyKeywords for the health/wellness family.
var healthKeywords = []string{
	"medical", "medicament", "pharmacie", "vitamine", "vitamin", "complement alimentaire",
	"supplement", "fitness", "yoga", "massage", "musculation", "tensiometre",
	"thermometre", "glucometre", "sante", "health", "bien etre", "wellness",
	"relaxation", "meditation", "proteine", "tisane", "orthopedique", "premiers secours",
}

// allCategorySentinels are normalized queries meaning "no filter".
var allCategorySentinels = map[string]struct{}{
	"":       {},
	"tous":   {},
	"toutes": {},
	"tout":   {},
	"all":    {},
}

// IsAllCategories reports whether category selects the whole catalog.
func IsAllCategories(category string) bool {
	_, ok := allCategorySentinels[Normalize(category)]
	return ok
}

// Synonyms returns every term the mapping relates to normalized: its own
// entry plus the keys whose entries list it.
func Synonyms(normalized string) []string {
	if normalized == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	add := func(term string) {
		if term == normalized {
			return
		}
		if _, ok := seen[term]; ok {
			return
		}
		seen[term] = struct{}{}
		out = append(out, term)
	}

	for _, syn := range categoryMapping[normalized] {
		add(syn)
	}
	for key, syns := range categoryMapping {
		for _, syn := range syns {
			if syn == normalized {
				add(key)
				break
			}
		}
	}

	return out
}
