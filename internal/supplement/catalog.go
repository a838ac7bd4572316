package supplement

// DefaultIngredients is the reference catalog seeded once into an empty
// store. Ids are stable; renaming an entry keeps historical references valid.
var DefaultIngredients = []Ingredient{
	// Vitamins
	{ID: "vitamin_a", Name: "Vitamin A", DefaultUnit: "IU", Category: "Vitamin"},
	{ID: "vitamin_b1", Name: "Vitamin B1 (Thiamine)", DefaultUnit: "mg", Category: "Vitamin", Aliases: []string{"Thiamine"}},
	{ID: "vitamin_b2", Name: "Vitamin B2 (Riboflavin)", DefaultUnit: "mg", Category: "Vitamin", Aliases: []string{"Riboflavin"}},
	{ID: "vitamin_b3", Name: "Vitamin B3 (Niacin)", DefaultUnit: "mg", Category: "Vitamin", Aliases: []string{"Niacin", "Niacinamide"}},
	{ID: "vitamin_b5", Name: "Vitamin B5 (Pantothenic Acid)", DefaultUnit: "mg", Category: "Vitamin"},
	{ID: "vitamin_b6", Name: "Vitamin B6 (Pyridoxine)", DefaultUnit: "mg", Category: "Vitamin"},
	{ID: "vitamin_b7", Name: "Vitamin B7 (Biotin)", DefaultUnit: "mcg", Category: "Vitamin", Aliases: []string{"Biotin"}},
	{ID: "vitamin_b9", Name: "Vitamin B9 (Folate)", DefaultUnit: "mcg", Category: "Vitamin", Aliases: []string{"Folate", "Folic Acid"}},
	{ID: "vitamin_b12", Name: "Vitamin B12", DefaultUnit: "mcg", Category: "Vitamin", Aliases: []string{"Cobalamin"}},
	{ID: "vitamin_c", Name: "Vitamin C", DefaultUnit: "mg", Category: "Vitamin", Aliases: []string{"Ascorbic Acid"}},
	{ID: "vitamin_d3", Name: "Vitamin D3", DefaultUnit: "IU", Category: "Vitamin", Aliases: []string{"Cholecalciferol"}},
	{ID: "vitamin_e", Name: "Vitamin E", DefaultUnit: "IU", Category: "Vitamin"},
	{ID: "vitamin_k2", Name: "Vitamin K2", DefaultUnit: "mcg", Category: "Vitamin", Aliases: []string{"Menaquinone"}},

	// Minerals
	{ID: "calcium", Name: "Calcium", DefaultUnit: "mg", Category: "Mineral"},
	{ID: "chromium", Name: "Chromium", DefaultUnit: "mcg", Category: "Mineral"},
	{ID: "copper", Name: "Copper", DefaultUnit: "mg", Category: "Mineral"},
	{ID: "iodine", Name: "Iodine", DefaultUnit: "mcg", Category: "Mineral"},
	{ID: "iron", Name: "Iron", DefaultUnit: "mg", Category: "Mineral"},
	{ID: "magnesium", Name: "Magnesium", DefaultUnit: "mg", Category: "Mineral", Aliases: []string{"Magnesium Citrate", "Magnesium Glycinate"}},
	{ID: "manganese", Name: "Manganese", DefaultUnit: "mg", Category: "Mineral"},
	{ID: "molybdenum", Name: "Molybdenum", DefaultUnit: "mcg", Category: "Mineral"},
	{ID: "potassium", Name: "Potassium", DefaultUnit: "mg", Category: "Mineral"},
	{ID: "selenium", Name: "Selenium", DefaultUnit: "mcg", Category: "Mineral"},
	{ID: "sodium", Name: "Sodium", DefaultUnit: "mg", Category: "Mineral"},
	{ID: "zinc", Name: "Zinc", DefaultUnit: "mg", Category: "Mineral", Aliases: []string{"Zinc Picolinate", "Zinc Gluconate"}},

	// Sports & performance / amino acids
	{ID: "creatine", Name: "Creatine Monohydrate", DefaultUnit: "g", Category: "Performance"},
	{ID: "whey_protein", Name: "Whey Protein", DefaultUnit: "g", Category: "Performance"},
	{ID: "casein_protein", Name: "Casein Protein", DefaultUnit: "g", Category: "Performance"},
	{ID: "bcaas", Name: "BCAAs", DefaultUnit: "g", Category: "Amino Acid"},
	{ID: "eaas", Name: "EAAs", DefaultUnit: "g", Category: "Amino Acid"},
	{ID: "caffeine", Name: "Caffeine", DefaultUnit: "mg", Category: "Performance"},
	{ID: "beta_alanine", Name: "Beta Alanine", DefaultUnit: "g", Category: "Performance"},
	{ID: "citrulline", Name: "L-Citrulline", DefaultUnit: "g", Category: "Amino Acid", Aliases: []string{"Citrulline Malate"}},
	{ID: "arginine", Name: "L-Arginine", DefaultUnit: "g", Category: "Amino Acid"},
	{ID: "glutamine", Name: "L-Glutamine", DefaultUnit: "g", Category: "Amino Acid"},
	{ID: "taurine", Name: "Taurine", DefaultUnit: "g", Category: "Amino Acid"},
	{ID: "tyrosine", Name: "L-Tyrosine", DefaultUnit: "mg", Category: "Amino Acid"},
	{ID: "electrolytes", Name: "Electrolytes", DefaultUnit: "servings", Category: "Performance"},

	// Fatty acids
	{ID: "omega_3", Name: "Omega-3 (Fish Oil)", DefaultUnit: "mg", Category: "Fatty Acid", Aliases: []string{"Fish Oil"}},
	{ID: "epa", Name: "EPA", DefaultUnit: "mg", Category: "Fatty Acid"},
	{ID: "dha", Name: "DHA", DefaultUnit: "mg", Category: "Fatty Acid"},
	{ID: "cla", Name: "CLA", DefaultUnit: "g", Category: "Fatty Acid"},

	// Sleep / stress / nootropics
	{ID: "melatonin", Name: "Melatonin", DefaultUnit: "mg", Category: "Hormone"},
	{ID: "ashwagandha", Name: "Ashwagandha", DefaultUnit: "mg", Category: "Herbal"},
	{ID: "l_theanine", Name: "L-Theanine", DefaultUnit: "mg", Category: "Amino Acid"},
	{ID: "glycine", Name: "Glycine", DefaultUnit: "g", Category: "Amino Acid"},
	{ID: "gaba", Name: "GABA", DefaultUnit: "mg", Category: "Amino Acid"},
	{ID: "5htp", Name: "5-HTP", DefaultUnit: "mg", Category: "Amino Acid"},
	{ID: "rhodiola", Name: "Rhodiola Rosea", DefaultUnit: "mg", Category: "Herbal"},
	{ID: "magnesium_glycinate", Name: "Magnesium Glycinate", DefaultUnit: "mg", Category: "Mineral"},

	// Joint / connective tissue
	{ID: "collagen", Name: "Collagen Peptides", DefaultUnit: "g", Category: "Other"},
	{ID: "glucosamine", Name: "Glucosamine", DefaultUnit: "mg", Category: "Other"},
	{ID: "chondroitin", Name: "Chondroitin", DefaultUnit: "mg", Category: "Other"},
	{ID: "msm", Name: "MSM", DefaultUnit: "g", Category: "Other"},

	// Longevity / immune / general health
	{ID: "coq10", Name: "CoQ10", DefaultUnit: "mg", Category: "Other"},
	{ID: "curcumin", Name: "Curcumin (Turmeric)", DefaultUnit: "mg", Category: "Herbal"},
	{ID: "quercetin", Name: "Quercetin", DefaultUnit: "mg", Category: "Herbal"},
	{ID: "nac", Name: "NAC (N-Acetyl Cysteine)", DefaultUnit: "mg", Category: "Amino Acid"},
	{ID: "resveratrol", Name: "Resveratrol", DefaultUnit: "mg", Category: "Herbal"},
	{ID: "glutathione", Name: "Glutathione", DefaultUnit: "mg", Category: "Other"},
	{ID: "probiotics", Name: "Probiotics", DefaultUnit: "CFU", Category: "Other"},
	{ID: "fiber", Name: "Fiber / Psyllium", DefaultUnit: "g", Category: "Other"},
	{ID: "greens", Name: "Greens Powder", DefaultUnit: "servings", Category: "Other"},
}
