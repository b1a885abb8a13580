package locale

import "regexp"

var (
	frPronunciation = regexp.MustCompile(`\{\{pron\|([^}|]+)`)
	frGenre         = regexp.MustCompile(`\{\{([fmn])\}\}`)
)

// frTables builds the French rule set. Section prefixes follow the French
// Wiktionary heading convention {{S|<part of speech>|fr...}}.
func frTables() *Tables {
	return &Tables{
		Code: "fr",

		SectionPrefixes: []string{
			"{{S|adjectif|fr",
			"{{S|adverbe|fr",
			"{{S|article défini|fr",
			"{{S|article indéfini|fr",
			"{{S|conjonction|fr",
			"{{S|interjection|fr",
			"{{S|lettre|fr",
			"{{S|locution-phrase|fr",
			"{{S|nom propre|fr",
			"{{S|nom|fr",
			"{{S|numéral|fr",
			"{{S|onomatopée|fr",
			"{{S|particule|fr",
			"{{S|postposition|fr",
			"{{S|préfixe|fr",
			"{{S|préposition|fr",
			"{{S|pronom|fr",
			"{{S|suffixe|fr",
			"{{S|symbole|fr",
			"{{S|verbe|fr",
		},

		PronunciationPattern: frPronunciation,
		GenrePattern:         frGenre,

		Ignored: set(
			"ancre",
			"créer-séparément",
			"désabrévier",
			"doute",
			"ébauche-déf",
			"ébauche-étym",
			"préciser",
			"R",
			"refnec",
			"réf",
			"réfnéc",
			"source",
			"trad-exe",
			"trier",
		),

		Italic: map[string]string{
			"absol":        "Absolument",
			"admin":        "Administration",
			"agri":         "Agriculture",
			"antiq":        "Antiquité",
			"archi":        "Architecture",
			"BE":           "Belgique",
			"bioch":        "Biochimie",
			"CA":           "Canada",
			"CH":           "Suisse",
			"cuis":         "Cuisine",
			"didact":       "Didactique",
			"élec":         "Électricité",
			"ellipse":      "Par ellipse",
			"enclit":       "Enclitique",
			"exag":         "Par hyperbole",
			"fam":          "Familier",
			"FR":           "France",
			"gastronomie":  "Gastronomie",
			"improprement": "Usage critiqué",
			"indén":        "Indénombrable",
			"injur":        "Injurieux",
			"intrans":      "Intransitif",
			"iron":         "Ironique",
			"ling":         "Linguistique",
			"litt":         "Littéraire",
			"math":         "Mathématiques",
			"méca":         "Mécanique",
			"méd":          "Médecine",
			"métaph":       "Figuré",
			"mythol":       "Mythologie",
			"néol":         "Néologisme",
			"p-us":         "Peu usité",
			"part":         "En particulier",
			"péj":          "Péjoratif",
			"pop":          "Populaire",
			"pron":         "Pronominal",
			"QC":           "Québec",
			"relig":        "Religion",
			"sout":         "Soutenu",
			"spéc":         "Spécialement",
			"télécom":      "Télécommunications",
			"trans":        "Transitif",
			"vieilli":      "Vieilli",
			"vulg":         "Vulgaire",
			"vx":           "Vieux",
			"zool":         "Zoologie",
		},

		Multi: map[string]MultiFunc{
			"chim":     FormatChemistry,
			"nom w pc": FormatName,
			"siècle2":  RomanCentury,
			"sport":    FormatSport,
			"term":     FormatTerm,
			"unité":    FormatUnit,
		},

		Other: map[string]string{
			"=":   "",
			"e":   "<sup>e</sup>",
			"er":  "<sup>er</sup>",
			"ère": "<sup>ère</sup>",
		},

		WarningSkip: set("w", "wsp"),
	}
}

func set(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}
