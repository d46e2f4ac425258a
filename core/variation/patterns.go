// Package variation encodes the legitimate Greek spelling alternations
// attested across Septuagint editions and generates or tests variant forms.
// All rule strings are folded (lowercase, diacritic-free): rules apply to
// folded forms only.
package variation

// Category names a linguistic class of spelling alternation.
type Category string

// Categories, in match-priority order. The first four are checked before
// the rest when labelling a pairwise match.
const (
	LambdaFuture       Category = "lambda_future"
	DestructionVerb    Category = "destruction_verb"
	GenerationWord     Category = "generation_word"
	CircumcisionVerb   Category = "circumcision_verb"
	LoanVerb           Category = "loan_verb"
	CommandVerb        Category = "command_verb"
	AoristPassive      Category = "aorist_passive"
	VowelContraction   Category = "vowel_contraction"
	DiphthongVariation Category = "diphthong_variation"
	Ablaut             Category = "ablaut"
	AoristVowel        Category = "aorist_vowel"
	AoristConsonant    Category = "aorist_consonant"
	CompoundPrefix     Category = "compound_prefix"
	Participle         Category = "participle"
	DialectalConsonant Category = "dialectal_consonant"
	SpecificWord       Category = "specific_word"

	// All selects every category.
	All Category = "all"

	// Combined labels a pairwise match found only through full variant
	// generation, i.e. a combination of rules across categories.
	Combined Category = "combined_variation"
)

// rule is a set of freely interchangeable stem spellings. Two-element rules
// assert A↔B; three-element rules assert any pairwise substitution among
// the three (used for compound-prefix allomorphs).
type rule []string

// patternSet groups the rules of one category.
type patternSet struct {
	Name  Category
	Rules []rule
}

// patterns lists every category in priority order. The table is static,
// load-time data and is never mutated.
var patterns = []patternSet{
	{
		// Future of λαμβάνω and compounds: λήψομαι ↔ λήμψομαι.
		Name: LambdaFuture,
		Rules: []rule{
			{"ληψ", "λημψ"},
			{"αναληψ", "αναλημψ"},
			{"αντιληψ", "αντιλημψ"},
			{"επιληψ", "επιλημψ"},
			{"καταληψ", "καταλημψ"},
			{"μεταληψ", "μεταλημψ"},
			{"παραληψ", "παραλημψ"},
			{"περιληψ", "περιλημψ"},
			{"προκαταληψ", "προκαταλημψ"},
			{"προληψ", "προλημψ"},
			{"συλληψ", "συλλημψ"},
			{"συμπαραληψ", "συμπαραλημψ"},
			{"συμπεριληψ", "συμπεριλημψ"},
			{"συναντιληψ", "συναντιλημψ"},
			{"υποληψ", "υπολημψ"},
		},
	},
	{
		// ὀλοθρεύω ↔ ὀλεθρεύω; both roots attested.
		Name: DestructionVerb,
		Rules: []rule{
			{"ολοθρ", "ολεθρ"},
			{"ολοθρευ", "ολεθρευ"},
			{"ξολοθρ", "ξολεθρ"},
			{"ξωλοθρ", "ξωλεθρ"},
		},
	},
	{
		// γέννημα ↔ γένημα (double vs single nu with eta).
		Name: GenerationWord,
		Rules: []rule{
			{"γεννημ", "γενημ"},
			{"γεννηματ", "γενηματ"},
			{"εννημ", "ενημ"},
		},
	},
	{
		Name: CircumcisionVerb,
		Rules: []rule{
			{"περιτεμεσθ", "περιτεμνεσθ"},
			{"περιτεμε", "περιτεμνε"},
		},
	},
	{
		// δανείζω ↔ δανίζω.
		Name: LoanVerb,
		Rules: []rule{
			{"δανε", "δανι"},
			{"δανειζ", "δανιζ"},
			{"δανεισ", "δανισ"},
		},
	},
	{
		Name: CommandVerb,
		Rules: []rule{
			{"εντελλ", "αντελλ"},
			{"εντελ", "εντλ"},
		},
	},
	{
		// ἐλήφθη ↔ ἐλήμφθη.
		Name: AoristPassive,
		Rules: []rule{
			{"ληφθ", "λημφθ"},
			{"ληψθ", "λημψθ"},
		},
	},
	{
		Name: VowelContraction,
		Rules: []rule{
			{"εω", "ω"},
			{"οε", "ου"},
			{"αε", "α"},
			{"αο", "ω"},
			{"εε", "ει"},
		},
	},
	{
		// Iotacism and related diphthong interchange.
		Name: DiphthongVariation,
		Rules: []rule{
			{"ει", "ι"},
			{"οι", "υ"},
			{"αι", "ε"},
		},
	},
	{
		Name: Ablaut,
		Rules: []rule{
			{"ε", "η"},
			{"ο", "ω"},
			{"α", "η"},
		},
	},
	{
		Name: AoristVowel,
		Rules: []rule{
			{"φειλ", "φηλ"},
			{"ειλ", "ηλ"},
		},
	},
	{
		Name: AoristConsonant,
		Rules: []rule{
			{"θη", "ση"},
		},
	},
	{
		// Elision and assimilation of compound verb prefixes; three-way
		// rules cover the allomorphs before vowels and aspirates.
		Name: CompoundPrefix,
		Rules: []rule{
			{"προσ", "προ"},
			{"κατα", "κατ", "καθ"},
			{"απο", "απ", "αφ"},
			{"επι", "επ", "εφ"},
			{"συν", "συ", "συμ"},
		},
	},
	{
		Name: Participle,
		Rules: []rule{
			{"ουσ", "οντ"},
			{"ων", "οντ"},
			{"ομεν", "ωμεν"},
		},
	},
	{
		// Single vs double consonants across manuscript traditions.
		Name: DialectalConsonant,
		Rules: []rule{
			{"ρρ", "ρ"},
			{"λλ", "λ"},
			{"σσ", "σ"},
			{"ττ", "τ"},
		},
	},
	{
		// Individually attested variant spellings that fit no systematic
		// pattern.
		Name: SpecificWord,
		Rules: []rule{
			{"διδραγμον", "διδραχμον"},
			{"ψελλιον", "ψελιον"},
			{"χιμαρρο", "χειμαρρο"},
			{"πρωιμον", "προιμον"},
			{"πελακαν", "πελεκαν"},
			{"βδελυμα", "βδελυγμα"},
			{"τροφοφορ", "τροπο φορ"},
			{"εξεναντι", "εναντι"},
		},
	},
}

// Categories returns the category names in priority order.
func Categories() []Category {
	out := make([]Category, len(patterns))
	for i, p := range patterns {
		out[i] = p.Name
	}
	return out
}
