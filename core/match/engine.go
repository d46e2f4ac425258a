// Package match implements the layered classification of source tokens
// against the reference corpora: exact membership, verse-local variation
// and typo search, a widened area search, and a corpus-wide fuzzy
// fallback.
package match

import (
	"sort"

	"github.com/FocuswithJustin/BrentonAudit/core/books"
	"github.com/FocuswithJustin/BrentonAudit/core/corpus"
	"github.com/FocuswithJustin/BrentonAudit/core/greek"
	"github.com/FocuswithJustin/BrentonAudit/core/variation"
	"github.com/FocuswithJustin/BrentonAudit/core/verse"
)

// Classification is the outcome for one token.
type Classification string

// Classification values.
const (
	// Known: the token occurs verbatim (or with a movable ν) in a
	// reference corpus.
	Known Classification = "known"
	// LegitimateVariation: the token is a recognized dialectal or
	// morphological spelling variant of a nearby reference word.
	LegitimateVariation Classification = "legitimate_variation"
	// Typo: the token closely resembles a reference word and is most
	// likely a transcription error.
	Typo Classification = "typo"
	// Unknown: no reference evidence at any scope.
	Unknown Classification = "unknown"
)

// Scope records which search layer produced the match.
type Scope string

// Scope values, from narrowest to widest.
const (
	ScopeVerse  Scope = "verse"
	ScopeArea   Scope = "area"
	ScopeCorpus Scope = "corpus"
	ScopeNone   Scope = "none"
)

// Config holds the engine's tunables.
type Config struct {
	// TypoThreshold is the minimum similarity ratio for a typo report.
	TypoThreshold float64
	// AreaHalfWidth is the number of verses searched on each side of the
	// token's verse in the area scope.
	AreaHalfWidth int
}

// DefaultConfig returns the tuned production configuration.
func DefaultConfig() Config {
	return Config{
		TypoThreshold: 0.80,
		AreaHalfWidth: 20,
	}
}

// Context is a token's verse location in Brenton coordinates.
type Context struct {
	Book    string
	Chapter int
	Verse   int
}

// Result is the classification of one token.
type Result struct {
	Classification Classification
	// Category names the variation class for LegitimateVariation results.
	Category variation.Category
	// MatchedForm is the reference form the token was matched against.
	MatchedForm string
	// Score is the similarity ratio for fuzzy matches.
	Score float64
	// Scope records the layer that produced the match.
	Scope Scope
	// ProperName and Numeral are heuristic flags computed for every
	// token that is not simply known.
	ProperName bool
	Numeral    bool
}

// Engine classifies tokens against two read-only edition indices. Safe for
// concurrent use once constructed.
type Engine struct {
	cfg    Config
	rahlfs *corpus.Index
	swete  *corpus.Index
}

// NewEngine builds an engine over the two edition indices.
func NewEngine(cfg Config, rahlfs, swete *corpus.Index) *Engine {
	return &Engine{cfg: cfg, rahlfs: rahlfs, swete: swete}
}

// Classify runs the layered decision procedure for one token. ctx may be
// nil when the tokenizer could not establish a verse location; the token
// then only gets the known-word check and the corpus-wide fallback.
func (e *Engine) Classify(surface string, ctx *Context) Result {
	folded := greek.Fold(surface)

	// Known-word check, independent of context. The movable-nu retry
	// covers editions that print the ν the source omits.
	if orig, ok := e.lookupKnown(folded); ok {
		return Result{
			Classification: Known,
			MatchedForm:    orig,
			Score:          1,
			Scope:          ScopeNone,
		}
	}

	res := Result{
		Classification: Unknown,
		Scope:          ScopeNone,
		ProperName:     greek.IsProperName(surface),
		Numeral:        greek.IsNumeral(folded),
	}

	if ctx != nil {
		refR, errR := books.Convert(books.Rahlfs, ctx.Book, ctx.Chapter, ctx.Verse)
		refS, errS := books.Convert(books.Swete, ctx.Book, ctx.Chapter, ctx.Verse)

		if errR == nil || errS == nil {
			scope := e.combinedScope(refR, errR, refS, errS, 0)
			if out, ok := e.checkScope(folded, scope, ScopeVerse, res); ok {
				return out
			}

			area := e.combinedScope(refR, errR, refS, errS, e.cfg.AreaHalfWidth)
			if out, ok := e.checkScope(folded, area, ScopeArea, res); ok {
				return out
			}
		}
	}

	// Corpus-wide fallback: fuzzy only. Variation evidence is only
	// trusted near the token's attested location.
	form, score := bestMatchWithNuRetry(folded, e.rahlfs.Words(), e.cfg.TypoThreshold)
	if sForm, sScore := bestMatchWithNuRetry(folded, e.swete.Words(), e.cfg.TypoThreshold); sScore > score {
		form, score = sForm, sScore
	}
	if score >= e.cfg.TypoThreshold {
		res.Classification = Typo
		res.MatchedForm = form
		res.Score = score
		res.Scope = ScopeCorpus
		return res
	}

	return res
}

// lookupKnown checks both dedup indices for the folded form and for its
// movable-nu counterparts: the form with a trailing ν appended, and, for
// forms already ending in εν/ιν, the form with the ν stripped.
func (e *Engine) lookupKnown(folded string) (string, bool) {
	forms := []string{folded}
	if greek.EndsMovableVowel(folded) {
		forms = append(forms, greek.WithMovableNu(folded))
	} else if greek.EndsMovableNu(folded) {
		forms = append(forms, greek.WithoutMovableNu(folded))
	}
	for _, form := range forms {
		if orig, ok := e.rahlfs.Lookup(form); ok {
			return orig, true
		}
		if orig, ok := e.swete.Lookup(form); ok {
			return orig, true
		}
	}
	return "", false
}

// combinedScope merges the two editions' scope maps at the converted
// references. halfWidth 0 selects the verse scope. A failed conversion
// contributes nothing.
func (e *Engine) combinedScope(refR verse.Ref, errR error, refS verse.Ref, errS error, halfWidth int) map[string]string {
	out := make(map[string]string)
	if errR == nil {
		mergeScope(out, e.scopeFor(e.rahlfs, refR, halfWidth))
	}
	if errS == nil {
		mergeScope(out, e.scopeFor(e.swete, refS, halfWidth))
	}
	return out
}

func (e *Engine) scopeFor(x *corpus.Index, ref verse.Ref, halfWidth int) map[string]string {
	if halfWidth == 0 {
		return x.VerseScope(ref)
	}
	return x.AreaScope(ref, halfWidth)
}

func mergeScope(dst, src map[string]string) {
	for k, v := range src {
		if _, seen := dst[k]; !seen {
			dst[k] = v
		}
	}
}

// checkScope runs the legitimate-variation test and then the typo test
// against one scope. Returns the completed result and true on a match.
func (e *Engine) checkScope(folded string, scope map[string]string, at Scope, base Result) (Result, bool) {
	if len(scope) == 0 {
		return base, false
	}

	keys := make([]string, 0, len(scope))
	for k := range scope {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cmpToken := greek.CompareForm(folded)
	for _, k := range keys {
		if ok, cat := variation.Pairwise(cmpToken, greek.CompareForm(k)); ok {
			base.Classification = LegitimateVariation
			base.Category = cat
			base.MatchedForm = scope[k]
			base.Score = 1
			base.Scope = at
			return base, true
		}
	}

	if form, score := bestMatchWithNuRetry(folded, scope, e.cfg.TypoThreshold); score >= e.cfg.TypoThreshold {
		base.Classification = Typo
		base.MatchedForm = form
		base.Score = score
		base.Scope = at
		return base, true
	}

	return base, false
}
