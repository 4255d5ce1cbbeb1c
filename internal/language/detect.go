package language

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Score is one language's signal count for a piece of text.
type Score struct {
	Code  Code
	Value int
}

// Scorer assigns a score to every supported language.
type Scorer interface {
	Score(text string) map[Code]int
}

// Detector ranks languages using a Scorer and resolves ties deterministically.
type Detector struct {
	scorer Scorer
}

// NewDetector returns a Detector using s, or the built-in lexical/script
// scorer when s is nil.
func NewDetector(s Scorer) *Detector {
	if s == nil {
		s = NewPatternScorer()
	}
	return &Detector{scorer: s}
}

// Detect returns the most likely language of text, or Default when the text
// carries no signal.
func (d *Detector) Detect(text string) Code {
	return d.DetectWithHint(text, "")
}

// DetectWithHint is Detect, except that a tie between non-zero scores is
// resolved in favour of hint when hint is one of the tied languages.
func (d *Detector) DetectWithHint(text string, hint Code) Code {
	ranked := d.rank(text, hint)
	if len(ranked) == 0 || ranked[0].Value == 0 {
		return Default
	}
	return ranked[0].Code
}

// Rank returns every supported language ordered by descending score. Ties keep
// table order.
func (d *Detector) Rank(text string) []Score {
	return d.rank(text, "")
}

func (d *Detector) rank(text string, hint Code) []Score {
	raw := d.scorer.Score(text)
	out := make([]Score, 0, len(table))
	for _, info := range table {
		out = append(out, Score{Code: info.Code, Value: raw[info.Code]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Code == hint && out[j].Code != hint
	})
	return out
}

// PatternScorer counts function words for Latin-script languages and code
// points by Unicode script for the others.
type PatternScorer struct {
	lexicons map[Code]map[string]struct{}
	marks    map[Code]string
	scripts  map[Code][]*unicode.RangeTable
}

var lexicons = map[Code][]string{
	English: {
		"the", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by",
		"about", "his", "her", "what", "how", "who", "is", "are", "you", "your",
		"tell", "can", "does", "do", "where", "which",
	},
	Spanish: {
		"el", "la", "los", "las", "un", "una", "y", "o", "en", "de", "a", "por", "para",
		"con", "es", "está", "son", "cómo", "qué", "cuál", "cuáles", "puedo", "sus",
		"su", "sobre", "del", "al", "tiene", "hola", "cuéntame", "dónde",
	},
	French: {
		"le", "la", "les", "un", "une", "et", "ou", "de", "du", "des", "à", "dans", "sur",
		"pour", "avec", "est", "sont", "je", "vous", "quels", "quelles", "quelle",
		"comment", "ses", "son", "sa", "parlez", "moi",
	},
	German: {
		"der", "die", "das", "ein", "eine", "und", "oder", "in", "auf", "zu", "für", "mit",
		"ist", "sind", "haben", "wie", "was", "kann", "ich", "ihn", "seine", "sie",
		"über", "erzählen",
	},
	Portuguese: {
		"o", "a", "os", "as", "um", "uma", "e", "ou", "em", "de", "para", "com", "é",
		"são", "está", "estão", "como", "posso", "quais", "suas", "seu", "sua",
		"fale", "dele", "você",
	},
	Italian: {
		"il", "la", "lo", "i", "le", "gli", "un", "una", "e", "o", "in", "di", "a", "da",
		"per", "con", "è", "sono", "come", "posso", "quali", "sue", "suoi", "parlami",
		"chi", "della",
	},
}

// NewPatternScorer builds the default scorer.
func NewPatternScorer() *PatternScorer {
	s := &PatternScorer{
		lexicons: make(map[Code]map[string]struct{}, len(lexicons)),
		marks:    map[Code]string{Spanish: "¿¡"},
		scripts: map[Code][]*unicode.RangeTable{
			Hindi:   {unicode.Devanagari},
			Korean:  {unicode.Hangul},
			Chinese: {unicode.Han},
			Arabic:  {unicode.Arabic},
			Russian: {unicode.Cyrillic},
		},
	}
	for code, words := range lexicons {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		s.lexicons[code] = set
	}
	return s
}

func (s *PatternScorer) Score(text string) map[Code]int {
	scores := make(map[Code]int, len(table))
	if strings.TrimSpace(text) == "" {
		return scores
	}

	// A Caser is stateful, so each call gets its own.
	for _, tok := range Tokens(cases.Lower(language.Und).String(text)) {
		for code, set := range s.lexicons {
			if _, ok := set[tok]; ok {
				scores[code]++
			}
		}
	}

	var kana, han int
	for _, r := range text {
		for code, marks := range s.marks {
			if strings.ContainsRune(marks, r) {
				scores[code]++
			}
		}
		for code, ranges := range s.scripts {
			if unicode.In(r, ranges...) {
				scores[code]++
			}
		}
		switch {
		case unicode.In(r, unicode.Hiragana, unicode.Katakana):
			kana++
		case unicode.Is(unicode.Han, r):
			han++
		}
	}
	// Han alone reads as Chinese; kana makes the whole text Japanese.
	if kana > 0 {
		scores[Japanese] = kana + han
	}
	return scores
}

// Tokens splits text into runs of letters and combining marks.
func Tokens(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsMark(r)
	})
}
