package language

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Code is a supported language code (ISO 639-1).
type Code string

const (
	English    Code = "en"
	Spanish    Code = "es"
	French     Code = "fr"
	German     Code = "de"
	Hindi      Code = "hi"
	Japanese   Code = "ja"
	Korean     Code = "ko"
	Chinese    Code = "zh"
	Arabic     Code = "ar"
	Portuguese Code = "pt"
	Russian    Code = "ru"
	Italian    Code = "it"

	Default = English
)

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Info describes a supported language.
type Info struct {
	Code       Code      `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"nativeName"`
	Direction  Direction `json:"direction"`
}

// ErrUnsupported is returned by Parse for languages outside the supported set.
var ErrUnsupported = errors.New("language: unsupported language")

// table order is significant: it is the detector's final tie-break.
var table = []Info{
	{Code: English, Name: "English", NativeName: "English", Direction: LTR},
	{Code: Spanish, Name: "Spanish", NativeName: "Español", Direction: LTR},
	{Code: French, Name: "French", NativeName: "Français", Direction: LTR},
	{Code: German, Name: "German", NativeName: "Deutsch", Direction: LTR},
	{Code: Hindi, Name: "Hindi", NativeName: "हिन्दी", Direction: LTR},
	{Code: Japanese, Name: "Japanese", NativeName: "日本語", Direction: LTR},
	{Code: Korean, Name: "Korean", NativeName: "한국어", Direction: LTR},
	{Code: Chinese, Name: "Chinese", NativeName: "中文", Direction: LTR},
	{Code: Arabic, Name: "Arabic", NativeName: "العربية", Direction: RTL},
	{Code: Portuguese, Name: "Portuguese", NativeName: "Português", Direction: LTR},
	{Code: Russian, Name: "Russian", NativeName: "Русский", Direction: LTR},
	{Code: Italian, Name: "Italian", NativeName: "Italiano", Direction: LTR},
}

var (
	index   = make(map[Code]int, len(table))
	tags    = make([]language.Tag, 0, len(table))
	matcher language.Matcher
)

func init() {
	for i, info := range table {
		index[info.Code] = i
		tags = append(tags, language.Make(string(info.Code)))
	}
	matcher = language.NewMatcher(tags)
}

// All returns the supported languages in table order.
func All() []Info {
	out := make([]Info, len(table))
	copy(out, table)
	return out
}

// Codes returns the supported codes in table order.
func Codes() []Code {
	out := make([]Code, 0, len(table))
	for _, info := range table {
		out = append(out, info.Code)
	}
	return out
}

// Lookup returns the table entry for c.
func Lookup(c Code) (Info, bool) {
	i, ok := index[c]
	if !ok {
		return Info{}, false
	}
	return table[i], true
}

// Supported reports whether c is in the supported set.
func (c Code) Supported() bool {
	_, ok := index[c]
	return ok
}

// OrDefault returns c when supported and Default otherwise.
func (c Code) OrDefault() Code {
	if c.Supported() {
		return c
	}
	return Default
}

func (c Code) String() string { return string(c) }

// Parse accepts a BCP 47 tag such as "es", "pt-BR" or "zh-Hans" and returns the
// supported base language it names.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty tag", ErrUnsupported)
	}
	tag, err := language.Parse(s)
	if err != nil {
		return "", fmt.Errorf("language: parse %q: %w", s, err)
	}
	base, _ := tag.Base()
	c := Code(base.String())
	if !c.Supported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return c, nil
}

// MatchAcceptLanguage picks the best supported language for an Accept-Language
// header value. ok is false when nothing in the header is reasonably close.
func MatchAcceptLanguage(header string) (Code, bool) {
	if strings.TrimSpace(header) == "" {
		return "", false
	}
	prefs, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(prefs) == 0 {
		return "", false
	}
	_, i, confidence := matcher.Match(prefs...)
	if confidence < language.High {
		return "", false
	}
	return table[i].Code, true
}
