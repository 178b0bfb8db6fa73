package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Lang is the sealed marker interface over the supported language set.
// Only English, French, and German implement it. The markers are zero-size;
// they exist to select capabilities and variant cases, not to carry data.
type Lang interface {
	langMarker() // Sealed - only the language markers implement it
}

// English marks the English language.
type English struct{}

func (English) langMarker() {}

// French marks the French language.
type French struct{}

func (French) langMarker() {}

// German marks the German language.
type German struct{}

func (German) langMarker() {}

// LangName returns the marker's language name, for diagnostics and
// serialized output.
func LangName(l Lang) string {
	switch l.(type) {
	case English:
		return "English"
	case French:
		return "French"
	case German:
		return "German"
	}
	// Unreachable: the Lang interface is sealed.
	panic("i18n: unknown language marker")
}

// supported lists the language set in matcher order. The first entry is
// only used as the matcher's fallback slot; an unmatched tag is detected by
// confidence, not by index.
var supported = []language.Tag{
	language.English,
	language.French,
	language.German,
}

var matcher = language.NewMatcher(supported)

// ClassifyTag maps an arbitrary BCP 47 tag onto the closed language set,
// evaluating the match exactly once.
//
// For every supported input exactly one marker is produced; unsupported
// tags return an UNSUPPORTED_LANGUAGE error rather than a silent fallback.
func ClassifyTag(tag language.Tag) (Lang, error) {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, NewUnsupportedError(tag)
	}
	switch supported[idx] {
	case language.English:
		return English{}, nil
	case language.French:
		return French{}, nil
	case language.German:
		return German{}, nil
	}
	// Unreachable: idx indexes into supported.
	panic("i18n: matcher returned unknown language")
}

// ParseLang parses a BCP 47 string ("en", "fr-CA", "de-DE") and classifies
// it onto the language set.
func ParseLang(s string) (Lang, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse language tag %q: %w", s, err)
	}
	return ClassifyTag(tag)
}
