package i18n

import "fmt"

// Context is the greeting template payload.
//
// Context is translated into English and French only. There is no
// LocalizeGerman method, so asking for a German greeting on the typed path
// is rejected during compilation:
//
//	Context{}.LocalizeGerman()
//	// error: Context{}.LocalizeGerman undefined
//
//	IntoGerman[Context](Context{})
//	// error: Context does not implement GermanLocalizer[Context]
//	//        (missing method LocalizeGerman)
type Context struct {
	Who string
}

// LocalizeEnglish implements EnglishLocalizer for Context.
func (c Context) LocalizeEnglish() Localized[Context] {
	return InEnglish[Context]{Value: c}
}

// LocalizeFrench implements FrenchLocalizer for Context.
func (c Context) LocalizeFrench() Localized[Context] {
	return InFrench[Context]{Value: c}
}

// Greeting renders a localized greeting.
//
// Match still demands a German handler, but the localize capabilities
// cannot produce a German Context, so that arm refuses loudly. Reaching it
// means the capability witnesses were bypassed by constructing the case
// directly.
func Greeting(l Localized[Context]) string {
	return Match(l,
		func(c Context) string { return fmt.Sprintf("Hello %s", c.Who) },
		func(c Context) string { return fmt.Sprintf("Bonjour %s", c.Who) },
		func(Context) string { panic("i18n: no German translation for the greeting template") },
	)
}

// LocalizeContext carries the greeting template across a runtime boundary:
// it selects the localize capability matching a marker produced by
// ClassifyTag. German classifies fine but Context has no German
// translation, so that marker yields an explicit NO_TRANSLATION error,
// returned to the caller rather than silently falling back to another
// language.
func LocalizeContext(c Context, lang Lang) (Localized[Context], error) {
	switch lang.(type) {
	case English:
		return c.LocalizeEnglish(), nil
	case French:
		return c.LocalizeFrench(), nil
	case German:
		return nil, NewNoTranslationError(lang)
	}
	// Unreachable: the Lang interface is sealed.
	panic("i18n: unknown language marker")
}
