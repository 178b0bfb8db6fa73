package i18n

// Localized is a sealed type witness for the language a value was localized
// into. Only InEnglish, InFrench, and InGerman implement it.
//
// A Localized[T] is produced by a localize capability method and consumed
// by Match; the payload has fully become its case, there is no untagged
// original left to re-localize.
type Localized[T any] interface {
	localizedCase(T) // Sealed - only the language cases implement it
}

// InEnglish carries a payload localized into English.
type InEnglish[T any] struct {
	Value T
}

func (InEnglish[T]) localizedCase(T) {}

// InFrench carries a payload localized into French.
type InFrench[T any] struct {
	Value T
}

func (InFrench[T]) localizedCase(T) {}

// InGerman carries a payload localized into German.
type InGerman[T any] struct {
	Value T
}

func (InGerman[T]) localizedCase(T) {}

// Match dispatches on the language case. One renderer per language is
// required, so forgetting a language is a compile-time error instead of a
// render-time panic. Adding a language to the set changes this signature
// and breaks every matcher until the new language is handled.
func Match[T, R any](l Localized[T], english, french, german func(T) R) R {
	switch c := l.(type) {
	case InEnglish[T]:
		return english(c.Value)
	case InFrench[T]:
		return french(c.Value)
	case InGerman[T]:
		return german(c.Value)
	}
	// Unreachable: the Localized interface is sealed.
	panic("i18n: unknown Localized case")
}

// CaseName returns the language tag of the case, for diagnostics and
// serialized output.
func CaseName[T any](l Localized[T]) string {
	return Match(l,
		func(T) string { return "English" },
		func(T) string { return "French" },
		func(T) string { return "German" },
	)
}

// EnglishLocalizer is the capability to localize into English.
type EnglishLocalizer[T any] interface {
	LocalizeEnglish() Localized[T]
}

// FrenchLocalizer is the capability to localize into French.
type FrenchLocalizer[T any] interface {
	LocalizeFrench() Localized[T]
}

// GermanLocalizer is the capability to localize into German.
type GermanLocalizer[T any] interface {
	LocalizeGerman() Localized[T]
}

// IntoEnglish witnesses the EnglishLocalizer capability. A type lacking the
// capability is rejected during compilation.
func IntoEnglish[T any](v EnglishLocalizer[T]) Localized[T] {
	return v.LocalizeEnglish()
}

// IntoFrench witnesses the FrenchLocalizer capability.
func IntoFrench[T any](v FrenchLocalizer[T]) Localized[T] {
	return v.LocalizeFrench()
}

// IntoGerman witnesses the GermanLocalizer capability.
func IntoGerman[T any](v GermanLocalizer[T]) Localized[T] {
	return v.LocalizeGerman()
}

// Localizer is the capability to localize into every language in the set.
type Localizer[T any] interface {
	EnglishLocalizer[T]
	FrenchLocalizer[T]
	GermanLocalizer[T]
}

// LocalizeInto selects the case from a runtime marker, typically one
// produced by ClassifyTag. The bound requires full language support: a
// partially supporting type must stay on the typed per-language path, where
// its gaps are compile-time errors instead of runtime fallbacks.
func LocalizeInto[T any](v Localizer[T], lang Lang) Localized[T] {
	switch lang.(type) {
	case English:
		return v.LocalizeEnglish()
	case French:
		return v.LocalizeFrench()
	case German:
		return v.LocalizeGerman()
	}
	// Unreachable: the Lang interface is sealed.
	panic("i18n: unknown language marker")
}
