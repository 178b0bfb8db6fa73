// Package i18n demonstrates turning types into values and back: a closed
// language set as zero-size marker types, a runtime tag classified onto
// that set exactly once, and rendering that cannot silently skip a case.
//
// The naive version of this is a render function switching on a language
// enum, with an unimplemented branch that panics at render time. Language
// support is static information, so that panic should be a type error
// instead. Three constructs make it one:
//
//   - Lang markers (English, French, German): a sealed set of zero-size tag
//     types. Supporting a language means implementing the localize
//     capability for its marker; not supporting it means the capability
//     method does not exist and calls to it do not compile.
//   - Localized[T]: a sealed variant carrying the payload under exactly one
//     language tag. Produced by the capability methods, consumed by Match,
//     which takes one handler per language. A missing renderer is a
//     compile-time arity error, and adding a language to the set breaks
//     every matcher until handled.
//   - ClassifyTag: maps an arbitrary BCP 47 tag onto the closed set using
//     golang.org/x/text language matching. This is the single point where
//     runtime input meets the type-level language set; everything after it
//     is statically dispatched.
//
//	ctx := Context{Who: "World"}
//	Greeting(ctx.LocalizeEnglish()) // "Hello World"
//
// Context itself is the partial-support exemplar: it is translated into
// English and French only, so the German path is rejected during
// compilation rather than at render time:
//
//	Greeting(Context{Who: "World"}.LocalizeGerman())
//	// error: Context{...}.LocalizeGerman undefined
//
// At a genuine runtime boundary (a CLI flag, a request header) the German
// marker can still arrive after classification. LocalizeContext handles
// that case with an explicit NO_TRANSLATION error, keeping the missing
// translation visible instead of falling back to another language.
package i18n
