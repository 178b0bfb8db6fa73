package cli

import (
	"github.com/spf13/cobra"

	"github.com/tinybeachthor/bear-witness/i18n"
)

// GreetOptions holds flags for the greet command.
type GreetOptions struct {
	*RootOptions
	Who  string
	Lang string
}

// NewGreetCommand creates the greet command.
func NewGreetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GreetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Render a localized greeting",
		Long: `Render a localized greeting.

The --lang tag is matched against the supported language set (en, fr, de)
exactly once; rendering dispatches on the typed result. The greeting
template is translated into English and French; German classifies but has
no translation, which is reported as an explicit error.

Example:
  bearwitness greet --who World --lang fr`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreet(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Who, "who", "World", "who to greet")
	cmd.Flags().StringVar(&opts.Lang, "lang", "en", "greeting language as a BCP 47 tag")

	return cmd
}

func runGreet(opts *GreetOptions, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	lang, err := i18n.ParseLang(opts.Lang)
	if err != nil {
		code := "INVALID_LANGUAGE_TAG"
		if i18n.IsUnsupported(err) {
			code = string(i18n.ErrCodeUnsupportedLanguage)
		}
		if outErr := f.Error("", code, err.Error()); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitCommandError, "unsupported language", err)
	}

	caseName := i18n.LangName(lang)
	f.VerboseLog("tag %q classified as %s", opts.Lang, caseName)

	localized, err := i18n.LocalizeContext(i18n.Context{Who: opts.Who}, lang)
	if err != nil {
		if outErr := f.Error(caseName, string(i18n.ErrCodeNoTranslation), err.Error()); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "no translation for this language", err)
	}

	return f.Success(caseName, i18n.Greeting(localized))
}
