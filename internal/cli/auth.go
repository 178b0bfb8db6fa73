package cli

import (
	"github.com/spf13/cobra"

	"github.com/tinybeachthor/bear-witness/auth"
)

// AuthOptions holds flags for the auth command.
type AuthOptions struct {
	*RootOptions
	UserID uint32
	Token  string
}

// NewAuthCommand creates the auth command.
func NewAuthCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &AuthOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate a session and fetch the admin page",
		Long: `Authenticate a session and fetch the admin page.

The session is classified exactly once into Admin (user id 0) or User
(anything else); the page lookup dispatches on the resulting case and never
re-checks the user id.

Example:
  bearwitness auth --user-id 0`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(opts, cmd)
		},
	}

	cmd.Flags().Uint32Var(&opts.UserID, "user-id", 0, "user id for the session (0 is the admin user)")
	cmd.Flags().StringVar(&opts.Token, "token", "", "fixed session token (default: mint a fresh one)")

	return cmd
}

func runAuth(opts *AuthOptions, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	session := auth.NewSession(opts.UserID)
	if opts.Token != "" {
		session.Token = opts.Token
	}

	classified := auth.Authenticate(session)
	caseName := auth.CaseName(classified)
	f.VerboseLog("session token=%s classified as %s", session.Token, caseName)

	page, err := auth.AdminPage(classified)
	if err != nil {
		var code string
		if auth.IsNotFound(err) {
			code = string(auth.ErrCodeNotFound)
		} else {
			code = "UNKNOWN"
		}
		if outErr := f.Error(caseName, code, err.Error()); outErr != nil {
			return outErr
		}
		return WrapExitError(ExitFailure, "no admin page for this session", err)
	}

	return f.Success(caseName, page)
}
