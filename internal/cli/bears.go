package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tinybeachthor/bear-witness/bears"
)

// NewBearsCommand creates the bears command.
func NewBearsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bears",
		Short: "Run the capability witness demo",
		Long: `Run the capability witness demo.

Certifies each bear through the Bear capability witness and growls. The
brown bear also does brown bear things, which is the point: witnessing the
capability never erased the concrete type.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBears(rootOpts, cmd)
		},
	}

	return cmd
}

func runBears(opts *RootOptions, cmd *cobra.Command) error {
	f := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	brown := bears.BearWitness(bears.BrownBear{})
	polar := bears.BearWitness(bears.PolarBear{})

	if opts.Format == "json" {
		return f.Success("", map[string]string{
			"brown_bear":        brown.Value().Growl(),
			"brown_bear_things": brown.Value().DoBrownBearThings(),
			"polar_bear":        polar.Value().Growl(),
		})
	}

	fmt.Fprintln(cmd.OutOrStdout(), brown.Value().Growl())
	fmt.Fprintln(cmd.OutOrStdout(), brown.Value().DoBrownBearThings())
	fmt.Fprintln(cmd.OutOrStdout(), polar.Value().Growl())
	return nil
}
