package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand crea el comando raíz. Sin subcomando levanta el servidor.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "observatorio_mid",
		Short:         "API intermedia del observatorio laboral y de educación superior",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewEsquemaCommand())

	return cmd
}
