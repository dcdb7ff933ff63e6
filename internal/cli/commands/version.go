package commands

import (
	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt := RuntimeFrom(cmd)
			rt.Renderer.Printf("veclint %s\n", version)
			return nil
		},
	}
}
