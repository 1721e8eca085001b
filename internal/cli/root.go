package cli

import (
	"context"
	"fmt"
	"midpoint-service/internal/app"

	"github.com/spf13/cobra"
)

// Dependencies lets the entrypoint (and tests) decide how the app is built.
type Dependencies struct {
	Open    func(ctx context.Context) (*app.App, error)
	Version string
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	root := &cobra.Command{
		Use:           "midpointctl",
		Short:         "Operate the midpoint service: cache schema, cache pruning and one-off searches.",
		Version:       resolvedVersion(deps.Version),
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(newMigrateCommand(deps))
	root.AddCommand(newPruneCommand(deps))
	root.AddCommand(newFindCommand(deps))

	return root
}

func openApp(ctx context.Context, deps Dependencies) (*app.App, error) {
	if deps.Open == nil {
		return nil, fmt.Errorf("no application factory configured")
	}
	return deps.Open(ctx)
}
