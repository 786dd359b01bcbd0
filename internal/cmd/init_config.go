package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/harrison/fsearch/internal/config"
	"github.com/harrison/fsearch/internal/filelock"
	"github.com/harrison/fsearch/internal/models"
	"github.com/spf13/cobra"
)

// lockTimeout bounds the wait for a concurrent init-config to finish.
const lockTimeout = 5 * time.Second

// NewInitConfigCommand creates and returns the init-config subcommand
func NewInitConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration file",
		Long: `Write the default fsearch configuration as YAML.

The file is written to ./` + config.FileName + ` unless a path is given. An existing
file is left untouched unless --force is set. The write is atomic: readers
see either the old file or the complete new one.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          runInitConfig,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing configuration file")

	return cmd
}

// runInitConfig implements the init-config command logic
func runInitConfig(cmd *cobra.Command, args []string) error {
	path := config.FileName
	if len(args) == 1 {
		path = args[0]
	}
	force, _ := cmd.Flags().GetBool("force")

	data, err := config.DefaultConfig().Marshal()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	if err := filelock.WriteFile(ctx, path, data, force); err != nil {
		if errors.Is(err, filelock.ErrExists) {
			return models.NewArgumentError("force", fmt.Sprintf("%s already exists, pass --force to overwrite it", path))
		}
		return models.NewIOError("write config", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
	return nil
}
