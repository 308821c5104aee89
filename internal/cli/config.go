package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mmcdole/gallery/internal/config"
)

// NewConfigCmd creates the config command group
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
	}
	cmd.AddCommand(NewConfigInitCmd())
	return cmd
}

// NewConfigInitCmd creates the config init command which writes the defaults
func NewConfigInitCmd() *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = config.DefaultConfigDir()
			}

			configPath := filepath.Join(dir, "config.yaml")
			if !force {
				_, err := os.Stat(configPath)
				if err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", configPath, err)
				}
			}

			path, err := config.SaveConfig(config.DefaultConfig(), dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "directory to write config.yaml to (default is $HOME/.config/gallery)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}
