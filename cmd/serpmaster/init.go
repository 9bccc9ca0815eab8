package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/klatt42/serpmaster/internal/config"
)

//go:embed templates/serpmaster.yaml
var configTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new serpmaster project file",
		Long: `Initialize creates a new .serpmaster project file in the current directory.

The generated file includes:
- Default settings applied to every site
- Commented examples for per-site API keys, headers, and polling
- Documentation for all available options

Examples:
  # Create .serpmaster in current directory
  serpmaster init

  # Create the project file at a specific path
  serpmaster init -o myproject.yaml

  # Force overwrite existing file
  serpmaster init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the project file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing project file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("project file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile("templates/serpmaster.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}

	fmt.Printf("Created project file: %s\n", outputPath)
	fmt.Println("\nEdit this file to configure per-site settings such as:")
	fmt.Println("  - API keys and extra request headers")
	fmt.Println("  - Poll interval for slow audits")
	fmt.Println("  - Opting sites out of the local history database")

	return nil
}
