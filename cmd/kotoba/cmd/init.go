package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tomozane/kotoba/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize kotoba configuration",
	Long: `Initialize the kotoba configuration directory.

This writes a config.yaml with the default settings:
  - database         (path of the vocabulary SQLite file)
  - lookup_base_url  (where rendered kanji link to)
  - link_kanji       (whether rendered kanji become lookup links)`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()

	if _, err := os.Stat(configDir); err == nil && !force {
		return fmt.Errorf("config directory already exists: %s\nUse --force to overwrite", configDir)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := config.Save(configDir, config.Default(configDir)); err != nil {
		return err
	}

	fmt.Printf("Initialized kotoba configuration in %s\n\n", configDir)
	fmt.Println("Next steps:")
	fmt.Println("  1. Add vocabulary:  kotoba add 日本語 -t 'Japanese language'")
	fmt.Println("  2. Browse it:       kotoba")
	fmt.Println("  3. Train:           kotoba train")
	return nil
}
