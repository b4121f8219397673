// Package main is the entry point for the contactbook CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/contactbook/contactbook/internal/config"
	"github.com/contactbook/contactbook/internal/logging"
	"github.com/contactbook/contactbook/pkg/contact"
	"github.com/contactbook/contactbook/pkg/store"
)

var (
	// version is set at build time
	version = "dev"

	// Global flags
	flagConfig string

	// Resolved in PersistentPreRunE
	cfg      *config.Config
	logger   *slog.Logger
	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "contactbook",
	Short: "Manage contacts stored in a JSON file",
	Long: `contactbook lists, shows, adds and removes contacts kept in a single
JSON file (default db/contacts.json).

Each invocation performs one action selected with -a/--action.`,
	Example: `  contactbook -a list
  contactbook -a get -i 05olLMgyVQdWRwgKfg5J6
  contactbook -a add -n Mango -e mango@gmail.com -p 322-22-22
  contactbook -a remove -i qdggE76Jtbfd9eWJHrssH
  contactbook -a list -o json --store ./contacts.json`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runAction,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./contactbook.yaml if present)")
	rootCmd.PersistentFlags().String("store", "", "Path of the contacts file (env CONTACTBOOK_STORE)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json")
	rootCmd.PersistentFlags().String("log-file", "", "Append logs to this file instead of stderr")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// No config needed to print the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "contactbook version %s\n", version)
		},
	})
}

// setup loads the configuration and builds the logger for every command.
func setup(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(cmd.Flags(), flagConfig)
	if err != nil {
		return err
	}
	logger, closeLog = logging.New(&cfg.Log, cmd.ErrOrStderr())
	logger.Debug("configuration loaded", "store", cfg.Store, "output", cfg.Output)
	return nil
}

func contactStore() *store.File[contact.Contact] {
	return store.NewFile[contact.Contact](cfg.Store)
}

func main() {
	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
