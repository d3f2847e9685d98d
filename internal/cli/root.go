// Package cli implements the dhis2 command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dhis2go/dhis2"
	"github.com/dhis2go/dhis2/internal/config"
	"github.com/dhis2go/dhis2/internal/keystore"
	"github.com/dhis2go/dhis2/internal/logger"
	"github.com/dhis2go/dhis2/internal/store"
)

var (
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger

	// Persistent overrides for the config file values
	serverURL string
	username  string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dhis2",
	Short: "A command line client for the DHIS2 web API",
	Long: `dhis2 is a CLI for working with a DHIS2 instance: checking connectivity,
exporting and importing aggregate data value sets, and running recurring
sync jobs. Credentials are kept in the OS keychain.`,
	SilenceUsage:      true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "DHIS2 server base URL")
	rootCmd.PersistentFlags().StringVarP(&username, "username", "u", "", "DHIS2 username")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(historyCmd)
}

// initializeApp loads the configuration and sets up logging
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if serverURL != "" {
		cfg.Server.URL = serverURL
	}
	if username != "" {
		cfg.Server.Username = username
	}

	log = logger.New(cfg.Logging)
	return nil
}

// requireServer validates that a server URL and username are configured.
func requireServer() error {
	if cfg.Server.URL == "" {
		return fmt.Errorf("no server configured: set server.url in the config file or pass --server")
	}
	if cfg.Server.Username == "" {
		return fmt.Errorf("no username configured: set server.username in the config file or pass --username")
	}
	return nil
}

// resolvePassword looks up the password for the configured server, preferring
// the DHIS2_PASSWORD environment variable over the OS keychain.
func resolvePassword() (string, error) {
	if password := os.Getenv("DHIS2_PASSWORD"); password != "" {
		return password, nil
	}

	password, err := keystore.Get(cfg.Server.URL, cfg.Server.Username)
	if err != nil {
		if err == keystore.ErrNotFound {
			return "", fmt.Errorf("no stored password for %s at %s: run 'dhis2 login' first",
				cfg.Server.Username, cfg.Server.URL)
		}
		return "", err
	}
	return password, nil
}

// newAPIClient builds an authenticated API client from the configuration.
func newAPIClient() (*dhis2.Client, error) {
	if err := requireServer(); err != nil {
		return nil, err
	}

	password, err := resolvePassword()
	if err != nil {
		return nil, err
	}

	client, err := dhis2.NewClient(dhis2.Config{
		BaseURL:  cfg.Server.URL,
		Username: cfg.Server.Username,
		Password: password,
		Timeout:  cfg.Server.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	return client.WithLogger(log), nil
}

// openStore opens the task-history database.
func openStore() (*store.Store, error) {
	s, err := store.Open(cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open task history: %w", err)
	}
	return s, nil
}

// failRun marks the run as failed, logging when the record itself cannot be
// written.
func failRun(history *store.Store, run *store.TaskRun, cause error) {
	if err := history.Fail(run, cause.Error()); err != nil {
		log.Warn().Err(err).Msg("Failed to record run")
	}
}
