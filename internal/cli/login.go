package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhis2go/dhis2"
	"github.com/dhis2go/dhis2/internal/keystore"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store credentials for a DHIS2 server in the OS keychain",
	Long: `Prompts for a password, verifies it against the configured server and
stores it in the OS keychain for later commands.`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove stored credentials for the configured server",
	RunE:  runLogout,
}

func runLogin(cmd *cobra.Command, args []string) error {
	if err := requireServer(); err != nil {
		return err
	}

	fmt.Printf("Password for %s at %s: ", cfg.Server.Username, cfg.Server.URL)
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	client, err := dhis2.NewClient(dhis2.Config{
		BaseURL:  cfg.Server.URL,
		Username: cfg.Server.Username,
		Password: password,
		Timeout:  cfg.Server.Timeout,
	})
	if err != nil {
		return err
	}

	info, err := client.GetSystemInfo(context.Background())
	if err != nil {
		if clientErr, ok := dhis2.AsClientError(err); ok && clientErr.IsUnauthorized() {
			return fmt.Errorf("invalid credentials for %s", cfg.Server.URL)
		}
		return fmt.Errorf("failed to verify credentials: %w", err)
	}

	if err := keystore.Set(cfg.Server.URL, cfg.Server.Username, password); err != nil {
		return err
	}

	log.Info().Str("server", cfg.Server.URL).Str("version", info.Version).Msg("Credentials stored")
	fmt.Printf("Logged in to %s (DHIS2 %s)\n", cfg.Server.URL, info.Version)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := requireServer(); err != nil {
		return err
	}

	if err := keystore.Delete(cfg.Server.URL, cfg.Server.Username); err != nil {
		if err == keystore.ErrNotFound {
			fmt.Println("No stored credentials found.")
			return nil
		}
		return err
	}

	fmt.Printf("Removed stored credentials for %s at %s\n", cfg.Server.Username, cfg.Server.URL)
	return nil
}
