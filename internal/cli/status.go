package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhis2go/dhis2"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check connectivity and show server information",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	client, err := newAPIClient()
	if err != nil {
		return err
	}

	info, err := client.GetSystemInfo(context.Background())
	if err != nil {
		if clientErr, ok := dhis2.AsClientError(err); ok {
			switch {
			case clientErr.IsUnauthorized():
				return fmt.Errorf("authentication failed: run 'dhis2 login' to update credentials")
			case clientErr.IsForbidden():
				return fmt.Errorf("access denied: the account lacks the required authorities")
			}
		}
		return fmt.Errorf("failed to reach server: %w", err)
	}

	fmt.Printf("Server:    %s\n", client.BaseURL())
	fmt.Printf("User:      %s\n", client.Username())
	fmt.Printf("Version:   %s\n", info.Version)
	if info.Revision != "" {
		fmt.Printf("Revision:  %s\n", info.Revision)
	}
	if info.SystemName != "" {
		fmt.Printf("Name:      %s\n", info.SystemName)
	}
	if info.ServerDate != "" {
		fmt.Printf("Date:      %s\n", info.ServerDate)
	}
	return nil
}
