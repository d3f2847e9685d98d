// Package keystore stores DHIS2 passwords in the OS keychain so they never
// land in config files or shell history.
package keystore

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const service = "dhis2-cli"

// ErrNotFound indicates that no password is stored for the given account.
var ErrNotFound = errors.New("no stored password")

func account(serverURL, username string) string {
	return username + "@" + serverURL
}

// Set stores the password for the given server and username.
func Set(serverURL, username, password string) error {
	if err := keyring.Set(service, account(serverURL, username), password); err != nil {
		return fmt.Errorf("failed to store password in keychain: %w", err)
	}
	return nil
}

// Get retrieves the password for the given server and username.
func Get(serverURL, username string) (string, error) {
	password, err := keyring.Get(service, account(serverURL, username))
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read password from keychain: %w", err)
	}
	return password, nil
}

// Delete removes the stored password for the given server and username.
func Delete(serverURL, username string) error {
	if err := keyring.Delete(service, account(serverURL, username)); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete password from keychain: %w", err)
	}
	return nil
}

// Exists checks if a password is stored for the given server and username.
func Exists(serverURL, username string) bool {
	_, err := keyring.Get(service, account(serverURL, username))
	return err == nil
}
