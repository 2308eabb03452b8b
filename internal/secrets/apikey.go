package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// KeyringService groups the engine's entries in the OS keychain.
	KeyringService = "jobyaari-engine"
)

var ErrNoAPIKey = errors.New("llm api key not found (set it in keychain or via env)")

// GetAPIKey looks in the keychain under account first, then in the envVar environment variable.
func GetAPIKey(account, envVar string) (string, error) {
	if strings.TrimSpace(account) != "" {
		key, err := keyring.Get(KeyringService, account)
		if err == nil && strings.TrimSpace(key) != "" {
			return key, nil
		}
	}
	if envVar != "" {
		if key := strings.TrimSpace(os.Getenv(envVar)); key != "" {
			return key, nil
		}
	}
	return "", ErrNoAPIKey
}

func SetAPIKey(account, key string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(KeyringService, account, key)
}

// DeleteAPIKey removes the keychain entry. A missing entry is not an error.
func DeleteAPIKey(account string) error {
	if strings.TrimSpace(account) == "" {
		return errors.New("keyring account name is empty")
	}
	err := keyring.Delete(KeyringService, account)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// HasKeychainEntry reports whether account has a stored key, without returning it.
func HasKeychainEntry(account string) bool {
	if strings.TrimSpace(account) == "" {
		return false
	}
	key, err := keyring.Get(KeyringService, account)
	return err == nil && key != ""
}
