package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Load resolves a secret by name. A file path takes precedence over the inline
// value; the result is always trimmed. An error is returned when neither
// source yields a usable secret.
func Load(name, file, inline string) (string, error) {
	if name = strings.TrimSpace(name); name == "" {
		name = "secret"
	}

	if file = strings.TrimSpace(file); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		inline = string(data)
	}

	secret := strings.TrimSpace(inline)
	if secret == "" {
		if file != "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return "", fmt.Errorf("%s is not configured", name)
	}

	return secret, nil
}
