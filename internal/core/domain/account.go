package domain

import (
	"fmt"
	"strings"
)

// AccountFromProfileURL extracts the account identifier from a profile URL
// of the form .../user/<name>/... URLs without a user path segment are
// rejected. A bare account name (no slashes) is accepted as-is, so users
// can pass either form on the command line.
func AccountFromProfileURL(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty account reference", ErrInvalidInput)
	}

	if !strings.Contains(ref, "/") {
		return ref, nil
	}

	parts := strings.Split(strings.Trim(ref, "/"), "/")
	for i, part := range parts {
		if (part == "user" || part == "u") && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}

	return "", fmt.Errorf("%w: profile URL has no user segment: %s", ErrInvalidInput, ref)
}
