// Package visitor mints the throwaway USER<n> label anonymous visitors are
// known by in chat. The label carries no authentication weight.
package visitor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"

	"github.com/sourcecodehub/hub-backend/internal/storage"
)

// Key is where the CLI keeps its label.
const Key = "visitor_id"

var labelPattern = regexp.MustCompile(`^USER\d{1,4}$`)

// NewLabel returns USER<n> with n uniform in [0, 10000).
func NewLabel() string {
	return fmt.Sprintf("USER%d", rand.Intn(10000))
}

// Valid reports whether s has the shape NewLabel produces.
func Valid(s string) bool {
	return labelPattern.MatchString(s)
}

// EnsureLabel returns the stored label, minting and storing one on first use.
func EnsureLabel(ctx context.Context, kv storage.KV) (string, error) {
	label, err := kv.Get(ctx, Key)
	switch {
	case err == nil && Valid(label):
		return label, nil
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		return "", fmt.Errorf("load visitor label: %w", err)
	}

	label = NewLabel()
	if err := kv.Set(ctx, Key, label); err != nil {
		return "", fmt.Errorf("store visitor label: %w", err)
	}
	return label, nil
}
