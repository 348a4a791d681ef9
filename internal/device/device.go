// Package device supplies the stable device identifier used as the primary
// identity on every backend call.
package device

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/featurepulse/featurepulse-go/internal/repositories/metadata"
)

const idKey = "device_id"

// GetOrCreate returns the persisted device ID, generating and storing a new
// UUID on first run. Once created the ID is never regenerated; a platform
// integration that can supply a reinstall-surviving identifier should seed
// the store before the first call.
func GetOrCreate(ctx context.Context, repo metadata.Repository) (string, error) {
	id, ok, err := repo.GetString(ctx, idKey)
	if err != nil {
		return "", fmt.Errorf("reading device id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err := repo.SetString(ctx, idKey, id); err != nil {
		return "", fmt.Errorf("storing device id: %w", err)
	}
	return id, nil
}
