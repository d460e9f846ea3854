//go:build e2e

package authtest

import (
	"testing"
	"time"

	"condo-reserve/internal/pkg/config"
	"condo-reserve/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// IssueToken signs a bearer token for the given resident and condo using the
// same secret the app under test runs with.
func IssueToken(t *testing.T, cfg config.Config, userID, condoID uuid.UUID) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err, "invalid JWT duration in test config")

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(userID, condoID)
	require.NoError(t, err, "failed to sign test token")
	return token
}
