package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seogestao/condogest/internal/domain/models"
)

func TestIssueAndValidateRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret")

	profile := models.Profile{
		ID:           "p1",
		Name:         "Ana Silva",
		Email:        "ana@example.com",
		Role:         models.RoleAdmin,
		FractionCode: "A",
	}

	token, err := issuer.Issue(profile)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, profile, claims.Profile())
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a").Issue(models.Profile{ID: "p1"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret-b").Validate(token)
	require.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("secret").Validate("not.a.token")
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, CheckPassword("correct horse", hash))
	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("correct horse", "not-a-hash"))
}
