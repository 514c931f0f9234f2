package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/pankaj-shinde04/store-rating/pkg/jwt"
)

var (
	accessOpts = pkgjwt.Options{
		Secret: "access-secret", Issuer: "store-rating-platform", Audience: "store-rating-users", TTL: 15 * time.Minute,
	}
	refreshOpts = pkgjwt.Options{
		Secret: "refresh-secret", Issuer: "store-rating-platform", Audience: "store-rating-users", TTL: 7 * 24 * time.Hour,
	}
	identity = pkgjwt.Identity{ID: 42, Email: "ana@example.com", Role: "normal_user", Name: "Ana"}
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := pkgjwt.Generate(accessOpts, identity)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(accessOpts, tok)
	require.NoError(t, err)
	assert.Equal(t, identity, claims.Identity())
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "store-rating-platform", claims.Issuer)
}

func TestParse_Expired(t *testing.T) {
	opts := accessOpts
	opts.TTL = -time.Minute
	tok, err := pkgjwt.Generate(opts, identity)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(accessOpts, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrExpired)
}

func TestParse_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate(accessOpts, identity)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(refreshOpts, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}

func TestParse_WrongAudience(t *testing.T) {
	tok, err := pkgjwt.Generate(accessOpts, identity)
	require.NoError(t, err)

	other := accessOpts
	other.Audience = "someone-else"
	_, err = pkgjwt.Parse(other, tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}

func TestParse_Garbage(t *testing.T) {
	_, err := pkgjwt.Parse(accessOpts, "not-a-token")
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid)
}

func TestGenerate_EmptySecret(t *testing.T) {
	_, err := pkgjwt.Generate(pkgjwt.Options{}, identity)
	assert.Error(t, err)
}

func TestManager_PairUsesSeparateSecrets(t *testing.T) {
	m := pkgjwt.NewManager(accessOpts, refreshOpts)

	pair, err := m.GeneratePair(identity)
	require.NoError(t, err)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	_, err = m.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	claims, err := m.ParseRefresh(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)

	_, err = m.ParseAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalid, "un refresh token no sirve como access token")
}
