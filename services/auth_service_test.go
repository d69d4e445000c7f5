package services

import (
	"testing"
	"time"

	"github.com/ChPurna2003/CravingConnect/entity"
	"github.com/ChPurna2003/CravingConnect/pkg/apperr"
	"github.com/ChPurna2003/CravingConnect/repository"
	"github.com/ChPurna2003/CravingConnect/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	repo := repository.NewUserRepository(db)
	return NewAuthService(repo, "test-secret", time.Hour), repo
}

func TestLoginIssuesTokenWithIdentity(t *testing.T) {
	svc, repo := newAuthService(t)
	createUser(t, repo.DB, "captain_marvel", entity.RoleManager, "India")

	token, user, err := svc.Login("captain_marvel", "password")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, user.Role)

	claims, err := utils.ParseToken(token, "test-secret")
	require.NoError(t, err)
	ident := claims.Identity()
	assert.Equal(t, "captain_marvel", ident.Username)
	assert.Equal(t, entity.RoleManager, ident.Role)
	assert.Equal(t, "India", ident.Country)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, repo := newAuthService(t)
	createUser(t, repo.DB, "thanos", entity.RoleMember, "India")

	_, _, err := svc.Login("thanos", "wrong")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))

	_, _, err = svc.Login("nobody", "password")
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestRegisterCreatesCustomerOnly(t *testing.T) {
	svc, _ := newAuthService(t)

	user, err := svc.Register("  Peter  ", "spiderman")
	require.NoError(t, err)
	assert.Equal(t, "peter", user.Username)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.Empty(t, user.Country)

	_, err = svc.Register("peter", "whatever")
	assert.Equal(t, apperr.KindBadRequest, apperr.KindOf(err))
}
