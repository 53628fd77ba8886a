package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/karzeg/ztp-project-blog/internal/models"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(newTestDB(t), zap.NewNop())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	users := newUserService(t)

	user, err := users.Register("Reader@Example.com", "reader", "secret-password")
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", user.Email)
	assert.Equal(t, []string{models.RoleUser}, user.RoleList())
	assert.False(t, user.IsAdmin())
	assert.NotEqual(t, "secret-password", user.PasswordHash)

	authenticated, err := users.Authenticate("reader@example.com", "secret-password")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)

	_, err = users.Authenticate("reader@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Authenticate("nobody@example.com", "secret-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newUserService(t)

	_, err := users.Register("reader@example.com", "reader", "secret-password")
	require.NoError(t, err)

	_, err = users.Register("READER@example.com", "other", "another-password")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestChangePassword(t *testing.T) {
	users := newUserService(t)

	user, err := users.Register("reader@example.com", "reader", "old-password")
	require.NoError(t, err)

	require.NoError(t, users.ChangePassword(user, "new-password"))

	_, err = users.Authenticate("reader@example.com", "old-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Authenticate("reader@example.com", "new-password")
	assert.NoError(t, err)
}

func TestUserListPagination(t *testing.T) {
	users := newUserService(t)

	for i := 0; i < 11; i++ {
		_, err := users.Register(fmt.Sprintf("user%02d@example.com", i), "user", "secret-password")
		require.NoError(t, err)
	}

	page, err := users.GetPaginatedList(1)
	require.NoError(t, err)
	assert.Len(t, page.Items, ItemsPerPage)
	assert.EqualValues(t, 11, page.TotalCount)

	page, err = users.GetPaginatedList(2)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
}
