//go:build unit

package user_test

import (
	"testing"

	"spark-bytes/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	id := uuid.New()

	cases := []struct {
		name  string
		id    uuid.UUID
		email string
		role  user.Role
		errIs error
	}{
		{name: "authenticated user", id: id, email: "terrier@bu.edu", role: user.RoleAuthenticated},
		{name: "email is optional", id: id, role: user.RoleAuthenticated},
		{name: "service role", id: id, role: user.RoleServiceRole},
		{name: "nil subject", id: uuid.Nil, role: user.RoleAuthenticated, errIs: user.ErrMissingSubject},
		{name: "anon role", id: id, role: user.RoleAnon, errIs: user.ErrAnonymousCaller},
		{name: "unknown role", id: id, role: user.Role("admin"), errIs: user.ErrInvalidRole},
		{name: "malformed email", id: id, email: "not-an-email", role: user.RoleAuthenticated, errIs: user.ErrInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := user.NewIdentity(tc.id, tc.email, tc.role)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, got.ID())
			assert.Equal(t, tc.email, got.Email())
			assert.Equal(t, tc.role, got.Role())
		})
	}
}

func TestIdentity_Owns(t *testing.T) {
	me, err := user.NewIdentity(uuid.New(), "", user.RoleAuthenticated)
	require.NoError(t, err)

	assert.True(t, me.Owns(me.ID()))
	assert.False(t, me.Owns(uuid.New()))
	assert.False(t, me.Owns(uuid.Nil))

	var nobody *user.Identity
	assert.False(t, nobody.Owns(me.ID()))
}
