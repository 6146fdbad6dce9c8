package access_test

import (
	"testing"

	"workcurb/internal/access"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleEnforcer(t *testing.T) {
	e, err := access.NewRoleEnforcer()
	require.NoError(t, err)

	cases := []struct {
		name string
		req  access.EnforceRequest
		want bool
	}{
		{"employee creates ticket", access.EnforceRequest{access.RoleEmployee, access.ResourceTicket, access.ActionCreate}, true},
		{"employee cannot review leave", access.EnforceRequest{access.RoleEmployee, access.ResourceLeave, access.ActionReview}, false},
		{"employee cannot assign schedule", access.EnforceRequest{access.RoleEmployee, access.ResourceSchedule, access.ActionAssign}, false},
		{"admin reviews leave", access.EnforceRequest{access.RoleAdmin, access.ResourceLeave, access.ActionReview}, true},
		{"admin assigns course", access.EnforceRequest{access.RoleAdmin, access.ResourceCourse, access.ActionAssign}, true},
		{"missing role", access.EnforceRequest{"", access.ResourceTicket, access.ActionRead}, false},
		{"unknown role", access.EnforceRequest{"GUEST", access.ResourceTicket, access.ActionRead}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := e.Enforce(tc.req)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}

func TestAllowAll(t *testing.T) {
	ok, err := access.AllowAll().Enforce(access.EnforceRequest{})
	assert.NoError(t, err)
	assert.True(t, ok)
}
