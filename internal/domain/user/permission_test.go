package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionCompanyManage, true},
		{RoleManager, PermissionCompanyManage, true},
		{RoleManager, PermissionAttendanceMonitor, true},
		{RoleEmployee, PermissionAttendanceCreate, true},
		{RoleEmployee, PermissionCompanyManage, false},
		{RoleEmployee, PermissionAttendanceMonitor, false},
		{Role("pending"), PermissionAttendanceCreate, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, HasPermission(c.role, c.permission), "%s/%s", c.role, c.permission)
	}
}
