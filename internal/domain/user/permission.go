package user

type Permission string

const (
	// Attendance
	PermissionAttendanceCreate  Permission = "attendance.create"
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceMonitor Permission = "attendance.monitor"

	// Company Setting
	PermissionCompanyView   Permission = "company.view"
	PermissionCompanyManage Permission = "company.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceMonitor,
		PermissionCompanyView,
		PermissionCompanyManage,
	},
	RoleManager: {
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
		PermissionAttendanceMonitor,
		PermissionCompanyView,
		PermissionCompanyManage,
	},
	RoleEmployee: {
		PermissionAttendanceCreate,
		PermissionAttendanceViewAll,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
