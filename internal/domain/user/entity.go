package user

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages company settings
	RoleManager  Role = "manager"  // Views reports, manages company settings
	RoleEmployee Role = "employee" // Records own attendance
)
