package employee

type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "active"
	EmployeeStatusInactive EmployeeStatus = "inactive"
)

// Employee is the read model the attendance engine needs; CRUD lives elsewhere.
type Employee struct {
	ID         string
	Name       string
	Matri      string
	Department *string
	Position   *string
	Status     EmployeeStatus
}

func (e Employee) IsActive() bool {
	return e.Status == EmployeeStatusActive
}
