package leave

import "errors"

var (
	ErrEmployeeOnLeave = errors.New("employee is on approved leave today")
)
