// Package domain holds shapes shared between middleware and services
// without either importing the other.
package domain

// EnforceRequest asks whether an employee may perform an action on a
// resource. Resource and Action mirror permission names, "employee:read"
// grants {Resource: "employee", Action: "read"}.
type EnforceRequest struct {
	EmployeeID string
	Resource   string
	Action     string
}
