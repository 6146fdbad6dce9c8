package access

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

const (
	ResourceEmployee     = "employee"
	ResourceTicket       = "ticket"
	ResourceLeave        = "leave"
	ResourcePerformance  = "performance"
	ResourceCourse       = "course"
	ResourceSchedule     = "schedule"
	ResourceNotification = "notification"
	ResourceAttendance   = "attendance"
	ResourceCompanyEvent = "company_event"
	ResourceSnapshot     = "snapshot"
)

const (
	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionReview = "review"
	ActionAssign = "assign"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && (p.obj == r.obj || p.obj == "*") && (p.act == r.act || p.act == "*")
`

// employeePolicy lists what a non-admin member may do. Admins inherit it.
var employeePolicy = [][]string{
	{RoleEmployee, ResourceEmployee, ActionRead},
	{RoleEmployee, ResourceTicket, ActionCreate},
	{RoleEmployee, ResourceTicket, ActionRead},
	{RoleEmployee, ResourceLeave, ActionCreate},
	{RoleEmployee, ResourceLeave, ActionRead},
	{RoleEmployee, ResourcePerformance, ActionRead},
	{RoleEmployee, ResourceCourse, ActionRead},
	{RoleEmployee, ResourceCourse, ActionUpdate},
	{RoleEmployee, ResourceSchedule, ActionRead},
	{RoleEmployee, ResourceAttendance, ActionCreate},
	{RoleEmployee, ResourceAttendance, ActionRead},
	{RoleEmployee, ResourceCompanyEvent, ActionRead},
	{RoleEmployee, ResourceSnapshot, ActionRead},
}

type EnforceRequest struct {
	Role     string
	Resource string
	Action   string
}

type Enforcer interface {
	Enforce(req EnforceRequest) (bool, error)
}

type roleEnforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
}

// NewRoleEnforcer builds a casbin enforcer holding the built-in role policy.
func NewRoleEnforcer() (Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	if _, err := e.AddPolicies(employeePolicy); err != nil {
		return nil, err
	}
	if _, err := e.AddPolicy(RoleAdmin, "*", "*"); err != nil {
		return nil, err
	}
	if _, err := e.AddGroupingPolicy(RoleAdmin, RoleEmployee); err != nil {
		return nil, err
	}

	return &roleEnforcer{enforcer: e}, nil
}

func (r *roleEnforcer) Enforce(req EnforceRequest) (bool, error) {
	if req.Role == "" {
		return false, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.enforcer.Enforce(req.Role, req.Resource, req.Action)
}

type allowAll struct{}

// AllowAll is used when no platform tokens are configured and the caller is
// trusted.
func AllowAll() Enforcer { return allowAll{} }

func (allowAll) Enforce(EnforceRequest) (bool, error) { return true, nil }
