package models

// Role identifies the kind of account a user holds.
type Role string

const (
	RolePatient    Role = "patient"
	RoleResearcher Role = "researcher"
)

// ParseRole maps backend role strings onto the closed Role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RolePatient:
		return RolePatient, true
	case RoleResearcher:
		return RoleResearcher, true
	default:
		return "", false
	}
}

// Valid reports whether the role is one of the known account kinds.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// Route names a client-side destination the shell navigates to after auth.
type Route string

const (
	RouteLanding             Route = "/"
	RoutePatientDashboard    Route = "/patient-dashboard"
	RouteResearcherDashboard Route = "/researcher-dashboard"
)

// DashboardRoute maps a granted role to its dashboard. Roles the client
// does not recognize land on the patient dashboard, matching the
// backend's treatment of legacy accounts.
func (r Role) DashboardRoute() Route {
	switch r {
	case RoleResearcher:
		return RouteResearcherDashboard
	case RolePatient:
		return RoutePatientDashboard
	default:
		return RoutePatientDashboard
	}
}
