// Package operation
package operation

type Role int

const (
	Anonymous Role = iota
	Authenticated
	Administrator
)

func (r Role) String() string {
	switch r {
	case Authenticated:
		return "authenticated"
	case Administrator:
		return "administrator"
	default:
		return "anonymous"
	}
}

type ResourceKind int

const (
	CountryResource ResourceKind = iota
	CityResource
	AirportResource
	RouteResource
	AirplaneTypeResource
	AirplaneResource
	CrewResource
	FlightResource
	OrderResource
	MaintenanceResource
	AuditResource
)

// Policy decides which roles may perform which action on a resource kind.
// owns is whether the caller owns the record and only matters for owned resources.
type Policy interface {
	CanList(role Role) bool
	CanRetrieve(role Role, owns bool) bool
	CanCreate(role Role) bool
	CanModify(role Role) bool
}

// referencePolicy: authenticated read, administrator write
type referencePolicy struct{}

func (referencePolicy) CanList(role Role) bool {
	return role >= Authenticated
}

func (referencePolicy) CanRetrieve(role Role, _ bool) bool {
	return role >= Authenticated
}

func (referencePolicy) CanCreate(role Role) bool {
	return role == Administrator
}

func (referencePolicy) CanModify(role Role) bool {
	return role == Administrator
}

type adminOnlyPolicy struct{}

func (adminOnlyPolicy) CanList(role Role) bool {
	return role == Administrator
}

func (adminOnlyPolicy) CanRetrieve(role Role, _ bool) bool {
	return role == Administrator
}

func (adminOnlyPolicy) CanCreate(role Role) bool {
	return role == Administrator
}

func (adminOnlyPolicy) CanModify(role Role) bool {
	return role == Administrator
}

// publicReadPolicy lets anyone browse, administrators write
type publicReadPolicy struct{}

func (publicReadPolicy) CanList(Role) bool {
	return true
}

func (publicReadPolicy) CanRetrieve(Role, bool) bool {
	return true
}

func (publicReadPolicy) CanCreate(role Role) bool {
	return role == Administrator
}

func (publicReadPolicy) CanModify(role Role) bool {
	return role == Administrator
}

// ownedPolicy: any authenticated caller may list (scoped) and create; retrieval requires
// ownership unless administrator; only administrators modify
type ownedPolicy struct{}

func (ownedPolicy) CanList(role Role) bool {
	return role >= Authenticated
}

func (ownedPolicy) CanCreate(role Role) bool {
	return role >= Authenticated
}

func (ownedPolicy) CanModify(role Role) bool {
	return role == Administrator
}

func (ownedPolicy) CanRetrieve(role Role, owns bool) bool {
	return role == Administrator || (role == Authenticated && owns)
}

var policies = map[ResourceKind]Policy{
	CountryResource:      referencePolicy{},
	CityResource:         referencePolicy{},
	AirportResource:      referencePolicy{},
	RouteResource:        referencePolicy{},
	AirplaneTypeResource: adminOnlyPolicy{},
	AirplaneResource:     adminOnlyPolicy{},
	CrewResource:         adminOnlyPolicy{},
	FlightResource:       publicReadPolicy{},
	OrderResource:        ownedPolicy{},
	MaintenanceResource:  adminOnlyPolicy{},
	AuditResource:        adminOnlyPolicy{},
}

// PolicyFor returns the policy of kind; unknown kinds get the administrator-only policy
func PolicyFor(kind ResourceKind) Policy {
	if policy, ok := policies[kind]; ok {
		return policy
	}
	return adminOnlyPolicy{}
}
