// Package operation
package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyFor(t *testing.T) {
	type expectation struct {
		list, retrieve, create, modify bool
	}
	tests := []struct {
		kind     ResourceKind
		role     Role
		expected expectation
	}{
		{CountryResource, Anonymous, expectation{}},
		{CountryResource, Authenticated, expectation{list: true, retrieve: true}},
		{CountryResource, Administrator, expectation{true, true, true, true}},
		{RouteResource, Authenticated, expectation{list: true, retrieve: true}},
		{CrewResource, Authenticated, expectation{}},
		{CrewResource, Administrator, expectation{true, true, true, true}},
		{AirplaneResource, Authenticated, expectation{}},
		{AirplaneTypeResource, Authenticated, expectation{}},
		{FlightResource, Anonymous, expectation{list: true, retrieve: true}},
		{FlightResource, Authenticated, expectation{list: true, retrieve: true}},
		{FlightResource, Administrator, expectation{true, true, true, true}},
		{OrderResource, Anonymous, expectation{}},
		{OrderResource, Authenticated, expectation{list: true, create: true}},
		{MaintenanceResource, Authenticated, expectation{}},
	}
	for _, test := range tests {
		policy := PolicyFor(test.kind)
		assert.Equal(t, test.expected.list, policy.CanList(test.role), "list %v %v", test.kind, test.role)
		assert.Equal(t, test.expected.retrieve, policy.CanRetrieve(test.role, false), "retrieve %v %v", test.kind, test.role)
		assert.Equal(t, test.expected.create, policy.CanCreate(test.role), "create %v %v", test.kind, test.role)
		assert.Equal(t, test.expected.modify, policy.CanModify(test.role), "modify %v %v", test.kind, test.role)
	}
}

func TestOrderPolicyOwnership(t *testing.T) {
	policy := PolicyFor(OrderResource)
	assert.True(t, policy.CanRetrieve(Authenticated, true))
	assert.False(t, policy.CanRetrieve(Authenticated, false))
	assert.True(t, policy.CanRetrieve(Administrator, false))
	assert.False(t, policy.CanRetrieve(Anonymous, true))
}

func TestUserRole(t *testing.T) {
	assert.Equal(t, Administrator, (&User{IsStaff: true}).Role())
	assert.Equal(t, Authenticated, (&User{}).Role())
}
