package service

import (
	"testing"

	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) countryService() *CountryService {
	return NewCountryService(env.logger, env.limits, env.ops.CountryOperation(), env.ops.AuditLogOperation(), env.cache)
}

func TestCountryServicePolicy(t *testing.T) {
	env := newTestEnv(t)
	svc := env.countryService()

	res := svc.GetCountries(&RequestGetCountries{})
	assert.Equal(t, Unauthorized.Code(), res.HttpCode)
	assert.Equal(t, ErrNotAuthenticated.StatusName, res.Code)

	res = svc.GetCountries(&RequestGetCountries{JwtHeader: env.user})
	assert.Equal(t, Ok.Code(), res.HttpCode)

	created := svc.AddCountry(&RequestSaveCountry{JwtHeader: env.user, Name: ptr("Poland"), Code: ptr("POL")})
	assert.Equal(t, PermissionDenied.Code(), created.HttpCode)
	assert.Equal(t, ErrNoPermission.StatusName, created.Code)

	created = svc.AddCountry(&RequestSaveCountry{Name: ptr("Poland"), Code: ptr("POL")})
	assert.Equal(t, Unauthorized.Code(), created.HttpCode)
}

func TestCountryServiceLifecycle(t *testing.T) {
	env := newTestEnv(t)
	svc := env.countryService()

	created := svc.AddCountry(&RequestSaveCountry{JwtHeader: env.admin, ClientInfo: env.client, Name: ptr("  Poland "), Code: ptr("POL")})
	require.Equal(t, Created.Code(), created.HttpCode)
	assert.Equal(t, "Poland", created.Data.Name)
	id := created.Data.Id
	assert.Equal(t, 1, env.cache.invalidations)
	assert.EqualValues(t, 1, env.auditCount(t, operation.CountryCreated))

	duplicate := svc.AddCountry(&RequestSaveCountry{JwtHeader: env.admin, Name: ptr("Poland"), Code: ptr("PLX")})
	assert.Equal(t, Conflict.Code(), duplicate.HttpCode)
	assert.Equal(t, "DUPLICATE_ENTITY", duplicate.Code)

	badCode := svc.AddCountry(&RequestSaveCountry{JwtHeader: env.admin, Name: ptr("Czechia"), Code: ptr("CZ")})
	assert.Equal(t, BadRequest.Code(), badCode.HttpCode)

	put := svc.EditCountry(&RequestSaveCountry{JwtHeader: env.admin, Id: id, Name: ptr("Polska")})
	assert.Equal(t, BadRequest.Code(), put.HttpCode)
	assert.Equal(t, "INVALID_FIELD", put.Code)

	patch := svc.EditCountry(&RequestSaveCountry{JwtHeader: env.admin, Id: id, Partial: true, Name: ptr("Polska")})
	require.Equal(t, Ok.Code(), patch.HttpCode)
	assert.Equal(t, "Polska", patch.Data.Name)
	assert.Equal(t, "POL", patch.Data.Code)
	assert.EqualValues(t, 1, env.auditCount(t, operation.CountryUpdated))

	fetched := svc.GetCountry(&RequestRetrieve{JwtHeader: env.user, Id: id})
	require.Equal(t, Ok.Code(), fetched.HttpCode)
	assert.Equal(t, "Polska", fetched.Data.Name)

	deleted := svc.DeleteCountry(&RequestDelete{JwtHeader: env.admin, Id: id})
	require.Equal(t, Ok.Code(), deleted.HttpCode)
	assert.True(t, bool(*deleted.Data))

	missing := svc.GetCountry(&RequestRetrieve{JwtHeader: env.user, Id: id})
	assert.Equal(t, NotFound.Code(), missing.HttpCode)
	missingDelete := svc.DeleteCountry(&RequestDelete{JwtHeader: env.admin, Id: id})
	assert.Equal(t, NotFound.Code(), missingDelete.HttpCode)
}

func TestCountryServiceSearchAndPaging(t *testing.T) {
	env := newTestEnv(t)
	svc := env.countryService()
	for _, country := range [][2]string{{"Poland", "POL"}, {"Portugal", "PRT"}, {"Spain", "ESP"}} {
		res := svc.AddCountry(&RequestSaveCountry{JwtHeader: env.admin, Name: ptr(country[0]), Code: ptr(country[1])})
		require.Equal(t, Created.Code(), res.HttpCode)
	}

	res := svc.GetCountries(&RequestGetCountries{JwtHeader: env.user, Search: "Po"})
	require.Equal(t, Ok.Code(), res.HttpCode)
	assert.EqualValues(t, 2, res.Data.Total)

	res = svc.GetCountries(&RequestGetCountries{JwtHeader: env.user, PageRequest: PageRequest{Page: 2, PageSize: 2}})
	require.Equal(t, Ok.Code(), res.HttpCode)
	assert.EqualValues(t, 3, res.Data.Total)
	assert.Len(t, res.Data.Items, 1)
	assert.Equal(t, 2, res.Data.Page)
}
