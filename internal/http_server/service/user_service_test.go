package service

import (
	"testing"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJwtConfig = &c.JWTConfig{
	Secret:          "test-secret",
	ExpiresDuration: 15 * time.Minute,
	RefreshDuration: 24 * time.Hour,
}

func (env *testEnv) userService() *UserService {
	general := &c.GeneralConfig{BcryptCost: bcrypt.MinCost, AdminEmails: []string{"Root@Example.com"}}
	return NewUserService(env.logger, testJwtConfig, general, env.limits, env.ops.UserOperation())
}

func TestUserServiceRegister(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()

	res := svc.UserRegister(&RequestUserRegister{Email: " new@example.com ", Password: "secret123"})
	require.Equal(t, Created.Code(), res.HttpCode)
	assert.Equal(t, "new@example.com", res.Data.Email)
	assert.False(t, res.Data.IsStaff)

	admin := svc.UserRegister(&RequestUserRegister{Email: "root@example.com", Password: "secret123"})
	require.Equal(t, Created.Code(), admin.HttpCode)
	assert.True(t, admin.Data.IsStaff)

	duplicate := svc.UserRegister(&RequestUserRegister{Email: "new@example.com", Password: "secret123"})
	assert.Equal(t, Conflict.Code(), duplicate.HttpCode)

	short := svc.UserRegister(&RequestUserRegister{Email: "x@example.com", Password: "123"})
	assert.Equal(t, "PASSWORD_TOO_SHORT", short.Code)

	malformed := svc.UserRegister(&RequestUserRegister{Email: "not-an-email", Password: "secret123"})
	assert.Equal(t, ErrEmailFormat.StatusName, malformed.Code)
}

func TestUserServiceTokens(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()

	wrong := svc.UserLogin(&RequestUserLogin{Email: "passenger@example.com", Password: "nope12345"})
	assert.Equal(t, ErrWrongCredentials.StatusName, wrong.Code)
	unknown := svc.UserLogin(&RequestUserLogin{Email: "ghost@example.com", Password: "secret123"})
	assert.Equal(t, ErrWrongCredentials.StatusName, unknown.Code)
	assert.Equal(t, ErrLackParam.StatusName, svc.UserLogin(&RequestUserLogin{}).Code)

	login := svc.UserLogin(&RequestUserLogin{Email: "passenger@example.com", Password: "secret123"})
	require.Equal(t, Ok.Code(), login.HttpCode)
	assert.Equal(t, env.user.Uid, login.Data.User.Id)

	access, err := ParseClaims(testJwtConfig, login.Data.Access)
	require.NoError(t, err)
	assert.False(t, access.FlushToken)
	assert.Equal(t, env.user.Uid, access.Uid)

	refreshed := svc.RefreshToken(&RequestRefreshToken{Refresh: login.Data.Refresh})
	require.Equal(t, Ok.Code(), refreshed.HttpCode)
	assert.NotEmpty(t, refreshed.Data.Access)

	notRefresh := svc.RefreshToken(&RequestRefreshToken{Refresh: login.Data.Access})
	assert.Equal(t, ErrNotRefreshToken.StatusName, notRefresh.Code)
	garbage := svc.RefreshToken(&RequestRefreshToken{Refresh: "garbage"})
	assert.Equal(t, ErrInvalidOrExpiredJwt.StatusName, garbage.Code)

	verified := svc.VerifyToken(&RequestVerifyToken{Token: login.Data.Access})
	require.Equal(t, Ok.Code(), verified.HttpCode)
	assert.True(t, bool(*verified.Data))
	assert.Equal(t, Unauthorized.Code(), svc.VerifyToken(&RequestVerifyToken{Token: "garbage"}).HttpCode)
}

func TestUserServiceEditCurrentUser(t *testing.T) {
	env := newTestEnv(t)
	svc := env.userService()

	assert.Equal(t, Unauthorized.Code(), svc.GetCurrentUser(&RequestCurrentUser{}).HttpCode)
	me := svc.GetCurrentUser(&RequestCurrentUser{JwtHeader: env.user})
	require.Equal(t, Ok.Code(), me.HttpCode)
	assert.Equal(t, "passenger@example.com", me.Data.Email)

	assert.Equal(t, ErrEmptyEdit.StatusName, svc.EditCurrentUser(&RequestEditCurrentUser{JwtHeader: env.user}).Code)

	taken := svc.EditCurrentUser(&RequestEditCurrentUser{JwtHeader: env.user, Email: ptr("other@example.com")})
	assert.Equal(t, Conflict.Code(), taken.HttpCode)

	noOriginal := svc.EditCurrentUser(&RequestEditCurrentUser{JwtHeader: env.user, Password: ptr("changed123")})
	assert.Equal(t, "INVALID_FIELD", noOriginal.Code)

	badOriginal := svc.EditCurrentUser(&RequestEditCurrentUser{JwtHeader: env.user, Password: ptr("changed123"), OriginalPassword: "wrong123"})
	assert.Equal(t, "OLD_PASSWORD_MISMATCH", badOriginal.Code)

	edited := svc.EditCurrentUser(&RequestEditCurrentUser{
		JwtHeader:        env.user,
		Email:            ptr("renamed@example.com"),
		Password:         ptr("changed123"),
		OriginalPassword: "secret123",
	})
	require.Equal(t, Ok.Code(), edited.HttpCode, edited.Message)
	assert.Equal(t, "renamed@example.com", edited.Data.Email)

	assert.Equal(t, ErrWrongCredentials.StatusName, svc.UserLogin(&RequestUserLogin{Email: "renamed@example.com", Password: "secret123"}).Code)
	assert.Equal(t, Ok.Code(), svc.UserLogin(&RequestUserLogin{Email: "renamed@example.com", Password: "changed123"}).HttpCode)
}
