// Package service
package service

import (
	"errors"
	"slices"
	"strings"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
)

type UserService struct {
	logger        log.LoggerInterface
	jwtConfig     *c.JWTConfig
	generalConfig *c.GeneralConfig
	validators    *Validators
	userOperation operation.UserOperationInterface
}

func NewUserService(
	logger log.LoggerInterface,
	jwtConfig *c.JWTConfig,
	generalConfig *c.GeneralConfig,
	limits *c.HttpServerLimit,
	userOperation operation.UserOperationInterface,
) *UserService {
	return &UserService{
		logger:        logger,
		jwtConfig:     jwtConfig,
		generalConfig: generalConfig,
		validators:    NewValidators(limits),
		userOperation: userOperation,
	}
}

var (
	ErrRegisterFail     = ApiStatus{StatusName: "REGISTER_FAIL", Description: "registration failed", HttpCode: ServerInternalError}
	ErrWrongCredentials = ApiStatus{StatusName: "WRONG_EMAIL_OR_PASSWORD", Description: "no active account found with the given credentials", HttpCode: Unauthorized}
	ErrNotRefreshToken  = ApiStatus{StatusName: "NOT_REFRESH_TOKEN", Description: "token is not a refresh token", HttpCode: Unauthorized}
	ErrEmptyEdit        = ApiStatus{StatusName: "NOTHING_TO_EDIT", Description: "provide email or password to change", HttpCode: BadRequest}

	SuccessRegister        = ApiStatus{StatusName: "REGISTER_SUCCESS", Description: "user registered", HttpCode: Created}
	SuccessLogin           = ApiStatus{StatusName: "LOGIN_SUCCESS", Description: "login success", HttpCode: Ok}
	SuccessRefreshToken    = ApiStatus{StatusName: "REFRESH_TOKEN_SUCCESS", Description: "token refreshed", HttpCode: Ok}
	SuccessVerifyToken     = ApiStatus{StatusName: "VERIFY_TOKEN_SUCCESS", Description: "token is valid", HttpCode: Ok}
	SuccessGetCurrentUser  = ApiStatus{StatusName: "GET_CURRENT_USER", Description: "current user fetched", HttpCode: Ok}
	SuccessEditCurrentUser = ApiStatus{StatusName: "EDIT_CURRENT_USER", Description: "current user updated", HttpCode: Ok}
)

func (userService *UserService) isAdminEmail(email string) bool {
	return slices.ContainsFunc(userService.generalConfig.AdminEmails, func(adminEmail string) bool {
		return strings.EqualFold(strings.TrimSpace(adminEmail), email)
	})
}

func (userService *UserService) UserRegister(req *RequestUserRegister) *ApiResponse[UserModel] {
	req.Email = strings.TrimSpace(req.Email)
	if res := userService.validators.CheckEmail(req.Email); res != nil {
		return NewApiResponse[UserModel](res, Unsatisfied, nil)
	}
	if res := userService.validators.CheckPassword(req.Password); res != nil {
		return NewApiResponse[UserModel](res, Unsatisfied, nil)
	}
	user, err := userService.userOperation.NewUser(req.Email, req.Password, userService.isAdminEmail(req.Email))
	if err != nil {
		userService.logger.ErrorF("Fail to create user %s, %v", req.Email, err)
		return NewApiResponse[UserModel](&ErrRegisterFail, Unsatisfied, nil)
	}
	if res := CheckError[UserModel](userService.logger, userService.userOperation.AddUser(user)); res != nil {
		return res
	}
	userService.logger.InfoF("User %s(%d) registered, staff: %v", user.Email, user.ID, user.IsStaff)
	return NewApiResponse(&SuccessRegister, Unsatisfied, BuildUser(user))
}

func (userService *UserService) UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin] {
	if req.Email == "" || req.Password == "" {
		return NewApiResponse[ResponseUserLogin](&ErrLackParam, Unsatisfied, nil)
	}
	user, err := userService.userOperation.GetUserByEmail(strings.TrimSpace(req.Email))
	if errors.Is(err, operation.ErrUserNotFound) {
		return NewApiResponse[ResponseUserLogin](&ErrWrongCredentials, Unsatisfied, nil)
	} else if res := CheckError[ResponseUserLogin](userService.logger, err); res != nil {
		return res
	}
	if !userService.userOperation.VerifyUserPassword(user, req.Password) {
		return NewApiResponse[ResponseUserLogin](&ErrWrongCredentials, Unsatisfied, nil)
	}
	return NewApiResponse(&SuccessLogin, Unsatisfied, &ResponseUserLogin{
		User:    BuildUser(user),
		Access:  NewClaims(userService.jwtConfig, user, false).GenerateKey(),
		Refresh: NewClaims(userService.jwtConfig, user, true).GenerateKey(),
	})
}

// RefreshToken issues a new access token for a valid refresh token; the user is reloaded so a
// changed staff flag takes effect
func (userService *UserService) RefreshToken(req *RequestRefreshToken) *ApiResponse[ResponseRefreshToken] {
	if req.Refresh == "" {
		return NewApiResponse[ResponseRefreshToken](&ErrLackParam, Unsatisfied, nil)
	}
	claims, err := ParseClaims(userService.jwtConfig, req.Refresh)
	if err != nil {
		return NewApiResponse[ResponseRefreshToken](&ErrInvalidOrExpiredJwt, Unsatisfied, nil)
	}
	if !claims.FlushToken {
		return NewApiResponse[ResponseRefreshToken](&ErrNotRefreshToken, Unsatisfied, nil)
	}
	user, err := userService.userOperation.GetUserById(claims.Uid)
	if errors.Is(err, operation.ErrUserNotFound) {
		return NewApiResponse[ResponseRefreshToken](&ErrInvalidOrExpiredJwt, Unsatisfied, nil)
	} else if res := CheckError[ResponseRefreshToken](userService.logger, err); res != nil {
		return res
	}
	return NewApiResponse(&SuccessRefreshToken, Unsatisfied, &ResponseRefreshToken{
		Access: NewClaims(userService.jwtConfig, user, false).GenerateKey(),
	})
}

func (userService *UserService) VerifyToken(req *RequestVerifyToken) *ApiResponse[ResponseVerifyToken] {
	if req.Token == "" {
		return NewApiResponse[ResponseVerifyToken](&ErrLackParam, Unsatisfied, nil)
	}
	if _, err := ParseClaims(userService.jwtConfig, req.Token); err != nil {
		return NewApiResponse[ResponseVerifyToken](&ErrInvalidOrExpiredJwt, Unsatisfied, nil)
	}
	data := ResponseVerifyToken(true)
	return NewApiResponse(&SuccessVerifyToken, Unsatisfied, &data)
}

func (userService *UserService) currentUser(header JwtHeader) (*operation.User, *ApiResponse[UserModel]) {
	if !header.Authenticated {
		return nil, NewApiResponse[UserModel](&ErrNotAuthenticated, Unsatisfied, nil)
	}
	return CallDBFuncAndCheckError[operation.User, UserModel](userService.logger, func() (*operation.User, error) {
		return userService.userOperation.GetUserById(header.Uid)
	})
}

func (userService *UserService) GetCurrentUser(req *RequestCurrentUser) *ApiResponse[UserModel] {
	user, res := userService.currentUser(req.JwtHeader)
	if res != nil {
		return res
	}
	return NewApiResponse(&SuccessGetCurrentUser, Unsatisfied, BuildUser(user))
}

// EditCurrentUser changes email and/or password; a new password needs the current one
func (userService *UserService) EditCurrentUser(req *RequestEditCurrentUser) *ApiResponse[UserModel] {
	user, res := userService.currentUser(req.JwtHeader)
	if res != nil {
		return res
	}
	if req.Email == nil && req.Password == nil {
		return NewApiResponse[UserModel](&ErrEmptyEdit, Unsatisfied, nil)
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if res := userService.validators.CheckEmail(email); res != nil {
			return NewApiResponse[UserModel](res, Unsatisfied, nil)
		}
		if email != user.Email {
			existing, err := userService.userOperation.GetUserByEmail(email)
			if err == nil && existing.ID != user.ID {
				return CheckError[UserModel](userService.logger, &operation.DuplicateEntityError{Entity: "user", Fields: []string{"email"}})
			} else if err != nil && !errors.Is(err, operation.ErrUserNotFound) {
				return CheckError[UserModel](userService.logger, err)
			}
			user.Email = email
		}
	}
	if req.Password != nil {
		if req.OriginalPassword == "" {
			return CheckError[UserModel](userService.logger, &operation.FieldError{Field: "original_password", Reason: "is required"})
		}
		if res := userService.validators.CheckPassword(*req.Password); res != nil {
			return NewApiResponse[UserModel](res, Unsatisfied, nil)
		}
		password, err := userService.userOperation.UpdateUserPassword(user, req.OriginalPassword, *req.Password, false)
		if res := CheckError[UserModel](userService.logger, err); res != nil {
			return res
		}
		user.Password = string(password)
	}
	if res := CheckError[UserModel](userService.logger, userService.userOperation.SaveUser(user)); res != nil {
		return res
	}
	return NewApiResponse(&SuccessEditCurrentUser, Unsatisfied, BuildUser(user))
}
