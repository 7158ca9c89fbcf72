// Package service
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/global"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	Created             HttpCode = 201
	BadRequest          HttpCode = 400
	Unauthorized        HttpCode = 401
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	Conflict            HttpCode = 409
	TooManyRequests     HttpCode = 429
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

type ApiStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

type ApiResponse[T any] struct {
	HttpCode int    `json:"-"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Data     *T     `json:"data"`
}

type Claims struct {
	Uid        uint   `json:"uid"`
	Email      string `json:"email"`
	IsStaff    bool   `json:"is_staff"`
	FlushToken bool   `json:"flushToken"`
	config     *c.JWTConfig
	jwt.RegisteredClaims
}

// JwtHeader is the caller identity a controller copies out of the verified token.
// The zero value is an anonymous caller.
type JwtHeader struct {
	Uid           uint `json:"-"`
	IsStaff       bool `json:"-"`
	Authenticated bool `json:"-"`
}

func (header JwtHeader) Role() operation.Role {
	switch {
	case !header.Authenticated:
		return operation.Anonymous
	case header.IsStaff:
		return operation.Administrator
	default:
		return operation.Authenticated
	}
}

// ClientInfo is recorded in audit logs
type ClientInfo struct {
	Ip        string `json:"-"`
	UserAgent string `json:"-"`
}

func NewClaims(config *c.JWTConfig, user *operation.User, flushToken bool) *Claims {
	expiredDuration := config.ExpiresDuration
	if flushToken {
		expiredDuration += config.RefreshDuration
	}
	now := time.Now()
	return &Claims{
		Uid:        user.ID,
		Email:      user.Email,
		IsStaff:    user.IsStaff,
		FlushToken: flushToken,
		config:     config,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    global.JwtIssuer,
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiredDuration)),
		},
	}
}

func (claim *Claims) GenerateKey() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claim)
	tokenString, _ := token.SignedString([]byte(claim.config.Secret))
	return tokenString
}

func (claim *Claims) Header() JwtHeader {
	return JwtHeader{Uid: claim.Uid, IsStaff: claim.IsStaff, Authenticated: true}
}

// ParseClaims verifies signature, algorithm, issuer and expiry of tokenString
func ParseClaims(config *c.JWTConfig, tokenString string) (*Claims, error) {
	claims := &Claims{config: config}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(config.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer(global.JwtIssuer))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (res *ApiResponse[T]) Response(ctx echo.Context) error {
	return ctx.JSON(res.HttpCode, res)
}

var (
	ErrIllegalParam          = ApiStatus{"PARAM_ERROR", "invalid parameter", BadRequest}
	ErrLackParam             = ApiStatus{"PARAM_LACK_ERROR", "missing or malformed parameter", BadRequest}
	ErrNotAuthenticated      = ApiStatus{"NOT_AUTHENTICATED", "authentication credentials were not provided", Unauthorized}
	ErrNoPermission          = ApiStatus{"NO_PERMISSION", "you do not have permission to perform this action", PermissionDenied}
	ErrDatabaseFail          = ApiStatus{"DATABASE_ERROR", "internal server error", ServerInternalError}
	ErrMissingOrMalformedJwt = ApiStatus{"MISSING_OR_MALFORMED_JWT", "missing or malformed token", BadRequest}
	ErrInvalidOrExpiredJwt   = ApiStatus{"INVALID_OR_EXPIRED_JWT", "token is invalid or expired", Unauthorized}
	ErrUnknown               = ApiStatus{"UNKNOWN_JWT_ERROR", "unknown token error", ServerInternalError}
	ErrRateLimited           = ApiStatus{"RATE_LIMIT_EXCEEDED", "too many requests, try again later", TooManyRequests}
)

func NewErrorResponse(ctx echo.Context, codeStatus *ApiStatus) error {
	return NewApiResponse[any](codeStatus, Unsatisfied, nil).Response(ctx)
}

func NewApiResponse[T any](codeStatus *ApiStatus, httpCode HttpCode, data *T) *ApiResponse[T] {
	if httpCode == Unsatisfied {
		httpCode = codeStatus.HttpCode
	}
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ApiResponse[T]{
		HttpCode: httpCode.Code(),
		Code:     codeStatus.StatusName,
		Message:  codeStatus.Description,
		Data:     data,
	}
}

// CallDBFuncAndCheckError 调用数据库操作函数并处理错误
func CallDBFuncAndCheckError[R any, T any](logger log.LoggerInterface, fc func() (*R, error)) (*R, *ApiResponse[T]) {
	result, err := fc()
	if res := CheckError[T](logger, err); res != nil {
		return nil, res
	}
	return result, nil
}

// CheckError 将业务错误转换为对应的响应, 未知错误记录日志后返回 ErrDatabaseFail, err 为 nil 时返回 nil
func CheckError[T any](logger log.LoggerInterface, err error) *ApiResponse[T] {
	if err == nil {
		return nil
	}
	if status := StatusOf(err); status != nil {
		return NewApiResponse[T](status, Unsatisfied, nil)
	}
	logger.ErrorF("Error in DB function: %v", err)
	return NewApiResponse[T](&ErrDatabaseFail, Unsatisfied, nil)
}
