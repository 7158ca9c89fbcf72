// Package service
package service

// UserServiceInterface 注册与令牌接口
type UserServiceInterface interface {
	UserRegister(req *RequestUserRegister) *ApiResponse[UserModel]
	// UserLogin 校验邮箱与密码, 返回访问令牌与刷新令牌
	UserLogin(req *RequestUserLogin) *ApiResponse[ResponseUserLogin]
	RefreshToken(req *RequestRefreshToken) *ApiResponse[ResponseRefreshToken]
	VerifyToken(req *RequestVerifyToken) *ApiResponse[ResponseVerifyToken]
	GetCurrentUser(req *RequestCurrentUser) *ApiResponse[UserModel]
	// EditCurrentUser 修改邮箱或密码, 修改密码需要提供原密码
	EditCurrentUser(req *RequestEditCurrentUser) *ApiResponse[UserModel]
}

type RequestUserRegister struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RequestUserLogin struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResponseUserLogin struct {
	User    *UserModel `json:"user"`
	Access  string     `json:"access"`
	Refresh string     `json:"refresh"`
}

type RequestRefreshToken struct {
	Refresh string `json:"refresh"`
}

type ResponseRefreshToken struct {
	Access string `json:"access"`
}

type RequestVerifyToken struct {
	Token string `json:"token"`
}

type ResponseVerifyToken bool

type RequestCurrentUser struct {
	JwtHeader
}

type RequestEditCurrentUser struct {
	JwtHeader
	Email            *string `json:"email"`
	Password         *string `json:"password"`
	OriginalPassword string  `json:"original_password"`
}
