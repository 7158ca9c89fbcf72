// Package operation
package operation

// UserOperationInterface 用户操作接口定义
type UserOperationInterface interface {
	// NewUser 创建一个新用户(只是创建, 没有写入数据库), 当err为nil时返回值user有效
	NewUser(email string, password string, isStaff bool) (user *User, err error)
	// AddUser 创建一个新用户(写入数据库), 邮箱重复时返回 *DuplicateEntityError
	AddUser(user *User) (err error)
	// GetUserById 通过主键ID获取用户, 当err为nil时返回值user有效
	GetUserById(uid uint) (user *User, err error)
	// GetUserByEmail 通过邮箱获取用户, 当err为nil时返回值user有效
	GetUserByEmail(email string) (user *User, err error)
	// UpdateUserPassword 更新用户密码(不写入数据库, 仅验证), 当err为nil时返回值encodePassword有效
	UpdateUserPassword(user *User, originalPassword, newPassword string, skipVerify bool) (encodePassword []byte, err error)
	// SaveUser 保存用户数据, 强制整个用户结构体到数据库, 谨慎使用, 当err为nil时表示更新成功
	SaveUser(user *User) (err error)
	// VerifyUserPassword 验证用户密码是否正确, pass为true表示验证通过
	VerifyUserPassword(user *User, password string) (pass bool)
}
