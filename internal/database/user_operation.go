// Package database
package database

import (
	"context"
	"strings"
	"time"

	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserOperation struct {
	config       *c.GeneralConfig
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewUserOperation(db *gorm.DB, queryTimeout time.Duration, config *c.GeneralConfig) *UserOperation {
	return &UserOperation{config: config, db: db, queryTimeout: queryTimeout}
}

func (userOperation *UserOperation) GetUserById(uid uint) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = translate(userOperation.db.WithContext(ctx).First(user, uid).Error, ErrUserNotFound, nil)
	return
}

func (userOperation *UserOperation) GetUserByEmail(email string) (user *User, err error) {
	user = &User{}
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	err = userOperation.db.WithContext(ctx).
		Where("email = ?", strings.TrimSpace(email)).
		First(user).Error
	err = translate(err, ErrUserNotFound, nil)
	return
}

func (userOperation *UserOperation) NewUser(email string, password string, isStaff bool) (user *User, err error) {
	encodePassword, err := bcrypt.GenerateFromPassword([]byte(password), userOperation.config.BcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	user = &User{
		Email:    strings.TrimSpace(email),
		Password: string(encodePassword),
		IsStaff:  isStaff,
	}
	return
}

func (userOperation *UserOperation) AddUser(user *User) error {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return userOperation.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkUnique(tx, &User{}, "user", 0, []string{"email"}, user.Email); err != nil {
			return err
		}
		return translate(tx.Create(user).Error, ErrUserNotFound, duplicateOf("user", "email"))
	})
}

func (userOperation *UserOperation) UpdateUserPassword(user *User, originalPassword, newPassword string, skipVerify bool) (encodePassword []byte, err error) {
	if !skipVerify && !userOperation.VerifyUserPassword(user, originalPassword) {
		return nil, ErrOldPassword
	}
	encodePassword, err = bcrypt.GenerateFromPassword([]byte(newPassword), userOperation.config.BcryptCost)
	if err != nil {
		return nil, ErrPasswordEncode
	}
	return
}

func (userOperation *UserOperation) SaveUser(user *User) error {
	ctx, cancel := context.WithTimeout(context.Background(), userOperation.queryTimeout)
	defer cancel()
	return translate(userOperation.db.WithContext(ctx).Save(user).Error, ErrUserNotFound, duplicateOf("user", "email"))
}

func (userOperation *UserOperation) VerifyUserPassword(user *User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) == nil
}
