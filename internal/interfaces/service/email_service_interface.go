// Package service
package service

import (
	"html/template"

	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
)

// EmailServiceInterface 邮件服务, 未启用时所有方法直接返回 nil
type EmailServiceInterface interface {
	RenderTemplate(template *template.Template, data interface{}) (string, error)
	// SendOrderConfirmation 发送订单确认邮件, order 需要预加载机票与航班
	SendOrderConfirmation(user *operation.User, order *operation.Order) error
}
