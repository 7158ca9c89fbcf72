// Package config
package config

import (
	"errors"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"html/template"
)

const defaultOrderConfirmationTemplate = `<html><body>
<p>Hello {{.Email}},</p>
<p>Your order #{{.OrderId}} placed at {{.CreatedAt}} is confirmed.</p>
<ul>
{{range .Tickets}}<li>{{.Route}}, departs {{.Departure}}, row {{.Row}} seat {{.Seat}}</li>
{{end}}</ul>
</body></html>`

type EmailTemplateConfig struct {
	OrderConfirmationTemplateFile string             `json:"order_confirmation_template_file" yaml:"order_confirmation_template_file"`
	OrderConfirmationTemplate     *template.Template `json:"-" yaml:"-"`
}

func defaultEmailTemplateConfig() *EmailTemplateConfig {
	return &EmailTemplateConfig{
		OrderConfirmationTemplateFile: "template/order_confirmation.template",
	}
}

func (config *EmailTemplateConfig) checkValid(logger log.LoggerInterface) *ValidResult {
	bytes, err := cachedContent(logger, config.OrderConfirmationTemplateFile, []byte(defaultOrderConfirmationTemplate))
	if err != nil {
		return ValidFailWith(errors.New("fail to load order_confirmation_template_file"), err)
	}
	parsed, err := template.New("order_confirmation").Parse(string(bytes))
	if err != nil {
		return ValidFailWith(errors.New("fail to parse order_confirmation_template"), err)
	}
	config.OrderConfirmationTemplate = parsed
	return ValidPass()
}
