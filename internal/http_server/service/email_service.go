// Package service
package service

import (
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/log"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
	. "github.com/half-nothing/airport-booking/internal/interfaces/service"
	"gopkg.in/gomail.v2"
)

type EmailService struct {
	logger log.LoggerInterface
	config *config.EmailConfig
}

type OrderTicketData struct {
	Route     string
	Departure string
	Row       int
	Seat      int
}

type OrderConfirmationData struct {
	Email     string
	OrderId   uint
	CreatedAt string
	Tickets   []*OrderTicketData
}

func NewEmailService(logger log.LoggerInterface, config *config.EmailConfig) *EmailService {
	return &EmailService{
		logger: logger,
		config: config,
	}
}

var (
	ErrRenderingTemplate      = errors.New("error rendering template")
	ErrTemplateNotInitialized = errors.New("error template not initialized")
)

func (emailService *EmailService) RenderTemplate(template *template.Template, data interface{}) (string, error) {
	if template == nil {
		return "", ErrTemplateNotInitialized
	}
	var sb strings.Builder
	if err := template.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func NewOrderConfirmationData(user *operation.User, order *operation.Order) *OrderConfirmationData {
	data := &OrderConfirmationData{
		Email:     user.Email,
		OrderId:   order.ID,
		CreatedAt: order.CreatedAt.UTC().Format(time.DateTime),
		Tickets:   make([]*OrderTicketData, 0, len(order.Tickets)),
	}
	for _, ticket := range order.Tickets {
		ticketData := &OrderTicketData{Row: ticket.Row, Seat: ticket.Seat, Route: fmt.Sprintf("flight %d", ticket.FlightId)}
		if ticket.Flight != nil {
			ticketData.Route = RouteLabel(ticket.Flight.Route)
			ticketData.Departure = ticket.Flight.DepartureTime.UTC().Format(time.DateTime)
		}
		data.Tickets = append(data.Tickets, ticketData)
	}
	return data
}

// SendOrderConfirmation is a no-op while email is disabled
func (emailService *EmailService) SendOrderConfirmation(user *operation.User, order *operation.Order) error {
	if emailService.config.EmailServer == nil {
		return nil
	}
	email := strings.ToLower(user.Email)
	message, err := emailService.RenderTemplate(emailService.config.Template.OrderConfirmationTemplate, NewOrderConfirmationData(user, order))
	if err != nil {
		emailService.logger.WarnF("Error rendering order confirmation template: %v", err)
		return ErrRenderingTemplate
	}

	m := gomail.NewMessage()
	m.SetHeader("From", emailService.config.From)
	m.SetHeader("To", email)
	m.SetHeader("Subject", fmt.Sprintf("Order #%d confirmed", order.ID))
	m.SetBody("text/html", message)

	emailService.logger.InfoF("Sending order %d confirmation to %s", order.ID, email)

	return emailService.config.EmailServer.DialAndSend(m)
}
