// Package database
package database

import (
	"context"
	"time"

	. "github.com/half-nothing/airport-booking/internal/interfaces/operation"
	"gorm.io/gorm"
)

type AuditLogOperation struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

func NewAuditLogOperation(db *gorm.DB, queryTimeout time.Duration) *AuditLogOperation {
	return &AuditLogOperation{db: db, queryTimeout: queryTimeout}
}

func (auditLogOperation *AuditLogOperation) NewAuditLog(eventType EventType, subject uint, object, ip, userAgent string, changeDetails *ChangeDetail) (auditLog *AuditLog) {
	return &AuditLog{
		EventType:     string(eventType),
		Subject:       subject,
		Object:        object,
		Ip:            ip,
		UserAgent:     userAgent,
		ChangeDetails: changeDetails,
	}
}

func (auditLogOperation *AuditLogOperation) GetAuditLogs(filter *AuditLogFilter) (auditLogs []*AuditLog, total int64, err error) {
	auditLogs = make([]*AuditLog, 0, max(filter.PageSize, 0))
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	byEvent := func(db *gorm.DB) *gorm.DB {
		if filter.EventType == "" {
			return db
		}
		return db.Where("event_type = ?", string(filter.EventType))
	}
	db := auditLogOperation.db.WithContext(ctx)
	if err = db.Model(&AuditLog{}).Scopes(byEvent).Count(&total).Error; err != nil {
		return
	}
	err = db.Scopes(byEvent, paginate(filter.Pagination)).Order("created_at desc").Order("id desc").Find(&auditLogs).Error
	return
}

func (auditLogOperation *AuditLogOperation) SaveAuditLog(auditLog *AuditLog) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), auditLogOperation.queryTimeout)
	defer cancel()
	return auditLogOperation.db.WithContext(ctx).Create(auditLog).Error
}
