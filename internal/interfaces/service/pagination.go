// Package service
package service

import (
	c "github.com/half-nothing/airport-booking/internal/interfaces/config"
	"github.com/half-nothing/airport-booking/internal/interfaces/operation"
)

type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"page_size"`
}

// Pagination clamps the requested page to the configured limits
func (req PageRequest) Pagination(limits *c.HttpServerLimit) operation.Pagination {
	page := operation.Pagination{Page: req.Page, PageSize: req.PageSize}
	return page.Normalize(limits.DefaultPageSize, limits.MaxPageSize)
}

type PageResponse[T any] struct {
	Items    []*T  `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

func NewPageResponse[M any, T any](items []*M, total int64, page operation.Pagination, build func(*M) *T) *PageResponse[T] {
	response := &PageResponse[T]{
		Items:    make([]*T, 0, len(items)),
		Page:     page.Page,
		PageSize: page.PageSize,
		Total:    total,
	}
	for _, item := range items {
		response.Items = append(response.Items, build(item))
	}
	return response
}
