// Package approvalmock is a function-backed mock of approval.Repository that
// records every appended history row for assertions.
package approvalmock

import (
	"context"

	domain "fund-management-backend/internal/domain/approval"
)

type Repo struct {
	Rows []domain.History

	CreateFn            func(ctx context.Context, h *domain.History) error
	ListByApplicationFn func(ctx context.Context, applicationID string) ([]domain.History, error)
}

func (m *Repo) Create(ctx context.Context, h *domain.History) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, h)
	}
	m.Rows = append(m.Rows, *h)
	return nil
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID string) ([]domain.History, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID)
	}
	var out []domain.History
	for _, h := range m.Rows {
		if h.ApplicationID == applicationID {
			out = append(out, h)
		}
	}
	return out, nil
}
