// Package uowmock is a pass-through UnitOfWork for tests: no transaction, it
// hands the configured repos straight to the callback.
package uowmock

import (
	"context"

	"fund-management-backend/internal/domain/application"
	"fund-management-backend/internal/domain/uow"
)

type UoW struct {
	Repos uow.Repos

	// LockedApplication serves WithinApplicationTx when set; otherwise the
	// Applications repo is consulted.
	LockedApplication *application.Application
	LockErr           error
}

func (u *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return fn(u.Repos)
}

func (u *UoW) WithinApplicationTx(ctx context.Context, applicationID string, fn func(r uow.Repos, a *application.Application) error) error {
	if u.LockErr != nil {
		return u.LockErr
	}
	a := u.LockedApplication
	if a == nil {
		var err error
		a, err = u.Repos.Applications.GetByApplicationIDForUpdate(ctx, applicationID)
		if err != nil {
			return err
		}
	}
	return fn(u.Repos, a)
}
