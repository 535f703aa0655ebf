package admin

import (
	"context"

	"statutesync/database/repository"
	"statutesync/models"
)

type AdminService interface {
	Stats(ctx context.Context) (*models.AdminStats, error)
	History(ctx context.Context) (*models.History, error)
	ResetFamily(ctx context.Context, family models.Family) error
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Store *repository.Store
}
