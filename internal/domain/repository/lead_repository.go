package repository

import (
	"context"

	"leadfilter-service/internal/domain/entity"
)

// LeadRepository defines the interface for reading and writing lead documents
type LeadRepository interface {
	Load(ctx context.Context, path string) ([]*entity.Lead, error)
	Store(ctx context.Context, path string, leads []*entity.Lead) error
}
