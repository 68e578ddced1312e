package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adarshtiwari-ai/dailydot-backend/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// CatalogRepository только читает каталог, услугами управляет другой сервис.
type CatalogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCatalogRepo(db *dbpg.DB) *CatalogRepository {
	return &CatalogRepository{db: db, strategy: defaultStrategy()}
}

func (r *CatalogRepository) GetService(ctx context.Context, id string) (*domain.CatalogService, error) {
	query := `SELECT id, name, price, duration, is_active, created_at, updated_at
			  FROM services
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	var s domain.CatalogService
	if err = row.Scan(&s.ID, &s.Name, &s.Price, &s.Duration, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrServiceNotFound
		}
		return nil, fmt.Errorf("scan service: %w", err)
	}

	return &s, nil
}
