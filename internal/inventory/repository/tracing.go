package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/inventory/domain"
)

var tracer = otel.Tracer("inventory-repository")

// GormInventoryRepositoryWithTracing wraps GormInventoryRepository with tracing
type GormInventoryRepositoryWithTracing struct {
	*GormInventoryRepository
}

// NewGormInventoryRepositoryWithTracing creates a new repository with tracing
func NewGormInventoryRepositoryWithTracing(db *gorm.DB) *GormInventoryRepositoryWithTracing {
	return &GormInventoryRepositoryWithTracing{
		GormInventoryRepository: NewGormInventoryRepository(db),
	}
}

// FindByIDWithContext fetches an inventory record under a span
func (r *GormInventoryRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Inventory, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("inventory.id", int(id))),
	)
	defer span.End()

	inventory, err := r.GormInventoryRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int64("inventory.available_quantity", inventory.AvailableQuantity))
	return inventory, nil
}

// SaveWithContext persists an inventory record under a span
func (r *GormInventoryRepositoryWithTracing) SaveWithContext(ctx context.Context, inventory *domain.Inventory) (*domain.Inventory, error) {
	_, span := tracer.Start(ctx, "repository.Save",
		trace.WithAttributes(
			attribute.Int("inventory.id", int(inventory.ID)),
			attribute.Int64("inventory.available_quantity", inventory.AvailableQuantity),
		),
	)
	defer span.End()

	saved, err := r.GormInventoryRepository.Save(inventory)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	return saved, nil
}

// DeleteWithContext deletes an inventory record under a span
func (r *GormInventoryRepositoryWithTracing) DeleteWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("inventory.id", int(id))),
	)
	defer span.End()

	err := r.GormInventoryRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
