package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tair/petshop-backend/internal/purchase/domain"
)

var tracer = otel.Tracer("purchase-repository")

// GormPurchaseRepositoryWithTracing wraps GormPurchaseRepository with tracing
type GormPurchaseRepositoryWithTracing struct {
	*GormPurchaseRepository
}

// NewGormPurchaseRepositoryWithTracing creates a new repository with tracing
func NewGormPurchaseRepositoryWithTracing(db *gorm.DB) *GormPurchaseRepositoryWithTracing {
	return &GormPurchaseRepositoryWithTracing{
		GormPurchaseRepository: NewGormPurchaseRepository(db),
	}
}

// FindByIDWithContext fetches a purchase under a span
func (r *GormPurchaseRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Purchase, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("purchase.id", int(id))),
	)
	defer span.End()

	purchase, err := r.GormPurchaseRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Float64("purchase.price", purchase.Price),
		attribute.Int("purchase.items", len(purchase.Items)),
	)
	return purchase, nil
}

// FindAllWithContext lists purchases under a span
func (r *GormPurchaseRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.Purchase, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	purchases, err := r.GormPurchaseRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(purchases)))
	return purchases, nil
}

// FindByClientIDWithContext lists a client's purchases under a span
func (r *GormPurchaseRepositoryWithTracing) FindByClientIDWithContext(ctx context.Context, clientID uint, limit, offset int) ([]domain.Purchase, error) {
	_, span := tracer.Start(ctx, "repository.FindByClientID",
		trace.WithAttributes(attribute.Int("client.id", int(clientID))),
	)
	defer span.End()

	purchases, err := r.GormPurchaseRepository.FindByClientID(clientID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(purchases)))
	return purchases, nil
}
