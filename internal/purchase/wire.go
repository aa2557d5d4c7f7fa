//go:build wireinject
// +build wireinject

package purchase

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	clientdomain "github.com/tair/petshop-backend/internal/client/domain"
	clientrepo "github.com/tair/petshop-backend/internal/client/repository"
	"github.com/tair/petshop-backend/internal/purchase/delivery/http"
	"github.com/tair/petshop-backend/internal/purchase/domain"
	"github.com/tair/petshop-backend/internal/purchase/repository"
	"github.com/tair/petshop-backend/internal/purchase/usecase/command"
	"github.com/tair/petshop-backend/internal/purchase/usecase/query"
)

// ProvideUnitOfWork provides the transactional unit of work
func ProvideUnitOfWork(db *gorm.DB) domain.UnitOfWork {
	return repository.NewGormUnitOfWork(db)
}

// ProvidePurchaseRepository provides the purchase repository
func ProvidePurchaseRepository(db *gorm.DB) domain.PurchaseRepository {
	return repository.NewGormPurchaseRepository(db)
}

// ProvideClientRepository provides the client repository
func ProvideClientRepository(db *gorm.DB) clientdomain.ClientRepository {
	return clientrepo.NewGormClientRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUnitOfWork,
	ProvidePurchaseRepository,
	ProvideClientRepository,
)

var CommandSet = wire.NewSet(
	command.NewCreatePurchaseHandler,
	command.NewCancelPurchaseHandler,
)

var QuerySet = wire.NewSet(
	query.NewGetPurchaseHandler,
	query.NewListPurchasesHandler,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, publisher domain.EventPublisher) (*http.PurchaseHandler, error) {
	wire.Build(
		RepositorySet,
		CommandSet,
		QuerySet,
		http.NewPurchaseHandler,
	)
	return nil, nil
}
