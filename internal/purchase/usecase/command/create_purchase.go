package command

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	catalogdomain "github.com/tair/petshop-backend/internal/catalog/domain"
	clientdomain "github.com/tair/petshop-backend/internal/client/domain"
	"github.com/tair/petshop-backend/internal/inventory/usecase/query"
	"github.com/tair/petshop-backend/internal/purchase/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// ErrInsufficientStock is returned when any line orders more units than
// its inventory record holds.
var ErrInsufficientStock = httperr.BadRequest("the purchase cannot be confirmed; not enough items in inventory")

// PurchaseLine is one requested order line
type PurchaseLine struct {
	InventoryID     uint
	OrderedQuantity int64
}

// CreatePurchaseCommand confirms an order for a client
type CreatePurchaseCommand struct {
	ClientID uint
	Lines    []PurchaseLine
}

// CreatePurchaseHandler validates stock, prices the order and persists
// it atomically. All reads and writes run in one transaction so a
// failing line rolls back every stock decrement made before it.
type CreatePurchaseHandler struct {
	uow       domain.UnitOfWork
	clients   clientdomain.ClientRepository
	publisher domain.EventPublisher
}

// NewCreatePurchaseHandler creates a new create purchase handler
func NewCreatePurchaseHandler(uow domain.UnitOfWork, clients clientdomain.ClientRepository, publisher domain.EventPublisher) *CreatePurchaseHandler {
	return &CreatePurchaseHandler{uow: uow, clients: clients, publisher: publisher}
}

// Handle executes the command and returns the persisted purchase
func (h *CreatePurchaseHandler) Handle(ctx context.Context, cmd CreatePurchaseCommand) (*domain.Purchase, error) {
	exists, err := h.clients.ExistsByID(cmd.ClientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.NotFound("client", cmd.ClientID)
	}

	var purchase *domain.Purchase

	err = h.uow.Within(ctx, func(repos domain.TxRepos) error {
		resolver := query.NewResolveProductHandler(repos.Inventories, repos.Foods, repos.Toys, repos.Medicines)

		var price float64
		for _, line := range cmd.Lines {
			inventory, err := repos.Inventories.FindByID(line.InventoryID)
			if err != nil {
				return err
			}
			// Quantities are signed; a negative line restocks and always
			// passes the availability check.
			if inventory.AvailableQuantity-line.OrderedQuantity < 0 {
				return ErrInsufficientStock
			}

			ref, err := resolver.Handle(query.ResolveProductQuery{InventoryID: line.InventoryID})
			if err != nil {
				return err
			}
			unitPrice, err := productPrice(repos, ref)
			if err != nil {
				return err
			}
			price += unitPrice * float64(abs(line.OrderedQuantity))

			inventory.AvailableQuantity -= line.OrderedQuantity
			if _, err := repos.Inventories.Save(inventory); err != nil {
				return err
			}
		}

		purchase = &domain.Purchase{
			Reference: newReference(),
			ClientID:  cmd.ClientID,
			Price:     price,
			Time:      time.Now().UTC(),
		}
		if err := repos.Purchases.Create(purchase); err != nil {
			return err
		}

		for _, line := range cmd.Lines {
			item := &domain.Item{
				OrderedQuantity: line.OrderedQuantity,
				InventoryID:     line.InventoryID,
				PurchaseID:      purchase.ID,
			}
			if err := repos.Items.Create(item); err != nil {
				return err
			}
			purchase.Items = append(purchase.Items, *item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if h.publisher != nil {
		if err := h.publisher.PublishPurchaseCompleted(ctx, purchase); err != nil {
			logger.Logger.Error().Err(err).Uint("purchase_id", purchase.ID).Msg("Failed to publish purchase completed event")
		}
	}

	return purchase, nil
}

func productPrice(repos domain.TxRepos, ref *catalogdomain.ProductRef) (float64, error) {
	switch ref.Kind {
	case catalogdomain.KindFood:
		food, err := repos.Foods.FindByID(ref.ProductID)
		if err != nil {
			return 0, err
		}
		return food.Price, nil
	case catalogdomain.KindToy:
		toy, err := repos.Toys.FindByID(ref.ProductID)
		if err != nil {
			return 0, err
		}
		return toy.Price, nil
	default:
		medicine, err := repos.Medicines.FindByID(ref.ProductID)
		if err != nil {
			return 0, err
		}
		return medicine.Price, nil
	}
}

func newReference() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
