package command

import (
	"context"

	"github.com/tair/petshop-backend/internal/purchase/domain"
	"github.com/tair/petshop-backend/pkg/httperr"
	"github.com/tair/petshop-backend/pkg/logger"
)

// CancelPurchaseCommand deletes a purchase and returns its stock
type CancelPurchaseCommand struct {
	PurchaseID uint
}

// CancelPurchaseHandler restores the ordered quantities to their
// inventory records and deletes the purchase with its lines, all in
// one transaction.
type CancelPurchaseHandler struct {
	uow       domain.UnitOfWork
	publisher domain.EventPublisher
}

// NewCancelPurchaseHandler creates a new cancel purchase handler
func NewCancelPurchaseHandler(uow domain.UnitOfWork, publisher domain.EventPublisher) *CancelPurchaseHandler {
	return &CancelPurchaseHandler{uow: uow, publisher: publisher}
}

// Handle executes the command
func (h *CancelPurchaseHandler) Handle(ctx context.Context, cmd CancelPurchaseCommand) error {
	var cancelled *domain.Purchase

	err := h.uow.Within(ctx, func(repos domain.TxRepos) error {
		exists, err := repos.Purchases.ExistsByID(cmd.PurchaseID)
		if err != nil {
			return err
		}
		if !exists {
			return httperr.NotFound("purchase", cmd.PurchaseID)
		}

		purchase, err := repos.Purchases.FindByID(cmd.PurchaseID)
		if err != nil {
			return err
		}
		cancelled = purchase

		items, err := repos.Items.FindByPurchaseID(cmd.PurchaseID)
		if err != nil {
			return err
		}
		for _, item := range items {
			inventory, err := repos.Inventories.FindByID(item.InventoryID)
			if err != nil {
				return err
			}
			inventory.AvailableQuantity += item.OrderedQuantity
			if _, err := repos.Inventories.Save(inventory); err != nil {
				return err
			}
			if err := repos.Items.Delete(item.ID); err != nil {
				return err
			}
		}

		return repos.Purchases.Delete(cmd.PurchaseID)
	})
	if err != nil {
		return err
	}

	if h.publisher != nil {
		if err := h.publisher.PublishPurchaseCancelled(ctx, cancelled); err != nil {
			logger.Logger.Error().Err(err).Uint("purchase_id", cmd.PurchaseID).Msg("Failed to publish purchase cancelled event")
		}
	}

	return nil
}
