package controllers

import (
	"context"

	"hostel/models"
	"hostel/navigation"
	"hostel/transport"

	"go.uber.org/zap"
)

// AssetActions covers the asset endpoints outside the uniform CRUD shape.
type AssetActions interface {
	MarkAssetDamaged(ctx context.Context, id int) (models.Asset, error)
}

type AssetsController struct {
	*ListController[models.Asset, models.AssetDraft]
	actions AssetActions
	log     *zap.Logger
}

func NewAssetsController(
	res Resource[models.Asset, models.AssetDraft],
	actions AssetActions,
	nav navigation.Navigator,
	log *zap.Logger,
) *AssetsController {
	msgs := Messages{
		LoadFailed:    "Failed to load assets",
		Created:       "Asset created successfully!",
		Updated:       "Asset updated successfully!",
		SaveFailed:    "Error saving asset",
		Deleted:       "Asset deleted successfully!",
		DeleteFailed:  "Error deleting asset",
		ConfirmDelete: "Are you sure you want to delete this asset?",
	}
	return &AssetsController{
		ListController: NewListController(
			res, nav, log, msgs,
			models.DefaultAssetDraft,
			func(a models.Asset) int { return a.ID },
			func(a models.Asset) models.AssetDraft {
				return models.AssetDraft{
					Name:          a.Name,
					AssetType:     a.AssetType,
					TotalQuantity: a.TotalQuantity,
					Condition:     a.Condition,
				}
			},
		),
		actions: actions,
		log:     log,
	}
}

// MarkDamaged bumps an asset's damaged count on the server and refetches.
func (c *AssetsController) MarkDamaged(ctx context.Context, id int, notify Notify) {
	if _, err := c.actions.MarkAssetDamaged(ctx, id); err != nil {
		c.log.Warn("mark damaged failed", zap.Int("id", id), zap.Error(err))
		if notify != nil {
			notify(transport.ServerMessage(err, "Error marking asset as damaged"), LevelError)
		}
		return
	}
	if notify != nil {
		notify("Asset marked as damaged", LevelSuccess)
	}
	c.FetchList(ctx, notify)
}
