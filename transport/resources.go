package transport

import (
	"context"

	"hostel/models"
)

// Per-entity adapters exposing the uniform list/create/update/delete shape the
// resource controllers are parametrized over.

type AssetsResource struct{ c *Client }

func (c *Client) Assets() AssetsResource { return AssetsResource{c: c} }

func (r AssetsResource) List(ctx context.Context) ([]models.Asset, error) {
	return r.c.ListAssets(ctx)
}

func (r AssetsResource) Create(ctx context.Context, draft models.AssetDraft) (models.Asset, error) {
	return r.c.CreateAsset(ctx, draft)
}

func (r AssetsResource) Update(ctx context.Context, id int, draft models.AssetDraft) (models.Asset, error) {
	return r.c.UpdateAsset(ctx, id, draft)
}

func (r AssetsResource) Delete(ctx context.Context, id int) error {
	return r.c.DeleteAsset(ctx, id)
}

type RoomsResource struct{ c *Client }

func (c *Client) Rooms() RoomsResource { return RoomsResource{c: c} }

func (r RoomsResource) List(ctx context.Context) ([]models.Room, error) {
	return r.c.ListRooms(ctx)
}

func (r RoomsResource) Create(ctx context.Context, draft models.RoomDraft) (models.Room, error) {
	return r.c.CreateRoom(ctx, draft)
}

func (r RoomsResource) Update(ctx context.Context, id int, draft models.RoomDraft) (models.Room, error) {
	return r.c.UpdateRoom(ctx, id, draft)
}

func (r RoomsResource) Delete(ctx context.Context, id int) error {
	return r.c.DeleteRoom(ctx, id)
}
