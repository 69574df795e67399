package controllers

import (
	"context"
	"net/http"
	"testing"

	"hostel/models"
	"hostel/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAssetActions struct {
	res      *fakeResource
	markErr  error
	markedID int
}

func (f *fakeAssetActions) MarkAssetDamaged(ctx context.Context, id int) (models.Asset, error) {
	f.markedID = id
	if f.markErr != nil {
		return models.Asset{}, f.markErr
	}
	for i := range f.res.items {
		if f.res.items[i].ID == id {
			f.res.items[i].DamagedQuantity++
			return f.res.items[i], nil
		}
	}
	return models.Asset{}, f.markErr
}

func TestAssetsCreateFlow(t *testing.T) {
	ctx := context.Background()
	res := &fakeResource{}
	assets := NewAssetsController(res, &fakeAssetActions{res: res}, &fakeNav{}, zap.NewNop())
	rec := &notifyRecorder{}

	assets.FetchList(ctx, nil)
	require.Empty(t, assets.Items())

	assets.OpenForm()
	assets.UpdateForm(func(d *models.AssetDraft) {
		d.Name = "Chair-12"
		d.AssetType = models.AssetChair
		d.TotalQuantity = 4
	})
	assets.Submit(ctx, rec.Notify)

	// exactly one create, then the refetched list holds the new asset
	assert.Equal(t, 1, res.createCalls)
	require.Len(t, assets.Items(), 1)
	assert.Equal(t, "Chair-12", assets.Items()[0].Name)
	assert.Equal(t, models.AssetChair, assets.Items()[0].AssetType)
	assert.Equal(t, 4, assets.Items()[0].TotalQuantity)
	assert.Equal(t, "Asset created successfully!", rec.messages[0])
}

func TestMarkDamaged(t *testing.T) {
	ctx := context.Background()

	t.Run("success refetches the list", func(t *testing.T) {
		res := &fakeResource{items: []models.Asset{{ID: 4, Name: "Fan", TotalQuantity: 3}}, nextID: 4}
		actions := &fakeAssetActions{res: res}
		rec := &notifyRecorder{}
		assets := NewAssetsController(res, actions, &fakeNav{}, zap.NewNop())
		assets.FetchList(ctx, nil)

		assets.MarkDamaged(ctx, 4, rec.Notify)

		assert.Equal(t, 4, actions.markedID)
		assert.Equal(t, 1, assets.Items()[0].DamagedQuantity)
		require.NotEmpty(t, rec.messages)
		assert.Equal(t, "Asset marked as damaged", rec.messages[0])
	})

	t.Run("all units already damaged surfaces the server message", func(t *testing.T) {
		res := &fakeResource{items: []models.Asset{{ID: 4, Name: "Fan", TotalQuantity: 3, DamagedQuantity: 3}}, nextID: 4}
		actions := &fakeAssetActions{
			res:     res,
			markErr: &transport.APIError{StatusCode: http.StatusBadRequest, Message: "All items are already damaged"},
		}
		rec := &notifyRecorder{}
		assets := NewAssetsController(res, actions, &fakeNav{}, zap.NewNop())
		assets.FetchList(ctx, nil)

		assets.MarkDamaged(ctx, 4, rec.Notify)

		require.Len(t, rec.messages, 1)
		assert.Equal(t, "All items are already damaged", rec.messages[0])
		assert.Equal(t, LevelError, rec.levels[0])
	})
}
