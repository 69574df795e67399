package controllers

import (
	"context"
	"testing"

	"hostel/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRoomResource struct {
	rooms     []models.Room
	nextID    int
	lastDraft models.RoomDraft
}

func (f *fakeRoomResource) List(ctx context.Context) ([]models.Room, error) {
	out := make([]models.Room, len(f.rooms))
	copy(out, f.rooms)
	return out, nil
}

func (f *fakeRoomResource) Create(ctx context.Context, draft models.RoomDraft) (models.Room, error) {
	f.lastDraft = draft
	f.nextID++
	created := models.Room{
		ID:         f.nextID,
		RoomNumber: draft.RoomNumber,
		HostelName: draft.HostelName,
		Floor:      draft.Floor,
		Capacity:   draft.Capacity,
	}
	f.rooms = append(f.rooms, created)
	return created, nil
}

func (f *fakeRoomResource) Update(ctx context.Context, id int, draft models.RoomDraft) (models.Room, error) {
	f.lastDraft = draft
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			f.rooms[i].RoomNumber = draft.RoomNumber
			f.rooms[i].HostelName = draft.HostelName
			f.rooms[i].Floor = draft.Floor
			f.rooms[i].Capacity = draft.Capacity
			return f.rooms[i], nil
		}
	}
	return models.Room{}, nil
}

func (f *fakeRoomResource) Delete(ctx context.Context, id int) error {
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			f.rooms = append(f.rooms[:i], f.rooms[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestRoomEditSendsFullMergedRecord(t *testing.T) {
	ctx := context.Background()
	floor := 2
	res := &fakeRoomResource{
		rooms:  []models.Room{{ID: 1, RoomNumber: "201", HostelName: "North Wing", Floor: &floor, Capacity: 2, AssetCount: 5}},
		nextID: 1,
	}
	rooms := NewRoomsController(res, &fakeNav{}, zap.NewNop())
	rooms.FetchList(ctx, nil)

	rooms.Edit(rooms.Items()[0])
	rooms.UpdateForm(func(d *models.RoomDraft) { d.Capacity = 4 })
	rooms.Submit(ctx, nil)

	// untouched fields ride along with the one change
	assert.Equal(t, "201", res.lastDraft.RoomNumber)
	assert.Equal(t, "North Wing", res.lastDraft.HostelName)
	require.NotNil(t, res.lastDraft.Floor)
	assert.Equal(t, 2, *res.lastDraft.Floor)
	assert.Equal(t, 4, res.lastDraft.Capacity)
	assert.Equal(t, 4, rooms.Items()[0].Capacity)
}

func TestRoomEditCopiesFloorPointer(t *testing.T) {
	ctx := context.Background()
	floor := 3
	res := &fakeRoomResource{
		rooms:  []models.Room{{ID: 1, RoomNumber: "301", HostelName: "North Wing", Floor: &floor, Capacity: 2}},
		nextID: 1,
	}
	rooms := NewRoomsController(res, &fakeNav{}, zap.NewNop())
	rooms.FetchList(ctx, nil)

	rooms.Edit(rooms.Items()[0])
	rooms.UpdateForm(func(d *models.RoomDraft) {
		require.NotNil(t, d.Floor)
		*d.Floor = 9
	})

	// mutating the draft's floor must not reach back into the listed room
	assert.Equal(t, 3, *rooms.Items()[0].Floor)
}

func TestRoomDefaults(t *testing.T) {
	rooms := NewRoomsController(&fakeRoomResource{}, &fakeNav{}, zap.NewNop())

	form := rooms.Form()
	assert.Empty(t, form.RoomNumber)
	assert.Nil(t, form.Floor)
	assert.Equal(t, 2, form.Capacity)
}
