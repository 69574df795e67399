package controllers

import (
	"hostel/models"
	"hostel/navigation"

	"go.uber.org/zap"
)

type RoomsController struct {
	*ListController[models.Room, models.RoomDraft]
}

func NewRoomsController(
	res Resource[models.Room, models.RoomDraft],
	nav navigation.Navigator,
	log *zap.Logger,
) *RoomsController {
	msgs := Messages{
		LoadFailed:    "Failed to load rooms",
		Created:       "Room created successfully!",
		Updated:       "Room updated successfully!",
		SaveFailed:    "Error saving room",
		Deleted:       "Room deleted successfully!",
		DeleteFailed:  "Error deleting room",
		ConfirmDelete: "Are you sure you want to delete this room?",
	}
	return &RoomsController{
		ListController: NewListController(
			res, nav, log, msgs,
			models.DefaultRoomDraft,
			func(r models.Room) int { return r.ID },
			func(r models.Room) models.RoomDraft {
				draft := models.RoomDraft{
					RoomNumber: r.RoomNumber,
					HostelName: r.HostelName,
					Capacity:   r.Capacity,
				}
				if r.Floor != nil {
					floor := *r.Floor
					draft.Floor = &floor
				}
				return draft
			},
		),
	}
}
