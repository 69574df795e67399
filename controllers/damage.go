package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hostel/models"
	"hostel/navigation"
	"hostel/transport"

	"go.uber.org/zap"
)

type DamageAPI interface {
	ListRooms(ctx context.Context) ([]models.Room, error)
	ListDamageReports(ctx context.Context) ([]models.DamageReport, error)
	CreateDamageReport(ctx context.Context, draft models.DamageReportDraft) (models.DamageReport, error)
	UpdateDamageReport(ctx context.Context, id int, report models.DamageReport) (models.DamageReport, error)
	DeleteDamageReport(ctx context.Context, id int) error
}

// DamageController composes the rooms and damage-report lists for the
// damage-tracking page. After a successful submission only the description is
// cleared; room and asset-type selections are kept so logging several reports
// against the same room stays quick.
type DamageController struct {
	api DamageAPI
	nav navigation.Navigator
	log *zap.Logger

	rooms        []models.Room
	reports      []models.DamageReport
	selectedRoom int
	assetType    models.AssetType
	description  string
	loading      bool
	busy         bool
}

func NewDamageController(api DamageAPI, nav navigation.Navigator, log *zap.Logger) *DamageController {
	return &DamageController{
		api:       api,
		nav:       nav,
		log:       log,
		assetType: models.AssetBed,
		loading:   true,
	}
}

// Load runs both mount fetches. Only the rooms fetch redirects on 401/403;
// the reports fetch just leaves an empty list.
func (c *DamageController) Load(ctx context.Context, notify Notify) {
	c.FetchRooms(ctx, notify)
	c.FetchReports(ctx)
}

func (c *DamageController) FetchRooms(ctx context.Context, notify Notify) {
	defer func() { c.loading = false }()

	rooms, err := c.api.ListRooms(ctx)
	if err != nil {
		c.rooms = []models.Room{}
		if errors.Is(err, transport.ErrUnauthenticated) {
			c.nav.Navigate(navigation.RouteSignIn)
			return
		}
		c.log.Warn("rooms fetch failed", zap.Error(err))
		if notify != nil {
			notify("Failed to load rooms", LevelError)
		}
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.rooms = rooms
}

func (c *DamageController) FetchReports(ctx context.Context) {
	reports, err := c.api.ListDamageReports(ctx)
	if err != nil {
		c.log.Warn("damage reports fetch failed", zap.Error(err))
		c.reports = []models.DamageReport{}
		return
	}
	if reports == nil {
		reports = []models.DamageReport{}
	}
	c.reports = reports
}

// Submit validates locally that a room is selected and the description is
// non-empty before issuing the create call.
func (c *DamageController) Submit(ctx context.Context, notify Notify) {
	if c.busy {
		return
	}
	c.busy = true
	defer func() { c.busy = false }()

	if c.selectedRoom == 0 {
		if notify != nil {
			notify("Please select a room", LevelError)
		}
		return
	}
	description := strings.TrimSpace(c.description)
	if description == "" {
		if notify != nil {
			notify("Please enter damage description", LevelError)
		}
		return
	}

	draft := models.DamageReportDraft{
		Room:        c.selectedRoom,
		AssetType:   c.assetType,
		Description: description,
	}
	if _, err := c.api.CreateDamageReport(ctx, draft); err != nil {
		c.log.Warn("damage report create failed", zap.Error(err))
		if notify != nil {
			notify(transport.ServerMessage(err, "Failed to add damage report"), LevelError)
		}
		return
	}

	if notify != nil {
		notify("Damage report added successfully!", LevelSuccess)
	}
	c.description = ""
	c.FetchReports(ctx)
}

// StatusChange resends the full cached report with only status replaced; the
// backend treats resubmission of unchanged fields as idempotent.
func (c *DamageController) StatusChange(ctx context.Context, id int, status models.DamageStatus, notify Notify) {
	var report *models.DamageReport
	for i := range c.reports {
		if c.reports[i].ID == id {
			report = &c.reports[i]
			break
		}
	}
	if report == nil {
		if notify != nil {
			notify("Error updating status", LevelError)
		}
		return
	}

	updated := *report
	updated.Status = status
	if _, err := c.api.UpdateDamageReport(ctx, id, updated); err != nil {
		c.log.Warn("damage report status update failed", zap.Int("id", id), zap.Error(err))
		if notify != nil {
			notify("Error updating status", LevelError)
		}
		return
	}

	if notify != nil {
		notify("Status updated successfully!", LevelSuccess)
	}
	c.FetchReports(ctx)
}

func (c *DamageController) Delete(ctx context.Context, id int, confirm Confirm, notify Notify) {
	var report *models.DamageReport
	for i := range c.reports {
		if c.reports[i].ID == id {
			report = &c.reports[i]
			break
		}
	}
	if report == nil {
		return
	}

	prompt := fmt.Sprintf("Delete damage report for %s in Room %s?", report.AssetType, report.RoomNumber)
	if confirm == nil || !confirm(prompt) {
		return
	}

	if err := c.api.DeleteDamageReport(ctx, id); err != nil {
		c.log.Warn("damage report delete failed", zap.Int("id", id), zap.Error(err))
		if notify != nil {
			notify("Error deleting report", LevelError)
		}
		return
	}
	if notify != nil {
		notify("Damage report deleted successfully!", LevelSuccess)
	}
	c.FetchReports(ctx)
}

func (c *DamageController) SetSelectedRoom(id int)          { c.selectedRoom = id }
func (c *DamageController) SetAssetType(t models.AssetType) { c.assetType = t }
func (c *DamageController) SetDescription(d string)         { c.description = d }
func (c *DamageController) Rooms() []models.Room            { return c.rooms }
func (c *DamageController) Reports() []models.DamageReport  { return c.reports }
func (c *DamageController) SelectedRoom() int               { return c.selectedRoom }
func (c *DamageController) AssetType() models.AssetType     { return c.assetType }
func (c *DamageController) Description() string             { return c.description }
func (c *DamageController) Loading() bool                   { return c.loading }
