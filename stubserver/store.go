package stubserver

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"hostel/models"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var (
	errNotFound      = errors.New("not found")
	errDuplicateUser = errors.New("username already exists")
	errBadPassword   = errors.New("invalid password")
	errBadCode       = errors.New("invalid or expired code")
)

type userRecord struct {
	models.User
	passwordHash []byte
}

// Store is the stub backend's in-memory state. Everything server-computed in
// the real backend (asset counts, dashboard aggregates, denormalized room
// numbers) is computed on read here too, so clients see the same shapes.
type Store struct {
	mu         sync.Mutex
	users      map[int]*userRecord
	assets     map[int]*models.Asset
	rooms      map[int]*models.Room
	reports    map[int]*models.DamageReport
	sessions   map[string]int
	resetCodes map[string]string

	nextUserID   int
	nextAssetID  int
	nextRoomID   int
	nextReportID int
}

func NewStore() *Store {
	return &Store{
		users:        make(map[int]*userRecord),
		assets:       make(map[int]*models.Asset),
		rooms:        make(map[int]*models.Room),
		reports:      make(map[int]*models.DamageReport),
		sessions:     make(map[string]int),
		resetCodes:   make(map[string]string),
		nextUserID:   1,
		nextAssetID:  1,
		nextRoomID:   1,
		nextReportID: 1,
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// ---------- users ----------

// CreateUser registers a user. The very first account becomes the Warden;
// when role is empty every later self-registration starts as Pending.
func (s *Store) CreateUser(draft models.RegisterDraft, role models.Role) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == draft.Username {
			return models.User{}, errDuplicateUser
		}
	}

	if role == "" {
		if len(s.users) == 0 {
			role = models.RoleWarden
		} else {
			role = models.RolePending
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(draft.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "failed to hash password")
	}

	record := &userRecord{
		User: models.User{
			ID:          s.nextUserID,
			Username:    draft.Username,
			Email:       draft.Email,
			FirstName:   draft.FirstName,
			LastName:    draft.LastName,
			Role:        role,
			PhoneNumber: draft.PhoneNumber,
			CreatedAt:   now(),
			UpdatedAt:   now(),
		},
		passwordHash: hash,
	}
	s.users[record.ID] = record
	s.nextUserID++
	return record.User, nil
}

func (s *Store) Authenticate(username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			if bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)) != nil {
				return models.User{}, errBadPassword
			}
			return u.User, nil
		}
	}
	return models.User{}, errNotFound
}

func (s *Store) UserByID(id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u, ok := s.users[id]; ok {
		return u.User, nil
	}
	return models.User{}, errNotFound
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u.User, nil
		}
	}
	return models.User{}, errNotFound
}

func (s *Store) ListUsers() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]models.User, 0, len(s.users))
	for id := 1; id < s.nextUserID; id++ {
		if u, ok := s.users[id]; ok {
			users = append(users, u.User)
		}
	}
	return users
}

func (s *Store) UpdateUser(id int, update models.UserUpdate) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return models.User{}, errNotFound
	}
	if update.Role != nil {
		record.Role = *update.Role
	}
	if update.Email != nil {
		record.Email = *update.Email
	}
	if update.FirstName != nil {
		record.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		record.LastName = *update.LastName
	}
	if update.PhoneNumber != nil {
		record.PhoneNumber = *update.PhoneNumber
	}
	record.UpdatedAt = now()
	return record.User, nil
}

func (s *Store) UpdateProfile(id int, draft models.ProfileDraft) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return models.User{}, errNotFound
	}
	if draft.Email != "" {
		record.Email = draft.Email
	}
	if draft.FirstName != "" {
		record.FirstName = draft.FirstName
	}
	if draft.LastName != "" {
		record.LastName = draft.LastName
	}
	if draft.PhoneNumber != "" {
		record.PhoneNumber = draft.PhoneNumber
	}
	record.UpdatedAt = now()
	return record.User, nil
}

func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return errNotFound
	}
	delete(s.users, id)
	for sid, uid := range s.sessions {
		if uid == id {
			delete(s.sessions, sid)
		}
	}
	return nil
}

func (s *Store) SetPassword(id int, newPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	if !ok {
		return errNotFound
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	record.passwordHash = hash
	record.UpdatedAt = now()
	return nil
}

// ---------- sessions ----------

func (s *Store) OpenSession(sid string, userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = userID
}

func (s *Store) SessionUser(sid string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uid, ok := s.sessions[sid]
	if !ok {
		return models.User{}, false
	}
	record, ok := s.users[uid]
	if !ok {
		return models.User{}, false
	}
	return record.User, true
}

func (s *Store) CloseSession(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sid)
}

// ---------- reset codes ----------

func (s *Store) IssueResetCode(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := fmt.Sprintf("%06d", rand.Intn(1000000))
	s.resetCodes[email] = code
	return code
}

func (s *Store) VerifyResetCode(email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stored, ok := s.resetCodes[email]; !ok || stored != code {
		return errBadCode
	}
	return nil
}

func (s *Store) ClearResetCode(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.resetCodes, email)
}

// ---------- assets ----------

func (s *Store) ListAssets() []models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()
	assets := make([]models.Asset, 0, len(s.assets))
	for id := 1; id < s.nextAssetID; id++ {
		if a, ok := s.assets[id]; ok {
			assets = append(assets, s.withRoomDisplay(*a))
		}
	}
	return assets
}

func (s *Store) withRoomDisplay(asset models.Asset) models.Asset {
	if asset.Room != nil {
		if room, ok := s.rooms[*asset.Room]; ok {
			asset.RoomDisplay = room.RoomNumber
		}
	}
	return asset
}

func (s *Store) CreateAsset(draft models.AssetDraft) models.Asset {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset := &models.Asset{
		ID:            s.nextAssetID,
		Name:          draft.Name,
		AssetType:     draft.AssetType,
		TotalQuantity: draft.TotalQuantity,
		Condition:     draft.Condition,
		CreatedAt:     now(),
		UpdatedAt:     now(),
	}
	s.assets[asset.ID] = asset
	s.nextAssetID++
	return *asset
}

func (s *Store) UpdateAsset(id int, draft models.AssetDraft) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[id]
	if !ok {
		return models.Asset{}, errNotFound
	}
	asset.Name = draft.Name
	asset.AssetType = draft.AssetType
	asset.TotalQuantity = draft.TotalQuantity
	asset.Condition = draft.Condition
	asset.UpdatedAt = now()
	return s.withRoomDisplay(*asset), nil
}

func (s *Store) DeleteAsset(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assets[id]; !ok {
		return errNotFound
	}
	delete(s.assets, id)
	return nil
}

// MarkAssetDamaged bumps the damaged count by one; once every item is damaged
// the asset's condition flips to Damaged. Fully damaged assets reject the call.
func (s *Store) MarkAssetDamaged(id int) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	asset, ok := s.assets[id]
	if !ok {
		return models.Asset{}, errNotFound
	}
	if asset.DamagedQuantity >= asset.TotalQuantity {
		return models.Asset{}, errors.New("all items are already damaged")
	}
	asset.DamagedQuantity++
	if asset.DamagedQuantity == asset.TotalQuantity {
		asset.Condition = models.ConditionDamaged
	}
	asset.UpdatedAt = now()
	return s.withRoomDisplay(*asset), nil
}

// ---------- rooms ----------

func (s *Store) ListRooms() []models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	rooms := make([]models.Room, 0, len(s.rooms))
	for id := 1; id < s.nextRoomID; id++ {
		if r, ok := s.rooms[id]; ok {
			rooms = append(rooms, s.withAssetCount(*r))
		}
	}
	return rooms
}

func (s *Store) withAssetCount(room models.Room) models.Room {
	count := 0
	for _, a := range s.assets {
		if a.Room != nil && *a.Room == room.ID {
			count++
		}
	}
	room.AssetCount = count
	return room
}

func (s *Store) CreateRoom(draft models.RoomDraft) models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	room := &models.Room{
		ID:         s.nextRoomID,
		RoomNumber: draft.RoomNumber,
		HostelName: draft.HostelName,
		Floor:      draft.Floor,
		Capacity:   draft.Capacity,
		CreatedAt:  now(),
		UpdatedAt:  now(),
	}
	s.rooms[room.ID] = room
	s.nextRoomID++
	return s.withAssetCount(*room)
}

func (s *Store) UpdateRoom(id int, draft models.RoomDraft) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	room, ok := s.rooms[id]
	if !ok {
		return models.Room{}, errNotFound
	}
	room.RoomNumber = draft.RoomNumber
	room.HostelName = draft.HostelName
	room.Floor = draft.Floor
	room.Capacity = draft.Capacity
	room.UpdatedAt = now()
	return s.withAssetCount(*room), nil
}

func (s *Store) DeleteRoom(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return errNotFound
	}
	delete(s.rooms, id)
	return nil
}

func (s *Store) RoomByID(id int) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if room, ok := s.rooms[id]; ok {
		return s.withAssetCount(*room), nil
	}
	return models.Room{}, errNotFound
}

// ---------- damage reports ----------

func (s *Store) ListDamageReports() []models.DamageReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	reports := make([]models.DamageReport, 0, len(s.reports))
	for id := 1; id < s.nextReportID; id++ {
		if r, ok := s.reports[id]; ok {
			reports = append(reports, s.withRoomNumber(*r))
		}
	}
	return reports
}

func (s *Store) withRoomNumber(report models.DamageReport) models.DamageReport {
	if room, ok := s.rooms[report.Room]; ok {
		report.RoomNumber = room.RoomNumber
	}
	return report
}

func (s *Store) CreateDamageReport(draft models.DamageReportDraft) (models.DamageReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[draft.Room]; !ok {
		return models.DamageReport{}, errNotFound
	}

	status := draft.Status
	if status == "" {
		status = models.DamageNotFixed
	}
	report := &models.DamageReport{
		ID:          s.nextReportID,
		Room:        draft.Room,
		AssetType:   draft.AssetType,
		Description: draft.Description,
		Status:      status,
		ReportedAt:  now(),
		UpdatedAt:   now(),
	}
	s.reports[report.ID] = report
	s.nextReportID++
	return s.withRoomNumber(*report), nil
}

func (s *Store) UpdateDamageReport(id int, incoming models.DamageReport) (models.DamageReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report, ok := s.reports[id]
	if !ok {
		return models.DamageReport{}, errNotFound
	}
	if incoming.Room != 0 {
		report.Room = incoming.Room
	}
	if incoming.AssetType != "" {
		report.AssetType = incoming.AssetType
	}
	if incoming.Description != "" {
		report.Description = incoming.Description
	}
	if incoming.Status != "" {
		report.Status = incoming.Status
	}
	report.UpdatedAt = now()
	return s.withRoomNumber(*report), nil
}

func (s *Store) DeleteDamageReport(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reports[id]; !ok {
		return errNotFound
	}
	delete(s.reports, id)
	return nil
}

// ---------- dashboard ----------

func (s *Store) Summary() models.DashboardSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := models.DashboardSummary{
		TotalRooms: len(s.rooms),
		TotalUsers: len(s.users),
	}
	for _, a := range s.assets {
		summary.TotalAssets++
		if a.Condition == models.ConditionDamaged {
			summary.DamagedAssets++
		} else {
			summary.GoodAssets++
		}
	}
	return summary
}
