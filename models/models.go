package models

// Entities are exchanged verbatim with the backend. Field names follow the
// server's JSON shapes; read-only fields are populated by the server and sent
// back untouched on full-record updates.

type Role string

const (
	RolePending        Role = "Pending"
	RoleWarden         Role = "Warden"
	RoleSubWarden      Role = "Sub-Warden"
	RoleInventoryStaff Role = "Inventory Staff"
)

type AssetType string

const (
	AssetBed      AssetType = "Bed"
	AssetTable    AssetType = "Table"
	AssetChair    AssetType = "Chair"
	AssetCupboard AssetType = "Cupboard"
	AssetFan      AssetType = "Fan"
	AssetLight    AssetType = "Light"
	AssetOther    AssetType = "Other"
)

// AssetTypes lists every selectable asset type in display order.
var AssetTypes = []AssetType{
	AssetBed, AssetTable, AssetChair, AssetCupboard, AssetFan, AssetLight, AssetOther,
}

type Condition string

const (
	ConditionGood    Condition = "Good"
	ConditionDamaged Condition = "Damaged"
)

type DamageStatus string

const (
	DamageNotFixed DamageStatus = "Not Fixed"
	DamageFixed    DamageStatus = "Fixed"
	DamageReplaced DamageStatus = "Replaced"
)

type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Role        Role   `json:"role"`
	PhoneNumber string `json:"phone_number"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type Asset struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	AssetType       AssetType `json:"asset_type"`
	TotalQuantity   int       `json:"total_quantity"`
	DamagedQuantity int       `json:"damaged_quantity"`
	Condition       Condition `json:"condition"`
	Room            *int      `json:"room,omitempty"`
	RoomDisplay     string    `json:"room_display,omitempty"`
	CreatedAt       string    `json:"created_at,omitempty"`
	UpdatedAt       string    `json:"updated_at,omitempty"`
}

type Room struct {
	ID         int    `json:"id"`
	RoomNumber string `json:"room_number"`
	HostelName string `json:"hostel_name"`
	Floor      *int   `json:"floor"`
	Capacity   int    `json:"capacity"`
	AssetCount int    `json:"asset_count"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

type DamageReport struct {
	ID          int          `json:"id"`
	Room        int          `json:"room"`
	RoomNumber  string       `json:"room_number,omitempty"`
	AssetType   AssetType    `json:"asset_type"`
	Description string       `json:"description"`
	Status      DamageStatus `json:"status"`
	ReportedAt  string       `json:"reported_at,omitempty"`
	UpdatedAt   string       `json:"updated_at,omitempty"`
}

type DashboardSummary struct {
	TotalAssets   int `json:"total_assets"`
	GoodAssets    int `json:"good_assets"`
	DamagedAssets int `json:"damaged_assets"`
	TotalRooms    int `json:"total_rooms"`
	TotalUsers    int `json:"total_users"`
}
