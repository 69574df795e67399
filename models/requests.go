package models

// Request drafts sent to the backend. Validate tags cover the same "required
// field" hints the forms enforce; anything stricter is left to the server.

type AssetDraft struct {
	Name          string    `json:"name" validate:"required"`
	AssetType     AssetType `json:"asset_type" validate:"required,oneof=Bed Table Chair Cupboard Fan Light Other"`
	TotalQuantity int       `json:"total_quantity" validate:"required,gt=0"`
	Condition     Condition `json:"condition" validate:"required,oneof=Good Damaged"`
}

// DefaultAssetDraft is the documented empty asset form.
func DefaultAssetDraft() AssetDraft {
	return AssetDraft{AssetType: AssetBed, TotalQuantity: 1, Condition: ConditionGood}
}

type RoomDraft struct {
	RoomNumber string `json:"room_number" validate:"required"`
	HostelName string `json:"hostel_name" validate:"required"`
	Floor      *int   `json:"floor"`
	Capacity   int    `json:"capacity" validate:"required,gt=0"`
}

// DefaultRoomDraft is the documented empty room form.
func DefaultRoomDraft() RoomDraft {
	return RoomDraft{Capacity: 2}
}

type DamageReportDraft struct {
	Room        int          `json:"room" validate:"required,gt=0"`
	AssetType   AssetType    `json:"asset_type" validate:"required"`
	Description string       `json:"description" validate:"required"`
	Status      DamageStatus `json:"status,omitempty"`
}

type RegisterDraft struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required,min=4"`
	Email       string `json:"email" validate:"required,email"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProfileDraft struct {
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UserUpdate is a partial admin-side update; only set fields are sent.
type UserUpdate struct {
	Role        *Role   `json:"role,omitempty"`
	Email       *string `json:"email,omitempty"`
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

type ResetPasswordReq struct {
	NewPassword string `json:"new_password" validate:"required,min=4"`
}

type RequestResetReq struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyCodeReq struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code" validate:"required,len=6"`
}

type ResetWithCodeReq struct {
	Email       string `json:"email" validate:"required,email"`
	Code        string `json:"code" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=4"`
}
