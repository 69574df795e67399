package transport

import (
	"context"
	"fmt"

	"hostel/models"
)

type userEnvelope struct {
	User    models.User `json:"user"`
	Message string      `json:"message"`
}

type assetEnvelope struct {
	Asset   models.Asset `json:"asset"`
	Message string       `json:"message"`
}

// ---------- authentication ----------

func (c *Client) Register(ctx context.Context, draft models.RegisterDraft) (models.User, error) {
	var out userEnvelope
	_, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).Post("/users/register/")
	return out.User, err
}

func (c *Client) Login(ctx context.Context, username, password string) (models.User, error) {
	var out userEnvelope
	_, err := c.http.R().SetContext(ctx).
		SetBody(models.LoginReq{Username: username, Password: password}).
		SetResult(&out).
		Post("/users/login/")
	return out.User, err
}

func (c *Client) Logout(ctx context.Context) error {
	_, err := c.http.R().SetContext(ctx).Post("/users/logout/")
	return err
}

func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var out models.User
	_, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/users/me/")
	return out, err
}

func (c *Client) UpdateProfile(ctx context.Context, draft models.ProfileDraft) (models.User, error) {
	var out userEnvelope
	_, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).Put("/users/profile/update/")
	return out.User, err
}

// ---------- user administration ----------

func (c *Client) CreateUser(ctx context.Context, draft models.RegisterDraft) (models.User, error) {
	var out userEnvelope
	_, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).Post("/users/create-user/")
	return out.User, err
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/users/list/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.User](c.logger, resp.Body())
}

func (c *Client) UpdateUser(ctx context.Context, id int, update models.UserUpdate) (models.User, error) {
	var out userEnvelope
	_, err := c.http.R().SetContext(ctx).SetBody(update).SetResult(&out).
		Put(fmt.Sprintf("/users/update-user/%d/", id))
	return out.User, err
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/users/delete-user/%d/", id))
	return err
}

func (c *Client) ResetUserPassword(ctx context.Context, id int, newPassword string) error {
	_, err := c.http.R().SetContext(ctx).
		SetBody(models.ResetPasswordReq{NewPassword: newPassword}).
		Post(fmt.Sprintf("/users/reset-password/%d/", id))
	return err
}

// ---------- password reset with code ----------

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := c.http.R().SetContext(ctx).
		SetBody(models.RequestResetReq{Email: email}).
		Post("/users/request-reset/")
	return err
}

func (c *Client) VerifyResetCode(ctx context.Context, email, code string) error {
	_, err := c.http.R().SetContext(ctx).
		SetBody(models.VerifyCodeReq{Email: email, Code: code}).
		Post("/users/verify-code/")
	return err
}

func (c *Client) ResetPasswordWithCode(ctx context.Context, email, code, newPassword string) error {
	_, err := c.http.R().SetContext(ctx).
		SetBody(models.ResetWithCodeReq{Email: email, Code: code, NewPassword: newPassword}).
		Post("/users/reset-password-with-code/")
	return err
}

// ---------- assets ----------

func (c *Client) ListAssets(ctx context.Context) ([]models.Asset, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/assets/assets/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Asset](c.logger, resp.Body())
}

func (c *Client) CreateAsset(ctx context.Context, draft models.AssetDraft) (models.Asset, error) {
	var out models.Asset
	_, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).Post("/assets/assets/")
	return out, err
}

func (c *Client) UpdateAsset(ctx context.Context, id int, draft models.AssetDraft) (models.Asset, error) {
	var out models.Asset
	_, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).
		Put(fmt.Sprintf("/assets/assets/%d/", id))
	return out, err
}

func (c *Client) DeleteAsset(ctx context.Context, id int) error {
	_, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/assets/assets/%d/", id))
	return err
}

func (c *Client) MarkAssetDamaged(ctx context.Context, id int) (models.Asset, error) {
	var out assetEnvelope
	_, err := c.http.R().SetContext(ctx).SetResult(&out).
		Post(fmt.Sprintf("/assets/assets/%d/mark_damaged/", id))
	return out.Asset, err
}

// ---------- rooms ----------

func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/rooms/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.Room](c.logger, resp.Body())
}

func (c *Client) CreateRoom(ctx context.Context, draft models.RoomDraft) (models.Room, error) {
	var out models.Room
	_, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).Post("/rooms/")
	return out, err
}

func (c *Client) UpdateRoom(ctx context.Context, id int, draft models.RoomDraft) (models.Room, error) {
	var out models.Room
	_, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).
		Put(fmt.Sprintf("/rooms/%d/", id))
	return out, err
}

func (c *Client) DeleteRoom(ctx context.Context, id int) error {
	_, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/rooms/%d/", id))
	return err
}

// ---------- dashboard ----------

func (c *Client) DashboardSummary(ctx context.Context) (models.DashboardSummary, error) {
	var out models.DashboardSummary
	_, err := c.http.R().SetContext(ctx).SetResult(&out).Get("/dashboard/summary/")
	return out, err
}

// ---------- damage reports ----------

func (c *Client) ListDamageReports(ctx context.Context) ([]models.DamageReport, error) {
	resp, err := c.http.R().SetContext(ctx).Get("/assets/damage-reports/")
	if err != nil {
		return nil, err
	}
	return decodeList[models.DamageReport](c.logger, resp.Body())
}

func (c *Client) CreateDamageReport(ctx context.Context, draft models.DamageReportDraft) (models.DamageReport, error) {
	var out models.DamageReport
	_, err := c.http.R().SetContext(ctx).SetBody(draft).SetResult(&out).Post("/assets/damage-reports/")
	return out, err
}

func (c *Client) UpdateDamageReport(ctx context.Context, id int, report models.DamageReport) (models.DamageReport, error) {
	var out models.DamageReport
	_, err := c.http.R().SetContext(ctx).SetBody(report).SetResult(&out).
		Put(fmt.Sprintf("/assets/damage-reports/%d/", id))
	return out, err
}

func (c *Client) DeleteDamageReport(ctx context.Context, id int) error {
	_, err := c.http.R().SetContext(ctx).Delete(fmt.Sprintf("/assets/damage-reports/%d/", id))
	return err
}
