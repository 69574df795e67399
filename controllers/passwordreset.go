package controllers

import (
	"context"

	"hostel/navigation"
	"hostel/transport"

	"go.uber.org/zap"
)

type ResetAPI interface {
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyResetCode(ctx context.Context, email, code string) error
	ResetPasswordWithCode(ctx context.Context, email, code, newPassword string) error
}

// ResetStep is the forgot-password page's position in its three-step flow.
type ResetStep int

const (
	StepRequestEmail ResetStep = iota + 1
	StepVerifyCode
	StepSetPassword
)

// PasswordResetController is a linear state machine: RequestEmail →
// VerifyCode → SetPassword. Each forward transition is gated by a successful
// backend call; the only backward transition is the explicit "change email"
// link from the verify step.
type PasswordResetController struct {
	api ResetAPI
	nav navigation.Navigator
	log *zap.Logger

	step    ResetStep
	email   string
	code    string
	loading bool
}

func NewPasswordResetController(api ResetAPI, nav navigation.Navigator, log *zap.Logger) *PasswordResetController {
	return &PasswordResetController{api: api, nav: nav, log: log, step: StepRequestEmail}
}

func (c *PasswordResetController) RequestCode(ctx context.Context, email string, notify Notify) {
	if c.loading || c.step != StepRequestEmail {
		return
	}
	c.loading = true
	defer func() { c.loading = false }()

	if err := c.api.RequestPasswordReset(ctx, email); err != nil {
		c.log.Warn("reset code request failed", zap.Error(err))
		if notify != nil {
			notify(transport.ServerMessage(err, "Failed to send reset code"), LevelError)
		}
		return
	}
	c.email = email
	c.step = StepVerifyCode
	if notify != nil {
		notify("Reset code sent to your email!", LevelSuccess)
	}
}

func (c *PasswordResetController) VerifyCode(ctx context.Context, code string, notify Notify) {
	if c.loading || c.step != StepVerifyCode {
		return
	}
	c.loading = true
	defer func() { c.loading = false }()

	if err := c.api.VerifyResetCode(ctx, c.email, code); err != nil {
		c.log.Warn("reset code verification failed", zap.Error(err))
		if notify != nil {
			notify(transport.ServerMessage(err, "Invalid or expired code"), LevelError)
		}
		return
	}
	c.code = code
	c.step = StepSetPassword
	if notify != nil {
		notify("Code verified! Enter your new password", LevelSuccess)
	}
}

// ChangeEmail steps back from the verify step regardless of code validity.
func (c *PasswordResetController) ChangeEmail() {
	if c.step == StepVerifyCode {
		c.step = StepRequestEmail
		c.code = ""
	}
}

// ResetPassword rejects mismatched or too-short passwords locally, without a
// backend call. A successful reset navigates to sign-in.
func (c *PasswordResetController) ResetPassword(ctx context.Context, newPassword, confirmPassword string, notify Notify) {
	if c.loading || c.step != StepSetPassword {
		return
	}

	if newPassword != confirmPassword {
		if notify != nil {
			notify("Passwords do not match", LevelError)
		}
		return
	}
	if len(newPassword) < 4 {
		if notify != nil {
			notify("Password must be at least 4 characters", LevelError)
		}
		return
	}

	c.loading = true
	defer func() { c.loading = false }()

	if err := c.api.ResetPasswordWithCode(ctx, c.email, c.code, newPassword); err != nil {
		c.log.Warn("password reset failed", zap.Error(err))
		if notify != nil {
			notify(transport.ServerMessage(err, "Failed to reset password"), LevelError)
		}
		return
	}

	if notify != nil {
		notify("Password reset successfully! Redirecting to login...", LevelSuccess)
	}
	c.nav.Navigate(navigation.RouteSignIn)
}

func (c *PasswordResetController) Step() ResetStep { return c.step }

func (c *PasswordResetController) Email() string { return c.email }

func (c *PasswordResetController) Loading() bool { return c.loading }
