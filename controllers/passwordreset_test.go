package controllers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hostel/navigation"
	"hostel/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeResetAPI struct {
	requestErr   error
	requestCalls int

	verifyErr   error
	verifyCalls int
	lastCode    string

	resetErr     error
	resetCalls   int
	lastEmail    string
	lastPassword string
}

func (f *fakeResetAPI) RequestPasswordReset(ctx context.Context, email string) error {
	f.requestCalls++
	f.lastEmail = email
	return f.requestErr
}

func (f *fakeResetAPI) VerifyResetCode(ctx context.Context, email, code string) error {
	f.verifyCalls++
	f.lastEmail = email
	f.lastCode = code
	return f.verifyErr
}

func (f *fakeResetAPI) ResetPasswordWithCode(ctx context.Context, email, code, newPassword string) error {
	f.resetCalls++
	f.lastEmail = email
	f.lastCode = code
	f.lastPassword = newPassword
	return f.resetErr
}

func TestResetFlowHappyPath(t *testing.T) {
	ctx := context.Background()
	api := &fakeResetAPI{}
	nav := &fakeNav{}
	reset := NewPasswordResetController(api, nav, zap.NewNop())

	require.Equal(t, StepRequestEmail, reset.Step())

	reset.RequestCode(ctx, "staff1@hostel.edu", nil)
	require.Equal(t, StepVerifyCode, reset.Step())
	assert.Equal(t, "staff1@hostel.edu", reset.Email())

	reset.VerifyCode(ctx, "123456", nil)
	require.Equal(t, StepSetPassword, reset.Step())

	reset.ResetPassword(ctx, "newpass", "newpass", nil)

	assert.Equal(t, "staff1@hostel.edu", api.lastEmail)
	assert.Equal(t, "123456", api.lastCode)
	assert.Equal(t, "newpass", api.lastPassword)
	assert.Equal(t, []navigation.Route{navigation.RouteSignIn}, nav.routes)
}

func TestResetStepGates(t *testing.T) {
	ctx := context.Background()

	t.Run("verify before request is a no-op", func(t *testing.T) {
		api := &fakeResetAPI{}
		reset := NewPasswordResetController(api, &fakeNav{}, zap.NewNop())

		reset.VerifyCode(ctx, "123456", nil)

		assert.Zero(t, api.verifyCalls)
		assert.Equal(t, StepRequestEmail, reset.Step())
	})

	t.Run("reset before verify is a no-op", func(t *testing.T) {
		api := &fakeResetAPI{}
		reset := NewPasswordResetController(api, &fakeNav{}, zap.NewNop())
		reset.RequestCode(ctx, "staff1@hostel.edu", nil)

		reset.ResetPassword(ctx, "newpass", "newpass", nil)

		assert.Zero(t, api.resetCalls)
		assert.Equal(t, StepVerifyCode, reset.Step())
	})

	t.Run("failed request keeps the email step", func(t *testing.T) {
		api := &fakeResetAPI{requestErr: errors.New("connection refused")}
		rec := &notifyRecorder{}
		reset := NewPasswordResetController(api, &fakeNav{}, zap.NewNop())

		reset.RequestCode(ctx, "staff1@hostel.edu", rec.Notify)

		assert.Equal(t, StepRequestEmail, reset.Step())
		require.Len(t, rec.messages, 1)
		assert.Equal(t, "Failed to send reset code", rec.messages[0])
	})

	t.Run("invalid code keeps the verify step", func(t *testing.T) {
		api := &fakeResetAPI{verifyErr: &transport.APIError{StatusCode: http.StatusBadRequest, Message: "Invalid or expired code"}}
		rec := &notifyRecorder{}
		reset := NewPasswordResetController(api, &fakeNav{}, zap.NewNop())
		reset.RequestCode(ctx, "staff1@hostel.edu", nil)

		reset.VerifyCode(ctx, "000000", rec.Notify)

		assert.Equal(t, StepVerifyCode, reset.Step())
		require.Len(t, rec.messages, 1)
		assert.Equal(t, "Invalid or expired code", rec.messages[0])
	})
}

func TestResetChangeEmail(t *testing.T) {
	ctx := context.Background()
	api := &fakeResetAPI{}
	reset := NewPasswordResetController(api, &fakeNav{}, zap.NewNop())

	// only meaningful from the verify step
	reset.ChangeEmail()
	assert.Equal(t, StepRequestEmail, reset.Step())

	reset.RequestCode(ctx, "staff1@hostel.edu", nil)
	reset.ChangeEmail()
	assert.Equal(t, StepRequestEmail, reset.Step())

	// a fresh request restarts the flow cleanly
	reset.RequestCode(ctx, "other@hostel.edu", nil)
	assert.Equal(t, StepVerifyCode, reset.Step())
	assert.Equal(t, "other@hostel.edu", reset.Email())
}

func TestResetPasswordLocalChecks(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name           string
		newPassword    string
		confirm        string
		expectedNotice string
	}{
		{name: "mismatch", newPassword: "newpass", confirm: "different", expectedNotice: "Passwords do not match"},
		{name: "too short", newPassword: "abc", confirm: "abc", expectedNotice: "Password must be at least 4 characters"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeResetAPI{}
			rec := &notifyRecorder{}
			nav := &fakeNav{}
			reset := NewPasswordResetController(api, nav, zap.NewNop())
			reset.RequestCode(ctx, "staff1@hostel.edu", nil)
			reset.VerifyCode(ctx, "123456", nil)

			reset.ResetPassword(ctx, tc.newPassword, tc.confirm, rec.Notify)

			assert.Zero(t, api.resetCalls)
			assert.Equal(t, StepSetPassword, reset.Step())
			assert.Empty(t, nav.routes)
			require.Len(t, rec.messages, 1)
			assert.Equal(t, tc.expectedNotice, rec.messages[0])
		})
	}
}
