package stubserver

import (
	"net/http"
	"strconv"

	"hostel/models"
	"hostel/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *Server) sessionUser(r *http.Request) (models.User, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return models.User{}, false
	}
	return s.store.SessionUser(cookie.Value)
}

// requireWarden resolves the session and enforces the admin role, writing the
// backend's exact error envelopes on failure.
func (s *Server) requireWarden(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := s.sessionUser(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, nil, "Not logged in")
		return models.User{}, false
	}
	if user.Role != models.RoleWarden {
		utils.RespondError(w, http.StatusForbidden, nil, "Only Warden can perform this action")
		return models.User{}, false
	}
	return user, true
}

func pathID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var draft models.RegisterDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if draft.Username == "" || draft.Password == "" || draft.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "Username, password and email are required")
		return
	}

	user, err := s.store.CreateUser(draft, "")
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Username already exists")
		return
	}

	s.logger.Info("user registered", zap.String("username", user.Username), zap.String("role", string(user.Role)))
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":    user,
		"message": "User registered successfully as " + string(user.Role),
	})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "Username and password required")
		return
	}

	user, err := s.store.Authenticate(req.Username, req.Password)
	if err == errNotFound {
		utils.RespondError(w, http.StatusUnauthorized, err, "User not found")
		return
	}
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "Invalid password")
		return
	}
	if user.Role == models.RolePending {
		utils.RespondError(w, http.StatusForbidden, nil,
			"Your account is pending approval by the Warden. Please wait for role assignment.")
		return
	}

	sid := uuid.NewString()
	s.store.OpenSession(sid, user.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
	})

	s.logger.Info("login", zap.String("username", user.Username))
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user":    user,
		"message": "Login successful",
	})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		s.store.CloseSession(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", MaxAge: -1})
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Logout successful"})
}

func (s *Server) handleCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := s.sessionUser(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, nil, "Not logged in")
		return
	}
	utils.RespondJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := s.sessionUser(r)
	if !ok {
		utils.RespondError(w, http.StatusUnauthorized, nil, "Not logged in")
		return
	}

	var draft models.ProfileDraft
	if err := utils.ParseJSONBody(r, &draft); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	updated, err := s.store.UpdateProfile(user.ID, draft)
	if err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "User not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user":    updated,
		"message": "Profile updated successfully",
	})
}

func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireWarden(w, r); !ok {
		return
	}

	var payload struct {
		models.RegisterDraft
		Role models.Role `json:"role"`
	}
	if err := utils.ParseJSONBody(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if payload.Username == "" || payload.Password == "" || payload.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "Username, password and email are required")
		return
	}
	role := payload.Role
	if role == "" {
		role = models.RoleInventoryStaff
	}

	user, err := s.store.CreateUser(payload.RegisterDraft, role)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Username already exists")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"user":    user,
		"message": "User created successfully",
	})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireWarden(w, r); !ok {
		return
	}
	utils.RespondJSON(w, http.StatusOK, s.store.ListUsers())
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireWarden(w, r); !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}

	var update models.UserUpdate
	if err := utils.ParseJSONBody(r, &update); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}

	user, err := s.store.UpdateUser(id, update)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "Target user not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"user":    user,
		"message": "User updated successfully",
	})
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	me, ok := s.requireWarden(w, r)
	if !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}
	if id == me.ID {
		utils.RespondError(w, http.StatusBadRequest, nil, "Cannot delete your own account")
		return
	}
	if err := s.store.DeleteUser(id); err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "User not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "User deleted successfully"})
}

func (s *Server) handleResetUserPassword(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireWarden(w, r); !ok {
		return
	}
	id, err := pathID(r)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid user id")
		return
	}

	var req models.ResetPasswordReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.NewPassword == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "New password is required")
		return
	}
	if len(req.NewPassword) < 4 {
		utils.RespondError(w, http.StatusBadRequest, nil, "Password must be at least 4 characters")
		return
	}

	if err := s.store.SetPassword(id, req.NewPassword); err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "User not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}

func (s *Server) handleRequestReset(w http.ResponseWriter, r *http.Request) {
	var req models.RequestResetReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.Email == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "Email is required")
		return
	}

	if _, err := s.store.UserByEmail(req.Email); err != nil {
		// Do not reveal whether the email exists.
		utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "If email exists, reset code has been sent"})
		return
	}

	code := s.store.IssueResetCode(req.Email)
	s.logger.Info("reset code issued", zap.String("email", req.Email), zap.String("code", code))
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Reset code sent to your email"})
}

func (s *Server) handleVerifyCode(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyCodeReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.Email == "" || req.Code == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "Email and code are required")
		return
	}
	if _, err := s.store.UserByEmail(req.Email); err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "User not found")
		return
	}
	if err := s.store.VerifyResetCode(req.Email, req.Code); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid or expired code")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Code verified successfully"})
}

func (s *Server) handleResetWithCode(w http.ResponseWriter, r *http.Request) {
	var req models.ResetWithCodeReq
	if err := utils.ParseJSONBody(r, &req); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "invalid request body")
		return
	}
	if req.Email == "" || req.Code == "" || req.NewPassword == "" {
		utils.RespondError(w, http.StatusBadRequest, nil, "Email, code and new password are required")
		return
	}
	if len(req.NewPassword) < 4 {
		utils.RespondError(w, http.StatusBadRequest, nil, "Password must be at least 4 characters")
		return
	}

	user, err := s.store.UserByEmail(req.Email)
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "User not found")
		return
	}
	if err := s.store.VerifyResetCode(req.Email, req.Code); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err, "Invalid or expired code")
		return
	}
	if err := s.store.SetPassword(user.ID, req.NewPassword); err != nil {
		utils.RespondError(w, http.StatusNotFound, err, "User not found")
		return
	}
	s.store.ClearResetCode(req.Email)
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
