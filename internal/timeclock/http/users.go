package http

import (
	"net/http"

	"github.com/aussiebroadwan/timeclock/internal/timeclock/service"
	"github.com/aussiebroadwan/timeclock/pkg/clocksdk"
	"github.com/aussiebroadwan/timeclock/pkg/httpx"
	"github.com/aussiebroadwan/timeclock/pkg/slogx"
)

type UsersHandler struct {
	UserService *service.UserService
}

// HandleCreate registers a new user.
//
//	@Summary		Create user
//	@Description	Registers a user on the roster. Requires 'admin:write'.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		clocksdk.CreateUserRequest	true	"Email, name and role (staff or admin)"
//	@Success		201		{object}	clocksdk.User
//	@Failure		400		{object}	clocksdk.APIError	"Missing or invalid fields"
//	@Failure		401		{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403		{object}	clocksdk.APIError	"Missing 'admin:write' scope"
//	@Failure		409		{object}	clocksdk.APIError	"Email already registered"
//	@Router			/v1/users [post].
func (h *UsersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req clocksdk.CreateUserRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		clocksdk.ErrInvalidRequest.Write(w)
		return
	}

	user, err := h.UserService.CreateUser(ctx, req.Email, req.Name, req.Role)
	if err != nil {
		log.Debug("create user rejected", "email", req.Email, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("user created", "user_id", user.ID, "role", user.Role)
	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusCreated, userView(user))
}

// HandleList returns every registered user.
//
//	@Summary		List users
//	@Description	Returns the roster, oldest first. Requires 'admin:read'.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		clocksdk.User
//	@Failure		401	{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403	{object}	clocksdk.APIError	"Missing 'admin:read' scope"
//	@Router			/v1/users [get].
func (h *UsersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	users, err := h.UserService.ListUsers(ctx)
	if err != nil {
		log.Error("failed to list users", "err", err)
		writeServiceError(w, err)
		return
	}

	views := make([]clocksdk.User, 0, len(users))
	for _, u := range users {
		views = append(views, userView(u))
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, views)
}

// HandleDelete removes a user from the roster.
//
//	@Summary		Delete user
//	@Description	Removes a user. Their shift history is retained. Requires 'admin:write'.
//	@Tags			Users
//	@Security		BearerAuth
//	@Param			id	path	string	true	"User ID"
//	@Success		204	"Deleted"
//	@Failure		401	{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		403	{object}	clocksdk.APIError	"Missing 'admin:write' scope"
//	@Failure		404	{object}	clocksdk.APIError	"No such user"
//	@Router			/v1/users/{id} [delete].
func (h *UsersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("id")
	if userID == "" {
		clocksdk.ErrInvalidRequest.Write(w)
		return
	}

	if _, err := h.UserService.GetUserByID(ctx, userID); err != nil {
		writeServiceError(w, err)
		return
	}
	if err := h.UserService.DeleteUser(ctx, userID); err != nil {
		log.Error("failed to delete user", "user_id", userID, "err", err)
		writeServiceError(w, err)
		return
	}

	log.Info("user deleted", "user_id", userID)
	w.WriteHeader(http.StatusNoContent)
}

// MeHandler reports the authenticated caller's roster entry.
type MeHandler struct {
	UserService *service.UserService
}

// ServeHTTP handles GET /v1/me.
//
//	@Summary		Get caller identity
//	@Description	Returns the roster entry matching the access token's subject or email claim.
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	clocksdk.MeResponse
//	@Failure		401	{object}	clocksdk.APIError	"Invalid or missing access token"
//	@Failure		404	{object}	clocksdk.APIError	"Caller is not a registered user"
//	@Router			/v1/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID := httpx.UserIDFromCtx(ctx)
	if userID == "" {
		clocksdk.ErrUnauthenticated.Write(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		// Fall back to the email claim for IdPs with foreign subjects.
		if email := httpx.EmailFromCtx(ctx); email != "" {
			user, err = h.UserService.Store.Users().GetUserByEmail(ctx, email)
		}
		if err != nil {
			writeServiceError(w, service.ErrUserNotFound)
			return
		}
	}

	response := clocksdk.MeResponse{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		Scopes: httpx.ScopesFromCtx(ctx),
	}

	httpx.NoCache(w)
	httpx.WriteJSON(w, http.StatusOK, response)
}
