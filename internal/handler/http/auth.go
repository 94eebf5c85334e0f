package http

import (
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err, "*Handler.register")
		return
	}

	log.Info().Str("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteMessage(w, app.MsgSignedUp, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg(app.MsgInvalidJSON)
		utils.WriteMessage(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err, "*Handler.login")
		return
	}

	log.Debug().Str("user_id", foundUser.UserID).Msg("user successfully logged in")

	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Token:   token.SignedString,
		UserID:  foundUser.UserID,
		Name:    foundUser.Name,
		Email:   foundUser.Email,
		Message: app.MsgSignedIn,
	}, http.StatusCreated)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request, principal models.Principal) {
	if err := h.services.AuthService.Logout(r.Context(), principal); err != nil {
		writeError(w, r, err, "*Handler.logout")
		return
	}

	utils.WriteMessage(w, app.MsgSignedOut, http.StatusCreated)
}
