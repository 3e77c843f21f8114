package api

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/db"
	"fyyur/internal/utils"
)

func (h *Handler) flash(w http.ResponseWriter, r *http.Request, msg string) {
	if h.Flash == nil {
		return
	}
	if err := h.Flash.Add(w, r, msg); err != nil {
		h.Logger.Warn("FLASH", fmt.Sprintf("add: %v", err))
	}
}

func (h *Handler) popFlashes(w http.ResponseWriter, r *http.Request) []string {
	if h.Flash == nil {
		return nil
	}
	msgs, err := h.Flash.Pop(w, r)
	if err != nil {
		h.Logger.Warn("FLASH", fmt.Sprintf("pop: %v", err))
	}
	return msgs
}

// submitted finishes a create or edit POST. HTML clients get msg flashed and a 303 to
// target; JSON clients get the outcome directly.
func (h *Handler) submitted(w http.ResponseWriter, r *http.Request, status int, msg, target string, data interface{}) {
	if utils.WantsJSON(r) {
		utils.WriteJSON(w, status, utils.SuccessResponse(msg, data))
		return
	}
	h.flash(w, r, msg)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// rejected reports a failed submission without exposing the cause.
func (h *Handler) rejected(w http.ResponseWriter, r *http.Request, err error, msg, target string) {
	if utils.WantsJSON(r) {
		status, code := http.StatusInternalServerError, "internal"
		switch {
		case errors.Is(err, db.ErrValidation):
			status, code = http.StatusBadRequest, err.Error()
		case errors.Is(err, db.ErrReference):
			status, code = http.StatusUnprocessableEntity, "reference"
		case errors.Is(err, db.ErrNotFound):
			status, code = http.StatusNotFound, "not_found"
		}
		utils.WriteJSON(w, status, utils.ErrorResponse(msg, code))
		return
	}
	h.flash(w, r, msg)
	http.Redirect(w, r, target, http.StatusSeeOther)
}
