package api

import (
	"fmt"
	"net/http"

	"fyyur/internal/forms"
	"fyyur/internal/web"
)

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	feed, err := h.Service.ShowsFeed(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "pages/shows", &web.Page{Data: feed})
}

func (h *Handler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "forms/show", &web.Page{Form: forms.ShowForm{}})
}

func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	form, err := forms.ParseShow(r, h.Parser)
	if err == nil {
		show := form.Show()
		if err = h.Service.CreateShow(r.Context(), show); err == nil {
			h.submitted(w, r, http.StatusCreated, "Show was successfully listed!", "/", show)
			return
		}
	}
	h.Logger.Warn("HTTP", fmt.Sprintf("create show: %v", err))
	h.rejected(w, r, err, "An error occurred. Show could not be listed.", "/")
}
