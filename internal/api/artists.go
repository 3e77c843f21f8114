package api

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/db"
	"fyyur/internal/forms"
	"fyyur/internal/web"
)

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.Service.Artists(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "pages/artists", &web.Page{Data: artists})
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	res, err := h.Service.SearchArtists(r.Context(), term)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "pages/search", &web.Page{Data: res, SearchTerm: term, Section: "artists"})
}

func (h *Handler) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	detail, err := h.Service.ArtistDetail(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "pages/show_artist", &web.Page{Data: detail, ID: id})
}

func (h *Handler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "forms/artist", &web.Page{Form: forms.ArtistForm{}})
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	form, err := forms.ParseArtist(r)
	if err == nil {
		artist := form.Artist()
		if err = h.Service.CreateArtist(r.Context(), artist); err == nil {
			h.submitted(w, r, http.StatusCreated, fmt.Sprintf("Artist %s was successfully listed!", artist.Name), "/", artist)
			return
		}
	}
	h.Logger.Warn("HTTP", fmt.Sprintf("create artist %q: %v", form.Name, err))
	h.rejected(w, r, err, fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name), "/")
}

func (h *Handler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	artist, err := h.Service.ArtistForEdit(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "forms/artist", &web.Page{Form: forms.ArtistFormFrom(artist), ID: id, Data: artist})
}

func (h *Handler) EditArtist(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	target := fmt.Sprintf("/artists/%d", id)

	form, err := forms.ParseArtist(r)
	if err == nil {
		artist := form.Artist()
		if err = h.Service.UpdateArtist(r.Context(), id, artist); err == nil {
			h.submitted(w, r, http.StatusOK, fmt.Sprintf("Artist %s was successfully updated!", artist.Name), target, artist)
			return
		}
	}
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.Logger.Warn("HTTP", fmt.Sprintf("update artist %d: %v", id, err))
	h.rejected(w, r, err, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name), target)
}

func (h *Handler) ArtistQR(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if _, err := h.Service.ArtistForEdit(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.shareCode(w, r, fmt.Sprintf("/artists/%d", id))
}
