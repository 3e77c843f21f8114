package api

import (
	"errors"
	"fmt"
	"net/http"

	"fyyur/internal/db"
	"fyyur/internal/forms"
	"fyyur/internal/web"
)

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.Service.Areas(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "pages/venues", &web.Page{Data: areas})
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	term := r.PostFormValue("search_term")
	res, err := h.Service.SearchVenues(r.Context(), term)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "pages/search", &web.Page{Data: res, SearchTerm: term, Section: "venues"})
}

func (h *Handler) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	detail, err := h.Service.VenueDetail(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "pages/show_venue", &web.Page{Data: detail, ID: id})
}

func (h *Handler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	h.page(w, r, http.StatusOK, "forms/venue", &web.Page{Form: forms.VenueForm{}})
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	form, err := forms.ParseVenue(r)
	if err == nil {
		venue := form.Venue()
		if err = h.Service.CreateVenue(r.Context(), venue); err == nil {
			h.submitted(w, r, http.StatusCreated, fmt.Sprintf("Venue %s was successfully listed!", venue.Name), "/", venue)
			return
		}
	}
	h.Logger.Warn("HTTP", fmt.Sprintf("create venue %q: %v", form.Name, err))
	h.rejected(w, r, err, fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name), "/")
}

func (h *Handler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	venue, err := h.Service.VenueForEdit(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "forms/venue", &web.Page{Form: forms.VenueFormFrom(venue), ID: id, Data: venue})
}

func (h *Handler) EditVenue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	target := fmt.Sprintf("/venues/%d", id)

	form, err := forms.ParseVenue(r)
	if err == nil {
		venue := form.Venue()
		if err = h.Service.UpdateVenue(r.Context(), id, venue); err == nil {
			h.submitted(w, r, http.StatusOK, fmt.Sprintf("Venue %s was successfully updated!", venue.Name), target, venue)
			return
		}
	}
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.Logger.Warn("HTTP", fmt.Sprintf("update venue %d: %v", id, err))
	h.rejected(w, r, err, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name), target)
}

// DeleteVenue answers 204 with no body; the venue's shows go with it.
func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if err := h.Service.DeleteVenue(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) VenueQR(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		h.NotFound(w, r)
		return
	}
	if _, err := h.Service.VenueForEdit(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	h.shareCode(w, r, fmt.Sprintf("/venues/%d", id))
}

func (h *Handler) shareCode(w http.ResponseWriter, r *http.Request, path string) {
	png, err := h.QR.ListingPNG(path)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
