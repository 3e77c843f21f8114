// Package api wires the chi routes for the directory pages. Every page renders HTML
// unless the request's Accept header asks for application/json.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fyyur/internal/db"
	"fyyur/internal/directory"
	"fyyur/internal/flash"
	"fyyur/internal/forms"
	"fyyur/internal/logger"
	"fyyur/internal/qr"
	"fyyur/internal/utils"
	"fyyur/internal/web"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	Service  *directory.Service
	Renderer *web.Renderer
	Flash    flash.Store
	QR       *qr.Generator
	Parser   forms.TimeParser
	DB       Pinger
	Logger   *logger.Logger
}

// NewHandler wires the required collaborators. Flash defaults to an in-memory store;
// QR, Parser and DB are set by the caller.
func NewHandler(svc *directory.Service, renderer *web.Renderer, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{
		Service:  svc,
		Renderer: renderer,
		Flash:    flash.NewMemoryStore(flash.DefaultTTL),
		Logger:   log,
	}
}

// Router builds the full chi router with middleware and the 404 page.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(h.Logger))
	r.Use(h.Recoverer)
	r.NotFound(h.NotFound)

	h.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers the page routes on a chi router
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Home)
	r.Get("/healthz", h.Health)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", h.ListVenues)
		r.Post("/search", h.SearchVenues)
		r.Get("/create", h.CreateVenueForm)
		r.Post("/create", h.CreateVenue)
		r.Route("/{id:[0-9]+}", func(r chi.Router) {
			r.Get("/", h.ShowVenue)
			r.Delete("/", h.DeleteVenue)
			r.Get("/edit", h.EditVenueForm)
			r.Post("/edit", h.EditVenue)
			r.Get("/qr.png", h.VenueQR)
		})
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", h.ListArtists)
		r.Post("/search", h.SearchArtists)
		r.Get("/create", h.CreateArtistForm)
		r.Post("/create", h.CreateArtist)
		r.Route("/{id:[0-9]+}", func(r chi.Router) {
			r.Get("/", h.ShowArtist)
			r.Get("/edit", h.EditArtistForm)
			r.Post("/edit", h.EditArtist)
			r.Get("/qr.png", h.ArtistQR)
		})
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", h.ListShows)
		r.Get("/create", h.CreateShowForm)
		r.Post("/create", h.CreateShow)
	})
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// page renders name as HTML, or data wrapped in the JSON envelope.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, status int, name string, p *web.Page) {
	if utils.WantsJSON(r) {
		utils.WriteJSON(w, status, utils.SuccessResponse(http.StatusText(status), p.Data))
		return
	}
	if p.Flashes == nil {
		p.Flashes = h.popFlashes(w, r)
	}
	if err := h.Renderer.Render(w, status, name, p); err != nil {
		h.Logger.Error("HTTP", fmt.Sprintf("render %s: %v", name, err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	if utils.WantsJSON(r) {
		utils.WriteJSON(w, http.StatusNotFound, utils.ErrorResponse("Not Found", "not_found"))
		return
	}
	h.page(w, r, http.StatusNotFound, "errors/404", &web.Page{})
}

func (h *Handler) ServerError(w http.ResponseWriter, r *http.Request) {
	if utils.WantsJSON(r) {
		utils.WriteJSON(w, http.StatusInternalServerError, utils.ErrorResponse("Server Error", "internal"))
		return
	}
	h.page(w, r, http.StatusInternalServerError, "errors/500", &web.Page{Flashes: []string{}})
}

// fail answers a read endpoint: 404 for missing records, 500 for anything else.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, db.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.Logger.Error("HTTP", fmt.Sprintf("%s %s: %v", r.Method, r.URL.Path, err))
	h.ServerError(w, r)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if h.DB != nil {
		if err := h.DB.Ping(r.Context()); err != nil {
			h.Logger.Error("DATABASE", fmt.Sprintf("health check failed: %v", err))
			utils.WriteJSON(w, http.StatusServiceUnavailable, utils.ErrorResponse("database unavailable", "unavailable"))
			return
		}
	}
	utils.WriteJSON(w, http.StatusOK, utils.SuccessResponse("ok", nil))
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Service.Counts(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.page(w, r, http.StatusOK, "pages/home", &web.Page{Data: counts})
}
