package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/vendor-registry/internal/http/response"
	"github.com/magabrotheeeer/vendor-registry/internal/lib/sl"
	"github.com/magabrotheeeer/vendor-registry/internal/models"
	"github.com/magabrotheeeer/vendor-registry/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения фирмы.
type Service interface {
	Read(ctx context.Context, firmUID string) (*models.Firm, error)
}

type Handler struct {
	log     *slog.Logger
	service Service
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.firm.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid firm id"))
		return
	}

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrFirmNotFound) {
			log.Error("firm not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("firm not found"))
			return
		}
		log.Error("failed to read firm", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read firm"))
		return
	}

	log.Info("success to read firm", slog.String("firm_uid", res.UID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"firm": res,
	}))
}
