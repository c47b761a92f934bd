// Package create реализует HTTP-обработчик создания фирмы.
//
// Фирма привязывается к поставщику, прошедшему аутентификацию:
// его uid берётся из контекста запроса, заполненного JWT middleware.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/vendor-registry/internal/http/middlewarectx"
	"github.com/magabrotheeeer/vendor-registry/internal/http/response"
	"github.com/magabrotheeeer/vendor-registry/internal/lib/sl"
)

// Request — входные данные для создания фирмы
type Request struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// Service описывает интерфейс бизнес-логики создания фирмы.
type Service interface {
	Create(ctx context.Context, vendorUID, name string) (string, error)
}

type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.firm.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	vendorUID, ok := r.Context().Value(middlewarectx.VendorUID).(string)
	if !ok || vendorUID == "" {
		log.Error("vendor uid not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	uid, err := h.service.Create(r.Context(), vendorUID, req.Name)
	if err != nil {
		log.Error("failed to create firm", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create firm"))
		return
	}

	log.Info("firm created", slog.String("firm_uid", uid))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"uid":  uid,
		"name": req.Name,
	}))
}
