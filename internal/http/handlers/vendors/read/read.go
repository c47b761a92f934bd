// Package read реализует HTTP-обработчик для получения поставщика по uid.
//
// Handler извлекает uid из URL-параметров, вызывает бизнес-логику чтения
// и возвращает данные поставщика с разрешёнными фирмами в JSON-формате.
// Некорректный uid даёт 400, отсутствующая запись — 404.
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

// Service описывает интерфейс бизнес-логики чтения поставщика.
type Service interface {
	Read(ctx context.Context, vendorUID string) (*models.Vendor, error)
}

// Handler обрабатывает запросы на получение поставщика по уникальному идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики для получения поставщика по uid
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение поставщика по uid.
//
// Выполняет:
// - Парсинг и проверку uid из URL.
// - Вызов бизнес-логики для чтения поставщика.
// - Формирование JSON-ответа с данными или ошибкой.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.vendor.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid vendor id"))
		return
	}

	res, err := h.service.Read(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrVendorNotFound) {
			log.Error("vendor not found", sl.Err(err))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("vendor not found"))
			return
		}
		log.Error("failed to read vendor", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read vendor"))
		return
	}

	log.Info("success to read vendor", slog.String("vendor_uid", res.UID))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"vendor": res,
	}))
}
