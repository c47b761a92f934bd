// Package upload реализует HTTP-обработчик загрузки файлов.
//
// Обработчик принимает multipart-форму с полем image, сохраняет файл
// в каталог загрузок и возвращает путь, по которому файл доступен
// через статическую раздачу /uploads.
package upload

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/vendor-registry/internal/http/response"
	"github.com/magabrotheeeer/vendor-registry/internal/lib/sl"
)

// maxUploadSize ограничивает размер принимаемой multipart-формы.
const maxUploadSize = 10 << 20 // 10 MiB

// Service описывает интерфейс сохранения загруженного файла.
type Service interface {
	Save(file io.Reader, originalName string) (string, error)
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
	const op = "handlers.upload"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Error("failed to parse multipart form", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid multipart form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		log.Error("missing file field image", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing file field image"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	path, err := h.service.Save(file, header.Filename)
	if err != nil {
		log.Error("failed to store file", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to store file"))
		return
	}

	log.Info("file uploaded", slog.String("path", path))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"path":    path,
		"message": "file uploaded successfully",
	}))
}
