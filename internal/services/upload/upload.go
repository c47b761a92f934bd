// Package services содержит бизнес-логику сохранения загруженных файлов
// в локальный каталог, который сервер отдаёт статически по /uploads.
package services

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadService сохраняет файлы из multipart-запросов на диск.
type UploadService struct {
	dir string
	log *slog.Logger
}

// NewUploadService создает новый экземпляр UploadService и
// гарантирует существование каталога загрузок.
func NewUploadService(dir string, log *slog.Logger) (*UploadService, error) {
	const op = "upload.NewUploadService"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &UploadService{
		dir: dir,
		log: log,
	}, nil
}

// Dir возвращает каталог, в который сохраняются файлы.
func (s *UploadService) Dir() string {
	return s.dir
}

// Save записывает файл в каталог загрузок под именем с uuid-префиксом,
// сохраняя расширение оригинала. Возвращает путь, по которому файл
// доступен через статическую раздачу.
func (s *UploadService) Save(file io.Reader, originalName string) (string, error) {
	const op = "upload.Save"

	name := uuid.New().String() + filepath.Ext(originalName)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = dst.Close()
	}()

	if _, err = io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	path := "/uploads/" + name
	s.log.Info("stored uploaded file", slog.String("path", path))
	return path, nil
}
