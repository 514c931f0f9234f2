// Package storage guarda las fotos de tiendas en el disco local; Fiber las sirve
// como archivos estáticos bajo el prefijo público.
package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pankaj-shinde04/store-rating/internal/application/ports"
	"github.com/pankaj-shinde04/store-rating/internal/domain"
)

var errNotImage = domain.NewError(domain.ErrInvalidInput, "Only image files are allowed")

// imageExt tipos aceptados (detectados por contenido) y la extensión con la que se guardan.
var imageExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func sniff(data []byte) string {
	return strings.TrimSpace(strings.SplitN(http.DetectContentType(data), ";", 2)[0])
}

// LocalPhotoStorage implementa ports.PhotoStorage sobre un directorio.
type LocalPhotoStorage struct {
	dir       string
	urlPrefix string
	maxBytes  int64
	now       func() time.Time
}

// NewLocalPhotoStorage crea el directorio si no existe.
func NewLocalPhotoStorage(dir, urlPrefix string, maxBytes int64) (*LocalPhotoStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear %s: %w", dir, err)
	}
	return &LocalPhotoStorage{
		dir:       dir,
		urlPrefix: strings.TrimRight(urlPrefix, "/"),
		maxBytes:  maxBytes,
		now:       time.Now,
	}, nil
}

// Dir directorio raíz, para montar el handler estático.
func (s *LocalPhotoStorage) Dir() string { return s.dir }

// Validate el tipo se detecta por contenido; el Content-Type del cliente no se usa.
func (s *LocalPhotoStorage) Validate(up ports.Upload) error {
	if len(up.Data) == 0 {
		return errNotImage
	}
	if s.maxBytes > 0 && int64(len(up.Data)) > s.maxBytes {
		return domain.NewError(domain.ErrInvalidInput, "File too large").
			WithDetail(fmt.Sprintf("Photo must not exceed %d bytes", s.maxBytes))
	}
	if _, ok := imageExt[sniff(up.Data)]; !ok {
		return errNotImage
	}
	return nil
}

// NewName store-<unixms>-<uuid><ext>. El nombre del cliente no interviene: la extensión
// corresponde al tipo detectado, así el estático nunca sirve la foto como otro tipo.
func (s *LocalPhotoStorage) NewName(up ports.Upload) string {
	ext, ok := imageExt[sniff(up.Data)]
	if !ok {
		ext = ".jpg"
	}
	return fmt.Sprintf("store-%d-%s%s", s.now().UnixMilli(), uuid.NewString(), ext)
}

func (s *LocalPhotoStorage) URL(name string) string {
	return s.urlPrefix + "/" + name
}

// Save escribe en un temporal y renombra, así nunca queda un archivo a medias.
func (s *LocalPhotoStorage) Save(ctx context.Context, name string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("storage: temporal: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: escribir: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cerrar: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, filepath.Base(name))); err != nil {
		return fmt.Errorf("storage: renombrar: %w", err)
	}
	return nil
}

// Delete ignora URLs ajenas al prefijo y archivos ya borrados.
func (s *LocalPhotoStorage) Delete(url string) error {
	if !strings.HasPrefix(url, s.urlPrefix+"/") {
		return nil
	}
	name := filepath.Base(strings.TrimPrefix(url, s.urlPrefix+"/"))
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: borrar %s: %w", name, err)
	}
	return nil
}
