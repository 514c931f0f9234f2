package ports

import "context"

// Upload archivo recibido en una petición multipart.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// PhotoStorage puerto de salida para las fotos de tiendas.
// La aplicación elige el nombre; el adaptador decide dónde vive el archivo y su URL pública.
type PhotoStorage interface {
	// Validate rechaza archivos demasiado grandes o que no son imágenes.
	Validate(up Upload) error
	// NewName genera un nombre único; la extensión sale del tipo detectado en el contenido.
	NewName(up Upload) string
	// URL devuelve la URL pública con la que se guarda la foto en la tienda.
	URL(name string) string
	Save(ctx context.Context, name string, data []byte) error
	// Delete borra el archivo apuntado por una URL devuelta por URL; no falla si ya no existe.
	Delete(url string) error
}
