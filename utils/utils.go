package utils

import (
	"mime/multipart"

	"github.com/google/uuid"
)

func GetUUID() string {
	return uuid.New().String()
}

// SupportedImageTypes lists the MIME types the media host accepts.
var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ImageMimeType returns the declared MIME type of an uploaded file and
// whether it is supported.
func ImageMimeType(header *multipart.FileHeader) (string, bool) {
	mimeType := header.Header.Get("Content-Type")
	return mimeType, SupportedImageTypes[mimeType]
}
