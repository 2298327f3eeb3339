package storage

import (
	"io"
	"log"
	"net/http"

	"inkwell/config"
)

// StorageAPI is the media store for uploaded post images.
type StorageAPI interface {
	Save(path string, reader io.Reader) (int64, error)
	Serve(path string, request *http.Request, writer http.ResponseWriter)
	Delete(path string) error
}

var mediaStorage StorageAPI

func Init() {
	if config.S3_BUCKET != "" {
		log.Printf("Media storage: S3 bucket %s", config.S3_BUCKET)
		mediaStorage = NewS3Storage(config.S3_BUCKET, config.S3_PREFIX)
		return
	}
	log.Printf("Media storage: local dir %s", config.MEDIA_DIR)
	mediaStorage = NewDiskStorage(config.MEDIA_DIR)
}

func Get() StorageAPI {
	return mediaStorage
}
