package filestorage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const photoPrefix = "equipment-photos"

// FileStorage is the blob store gateway. Save returns the public URL
// of the stored object; Delete of a missing object is not an error.
type FileStorage interface {
	Save(ctx context.Context, key string, contentType string, file io.Reader) (string, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// PhotoKey builds the object key for an uploaded equipment photo. The
// uuid segment keeps keys unpredictable and unique per upload while
// the original filename stays recognizable.
func PhotoKey(originalFileName string) string {
	name := sanitizeFileName(originalFileName)
	return fmt.Sprintf("%s/%s-%s", photoPrefix, uuid.New().String(), name)
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "file"
	}
	return name
}
