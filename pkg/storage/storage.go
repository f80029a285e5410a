// Package storage defines where run reports are saved.
package storage

import (
	"context"
	"io"
)

// Storage saves a stream under the given file name.
type Storage interface {
	SaveFile(ctx context.Context, src io.Reader, dstFilename string, fileSize int64) error
}
