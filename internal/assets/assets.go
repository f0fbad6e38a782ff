// Package assets manages the image files bound to content records: the
// per-type placeholder defaults, deterministic storage names, and the
// replace-on-upload / release-on-delete lifecycle.
package assets

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
)

// Kind identifies which record field an asset is bound to. Longreads carry
// three independently-bound assets (image, map, timeline), so kinds are per
// field, not per entity.
type Kind string

const (
	KindWorld        Kind = "world"
	KindLongRead     Kind = "longread"
	KindMap          Kind = "map"
	KindTimeline     Kind = "timeline"
	KindBlockContent Kind = "blockcontent"
	KindWorldObj     Kind = "worldobj"
)

// Placeholder file names, one per kind. A record whose link points at its
// placeholder owns no file on disk; placeholders are never deleted.
const (
	placeholderWorld        = "world_base.jpg"
	placeholderLongRead     = "QuestionMark.jpg"
	placeholderMap          = "map_base.jpg"
	placeholderTimeline     = "timeline_base.jpg"
	placeholderBlockContent = "font.jpg"
	placeholderWorldObj     = "worldobj_base.jpg"
)

// Store writes uploaded images into a directory and addresses them by a
// public URL prefix. The stored link for a record is always Prefix + "/" +
// the deterministic file name.
type Store struct {
	Dir    string // filesystem directory, e.g. staticFiles/images
	Prefix string // public prefix, e.g. /staticFiles/images
}

// NewStore creates the upload directory if needed.
func NewStore(dir, prefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{Dir: dir, Prefix: prefix}, nil
}

// Placeholder returns the public link of the default asset for a kind.
func (s *Store) Placeholder(kind Kind) string {
	return path.Join(s.Prefix, placeholderName(kind))
}

func placeholderName(kind Kind) string {
	switch kind {
	case KindWorld:
		return placeholderWorld
	case KindLongRead:
		return placeholderLongRead
	case KindMap:
		return placeholderMap
	case KindTimeline:
		return placeholderTimeline
	case KindBlockContent:
		return placeholderBlockContent
	case KindWorldObj:
		return placeholderWorldObj
	}
	return placeholderLongRead
}

// fileName is the deterministic storage name for a record's asset.
func fileName(kind Kind, id uint64) string {
	return fmt.Sprintf("%s%d.jpg", kind, id)
}

// Save writes an uploaded file under the deterministic name for (kind, id)
// and returns the public link. Nothing else is touched; on error the record
// must keep its previous link.
func (s *Store) Save(kind Kind, id uint64, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fileName(kind, id)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write asset file: %w", err)
	}

	return path.Join(s.Prefix, name), nil
}

// Release deletes the file behind a stored link unless the link is the
// placeholder for its kind. Failures are logged and swallowed: a leaked file
// is tolerable, a blocked deletion is not.
func (s *Store) Release(kind Kind, link string) {
	if link == "" || link == s.Placeholder(kind) {
		return
	}
	name := path.Base(link)
	if err := os.Remove(filepath.Join(s.Dir, name)); err != nil && !os.IsNotExist(err) {
		log.Printf("asset release failed for %s: %v", link, err)
	}
}
