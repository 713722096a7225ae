package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/modeviz/model"
)

// FileStore keeps the state as indented JSON on disk.
type FileStore struct {
	Path          string
	DefaultOctave int
	Now           func() time.Time
}

func NewFileStore(path string, defaultOctave int) *FileStore {
	return &FileStore{Path: path, DefaultOctave: defaultOctave, Now: time.Now}
}

// Load falls back to defaults when the file is missing, unreadable JSON, or
// holds a root outside the vocabulary.
func (f *FileStore) Load(ctx context.Context) (model.State, error) {
	def := Default(f.DefaultOctave, f.Now())
	dat, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("error reading state file: %w", err)
	}

	var stored model.State
	if err := json.Unmarshal(dat, &stored); err != nil {
		return def, nil
	}
	res, _ := Merge(stored, def)
	return res, nil
}

// Save writes through a uniquely named temp file and renames it into place
// so readers never see a partial file.
func (f *FileStore) Save(ctx context.Context, s model.State) error {
	dat, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.Path)
	tmp := filepath.Join(dir, "."+uuid.New().String()+".tmp")
	if err := os.WriteFile(tmp, dat, 0o644); err != nil {
		return fmt.Errorf("error writing state file: %w", err)
	}
	if err := os.Rename(tmp, f.Path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("error replacing state file: %w", err)
	}
	return nil
}
