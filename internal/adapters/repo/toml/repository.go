package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/toah-cli/internal/domain"
	"github.com/bnema/toah-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ToursPathKey = "tours.path"
	ConfigDir    = ".toah"

	toursFile       = "tours.toml"
	toursFileMode   = 0o600
	toursDirMode    = 0o700
	tempFilePattern = ".tours-*.toml.tmp"
)

// Repository keeps solved tours in a single TOML file. Repositories opened on
// the same path share one lock.
type Repository struct {
	path string
	lock *sync.RWMutex
}

var _ ports.TourRepository = (*Repository)(nil)

var fileLocks sync.Map

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	path, err := resolveToursPath(cfg)
	if err != nil {
		return nil, err
	}

	lock, _ := fileLocks.LoadOrStore(path, &sync.RWMutex{})
	return &Repository{path: path, lock: lock.(*sync.RWMutex)}, nil
}

// resolveToursPath reads ~/.toah/config.toml into cfg when present and returns
// the absolute history path.
func resolveToursPath(cfg *viper.Viper) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	cfg.SetConfigName("config")
	cfg.SetConfigType("toml")
	cfg.AddConfigPath(filepath.Join(homeDir, ConfigDir))
	cfg.SetDefault(ToursPathKey, filepath.Join(homeDir, ConfigDir, toursFile))

	var notFound viper.ConfigFileNotFoundError
	if err := cfg.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return "", fmt.Errorf("read config file: %w", err)
	}

	path := cfg.GetString(ToursPathKey)
	if path == "" {
		return "", errors.New("tours path is empty")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve tours path: %w", err)
	}

	return abs, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Save(ctx context.Context, tour domain.Tour) error {
	if err := tour.Validate(); err != nil {
		return fmt.Errorf("invalid tour: %w", err)
	}

	return r.update(ctx, func(file *fileSchema) {
		file.upsert(newTourSchema(tour))
	})
}

func (r *Repository) GetByID(ctx context.Context, id domain.TourID) (domain.Tour, error) {
	var tour domain.Tour
	err := r.view(ctx, func(file fileSchema) error {
		entry, ok := file.find(id)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrTourNotFound, id)
		}

		var err error
		tour, err = entry.tour()
		return err
	})

	return tour, err
}

func (r *Repository) List(ctx context.Context) ([]domain.Tour, error) {
	var tours []domain.Tour
	err := r.view(ctx, func(file fileSchema) error {
		tours = make([]domain.Tour, 0, len(file.Tours))
		for _, entry := range file.Tours {
			tour, err := entry.tour()
			if err != nil {
				return err
			}
			tours = append(tours, tour)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return tours, nil
}

func (r *Repository) view(ctx context.Context, fn func(fileSchema) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	file, err := r.load()
	if err != nil {
		return err
	}

	return fn(file)
}

// update loads the file, applies fn and writes the result back while holding
// the write lock. A context canceled before the write leaves the file as is.
func (r *Repository) update(ctx context.Context, fn func(*fileSchema)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	file, err := r.load()
	if err != nil {
		return err
	}

	fn(&file)

	if err := ctx.Err(); err != nil {
		return err
	}

	file.Version = currentSchemaVersion
	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode tours file: %w", err)
	}

	return replaceFile(r.path, data)
}

func (r *Repository) load() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return fileSchema{Version: currentSchemaVersion}, nil
	}
	if err != nil {
		return fileSchema{}, fmt.Errorf("read tours file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode tours file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}

	return file, nil
}

// replaceFile writes data next to path and renames it into place, so readers
// never see a partly written history.
func replaceFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, toursDirMode); err != nil {
		return fmt.Errorf("create tours directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp tours file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(toursFileMode); err != nil {
		return fmt.Errorf("chmod temp tours file: %w", err)
	}
	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("write temp tours file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp tours file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace tours file: %w", err)
	}

	return nil
}
