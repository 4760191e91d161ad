package database

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/JonFRutan/Orbital/models"

	"github.com/kjk/common/atomicfile"
)

var (
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
)

// Store владеет файлом базы данных: весь список систем читается и
// перезаписывается целиком, частичных записей нет.
type Store struct {
	path string
	mu   sync.Mutex
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Init creates the database file as an empty array if it doesn't exist yet.
func (s *Store) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	}
	if err := os.WriteFile(s.path, []byte("[]"), 0644); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return nil
}

// Load reads the whole document and returns the systems in stored order.
func (s *Store) Load() ([]models.System, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *Store) load() ([]models.System, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	var systems []models.System
	if err := json.Unmarshal(data, &systems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageRead, err)
	}
	return systems, nil
}

// Save rewrites the whole document. The temp-file rename keeps a crashed
// write from corrupting the previous contents.
func (s *Store) Save(systems []models.System) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(systems)
}

func (s *Store) save(systems []models.System) error {
	if systems == nil {
		systems = []models.System{}
	}
	data, err := json.MarshalIndent(systems, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	f, err := atomicfile.New(s.path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	defer f.RemoveIfNotClosed()
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrStorageWrite, err)
	}
	return nil
}

// Update держит мьютекс на весь цикл load-mutate-save, чтобы два
// конкурентных запроса не потеряли запись друг друга. Если fn вернула
// ошибку, файл не перезаписывается.
func (s *Store) Update(fn func([]models.System) ([]models.System, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	systems, err := s.load()
	if err != nil {
		return err
	}
	systems, err = fn(systems)
	if err != nil {
		return err
	}
	return s.save(systems)
}
