package services

import (
	"errors"
	"time"

	"github.com/JonFRutan/Orbital/database"
	"github.com/JonFRutan/Orbital/models"
)

var ErrNotFound = errors.New("system not found")

// SystemService - бизнес-операции над списком систем. Состояние между
// запросами не хранится: каждый вызов читает файл заново.
type SystemService struct {
	store *database.Store
}

func NewSystemService(store *database.Store) *SystemService {
	return &SystemService{store: store}
}

// List returns every published system in insertion order.
func (s *SystemService) List() ([]models.System, error) {
	return s.store.Load()
}

// Publish appends a new system built from input, applying defaults for
// absent fields. The code payload is stored verbatim, whatever its shape.
func (s *SystemService) Publish(input models.PublishInput) (models.System, error) {
	now := time.Now()
	system := models.System{
		ID:          now.UnixMilli(),
		Name:        orDefault(input.Name, models.DefaultName),
		Composer:    orDefault(input.Composer, models.DefaultComposer),
		Description: orDefault(input.Desc, models.DefaultDescription),
		Code:        input.Code,
		Hex:         orDefault(input.Hex, models.DefaultHex),
		Clicks:      0,
		Date:        now.Format("2006-01-02"),
	}

	err := s.store.Update(func(systems []models.System) ([]models.System, error) {
		return append(systems, system), nil
	})
	if err != nil {
		return models.System{}, err
	}
	return system, nil
}

// Click increments the click counter of the first system whose id matches
// and returns the updated record. Unknown id -> ErrNotFound, no write.
func (s *SystemService) Click(id int64) (models.System, error) {
	var updated models.System
	err := s.store.Update(func(systems []models.System) ([]models.System, error) {
		for i := range systems {
			if systems[i].ID == id {
				systems[i].Clicks++
				updated = systems[i]
				return systems, nil
			}
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return models.System{}, err
	}
	return updated, nil
}

func orDefault(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
