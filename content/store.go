// Package content is the read-only catalogue of maxims, learning modules,
// badges and level bands.
package content

import (
	"leximax/models"

	"github.com/samber/lo"
)

// Store exposes the static tables. It never mutates them; every accessor
// hands out copies.
type Store struct {
	maxims  []models.LegalMaxim
	modules []models.LearningModule
	badges  []models.Badge
}

var defaultStore = New()

// Default returns the process-wide catalogue.
func Default() *Store {
	return defaultStore
}

func New() *Store {
	return &Store{
		maxims:  maxims,
		modules: buildModules(maxims),
		badges:  badges,
	}
}

func (s *Store) Maxims() []models.LegalMaxim {
	return append([]models.LegalMaxim(nil), s.maxims...)
}

func (s *Store) Maxim(id string) (models.LegalMaxim, bool) {
	return lo.Find(s.maxims, func(m models.LegalMaxim) bool { return m.ID == id })
}

func (s *Store) Modules() []models.LearningModule {
	return lo.Map(s.modules, func(m models.LearningModule, _ int) models.LearningModule { return m.Clone() })
}

// Module looks a module up by its own id or by the id of its maxim.
func (s *Store) Module(id string) (models.LearningModule, bool) {
	m, ok := lo.Find(s.modules, func(m models.LearningModule) bool { return m.ID == id || m.MaximID == id })
	if !ok {
		return models.LearningModule{}, false
	}
	return m.Clone(), true
}

func (s *Store) Badges() []models.Badge {
	return append([]models.Badge(nil), s.badges...)
}

func (s *Store) Badge(id string) (models.Badge, bool) {
	return lo.Find(s.badges, func(b models.Badge) bool { return b.ID == id })
}

func (s *Store) Levels() []models.Level {
	return append([]models.Level(nil), models.Levels...)
}

// Categories returns the distinct categories among the given maxim ids.
// Unknown ids are skipped.
func (s *Store) Categories(maximIDs []string) []models.MaximCategory {
	var cats []models.MaximCategory
	for _, id := range maximIDs {
		if m, ok := s.Maxim(id); ok {
			cats = append(cats, m.Category)
		}
	}
	return lo.Uniq(cats)
}
