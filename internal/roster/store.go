// Package roster holds the in-memory project roster the matcher runs
// against. The engine core is stateless; the dashboard backend owns durable
// storage, so this store only ever lives for the process lifetime.
package roster

import (
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Callmewookie65/planboard/internal/models"
)

// Store is a mutex-guarded roster snapshot. List returns copies, so callers
// can hand the slice to the matcher without coordination.
type Store struct {
	mu       sync.RWMutex
	projects []models.Project
}

func NewStore() *Store {
	return &Store{}
}

// Add inserts a project, assigning a short unique id when the caller did not
// provide one, and returns the stored value.
func (s *Store) Add(p models.Project) models.Project {
	if p.ID == "" {
		p.ID = uuid.New().String()[:8]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, p)
	return p
}

// Replace swaps the entire roster.
func (s *Store) Replace(projects []models.Project) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append([]models.Project(nil), projects...)
}

// List returns a snapshot of the roster.
func (s *Store) List() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Project(nil), s.projects...)
}

// Len reports the roster size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.projects)
}

type seedFile struct {
	Projects []models.Project `yaml:"projects"`
}

// LoadSeed reads a YAML roster seed file.
func LoadSeed(path string) ([]models.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse roster seed: %w", err)
	}
	return f.Projects, nil
}
