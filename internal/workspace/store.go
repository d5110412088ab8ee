package workspace

import (
	"sort"
	"sync"

	"github.com/quillmoor/scout/internal/config"
	"github.com/quillmoor/scout/internal/logging"
	"github.com/quillmoor/scout/internal/skills"
)

// Store is the process-wide cache of discovered workspace state.
//
// The snapshot behind it is immutable; Reload builds a replacement and
// swaps it in under the write lock only after the rebuild succeeded, so
// readers either see the old state or the complete new one, never a
// partially rebuilt store.
type Store struct {
	disc *Discoverer

	mu   sync.RWMutex
	snap *Snapshot
}

// NewStore runs an initial discovery pass against the discoverer's root
// and returns the populated store.
func NewStore(disc *Discoverer) (*Store, error) {
	snap, err := disc.Discover()
	if err != nil {
		return nil, err
	}
	logging.Info("workspace loaded", "root", disc.Root, "projects", len(snap.Projects))
	return &Store{disc: disc, snap: snap}, nil
}

// Reload re-runs discovery against the same root. On failure the previous
// snapshot stays authoritative and the error is returned to the caller.
func (s *Store) Reload() error {
	snap, err := s.disc.Discover()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()

	logging.Info("workspace reloaded", "root", s.disc.Root, "projects", len(snap.Projects))
	return nil
}

// current returns the live snapshot under the read lock.
func (s *Store) current() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Root returns the workspace root the store scans.
func (s *Store) Root() string {
	return s.disc.Root
}

// Workspace returns the workspace record, or nil when none exists.
func (s *Store) Workspace() *config.WorkspaceConfig {
	return s.current().Workspace
}

// ProjectNames lists all discovered project names, sorted.
func (s *Store) ProjectNames() []string {
	snap := s.current()
	names := make([]string, 0, len(snap.Projects))
	for name := range snap.Projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Projects returns every project bundle, ordered by name.
func (s *Store) Projects() []*Project {
	snap := s.current()
	out := make([]*Project, 0, len(snap.Projects))
	for _, name := range sortedKeys(snap.Projects) {
		out = append(out, snap.Projects[name])
	}
	return out
}

// Project resolves a project by name using the tiered matcher: exact,
// case-insensitive, then unique substring. Ambiguous partial matches fail
// with the candidate list rather than guessing.
func (s *Store) Project(name string) (*Project, error) {
	snap := s.current()
	resolved, err := pick("project", mapKeys(snap.Projects), name)
	if err != nil {
		return nil, err
	}
	return snap.Projects[resolved], nil
}

// Concept resolves a concept within a project under the same tiered
// matching discipline as project lookup.
func (p *Project) Concept(name string) (string, config.Concept, error) {
	resolved, err := pick("concept", sortedKeys(p.Config.Concepts), name)
	if err != nil {
		return "", config.Concept{}, err
	}
	return resolved, p.Config.Concepts[resolved], nil
}

// Skill resolves a skill within the project's merged scope under the
// tiered matching discipline.
func (p *Project) Skill(topic string) (skills.Skill, error) {
	resolved, err := pick("skill", sortedKeys(p.Skills), topic)
	if err != nil {
		return skills.Skill{}, err
	}
	return p.Skills[resolved], nil
}

func mapKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func sortedKeys[V any](m map[string]V) []string {
	keys := mapKeys(m)
	sort.Strings(keys)
	return keys
}
