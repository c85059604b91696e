// Package preset loads read-only events shared by every couple (holidays,
// app-wide reminders) from YAML files.
package preset

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	v1 "github.com/tandem-app/tandem/internal/api/v1"
	"github.com/tandem-app/tandem/internal/core/recurrence"
)

// IDPrefix marks preset events so they cannot collide with stored event ids.
const IDPrefix = "preset:"

// Preset is one read-only event definition.
type Preset struct {
	Name        string
	Title       string
	Description string
	Color       string
	Start       time.Time
	End         *time.Time
	AllDay      bool
	Recurrence  *recurrence.Rule
	Fingerprint string // SHA-256 of the raw YAML file; computed at load time
}

// rawPreset is the on-disk YAML shape. start and end accept YYYY-MM-DD
// (midnight in the calendar timezone) or RFC 3339.
type rawPreset struct {
	Name        string             `yaml:"name"`
	Title       string             `yaml:"title"`
	Description string             `yaml:"description"`
	Color       string             `yaml:"color"`
	Start       string             `yaml:"start"`
	End         string             `yaml:"end"`
	AllDay      bool               `yaml:"all_day"`
	Recurrence  *recurrence.Fields `yaml:"recurrence"`
}

// Event returns the preset as an event of the given couple.
func (p Preset) Event(coupleID string) *v1.Event {
	return &v1.Event{
		ID:          IDPrefix + p.Name,
		CoupleID:    coupleID,
		Title:       p.Title,
		Description: p.Description,
		Color:       p.Color,
		Start:       p.Start,
		End:         p.End,
		AllDay:      p.AllDay,
		Recurrence:  p.Recurrence,
		ReadOnly:    true,
	}
}

// Repository defines the interface for loading presets.
type Repository interface {
	// Get returns the preset with the given name, or an error if not found.
	Get(ctx context.Context, name string) (*Preset, error)

	// GetPresets returns all presets ordered by name.
	GetPresets() []Preset
}

// FileSystemRepository loads presets from *.yaml files in a directory.
// Each file contains exactly one preset at the top level. Presets are loaded
// once at startup and cached in memory.
type FileSystemRepository struct {
	dir     string
	loc     *time.Location
	presets map[string]Preset // keyed by Name
}

// NewFileSystemRepository creates a new repository and eagerly loads all
// presets from dir, reading date-only values in loc. Returns an error if any
// preset file is malformed or its recurrence rule is invalid.
func NewFileSystemRepository(dir string, loc *time.Location) (*FileSystemRepository, error) {
	if loc == nil {
		loc = time.UTC
	}
	repo := &FileSystemRepository{
		dir:     dir,
		loc:     loc,
		presets: make(map[string]Preset),
	}
	if err := repo.load(); err != nil {
		return nil, err
	}
	return repo, nil
}

func (r *FileSystemRepository) load() error {
	if r.dir == "" {
		return nil
	}
	info, err := os.Stat(r.dir)
	if os.IsNotExist(err) {
		return nil // zero presets configured
	}
	if err != nil {
		return fmt.Errorf("preset dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("preset path %q is not a directory", r.dir)
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return fmt.Errorf("reading preset dir: %w", err)
	}

	for _, e := range entries {
		if e.IsDir() || (!strings.HasSuffix(e.Name(), ".yaml") && !strings.HasSuffix(e.Name(), ".yml")) {
			continue
		}

		path := filepath.Join(r.dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading preset file %s: %w", path, err)
		}

		var raw rawPreset
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parsing preset file %s: %w", path, err)
		}
		if raw.Name == "" {
			continue // skip empty / comment-only files
		}
		if _, exists := r.presets[raw.Name]; exists {
			return fmt.Errorf("preset %q: duplicate preset name (check multiple YAML files)", raw.Name)
		}

		p, err := r.build(raw)
		if err != nil {
			return fmt.Errorf("preset %q: %w", raw.Name, err)
		}
		p.Fingerprint = fmt.Sprintf("%x", sha256.Sum256(data))
		r.presets[raw.Name] = p
	}
	return nil
}

func (r *FileSystemRepository) build(raw rawPreset) (Preset, error) {
	p := Preset{
		Name:        raw.Name,
		Title:       raw.Title,
		Description: raw.Description,
		Color:       raw.Color,
		AllDay:      raw.AllDay,
	}
	if p.Title == "" {
		p.Title = raw.Name
	}

	if raw.Start == "" {
		return Preset{}, fmt.Errorf("start must not be empty")
	}
	start, err := r.parseTime(raw.Start)
	if err != nil {
		return Preset{}, fmt.Errorf("invalid start: %w", err)
	}
	p.Start = start

	if raw.End != "" {
		end, err := r.parseTime(raw.End)
		if err != nil {
			return Preset{}, fmt.Errorf("invalid end: %w", err)
		}
		if end.Before(start) {
			return Preset{}, fmt.Errorf("end must not be before start")
		}
		p.End = &end
	}

	if raw.Recurrence != nil {
		rule, err := raw.Recurrence.Rule()
		if err != nil {
			return Preset{}, err
		}
		if errs := recurrence.Validate(rule); len(errs) > 0 {
			return Preset{}, fmt.Errorf("invalid recurrence: %s", strings.Join(errs, "; "))
		}
		p.Recurrence = &rule
	}
	return p, nil
}

func (r *FileSystemRepository) parseTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(recurrence.DateLayout, s, r.loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q must be YYYY-MM-DD or RFC 3339", s)
	}
	return t, nil
}

// Get returns the preset with the given name, or an error if not found.
func (r *FileSystemRepository) Get(_ context.Context, name string) (*Preset, error) {
	p, ok := r.presets[name]
	if !ok {
		return nil, fmt.Errorf("preset %q not found", name)
	}
	return &p, nil
}

// GetPresets returns all presets ordered by name.
func (r *FileSystemRepository) GetPresets() []Preset {
	presets := make([]Preset, 0, len(r.presets))
	for _, p := range r.presets {
		presets = append(presets, p)
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].Name < presets[j].Name })
	return presets
}
