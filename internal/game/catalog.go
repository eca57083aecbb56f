package game

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed levels/catalog.yaml
var catalogYAML []byte

// ErrLevelOutOfRange is returned for catalog access beyond the last level.
// The round treats it as fatal to the playthrough and goes straight to the
// game-over phase.
var ErrLevelOutOfRange = errors.New("game: level index out of range")

// Catalog is the read-only ordered sequence of levels.
type Catalog struct {
	levels []Level
}

// LoadCatalog parses and validates the embedded level catalog.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// ParseCatalog builds a catalog from YAML level data, validating every level.
func ParseCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Levels []Level `yaml:"levels"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("game: parsing catalog: %w", err)
	}
	if len(doc.Levels) == 0 {
		return nil, errors.New("game: catalog has no levels")
	}
	for i, lvl := range doc.Levels {
		if err := validateLevel(lvl); err != nil {
			return nil, fmt.Errorf("game: level %d (index %d): %w", lvl.ID, i, err)
		}
	}
	return &Catalog{levels: doc.Levels}, nil
}

func validateLevel(lvl Level) error {
	if lvl.ID <= 0 {
		return errors.New("id must be positive")
	}
	if lvl.TotalMs <= 0 {
		return errors.New("total duration must be positive")
	}
	for _, a := range lvl.Actions {
		if a.Character < 0 || a.Character >= CharacterCount {
			return fmt.Errorf("character %d out of range", a.Character)
		}
		if a.StartMs < 0 {
			return fmt.Errorf("negative start time %d", a.StartMs)
		}
		if a.DurationMs <= 0 {
			return fmt.Errorf("non-positive duration %d", a.DurationMs)
		}
		if a.EndMs() > lvl.TotalMs {
			return fmt.Errorf("action ending at %dms exceeds total duration %dms", a.EndMs(), lvl.TotalMs)
		}
	}
	return nil
}

// Count returns the number of levels.
func (c *Catalog) Count() int {
	return len(c.levels)
}

// Level returns the level at the given 0-based index.
func (c *Catalog) Level(index int) (Level, error) {
	if index < 0 || index >= len(c.levels) {
		return Level{}, fmt.Errorf("%w: %d of %d", ErrLevelOutOfRange, index, len(c.levels))
	}
	return c.levels[index], nil
}

// Levels returns all levels in order. The slice is shared; callers must not
// mutate it.
func (c *Catalog) Levels() []Level {
	return c.levels
}
