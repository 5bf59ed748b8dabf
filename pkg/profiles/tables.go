package profiles

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/rooms.yaml data/cave_profiles.yaml data/pits.yaml data/vaults.yaml data/races.yaml
var defaultData embed.FS

// Tables bundles every read-only data table the director and builders
// consult at generation time. Builder functions cannot round-trip through
// YAML, so RoomProfile and CaveProfile name a builder kind rather than a
// function pointer; the director switches on that kind to invoke the right
// builder.
type Tables struct {
	RoomTables   map[string][]RoomProfile `yaml:"room_tables"`
	CaveProfiles []CaveProfile            `yaml:"cave_profiles"`
	Pits         []PitProfile             `yaml:"pits"`
	Vaults       []Vault                  `yaml:"vaults"`
	Races        []RaceProfile            `yaml:"races"`
}

// Default loads the generator's built-in data tables, embedded at compile
// time from pkg/profiles/data.
func Default() (*Tables, error) {
	rooms, err := defaultData.ReadFile("data/rooms.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded rooms table: %w", err)
	}
	caves, err := defaultData.ReadFile("data/cave_profiles.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded cave profiles: %w", err)
	}
	pits, err := defaultData.ReadFile("data/pits.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded pits table: %w", err)
	}
	vaults, err := defaultData.ReadFile("data/vaults.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded vaults table: %w", err)
	}
	races, err := defaultData.ReadFile("data/races.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded races table: %w", err)
	}

	t := &Tables{}
	if err := yaml.Unmarshal(rooms, &t.RoomTables); err != nil {
		return nil, fmt.Errorf("parsing rooms table: %w", err)
	}
	if err := yaml.Unmarshal(caves, &t.CaveProfiles); err != nil {
		return nil, fmt.Errorf("parsing cave profiles: %w", err)
	}
	if err := yaml.Unmarshal(pits, &t.Pits); err != nil {
		return nil, fmt.Errorf("parsing pits table: %w", err)
	}
	if err := yaml.Unmarshal(vaults, &t.Vaults); err != nil {
		return nil, fmt.Errorf("parsing vaults table: %w", err)
	}
	if err := yaml.Unmarshal(races, &t.Races); err != nil {
		return nil, fmt.Errorf("parsing races table: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validating embedded tables: %w", err)
	}
	return t, nil
}

// LoadTables reads a replacement table file from disk. Any table section the
// file omits falls back to the built-in default for that section, so an
// override can replace just the vaults, say, without restating everything
// else.
func LoadTables(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tables file: %w", err)
	}
	return LoadTablesFromBytes(data)
}

// LoadTablesFromBytes parses a replacement table document from a byte slice,
// layering it over the built-in defaults. Useful for tests and for
// programmatic table construction.
func LoadTablesFromBytes(data []byte) (*Tables, error) {
	t, err := Default()
	if err != nil {
		return nil, err
	}

	var overlay Tables
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if len(overlay.RoomTables) > 0 {
		t.RoomTables = overlay.RoomTables
	}
	if len(overlay.CaveProfiles) > 0 {
		t.CaveProfiles = overlay.CaveProfiles
	}
	if len(overlay.Pits) > 0 {
		t.Pits = overlay.Pits
	}
	if len(overlay.Vaults) > 0 {
		t.Vaults = overlay.Vaults
	}
	if len(overlay.Races) > 0 {
		t.Races = overlay.Races
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return t, nil
}

// Validate checks structural invariants the rest of the package relies on
// without further nil/empty checks: every cave profile's room_table must
// resolve, exactly one cave profile must be the unconditional fallback, and
// every table that feeds a random selection must be non-empty.
func (t *Tables) Validate() error {
	if len(t.CaveProfiles) == 0 {
		return fmt.Errorf("cave_profiles: must not be empty")
	}
	fallbacks := 0
	for i, cp := range t.CaveProfiles {
		if cp.Fallback {
			fallbacks++
		}
		if cp.RoomTableRef != "" {
			if _, ok := t.RoomTables[cp.RoomTableRef]; !ok {
				return fmt.Errorf("cave_profiles[%d] %q: room_table %q not found", i, cp.Name, cp.RoomTableRef)
			}
		}
	}
	if fallbacks != 1 {
		return fmt.Errorf("cave_profiles: exactly one profile must set fallback: true, found %d", fallbacks)
	}
	if len(t.Pits) == 0 {
		return fmt.Errorf("pits: must not be empty")
	}
	if len(t.Races) == 0 {
		return fmt.Errorf("races: must not be empty")
	}
	for name, table := range t.RoomTables {
		if len(table) == 0 {
			return fmt.Errorf("room_tables[%s]: must not be empty", name)
		}
	}
	return nil
}

// Fallback returns the table's unconditional last-resort cave profile.
// Validate guarantees exactly one exists, so callers may treat the returned
// error as a programmer error rather than a runtime condition.
func (t *Tables) Fallback() (CaveProfile, error) {
	for _, cp := range t.CaveProfiles {
		if cp.Fallback {
			return cp, nil
		}
	}
	return CaveProfile{}, fmt.Errorf("no fallback cave profile configured")
}

// RaceByName looks up a race by name, returning false if absent.
func (t *Tables) RaceByName(name string) (RaceProfile, bool) {
	for _, r := range t.Races {
		if r.Name == name {
			return r, true
		}
	}
	return RaceProfile{}, false
}
