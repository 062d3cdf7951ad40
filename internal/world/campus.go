// Package world holds the static campus configuration: the location graph
// and the weekly class timetable. Nothing in here is mutated at runtime.
package world

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Future-R/PrivateDerby/internal/domain/student"
)

//go:embed data/world.yaml
var defaultConfig []byte

// Connection is a directed travel edge to another location.
type Connection struct {
	To      string `yaml:"to" json:"to"`
	Minutes int    `yaml:"minutes" json:"minutes"`
}

// Location describes a place the student can occupy.
type Location struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Background  string       `yaml:"background" json:"background,omitempty"` // opaque to the engine
	Connections []Connection `yaml:"connections" json:"connections"`
}

// ScheduleEntry is one class slot on the weekday timetable.
// Start and End are minutes from midnight; End is exclusive.
type ScheduleEntry struct {
	Start   int             `yaml:"start" json:"start"`
	End     int             `yaml:"end" json:"end"`
	Subject student.Subject `yaml:"subject" json:"subject"`
}

type config struct {
	Locations []Location      `yaml:"locations"`
	Schedule  []ScheduleEntry `yaml:"schedule"`
}

// Campus is the loaded, validated world configuration.
type Campus struct {
	locations map[string]Location
	order     []string
	schedule  []ScheduleEntry
}

// Load parses and validates a campus configuration document.
func Load(data []byte) (*Campus, error) {
	var cfg config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse world config: %w", err)
	}
	if len(cfg.Locations) == 0 {
		return nil, fmt.Errorf("world config declares no locations")
	}

	c := &Campus{
		locations: make(map[string]Location, len(cfg.Locations)),
		schedule:  cfg.Schedule,
	}
	for _, loc := range cfg.Locations {
		if loc.ID == "" {
			return nil, fmt.Errorf("location %q has no id", loc.Name)
		}
		if _, dup := c.locations[loc.ID]; dup {
			return nil, fmt.Errorf("duplicate location id %q", loc.ID)
		}
		for _, conn := range loc.Connections {
			if conn.Minutes < 0 {
				return nil, fmt.Errorf("location %q: negative travel cost to %q", loc.ID, conn.To)
			}
		}
		c.locations[loc.ID] = loc
		c.order = append(c.order, loc.ID)
	}

	valid := make(map[student.Subject]bool, len(student.AllSubjects))
	for _, s := range student.AllSubjects {
		valid[s] = true
	}
	for _, entry := range cfg.Schedule {
		if !valid[entry.Subject] {
			return nil, fmt.Errorf("schedule entry %d-%d: unknown subject %q", entry.Start, entry.End, entry.Subject)
		}
		if entry.End <= entry.Start {
			return nil, fmt.Errorf("schedule entry for %s: end %d not after start %d", entry.Subject, entry.End, entry.Start)
		}
	}

	return c, nil
}

// Default returns the campus built from the embedded configuration.
// The embedded document is covered by tests, so a parse failure here is a
// build defect, not a runtime condition.
func Default() *Campus {
	c, err := Load(defaultConfig)
	if err != nil {
		panic("embedded world config invalid: " + err.Error())
	}
	return c
}

// Lookup returns the location for an id. The second result is false for
// unknown ids; callers must skip rather than crash on dangling edges.
func (c *Campus) Lookup(id string) (Location, bool) {
	loc, ok := c.locations[id]
	return loc, ok
}

// ConnectionsFrom returns the outgoing edges of a location in declaration
// order. Unknown ids yield nil.
func (c *Campus) ConnectionsFrom(id string) []Connection {
	loc, ok := c.locations[id]
	if !ok {
		return nil
	}
	return loc.Connections
}

// LocationIDs returns every location id in declaration order.
func (c *Campus) LocationIDs() []string {
	return c.order
}
