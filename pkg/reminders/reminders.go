// Package reminders loads reminder definitions from YAML files.
//
// A reminder file looks like:
//
//	reminders:
//	  - label: tea
//	    after: { minutes: 3 }
//	  - label: stand up
//	    after: { hours: 1, minutes: 30 }
//
// Offsets are plain numbers per unit field; no unit strings are parsed.
package reminders

import (
	"bytes"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/quanta/pkg/quantity"
	"github.com/aretw0/quanta/pkg/units"
)

var (
	ErrNoReminders = errors.New("no reminder files matched")
	ErrEmptyLabel  = errors.New("reminder label cannot be empty")
)

// Offset is a delay split across calendar units. Fields add up.
type Offset struct {
	Days    float64 `yaml:"days"`
	Hours   float64 `yaml:"hours"`
	Minutes float64 `yaml:"minutes"`
	Seconds float64 `yaml:"seconds"`
}

// Time returns the offset as a time quantity.
func (o Offset) Time() quantity.Time {
	return quantity.Sum(
		units.Days(o.Days),
		units.Hours(o.Hours),
		units.Minutes(o.Minutes),
		units.Seconds(o.Seconds),
	)
}

// Entry is one reminder.
type Entry struct {
	Label  string `yaml:"label"`
	After  Offset `yaml:"after"`
	Source string `yaml:"-"`
}

type file struct {
	Reminders []Entry `yaml:"reminders"`
}

// Decode reads one reminder document. Unknown fields are rejected.
func Decode(r io.Reader) ([]Entry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decoding reminders")
	}
	for i, e := range f.Reminders {
		if strings.TrimSpace(e.Label) == "" {
			return nil, errors.Wrapf(ErrEmptyLabel, "reminder #%d", i+1)
		}
	}
	return f.Reminders, nil
}

// Load expands each glob pattern (doublestar syntax, "**" included) and
// decodes every matching file in lexical path order. Each entry records the
// file it came from. A pattern that matches nothing is an error.
func Load(patterns ...string) ([]Entry, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "expanding %q", pattern)
		}
		if len(matches) == 0 {
			return nil, errors.Wrapf(ErrNoReminders, "pattern %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)

	var all []Entry
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", path)
		}
		entries, err := Decode(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrapf(err, "in %s", path)
		}
		for i := range entries {
			entries[i].Source = path
		}
		all = append(all, entries...)
	}
	return all, nil
}
