package model

import "strings"

// Checklist is the root of the domain model: a stable identifier, a display
// name, and an ordered, non-empty mapping of section id -> Section. It is
// immutable once built by the loader and lives for one compilation run.
type Checklist struct {
	ID       string
	Name     string
	Sections *OrderedMap[*Section]
}

// Validate re-asserts the invariants of the whole tree: a non-empty id
// and name, at least one section, and every section's own invariants
// (which recurse into its questions).
func (c *Checklist) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return invalidMetadata("<checklist>", "checklist id must not be empty")
	}
	if strings.TrimSpace(c.Name) == "" {
		return invalidMetadata(c.ID, "checklist name must not be empty")
	}
	if c.Sections == nil || c.Sections.Len() == 0 {
		return invalidMetadata(c.ID, "checklist must contain at least one section")
	}
	for _, key := range c.Sections.Keys() {
		s, _ := c.Sections.Get(key)
		if s.ID != key {
			return invalidMetadata(c.ID, "section key %q does not match child id %q", key, s.ID)
		}
		if err := s.Validate(c.ID); err != nil {
			return err
		}
	}
	return nil
}
