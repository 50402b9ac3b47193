package model

import "strings"

// Section is a group of top-level questions within a checklist.
type Section struct {
	ID           string
	Title        string
	Standard     string // optional standard text
	Instructions string // optional instructions
	NAOption     bool   // user may mark the whole section not applicable
	Required     bool
	Questions    *OrderedMap[*Question] // top-level questions, in order
}

// HasStandard reports whether s carries standard text.
func (s *Section) HasStandard() bool { return strings.TrimSpace(s.Standard) != "" }

// HasInstructions reports whether s carries instructions text.
func (s *Section) HasInstructions() bool { return strings.TrimSpace(s.Instructions) != "" }

// Validate checks that the section id is prefixed by its checklist,
// that every top-level question is itself named `{section_id}_` + a
// suffix, and that at least one top-level question exists.
func (s *Section) Validate(checklistID string) error {
	prefix := checklistID + "_"
	if !strings.HasPrefix(s.ID, prefix) {
		return invalidMetadata(s.ID, "section id must begin with %q", prefix)
	}
	if s.Questions == nil || s.Questions.Len() == 0 {
		return invalidMetadata(s.ID, "section must contain at least one top-level question")
	}

	questionPrefix := s.ID + "_"
	sawTopLevel := false
	for _, key := range s.Questions.Keys() {
		q, _ := s.Questions.Get(key)
		if q.ID != key {
			return invalidMetadata(s.ID, "question key %q does not match child id %q", key, q.ID)
		}
		if !strings.HasPrefix(q.ID, questionPrefix) {
			return invalidMetadata(q.ID, "top-level question id must begin with %q", questionPrefix)
		}
		if !IsParentKind(q.Kind) {
			return invalidMetadata(q.ID, "top-level question kind %s is not a parent kind", q.Kind)
		}
		sawTopLevel = true
		if err := q.Validate(); err != nil {
			return err
		}
	}
	if !sawTopLevel {
		return invalidMetadata(s.ID, "section must contain at least one top-level question")
	}
	return nil
}
