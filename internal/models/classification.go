package models

import "strings"

// UnassignedMarker is the sentinel embedded in descriptions of
// classification slots that have no assigned subject.
const UnassignedMarker = "[Unassigned]"

// Classification is one entry of the three-level classification table.
// Records are loaded once at startup and never mutated; every section
// row carries its containing division and main class denormalized so a
// single lookup returns the full hierarchy.
type Classification struct {
	SectionCode          string `json:"section_code"`
	SectionDescription   string `json:"section_description"`
	DivisionCode         string `json:"division_code"`
	DivisionDescription  string `json:"division_description"`
	MainClassCode        string `json:"main_class_code"`
	MainClassDescription string `json:"main_class_description"`
}

// IsUnassigned reports whether the section slot has no assigned subject.
func (c *Classification) IsUnassigned() bool {
	return strings.Contains(c.SectionDescription, UnassignedMarker)
}

// HierarchyEntry is a single code/description pair at one level of the
// hierarchy, returned by the browse endpoints.
type HierarchyEntry struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// SearchResult is one match from a free-text search across all three
// levels of the hierarchy.
type SearchResult struct {
	Code    string `json:"code"`
	Title   string `json:"title"`
	Level   string `json:"level"`
	Display string `json:"display"`
}
