// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

// Package catalog holds the career reference data: fields and the
// specializations inside them. A Catalog is built once at process start and
// is read-only afterwards, so a single value is shared by every request
// without locking.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/careerpath/internal/skills"
)

var (
	// ErrInvalidCatalog is returned when a document breaks a structural rule.
	ErrInvalidCatalog = errors.New("invalid catalog")

	// ErrFieldNotFound is returned by lookups for an unknown field.
	ErrFieldNotFound = errors.New("field not found")

	// ErrSpecializationNotFound is returned by lookups for an unknown specialization.
	ErrSpecializationNotFound = errors.New("specialization not found")
)

// Specialization is a role within a field with its required-skill profile.
type Specialization struct {
	Title          string             `json:"title"`
	FieldName      string             `json:"field"`
	Description    string             `json:"description,omitempty"`
	RequiredSkills []string           `json:"required_skills"`
	SkillWeights   map[string]float64 `json:"skill_weights,omitempty"`
}

// Field is a broad career domain. KnownSkills is the de-duplicated union of
// the required skills of its specializations, in first-seen order.
type Field struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	KnownSkills     []string `json:"known_skills"`
	Specializations []string `json:"specializations"`
}

// Catalog is the immutable set of fields and specializations.
type Catalog struct {
	version string
	fields  []Field
	specs   []Specialization
	byField map[string][]int // normalized field name -> spec indexes
	fieldIx map[string]int   // normalized field name -> field index
	specIx  map[string]int   // normalized spec title -> spec index
}

// New builds a Catalog from a parsed document.
func New(doc *Document) (*Catalog, error) {
	if doc == nil {
		doc = &Document{}
	}

	c := &Catalog{
		version: doc.Version,
		byField: make(map[string][]int),
		fieldIx: make(map[string]int),
		specIx:  make(map[string]int),
	}

	for _, fd := range doc.Fields {
		name := strings.TrimSpace(fd.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: field with empty name", ErrInvalidCatalog)
		}
		fkey := skills.Normalize(name)
		if _, dup := c.fieldIx[fkey]; dup {
			return nil, fmt.Errorf("%w: duplicate field %q", ErrInvalidCatalog, name)
		}

		field := Field{Name: name, Description: fd.Description, Specializations: []string{}}
		var union []string
		for _, sd := range fd.Specializations {
			spec, err := buildSpecialization(name, sd)
			if err != nil {
				return nil, err
			}
			skey := skills.Normalize(spec.Title)
			if _, dup := c.specIx[skey]; dup {
				return nil, fmt.Errorf("%w: duplicate specialization %q", ErrInvalidCatalog, spec.Title)
			}
			c.specIx[skey] = len(c.specs)
			c.byField[fkey] = append(c.byField[fkey], len(c.specs))
			c.specs = append(c.specs, spec)

			field.Specializations = append(field.Specializations, spec.Title)
			union = append(union, spec.RequiredSkills...)
		}
		field.KnownSkills = skills.Dedupe(union)

		c.fieldIx[fkey] = len(c.fields)
		c.fields = append(c.fields, field)
	}

	return c, nil
}

func buildSpecialization(fieldName string, sd SpecializationDoc) (Specialization, error) {
	title := strings.TrimSpace(sd.Title)
	if title == "" {
		return Specialization{}, fmt.Errorf("%w: specialization with empty title in field %q", ErrInvalidCatalog, fieldName)
	}

	weights := make(map[string]float64, len(sd.SkillWeights))
	for skill, w := range sd.SkillWeights {
		if w < 0 {
			return Specialization{}, fmt.Errorf("%w: negative weight for %q in %q", ErrInvalidCatalog, skill, title)
		}
		weights[skill] = w
	}

	return Specialization{
		Title:          title,
		FieldName:      fieldName,
		Description:    sd.Description,
		RequiredSkills: skills.Dedupe(sd.RequiredSkills),
		SkillWeights:   weights,
	}, nil
}

// IsEmpty reports whether the catalog has no fields or no specializations.
func (c *Catalog) IsEmpty() bool {
	return c == nil || len(c.fields) == 0 || len(c.specs) == 0
}

// Fields returns all fields in declaration order. The slice must not be modified.
func (c *Catalog) Fields() []Field {
	if c == nil {
		return nil
	}
	return c.fields
}

// Specializations returns all specializations in declaration order.
// The slice must not be modified.
func (c *Catalog) Specializations() []Specialization {
	if c == nil {
		return nil
	}
	return c.specs
}

// Field looks up a field by case-insensitive name.
func (c *Catalog) Field(name string) (Field, error) {
	if c != nil {
		if i, ok := c.fieldIx[skills.Normalize(name)]; ok {
			return c.fields[i], nil
		}
	}
	return Field{}, fmt.Errorf("%w: %q", ErrFieldNotFound, name)
}

// Specialization looks up a specialization by case-insensitive title.
func (c *Catalog) Specialization(title string) (Specialization, error) {
	if c != nil {
		if i, ok := c.specIx[skills.Normalize(title)]; ok {
			return c.specs[i], nil
		}
	}
	return Specialization{}, fmt.Errorf("%w: %q", ErrSpecializationNotFound, title)
}

// SpecializationsOf returns the specializations of a field in declaration
// order, or nil when the field is unknown.
func (c *Catalog) SpecializationsOf(fieldName string) []Specialization {
	if c == nil {
		return nil
	}
	idx := c.byField[skills.Normalize(fieldName)]
	out := make([]Specialization, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.specs[i])
	}
	return out
}

// Vocabulary returns every distinct required skill with the number of
// specializations that require it, in first-seen order.
func (c *Catalog) Vocabulary() []SkillCount {
	if c == nil {
		return nil
	}
	counts := make(map[string]int)
	var order []string
	spelling := make(map[string]string)
	for _, s := range c.specs {
		for _, skill := range s.RequiredSkills {
			n := skills.Normalize(skill)
			if _, seen := spelling[n]; !seen {
				spelling[n] = skill
				order = append(order, n)
			}
			counts[n]++
		}
	}
	out := make([]SkillCount, 0, len(order))
	for _, n := range order {
		out = append(out, SkillCount{Skill: spelling[n], Count: counts[n]})
	}
	return out
}

// SkillCount pairs a skill with how many specializations require it.
type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Stats summarizes catalog size for logging and health output.
type Stats struct {
	Fields          int `json:"fields"`
	Specializations int `json:"specializations"`
	Skills          int `json:"skills"`
}

// Stats returns catalog size counters.
func (c *Catalog) Stats() Stats {
	if c == nil {
		return Stats{}
	}
	return Stats{Fields: len(c.fields), Specializations: len(c.specs), Skills: len(c.Vocabulary())}
}

// Version returns the document version the catalog was built from.
func (c *Catalog) Version() string {
	if c == nil {
		return ""
	}
	return c.version
}

// Document returns the catalog in its serializable document form.
func (c *Catalog) Document() *Document {
	doc := &Document{}
	if c == nil {
		return doc
	}
	doc.Version = c.version
	for _, f := range c.fields {
		fd := FieldDoc{Name: f.Name, Description: f.Description}
		for _, s := range c.SpecializationsOf(f.Name) {
			fd.Specializations = append(fd.Specializations, SpecializationDoc{
				Title:          s.Title,
				Description:    s.Description,
				RequiredSkills: append([]string(nil), s.RequiredSkills...),
				SkillWeights:   copyWeights(s.SkillWeights),
			})
		}
		doc.Fields = append(doc.Fields, fd)
	}
	return doc
}

func copyWeights(w map[string]float64) map[string]float64 {
	if len(w) == 0 {
		return nil
	}
	out := make(map[string]float64, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}
