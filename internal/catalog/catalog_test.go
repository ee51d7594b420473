// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testDocument() *Document {
	return &Document{Fields: []FieldDoc{
		{
			Name: "Technology",
			Specializations: []SpecializationDoc{
				{Title: "Data Analyst", RequiredSkills: []string{"Python", "SQL", "Excel", "Statistics"}},
				{Title: "Software Engineer", RequiredSkills: []string{"Python", "Git", "python "}},
			},
		},
		{
			Name: "Education",
			Specializations: []SpecializationDoc{
				{Title: "School Administrator", RequiredSkills: []string{"Educational Leadership"}},
			},
		},
	}}
}

func TestNew_DerivesKnownSkills(t *testing.T) {
	t.Parallel()

	c, err := New(testDocument())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tech, err := c.Field("technology")
	if err != nil {
		t.Fatalf("Field: %v", err)
	}
	want := []string{"Python", "SQL", "Excel", "Statistics", "Git"}
	if !reflect.DeepEqual(tech.KnownSkills, want) {
		t.Errorf("KnownSkills = %v, want %v", tech.KnownSkills, want)
	}
	if !reflect.DeepEqual(tech.Specializations, []string{"Data Analyst", "Software Engineer"}) {
		t.Errorf("Specializations = %v", tech.Specializations)
	}

	se, err := c.Specialization("SOFTWARE ENGINEER")
	if err != nil {
		t.Fatalf("Specialization: %v", err)
	}
	if se.FieldName != "Technology" || len(se.RequiredSkills) != 2 {
		t.Errorf("unexpected specialization %+v", se)
	}

	if got := len(c.SpecializationsOf("Education")); got != 1 {
		t.Errorf("SpecializationsOf(Education) = %d, want 1", got)
	}
	if c.SpecializationsOf("Unknown") == nil || len(c.SpecializationsOf("Unknown")) != 0 {
		t.Error("expected empty, non-nil result for unknown field")
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  *Document
	}{
		{"empty field name", &Document{Fields: []FieldDoc{{Name: " "}}}},
		{"duplicate field", &Document{Fields: []FieldDoc{{Name: "A"}, {Name: "a"}}}},
		{"empty title", &Document{Fields: []FieldDoc{{Name: "A", Specializations: []SpecializationDoc{{Title: ""}}}}}},
		{"duplicate title", &Document{Fields: []FieldDoc{
			{Name: "A", Specializations: []SpecializationDoc{{Title: "X"}}},
			{Name: "B", Specializations: []SpecializationDoc{{Title: "x"}}},
		}}},
		{"negative weight", &Document{Fields: []FieldDoc{{Name: "A", Specializations: []SpecializationDoc{
			{Title: "X", RequiredSkills: []string{"Go"}, SkillWeights: map[string]float64{"Go": -1}},
		}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := New(tt.doc); !errors.Is(err, ErrInvalidCatalog) {
				t.Errorf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}
}

func TestCatalog_Empty(t *testing.T) {
	t.Parallel()

	c, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil): %v", err)
	}
	if !c.IsEmpty() {
		t.Error("expected empty catalog")
	}

	var nilCatalog *Catalog
	if !nilCatalog.IsEmpty() || nilCatalog.Fields() != nil {
		t.Error("nil catalog should behave as empty")
	}
	if _, err := nilCatalog.Field("x"); !errors.Is(err, ErrFieldNotFound) {
		t.Errorf("expected ErrFieldNotFound, got %v", err)
	}

	onlyFields, _ := New(&Document{Fields: []FieldDoc{{Name: "Technology"}}})
	if !onlyFields.IsEmpty() {
		t.Error("catalog without specializations should be empty")
	}
}

func TestCatalog_Vocabulary(t *testing.T) {
	t.Parallel()

	c, _ := New(testDocument())
	vocab := c.Vocabulary()
	if vocab[0].Skill != "Python" || vocab[0].Count != 2 {
		t.Errorf("first vocabulary entry = %+v, want Python x2", vocab[0])
	}
	if got := c.Stats(); got.Fields != 2 || got.Specializations != 3 || got.Skills != 6 {
		t.Errorf("Stats = %+v", got)
	}
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.IsEmpty() {
		t.Fatal("default catalog must not be empty")
	}
	da, err := c.Specialization("Data Analyst")
	if err != nil {
		t.Fatalf("Specialization: %v", err)
	}
	if da.SkillWeights["Statistics"] != 0.9 {
		t.Errorf("Statistics weight = %v, want 0.9", da.SkillWeights["Statistics"])
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "catalog.yaml")
	yamlDoc := `fields:
  - name: Healthcare
    specializations:
      - title: Registered Nurse
        required_skills: [Patient Care, Nursing]
        skill_weights:
          Nursing: 0.9
`
	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadFile(yaml): %v", err)
	}
	rn, err := c.Specialization("Registered Nurse")
	if err != nil || rn.SkillWeights["Nursing"] != 0.9 {
		t.Errorf("unexpected specialization %+v, err %v", rn, err)
	}

	jsonPath := filepath.Join(dir, "catalog.json")
	jsonDoc := `{"fields":[{"name":"Business","specializations":[{"title":"Project Manager","required_skills":["Leadership","Budgeting"]}]}]}`
	if err := os.WriteFile(jsonPath, []byte(jsonDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err = LoadFile(jsonPath)
	if err != nil {
		t.Fatalf("LoadFile(json): %v", err)
	}
	if _, err := c.Field("Business"); err != nil {
		t.Errorf("Field(Business): %v", err)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	t.Parallel()

	c, _ := New(testDocument())
	rebuilt, err := New(c.Document())
	if err != nil {
		t.Fatalf("New(Document()): %v", err)
	}
	if !reflect.DeepEqual(c.Fields(), rebuilt.Fields()) {
		t.Errorf("fields differ after rebuild:\n%v\n%v", c.Fields(), rebuilt.Fields())
	}
}
