// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package catalog

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Document is the on-disk shape of a catalog. YAML and JSON files are both
// accepted.
//
//	fields:
//	  - name: Technology
//	    specializations:
//	      - title: Data Analyst
//	        required_skills: [Python, SQL, Excel, Statistics]
//	        skill_weights: {Statistics: 0.9, Excel: 0.4}
type Document struct {
	Version string     `koanf:"version" json:"version,omitempty"`
	Fields  []FieldDoc `koanf:"fields" json:"fields"`
}

// FieldDoc is a field entry of a Document.
type FieldDoc struct {
	Name            string              `koanf:"name" json:"name"`
	Description     string              `koanf:"description" json:"description,omitempty"`
	Specializations []SpecializationDoc `koanf:"specializations" json:"specializations"`
}

// SpecializationDoc is a specialization entry of a FieldDoc.
type SpecializationDoc struct {
	Title          string             `koanf:"title" json:"title"`
	Description    string             `koanf:"description" json:"description,omitempty"`
	RequiredSkills []string           `koanf:"required_skills" json:"required_skills"`
	SkillWeights   map[string]float64 `koanf:"skill_weights" json:"skill_weights,omitempty"`
}

// LoadFile reads and builds a catalog from a YAML or JSON file.
func LoadFile(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load catalog file %s: %w", path, err)
	}
	return fromKoanf(k)
}

// Parse builds a catalog from YAML or JSON bytes.
func Parse(data []byte) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(bytesProvider(data), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return fromKoanf(k)
}

// Default returns the catalog bundled with the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func fromKoanf(k *koanf.Koanf) (*Catalog, error) {
	var doc Document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(&doc)
}

// bytesProvider is a koanf.Provider over an in-memory document.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("catalog bytes provider does not support Read()")
}
