// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package skills

// synonymGroups maps a canonical compound term to the spellings that mean
// the same skill. Keys and values are in normalized form.
var synonymGroups = map[string][]string{
	"machine learning":                 {"ml", "machine-learning", "machinelearning"},
	"artificial intelligence":          {"ai", "a.i."},
	"deep learning":                    {"dl", "deep-learning"},
	"natural language processing":      {"nlp"},
	"cloud computing":                  {"cloud-computing", "cloud platforms", "cloud services"},
	"amazon web services":              {"aws"},
	"google cloud platform":            {"gcp", "google cloud"},
	"microsoft azure":                  {"azure"},
	"kubernetes":                       {"k8s"},
	"javascript":                       {"js", "ecmascript"},
	"typescript":                       {"ts"},
	"postgresql":                       {"postgres", "psql"},
	"c#":                               {"csharp", "c sharp"},
	"c++":                              {"cpp"},
	"golang":                           {"go", "go programming"},
	"continuous integration":           {"ci", "ci/cd", "continuous delivery"},
	"user experience design":           {"ux", "ux design", "user experience"},
	"user interface design":            {"ui", "ui design", "user interface"},
	"data visualization":               {"data viz", "dataviz", "data visualisation"},
	"search engine optimization":       {"seo"},
	"customer relationship management": {"crm"},
	"human resources":                  {"hr"},
	"business intelligence":            {"bi"},
	"quality assurance":                {"qa"},
	"electronic health records":        {"ehr", "emr"},
	"object oriented programming":      {"oop", "object-oriented programming"},
	"project management":               {"project planning", "project coordination"},
	"statistics":                       {"statistical analysis", "stats"},
}

// canonicalIndex maps every known spelling, canonical ones included, to its
// canonical term.
var canonicalIndex = buildCanonicalIndex(synonymGroups)

func buildCanonicalIndex(groups map[string][]string) map[string]string {
	idx := make(map[string]string, len(groups)*3)
	for canonical, variants := range groups {
		idx[canonical] = canonical
		for _, v := range variants {
			idx[v] = canonical
		}
	}
	return idx
}

// Canonical returns the canonical synonym-table term for skill, and whether
// the skill appears in the table at all.
func Canonical(skill string) (string, bool) {
	c, ok := canonicalIndex[Normalize(skill)]
	return c, ok
}

// Synonymous reports whether two labels resolve to the same table entry.
func Synonymous(a, b string) bool {
	ca, okA := Canonical(a)
	if !okA {
		return false
	}
	cb, okB := Canonical(b)
	return okB && ca == cb
}

// Aliases returns the variant spellings listed for a canonical term.
func Aliases(canonical string) []string {
	variants := synonymGroups[Normalize(canonical)]
	out := make([]string, len(variants))
	copy(out, variants)
	return out
}
