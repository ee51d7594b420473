// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package recommend

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/careerpath/internal/catalog"
	"github.com/tomtom215/careerpath/internal/predictor"
	"github.com/tomtom215/careerpath/internal/skills"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(&catalog.Document{Fields: []catalog.FieldDoc{
		{
			Name: "Technology",
			Specializations: []catalog.SpecializationDoc{
				{Title: "Data Analyst", RequiredSkills: []string{"Python", "SQL", "Excel", "Statistics"}},
				{Title: "Software Engineer", RequiredSkills: []string{"Python", "Git", "Algorithms", "Testing"}},
			},
		},
		{
			Name: "Education",
			Specializations: []catalog.SpecializationDoc{
				{Title: "School Administrator", RequiredSkills: []string{"Educational Leadership"}},
				{Title: "Teacher", RequiredSkills: []string{"Teaching", "Lesson Planning"}},
			},
		},
		{
			Name: "Business",
			Specializations: []catalog.SpecializationDoc{
				{Title: "Business Analyst", RequiredSkills: []string{"SQL", "Excel", "Communication", "Requirements Analysis"}},
				{Title: "Generalist"},
			},
		},
	}})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return c
}

func newTestEngine(t *testing.T, cfg *Config, p predictor.Predictor) *Engine {
	t.Helper()
	e, err := NewEngine(cfg, testCatalog(t), p, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func fieldNames(fs []FieldScore) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.Name
	}
	return out
}

func TestNewEngine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     *Config
		wantErr bool
	}{
		{"nil config uses defaults", nil, false},
		{"default config", DefaultConfig(), false},
		{"invalid config", func() *Config {
			c := DefaultConfig()
			c.Weights = SourceWeights{}
			return c
		}(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := NewEngine(tt.cfg, testCatalog(t), nil, zerolog.Nop())
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && e == nil {
				t.Fatal("engine is nil")
			}
		})
	}
}

func TestRecommend_Errors(t *testing.T) {
	t.Parallel()

	emptyCat, err := catalog.New(&catalog.Document{})
	if err != nil {
		t.Fatal(err)
	}
	noSpecs, err := catalog.New(&catalog.Document{Fields: []catalog.FieldDoc{{Name: "Lonely"}}})
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		cat     *catalog.Catalog
		skills  []string
		wantErr error
	}{
		{"no skills", testCatalog(t), nil, ErrEmptySkillInput},
		{"blank skills", testCatalog(t), []string{"  ", ""}, ErrEmptySkillInput},
		{"empty catalog", emptyCat, []string{"Python"}, ErrEmptyCatalog},
		{"fields without specializations", noSpecs, []string{"Python"}, ErrEmptyCatalog},
		{"nil catalog", nil, []string{"Python"}, ErrEmptyCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, err := NewEngine(DefaultConfig(), tt.cat, nil, zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			res, err := e.Recommend(context.Background(), Request{Skills: tt.skills})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if res != nil {
				t.Errorf("result = %+v, want nil", res)
			}
		})
	}
}

func TestRecommend_PartialOverlap(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), nil)
	res, err := e.Recommend(context.Background(), Request{Skills: []string{"Python", "SQL"}})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if res.RankedFields[0].Name != "Technology" {
		t.Fatalf("top field = %s, want Technology", res.RankedFields[0].Name)
	}
	if res.TargetSpecialization != "Data Analyst" {
		t.Fatalf("target = %s, want Data Analyst", res.TargetSpecialization)
	}
	if res.SkillGap.MatchPercentage != 50 {
		t.Errorf("match = %v, want 50", res.SkillGap.MatchPercentage)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"Excel", "Statistics"}) {
		t.Errorf("missing = %v, want [Excel Statistics]", res.MissingSkills)
	}
	for _, s := range res.RankedSpecializations {
		if s.FieldName != "Technology" {
			t.Errorf("specialization %s has field %s", s.Name, s.FieldName)
		}
	}
	if res.Metadata.PredictorAvailable {
		t.Error("predictor reported available without a predictor")
	}
	if !reflect.DeepEqual(res.Metadata.SourcesUsed, []string{"semantic", "rule"}) {
		t.Errorf("sources = %v", res.Metadata.SourcesUsed)
	}
	if res.Explanation.TransitionDifficulty != DifficultyMedium {
		t.Errorf("difficulty = %s, want Medium", res.Explanation.TransitionDifficulty)
	}
}

func TestRecommend_TransferableSkill(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), nil)
	res, err := e.Recommend(context.Background(), Request{Skills: []string{"Leadership"}})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if res.RankedFields[0].Name != "Education" {
		t.Fatalf("top field = %s, want Education", res.RankedFields[0].Name)
	}
	if res.TargetSpecialization != "School Administrator" {
		t.Fatalf("target = %s", res.TargetSpecialization)
	}
	gap := res.SkillGap
	if len(gap.Matching) != 0 || len(gap.Similar) != 1 || gap.MatchPercentage != 50 {
		t.Errorf("gap = %+v, want one similar skill at 50%%", gap)
	}
	if sm := gap.Similar["Educational Leadership"]; sm.UserSkill != "Leadership" {
		t.Errorf("similar match = %+v", sm)
	}
}

func TestRecommend_UsesPredictor(t *testing.T) {
	t.Parallel()

	mock := &mockPredictor{
		fields: []predictor.Prediction{
			{Name: "business", Probability: 0.95},
			{Name: "Astronomy", Probability: 0.9},
		},
		specs: map[string][]predictor.Prediction{
			"Business": {{Name: "Business Analyst", Probability: 0.8}},
		},
	}
	e := newTestEngine(t, DefaultConfig(), mock)

	res, err := e.Recommend(context.Background(), Request{Skills: []string{"Excel", "Communication"}})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}

	if !res.Metadata.PredictorAvailable {
		t.Error("predictor should be reported available")
	}
	if !reflect.DeepEqual(res.Metadata.SourcesUsed, []string{"model", "semantic", "rule"}) {
		t.Errorf("sources = %v", res.Metadata.SourcesUsed)
	}
	for _, f := range res.RankedFields {
		if f.Name == "Astronomy" || f.Name == "business" {
			t.Errorf("unexpected field %q in ranking", f.Name)
		}
	}
	top := res.RankedFields[0]
	if top.Name != "Business" || top.Contributions[0].Source != SourceModel {
		t.Errorf("top = %+v, want Business with a model contribution", top)
	}
	if mock.lastField != "Business" {
		t.Errorf("specialization prediction asked for %q, want Business", mock.lastField)
	}
	if res.RankedSpecializations[0].Contributions[0].Source != SourceModel {
		t.Error("specialization stage did not use the model source")
	}
}

func TestRecommend_PredictorFailureMatchesNoPredictor(t *testing.T) {
	t.Parallel()

	req := Request{Skills: []string{"Python", "SQL", "Excel"}}

	baseline, err := newTestEngine(t, DefaultConfig(), nil).Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	failing, err := newTestEngine(t, DefaultConfig(), &mockPredictor{err: errors.New("boom")}).Recommend(context.Background(), req)
	if err != nil {
		t.Fatalf("predictor failure must not surface: %v", err)
	}

	if !reflect.DeepEqual(fieldNames(baseline.RankedFields), fieldNames(failing.RankedFields)) {
		t.Errorf("rankings differ: %v vs %v", fieldNames(baseline.RankedFields), fieldNames(failing.RankedFields))
	}
	for i := range baseline.RankedFields {
		if !approxEqual(baseline.RankedFields[i].FinalScore, failing.RankedFields[i].FinalScore) {
			t.Errorf("%s: %v vs %v", baseline.RankedFields[i].Name,
				baseline.RankedFields[i].FinalScore, failing.RankedFields[i].FinalScore)
		}
	}
}

func TestRecommend_SlowPredictorAbandoned(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Limits.PredictionTimeout = 20 * time.Millisecond
	mock := &mockPredictor{
		fields: []predictor.Prediction{{Name: "Business", Probability: 1}},
		delay:  2 * time.Second,
	}
	e := newTestEngine(t, cfg, mock)

	start := time.Now()
	res, err := e.Recommend(context.Background(), Request{Skills: []string{"Python"}})
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Recommend took %v, predictor was not abandoned", elapsed)
	}
	if res.Metadata.PredictorAvailable {
		t.Error("timed out predictor reported available")
	}
	if res.RankedFields[0].Name != "Technology" {
		t.Errorf("top field = %s, want Technology", res.RankedFields[0].Name)
	}
}

func TestRecommend_CurrentFieldBoost(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), nil)

	plain, err := e.Recommend(context.Background(), Request{Skills: []string{"Python"}})
	if err != nil {
		t.Fatal(err)
	}
	if plain.RankedFields[0].Name != "Technology" {
		t.Fatalf("baseline top field = %s", plain.RankedFields[0].Name)
	}

	boosted, err := e.Recommend(context.Background(), Request{Skills: []string{"Python"}, CurrentField: "education"})
	if err != nil {
		t.Fatal(err)
	}
	top := boosted.RankedFields[0]
	if top.Name != "Education" || !top.IsCurrent {
		t.Errorf("top = %+v, want current field Education", top)
	}
}

func TestRecommend_TopN(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), nil)

	tests := []struct {
		name      string
		topFields int
		topSpecs  int
		wantF     int
		wantS     int
	}{
		{"defaults", 0, 0, 3, 2},
		{"one each", 1, 1, 1, 1},
		{"above max is clamped", 1000, 1000, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := e.Recommend(context.Background(), Request{
				Skills:             []string{"Python"},
				TopFields:          tt.topFields,
				TopSpecializations: tt.topSpecs,
			})
			if err != nil {
				t.Fatal(err)
			}
			if len(res.RankedFields) != tt.wantF || len(res.RankedSpecializations) != tt.wantS {
				t.Errorf("got %d fields / %d specs, want %d / %d",
					len(res.RankedFields), len(res.RankedSpecializations), tt.wantF, tt.wantS)
			}
		})
	}
}

func TestRecommend_Cache(t *testing.T) {
	t.Parallel()

	mock := &mockPredictor{fields: []predictor.Prediction{{Name: "Technology", Probability: 0.5}}}
	e := newTestEngine(t, DefaultConfig(), mock)

	first, err := e.Recommend(context.Background(), Request{Skills: []string{"Python", "SQL"}, RequestID: "a"})
	if err != nil {
		t.Fatal(err)
	}
	calls := mock.callCount()

	second, err := e.Recommend(context.Background(), Request{Skills: []string{" sql", "PYTHON"}, RequestID: "b"})
	if err != nil {
		t.Fatal(err)
	}

	if first.Metadata.CacheHit || !second.Metadata.CacheHit {
		t.Errorf("cache flags = %v, %v", first.Metadata.CacheHit, second.Metadata.CacheHit)
	}
	if second.Metadata.RequestID != "b" || first.Metadata.RequestID != "a" {
		t.Errorf("request IDs = %q, %q", first.Metadata.RequestID, second.Metadata.RequestID)
	}
	if mock.callCount() != calls {
		t.Error("cached request called the predictor")
	}
	if !reflect.DeepEqual(fieldNames(first.RankedFields), fieldNames(second.RankedFields)) {
		t.Error("cached ranking differs")
	}

	stats := e.Stats()
	if stats.Requests != 2 || stats.CacheHits != 1 || stats.CacheMisses != 1 || stats.CacheSize != 1 {
		t.Errorf("stats = %+v", stats)
	}

	e.ClearCache()
	if e.Stats().CacheSize != 0 {
		t.Error("cache not cleared")
	}
}

// flakyPredictor fails its first failures calls, then answers. With
// failSpecializations set, specialization calls always fail.
type flakyPredictor struct {
	mu                  sync.Mutex
	failures            int
	calls               int
	failSpecializations bool
}

func (f *flakyPredictor) next() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.calls <= f.failures {
		return errors.New("predictor returned 503")
	}
	return nil
}

func (f *flakyPredictor) PredictField(context.Context, string) ([]predictor.Prediction, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	return []predictor.Prediction{{Name: "Technology", Probability: 0.8}}, nil
}

func (f *flakyPredictor) PredictSpecialization(context.Context, string, string) ([]predictor.Prediction, error) {
	if err := f.next(); err != nil {
		return nil, err
	}
	if f.failSpecializations {
		return nil, context.DeadlineExceeded
	}
	return []predictor.Prediction{{Name: "Data Analyst", Probability: 0.6}}, nil
}

func TestRecommend_PredictorMissIsNotCached(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), &flakyPredictor{failures: 1})
	req := Request{Skills: []string{"Python", "SQL"}}

	first, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if first.Metadata.PredictorAvailable || first.Metadata.CacheHit {
		t.Fatalf("first: predictor_available=%v cache_hit=%v", first.Metadata.PredictorAvailable, first.Metadata.CacheHit)
	}
	if size := e.Stats().CacheSize; size != 0 {
		t.Errorf("cache size after predictor miss = %d, want 0", size)
	}

	second, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if second.Metadata.CacheHit || !second.Metadata.PredictorAvailable {
		t.Errorf("second: predictor_available=%v cache_hit=%v, want a fresh model-backed result",
			second.Metadata.PredictorAvailable, second.Metadata.CacheHit)
	}

	third, err := e.Recommend(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !third.Metadata.CacheHit || !third.Metadata.PredictorAvailable {
		t.Errorf("third: predictor_available=%v cache_hit=%v, want the cached model-backed result",
			third.Metadata.PredictorAvailable, third.Metadata.CacheHit)
	}
}

func TestRecommend_SpecializationMissIsNotCached(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), &flakyPredictor{failSpecializations: true})

	res, err := e.Recommend(context.Background(), Request{Skills: []string{"Python"}})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Metadata.PredictorAvailable {
		t.Error("field stage should have used the model")
	}
	if size := e.Stats().CacheSize; size != 0 {
		t.Errorf("cache size = %d, want 0 after a specialization miss", size)
	}
}

func TestRecommend_DisabledPredictorResultIsCached(t *testing.T) {
	t.Parallel()

	for _, p := range []predictor.Predictor{nil, predictor.Disabled{}} {
		e := newTestEngine(t, DefaultConfig(), p)
		req := Request{Skills: []string{"Python"}}
		if _, err := e.Recommend(context.Background(), req); err != nil {
			t.Fatal(err)
		}
		res, err := e.Recommend(context.Background(), req)
		if err != nil {
			t.Fatal(err)
		}
		if !res.Metadata.CacheHit {
			t.Errorf("%T: second request missed the cache", p)
		}
	}
}

func TestRecommend_CacheDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e := newTestEngine(t, cfg, nil)

	for i := 0; i < 2; i++ {
		res, err := e.Recommend(context.Background(), Request{Skills: []string{"Python"}})
		if err != nil {
			t.Fatal(err)
		}
		if res.Metadata.CacheHit {
			t.Error("cache hit with caching disabled")
		}
	}
	if e.CleanupCache() != 0 {
		t.Error("CleanupCache on disabled cache")
	}
}

func TestRecommend_RequestIDFromContext(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Cache.Enabled = false
	e := newTestEngine(t, cfg, nil)

	res, err := e.Recommend(context.Background(), Request{Skills: []string{"Python"}})
	if err != nil {
		t.Fatal(err)
	}
	if res.Metadata.RequestID == "" {
		t.Error("request ID not generated")
	}
}

func TestRecommend_ResultInvariants(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), nil)
	inputs := [][]string{
		{"Python"},
		{"Leadership", "Excel"},
		{"Underwater Basket Weaving"},
		{"SQL", "Communication", "Teaching", "Git"},
	}

	for _, in := range inputs {
		res, err := e.Recommend(context.Background(), Request{Skills: in})
		if err != nil {
			t.Fatalf("%v: %v", in, err)
		}
		if res.RankedFields == nil || res.RankedSpecializations == nil || res.MissingSkills == nil ||
			res.Explanation.KeyStrengths == nil || res.Explanation.DevelopmentAreas == nil {
			t.Errorf("%v: nil collection in result", in)
		}
		for i := 1; i < len(res.RankedFields); i++ {
			if res.RankedFields[i].FinalScore > res.RankedFields[i-1].FinalScore {
				t.Errorf("%v: fields not sorted", in)
			}
		}
		for i := 1; i < len(res.RankedSpecializations); i++ {
			if res.RankedSpecializations[i].FinalScore > res.RankedSpecializations[i-1].FinalScore {
				t.Errorf("%v: specializations not sorted", in)
			}
		}
		for _, f := range res.RankedFields {
			if f.FinalScore < 0 || f.FinalScore > 100 {
				t.Errorf("%v: %s score %v out of range", in, f.Name, f.FinalScore)
			}
		}
		matched := make(map[string]struct{})
		for _, m := range res.SkillGap.Matching {
			matched[skills.Normalize(m)] = struct{}{}
		}
		for k := range res.SkillGap.Similar {
			matched[skills.Normalize(k)] = struct{}{}
		}
		for _, m := range res.MissingSkills {
			if _, ok := matched[skills.Normalize(m)]; ok {
				t.Errorf("%v: %q both missing and matched", in, m)
			}
		}
	}
}

func TestRecommend_Concurrent(t *testing.T) {
	t.Parallel()

	mock := &mockPredictor{fields: []predictor.Prediction{{Name: "Technology", Probability: 0.7}}}
	cfg := DefaultConfig()
	cfg.Cache.MaxEntries = 4
	e := newTestEngine(t, cfg, mock)

	inputs := [][]string{{"Python"}, {"SQL", "Excel"}, {"Teaching"}, {"Leadership"}, {"Git", "Testing"}}
	want := make([][]string, len(inputs))
	for i, in := range inputs {
		res, err := e.Recommend(context.Background(), Request{Skills: in})
		if err != nil {
			t.Fatal(err)
		}
		want[i] = fieldNames(res.RankedFields)
	}

	var wg sync.WaitGroup
	for g := 0; g < 20; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			idx := g % len(inputs)
			res, err := e.Recommend(context.Background(), Request{Skills: inputs[idx]})
			if err != nil {
				t.Errorf("goroutine %d: %v", g, err)
				return
			}
			if got := fieldNames(res.RankedFields); !reflect.DeepEqual(got, want[idx]) {
				t.Errorf("goroutine %d: ranking %v, want %v", g, got, want[idx])
			}
		}(g)
	}
	wg.Wait()
}

func TestAnalyzeGap(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), nil)

	spec, gap, err := e.AnalyzeGap([]string{"Python", "SQL"}, "data analyst")
	if err != nil {
		t.Fatalf("AnalyzeGap: %v", err)
	}
	if spec.Title != "Data Analyst" || spec.FieldName != "Technology" {
		t.Errorf("resolved %q in %q, want the catalog's Data Analyst in Technology", spec.Title, spec.FieldName)
	}
	if gap.MatchPercentage != 50 {
		t.Errorf("match = %v, want 50", gap.MatchPercentage)
	}

	_, gap, err = e.AnalyzeGap([]string{"Python"}, "Generalist")
	if err != nil {
		t.Fatalf("AnalyzeGap: %v", err)
	}
	if gap.MatchPercentage != 0 || len(gap.Missing) != 0 {
		t.Errorf("no required skills: gap = %+v, want zero match", gap)
	}

	spec, _, err = e.AnalyzeGap([]string{"Python"}, "Astronaut")
	if !errors.Is(err, catalog.ErrSpecializationNotFound) {
		t.Errorf("err = %v, want ErrSpecializationNotFound", err)
	}
	if spec.Title != "" {
		t.Errorf("unknown specialization resolved to %q", spec.Title)
	}
	if _, _, err := e.AnalyzeGap(nil, "Data Analyst"); !errors.Is(err, ErrEmptySkillInput) {
		t.Errorf("err = %v, want ErrEmptySkillInput", err)
	}
}
