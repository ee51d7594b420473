// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package recommend

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/careerpath/internal/cache"
	"github.com/tomtom215/careerpath/internal/catalog"
	"github.com/tomtom215/careerpath/internal/logging"
	"github.com/tomtom215/careerpath/internal/metrics"
	"github.com/tomtom215/careerpath/internal/predictor"
	"github.com/tomtom215/careerpath/internal/skills"
)

const (
	stageField          = "field"
	stageSpecialization = "specialization"
)

// Engine produces career recommendations from a read-only catalog and an
// optional predictor. It is safe for concurrent use; the only shared mutable
// state is the result cache and counters.
type Engine struct {
	cfg       *Config
	catalog   *catalog.Catalog
	adapter   *PredictorAdapter
	ensemble  Ensemble
	explainer Explainer
	logger    zerolog.Logger

	cache *cache.LRU[string, *RecommendationResult]

	requestCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	errorCount   atomic.Int64
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Requests    int64 `json:"requests"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
	Errors      int64 `json:"errors"`
	CacheSize   int   `json:"cache_size"`
}

// stage is one ranking pass (fields, or specializations within a field).
type stage struct {
	name       string
	candidates []Candidate
	current    string
	ruleBoost  float64
	topN       int
	predict    func(ctx context.Context) ([]SourceScore, bool)
}

// stageResult is the ranked output of one stage. modelMissed is set when
// the predictor failed or was abandoned, as opposed to answering with
// nothing usable.
type stageResult struct {
	scores      []CombinedScore
	modelUsed   bool
	modelMissed bool
}

// NewEngine creates a recommendation engine. A nil cfg uses DefaultConfig
// and a nil predictor disables the model source.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, cat *catalog.Catalog, p predictor.Predictor, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger = logger.With().Str("component", "recommend").Logger()
	e := &Engine{
		cfg:       cfg.Clone(),
		catalog:   cat,
		adapter:   NewPredictorAdapter(p, logger),
		ensemble:  NewEnsemble(cfg),
		explainer: NewExplainer(cfg.Explanation),
		logger:    logger,
	}
	if cfg.Cache.Enabled {
		e.cache = cache.NewLRU[string, *RecommendationResult](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return e, nil
}

// Catalog returns the catalog the engine ranks against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.cfg.Clone()
}

// Recommend ranks fields, then the specializations of the best field, and
// analyzes the gap to the best specialization.
//
// Only ErrEmptySkillInput and ErrEmptyCatalog are returned. A failing or
// slow predictor degrades the ranking to the semantic and rule sources.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*RecommendationResult, error) {
	start := time.Now()
	e.requestCount.Add(1)

	req = e.prepareRequest(ctx, req)
	logger := e.requestLogger(req)

	userSkills := skills.Dedupe(req.Skills)
	if len(userSkills) == 0 {
		e.errorCount.Add(1)
		metrics.RecordRecommendation(metrics.OutcomeInvalid, time.Since(start))
		return nil, ErrEmptySkillInput
	}
	if len(userSkills) > e.cfg.Limits.MaxSkills {
		logger.Warn().Int("skills", len(userSkills)).Int("max", e.cfg.Limits.MaxSkills).Msg("skill list truncated")
		userSkills = userSkills[:e.cfg.Limits.MaxSkills]
	}

	if e.catalog == nil || e.catalog.IsEmpty() {
		e.errorCount.Add(1)
		metrics.RecordRecommendation(metrics.OutcomeEmptyCatalog, time.Since(start))
		logger.Error().Msg("recommendation requested with an empty catalog")
		return nil, ErrEmptyCatalog
	}

	key := cacheKey(userSkills, req)
	if res := e.tryGetCached(key, req, start); res != nil {
		logger.Debug().Msg("cache hit")
		metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start))
		return res, nil
	}

	res, modelMissed := e.compute(ctx, req, userSkills, logger)
	res.Metadata.RequestID = req.RequestID
	res.Metadata.LatencyMS = time.Since(start).Milliseconds()
	if modelMissed && e.adapter.Enabled() {
		// The next identical request should try the predictor again.
		logger.Debug().Msg("predictor missed, result not cached")
	} else {
		e.storeCached(key, res)
	}

	metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start))
	logger.Debug().
		Int("fields", len(res.RankedFields)).
		Int("specializations", len(res.RankedSpecializations)).
		Bool("predictor_available", res.Metadata.PredictorAvailable).
		Int64("latency_ms", res.Metadata.LatencyMS).
		Msg("recommendation complete")

	return res, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) compute(ctx context.Context, req Request, userSkills []string, logger zerolog.Logger) (*RecommendationResult, bool) {
	matcher := skills.NewMatcher(e.cfg.Scoring)
	skillsText := strings.Join(userSkills, ", ")

	fieldStage := e.runStage(ctx, matcher, userSkills, logger, stage{
		name:       stageField,
		candidates: FieldCandidates(e.catalog.Fields()),
		current:    req.CurrentField,
		ruleBoost:  e.cfg.Boosts.FieldRule,
		topN:       req.TopFields,
		predict: func(ctx context.Context) ([]SourceScore, bool) {
			return e.adapter.fieldScores(ctx, skillsText)
		},
	})
	fieldScores := fieldStage.scores
	modelMissed := fieldStage.modelMissed

	res := &RecommendationResult{
		RankedFields:          make([]FieldScore, len(fieldScores)),
		RankedSpecializations: []SpecScore{},
		MissingSkills:         []string{},
		SkillGap:              skills.EmptyGap(),
		Metadata: ResultMetadata{
			SourcesUsed:        sourcesUsed(fieldScores),
			PredictorAvailable: fieldStage.modelUsed,
		},
	}
	for i, fs := range fieldScores {
		res.RankedFields[i] = FieldScore{CombinedScore: fs}
	}

	if len(fieldScores) > 0 {
		topField := fieldScores[0].Name
		specs := e.catalog.SpecializationsOf(topField)
		if len(specs) > 0 {
			specStage := e.runStage(ctx, matcher, userSkills, logger, stage{
				name:       stageSpecialization,
				candidates: SpecializationCandidates(specs),
				current:    req.CurrentSpecialization,
				ruleBoost:  e.cfg.Boosts.SpecializationRule,
				topN:       req.TopSpecializations,
				predict: func(ctx context.Context) ([]SourceScore, bool) {
					return e.adapter.specializationScores(ctx, skillsText, topField)
				},
			})
			modelMissed = modelMissed || specStage.modelMissed
			res.RankedSpecializations = make([]SpecScore, len(specStage.scores))
			for i, ss := range specStage.scores {
				res.RankedSpecializations[i] = SpecScore{CombinedScore: ss, FieldName: topField}
			}
		}
		res.TargetSpecialization, res.SkillGap = e.targetGap(matcher, userSkills, topField, res.RankedSpecializations)
		res.MissingSkills = res.SkillGap.Missing
	}

	res.Explanation = e.explainer.Explain(res.RankedFields, res.TargetSpecialization, res.SkillGap, req.CurrentField)
	return res, modelMissed
}

// runStage scores one stage. The predictor runs in its own goroutine under
// PredictionTimeout while the semantic and rule scorers run; if it has not
// answered when they finish and the timeout expires, the stage proceeds
// without it. The Matcher is only touched by the semantic goroutine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) runStage(ctx context.Context, matcher *skills.Matcher, userSkills []string, logger zerolog.Logger, st stage) stageResult {
	predCtx, cancel := context.WithTimeout(ctx, e.cfg.Limits.PredictionTimeout)
	defer cancel()

	type modelAnswer struct {
		scores   []SourceScore
		answered bool
	}
	modelCh := make(chan modelAnswer, 1)
	go func() {
		scores, answered := st.predict(predCtx)
		modelCh <- modelAnswer{scores, answered}
	}()

	var semantic, rule []SourceScore
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		semantic = SemanticScores(matcher, st.candidates, userSkills)
	}()
	go func() {
		defer wg.Done()
		rule = RuleScores(st.candidates, userSkills, st.current, st.ruleBoost)
	}()
	wg.Wait()

	var answer modelAnswer
	select {
	case answer = <-modelCh:
	case <-predCtx.Done():
		select {
		case answer = <-modelCh:
		default:
			logger.Debug().Str("stage", st.name).Msg("predictor abandoned after timeout")
		}
	}
	model := restrictToCandidates(answer.scores, st.candidates)

	metrics.RecordSourceResult(SourceModel.String(), st.name, len(model) > 0)
	metrics.RecordSourceResult(SourceSemantic.String(), st.name, len(semantic) > 0)
	metrics.RecordSourceResult(SourceRule.String(), st.name, len(rule) > 0)

	return stageResult{
		scores:      e.ensemble.Combine(model, semantic, rule, st.current, st.topN),
		modelUsed:   len(model) > 0,
		modelMissed: !answer.answered,
	}
}

// targetGap analyzes the user against the top specialization, or against
// the top field's known skills when the field has no ranked specialization.
func (e *Engine) targetGap(matcher *skills.Matcher, userSkills []string, topField string, specs []SpecScore) (string, skills.Gap) {
	if len(specs) > 0 {
		spec, err := e.catalog.Specialization(specs[0].Name)
		if err == nil {
			return spec.Title, matcher.Analyze(userSkills, spec.RequiredSkills, spec.SkillWeights)
		}
	}
	field, err := e.catalog.Field(topField)
	if err != nil {
		return "", skills.EmptyGap()
	}
	return "", matcher.Analyze(userSkills, field.KnownSkills, nil)
}

// restrictToCandidates keeps model scores whose names match a candidate,
// rewriting them to the catalog spelling.
func restrictToCandidates(model []SourceScore, candidates []Candidate) []SourceScore {
	if len(model) == 0 {
		return []SourceScore{}
	}
	names := make(map[string]string, len(candidates))
	for _, c := range candidates {
		names[skills.Normalize(c.Name)] = c.Name
	}
	out := make([]SourceScore, 0, len(model))
	for _, m := range model {
		name, ok := names[skills.Normalize(m.TargetName)]
		if !ok {
			continue
		}
		m.TargetName = name
		out = append(out, m)
	}
	return out
}

func sourcesUsed(scores []CombinedScore) []string {
	seen := make(map[Source]struct{}, 3)
	for i := range scores {
		for _, ct := range scores[i].Contributions {
			seen[ct.Source] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for _, s := range []Source{SourceModel, SourceSemantic, SourceRule} {
		if _, ok := seen[s]; ok {
			out = append(out, s.String())
		}
	}
	return out
}

// prepareRequest applies defaults and resolves the request ID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.NewRequestID()
	}

	req.TopFields = clampTop(req.TopFields, e.cfg.Limits.DefaultTopFields, e.cfg.Limits.MaxTop)
	req.TopSpecializations = clampTop(req.TopSpecializations, e.cfg.Limits.DefaultTopSpecializations, e.cfg.Limits.MaxTop)
	return req
}

func clampTop(n, def, maxN int) int {
	if n <= 0 {
		return def
	}
	if n > maxN {
		return maxN
	}
	return n
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) requestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Int("skills", len(req.Skills)).
		Str("current_field", req.CurrentField).
		Logger()
}

// cacheKey identifies a request by its normalized, order-independent inputs.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func cacheKey(userSkills []string, req Request) string {
	norm := skills.NormalizeAll(userSkills)
	sort.Strings(norm)

	var b strings.Builder
	b.WriteString(strings.Join(norm, "\x1f"))
	b.WriteByte('|')
	b.WriteString(skills.Normalize(req.CurrentField))
	b.WriteByte('|')
	b.WriteString(skills.Normalize(req.CurrentSpecialization))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(req.TopFields))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(req.TopSpecializations))
	return b.String()
}

// tryGetCached returns a copy of a cached result stamped with this
// request's metadata. Collections are shared with the cached value and must
// not be mutated.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) tryGetCached(key string, req Request, start time.Time) *RecommendationResult {
	if e.cache == nil {
		return nil
	}
	cached, ok := e.cache.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		e.cacheMisses.Add(1)
		return nil
	}
	e.cacheHits.Add(1)

	res := *cached
	res.Metadata.RequestID = req.RequestID
	res.Metadata.CacheHit = true
	res.Metadata.LatencyMS = time.Since(start).Milliseconds()
	return &res
}

func (e *Engine) storeCached(key string, res *RecommendationResult) {
	if e.cache == nil {
		return
	}
	e.cache.Add(key, res)
	metrics.UpdateCacheSize(e.cache.Len())
}

// ClearCache drops all cached results.
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
		metrics.UpdateCacheSize(0)
	}
}

// CleanupCache removes expired cache entries and returns how many were dropped.
func (e *Engine) CleanupCache() int {
	if e.cache == nil {
		return 0
	}
	n := e.cache.CleanupExpired()
	metrics.UpdateCacheSize(e.cache.Len())
	return n
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Requests:    e.requestCount.Load(),
		CacheHits:   e.cacheHits.Load(),
		CacheMisses: e.cacheMisses.Load(),
		Errors:      e.errorCount.Load(),
	}
	if e.cache != nil {
		s.CacheSize = e.cache.Len()
	}
	return s
}

// AnalyzeGap runs the skill-gap analysis against one named specialization.
// The lookup is case-insensitive; the returned Specialization carries the
// catalog's canonical title and field.
func (e *Engine) AnalyzeGap(userSkills []string, specialization string) (catalog.Specialization, skills.Gap, error) {
	user := skills.Dedupe(userSkills)
	if len(user) == 0 {
		return catalog.Specialization{}, skills.EmptyGap(), ErrEmptySkillInput
	}
	if e.catalog == nil || e.catalog.IsEmpty() {
		return catalog.Specialization{}, skills.EmptyGap(), ErrEmptyCatalog
	}
	spec, err := e.catalog.Specialization(specialization)
	if err != nil {
		return catalog.Specialization{}, skills.EmptyGap(), err
	}
	return spec, skills.NewMatcher(e.cfg.Scoring).Analyze(user, spec.RequiredSkills, spec.SkillWeights), nil
}
