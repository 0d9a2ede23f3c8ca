package engine

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/swasthyabot/swasthya/internal/catalog"
	"github.com/swasthyabot/swasthya/internal/compose"
	"github.com/swasthyabot/swasthya/internal/emergency"
	"github.com/swasthyabot/swasthya/internal/lang"
	"github.com/swasthyabot/swasthya/internal/match"
	"github.com/swasthyabot/swasthya/internal/model"
	"github.com/swasthyabot/swasthya/internal/rank"
	"github.com/swasthyabot/swasthya/internal/ratelimit"
	"github.com/swasthyabot/swasthya/internal/validate"
)

// QuerySummary is the anonymized record emitted per triage call.
// It carries no raw message text.
type QuerySummary struct {
	UserID      string            `json:"user_id"`
	Language    string            `json:"language"`
	PayloadType model.PayloadType `json:"payload_type"`
	PhraseCount int               `json:"phrase_count"`
	MatchCount  int               `json:"match_count"`
	Timestamp   time.Time         `json:"timestamp"`
}

// QueryLogger receives query summaries for analytics. Implementations
// must tolerate concurrent calls; logging is fire-and-forget and never
// blocks or fails a triage request.
type QueryLogger interface {
	Log(ctx context.Context, summary QuerySummary) error
}

// DefaultLogTimeout bounds the background logging goroutine
const DefaultLogTimeout = 2 * time.Second

// Options wires the engine's collaborators. Catalog is required;
// everything else has a working default.
type Options struct {
	Catalog         catalog.Reader
	Gate            *emergency.Gate
	Limiter         *ratelimit.Limiter
	Composer        *compose.Composer
	Logger          QueryLogger // nil = logging disabled
	DefaultLanguage string
	LogTimeout      time.Duration
}

// Engine runs the full triage pipeline for one inbound message:
// language resolution, emergency gating, extraction and validation,
// rate limiting, symptom matching, disease ranking, and advisory
// composition. It is safe for concurrent use.
type Engine struct {
	detector   *lang.Detector
	gate       *emergency.Gate
	limiter    *ratelimit.Limiter
	catalog    catalog.Reader
	matcher    *match.Matcher
	ranker     *rank.Ranker
	composer   *compose.Composer
	logger     QueryLogger
	defaultLng string
	logTimeout time.Duration
}

// New creates an engine from the given options
func New(opts Options) (*Engine, error) {
	if opts.Catalog == nil {
		return nil, fmt.Errorf("engine: catalog is required")
	}
	if opts.Gate == nil {
		opts.Gate = emergency.NewGate()
	}
	if opts.Limiter == nil {
		opts.Limiter = ratelimit.NewLimiter(ratelimit.NewMemoryStore(ratelimit.DefaultWindow), ratelimit.DefaultWindow, ratelimit.DefaultMaxRequests)
	}
	if opts.Composer == nil {
		opts.Composer = compose.NewComposer(nil, nil, 0, 0)
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = model.FallbackLanguage
	}
	if opts.LogTimeout <= 0 {
		opts.LogTimeout = DefaultLogTimeout
	}

	return &Engine{
		detector:   lang.NewDetector(),
		gate:       opts.Gate,
		limiter:    opts.Limiter,
		catalog:    opts.Catalog,
		matcher:    match.NewMatcher(opts.Catalog),
		ranker:     rank.NewRanker(),
		composer:   opts.Composer,
		logger:     opts.Logger,
		defaultLng: opts.DefaultLanguage,
		logTimeout: opts.LogTimeout,
	}, nil
}

// Triage processes one inbound message end to end and always returns a
// payload. requestedLanguage, when supported, overrides detection.
// An internal panic is converted into a generic error payload so a bad
// catalog entry or collaborator bug cannot take the conversation down.
func (e *Engine) Triage(ctx context.Context, rawText, userID, requestedLanguage string) (payload model.AdvisoryPayload) {
	language := e.resolveLanguage(rawText, requestedLanguage)

	var phrases []string
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Warning: triage panic recovered: %v\n", r)
			payload = model.AdvisoryPayload{
				Type:    model.PayloadError,
				Message: compose.ErrorMessage(language),
			}
		}
		e.logQuery(userID, language, len(phrases), payload)
	}()

	// Emergency gating comes before everything else, validation and
	// rate limits included. A critical message is never turned away.
	if result := e.gate.Check(ctx, rawText, language); result.IsEmergency {
		return model.AdvisoryPayload{
			Type:     model.PayloadEmergency,
			Severity: result.Severity,
			Message:  result.Response,
		}
	}

	phrases = match.Split(rawText)
	if v := validate.Phrases(phrases); !v.IsValid {
		return model.AdvisoryPayload{
			Type:    model.PayloadError,
			Message: compose.ErrorMessage(language) + " " + strings.Join(v.Errors, "; "),
		}
	}

	decision := e.limiter.Allow(userID)
	if !decision.Allowed {
		reset := decision.ResetTime
		return model.AdvisoryPayload{
			Type:      model.PayloadRateLimited,
			Message:   compose.RateLimitedMessage(language),
			ResetTime: &reset,
		}
	}

	// Catalog failures degrade to an empty match, never a raw error.
	matched, err := e.matcher.Match(ctx, phrases, language)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: symptom matching failed: %v\n", err)
		matched = nil
	}
	if len(matched) == 0 {
		return model.AdvisoryPayload{
			Type:    model.PayloadNoMatch,
			Message: compose.NoMatchMessage(language),
		}
	}

	symptomIDs := make([]string, len(matched))
	for i, s := range matched {
		symptomIDs[i] = s.ID
	}
	associations, err := e.catalog.AssociationsForSymptoms(ctx, symptomIDs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: association lookup failed: %v\n", err)
		associations = nil
	}

	ranked := e.ranker.Rank(associations, func(id string) (model.Disease, bool) {
		disease, ok, lookupErr := e.catalog.DiseaseByID(ctx, id)
		return disease, ok && lookupErr == nil
	}, len(phrases))
	if len(ranked) == 0 {
		return model.AdvisoryPayload{
			Type:    model.PayloadNoMatch,
			Message: compose.NoMatchMessage(language),
		}
	}

	req := &model.TriageRequest{
		RawText:   rawText,
		UserID:    userID,
		Language:  language,
		Phrases:   phrases,
		Matched:   matched,
		Ranked:    ranked,
		Timestamp: time.Now(),
	}
	return e.composer.Compose(ctx, req)
}

// resolveLanguage prefers an explicitly requested supported language,
// then script/lexical detection, then the configured default
func (e *Engine) resolveLanguage(rawText, requestedLanguage string) string {
	if requestedLanguage != "" && lang.IsSupported(requestedLanguage) {
		return requestedLanguage
	}
	if detected := e.detector.Identify(rawText); detected != "" {
		return detected
	}
	return e.defaultLng
}

// logQuery emits the summary in the background. The triage response is
// already on its way back; a slow or failing logger only burns its own
// bounded goroutine.
func (e *Engine) logQuery(userID, language string, phraseCount int, payload model.AdvisoryPayload) {
	if e.logger == nil {
		return
	}

	summary := QuerySummary{
		UserID:      userID,
		Language:    language,
		PayloadType: payload.Type,
		PhraseCount: phraseCount,
		MatchCount:  len(payload.MatchedSymptoms),
		Timestamp:   time.Now(),
	}

	go func() {
		logCtx, cancel := context.WithTimeout(context.Background(), e.logTimeout)
		defer cancel()
		if err := e.logger.Log(logCtx, summary); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: query logging failed: %v\n", err)
		}
	}()
}
