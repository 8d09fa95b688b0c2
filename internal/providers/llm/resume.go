package llm

import (
	"context"
	"time"

	"github.com/foliochat/foliochat/internal/cache"
	"github.com/foliochat/foliochat/internal/storage"
	"github.com/sirupsen/logrus"
)

// ResumeResolver fetches the stored resume text behind a chat's resume_url.
// Lookups are cached: the text is immutable once stored, so a hit is always
// valid. Resolution is best-effort and returns "" on any failure — a missing
// resume degrades the prompt, it never blocks a turn.
type ResumeResolver struct {
	store storage.ObjectStore
	cache cache.Cache
	ttl   time.Duration
	log   *logrus.Logger
}

func NewResumeResolver(store storage.ObjectStore, c cache.Cache, ttl time.Duration, log *logrus.Logger) *ResumeResolver {
	return &ResumeResolver{store: store, cache: c, ttl: ttl, log: log}
}

func (r *ResumeResolver) Resolve(ctx context.Context, resumeURL string) string {
	if resumeURL == "" {
		return ""
	}

	key, err := storage.KeyFromURL(resumeURL)
	if err != nil {
		r.log.WithError(err).WithField("resume_url", resumeURL).Warn("unparseable resume url")
		return ""
	}

	cacheKey := "resume_text:" + key
	if r.cache != nil {
		var cached string
		if hit, err := r.cache.GetJSON(ctx, cacheKey, &cached); err == nil && hit {
			return cached
		}
	}

	data, err := r.store.Get(ctx, key)
	if err != nil {
		r.log.WithError(err).WithField("key", key).Warn("resume text fetch failed")
		return ""
	}
	text := string(data)

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, cacheKey, text, r.ttl); err != nil {
			r.log.WithError(err).Warn("resume text cache write failed")
		}
	}
	return text
}
