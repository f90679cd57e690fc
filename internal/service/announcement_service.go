package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/noah-isme/banner-admin-api/internal/dto"
	"github.com/noah-isme/banner-admin-api/internal/models"
	"github.com/noah-isme/banner-admin-api/internal/validation"
	appErrors "github.com/noah-isme/banner-admin-api/pkg/errors"
)

type announcementStore interface {
	Create(ctx context.Context, shopID string, in dto.NewAnnouncement) (*models.Announcement, error)
	GetByID(ctx context.Context, id string) (*models.AnnouncementDetail, error)
	ListByShop(ctx context.Context, shopID string) ([]models.AnnouncementDetail, error)
	ListActive(ctx context.Context, shopID string, now time.Time) ([]models.AnnouncementDetail, error)
	Update(ctx context.Context, id string, upd dto.AnnouncementUpdate) error
	SetActive(ctx context.Context, id string, isActive bool) error
	Delete(ctx context.Context, id string) error
}

// ResolveCache stores recomposed storefront resolve results per shop and path.
type ResolveCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// RedisResolveCache caches storefront resolve results in Redis.
type RedisResolveCache struct {
	client *redis.Client
}

// NewRedisResolveCache wraps a Redis client for resolve caching.
func NewRedisResolveCache(client *redis.Client) *RedisResolveCache {
	return &RedisResolveCache{client: client}
}

func (c *RedisResolveCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

func (c *RedisResolveCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// AnnouncementService orchestrates validation, persistence and storefront
// resolution of announcements. Every operation is scoped to the calling shop.
type AnnouncementService struct {
	store     announcementStore
	cache     ResolveCache
	cacheTTL  time.Duration
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAnnouncementService constructs the service. Cache and metrics are
// optional; pass nil to disable resolve caching or instrumentation.
func NewAnnouncementService(store announcementStore, cache ResolveCache, cacheTTL time.Duration, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *AnnouncementService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnnouncementService{
		store:     store,
		cache:     cache,
		cacheTTL:  cacheTTL,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
	}
}

// Create validates and persists a full announcement, returning the
// recomposed record.
func (s *AnnouncementService) Create(ctx context.Context, shopID string, req dto.NewAnnouncement) (*models.AnnouncementDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	if fields := validation.ValidateNewAnnouncement(req); len(fields) > 0 {
		return nil, appErrors.Validation("invalid announcement payload", fields)
	}

	created, err := s.store.Create(ctx, shopID, req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create announcement")
	}

	detail, err := s.store.GetByID(ctx, created.ID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load created announcement")
	}
	return detail, nil
}

// Get returns a shop's announcement by id with full associations.
func (s *AnnouncementService) Get(ctx context.Context, shopID, id string) (*models.AnnouncementDetail, error) {
	detail, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to get announcement")
	}
	if detail.ShopID != shopID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
	}
	return detail, nil
}

// List returns all of a shop's announcements, most recently scheduled first.
func (s *AnnouncementService) List(ctx context.Context, shopID string) ([]models.AnnouncementDetail, error) {
	details, err := s.store.ListByShop(ctx, shopID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list announcements")
	}
	return details, nil
}

// Update applies a partial update; owned sections present in the input are
// replaced wholesale. Returns the freshly recomposed record.
func (s *AnnouncementService) Update(ctx context.Context, shopID, id string, upd dto.AnnouncementUpdate) (*models.AnnouncementDetail, error) {
	if err := s.validator.Struct(upd); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid announcement payload")
	}
	if fields := validation.ValidateAnnouncementUpdate(upd); len(fields) > 0 {
		return nil, appErrors.Validation("invalid announcement payload", fields)
	}

	if _, err := s.Get(ctx, shopID, id); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, id, upd); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update announcement")
	}

	return s.Get(ctx, shopID, id)
}

// SetActive flips only the active flag.
func (s *AnnouncementService) SetActive(ctx context.Context, shopID, id string, isActive bool) (*models.AnnouncementDetail, error) {
	if _, err := s.Get(ctx, shopID, id); err != nil {
		return nil, err
	}
	if err := s.store.SetActive(ctx, id, isActive); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "announcement not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update announcement status")
	}
	return s.Get(ctx, shopID, id)
}

// Delete removes an announcement and all of its owned rows. Deleting an id
// that does not exist (or is owned by another shop) succeeds silently.
func (s *AnnouncementService) Delete(ctx context.Context, shopID, id string) error {
	detail, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load announcement")
	}
	if detail.ShopID != shopID {
		return nil
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete announcement")
	}
	return nil
}

// Resolve returns the announcements a storefront page should render right
// now: active by flag and time window, and, when a path is supplied,
// targeting that path. The second return reports whether the response was
// served from cache.
func (s *AnnouncementService) Resolve(ctx context.Context, shopID, currentPath string) ([]models.AnnouncementDetail, bool, error) {
	cacheKey := fmt.Sprintf("storefront:announcements:%s:%s", shopID, currentPath)

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil {
			var details []models.AnnouncementDetail
			if err := json.Unmarshal([]byte(cached), &details); err == nil {
				s.metrics.RecordResolveCache(true)
				return details, true, nil
			}
			s.logger.Warn("discarding malformed resolve cache entry", zap.String("key", cacheKey))
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("resolve cache lookup failed", zap.Error(err))
		}
	}
	s.metrics.RecordResolveCache(false)

	queryStart := time.Now()
	active, err := s.store.ListActive(ctx, shopID, queryStart.UTC())
	s.metrics.ObserveDBQuery("list_active_announcements", time.Since(queryStart))
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve announcements")
	}

	matched := active
	if currentPath != "" {
		matched = make([]models.AnnouncementDetail, 0, len(active))
		for _, detail := range active {
			if s.matchesPath(&detail, currentPath) {
				matched = append(matched, detail)
			}
		}
	}

	if s.cache != nil {
		if payload, err := json.Marshal(matched); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.cacheTTL); err != nil {
				s.logger.Warn("resolve cache store failed", zap.Error(err))
			}
		}
	}

	return matched, false, nil
}

// matchesPath checks the announcement's patterns against the current path.
// The global sentinel matches everything; other patterns are evaluated as
// regular expressions. A pattern that fails to compile never matches.
func (s *AnnouncementService) matchesPath(detail *models.AnnouncementDetail, currentPath string) bool {
	if detail.HasGlobalPattern() {
		return true
	}
	for _, pattern := range detail.PagePatterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			s.logger.Debug("skipping invalid page pattern",
				zap.String("announcement_id", detail.ID),
				zap.String("pattern", pattern))
			continue
		}
		if re.MatchString(currentPath) {
			return true
		}
	}
	return false
}

// ValidateEditor runs the banner editor payload through the conditional
// validation rules, returning the normalized config or a validation error
// carrying every violated field.
func (s *AnnouncementService) ValidateEditor(payload dto.BannerFormPayload) (*dto.BannerConfig, error) {
	config, fields := validation.ValidateBannerForm(payload, time.Now())
	if len(fields) > 0 {
		return nil, appErrors.Validation("invalid banner configuration", fields)
	}
	return config, nil
}

// PublishEditor validates an editor payload and persists the resulting
// announcement in one step.
func (s *AnnouncementService) PublishEditor(ctx context.Context, shopID string, payload dto.BannerFormPayload) (*models.AnnouncementDetail, error) {
	config, err := s.ValidateEditor(payload)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, shopID, config.ToNewAnnouncement())
}
