package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/pcadcreative/foodexpress/pkg/cache"
	"github.com/pcadcreative/foodexpress/repository"

	"github.com/google/uuid"
)

const (
	// a cached entry older than this is rebuilt even if still present
	recommendationFreshness = time.Hour
	// redis-side expiry; invalidation on preference writes is explicit
	recommendationCacheTTL = 24 * time.Hour

	maxRecommendations = 10
)

type Recommendation struct {
	RestaurantID uint   `json:"restaurantId"`
	Score        int    `json:"score"`
	Reason       string `json:"reason"`
}

// CachedRecommendations is the cache entry. Generation changes on every
// rebuild; invalidation deletes the whole entry rather than patching it.
type CachedRecommendations struct {
	Generation      string           `json:"generation"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	Recommendations []Recommendation `json:"recommendations"`
}

// recCache is the slice of pkg/cache the service needs. Production uses
// the redis-backed package; tests swap in their own.
type recCache interface {
	Get(key string, dest any) bool
	Set(key string, value any, ttl time.Duration) error
	Del(keys ...string) error
}

type redisCache struct{}

func (redisCache) Get(key string, dest any) bool { return cache.Get(key, dest) }
func (redisCache) Set(key string, value any, ttl time.Duration) error {
	return cache.Set(key, value, ttl)
}
func (redisCache) Del(keys ...string) error { return cache.Del(keys...) }

type RecommendationService struct {
	PrefRepo *repository.PreferenceRepository
	Cache    recCache
}

func NewRecommendationService(pr *repository.PreferenceRepository) *RecommendationService {
	return &RecommendationService{PrefRepo: pr, Cache: redisCache{}}
}

func cacheKey(userID uint) string {
	return fmt.Sprintf("recommendations:user:%d", userID)
}

// RecordOrder learns from a placed order and invalidates the user's
// cached recommendations so the next read rebuilds them.
func (s *RecommendationService) RecordOrder(userID, restaurantID uint, orderedItems []string) error {
	if userID == 0 || restaurantID == 0 || len(orderedItems) == 0 {
		return fmt.Errorf("%w: userId, restaurantId and orderedItems are required", ErrInvalidArgument)
	}
	if err := s.PrefRepo.RecordOrder(userID, restaurantID, orderedItems); err != nil {
		return err
	}
	return s.Cache.Del(cacheKey(userID))
}

// Get serves the cached recommendations when fresh, otherwise scores
// the user's favorite restaurants by order count and caches the result.
// The second return value reports a cache hit.
func (s *RecommendationService) Get(userID uint) ([]Recommendation, bool, error) {
	var cached CachedRecommendations
	if s.Cache.Get(cacheKey(userID), &cached) &&
		time.Since(cached.GeneratedAt) < recommendationFreshness {
		return cached.Recommendations, true, nil
	}

	pref, err := s.PrefRepo.GetWithFavorites(userID)
	if err != nil {
		return nil, false, err
	}
	if pref == nil || len(pref.FavoriteRestaurants) == 0 {
		return []Recommendation{}, false, nil
	}

	favs := pref.FavoriteRestaurants
	sort.Slice(favs, func(i, j int) bool { return favs[i].OrderCount > favs[j].OrderCount })
	if len(favs) > maxRecommendations {
		favs = favs[:maxRecommendations]
	}

	recs := make([]Recommendation, 0, len(favs))
	for _, f := range favs {
		recs = append(recs, Recommendation{
			RestaurantID: f.RestaurantID,
			Score:        f.OrderCount,
			Reason:       fmt.Sprintf("You've ordered %d times from this restaurant", f.OrderCount),
		})
	}

	entry := CachedRecommendations{
		Generation:      uuid.NewString(),
		GeneratedAt:     time.Now(),
		Recommendations: recs,
	}
	if err := s.Cache.Set(cacheKey(userID), entry, recommendationCacheTTL); err != nil {
		// cache trouble must not break the read path
		return recs, false, nil
	}
	return recs, false, nil
}
