// Package session is the session-scoped store for the last search: the
// result list and the uploaded-image preview. The results view reads it once
// on mount and never again during its lifetime. Values are serialized in the
// wire convention, exactly as the platform session storage held them, and a
// corrupt stored list clears both keys so a broken session heals itself.
package session

import (
	"sync"

	"go.uber.org/zap"

	"github.com/thvnhtai/dishcovery/internal/domain"
	"github.com/thvnhtai/dishcovery/internal/wire"
)

// Storage keys, kept for backend implementations that map to a real
// key-value session storage.
const (
	KeySearchResults = "searchResults"
	KeyImagePreview  = "uploadedImagePreview"
)

// Backend is a string key-value session storage. The default is in-memory;
// embedders can plug the platform's own session storage.
type Backend interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

// Store persists the last search results and image preview for the session.
type Store struct {
	backend Backend
	logger  *zap.Logger
}

// New creates a session store. backend may be nil for the in-memory default.
func New(backend Backend, logger *zap.Logger) *Store {
	if backend == nil {
		backend = newMemoryBackend()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{backend: backend, logger: logger}
}

type storedRestaurant struct {
	RestaurantID          string   `json:"restaurantId"`
	RestaurantName        string   `json:"restaurantName"`
	AvatarURL             string   `json:"avatarUrl,omitempty"`
	RestaurantRating      *float64 `json:"restaurantRating,omitempty"`
	RestaurantRatingCount int      `json:"restaurantRatingCount,omitempty"`
	Score                 *float64 `json:"score,omitempty"`
	Distance              *float64 `json:"distance,omitempty"`
	PriceLevel            int      `json:"priceLevel,omitempty"`
	Address               string   `json:"address,omitempty"`
	Latitude              *float64 `json:"latitude,omitempty"`
	Longitude             *float64 `json:"longitude,omitempty"`
}

// SaveSearch stores the search result list and the image preview (a data URL
// or object URL; empty keeps any previous preview cleared).
func (s *Store) SaveSearch(results []domain.Restaurant, imagePreview string) {
	dtos := make([]storedRestaurant, len(results))
	for i, r := range results {
		dtos[i] = toStored(r)
	}
	data, err := wire.EncodeWire(dtos)
	if err != nil {
		s.logger.Warn("Failed to store search results", zap.Error(err))
		return
	}
	s.backend.Set(KeySearchResults, string(data))
	if imagePreview == "" {
		s.backend.Remove(KeyImagePreview)
	} else {
		s.backend.Set(KeyImagePreview, imagePreview)
	}
}

// LoadSearch returns the stored result list and image preview. ok is false
// when nothing is stored; a corrupt stored list clears both keys.
func (s *Store) LoadSearch() (results []domain.Restaurant, imagePreview string, ok bool) {
	raw, found := s.backend.Get(KeySearchResults)
	if !found {
		return nil, "", false
	}

	var dtos []storedRestaurant
	if err := wire.DecodeInternal([]byte(raw), &dtos); err != nil {
		s.logger.Warn("Failed to parse stored search results, clearing session", zap.Error(err))
		s.Clear()
		return nil, "", false
	}

	results = make([]domain.Restaurant, len(dtos))
	for i := range dtos {
		results[i] = fromStored(&dtos[i])
	}
	imagePreview, _ = s.backend.Get(KeyImagePreview)
	return results, imagePreview, true
}

// Clear removes both session keys.
func (s *Store) Clear() {
	s.backend.Remove(KeySearchResults)
	s.backend.Remove(KeyImagePreview)
}

func toStored(r domain.Restaurant) storedRestaurant {
	d := storedRestaurant{
		RestaurantID:          r.ID,
		RestaurantName:        r.Name,
		AvatarURL:             r.AvatarURL,
		RestaurantRatingCount: r.RatingCount,
		Score:                 r.MatchScore,
		Distance:              r.DistanceKm,
		PriceLevel:            int(r.PriceLevel),
		Address:               r.Address,
		Latitude:              r.Latitude,
		Longitude:             r.Longitude,
	}
	if r.Rating != 0 {
		rating := r.Rating
		d.RestaurantRating = &rating
	}
	return d
}

func fromStored(d *storedRestaurant) domain.Restaurant {
	r := domain.Restaurant{
		ID:          d.RestaurantID,
		Name:        d.RestaurantName,
		AvatarURL:   d.AvatarURL,
		RatingCount: d.RestaurantRatingCount,
		MatchScore:  d.Score,
		DistanceKm:  d.Distance,
		PriceLevel:  domain.PriceLevel(d.PriceLevel),
		Address:     d.Address,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
	}
	if d.RestaurantRating != nil {
		r.Rating = *d.RestaurantRating
	}
	return r
}

// memoryBackend is the in-process default Backend.
type memoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
}

func newMemoryBackend() *memoryBackend {
	return &memoryBackend{values: make(map[string]string)}
}

func (m *memoryBackend) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *memoryBackend) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
}

func (m *memoryBackend) Remove(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
}
