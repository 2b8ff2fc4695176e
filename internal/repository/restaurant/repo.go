// Package restaurant adapts the discovery API endpoints to the domain model.
// All payloads cross the wire normalizer here; nothing above this package
// sees snake_case keys.
package restaurant

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/thvnhtai/dishcovery/internal/domain"
	"github.com/thvnhtai/dishcovery/internal/wire"
)

// httpAPI is the consumer interface over the transport client (ISP).
type httpAPI interface {
	Get(ctx context.Context, op, path string, query url.Values) ([]byte, error)
	PostJSON(ctx context.Context, op, path string, body []byte) ([]byte, error)
	PostMultipart(
		ctx context.Context, op, path string, query url.Values,
		fileField, filename string, file io.Reader,
	) ([]byte, error)
}

// Repo issues discovery API requests and maps responses to domain records.
type Repo struct {
	api httpAPI
}

// New creates a restaurant repository over the given transport.
func New(api httpAPI) *Repo {
	return &Repo{api: api}
}

// SearchByImage uploads a dish photo and returns the top matching
// restaurants in the server's match-score order.
func (r *Repo) SearchByImage(
	ctx context.Context, image io.Reader, filename string, topN int,
) ([]domain.Restaurant, error) {
	query := url.Values{"top_n": {strconv.Itoa(topN)}}
	body, err := r.api.PostMultipart(
		ctx, "image_search", "image-search", query, "file", filename, image,
	)
	if err != nil {
		return nil, fmt.Errorf("image search: %w", err)
	}
	return decodeRestaurantList(body)
}

// RecommendationsForUser fetches personalized recommendations. Known device
// coordinates are forwarded so the server can rank and precompute distances.
func (r *Repo) RecommendationsForUser(
	ctx context.Context, userID string, topN int, coords *domain.Coordinates,
) ([]domain.Restaurant, error) {
	body, err := r.api.Get(
		ctx, "recommend_user",
		"recommendation/user/"+url.PathEscape(userID),
		recommendationQuery(topN, coords),
	)
	if err != nil {
		return nil, fmt.Errorf("user recommendations: %w", err)
	}
	return decodeRestaurantList(body)
}

// RecommendationsForGuest fetches non-personalized recommendations.
func (r *Repo) RecommendationsForGuest(
	ctx context.Context, topN int, coords *domain.Coordinates,
) ([]domain.Restaurant, error) {
	body, err := r.api.Get(
		ctx, "recommend_guest", "recommendation/guest",
		recommendationQuery(topN, coords),
	)
	if err != nil {
		return nil, fmt.Errorf("guest recommendations: %w", err)
	}
	return decodeRestaurantList(body)
}

// Details fetches the full record for one restaurant.
func (r *Repo) Details(ctx context.Context, id string) (domain.Restaurant, error) {
	body, err := r.api.Get(ctx, "restaurant_detail", "restaurant/"+url.PathEscape(id), nil)
	if err != nil {
		return domain.Restaurant{}, fmt.Errorf("restaurant details: %w", err)
	}
	var env envelope
	if err := wire.DecodeInternal(body, &env); err != nil {
		return domain.Restaurant{}, fmt.Errorf("restaurant details: %w", err)
	}
	var dto restaurantDTO
	if err := wire.DecodeInternal(env.Data, &dto); err != nil {
		return domain.Restaurant{}, fmt.Errorf("restaurant details: %w", err)
	}
	return dto.toDomain(), nil
}

// Dishes fetches one page of a restaurant's menu.
func (r *Repo) Dishes(
	ctx context.Context, id string, page, pageSize int,
) ([]domain.MenuItem, domain.Pagination, error) {
	body, err := r.api.Get(
		ctx, "restaurant_dishes",
		"restaurant/"+url.PathEscape(id)+"/dishes",
		pageQuery(page, pageSize),
	)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("dishes page: %w", err)
	}

	var env paginatedEnvelope
	if err := wire.DecodeInternal(body, &env); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("dishes page: %w", err)
	}
	var dtos []menuItemDTO
	if err := wire.DecodeInternal(env.Data, &dtos); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("dishes page: %w", err)
	}

	items := make([]domain.MenuItem, len(dtos))
	for i := range dtos {
		items[i] = dtos[i].toDomain()
	}
	return items, env.Metadata.toDomain(), nil
}

// Reviews fetches one page of a restaurant's customer reviews.
func (r *Repo) Reviews(
	ctx context.Context, id string, page, pageSize int,
) ([]domain.Review, domain.Pagination, error) {
	body, err := r.api.Get(
		ctx, "restaurant_reviews",
		"restaurant/"+url.PathEscape(id)+"/reviews",
		pageQuery(page, pageSize),
	)
	if err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("reviews page: %w", err)
	}

	var env paginatedEnvelope
	if err := wire.DecodeInternal(body, &env); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("reviews page: %w", err)
	}
	var dtos []reviewDTO
	if err := wire.DecodeInternal(env.Data, &dtos); err != nil {
		return nil, domain.Pagination{}, fmt.Errorf("reviews page: %w", err)
	}

	reviews := make([]domain.Review, len(dtos))
	for i := range dtos {
		reviews[i] = dtos[i].toDomain()
	}
	return reviews, env.Metadata.toDomain(), nil
}

// AddClick records a restaurant click for the recommendation engine.
func (r *Repo) AddClick(ctx context.Context, userID, restaurantID string) error {
	body, err := wire.EncodeWire(clickDTO{UserID: userID, RestaurantID: restaurantID})
	if err != nil {
		return fmt.Errorf("add click: %w", err)
	}
	if _, err := r.api.PostJSON(ctx, "add_click", "recommendation/add-click", body); err != nil {
		return fmt.Errorf("add click: %w", err)
	}
	return nil
}

func decodeRestaurantList(body []byte) ([]domain.Restaurant, error) {
	var env envelope
	if err := wire.DecodeInternal(body, &env); err != nil {
		return nil, fmt.Errorf("decode result list: %w", err)
	}
	var dtos []restaurantDTO
	if err := wire.DecodeInternal(env.Data, &dtos); err != nil {
		return nil, fmt.Errorf("decode result list: %w", err)
	}
	out := make([]domain.Restaurant, len(dtos))
	for i := range dtos {
		out[i] = dtos[i].toDomain()
	}
	return out, nil
}

func recommendationQuery(topN int, coords *domain.Coordinates) url.Values {
	query := url.Values{"top_n": {strconv.Itoa(topN)}}
	if coords != nil {
		query.Set("user_lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
		query.Set("user_long", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	}
	return query
}

func pageQuery(page, pageSize int) url.Values {
	return url.Values{
		"page":      {strconv.Itoa(page)},
		"page_size": {strconv.Itoa(pageSize)},
	}
}
