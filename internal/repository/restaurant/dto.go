package restaurant

import (
	"encoding/json"
	"strconv"

	"github.com/thvnhtai/dishcovery/internal/domain"
)

// Envelope shapes after key normalization. Plain responses arrive as
// {data: ...}, nested collections as {data: [...], metadata: {...}}.

type envelope struct {
	Data json.RawMessage `json:"data"`
}

type paginatedEnvelope struct {
	Data     json.RawMessage `json:"data"`
	Metadata pageMeta        `json:"metadata"`
}

type pageMeta struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

func (m pageMeta) toDomain() domain.Pagination {
	return domain.Pagination{Page: m.Page, PageSize: m.Size, Total: m.Total}
}

type restaurantDTO struct {
	RestaurantID          string   `json:"restaurantId"`
	RestaurantName        string   `json:"restaurantName"`
	AvatarURL             string   `json:"avatarUrl"`
	RestaurantRating      *float64 `json:"restaurantRating"`
	RestaurantRatingCount int      `json:"restaurantRatingCount"`
	Score                 *float64 `json:"score"`
	Distance              *float64 `json:"distance"`
	PriceLevel            int      `json:"priceLevel"`
	Address               string   `json:"address"`
	Latitude              *float64 `json:"latitude"`
	Longitude             *float64 `json:"longitude"`
	OpeningHours          string   `json:"openingHours"`
	RestaurantDescription string   `json:"restaurantDescription"`
}

func (d *restaurantDTO) toDomain() domain.Restaurant {
	r := domain.Restaurant{
		ID:           d.RestaurantID,
		Name:         d.RestaurantName,
		AvatarURL:    d.AvatarURL,
		RatingCount:  d.RestaurantRatingCount,
		MatchScore:   d.Score,
		DistanceKm:   d.Distance,
		PriceLevel:   domain.PriceLevel(d.PriceLevel),
		Address:      d.Address,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		OpeningHours: d.OpeningHours,
		Description:  d.RestaurantDescription,
	}
	if d.RestaurantRating != nil {
		r.Rating = *d.RestaurantRating
	}
	return r
}

type menuItemDTO struct {
	ItemName        string     `json:"itemName"`
	ItemPrice       flexString `json:"itemPrice"`
	ItemDescription string     `json:"itemDescription"`
	ItemAvatarURL   string     `json:"itemAvatarUrl"`
}

func (d *menuItemDTO) toDomain() domain.MenuItem {
	return domain.MenuItem{
		Name:        d.ItemName,
		Price:       string(d.ItemPrice),
		Description: d.ItemDescription,
		AvatarURL:   d.ItemAvatarURL,
	}
}

type reviewDTO struct {
	ReviewUserName string  `json:"reviewUserName"`
	UserRating     float64 `json:"userRating"`
	UserReview     string  `json:"userReview"`
	ReviewDate     string  `json:"reviewDate"`
}

func (d *reviewDTO) toDomain() domain.Review {
	return domain.Review{
		ReviewerName: d.ReviewUserName,
		Rating:       d.UserRating,
		Comment:      d.UserReview,
		Date:         d.ReviewDate,
	}
}

type clickDTO struct {
	UserID       string `json:"userId"`
	RestaurantID string `json:"restaurantId"`
}

// flexString accepts a JSON string or number; the API serves menu prices in
// both shapes.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	// Trim the float64 round-trip noise from whole-number prices.
	if v, err := n.Float64(); err == nil {
		*f = flexString(strconv.FormatFloat(v, 'f', -1, 64))
		return nil
	}
	*f = flexString(n.String())
	return nil
}
