package restaurant

import (
	"context"
	"io"
	"net/url"
)

// mockAPI implements the httpAPI consumer interface for tests.
type mockAPI struct {
	getFn  func(op, path string, query url.Values) ([]byte, error)
	postFn func(op, path string, body []byte) ([]byte, error)
	multiFn func(
		op, path string, query url.Values, fileField, filename string, file io.Reader,
	) ([]byte, error)

	gets  []string // recorded GET paths
	posts []string // recorded POST paths
}

func (m *mockAPI) Get(_ context.Context, op, path string, query url.Values) ([]byte, error) {
	m.gets = append(m.gets, path)
	if m.getFn != nil {
		return m.getFn(op, path, query)
	}
	return []byte(`{"data":[]}`), nil
}

func (m *mockAPI) PostJSON(_ context.Context, op, path string, body []byte) ([]byte, error) {
	m.posts = append(m.posts, path)
	if m.postFn != nil {
		return m.postFn(op, path, body)
	}
	return []byte(`{"data":null}`), nil
}

func (m *mockAPI) PostMultipart(
	_ context.Context, op, path string, query url.Values,
	fileField, filename string, file io.Reader,
) ([]byte, error) {
	m.posts = append(m.posts, path)
	if m.multiFn != nil {
		return m.multiFn(op, path, query, fileField, filename, file)
	}
	return []byte(`{"data":[]}`), nil
}

// Canned wire payloads in the API's snake_case convention.

const searchResultsPayload = `{
	"data": [
		{
			"restaurant_id": "r1",
			"restaurant_name": "Pho Thin",
			"restaurant_rating": 4.5,
			"score": 0.92,
			"price_level": 1,
			"address": "13 Lo Duc, Hanoi",
			"avatar_url": "https://cdn.example.com/r1.jpg",
			"latitude": 21.0136,
			"longitude": 105.8544
		},
		{
			"restaurant_id": "r2",
			"restaurant_name": "Pho 24",
			"score": 0.81,
			"distance": 3.2,
			"price_level": 2
		}
	]
}`

const detailPayload = `{
	"data": {
		"restaurant_id": "r1",
		"restaurant_name": "Pho Thin",
		"restaurant_rating": 4.5,
		"restaurant_rating_count": 132,
		"restaurant_description": "Hanoi-style stir-fried beef pho.",
		"opening_hours": "06:00-22:00",
		"address": "13 Lo Duc, Hanoi",
		"latitude": 21.0136,
		"longitude": 105.8544
	}
}`

const dishesPayload = `{
	"data": [
		{"item_name": "Pho tai lan", "item_price": 70000, "item_description": "stir-fried rare beef"},
		{"item_name": "Quay", "item_price": "10000"}
	],
	"metadata": {"page": 1, "size": 3, "total": 7}
}`

const reviewsPayload = `{
	"data": [
		{"review_user_name": "an", "user_rating": 5, "user_review": "best pho in town", "review_date": "2026-05-02"}
	],
	"metadata": {"page": 1, "size": 2, "total": 4}
}`
