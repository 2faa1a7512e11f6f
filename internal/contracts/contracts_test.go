package contracts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("ValidOffer", func(t *testing.T) {
		body := `{
			"id": "1",
			"title": "Canal view apartment",
			"type": "apartment",
			"price": 120,
			"previewImage": "img/apartment-01.jpg",
			"rating": 4.5,
			"isPremium": true,
			"isFavorite": false,
			"city": {"name": "Amsterdam", "location": {"latitude": 52.37454, "longitude": 4.897976, "zoom": 13}},
			"location": {"latitude": 52.37454, "longitude": 4.897976, "zoom": 16}
		}`
		assert.NoError(t, Validate("Offer", []byte(body)))
	})

	t.Run("OfferWithoutRequiredField", func(t *testing.T) {
		assert.Error(t, Validate("Offer", []byte(`{"id": "1"}`)))
	})

	t.Run("LocationRefIsEnforced", func(t *testing.T) {
		// zoom за пределами схемы location.json, на которую ссылается offer.json.
		body := `{
			"id": "1",
			"title": "Canal view apartment",
			"type": "apartment",
			"price": 120,
			"previewImage": "img/apartment-01.jpg",
			"rating": 4.5,
			"isPremium": true,
			"isFavorite": false,
			"city": {"name": "Amsterdam", "location": {"latitude": 52.37454, "longitude": 4.897976, "zoom": 13}},
			"location": {"latitude": 52.37454, "longitude": 4.897976, "zoom": 99}
		}`
		assert.Error(t, Validate("Offer", []byte(body)))
	})

	t.Run("ReviewRefIsEnforced", func(t *testing.T) {
		body := `{
			"id": "1",
			"title": "Canal view apartment",
			"type": "apartment",
			"price": 120,
			"previewImage": "img/apartment-01.jpg",
			"rating": 4.5,
			"isPremium": true,
			"isFavorite": false,
			"city": {"name": "Amsterdam", "location": {"latitude": 52.37454, "longitude": 4.897976, "zoom": 13}},
			"location": {"latitude": 52.37454, "longitude": 4.897976, "zoom": 16},
			"reviews": [{"id": "r1", "user": {"name": "Keks"}, "rating": 9, "comment": "ok", "date": "2019-04-24"}]
		}`
		assert.Error(t, Validate("Offer", []byte(body)))
	})

	t.Run("ValidOfferDetails", func(t *testing.T) {
		body := `{
			"id": "1",
			"title": "Canal view apartment",
			"type": "apartment",
			"price": 120,
			"description": "Located right on the canal.",
			"images": ["img/apartment-01.jpg"],
			"goods": ["Wi-Fi"],
			"host": {"name": "Angelina", "avatarUrl": "img/avatar-angelina.jpg", "isPro": true},
			"bedrooms": 2,
			"maxAdults": 3,
			"rating": 4.5,
			"isPremium": true,
			"isFavorite": false,
			"city": {"name": "Amsterdam", "location": {"latitude": 52.37454, "longitude": 4.897976, "zoom": 13}},
			"location": {"latitude": 52.37454, "longitude": 4.897976, "zoom": 16}
		}`
		assert.NoError(t, Validate("OfferDetails", []byte(body)))
	})

	t.Run("ValidCommentRequest", func(t *testing.T) {
		body := `{"comment": "` + strings.Repeat("a", 60) + `", "rating": 5}`
		assert.NoError(t, Validate("CommentRequest", []byte(body)))
	})

	t.Run("ShortCommentViolatesContract", func(t *testing.T) {
		assert.Error(t, Validate("CommentRequest", []byte(`{"comment": "too short", "rating": 5}`)))
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		body := `{"comment": "` + strings.Repeat("a", 60) + `", "rating": 6}`
		assert.Error(t, Validate("CommentRequest", []byte(body)))
	})

	t.Run("ValidLoginRequest", func(t *testing.T) {
		assert.NoError(t, Validate("LoginRequest", []byte(`{"email": "keks@htmlacademy.ru", "password": "w1ld"}`)))
	})

	t.Run("EmptyPasswordViolatesContract", func(t *testing.T) {
		assert.Error(t, Validate("LoginRequest", []byte(`{"email": "keks@htmlacademy.ru", "password": ""}`)))
	})

	t.Run("UnknownContract", func(t *testing.T) {
		err := Validate("Unknown", []byte(`{}`))
		assert.ErrorContains(t, err, "unknown contract")
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		err := Validate("Offer", []byte(`{`))
		assert.ErrorContains(t, err, "invalid json")
	})
}

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "Offer", generateKeyFromPath("documents/offer.json"))
	assert.Equal(t, "OfferDetails", generateKeyFromPath("documents/offer-details.json"))
	assert.Equal(t, "CommentRequest", generateKeyFromPath("documents/comment-request.json"))
}
