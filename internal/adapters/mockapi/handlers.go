package mockapi

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/contracts"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
)

// handleOffers обрабатывает GET /offers.
func (s *Server) handleOffers(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, toOffersResponse(s.dataset.List()))
}

// handleOfferDetails обрабатывает GET /offers/{offerID}.
func (s *Server) handleOfferDetails(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "offerID")
	details, ok := s.dataset.Get(offerID)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Offer not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toOfferDetailsResponse(details))
}

// handleNearbyOffers обрабатывает GET /offers/{offerID}/nearby.
func (s *Server) handleNearbyOffers(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "offerID")
	nearby, ok := s.dataset.Nearby(offerID)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Offer not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toOffersResponse(nearby))
}

// handleComments обрабатывает GET /comments/{offerID}.
func (s *Server) handleComments(w http.ResponseWriter, r *http.Request) {
	offerID := chi.URLParam(r, "offerID")
	reviews, ok := s.dataset.Comments(offerID)
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Offer not found")
		return
	}
	RespondWithJSON(w, http.StatusOK, toReviewsResponse(reviews))
}

// handleSubmitComment обрабатывает POST /comments/{offerID}.
// Тело проверяется по схеме CommentRequest до любых изменений датасета.
func (s *Server) handleSubmitComment(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SubmitComment"})

	user, ok := s.authUser(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	offerID := chi.URLParam(r, "offerID")
	if _, exists := s.dataset.Get(offerID); !exists {
		WriteJSONError(w, http.StatusNotFound, "Offer not found")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.Validate("CommentRequest", body); err != nil {
		logger.Warn("Comment rejected by contract", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var reqBody commentRequestBody
	if err := json.Unmarshal(body, &reqBody); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	review := domain.Review{
		ID: uuid.New().String(),
		User: domain.ReviewUser{
			Name:      user.Name,
			AvatarURL: user.AvatarURL,
			IsPro:     user.IsPro,
		},
		Rating:  reqBody.Rating,
		Comment: reqBody.Comment,
		Date:    time.Now().UTC(),
	}

	if !s.dataset.AddComment(offerID, review) {
		WriteJSONError(w, http.StatusNotFound, "Offer not found")
		return
	}

	logger.Info("Comment accepted", port.Fields{"offer_id": offerID, "review_id": review.ID})
	RespondWithJSON(w, http.StatusCreated, toReviewResponse(review))
}

// handleFavorites обрабатывает GET /favorite.
func (s *Server) handleFavorites(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.authUser(r); !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authorization required")
		return
	}
	RespondWithJSON(w, http.StatusOK, toOffersResponse(s.dataset.Favorites()))
}

// handleChangeFavorite обрабатывает POST /favorite/{offerID}/{status}.
func (s *Server) handleChangeFavorite(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ChangeFavorite"})

	if _, ok := s.authUser(r); !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authorization required")
		return
	}

	offerID := chi.URLParam(r, "offerID")
	status := chi.URLParam(r, "status")
	if status != "0" && status != "1" {
		WriteJSONError(w, http.StatusBadRequest, "Status must be 0 or 1")
		return
	}

	offer, ok := s.dataset.SetFavorite(offerID, status == "1")
	if !ok {
		WriteJSONError(w, http.StatusNotFound, "Offer not found")
		return
	}

	logger.Info("Favorite status changed", port.Fields{"offer_id": offerID, "is_favorite": offer.IsFavorite})
	RespondWithJSON(w, http.StatusOK, toOfferResponse(offer))
}

// handleCheckLogin обрабатывает GET /login (проба сессии).
func (s *Server) handleCheckLogin(w http.ResponseWriter, r *http.Request) {
	user, ok := s.authUser(r)
	if !ok {
		WriteJSONError(w, http.StatusUnauthorized, "Authorization required")
		return
	}
	RespondWithJSON(w, http.StatusOK, toAuthInfoResponse(user))
}

// handleLogin обрабатывает POST /login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	if err := contracts.Validate("LoginRequest", body); err != nil {
		logger.Warn("Login rejected by contract", port.Fields{"reason": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var reqBody loginRequestBody
	if err := json.Unmarshal(body, &reqBody); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user := s.registerSession(reqBody.Email, uuid.New().String())
	logger.Info("Session issued", port.Fields{"user_id": user.ID, "email": user.Email})
	RespondWithJSON(w, http.StatusOK, toAuthInfoResponse(user))
}

// displayNameFromEmail выводит отображаемое имя из локальной части email.
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at > 0 {
		local = email[:at]
	}
	local = strings.ReplaceAll(local, ".", " ")
	return cases.Title(language.English).String(local)
}
