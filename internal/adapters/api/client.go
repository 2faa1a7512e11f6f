package api_client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"six-cities-client/internal/contextkeys"
	"six-cities-client/internal/core/domain"
	"six-cities-client/internal/core/port"
)

// TokenHeader - заголовок, в котором сервер ожидает токен сессии.
const TokenHeader = "X-Token"

// DefaultTimeout - фиксированный таймаут сетевого запроса на границе
// транспорта. Других таймаутов и повторов у шлюзов нет.
const DefaultTimeout = 5 * time.Second

// Client - клиент six-cities REST API. Реализует OffersAPIPort и
// AuthAPIPort. Каждый метод - ровно один сетевой вызов.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     port.TokenStoragePort
}

// NewClient - конструктор. При нулевом timeout берётся DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, tokens port.TokenStoragePort) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
	}
}

// doRequest - внутренний хелпер для выполнения запросов. Прикладывает
// X-Token из долговременного хранилища, если он есть, и trace_id из
// контекста. Ответ 401 от любого эндпоинта стирает сохранённый токен.
func (c *Client) doRequest(ctx context.Context, method, requestURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, requestURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token, ok := c.tokens.Token(); ok {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if _, ok := c.tokens.Token(); ok {
			// Протухший токен бесполезен для всех последующих запросов.
			_ = c.tokens.Clear()
		}
	}

	return resp, nil
}

// getJSON выполняет GET и декодирует успешный ответ в out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	resp, err := c.doRequest(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// postJSON выполняет POST с телом payload и декодирует успешный ответ в out.
func (c *Client) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response from %s: %w", path, err)
		}
	}
	return nil
}

// checkStatus переводит не-2xx статусы в ошибки доменной таксономии.
func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if message := decodeErrorMessage(resp.Body); message != "" {
			return fmt.Errorf("%w: %s", domain.ErrValidation, message)
		}
		return domain.ErrValidation
	default:
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
}

// decodeErrorMessage достаёт человекочитаемое сообщение из 4xx-ответа.
func decodeErrorMessage(body io.Reader) string {
	var errResp errorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err != nil {
		return ""
	}
	return errResp.Message
}

// FetchOffers реализует порт OffersAPIPort: GET /offers.
func (c *Client) FetchOffers(ctx context.Context) ([]domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "APIClient",
		"method":    "FetchOffers",
	})

	var dtos []offerDTO
	if err := c.getJSON(ctx, "/offers", &dtos); err != nil {
		logger.Error("Failed to fetch offers", err, nil)
		return nil, err
	}

	offers := make([]domain.Offer, 0, len(dtos))
	for _, dto := range dtos {
		offers = append(offers, dto.toDomain())
	}
	logger.Info("Offers fetched", port.Fields{"count": len(offers)})
	return offers, nil
}

// FetchOfferDetails - GET /offers/{id}. Неизвестный id - domain.ErrNotFound.
func (c *Client) FetchOfferDetails(ctx context.Context, offerID string) (*domain.OfferDetails, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "APIClient",
		"method":    "FetchOfferDetails",
		"offer_id":  offerID,
	})

	var dto offerDetailsDTO
	if err := c.getJSON(ctx, "/offers/"+url.PathEscape(offerID), &dto); err != nil {
		logger.Error("Failed to fetch offer details", err, nil)
		return nil, err
	}

	details := dto.toDomain()
	logger.Info("Offer details fetched", nil)
	return &details, nil
}

// FetchNearbyOffers - GET /offers/{id}/nearby.
func (c *Client) FetchNearbyOffers(ctx context.Context, offerID string) ([]domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "APIClient",
		"method":    "FetchNearbyOffers",
		"offer_id":  offerID,
	})

	var dtos []offerDTO
	if err := c.getJSON(ctx, "/offers/"+url.PathEscape(offerID)+"/nearby", &dtos); err != nil {
		logger.Error("Failed to fetch nearby offers", err, nil)
		return nil, err
	}

	offers := make([]domain.Offer, 0, len(dtos))
	for _, dto := range dtos {
		offers = append(offers, dto.toDomain())
	}
	return offers, nil
}

// FetchComments - GET /comments/{id}.
func (c *Client) FetchComments(ctx context.Context, offerID string) ([]domain.Review, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "APIClient",
		"method":    "FetchComments",
		"offer_id":  offerID,
	})

	var dtos []reviewDTO
	if err := c.getJSON(ctx, "/comments/"+url.PathEscape(offerID), &dtos); err != nil {
		logger.Error("Failed to fetch comments", err, nil)
		return nil, err
	}

	reviews := make([]domain.Review, 0, len(dtos))
	for _, dto := range dtos {
		reviews = append(reviews, dto.toDomain())
	}
	return reviews, nil
}

// SubmitComment - POST /comments/{id}. Возвращает принятый сервером отзыв.
func (c *Client) SubmitComment(ctx context.Context, offerID, comment string, rating int) (*domain.Review, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "APIClient",
		"method":    "SubmitComment",
		"offer_id":  offerID,
	})

	var dto reviewDTO
	payload := commentRequest{Comment: comment, Rating: rating}
	if err := c.postJSON(ctx, "/comments/"+url.PathEscape(offerID), payload, &dto); err != nil {
		logger.Error("Failed to submit comment", err, nil)
		return nil, err
	}

	review := dto.toDomain()
	logger.Info("Comment submitted", port.Fields{"review_id": review.ID})
	return &review, nil
}

// FetchFavorites - GET /favorite.
func (c *Client) FetchFavorites(ctx context.Context) ([]domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "APIClient",
		"method":    "FetchFavorites",
	})

	var dtos []offerDTO
	if err := c.getJSON(ctx, "/favorite", &dtos); err != nil {
		logger.Error("Failed to fetch favorites", err, nil)
		return nil, err
	}

	offers := make([]domain.Offer, 0, len(dtos))
	for _, dto := range dtos {
		offers = append(offers, dto.toDomain())
	}
	return offers, nil
}

// ChangeFavoriteStatus - POST /favorite/{id}/{status}. Возвращает
// предложение с подтверждённым сервером значением флага.
func (c *Client) ChangeFavoriteStatus(ctx context.Context, offerID string, status domain.FavoriteStatus) (*domain.Offer, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "APIClient",
		"method":    "ChangeFavoriteStatus",
		"offer_id":  offerID,
		"status":    int(status),
	})

	var dto offerDTO
	path := fmt.Sprintf("/favorite/%s/%d", url.PathEscape(offerID), int(status))
	if err := c.postJSON(ctx, path, nil, &dto); err != nil {
		logger.Error("Failed to change favorite status", err, nil)
		return nil, err
	}

	offer := dto.toDomain()
	logger.Info("Favorite status changed", port.Fields{"is_favorite": offer.IsFavorite})
	return &offer, nil
}

// CheckAuth реализует порт AuthAPIPort: GET /login. Ошибка здесь - обычное
// дело для неавторизованной загрузки страницы; решение о её подавлении
// принимает use case.
func (c *Client) CheckAuth(ctx context.Context) (*domain.AuthInfo, error) {
	var dto authInfoDTO
	if err := c.getJSON(ctx, "/login", &dto); err != nil {
		return nil, err
	}
	user := dto.toDomain()
	return &user, nil
}

// Login - POST /login. 4xx с телом {message} превращается в
// domain.ErrValidation с текстом сервера.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.AuthInfo, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "APIClient",
		"method":    "Login",
		"email":     email,
	})

	var dto authInfoDTO
	if err := c.postJSON(ctx, "/login", loginRequest{Email: email, Password: password}, &dto); err != nil {
		logger.Error("Login request failed", err, nil)
		return nil, err
	}

	user := dto.toDomain()
	logger.Info("Login succeeded", port.Fields{"user_id": user.ID})
	return &user, nil
}
