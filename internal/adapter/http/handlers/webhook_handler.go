package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "pix_checkout/internal/adapter/http/dto/response"
	"pix_checkout/internal/domain/entities"
	"pix_checkout/internal/usecase"
	"pix_checkout/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errWebhookEmptyBody   = pkg.NewDomainErrorSimple("EMPTY_BODY", "Request body is empty", http.StatusBadRequest)
	errWebhookInvalidJSON = pkg.NewDomainErrorSimple("INVALID_JSON", "Request body is not valid JSON", http.StatusBadRequest)
	errMethodNotAllowed   = pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)
)

const webhookAllowedMethods = "GET, POST, OPTIONS"

// WebhookHandler receives payment status notifications from the gateway.
type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

// Handle dispatches on method: GET diagnostic, OPTIONS preflight, POST
// notification; everything else is 405.
//
// @Summary      Gateway webhook
// @Description  Receives transaction notifications. GET returns a health diagnostic.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.WebhookResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      405  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /webhooks/bestfy [post]
func (h *WebhookHandler) Handle(c *gin.Context) {
	requestID := newRequestID()
	c.Header("X-Request-Id", requestID)

	switch c.Request.Method {
	case http.MethodGet:
		c.JSON(http.StatusOK, response.WebhookHealthResponse{
			RequestID: requestID,
			Health:    h.usecase.Health(c.Request.Context()),
		})
	case http.MethodOptions:
		c.Header("Allow", webhookAllowedMethods)
		c.Status(http.StatusNoContent)
	case http.MethodPost:
		h.receive(c, requestID)
	default:
		c.Header("Allow", webhookAllowedMethods)
		c.JSON(errMethodNotAllowed.HTTPStatus, errMethodNotAllowed.ToHTTPError())
	}
}

func (h *WebhookHandler) receive(c *gin.Context, requestID string) {
	raw, err := c.GetRawData()
	if err != nil || len(strings.TrimSpace(string(raw))) == 0 {
		log.Printf("[webhook][handler] empty body request_id=%s", requestID)
		c.JSON(errWebhookEmptyBody.HTTPStatus, errWebhookEmptyBody.WithDetails(map[string]any{"request_id": requestID}).ToHTTPError())
		return
	}

	var event entities.WebhookEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		log.Printf("[webhook][handler] invalid json request_id=%s err=%v", requestID, err)
		c.JSON(errWebhookInvalidJSON.HTTPStatus, errWebhookInvalidJSON.WithDetails(map[string]any{"request_id": requestID}).ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] received request_id=%s type=%s bestfy_id=%s", requestID, event.Type, event.TransactionID())

	result, err := h.usecase.Process(c.Request.Context(), event)
	if err != nil {
		log.Printf("[webhook][handler] process failed request_id=%s err=%v", requestID, err)
		appErr := mapWebhookError(err).WithDetails(map[string]any{"request_id": requestID})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookResponse{Success: true, RequestID: requestID, Result: result})
}

func mapWebhookError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingTransactionID):
		return pkg.NewDomainErrorSimple("MISSING_TRANSACTION_ID", "Transaction id not found in payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOwnerNotResolved):
		return pkg.NewDomainErrorSimple("OWNER_NOT_RESOLVED", "Could not determine which merchant owns this transaction", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func newRequestID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
