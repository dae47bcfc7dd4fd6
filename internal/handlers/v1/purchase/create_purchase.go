package purchase

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/purchase-forwarder/internal/directory"
	"github.com/carson-networks/purchase-forwarder/internal/logging"
	"github.com/carson-networks/purchase-forwarder/internal/mapping"
	"github.com/carson-networks/purchase-forwarder/internal/service"
)

// CreatePurchaseBody is the webhook payload sent for each card purchase.
type CreatePurchaseBody struct {
	_        struct{} `json:"-" additionalProperties:"false"`
	Amount   string   `json:"amount" required:"true" doc:"Purchase amount, optionally prefixed with a currency symbol" example:"$6.22"`
	Name     string   `json:"name" required:"true" doc:"Name reported by the card provider"`
	Card     string   `json:"card" required:"true" doc:"Card name, matched against the directory accounts" example:"Chase"`
	Merchant string   `json:"merchant" required:"true" doc:"Merchant name, used as payee and category key" example:"Costco"`
	Date     string   `json:"date" required:"true" doc:"ISO-8601 date or timestamp; only the date part is used" example:"2025-01-01T10:00:00-05:00"`
}

// CreatePurchaseInput is the Huma input for forwarding a purchase.
type CreatePurchaseInput struct {
	Body CreatePurchaseBody
}

// CreatePurchaseResponse is the response body for a forwarded purchase.
type CreatePurchaseResponse struct {
	Message       string `json:"message" doc:"Outcome of the request"`
	TransactionID string `json:"transactionID,omitempty" doc:"YNAB transaction id"`
	Advisory      string `json:"advisory,omitempty" doc:"Set when the merchant still needs a category"`
}

// CreatePurchaseOutput is the Huma output for forwarding a purchase.
type CreatePurchaseOutput struct {
	Status int `json:"status" doc:"HTTP status"`
	Body   CreatePurchaseResponse
}

type purchaseForwarder interface {
	ForwardPurchase(ctx context.Context, purchase mapping.Purchase) (*service.ForwardResult, error)
}

// CreatePurchaseHandler handles POST /.
type CreatePurchaseHandler struct {
	service purchaseForwarder
}

func NewCreatePurchaseHandler(svc purchaseForwarder) *CreatePurchaseHandler {
	return &CreatePurchaseHandler{service: svc}
}

// Register registers the purchase webhook with the Huma API.
func (h *CreatePurchaseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-purchase",
		Method:        http.MethodPost,
		Path:          "/",
		Summary:       "Forward purchase",
		Description:   "Maps a card purchase onto the configured budget and posts it as a YNAB transaction.",
		Tags:          []string{"Purchases"},
		DefaultStatus: http.StatusOK,
	}, h.handle)
}

func (h *CreatePurchaseHandler) handle(ctx context.Context, input *CreatePurchaseInput) (*CreatePurchaseOutput, error) {
	logData := logging.GetLogData(ctx)
	logData.AddData("merchant", input.Body.Merchant)
	logData.AddData("card", input.Body.Card)

	endTimer := logData.AddTiming("forwardPurchaseMs")
	result, err := h.service.ForwardPurchase(ctx, toPurchase(input.Body))
	endTimer()

	if err != nil {
		logData.SetError(err)
		return nil, toHTTPError(err)
	}

	logData.AddData("transactionID", result.TransactionID)
	logData.AddData("needsCategorization", result.NeedsCategorization())

	resp := CreatePurchaseResponse{
		Message:       "Transaction Posted",
		TransactionID: result.TransactionID,
	}
	if result.NeedsCategorization() {
		resp.Advisory = fmt.Sprintf("%s needs to be categorized", input.Body.Merchant)
		logData.Log().Warn(resp.Advisory)
	}

	return &CreatePurchaseOutput{Status: http.StatusOK, Body: resp}, nil
}

func toPurchase(body CreatePurchaseBody) mapping.Purchase {
	return mapping.Purchase{
		Amount:   body.Amount,
		Name:     body.Name,
		Card:     body.Card,
		Merchant: body.Merchant,
		Date:     body.Date,
	}
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, mapping.ErrInvalidAmount),
		errors.Is(err, mapping.ErrInvalidDate),
		errors.Is(err, directory.ErrAccountNotFound):
		return huma.NewError(http.StatusBadRequest, "Bad Request: "+err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, "Unable to Post Transaction")
	}
}
