package purchase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/purchase-forwarder/internal/directory"
	"github.com/carson-networks/purchase-forwarder/internal/mapping"
	"github.com/carson-networks/purchase-forwarder/internal/service"
	"github.com/carson-networks/purchase-forwarder/internal/ynab"
)

type mockPurchaseService struct {
	mock.Mock
}

func (m *mockPurchaseService) ForwardPurchase(ctx context.Context, purchase mapping.Purchase) (*service.ForwardResult, error) {
	args := m.Called(ctx, purchase)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ForwardResult), args.Error(1)
}

func newTestAPI(t *testing.T, svc purchaseForwarder) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreatePurchaseHandler(svc).Register(api)
	return api
}

func validBody() CreatePurchaseBody {
	return CreatePurchaseBody{
		Amount:   "$45.00",
		Name:     "x",
		Card:     "Chase",
		Merchant: "Costco",
		Date:     "2025-01-01T10:00:00-05:00",
	}
}

func categorized() *service.ForwardResult {
	categoryID := "cat-9"
	return &service.ForwardResult{
		TransactionID: "tx-1",
		Transaction: mapping.Transaction{
			AccountID:  "acc-1",
			Date:       civil.Date{Year: 2025, Month: 1, Day: 1},
			Amount:     45000,
			PayeeName:  "Costco",
			CategoryID: &categoryID,
		},
	}
}

func decodeError(t *testing.T, resp *httptest.ResponseRecorder) huma.ErrorModel {
	t.Helper()
	var model huma.ErrorModel
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &model))
	return model
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreatePurchase_Success(t *testing.T) {
	mockSvc := new(mockPurchaseService)
	mockSvc.On("ForwardPurchase", mock.Anything, mapping.Purchase{
		Amount:   "$45.00",
		Name:     "x",
		Card:     "Chase",
		Merchant: "Costco",
		Date:     "2025-01-01T10:00:00-05:00",
	}).Return(categorized(), nil).Once()

	resp := newTestAPI(t, mockSvc).Post("/", validBody())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CreatePurchaseResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Transaction Posted", body.Message)
	assert.Equal(t, "tx-1", body.TransactionID)
	assert.Empty(t, body.Advisory)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreatePurchase_NeedsCategorization(t *testing.T) {
	result := categorized()
	result.Transaction.CategoryID = nil
	result.Transaction.PayeeName = "Target"

	mockSvc := new(mockPurchaseService)
	mockSvc.On("ForwardPurchase", mock.Anything, mock.Anything).Return(result, nil).Once()

	body := validBody()
	body.Merchant = "Target"
	resp := newTestAPI(t, mockSvc).Post("/", body)

	assert.Equal(t, http.StatusOK, resp.Code)
	var got CreatePurchaseResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "Transaction Posted", got.Message)
	assert.Equal(t, "Target needs to be categorized", got.Advisory)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreatePurchase_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"invalid amount", fmt.Errorf("%w: %q", mapping.ErrInvalidAmount, "$$5")},
		{"invalid date", fmt.Errorf("%w: %q", mapping.ErrInvalidDate, "yesterday")},
		{"unknown card", fmt.Errorf("%w for card: %s", directory.ErrAccountNotFound, "Discover")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(mockPurchaseService)
			mockSvc.On("ForwardPurchase", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			resp := newTestAPI(t, mockSvc).Post("/", validBody())

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			model := decodeError(t, resp)
			assert.Equal(t, "Bad Request: "+tt.err.Error(), model.Detail)
		})
	}
}

func TestHTTP_CreatePurchase_SubmissionFailure(t *testing.T) {
	apiErr := &ynab.APIError{StatusCode: http.StatusUnauthorized, Name: "unauthorized", Detail: "token tok-secret expired"}
	mockSvc := new(mockPurchaseService)
	mockSvc.On("ForwardPurchase", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: %w", service.ErrSubmissionFailed, apiErr)).Once()

	resp := newTestAPI(t, mockSvc).Post("/", validBody())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	model := decodeError(t, resp)
	assert.Equal(t, "Unable to Post Transaction", model.Detail)
	assert.NotContains(t, resp.Body.String(), "tok-secret")
}

func TestHTTP_CreatePurchase_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockPurchaseService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/", map[string]any{
		"amount": "$5.00",
		"card":   "Chase",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ForwardPurchase")
}

func TestHTTP_CreatePurchase_ExtraField(t *testing.T) {
	mockSvc := new(mockPurchaseService)

	resp := newTestAPI(t, mockSvc).Post("/", map[string]any{
		"amount":   "$5.00",
		"name":     "x",
		"card":     "Chase",
		"merchant": "Costco",
		"date":     "2025-01-01",
		"memo":     "unexpected",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ForwardPurchase")
}

func TestHTTP_CreatePurchase_WrongFieldType(t *testing.T) {
	mockSvc := new(mockPurchaseService)

	resp := newTestAPI(t, mockSvc).Post("/", map[string]any{
		"amount":   45.0,
		"name":     "x",
		"card":     "Chase",
		"merchant": "Costco",
		"date":     "2025-01-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ForwardPurchase")
}

func TestHTTP_CreatePurchase_MalformedJSON(t *testing.T) {
	mockSvc := new(mockPurchaseService)

	resp := newTestAPI(t, mockSvc).Post("/", "Content-Type: application/json", strings.NewReader(`{"amount": `))

	assert.Contains(t, []int{http.StatusBadRequest, http.StatusUnprocessableEntity}, resp.Code)
	mockSvc.AssertNotCalled(t, "ForwardPurchase")
}

// -- toHTTPError unit tests --

func TestToHTTPError_UnknownErrorIsServerError(t *testing.T) {
	var statusErr huma.StatusError
	assert.ErrorAs(t, toHTTPError(fmt.Errorf("something else")), &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.GetStatus())
}
