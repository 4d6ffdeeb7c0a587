package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-flow/internal/logging"
	"github.com/carson-networks/budget-flow/internal/service"
)

// CategorizeBody is the request body for categorizing transactions.
type CategorizeBody struct {
	Transactions []Transaction `json:"transactions" required:"true" minItems:"1" doc:"Transactions to categorize"`
}

// CategorizeInput is the Huma input for categorizing transactions.
type CategorizeInput struct {
	Body CategorizeBody
}

// CategorizeResponseBody is the response body for categorizing transactions.
type CategorizeResponseBody struct {
	Transactions []CategorizedTransaction `json:"transactions" doc:"Transactions in request order with their category"`
}

// CategorizeOutput is the Huma output for categorizing transactions.
type CategorizeOutput struct {
	Body CategorizeResponseBody
}

// transactionCategorizer is the interface for categorizing transactions.
type transactionCategorizer interface {
	Categorize(ctx context.Context, transactions []service.Transaction) ([]service.CategorizedTransaction, error)
}

// CategorizeHandler handles POST /v1/categorize.
type CategorizeHandler struct {
	CategorizeService transactionCategorizer
}

// NewCategorizeHandler creates a new CategorizeHandler.
func NewCategorizeHandler(svc transactionCategorizer) *CategorizeHandler {
	return &CategorizeHandler{CategorizeService: svc}
}

// Register registers the categorize endpoint with the Huma API.
func (h *CategorizeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "categorize-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/categorize",
		Summary:     "Categorize transactions",
		Description: "Assigns each transaction the first category whose keyword appears in its description.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *CategorizeHandler) handle(ctx context.Context, input *CategorizeInput) (*CategorizeOutput, error) {
	transactions, err := ParseTransactions(input.Body.Transactions)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("categorizeMs")
	}
	categorized, err := h.CategorizeService.Categorize(ctx, transactions)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to categorize transactions", err)
	}

	return &CategorizeOutput{Body: CategorizeResponseBody{Transactions: FromCategorized(categorized)}}, nil
}
