package flow

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/budget-flow/internal/flowgraph"
	"github.com/carson-networks/budget-flow/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-flow/internal/logging"
	"github.com/carson-networks/budget-flow/internal/service"
)

// BuildFlowBody is the request body for building a flow graph. Either the
// grouped amounts or raw transactions are given, not both.
type BuildFlowBody struct {
	Revenues     map[string]map[string]string `json:"revenues,omitempty" doc:"Category -> subcategory -> non-negative decimal amount"`
	Expenses     map[string]map[string]string `json:"expenses,omitempty" doc:"Category -> subcategory -> non-negative decimal amount"`
	Transactions []transaction.Transaction    `json:"transactions,omitempty" doc:"Raw transactions, categorized with the stored rules"`
}

// BuildFlowInput is the Huma input for building a flow graph.
type BuildFlowInput struct {
	Body BuildFlowBody
}

// FlowGraph is the API response model for a flow graph.
type FlowGraph struct {
	Labels        []string  `json:"labels" doc:"Node labels, index is the node id"`
	DisplayLabels []string  `json:"displayLabels" doc:"Labels with node value and currency"`
	Sources       []int     `json:"sources" doc:"Edge source node ids"`
	Targets       []int     `json:"targets" doc:"Edge target node ids"`
	Values        []float64 `json:"values" doc:"Edge values as numbers, ready for a renderer"`
	ExactValues   []string  `json:"exactValues" doc:"Edge values as exact decimal strings"`
	NodeValues    []string  `json:"nodeValues" doc:"Exact decimal value through each node"`
}

// BuildFlowResponseBody is the response body for building a flow graph.
type BuildFlowResponseBody struct {
	Graph        FlowGraph                            `json:"graph" doc:"The flow graph"`
	Transactions []transaction.CategorizedTransaction `json:"transactions,omitempty" doc:"Categorized transactions, when transactions were sent"`
}

// BuildFlowOutput is the Huma output for building a flow graph.
type BuildFlowOutput struct {
	Body BuildFlowResponseBody
}

// flowBuilder is the interface for building flow graphs.
type flowBuilder interface {
	Build(ctx context.Context, req service.FlowRequest) (*flowgraph.FlowGraph, error)
	BuildFromTransactions(ctx context.Context, transactions []service.Transaction) (*flowgraph.FlowGraph, []service.CategorizedTransaction, error)
}

// BuildFlowHandler handles POST /v1/flowgraph.
type BuildFlowHandler struct {
	FlowService flowBuilder
	Currency    string
}

// NewBuildFlowHandler creates a new BuildFlowHandler.
func NewBuildFlowHandler(svc flowBuilder, currency string) *BuildFlowHandler {
	return &BuildFlowHandler{FlowService: svc, Currency: currency}
}

// Register registers the flow graph endpoint with the Huma API.
func (h *BuildFlowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "build-flowgraph",
		Method:      http.MethodPost,
		Path:        "/v1/flowgraph",
		Summary:     "Build flow graph",
		Description: "Builds a balanced revenue/expense flow graph ready for a Sankey renderer.",
		Tags:        []string{"Flow"},
	}, h.handle)
}

// parseAmounts converts string amounts, rejecting negative or malformed ones.
func parseAmounts(in map[string]map[string]string) (flowgraph.CategorizedAmounts, error) {
	out := make(flowgraph.CategorizedAmounts, len(in))
	for category, subs := range in {
		out.Touch(category)
		for sub, raw := range subs {
			amount, err := flowgraph.ParseAmount(raw)
			if err != nil {
				return nil, fmt.Errorf("%s/%s: %w", category, sub, err)
			}
			out.Add(category, sub, amount)
		}
	}
	return out, nil
}

func parseBuildFlowInput(input *BuildFlowInput) (*service.FlowRequest, []service.Transaction, error) {
	body := input.Body
	if len(body.Transactions) > 0 {
		if len(body.Revenues) > 0 || len(body.Expenses) > 0 {
			return nil, nil, huma.NewError(http.StatusBadRequest, "send either transactions or revenues/expenses, not both")
		}
		transactions, err := transaction.ParseTransactions(body.Transactions)
		return nil, transactions, err
	}

	revenues, err := parseAmounts(body.Revenues)
	if err != nil {
		return nil, nil, huma.NewError(http.StatusBadRequest, "invalid revenues", err)
	}
	expenses, err := parseAmounts(body.Expenses)
	if err != nil {
		return nil, nil, huma.NewError(http.StatusBadRequest, "invalid expenses", err)
	}
	return &service.FlowRequest{Revenues: revenues, Expenses: expenses}, nil, nil
}

func (h *BuildFlowHandler) handle(ctx context.Context, input *BuildFlowInput) (*BuildFlowOutput, error) {
	req, transactions, err := parseBuildFlowInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData := logging.GetLogData(ctx); logData != nil {
		stopTimer = logData.AddTiming("buildFlowMs")
	}

	var (
		graph       *flowgraph.FlowGraph
		categorized []service.CategorizedTransaction
	)
	if req != nil {
		graph, err = h.FlowService.Build(ctx, *req)
	} else {
		graph, categorized, err = h.FlowService.BuildFromTransactions(ctx, transactions)
	}
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, toHumaError(err)
	}

	resp := BuildFlowResponseBody{Graph: h.toFlowGraph(graph)}
	if categorized != nil {
		resp.Transactions = transaction.FromCategorized(categorized)
	}
	return &BuildFlowOutput{Body: resp}, nil
}

func (h *BuildFlowHandler) toFlowGraph(g *flowgraph.FlowGraph) FlowGraph {
	out := FlowGraph{
		Labels:        g.Labels,
		DisplayLabels: g.DisplayLabels(h.Currency),
		Sources:       g.Sources,
		Targets:       g.Targets,
		Values:        g.FloatValues(),
		ExactValues:   make([]string, len(g.Values)),
		NodeValues:    make([]string, len(g.NodeValues)),
	}
	for i, v := range g.Values {
		out.ExactValues[i] = v.String()
	}
	for i, v := range g.NodeValues {
		out.NodeValues[i] = v.String()
	}
	return out
}

func toHumaError(err error) error {
	switch {
	case errors.Is(err, flowgraph.ErrInvalidAmount), errors.Is(err, flowgraph.ErrInvalidFlow):
		return huma.NewError(http.StatusBadRequest, "invalid flow input", err)
	case errors.Is(err, flowgraph.ErrEmptyGraph):
		return huma.NewError(http.StatusUnprocessableEntity, "nothing to build", err)
	default:
		return huma.NewError(http.StatusInternalServerError, "failed to build flow graph", err)
	}
}
