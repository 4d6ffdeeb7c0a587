package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-flow/internal/config"
	"github.com/carson-networks/budget-flow/internal/flowgraph"
	"github.com/carson-networks/budget-flow/internal/logging"
)

// GraphSettings are the flow graph options taken from configuration.
type GraphSettings struct {
	RevenueLabel      string
	ExpensesLabel     string
	TotalLabel        string
	RevenueCategories []string
	ElideZero         bool
}

// GraphSettingsFromConfig copies the graph section of the configuration.
func GraphSettingsFromConfig(cfg config.GraphConfig) GraphSettings {
	return GraphSettings{
		RevenueLabel:      cfg.Revenue,
		ExpensesLabel:     cfg.Expenses,
		TotalLabel:        cfg.Total,
		RevenueCategories: append([]string(nil), cfg.RevenueCategories...),
		ElideZero:         cfg.ElideZero,
	}
}

func (s GraphSettings) builderOptions() []flowgraph.Option {
	var opts []flowgraph.Option
	if s.RevenueLabel != "" {
		opts = append(opts, flowgraph.WithRevenueLabel(s.RevenueLabel))
	}
	if s.ExpensesLabel != "" {
		opts = append(opts, flowgraph.WithExpensesLabel(s.ExpensesLabel))
	}
	if s.TotalLabel != "" {
		opts = append(opts, flowgraph.WithTotalLabel(s.TotalLabel))
	}
	return opts
}

// FlowRequest holds pre-grouped revenue and expense amounts.
type FlowRequest struct {
	Revenues flowgraph.CategorizedAmounts
	Expenses flowgraph.CategorizedAmounts
}

// Period selects how transactions are split by BuildPeriods.
type Period int

const (
	PeriodMonth Period = iota
	PeriodYear
)

func (p Period) key(t time.Time) string {
	if p == PeriodYear {
		return t.Format("2006")
	}
	return t.Format("2006-01")
}

// ParsePeriod accepts "month" or "year".
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "month":
		return PeriodMonth, nil
	case "year":
		return PeriodYear, nil
	default:
		return 0, fmt.Errorf("unknown period %q: expected month or year", s)
	}
}

// PeriodGraph is the flow graph of one period, keyed "2006-01" or "2006".
type PeriodGraph struct {
	Key   string
	Graph *flowgraph.FlowGraph
}

// FlowService builds flow graphs from grouped amounts or raw transactions.
type FlowService struct {
	categorize *CategorizeService
	settings   GraphSettings
}

func NewFlowService(categorize *CategorizeService, settings GraphSettings) *FlowService {
	return &FlowService{categorize: categorize, settings: settings}
}

// Settings returns the graph settings the service was created with.
func (s *FlowService) Settings() GraphSettings {
	return s.settings
}

// Build walks the revenue and expense mappings into a fresh builder, balances
// them and finalizes the graph. Both mappings empty yields ErrEmptyGraph.
func (s *FlowService) Build(ctx context.Context, req FlowRequest) (*flowgraph.FlowGraph, error) {
	g, err := s.build(req)
	if err != nil {
		return nil, err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("nodeCount", len(g.Labels))
		logData.AddData("edgeCount", g.EdgeCount())
	}
	return g, nil
}

func (s *FlowService) build(req FlowRequest) (*flowgraph.FlowGraph, error) {
	b := flowgraph.NewBuilder(s.settings.builderOptions()...)

	if err := b.ProcessRevenues(req.Revenues); err != nil {
		return nil, err
	}
	if err := b.ProcessExpenses(req.Expenses); err != nil {
		return nil, err
	}
	if len(req.Revenues) > 0 || len(req.Expenses) > 0 {
		if err := b.Balance(); err != nil {
			return nil, err
		}
	}

	g, err := b.Build()
	if err != nil {
		return nil, err
	}
	if s.settings.ElideZero {
		g = g.WithoutZeroEdges()
	}
	return g, nil
}

// BuildFromTransactions categorizes transactions with the stored rules and
// builds a single graph from them.
func (s *FlowService) BuildFromTransactions(ctx context.Context, transactions []Transaction) (*flowgraph.FlowGraph, []CategorizedTransaction, error) {
	categorized, err := s.categorize.Categorize(ctx, transactions)
	if err != nil {
		return nil, nil, err
	}

	g, err := s.Build(ctx, s.group(categorized, nil))
	if err != nil {
		return nil, nil, err
	}
	return g, categorized, nil
}

// BuildPeriods builds one graph per period, each with its own builder.
// Every period carries every known category so layouts line up. Results are
// ordered by period key.
func (s *FlowService) BuildPeriods(ctx context.Context, transactions []Transaction, period Period) ([]PeriodGraph, error) {
	c, err := s.categorize.Categorizer(ctx)
	if err != nil {
		return nil, err
	}
	categorized := CategorizeWith(c, transactions)
	known := c.ListCategories().Names()

	byPeriod := map[string][]CategorizedTransaction{}
	for _, tx := range categorized {
		key := period.key(tx.Date)
		byPeriod[key] = append(byPeriod[key], tx)
	}

	keys := make([]string, 0, len(byPeriod))
	for key := range byPeriod {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]PeriodGraph, len(keys))
	g, gctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			graph, err := s.build(s.group(byPeriod[key], known))
			if err != nil {
				return fmt.Errorf("period %s: %w", key, err)
			}
			results[i] = PeriodGraph{Key: key, Graph: graph}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("periodCount", len(results))
	}
	return results, nil
}

func (s *FlowService) group(categorized []CategorizedTransaction, known []string) FlowRequest {
	revenues, expenses := Group(categorized, GroupOptions{
		RevenueCategories: s.settings.RevenueCategories,
		KnownCategories:   known,
	})
	return FlowRequest{Revenues: revenues, Expenses: expenses}
}
