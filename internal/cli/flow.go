package cli

import (
	"encoding/json"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/carson-networks/budget-flow/internal/flowgraph"
	"github.com/carson-networks/budget-flow/internal/service"
)

// flowOutput is the JSON printed by the flow command. Values are numbers so
// the output feeds a Sankey renderer as is; ExactValues keep the decimals.
type flowOutput struct {
	Period        string    `json:"period,omitempty"`
	Labels        []string  `json:"labels"`
	DisplayLabels []string  `json:"displayLabels"`
	Sources       []int     `json:"sources"`
	Targets       []int     `json:"targets"`
	Values        []float64 `json:"values"`
	ExactValues   []string  `json:"exactValues"`
}

func newFlowOutput(period string, g *flowgraph.FlowGraph, currency string) flowOutput {
	return flowOutput{
		Period:        period,
		Labels:        g.Labels,
		DisplayLabels: g.DisplayLabels(currency),
		Sources:       g.Sources,
		Targets:       g.Targets,
		Values:        g.FloatValues(),
		ExactValues:   exactValues(g.Values),
	}
}

func exactValues(values []decimal.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func flowCommand() *cli.Command {
	return &cli.Command{
		Name:  "flow",
		Usage: "build the revenue/expense flow graph as JSON",
		Flags: append(transactionFlags(),
			&cli.StringFlag{
				Name:  "period",
				Usage: "build one graph per month or year",
			},
		),
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			defer e.close()

			filter, err := transactionFilter(c)
			if err != nil {
				return err
			}
			transactions, err := e.Service.Categorize.ListTransactions(c.Context, filter)
			if err != nil {
				return err
			}

			currency := e.Config.Graph.Currency
			var out []flowOutput
			if p := c.String("period"); p != "" {
				period, err := service.ParsePeriod(p)
				if err != nil {
					return err
				}
				graphs, err := e.Service.Flow.BuildPeriods(c.Context, transactions, period)
				if err != nil {
					return err
				}
				for _, pg := range graphs {
					if e.Logger.IsLevelEnabled(logrus.DebugLevel) {
						e.Logger.Debug(spew.Sdump(pg))
					}
					out = append(out, newFlowOutput(pg.Key, pg.Graph, currency))
				}
			} else {
				g, _, err := e.Service.Flow.BuildFromTransactions(c.Context, transactions)
				if err != nil {
					return err
				}
				if e.Logger.IsLevelEnabled(logrus.DebugLevel) {
					e.Logger.Debug(spew.Sdump(g))
				}
				out = append(out, newFlowOutput("", g, currency))
			}

			enc := json.NewEncoder(c.App.Writer)
			enc.SetIndent("", "  ")
			if len(out) == 1 && out[0].Period == "" {
				return enc.Encode(out[0])
			}
			return enc.Encode(out)
		},
	}
}
