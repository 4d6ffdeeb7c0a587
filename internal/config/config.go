package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sirupsen/logrus"
)

const envPrefix = "BUDGET_"

type Config struct {
	HTTP         HTTPConfig         `koanf:"http"`
	Log          LogConfig          `koanf:"log"`
	Rules        RulesConfig        `koanf:"rules"`
	Transactions TransactionsConfig `koanf:"transactions"`
	Graph        GraphConfig        `koanf:"graph"`
	Operator     OperatorConfig     `koanf:"operator"`
}

type HTTPConfig struct {
	Port string `koanf:"port"`
}

type LogConfig struct {
	Level string `koanf:"level"`
}

type RulesConfig struct {
	File string `koanf:"file"`
}

type TransactionsConfig struct {
	File string `koanf:"file"`
}

// GraphConfig names the hub nodes of the flow graph and controls rendering.
type GraphConfig struct {
	Revenue           string   `koanf:"revenue"`
	Expenses          string   `koanf:"expenses"`
	Total             string   `koanf:"total"`
	Currency          string   `koanf:"currency"`
	ElideZero         bool     `koanf:"elidezero"`
	RevenueCategories []string `koanf:"revenuecategories"`
}

type OperatorConfig struct {
	Workers int `koanf:"workers"`
}

// defaults mirror a local setup with rules.yaml next to the binary.
var defaults = map[string]interface{}{
	"http.port":               "9446",
	"log.level":               "info",
	"rules.file":              "rules.yaml",
	"transactions.file":       "transactions.json",
	"graph.revenue":           "Revenue",
	"graph.expenses":          "Expenses",
	"graph.total":             "Total",
	"graph.currency":          "€",
	"graph.elidezero":         false,
	"graph.revenuecategories": []string{"Income"},
	"operator.workers":        1,
}

// Load layers defaults, an optional YAML file and BUDGET_* environment
// variables, in that order. BUDGET_GRAPH_REVENUECATEGORIES takes a comma
// separated list.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if port, err := strconv.Atoi(c.HTTP.Port); err != nil {
		errs = append(errs, fmt.Errorf("invalid port %q: must be a number", c.HTTP.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid log level %q", c.Log.Level))
	}

	if c.Rules.File == "" {
		errs = append(errs, errors.New("rules file is required"))
	}

	labels := map[string]string{
		"revenue":  c.Graph.Revenue,
		"expenses": c.Graph.Expenses,
		"total":    c.Graph.Total,
	}
	seen := make(map[string]string, len(labels))
	for _, key := range []string{"revenue", "expenses", "total"} {
		label := labels[key]
		if label == "" {
			errs = append(errs, fmt.Errorf("graph.%s label is required", key))
			continue
		}
		if other, ok := seen[label]; ok {
			errs = append(errs, fmt.Errorf("graph.%s and graph.%s share the label %q", other, key, label))
		}
		seen[label] = key
	}

	for _, name := range c.Graph.RevenueCategories {
		if key, ok := seen[name]; ok {
			errs = append(errs, fmt.Errorf("revenue category %q collides with graph.%s", name, key))
		}
	}

	if c.Operator.Workers < 1 {
		errs = append(errs, fmt.Errorf("operator.workers must be at least 1, got %d", c.Operator.Workers))
	}

	return errors.Join(errs...)
}
