// Package testkit generates seeded synthetic tables so tests and the CLI
// demo run without an input file.
package testkit

import (
	"math"
	"math/rand"

	"goeda/domain/table"
)

// GeneratorConfig configures the synthetic dataset generator
type GeneratorConfig struct {
	Rows        int     `json:"rows"`
	MissingRate float64 `json:"missing_rate"`
	OutlierRate float64 `json:"outlier_rate"`
	Seed        int64   `json:"seed"`
}

// DefaultGeneratorConfig returns sensible defaults for demo data generation
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Rows:        500,
		MissingRate: 0.05,
		OutlierRate: 0.02,
		Seed:        42,
	}
}

// Generator produces synthetic order tables with injected nulls and outliers
type Generator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewGenerator creates a generator with the given config
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// OrdersTable builds a retail-style demo table: two numeric columns with
// injected nulls and outliers, two categorical columns, one of them with
// missing cells. Deterministic for a given seed.
func (g *Generator) OrdersTable() (*table.Table, error) {
	rows := g.config.Rows

	orderValue := make([]float64, rows)
	deliveryDays := make([]float64, rows)
	payment := make([]string, rows)
	region := make([]string, rows)

	paymentChoices := []string{"credit_card", "debit_card", "pix", "voucher"}
	regionChoices := []string{"north", "northeast", "south", "southeast", "midwest"}

	for i := 0; i < rows; i++ {
		// Log-normal-ish order values keep everything positive with a
		// heavy right tail.
		value := math.Exp(g.rng.NormFloat64()*0.6 + 4.0)
		if g.rng.Float64() < g.config.OutlierRate {
			value *= 20 + g.rng.Float64()*30
		}
		orderValue[i] = math.Round(value*100) / 100

		days := 3 + g.rng.NormFloat64()*1.5
		if days < 0 {
			days = 0
		}
		deliveryDays[i] = math.Round(days)
		if g.rng.Float64() < g.config.MissingRate {
			deliveryDays[i] = math.NaN()
		}

		payment[i] = paymentChoices[g.rng.Intn(len(paymentChoices))]

		region[i] = regionChoices[g.rng.Intn(len(regionChoices))]
		if g.rng.Float64() < g.config.MissingRate/2 {
			region[i] = ""
		}
	}

	tbl := table.New("demo_orders")
	for _, col := range []*table.Column{
		table.NewNumericColumn("order_value", orderValue),
		table.NewNumericColumn("delivery_days", deliveryDays),
		table.NewCategoricalColumn("payment_method", payment),
		table.NewCategoricalColumn("region", region),
	} {
		if err := tbl.AddColumn(col); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}
