// Package sampledata generates deterministic synthetic datasets for
// the demo report. The generator is seeded so repeated runs produce
// identical data.
package sampledata

import (
	"math/rand"
	"time"

	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

// Seed fixes the random source for reproducibility.
const Seed = 42

var (
	products   = []string{"Product A", "Product B", "Product C", "Product D", "Product E"}
	regions    = []string{"North", "South", "East", "West", "Center"}
	sellers    = []string{"Joao Silva", "Maria Santos", "Pedro Costa", "Ana Oliveira", "Carlos Lima"}
	categories = []string{"Electronics", "Clothing", "Home", "Sports"}
)

// Sales returns a simulated sales dataset covering the given number of
// days ending at end. Weekend days carry a reduced sale volume.
func Sales(end time.Time, days int) *models.Dataset {
	rng := rand.New(rand.NewSource(Seed))
	ds := models.NewDataset(
		"date", "product", "region", "seller",
		"quantity", "unit_price", "discount", "category",
		"gross_amount", "discount_amount", "net_amount",
	)

	day := end.AddDate(0, 0, -days)
	for !day.After(end) {
		sales := 8 + rng.Intn(15)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			sales = sales * 7 / 10
		}
		for i := 0; i < sales; i++ {
			quantity := 1 + rng.Intn(9)
			unitPrice := 50 + rng.Float64()*450
			discount := rng.Float64() * 0.15
			gross := float64(quantity) * unitPrice
			discountAmount := gross * discount

			_ = ds.Append(
				day,
				products[rng.Intn(len(products))],
				regions[rng.Intn(len(regions))],
				sellers[rng.Intn(len(sellers))],
				quantity,
				unitPrice,
				discount,
				categories[rng.Intn(len(categories))],
				gross,
				discountAmount,
				gross-discountAmount,
			)
		}
		day = day.AddDate(0, 0, 1)
	}
	return ds
}

// Financial returns a simulated monthly financial dataset covering the
// given number of months ending at end's month.
func Financial(end time.Time, months int) *models.Dataset {
	rng := rand.New(rand.NewSource(Seed))
	ds := models.NewDataset(
		"month", "revenue", "costs", "operating_expenses",
		"taxes", "investments", "headcount",
		"gross_profit", "net_profit", "net_margin",
	)

	first := time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(months - 1), 0)
	for m := 0; m < months; m++ {
		month := first.AddDate(0, m, 0)
		revenue := 100000 + rng.Float64()*100000
		costs := 60000 + rng.Float64()*60000
		opex := 20000 + rng.Float64()*20000
		taxes := 8000 + rng.Float64()*7000
		grossProfit := revenue - costs
		netProfit := grossProfit - opex - taxes

		_ = ds.Append(
			month.Format("2006-01"),
			revenue,
			costs,
			opex,
			taxes,
			5000+rng.Float64()*20000,
			45+rng.Intn(20),
			grossProfit,
			netProfit,
			netProfit/revenue*100,
		)
	}
	return ds
}

// RegionSummary aggregates a sales dataset into one row per region
// with net amount and quantity totals, in first-encountered order.
func RegionSummary(sales *models.Dataset) *models.Dataset {
	regionIdx := sales.ColumnIndex("region")
	netIdx := sales.ColumnIndex("net_amount")
	qtyIdx := sales.ColumnIndex("quantity")

	ds := models.NewDataset("region", "net_amount", "quantity")
	if regionIdx < 0 || netIdx < 0 || qtyIdx < 0 {
		return ds
	}

	type totals struct {
		net float64
		qty int
	}
	sums := make(map[string]*totals)
	order := make([]string, 0)
	for _, row := range sales.Rows {
		key := models.String(row[regionIdx])
		t, ok := sums[key]
		if !ok {
			t = &totals{}
			sums[key] = t
			order = append(order, key)
		}
		if v, ok := models.Float(row[netIdx]); ok {
			t.net += v
		}
		if q, ok := models.Float(row[qtyIdx]); ok {
			t.qty += int(q)
		}
	}
	for _, key := range order {
		_ = ds.Append(key, sums[key].net, sums[key].qty)
	}
	return ds
}
