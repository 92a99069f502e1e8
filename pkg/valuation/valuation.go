// Package valuation prices recycled devices and converts prices to eco
// points. Lookups never fail: unknown categories use DefaultBasePrice and
// unknown conditions use a multiplier of 1.0.
package valuation

import (
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// DefaultBasePrice is the base price for categories missing from the table.
const DefaultBasePrice = 30

// pointsDivisor converts an estimated price into eco points.
const pointsDivisor = 10

var basePrices = map[domain.Category]int{
	// High value
	"Desktop-PC":           150,
	"Laptop":               120,
	"Server":               200,
	"PlayStation-5":        100,
	"Xbox-Series-X":        100,
	"Digital-Oscilloscope": 150,

	// Medium value
	"Smartphone":          70,
	"Tablet":              80,
	"Flat-Panel-TV":       90,
	"Flat-Panel-Monitor":  70,
	"Printer":             60,
	"Air-Conditioner":     80,
	"Refrigerator":        70,
	"Washing-Machine":     70,
	"Dishwasher":          70,
	"CRT-Monitor":         50,
	"CRT-TV":              40,
	"Microwave":           50,
	"Coffee-Machine":      40,
	"Projector":           60,
	"Router":              40,
	"Network-Switch":      45,
	"Oven":                50,
	"Boiler":              40,
	"PCB":                 30,
	"Electric-Guitar":     50,
	"Electronic-Keyboard": 55,
	"Drone":               60,
	"Electric-Bicycle":    90,
	"Cooled-Dispenser":    45,

	// Low value
	"Battery":           20,
	"Headphone":         25,
	"Computer-Keyboard": 20,
	"Computer-Mouse":    15,
	"Smart-Watch":       35,
	"Camera":            40,
	"Soldering-Iron":    25,
	"Bar-Phone":         20,
	"Hair-Dryer":        20,
	"Calculator":        15,
	"LED-Bulb":          10,
	"Flashlight":        15,
	"USB-Flash-Drive":   15,
	"HDD":               25,
	"SSD":               30,
	"Vacuum-Cleaner":    35,
	"Speaker":           30,
	"Toaster":           25,

	domain.CategoryOther: DefaultBasePrice,
}

var individualMultipliers = map[domain.IndividualCondition]float64{
	domain.ConditionExcellent: 1.5,
	domain.ConditionGood:      1.2,
	domain.ConditionFair:      1.0,
	domain.ConditionPoor:      0.8,
}

var bulkMultipliers = map[domain.BulkCondition]float64{
	domain.BulkWorking: 1.2,
	domain.BulkDamaged: 0.8,
	domain.BulkScrap:   0.5,
}

// Table prices devices from a fixed base-price table. The zero value is not
// usable; construct one with New.
type Table struct {
	prices map[domain.Category]int
}

// New returns the shared valuation table.
func New() *Table {
	return &Table{prices: basePrices}
}

// BasePrice returns the base price for category, or DefaultBasePrice when the
// category has no entry.
func (t *Table) BasePrice(category domain.Category) int {
	if p, ok := t.prices[category]; ok {
		return p
	}
	return DefaultBasePrice
}

// Known reports whether category has its own base price entry.
func (t *Table) Known(category domain.Category) bool {
	_, ok := t.prices[category]
	return ok
}

// Individual prices one unit on the single-device intake path.
func (t *Table) Individual(
	category domain.Category,
	condition domain.IndividualCondition,
) domain.ValuationResult {
	return t.value(category, IndividualMultiplier(condition))
}

// Bulk prices one unit on the bulk intake path.
func (t *Table) Bulk(
	category domain.Category,
	condition domain.BulkCondition,
) domain.ValuationResult {
	return t.value(category, BulkMultiplier(condition))
}

func (t *Table) value(category domain.Category, multiplier float64) domain.ValuationResult {
	base := t.BasePrice(category)
	estimated := Price(base, multiplier)
	return domain.ValuationResult{
		Category:       category,
		BasePrice:      base,
		Multiplier:     multiplier,
		EstimatedPrice: estimated,
		EcoPoints:      Points(estimated),
	}
}

// IndividualMultiplier returns the multiplier for an individual-intake
// condition, 1.0 when unknown.
func IndividualMultiplier(c domain.IndividualCondition) float64 {
	return multiplier(individualMultipliers, c)
}

// BulkMultiplier returns the multiplier for a bulk-intake condition, 1.0
// when unknown.
func BulkMultiplier(c domain.BulkCondition) float64 {
	return multiplier(bulkMultipliers, c)
}

func multiplier[C comparable](table map[C]float64, c C) float64 {
	if m, ok := table[c]; ok {
		return m
	}
	return 1.0
}

// Price truncates base*multiplier toward zero.
func Price(base int, multiplier float64) int {
	return int(float64(base) * multiplier)
}

// Points converts an estimated price into eco points. Negative prices earn
// nothing.
func Points(price int) int {
	if price <= 0 {
		return 0
	}
	return price / pointsDivisor
}
