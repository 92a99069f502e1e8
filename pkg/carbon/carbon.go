// Package carbon holds the per-category CO2-equivalent savings table.
//
// Certificates recompute totals from stored line items using this table, so
// existing figures must not change once issued.
package carbon

import (
	"fmt"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// DefaultKgPerUnit applies to categories missing from the table.
const DefaultKgPerUnit = 40.0

// kgPerUnit is kilograms of CO2e avoided by recycling one unit.
var kgPerUnit = map[domain.Category]float64{
	// Computing
	"Laptop":               140.0,
	"Desktop-PC":           200.0,
	"Server":               250.0,
	"Tablet":               80.0,
	"Calculator":           8.0,
	"Digital-Oscilloscope": 90.0,

	// Peripherals and components
	"Computer-Keyboard": 8.0,
	"Computer-Mouse":    5.0,
	"HDD":               15.0,
	"SSD":               12.0,
	"PCB":               20.0,
	"Network-Switch":    25.0,
	"Router":            30.0,
	"USB-Flash-Drive":   6.0,

	// Mobile and communication
	"Smartphone":        60.0,
	"Bar-Phone":         30.0,
	"Telephone-Set":     25.0,
	"Smart-Watch":       20.0,
	"TV-Remote-Control": 5.0,

	// Displays
	"Flat-Panel-Monitor": 90.0,
	"CRT-Monitor":        150.0,
	"Flat-Panel-TV":      120.0,
	"CRT-TV":             180.0,
	"Projector":          70.0,

	// Large appliances
	"Air-Conditioner": 300.0,
	"Washing-Machine": 240.0,
	"Refrigerator":    350.0,
	"Freezer":         300.0,
	"Microwave":       100.0,
	"Dishwasher":      150.0,
	"Oven":            120.0,
	"Stove":           100.0,
	"Range-Hood":      70.0,
	"Tumble-Dryer":    180.0,
	"Boiler":          200.0,

	// Small appliances
	"Coffee-Machine":       50.0,
	"Vacuum-Cleaner":       80.0,
	"Toaster":              30.0,
	"Cooled-Dispenser":     90.0,
	"Non-Cooled-Dispenser": 40.0,
	"Hair-Dryer":           20.0,
	"Clothes-Iron":         25.0,

	// Audio, video and entertainment
	"Speaker":             25.0,
	"Headphone":           15.0,
	"Camera":              40.0,
	"Music-Player":        30.0,
	"Electronic-Keyboard": 60.0,
	"Electric-Guitar":     45.0,
	"PlayStation-5":       80.0,
	"Xbox-Series-X":       80.0,

	// Medical
	"Blood-Pressure-Monitor":     30.0,
	"Glucose-Meter":              25.0,
	"Pulse-Oximeter":             20.0,
	"Electrocardiograph-Machine": 100.0,
	"Patient-Monitoring-System":  120.0,

	// Lighting, power and small electricals
	"Battery":                        10.0,
	"LED-Bulb":                       5.0,
	"Compact-Fluorescent-Lamps":      8.0,
	"Straight-Tube-Fluorescent-Lamp": 10.0,
	"Table-Lamp":                     15.0,
	"Street-Lamp":                    60.0,
	"Ceiling-Fan":                    40.0,
	"Floor-Fan":                      35.0,
	"Exhaust-Fan":                    30.0,
	"Neon-Sign":                      25.0,
	"Christmas-Lights":               15.0,
	"Flashlight":                     8.0,
	"Power-Adapter":                  7.0,
	"Smoke-Detector":                 12.0,

	// Miscellaneous
	"Drone":              50.0,
	"Electric-Bicycle":   120.0,
	"Soldering-Iron":     15.0,
	"Photovoltaic-Panel": 100.0,
	"Cooling-Display":    130.0,
	"Rotary-Mower":       70.0,

	// Legacy labels still present in stored records.
	"Mobile":             60.0,
	"Desktop":            200.0,
	"Monitor":            90.0,
	domain.CategoryOther: DefaultKgPerUnit,
}

// PerUnit returns kilograms of CO2e saved by one unit of category.
func PerUnit(category domain.Category) float64 {
	if kg, ok := kgPerUnit[category]; ok {
		return kg
	}
	return DefaultKgPerUnit
}

// Saved returns kilograms of CO2e saved by quantity units of category.
func Saved(category domain.Category, quantity int) float64 {
	return PerUnit(category) * float64(quantity)
}

// Impact returns the carbon impact record for quantity units of category.
func Impact(category domain.Category, quantity int) domain.CarbonImpact {
	return domain.CarbonImpact{
		Category:   category,
		Quantity:   quantity,
		KgCO2Saved: Saved(category, quantity),
	}
}

// Format renders kilograms with one decimal, as printed on certificates.
func Format(kg float64) string {
	return fmt.Sprintf("%.1f kg CO₂e", kg)
}
