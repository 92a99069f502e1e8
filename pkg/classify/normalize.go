package classify

import (
	"strings"

	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// synonyms maps lowercased spelling variants seen in model output and user
// input onto canonical labels. Lowercased canonical labels are added in init.
var synonyms = map[string]domain.Category{
	"desktop":            "Desktop-PC",
	"monitor":            "Flat-Panel-Monitor",
	"tv":                 "Flat-Panel-TV",
	"television":         "Flat-Panel-TV",
	"hard disk":          "HDD",
	"hard drive":         "HDD",
	"solid state drive":  "SSD",
	"playstation":        "PlayStation-5",
	"ps5":                "PlayStation-5",
	"xbox":               "Xbox-Series-X",
	"adapter":            "Power-Adapter",
	"charger":            "Power-Adapter",
	"fridge":             "Refrigerator",
	"smartwatch":         "Smart-Watch",
	"mobile":             "Smartphone",
	"phone":              "Smartphone",
	"cell phone":         "Smartphone",
	"remote":             "TV-Remote-Control",
	"dryer":              "Tumble-Dryer",
	"usb":                "USB-Flash-Drive",
	"washer":             "Washing-Machine",
	"keyboard":           "Computer-Keyboard",
	"mouse":              "Computer-Mouse",
	"circuit board":      "PCB",
	"solar panel":        "Photovoltaic-Panel",
	"fluorescent lamp":   "Straight-Tube-Fluorescent-Lamp",
	"cfl":                "Compact-Fluorescent-Lamps",
	"ecg":                "Electrocardiograph-Machine",
	"water dispenser":    "Cooled-Dispenser",
	"e-bike":             "Electric-Bicycle",
	"oscilloscope":       "Digital-Oscilloscope",
	"lawn mower":         "Rotary-Mower",
	"pulse oximeter":     "Pulse-Oximeter",
	"other":              domain.CategoryOther,
}

func init() {
	for _, c := range domain.Categories {
		synonyms[strings.ToLower(string(c))] = c
	}
}

// Normalize maps a raw detector or user label onto the canonical vocabulary,
// ignoring case and surrounding space. Unrecognized labels are returned
// unchanged; a blank label becomes Other.
func Normalize(label string) domain.Category {
	key := strings.ToLower(strings.TrimSpace(label))
	if key == "" {
		return domain.CategoryOther
	}
	if c, ok := synonyms[key]; ok {
		return c
	}
	return domain.Category(label)
}
