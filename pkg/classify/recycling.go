package classify

import (
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

const defaultRecyclingInfo = "This e-waste item contains various materials that can be recovered " +
	"through proper recycling. Always ensure it is disposed of through certified e-waste " +
	"recycling facilities to prevent environmental contamination and recover valuable resources."

var recyclingInfo = map[domain.Category]string{
	domain.CategoryBattery: "Batteries contain hazardous materials like lead, cadmium, and mercury " +
		"that can contaminate soil and water. They should be recycled at designated collection " +
		"points. The metals can be extracted and reused in new batteries, reducing the need for " +
		"mining raw materials.",
	domain.CategorySmartphone: "Smartphones contain valuable materials like gold, silver, copper, " +
		"and rare earth elements. These can be recovered during recycling. The circuit boards and " +
		"components are processed to extract metals, while plastics are recycled separately. " +
		"Always remove personal data before recycling.",
	domain.CategoryLaptop: "Laptops contain precious metals in their circuit boards, recyclable " +
		"aluminum in their cases, and lithium in their batteries. Professional recyclers " +
		"disassemble them to separate valuable components. The battery should be removed and " +
		"recycled separately due to its hazardous materials.",
	domain.CategoryDesktopPC: "Desktop computers contain recoverable materials like aluminum, " +
		"copper, gold, and silver. Their large size means more materials can be reclaimed. The " +
		"hard drives should be properly wiped or physically destroyed to protect personal data " +
		"before recycling.",
	domain.CategoryFlatPanelMonitor: "Flat panel monitors contain mercury in their backlights and " +
		"valuable metals in their circuit boards. They should be recycled at e-waste facilities " +
		"equipped to handle them. The glass, plastic, and metal components are separated and " +
		"processed individually.",
	domain.CategoryCRTMonitor: "CRT monitors contain lead and phosphors that require special " +
		"handling. They should never be thrown in regular trash as they can release toxic " +
		"substances. Specialized recyclers safely break down these monitors and contain the " +
		"harmful materials.",
}

// RecyclingInfo returns disposal guidance for category.
func RecyclingInfo(category domain.Category) string {
	if info, ok := recyclingInfo[category]; ok {
		return info
	}
	return defaultRecyclingInfo
}
