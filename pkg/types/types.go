// Package domain defines the core business types for ecycle.
package domain

import (
	"errors"
	"slices"
	"time"
)

// Sentinel errors shared by the store, engine, and API layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrInsufficientPoints = errors.New("insufficient eco points")
	ErrOutOfStock         = errors.New("reward out of stock")
	ErrRewardInactive     = errors.New("reward is not active")
	ErrNothingDetected    = errors.New("no e-waste detected")
	ErrAlreadyIssued      = errors.New("certificate already issued")
)

// Category is a device category label. Labels outside Categories are valid
// values; pricing and carbon lookups fall back to the Other figures.
type Category string

// Categories referenced directly by code.
const (
	CategoryOther            Category = "Other"
	CategoryLaptop           Category = "Laptop"
	CategorySmartphone       Category = "Smartphone"
	CategoryBattery          Category = "Battery"
	CategoryComputerMouse    Category = "Computer-Mouse"
	CategoryFlatPanelMonitor Category = "Flat-Panel-Monitor"
	CategoryDesktopPC        Category = "Desktop-PC"
	CategoryCRTMonitor       Category = "CRT-Monitor"
)

// Categories is the closed vocabulary of canonical device labels produced by
// the detection model.
var Categories = []Category{
	"Air-Conditioner", "Bar-Phone", "Battery", "Blood-Pressure-Monitor", "Boiler",
	"CRT-Monitor", "CRT-TV", "Calculator", "Camera", "Ceiling-Fan", "Christmas-Lights",
	"Clothes-Iron", "Coffee-Machine", "Compact-Fluorescent-Lamps", "Computer-Keyboard",
	"Computer-Mouse", "Cooled-Dispenser", "Cooling-Display", "Dehumidifier", "Desktop-PC",
	"Digital-Oscilloscope", "Dishwasher", "Drone", "Electric-Bicycle", "Electric-Guitar",
	"Electrocardiograph-Machine", "Electronic-Keyboard", "Exhaust-Fan", "Flashlight",
	"Flat-Panel-Monitor", "Flat-Panel-TV", "Floor-Fan", "Freezer", "Glucose-Meter",
	"HDD", "Hair-Dryer", "Headphone", "LED-Bulb", "Laptop", "Microwave", "Music-Player",
	"Neon-Sign", "Network-Switch", "Non-Cooled-Dispenser", "Oven", "PCB",
	"Patient-Monitoring-System", "Photovoltaic-Panel", "PlayStation-5", "Power-Adapter",
	"Printer", "Projector", "Pulse-Oximeter", "Range-Hood", "Refrigerator", "Rotary-Mower",
	"Router", "SSD", "Server", "Smart-Watch", "Smartphone", "Smoke-Detector",
	"Soldering-Iron", "Speaker", "Stove", "Straight-Tube-Fluorescent-Lamp", "Street-Lamp",
	"TV-Remote-Control", "Table-Lamp", "Tablet", "Telephone-Set", "Toaster", "Tumble-Dryer",
	"USB-Flash-Drive", "Vacuum-Cleaner", "Washing-Machine", "Xbox-Series-X",
}

// IsCanonical reports whether c is part of the canonical vocabulary.
func (c Category) IsCanonical() bool {
	return slices.Contains(Categories, c)
}

// IndividualCondition is the condition vocabulary for single-device pickups.
type IndividualCondition string

// Individual condition constants.
const (
	ConditionExcellent IndividualCondition = "Excellent"
	ConditionGood      IndividualCondition = "Good"
	ConditionFair      IndividualCondition = "Fair"
	ConditionPoor      IndividualCondition = "Poor"
)

// BulkCondition is the condition vocabulary for bulk intake line items. It is
// not interchangeable with IndividualCondition; the two carry different
// multiplier tables.
type BulkCondition string

// Bulk condition constants. Values match the persisted enum names.
const (
	BulkWorking BulkCondition = "WORKING"
	BulkDamaged BulkCondition = "DAMAGED"
	BulkScrap   BulkCondition = "SCRAP"
)

// Label returns the display form ("Working", "Damaged", "Scrap").
func (c BulkCondition) Label() string {
	switch c {
	case BulkWorking:
		return "Working"
	case BulkDamaged:
		return "Damaged"
	case BulkScrap:
		return "Scrap"
	default:
		return string(c)
	}
}

// ValuationResult is the priced outcome for one unit of a device.
type ValuationResult struct {
	Category       Category `json:"category"`
	BasePrice      int      `json:"base_price"`
	Multiplier     float64  `json:"multiplier"`
	EstimatedPrice int      `json:"estimated_price"`
	EcoPoints      int      `json:"eco_points"`
}

// CarbonImpact is the CO2-equivalent avoided by recycling quantity units.
type CarbonImpact struct {
	Category   Category `json:"category"`
	Quantity   int      `json:"quantity"`
	KgCO2Saved float64  `json:"kg_co2_saved"`
}

// User holds the lifetime reward counters for an account.
type User struct {
	ID          int64     `json:"id"           db:"id"`
	Username    string    `json:"username"     db:"username"`
	Email       string    `json:"email"        db:"email"`
	EcoPoints   int       `json:"eco_points"   db:"eco_points"`
	CarbonSaved float64   `json:"carbon_saved" db:"carbon_saved"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// Credit is an increment applied to a user's lifetime counters.
type Credit struct {
	EcoPoints   int
	CarbonSaved float64
}

// PickupStatus is the status of an individual pickup.
type PickupStatus string

// Pickup status constants.
const (
	PickupPending   PickupStatus = "Pending"
	PickupCollected PickupStatus = "Collected"
)

// Device is a single registered device awaiting or after pickup.
type Device struct {
	ID                  int64               `json:"id"                             db:"id"`
	UserID              int64               `json:"user_id"                        db:"user_id"`
	Category            Category            `json:"category"                       db:"ewaste_type"`
	Model               string              `json:"model,omitempty"                db:"model"`
	RAM                 string              `json:"ram,omitempty"                  db:"ram"`
	Condition           IndividualCondition `json:"condition"                      db:"condition"`
	EstimatedPrice      int                 `json:"estimated_price"                db:"estimated_price"`
	EcoPoints           int                 `json:"eco_points"                     db:"eco_points"`
	ClassificationLabel string              `json:"classification_label,omitempty" db:"classification_result"`
	ImagePath           string              `json:"image_path,omitempty"           db:"image_path"`
	CreatedAt           time.Time           `json:"created_at"                     db:"created_at"`
}

// Pickup is an individual pickup of one device.
type Pickup struct {
	ID         int64        `json:"id"          db:"id"`
	UserID     int64        `json:"user_id"     db:"user_id"`
	DeviceID   int64        `json:"device_id"   db:"ewaste_id"`
	PickupDate time.Time    `json:"pickup_date" db:"pickup_date"`
	Address    string       `json:"address"     db:"address"`
	Status     PickupStatus `json:"status"      db:"status"`
	CreatedAt  time.Time    `json:"created_at"  db:"created_at"`
	Device     *Device      `json:"device,omitempty"`
}

// OrganizationType classifies the organization behind a bulk pickup.
type OrganizationType string

// Organization type constants.
const (
	OrgOffice     OrganizationType = "Office"
	OrgSchool     OrganizationType = "School"
	OrgCollege    OrganizationType = "College"
	OrgGovernment OrganizationType = "Government"
	OrgNonProfit  OrganizationType = "Non-Profit"
	OrgHealthcare OrganizationType = "Healthcare"
	OrgOther      OrganizationType = "Other"
)

// OrganizationTypes lists every organization type in display order.
var OrganizationTypes = []OrganizationType{
	OrgOffice, OrgSchool, OrgCollege, OrgGovernment, OrgNonProfit, OrgHealthcare, OrgOther,
}

// BulkPickupStatus is the lifecycle status of a bulk pickup.
type BulkPickupStatus string

// Bulk pickup status constants.
const (
	BulkPending   BulkPickupStatus = "Pending"
	BulkScheduled BulkPickupStatus = "Scheduled"
	BulkCollected BulkPickupStatus = "Collected"
	BulkVerified  BulkPickupStatus = "Verified"
	BulkCancelled BulkPickupStatus = "Cancelled"
)

// Valid reports whether s is a known bulk pickup status.
func (s BulkPickupStatus) Valid() bool {
	switch s {
	case BulkPending, BulkScheduled, BulkCollected, BulkVerified, BulkCancelled:
		return true
	}
	return false
}

// BulkPickup is an organizational multi-device collection request.
type BulkPickup struct {
	ID                  int64            `json:"id"                             db:"id"`
	UserID              int64            `json:"user_id"                        db:"user_id"`
	OrganizationName    string           `json:"organization_name"              db:"organization_name"`
	OrganizationType    OrganizationType `json:"organization_type"              db:"organization_type"`
	ContactPerson       string           `json:"contact_person"                 db:"contact_person"`
	ContactEmail        string           `json:"contact_email"                  db:"contact_email"`
	ContactPhone        string           `json:"contact_phone"                  db:"contact_phone"`
	PickupAddress       string           `json:"pickup_address"                 db:"pickup_address"`
	GSTIN               string           `json:"gstin,omitempty"                db:"gstin"`
	PreferredDate       time.Time        `json:"preferred_date"                 db:"preferred_date"`
	SpecialInstructions string           `json:"special_instructions,omitempty" db:"special_instructions"`

	TotalItems         int  `json:"total_items"                 db:"total_items"`
	EstimatedEcoPoints int  `json:"estimated_eco_points"        db:"estimated_eco_points"`
	ActualEcoPoints    *int `json:"actual_eco_points,omitempty" db:"actual_eco_points"`
	RequestCertificate bool `json:"request_certificate"         db:"request_certificate"`
	RequestTaxReceipt  bool `json:"request_tax_receipt"         db:"request_tax_receipt"`

	Status            BulkPickupStatus `json:"status"                          db:"status"`
	AssignedTeam      string           `json:"assigned_team,omitempty"         db:"assigned_team"`
	CertificateNumber string           `json:"certificate_number,omitempty"    db:"certificate_number"`
	CertificateIssued *time.Time       `json:"certificate_issued_at,omitempty" db:"certificate_issued_at"`
	CreatedAt         time.Time        `json:"created_at"                      db:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"                      db:"updated_at"`
}

// AwardedEcoPoints returns the actual points when an admin has set them,
// otherwise the estimate computed at intake.
func (b *BulkPickup) AwardedEcoPoints() int {
	if b.ActualEcoPoints != nil {
		return *b.ActualEcoPoints
	}
	return b.EstimatedEcoPoints
}

// BulkItem is one accepted line of a bulk pickup.
type BulkItem struct {
	ID                    int64         `json:"id"                       db:"id"`
	BulkPickupID          int64         `json:"bulk_pickup_id"           db:"bulk_pickup_id"`
	Category              Category      `json:"category"                 db:"ewaste_type"`
	BrandModel            string        `json:"brand_model,omitempty"    db:"brand_model"`
	Quantity              int           `json:"quantity"                 db:"quantity"`
	Condition             BulkCondition `json:"condition"                db:"condition"`
	Notes                 string        `json:"notes,omitempty"          db:"notes"`
	EstimatedPricePerUnit int           `json:"estimated_price_per_unit" db:"estimated_price_per_unit"`
	EcoPointsPerUnit      int           `json:"eco_points_per_unit"      db:"eco_points_per_unit"`
}

// BulkPickupUpdate holds the admin-editable fields of a bulk pickup. Nil
// fields are left unchanged.
type BulkPickupUpdate struct {
	Status          *BulkPickupStatus
	AssignedTeam    *string
	ActualEcoPoints *int
}

// Reward is a catalog item redeemable with eco points.
type Reward struct {
	ID             int64     `json:"id"              db:"id"`
	Name           string    `json:"name"            db:"name"`
	Description    string    `json:"description"     db:"description"`
	PointsRequired int       `json:"points_required" db:"points_required"`
	RewardType     string    `json:"reward_type"     db:"reward_type"`
	Stock          int       `json:"stock"           db:"stock"`
	Active         bool      `json:"active"          db:"active"`
	CreatedAt      time.Time `json:"created_at"      db:"created_at"`
}

// RedemptionStatus is the fulfilment status of a redemption.
type RedemptionStatus string

// Redemption status constants.
const (
	RedemptionPending   RedemptionStatus = "Pending"
	RedemptionProcessed RedemptionStatus = "Processed"
	RedemptionDelivered RedemptionStatus = "Delivered"
)

// Redemption records points spent on a reward.
type Redemption struct {
	ID          int64            `json:"id"           db:"id"`
	UserID      int64            `json:"user_id"      db:"user_id"`
	RewardID    int64            `json:"reward_id"    db:"reward_id"`
	PointsSpent int              `json:"points_spent" db:"points_spent"`
	Status      RedemptionStatus `json:"status"       db:"status"`
	CreatedAt   time.Time        `json:"created_at"   db:"created_at"`
}

// BoundingBox is a detection box in pixel coordinates, centered on X/Y.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Classification is the normalized outcome of classifying a device photo.
type Classification struct {
	Category       Category    `json:"category"`
	RawLabel       string      `json:"raw_label"`
	Confidence     float64     `json:"confidence"`
	Source         string      `json:"source"`
	FallbackReason string      `json:"fallback_reason,omitempty"`
	ImageWidth     int         `json:"image_width"`
	ImageHeight    int         `json:"image_height"`
	Box            BoundingBox `json:"box"`
	RecyclingInfo  string      `json:"recycling_info"`
}
