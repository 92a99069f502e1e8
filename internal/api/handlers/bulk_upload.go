package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/ecycle/internal/engine"
	"github.com/donaldgifford/ecycle/internal/intake"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

const defaultMaxUploadBytes = 10 << 20

// Preferred date layouts accepted from the form, most specific first.
var preferredDateLayouts = []string{
	"2006-01-02T15:04",
	time.RFC3339,
	"2006-01-02",
}

// BulkUploadHandler accepts bulk pickup submissions as multipart forms with
// inline item rows and an optional spreadsheet.
type BulkUploadHandler struct {
	engine   *engine.Engine
	maxBytes int64
}

// NewBulkUploadHandler creates a new BulkUploadHandler. A non-positive
// maxBytes uses the default limit.
func NewBulkUploadHandler(eng *engine.Engine, maxBytes int64) *BulkUploadHandler {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	return &BulkUploadHandler{engine: eng, maxBytes: maxBytes}
}

// Preview handles POST /api/v1/bulk-pickups/preview.
//
// @Summary Preview a bulk intake
// @Description Reconciles inline rows and an optional file without saving anything.
// @Tags bulk-pickups
// @Accept multipart/form-data
// @Produce json
// @Param ewaste_type[] formData []string false "Device type per row"
// @Param ewaste_file formData file false "CSV or Excel file"
// @Success 200 {object} intake.Batch
// @Failure 400 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Router /api/v1/bulk-pickups/preview [post]
func (h *BulkUploadHandler) Preview(c echo.Context) error {
	_, sources, status, err := h.readForm(c)
	if err != nil {
		return c.JSON(status, errorBody(err.Error()))
	}

	return c.JSON(http.StatusOK, h.engine.PreviewBulk(c.Request().Context(), sources...))
}

// Submit handles POST /api/v1/bulk-pickups.
//
// @Summary Submit a bulk pickup
// @Description Validates the organization details, reconciles the item rows and file, stores the pickup and credits the user.
// @Tags bulk-pickups
// @Accept multipart/form-data
// @Produce json
// @Param user_id formData int true "Submitting user"
// @Param organization_name formData string true "Organization name"
// @Param ewaste_file formData file false "CSV or Excel file"
// @Success 201 {object} engine.BulkSubmission
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/bulk-pickups [post]
func (h *BulkUploadHandler) Submit(c echo.Context) error {
	form, sources, status, err := h.readForm(c)
	if err != nil {
		return c.JSON(status, errorBody(err.Error()))
	}

	req, err := parseBulkRequest(form)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	}

	sub, err := h.engine.SubmitBulkPickup(c.Request().Context(), req, sources...)
	if err != nil {
		return c.JSON(statusFor(err), errorBody("submitting bulk pickup: "+err.Error()))
	}

	return c.JSON(http.StatusCreated, sub)
}

// readForm parses the multipart body into form values and intake sources.
// The returned status applies when err is set.
func (h *BulkUploadHandler) readForm(c echo.Context) (url.Values, []intake.Source, int, error) {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxBytes)

	form, err := c.FormParams()
	if err != nil {
		return nil, nil, uploadStatus(err), fmt.Errorf("invalid form: %w", err)
	}

	sources := []intake.Source{intake.FormRows(intake.FormFields{
		Types:      formList(form, "ewaste_type"),
		Models:     formList(form, "brand_model"),
		Quantities: formList(form, "quantity"),
		Conditions: formList(form, "condition"),
		Notes:      formList(form, "notes"),
	})}

	fh, err := c.FormFile("ewaste_file")
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	case err != nil:
		return nil, nil, uploadStatus(err), fmt.Errorf("ewaste_file: %w", err)
	case fh.Filename != "":
		data, err := readUpload(fh)
		if err != nil {
			return nil, nil, uploadStatus(err), fmt.Errorf("ewaste_file: %w", err)
		}
		sources = append(sources, intake.FileSource(fh.Filename, data))
	}

	return form, sources, 0, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// formList reads a repeated field posted with or without the [] suffix.
func formList(form url.Values, name string) []string {
	if v, ok := form[name+"[]"]; ok {
		return v
	}
	return form[name]
}

// parseBulkRequest validates the organization fields of a bulk submission.
// Every problem is reported, joined in field order.
func parseBulkRequest(form url.Values) (engine.BulkPickupRequest, error) {
	var errs []error
	field := func(name string, required bool, maxLen int) string {
		v := strings.TrimSpace(form.Get(name))
		switch {
		case v == "" && required:
			errs = append(errs, fmt.Errorf("%s is required", name))
		case maxLen > 0 && utf8.RuneCountInString(v) > maxLen:
			errs = append(errs, fmt.Errorf("%s must be at most %d characters", name, maxLen))
		}
		return v
	}

	req := engine.BulkPickupRequest{
		OrganizationName:    field("organization_name", true, 100),
		OrganizationType:    ParseOrganizationType(form.Get("organization_type")),
		ContactPerson:       field("contact_person", true, 100),
		ContactEmail:        field("contact_email", true, 120),
		ContactPhone:        field("contact_phone", true, 20),
		PickupAddress:       field("pickup_address", true, 0),
		GSTIN:               field("gstin", false, 20),
		SpecialInstructions: field("special_instructions", false, 500),
		RequestCertificate:  checked(form, "request_certificate"),
		RequestTaxReceipt:   checked(form, "request_tax_receipt"),
	}

	uid, err := strconv.ParseInt(strings.TrimSpace(form.Get("user_id")), 10, 64)
	if err != nil || uid <= 0 {
		errs = append(errs, errors.New("user_id must be a positive integer"))
	}
	req.UserID = uid

	if req.ContactEmail != "" {
		if _, err := mail.ParseAddress(req.ContactEmail); err != nil {
			errs = append(errs, errors.New("contact_email is not a valid address"))
		}
	}
	if n := len(req.ContactPhone); n > 0 && n < 10 {
		errs = append(errs, errors.New("contact_phone must be at least 10 characters"))
	}

	date := strings.TrimSpace(form.Get("preferred_date"))
	if date == "" {
		errs = append(errs, errors.New("preferred_date is required"))
	} else if t, ok := parsePreferredDate(date); ok {
		req.PreferredDate = t
	} else {
		errs = append(errs, fmt.Errorf("preferred_date %q is not a valid date", date))
	}

	for _, ack := range []string{"confirm_eligible", "agree_policy", "acknowledge_points"} {
		if !checked(form, ack) {
			errs = append(errs, fmt.Errorf("%s must be accepted", ack))
		}
	}

	return req, errors.Join(errs...)
}

func parsePreferredDate(s string) (time.Time, bool) {
	for _, layout := range preferredDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// checked reports whether a checkbox field was ticked.
func checked(form url.Values, name string) bool {
	switch strings.ToLower(strings.TrimSpace(form.Get(name))) {
	case "on", "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}

// ParseOrganizationType matches a form key such as NON_PROFIT or a display
// label such as Non-Profit, ignoring case. Anything else is Other.
func ParseOrganizationType(s string) domain.OrganizationType {
	s = strings.ReplaceAll(strings.TrimSpace(s), "_", "-")
	for _, t := range domain.OrganizationTypes {
		if strings.EqualFold(s, string(t)) {
			return t
		}
	}
	return domain.OrgOther
}
