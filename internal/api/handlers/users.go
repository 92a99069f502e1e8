package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/ecycle/internal/engine"
	domain "github.com/donaldgifford/ecycle/pkg/types"
)

// UsersHandler handles user counters and per-user pickup history.
type UsersHandler struct {
	engine *engine.Engine
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(eng *engine.Engine) *UsersHandler {
	return &UsersHandler{engine: eng}
}

// CreateUserInput is the request body for registering a user.
type CreateUserInput struct {
	Body struct {
		Username string `json:"username" minLength:"1" maxLength:"80"  example:"asha"`
		Email    string `json:"email"    format:"email" maxLength:"120" example:"asha@example.com"`
	}
}

// UserIDInput selects a user by path.
type UserIDInput struct {
	ID int64 `path:"id" doc:"User ID"`
}

// UserOutput is a single user.
type UserOutput struct {
	Body *domain.User
}

// PickupsOutput is a list of individual pickups.
type PickupsOutput struct {
	Body []domain.Pickup
}

// Create registers a user with zeroed counters.
func (h *UsersHandler) Create(ctx context.Context, input *CreateUserInput) (*UserOutput, error) {
	name := strings.TrimSpace(input.Body.Username)
	if name == "" {
		return nil, huma.Error400BadRequest("username is required")
	}

	u, err := h.engine.CreateUser(ctx, name, strings.TrimSpace(input.Body.Email))
	if err != nil {
		return nil, humaError("creating user failed", err)
	}
	return &UserOutput{Body: u}, nil
}

// Get returns a user's eco points and lifetime carbon savings.
func (h *UsersHandler) Get(ctx context.Context, input *UserIDInput) (*UserOutput, error) {
	u, err := h.engine.GetUser(ctx, input.ID)
	if err != nil {
		return nil, humaError("getting user failed", err)
	}
	return &UserOutput{Body: u}, nil
}

// ListPickups returns a user's individual pickups, newest first.
func (h *UsersHandler) ListPickups(ctx context.Context, input *UserIDInput) (*PickupsOutput, error) {
	pickups, err := h.engine.ListPickups(ctx, input.ID)
	if err != nil {
		return nil, humaError("listing pickups failed", err)
	}
	if pickups == nil {
		pickups = []domain.Pickup{}
	}
	return &PickupsOutput{Body: pickups}, nil
}

// RegisterUserRoutes registers user endpoints with the Huma API.
func RegisterUserRoutes(api huma.API, h *UsersHandler) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/api/v1/users",
		Summary:       "Create a user",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest},
	}, h.Create)

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}",
		Summary:     "Get a user",
		Description: "Returns the user's eco point balance and lifetime carbon savings.",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.Get)

	huma.Register(api, huma.Operation{
		OperationID: "list-user-pickups",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}/pickups",
		Summary:     "List a user's pickups",
		Tags:        []string{"users", "pickups"},
		Errors:      []int{http.StatusNotFound},
	}, h.ListPickups)
}
