package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/iroha-labs/palette-server/internal/service"
)

func (s *Server) registerUserRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listUsers",
		Method:      http.MethodGet,
		Path:        "/api/v1/users",
		Summary:     "List users",
		Description: "Returns all users. Users are not persisted, so the list is always empty.",
		Tags:        []string{"Users"},
	}, s.handleListUsers)

	huma.Register(s.api, huma.Operation{
		OperationID: "getUser",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{id}",
		Summary:     "Get user",
		Description: "Returns a placeholder user with the requested ID",
		Tags:        []string{"Users"},
	}, s.handleGetUser)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createUser",
		Method:        http.MethodPost,
		Path:          "/api/v1/users",
		Summary:       "Create user",
		Description:   "Validates and echoes the user back with ID 1",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateUser)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateUser",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/{id}",
		Summary:     "Update user",
		Description: "Validates and echoes the user back under the requested ID",
		Tags:        []string{"Users"},
	}, s.handleUpdateUser)

	huma.Register(s.api, huma.Operation{
		OperationID:   "deleteUser",
		Method:        http.MethodDelete,
		Path:          "/api/v1/users/{id}",
		Summary:       "Delete user",
		Description:   "Accepts any ID",
		Tags:          []string{"Users"},
		DefaultStatus: http.StatusNoContent,
	}, s.handleDeleteUser)
}

// === DTOs ===

// UserRequest is the writable part of a user. Constraints are enforced by
// the service so every violation is reported per field.
type UserRequest struct {
	Name  string `json:"name" required:"false" doc:"Display name, 2 to 100 characters" example:"Hanako Yamada"`
	Email string `json:"email" required:"false" doc:"Email address" example:"hanako@example.jp"`
}

// UserResponse contains user data in API responses.
type UserResponse struct {
	ID          int64  `json:"id" doc:"User ID"`
	Name        string `json:"name" doc:"Display name"`
	Email       string `json:"email" doc:"Email address"`
	AvatarColor string `json:"avatar_color" doc:"Deterministic avatar colour as #RRGGBB"`
}

// UserIDInput identifies a user in the path.
type UserIDInput struct {
	ID int64 `path:"id" minimum:"1" doc:"User ID"`
}

// CreateUserInput contains the user to create.
type CreateUserInput struct {
	Body UserRequest
}

// UpdateUserInput contains the user to update.
type UpdateUserInput struct {
	ID   int64 `path:"id" minimum:"1" doc:"User ID"`
	Body UserRequest
}

// UserOutput wraps a single user for Huma.
type UserOutput struct {
	Body UserResponse
}

// ListUsersOutput wraps the user list for Huma.
type ListUsersOutput struct {
	Body []UserResponse
}

// === Handlers ===

func (s *Server) handleListUsers(ctx context.Context, _ *struct{}) (*ListUsersOutput, error) {
	users := s.services.User.List(ctx)

	resp := make([]UserResponse, len(users))
	for i := range users {
		resp[i] = toUserResponse(&users[i])
	}
	return &ListUsersOutput{Body: resp}, nil
}

func (s *Server) handleGetUser(ctx context.Context, input *UserIDInput) (*UserOutput, error) {
	user, err := s.services.User.Get(ctx, input.ID)
	if err != nil {
		return nil, apiError(err)
	}
	return &UserOutput{Body: toUserResponse(user)}, nil
}

func (s *Server) handleCreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error) {
	user, err := s.services.User.Create(ctx, service.UserInput{
		Name:  input.Body.Name,
		Email: input.Body.Email,
	})
	if err != nil {
		return nil, apiError(err)
	}
	return &UserOutput{Body: toUserResponse(user)}, nil
}

func (s *Server) handleUpdateUser(ctx context.Context, input *UpdateUserInput) (*UserOutput, error) {
	user, err := s.services.User.Update(ctx, input.ID, service.UserInput{
		Name:  input.Body.Name,
		Email: input.Body.Email,
	})
	if err != nil {
		return nil, apiError(err)
	}
	return &UserOutput{Body: toUserResponse(user)}, nil
}

func (s *Server) handleDeleteUser(ctx context.Context, input *UserIDInput) (*struct{}, error) {
	if err := s.services.User.Delete(ctx, input.ID); err != nil {
		return nil, apiError(err)
	}
	return nil, nil
}

func toUserResponse(u *service.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		AvatarColor: u.AvatarColor,
	}
}
