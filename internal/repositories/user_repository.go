package repositories

import (
	"context"
	"fmt"

	"github.com/anonto42/car-blog/backend/internal/fallback"
	"github.com/anonto42/car-blog/backend/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetUser(ctx context.Context, id int) *models.User
}

// RemoteUserRepository implements UserRepository over the users API
type RemoteUserRepository struct {
	client   *Client
	baseURL  string
	fallback fallback.Dataset
}

// NewRemoteUserRepository creates a new RemoteUserRepository
func NewRemoteUserRepository(client *Client, baseURL string, data fallback.Dataset) *RemoteUserRepository {
	return &RemoteUserRepository{client: client, baseURL: baseURL, fallback: data}
}

// GetUser retrieves a user by ID. A nil result means the user does not exist.
func (r *RemoteUserRepository) GetUser(ctx context.Context, id int) *models.User {
	var user models.User
	err := r.client.getJSON(ctx, fmt.Sprintf("%s/users/%d", r.baseURL, id), &user)
	if err == nil && validOne(ctx, r.client, "user", &user) {
		return &user
	}
	if IsNotFound(err) {
		return nil
	}
	if err == nil {
		err = fmt.Errorf("malformed user %d", id)
	}

	r.client.log.Warnf(ctx, "Error fetching user %d: %v", id, err)
	return r.fallback.User(id)
}
