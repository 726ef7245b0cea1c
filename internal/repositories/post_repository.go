package repositories

import (
	"context"
	"fmt"
	"slices"

	"github.com/anonto42/car-blog/backend/internal/fallback"
	"github.com/anonto42/car-blog/backend/internal/models"
)

// PostRepository defines the interface for post data operations.
// Implementations never fail: upstream errors are absorbed into fallback data.
type PostRepository interface {
	ListPosts(ctx context.Context) []models.Post
	GetPost(ctx context.Context, id int) *models.Post
	LatestPosts(ctx context.Context, n int) []models.Post
}

// RemotePostRepository implements PostRepository over the posts API
type RemotePostRepository struct {
	client   *Client
	baseURL  string
	fallback fallback.Dataset
}

// NewRemotePostRepository creates a new RemotePostRepository
func NewRemotePostRepository(client *Client, baseURL string, data fallback.Dataset) *RemotePostRepository {
	return &RemotePostRepository{client: client, baseURL: baseURL, fallback: data}
}

// ListPosts retrieves all posts, or the fallback posts when the API fails or returns none
func (r *RemotePostRepository) ListPosts(ctx context.Context) []models.Post {
	var posts []models.Post
	if err := r.client.getJSON(ctx, r.baseURL+"/posts", &posts); err != nil {
		r.client.log.Warnf(ctx, "Error fetching posts, using fallback data: %v", err)
		return slices.Clone(r.fallback.Posts)
	}

	posts = valid(ctx, r.client, "post", posts)
	if len(posts) == 0 {
		return slices.Clone(r.fallback.Posts)
	}
	return posts
}

// GetPost retrieves a post by ID. A nil result means the post does not exist.
func (r *RemotePostRepository) GetPost(ctx context.Context, id int) *models.Post {
	var post models.Post
	err := r.client.getJSON(ctx, fmt.Sprintf("%s/posts/%d", r.baseURL, id), &post)
	if err == nil && validOne(ctx, r.client, "post", &post) {
		return &post
	}
	if IsNotFound(err) {
		return nil
	}
	if err == nil {
		err = fmt.Errorf("malformed post %d", id)
	}

	r.client.log.Warnf(ctx, "Error fetching post %d: %v", id, err)
	return r.fallback.Post(id)
}

// LatestPosts returns the first n posts
func (r *RemotePostRepository) LatestPosts(ctx context.Context, n int) []models.Post {
	posts := r.ListPosts(ctx)
	if n >= 0 && len(posts) > n {
		posts = posts[:n]
	}
	return posts
}
