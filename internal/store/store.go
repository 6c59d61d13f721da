package store

import (
	"context"
	"errors"

	"github.com/Zachkp/zach-dev-api/internal/model"
)

var (
	// ErrNotFound is returned when the requested slug or id does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists is returned when a create or rename hits a key that is already taken.
	ErrAlreadyExists = errors.New("record already exists")
)

// Blogs persists blog posts keyed by slug.
type Blogs interface {
	ListBlogs(ctx context.Context) ([]model.BlogPost, error)
	GetBlog(ctx context.Context, slug string) (*model.BlogPost, error)
	CreateBlog(ctx context.Context, post *model.BlogPost) error
	// UpdateBlog loads the post, lets mutate edit it and saves it, all in one transaction.
	UpdateBlog(ctx context.Context, slug string, mutate func(*model.BlogPost) error) (*model.BlogPost, error)
	DeleteBlog(ctx context.Context, slug string) error
}

// Projects persists projects keyed by id.
type Projects interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	ListProjectsByCategory(ctx context.Context, category string) ([]model.Project, error)
	GetProject(ctx context.Context, id string) (*model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) error
	UpdateProject(ctx context.Context, id string, mutate func(*model.Project) error) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// Stats summarizes the stored content for the admin view.
type Stats struct {
	TotalBlogs        int64            `json:"total_blogs"`
	TotalProjects     int64            `json:"total_projects"`
	BlogCategories    map[string]int64 `json:"blog_categories"`
	ProjectCategories map[string]int64 `json:"project_categories"`
}

// Store is the full storage surface used by the content service.
type Store interface {
	Blogs
	Projects
	Stats(ctx context.Context) (*Stats, error)
}
