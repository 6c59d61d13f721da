// Package content implements the blog and project operations on top of a store.
package content

import (
	"context"
	"strings"
	"time"

	"github.com/Zachkp/zach-dev-api/internal/model"
	"github.com/Zachkp/zach-dev-api/internal/store"
)

// Service validates and normalizes content before handing it to the store.
type Service struct {
	store     store.Store
	validator *Validator
	now       func() time.Time
}

func NewService(s store.Store, v *Validator) *Service {
	if v == nil {
		v = NewValidator()
	}
	return &Service{store: s, validator: v, now: time.Now}
}

// ListBlogs returns every post, newest publish date first.
func (s *Service) ListBlogs(ctx context.Context) ([]model.BlogPost, error) {
	return s.store.ListBlogs(ctx)
}

func (s *Service) GetBlog(ctx context.Context, slug string) (*model.BlogPost, error) {
	return s.store.GetBlog(ctx, slug)
}

// CreateBlog fills in the derived fields of post, validates it and stores it.
func (s *Service) CreateBlog(ctx context.Context, post *model.BlogPost) (*model.BlogPost, error) {
	post.ID = 0
	post.CreatedAt, post.UpdatedAt = time.Time{}, time.Time{}
	post.Slug = strings.TrimSpace(post.Slug)
	if post.Slug == "" {
		post.Slug = Slugify(post.Title)
	}
	if post.PublishDate.IsZero() {
		post.PublishDate = model.NewDate(s.now())
	}
	if err := s.prepareBlog(post); err != nil {
		return nil, err
	}
	if err := s.store.CreateBlog(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateBlog merges patch onto the stored post. The slug must already exist.
func (s *Service) UpdateBlog(ctx context.Context, slug string, patch model.BlogPatch) (*model.BlogPost, error) {
	return s.store.UpdateBlog(ctx, slug, func(post *model.BlogPost) error {
		patch.Apply(post)
		post.Slug = strings.TrimSpace(post.Slug)
		return s.prepareBlog(post)
	})
}

func (s *Service) DeleteBlog(ctx context.Context, slug string) error {
	return s.store.DeleteBlog(ctx, slug)
}

func (s *Service) prepareBlog(post *model.BlogPost) error {
	if post.Tags == nil {
		post.Tags = []string{}
	}
	post.ReadTime = ReadTime(post.Content)
	if err := s.validator.ValidateStruct(post); err != nil {
		return err
	}
	if post.Slug == "" {
		return invalid("slug is required")
	}
	return nil
}

func (s *Service) ListProjects(ctx context.Context) ([]model.Project, error) {
	return s.store.ListProjects(ctx)
}

// ListProjectsByCategory filters on an exact category match.
func (s *Service) ListProjectsByCategory(ctx context.Context, category string) ([]model.Project, error) {
	return s.store.ListProjectsByCategory(ctx, category)
}

func (s *Service) GetProject(ctx context.Context, id string) (*model.Project, error) {
	return s.store.GetProject(ctx, id)
}

// CreateProject validates project and stores it. The store assigns an ID when empty.
func (s *Service) CreateProject(ctx context.Context, project *model.Project) (*model.Project, error) {
	project.ID = strings.TrimSpace(project.ID)
	project.CreatedAt, project.UpdatedAt = time.Time{}, time.Time{}
	if err := s.prepareProject(project); err != nil {
		return nil, err
	}
	if err := s.store.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateProject merges patch onto the stored project.
func (s *Service) UpdateProject(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	return s.store.UpdateProject(ctx, id, func(project *model.Project) error {
		patch.Apply(project)
		return s.prepareProject(project)
	})
}

func (s *Service) DeleteProject(ctx context.Context, id string) error {
	return s.store.DeleteProject(ctx, id)
}

func (s *Service) prepareProject(project *model.Project) error {
	project.Technologies = model.Technologies(strings.TrimSpace(string(project.Technologies)))
	if project.Charts == nil {
		project.Charts = []string{}
	}
	return s.validator.ValidateStruct(project)
}

// Stats summarizes stored content for the admin view.
func (s *Service) Stats(ctx context.Context) (*store.Stats, error) {
	return s.store.Stats(ctx)
}
