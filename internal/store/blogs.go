package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/Zachkp/zach-dev-api/internal/model"
)

// ListBlogs returns every post, newest publish date first.
func (db *DB) ListBlogs(ctx context.Context) ([]model.BlogPost, error) {
	posts := []model.BlogPost{}
	result := db.conn.WithContext(ctx).
		Order("publish_date DESC").
		Order("created_at DESC").
		Order("id DESC").
		Find(&posts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to retrieve blogs: %w", result.Error)
	}
	return posts, nil
}

// GetBlog retrieves a post by its exact slug.
func (db *DB) GetBlog(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := db.conn.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, notFound(err, "blog", slug)
	}
	return &post, nil
}

// CreateBlog inserts post. A taken slug yields ErrAlreadyExists.
func (db *DB) CreateBlog(ctx context.Context, post *model.BlogPost) error {
	return db.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureSlugFree(tx, post.Slug, 0); err != nil {
			return err
		}
		if err := tx.Create(post).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("blog %q: %w", post.Slug, ErrAlreadyExists)
			}
			return fmt.Errorf("failed to add blog %q: %w", post.Slug, err)
		}
		return nil
	})
}

// UpdateBlog applies mutate to the stored post inside a transaction.
func (db *DB) UpdateBlog(ctx context.Context, slug string, mutate func(*model.BlogPost) error) (*model.BlogPost, error) {
	var post model.BlogPost
	err := db.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).First(&post).Error; err != nil {
			return notFound(err, "blog", slug)
		}

		id, createdAt := post.ID, post.CreatedAt
		if err := mutate(&post); err != nil {
			return err
		}
		post.ID, post.CreatedAt = id, createdAt

		if post.Slug != slug {
			if err := ensureSlugFree(tx, post.Slug, post.ID); err != nil {
				return err
			}
		}
		if err := tx.Save(&post).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("blog %q: %w", post.Slug, ErrAlreadyExists)
			}
			return fmt.Errorf("failed to update blog %q: %w", slug, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// DeleteBlog removes the post with the given slug.
func (db *DB) DeleteBlog(ctx context.Context, slug string) error {
	result := db.conn.WithContext(ctx).Where("slug = ?", slug).Delete(&model.BlogPost{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete blog %q: %w", slug, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("blog %q: %w", slug, ErrNotFound)
	}
	return nil
}

func ensureSlugFree(tx *gorm.DB, slug string, exceptID uint) error {
	var count int64
	q := tx.Model(&model.BlogPost{}).Where("slug = ?", slug)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check slug %q: %w", slug, err)
	}
	if count > 0 {
		return fmt.Errorf("blog %q: %w", slug, ErrAlreadyExists)
	}
	return nil
}
