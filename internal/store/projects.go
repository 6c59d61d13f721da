package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Zachkp/zach-dev-api/internal/model"
)

// ListProjects returns every project in insertion order.
func (db *DB) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects := []model.Project{}
	result := db.conn.WithContext(ctx).Order("created_at ASC").Order("id ASC").Find(&projects)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to retrieve projects: %w", result.Error)
	}
	return projects, nil
}

// ListProjectsByCategory returns the projects whose category matches exactly.
func (db *DB) ListProjectsByCategory(ctx context.Context, category string) ([]model.Project, error) {
	projects := []model.Project{}
	result := db.conn.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at ASC").
		Order("id ASC").
		Find(&projects)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to retrieve projects in %q: %w", category, result.Error)
	}
	return projects, nil
}

// GetProject retrieves a project by its ID.
func (db *DB) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var project model.Project
	if err := db.conn.WithContext(ctx).Where("id = ?", id).First(&project).Error; err != nil {
		return nil, notFound(err, "project", id)
	}
	return &project, nil
}

// CreateProject inserts project, generating an ID when none is set.
func (db *DB) CreateProject(ctx context.Context, project *model.Project) error {
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	return db.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.Project{}).Where("id = ?", project.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check project %q: %w", project.ID, err)
		}
		if count > 0 {
			return fmt.Errorf("project %q: %w", project.ID, ErrAlreadyExists)
		}
		if err := tx.Create(project).Error; err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("project %q: %w", project.ID, ErrAlreadyExists)
			}
			return fmt.Errorf("failed to add project %q: %w", project.ID, err)
		}
		return nil
	})
}

// UpdateProject applies mutate to the stored project inside a transaction.
func (db *DB) UpdateProject(ctx context.Context, id string, mutate func(*model.Project) error) (*model.Project, error) {
	var project model.Project
	err := db.conn.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&project).Error; err != nil {
			return notFound(err, "project", id)
		}

		createdAt := project.CreatedAt
		if err := mutate(&project); err != nil {
			return err
		}
		project.ID, project.CreatedAt = id, createdAt

		if err := tx.Save(&project).Error; err != nil {
			return fmt.Errorf("failed to update project %q: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes the project with the given ID.
func (db *DB) DeleteProject(ctx context.Context, id string) error {
	result := db.conn.WithContext(ctx).Where("id = ?", id).Delete(&model.Project{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete project %q: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("project %q: %w", id, ErrNotFound)
	}
	return nil
}
