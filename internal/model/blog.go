package model

import "time"

// BlogPost is a single blog entry, addressed by its slug.
type BlogPost struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Slug        string    `gorm:"not null;uniqueIndex" json:"slug"`
	Title       string    `gorm:"not null" json:"title" binding:"required"`
	Summary     string    `gorm:"not null" json:"summary" binding:"required"`
	Content     string    `gorm:"not null" json:"content" binding:"required"`
	Category    string    `gorm:"not null;index" json:"category" binding:"required"`
	Tags        []string  `gorm:"serializer:json" json:"tags"`
	Image       string    `gorm:"not null" json:"image" binding:"required"`
	PublishDate Date      `gorm:"type:datetime;index" json:"publishDate"`
	ReadTime    string    `json:"readTime"` // minutes, derived from Content
	CreatedAt   time.Time `gorm:"type:datetime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"type:datetime" json:"updatedAt"`
}

// BlogPatch carries a partial update. Nil fields are left untouched.
type BlogPatch struct {
	Slug        *string   `json:"slug"`
	Title       *string   `json:"title"`
	Summary     *string   `json:"summary"`
	Content     *string   `json:"content"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	Image       *string   `json:"image"`
	PublishDate *Date     `json:"publishDate"`
}

// Apply merges the non-nil fields of p onto post.
func (p BlogPatch) Apply(post *BlogPost) {
	if p.Slug != nil {
		post.Slug = *p.Slug
	}
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Summary != nil {
		post.Summary = *p.Summary
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.Category != nil {
		post.Category = *p.Category
	}
	if p.Tags != nil {
		post.Tags = append([]string{}, (*p.Tags)...)
	}
	if p.Image != nil {
		post.Image = *p.Image
	}
	if p.PublishDate != nil && !p.PublishDate.IsZero() {
		post.PublishDate = *p.PublishDate
	}
}

// Patch returns a patch that replaces every editable field with the values of post.
func (post BlogPost) Patch() BlogPatch {
	tags := append([]string{}, post.Tags...)
	date := post.PublishDate
	return BlogPatch{
		Slug:        &post.Slug,
		Title:       &post.Title,
		Summary:     &post.Summary,
		Content:     &post.Content,
		Category:    &post.Category,
		Tags:        &tags,
		Image:       &post.Image,
		PublishDate: &date,
	}
}
