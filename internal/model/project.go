package model

import "time"

// ProjectDetails holds the long-form write-up of a project. Every field is
// markdown and is stored as-is.
type ProjectDetails struct {
	Problem     string `json:"problem"`
	Solution    string `json:"solution"`
	Methodology string `json:"methodology"`
	Results     string `json:"results"`
	Conclusions string `json:"conclusions"`
}

// Links are the optional external references of a project.
type Links struct {
	Github        string `json:"github"`
	Demo          string `json:"demo"`
	Documentation string `json:"documentation"`
}

// Project is a portfolio project, addressed by its generated ID.
type Project struct {
	ID               string         `gorm:"primaryKey" json:"id"`
	Title            string         `gorm:"not null" json:"title" binding:"required"`
	ShortDescription string         `gorm:"not null" json:"shortDescription" binding:"required"`
	Technologies     Technologies   `gorm:"not null" json:"technologies" binding:"required"`
	Category         string         `gorm:"not null;index" json:"category" binding:"required"`
	Thumbnail        string         `json:"thumbnail"`
	ProjectDetails   ProjectDetails `gorm:"embedded;embeddedPrefix:details_" json:"projectDetails"`
	Links            Links          `gorm:"embedded;embeddedPrefix:link_" json:"links"`
	Charts           []string       `gorm:"serializer:json" json:"charts"`
	CreatedAt        time.Time      `gorm:"type:datetime" json:"createdAt"`
	UpdatedAt        time.Time      `gorm:"type:datetime" json:"updatedAt"`
}

type ProjectDetailsPatch struct {
	Problem     *string `json:"problem"`
	Solution    *string `json:"solution"`
	Methodology *string `json:"methodology"`
	Results     *string `json:"results"`
	Conclusions *string `json:"conclusions"`
}

type LinksPatch struct {
	Github        *string `json:"github"`
	Demo          *string `json:"demo"`
	Documentation *string `json:"documentation"`
}

// ProjectPatch carries a partial update. Nested records merge per field.
type ProjectPatch struct {
	Title            *string              `json:"title"`
	ShortDescription *string              `json:"shortDescription"`
	Technologies     *Technologies        `json:"technologies"`
	Category         *string              `json:"category"`
	Thumbnail        *string              `json:"thumbnail"`
	ProjectDetails   *ProjectDetailsPatch `json:"projectDetails"`
	Links            *LinksPatch          `json:"links"`
	Charts           *[]string            `json:"charts"`
}

func setIf(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Apply merges the non-nil fields of p onto project.
func (p ProjectPatch) Apply(project *Project) {
	setIf(&project.Title, p.Title)
	setIf(&project.ShortDescription, p.ShortDescription)
	setIf(&project.Category, p.Category)
	setIf(&project.Thumbnail, p.Thumbnail)
	if p.Technologies != nil {
		project.Technologies = *p.Technologies
	}
	if d := p.ProjectDetails; d != nil {
		setIf(&project.ProjectDetails.Problem, d.Problem)
		setIf(&project.ProjectDetails.Solution, d.Solution)
		setIf(&project.ProjectDetails.Methodology, d.Methodology)
		setIf(&project.ProjectDetails.Results, d.Results)
		setIf(&project.ProjectDetails.Conclusions, d.Conclusions)
	}
	if l := p.Links; l != nil {
		setIf(&project.Links.Github, l.Github)
		setIf(&project.Links.Demo, l.Demo)
		setIf(&project.Links.Documentation, l.Documentation)
	}
	if p.Charts != nil {
		project.Charts = append([]string{}, (*p.Charts)...)
	}
}

// Patch returns a patch that replaces every editable field with the values of project.
func (project Project) Patch() ProjectPatch {
	d, l := project.ProjectDetails, project.Links
	charts := append([]string{}, project.Charts...)
	return ProjectPatch{
		Title:            &project.Title,
		ShortDescription: &project.ShortDescription,
		Technologies:     &project.Technologies,
		Category:         &project.Category,
		Thumbnail:        &project.Thumbnail,
		ProjectDetails: &ProjectDetailsPatch{
			Problem:     &d.Problem,
			Solution:    &d.Solution,
			Methodology: &d.Methodology,
			Results:     &d.Results,
			Conclusions: &d.Conclusions,
		},
		Links: &LinksPatch{
			Github:        &l.Github,
			Demo:          &l.Demo,
			Documentation: &l.Documentation,
		},
		Charts: &charts,
	}
}
