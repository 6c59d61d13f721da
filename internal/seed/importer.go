package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Zachkp/zach-dev-api/internal/content"
	"github.com/Zachkp/zach-dev-api/internal/model"
	"github.com/Zachkp/zach-dev-api/internal/store"
)

// Result counts what an import did.
type Result struct {
	Created int
	Updated int
	Skipped int
	Deleted int
}

func (r Result) String() string {
	return fmt.Sprintf("%d created, %d updated, %d skipped, %d deleted", r.Created, r.Updated, r.Skipped, r.Deleted)
}

// Importer writes loaded records through the content service, so imported
// data gets the same validation and derived fields as API writes.
type Importer struct {
	svc *content.Service
	// Replace wipes the existing records of a kind before importing it.
	Replace bool
}

func NewImporter(svc *content.Service) *Importer {
	return &Importer{svc: svc}
}

// ImportBlogs loads every blog file in dir and creates the posts.
// Existing slugs are skipped unless Replace is set.
func (im *Importer) ImportBlogs(ctx context.Context, dir string) (Result, error) {
	var res Result
	posts, err := LoadBlogDir(dir)
	if err != nil {
		return res, err
	}

	if im.Replace {
		existing, err := im.svc.ListBlogs(ctx)
		if err != nil {
			return res, err
		}
		for _, p := range existing {
			if err := im.svc.DeleteBlog(ctx, p.Slug); err != nil {
				return res, err
			}
			res.Deleted++
		}
		log.Printf("Removed %d existing blog posts", res.Deleted)
	}

	for i := range posts {
		post := posts[i]
		_, err := im.svc.CreateBlog(ctx, &post)
		switch {
		case err == nil:
			res.Created++
			log.Printf("Imported blog %s", post.Slug)
		case errors.Is(err, store.ErrAlreadyExists):
			res.Skipped++
			log.Printf("Skipped blog %s: already exists", post.Slug)
		default:
			return res, fmt.Errorf("blog %q: %w", post.Slug, err)
		}
	}
	return res, nil
}

// ImportProjects loads the projects at path and creates them. A project
// without an id gets one derived from its title, so re-running an import
// finds the records it created before.
func (im *Importer) ImportProjects(ctx context.Context, path string) (Result, error) {
	var res Result
	projects, err := LoadProjects(path)
	if err != nil {
		return res, err
	}

	if im.Replace {
		existing, err := im.svc.ListProjects(ctx)
		if err != nil {
			return res, err
		}
		for _, p := range existing {
			if err := im.svc.DeleteProject(ctx, p.ID); err != nil {
				return res, err
			}
			res.Deleted++
		}
		log.Printf("Removed %d existing projects", res.Deleted)
	}

	for i := range projects {
		project := projects[i]
		if project.ID == "" {
			project.ID = content.Slugify(project.Title)
		}
		_, err := im.svc.CreateProject(ctx, &project)
		switch {
		case err == nil:
			res.Created++
			log.Printf("Imported project %s", project.ID)
		case errors.Is(err, store.ErrAlreadyExists):
			res.Skipped++
			log.Printf("Skipped project %s: already exists", project.ID)
		default:
			return res, fmt.Errorf("project %q: %w", project.Title, err)
		}
	}
	return res, nil
}

// syncBlog creates post, or replaces the stored post with the same slug.
func (im *Importer) syncBlog(ctx context.Context, post model.BlogPost) (created bool, err error) {
	// CreateBlog fills in defaults; the update must not inherit them
	patch := post.Patch()
	if _, err := im.svc.CreateBlog(ctx, &post); err == nil {
		return true, nil
	} else if !errors.Is(err, store.ErrAlreadyExists) {
		return false, err
	}
	patch.Slug = nil
	_, err = im.svc.UpdateBlog(ctx, post.Slug, patch)
	return false, err
}
