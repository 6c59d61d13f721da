// Package seed imports blog posts and projects from files on disk.
package seed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/Zachkp/zach-dev-api/internal/content"
	"github.com/Zachkp/zach-dev-api/internal/model"
)

// LegacyAggregate is the old single-file blog store holding an array of posts.
const LegacyAggregate = "blog-posts.json"

type blogFrontMatter struct {
	Title       string   `yaml:"title"`
	Slug        string   `yaml:"slug"`
	Summary     string   `yaml:"summary"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Image       string   `yaml:"image"`
	PublishDate string   `yaml:"publishDate"`
}

// isBlogFile reports whether path is something LoadBlogFile understands.
func isBlogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".md", ".markdown":
		return !strings.HasPrefix(filepath.Base(path), ".")
	}
	return false
}

// slugFromPath is the file name without its extension.
func slugFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadBlogFile reads the posts held by one file: a single JSON post, a JSON
// array (the legacy aggregate), or markdown with YAML front matter.
func LoadBlogFile(path string) ([]model.BlogPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var posts []model.BlogPost
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 {
			return nil, nil
		}
		if trimmed[0] == '[' {
			if err := json.Unmarshal(trimmed, &posts); err != nil {
				return nil, fmt.Errorf("error parsing %s: %w", path, err)
			}
			return posts, nil
		}
		var post model.BlogPost
		if err := json.Unmarshal(trimmed, &post); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
		if post.Slug == "" {
			post.Slug = slugFromPath(path)
		}
		return []model.BlogPost{post}, nil

	case ".md", ".markdown":
		var meta blogFrontMatter
		body, err := frontmatter.Parse(bytes.NewReader(data), &meta)
		if err != nil {
			return nil, fmt.Errorf("error parsing front matter in %s: %w", path, err)
		}
		date, err := model.ParseDate(meta.PublishDate)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		slug := meta.Slug
		if slug == "" {
			slug = content.Slugify(slugFromPath(path))
		}
		return []model.BlogPost{{
			Slug:        slug,
			Title:       meta.Title,
			Summary:     meta.Summary,
			Content:     strings.TrimSpace(string(body)),
			Category:    meta.Category,
			Tags:        meta.Tags,
			Image:       meta.Image,
			PublishDate: date,
		}}, nil
	}
	return nil, fmt.Errorf("unsupported blog file %s", path)
}

// LoadBlogDir loads every blog file in dir, in name order with the legacy aggregate last.
func LoadBlogDir(dir string) ([]model.BlogPost, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading blog directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && isBlogFile(e.Name()) {
			names = append(names, e.Name())
		}
	}
	// The aggregate goes last so the per-slug files win on duplicates
	sort.Slice(names, func(i, j int) bool {
		if (names[i] == LegacyAggregate) != (names[j] == LegacyAggregate) {
			return names[j] == LegacyAggregate
		}
		return names[i] < names[j]
	})

	var posts []model.BlogPost
	for _, name := range names {
		loaded, err := LoadBlogFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		posts = append(posts, loaded...)
	}
	return posts, nil
}

// LoadProjects reads projects from a JSON or YAML file holding an array, or
// from a directory with one JSON file per project.
func LoadProjects(path string) ([]model.Project, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return loadProjectDir(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		// Decode generically and re-encode so the JSON field names stay the only mapping
		var raw []map[string]any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
		if data, err = json.Marshal(raw); err != nil {
			return nil, fmt.Errorf("error converting %s: %w", path, err)
		}
	}

	var projects []model.Project
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var p model.Project
		if err := json.Unmarshal(trimmed, &p); err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", path, err)
		}
		return []model.Project{p}, nil
	}
	if err := json.Unmarshal(trimmed, &projects); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return projects, nil
}

func loadProjectDir(dir string) ([]model.Project, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	var projects []model.Project
	for _, file := range matches {
		loaded, err := LoadProjects(file)
		if err != nil {
			return nil, err
		}
		projects = append(projects, loaded...)
	}
	return projects, nil
}
