package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Zachkp/zach-dev-api/internal/content"
	"github.com/Zachkp/zach-dev-api/internal/model"
	"github.com/Zachkp/zach-dev-api/internal/store"
)

// DefaultDebounce is how long a file must stay quiet before it is re-imported.
const DefaultDebounce = 500 * time.Millisecond

// Watch re-imports blog files in dir whenever they change, until ctx is done.
// A removed file deletes the posts it last held.
func (im *Importer) Watch(ctx context.Context, dir string, debounce time.Duration) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	log.Printf("Watching %s for blog changes", dir)

	slugs := indexBlogDir(dir)

	type change struct {
		path    string
		removed bool
	}
	pending := make(map[string]*time.Timer)
	ready := make(chan change)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isBlogFile(event.Name) || filepath.Base(event.Name) == LegacyAggregate {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			c := change{path: event.Name, removed: event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)}
			if t, ok := pending[c.path]; ok {
				t.Stop()
			}
			pending[c.path] = time.AfterFunc(debounce, func() {
				select {
				case ready <- c:
				case <-ctx.Done():
				}
			})

		case c := <-ready:
			delete(pending, c.path)
			im.applyChange(ctx, slugs, c.path, c.removed)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		}
	}
}

// indexBlogDir records the slugs held by each blog file already in dir, so a
// later removal deletes what the file contained.
func indexBlogDir(dir string) map[string][]string {
	slugs := make(map[string][]string)
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("Error reading %s: %v", dir, err)
		return slugs
	}
	for _, e := range entries {
		if e.IsDir() || !isBlogFile(e.Name()) || e.Name() == LegacyAggregate {
			continue
		}
		path := filepath.Join(dir, e.Name())
		posts, err := LoadBlogFile(path)
		if err != nil {
			log.Printf("Error loading %s: %v", path, err)
			continue
		}
		slugs[path] = postSlugs(posts)
	}
	return slugs
}

func postSlugs(posts []model.BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

// removedSlugs is what a deleted file held, or its file-name slug when it was never loaded.
func removedSlugs(slugs map[string][]string, path string) []string {
	if known, ok := slugs[path]; ok {
		return known
	}
	slug := slugFromPath(path)
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		slug = content.Slugify(slug)
	}
	return []string{slug}
}

func (im *Importer) applyChange(ctx context.Context, slugs map[string][]string, path string, removed bool) {
	if removed {
		for _, slug := range removedSlugs(slugs, path) {
			if err := im.svc.DeleteBlog(ctx, slug); err != nil && !errors.Is(err, store.ErrNotFound) {
				log.Printf("Error removing blog %s: %v", slug, err)
				continue
			}
			log.Printf("Removed blog %s", slug)
		}
		delete(slugs, path)
		return
	}

	posts, err := LoadBlogFile(path)
	if err != nil {
		log.Printf("Error loading %s: %v", path, err)
		return
	}
	slugs[path] = postSlugs(posts)
	for _, post := range posts {
		created, err := im.syncBlog(ctx, post)
		if err != nil {
			log.Printf("Error importing %s: %v", path, err)
			continue
		}
		if created {
			log.Printf("Imported blog %s", post.Slug)
		} else {
			log.Printf("Updated blog %s", post.Slug)
		}
	}
}
