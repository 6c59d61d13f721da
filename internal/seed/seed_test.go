package seed

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/zach-dev-api/internal/content"
	"github.com/Zachkp/zach-dev-api/internal/store"
)

const jsonPost = `{
  "title": "RFM Analizi",
  "summary": "Müşteri segmentasyonu",
  "content": "## Giriş\n\nRFM analizi...",
  "category": "Veri Analizi",
  "tags": ["rfm", "pandas"],
  "image": "/images/blog/rfm.jpg",
  "publishDate": "2024-01-10",
  "readTime": "8"
}`

const aggregate = `[
  {"slug": "rfm-analizi", "title": "Stale copy", "summary": "s", "content": "c", "category": "x", "image": "i", "publishDate": "2023-01-01"},
  {"slug": "cltv", "title": "CLTV Tahmini", "summary": "s", "content": "c", "category": "Veri Bilimi", "image": "i", "publishDate": "2024-02-01"}
]`

const markdownPost = `---
title: A/B Testi Rehberi
summary: Hipotez testleri
category: İstatistik
tags: [ab, test]
image: /images/blog/ab.jpg
publishDate: 2024-03-15
---

# A/B Testi

Kontrol ve deney grupları.
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func setupImporter(t *testing.T) (*Importer, *content.Service) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "seed.db"), false)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	svc := content.NewService(db, nil)
	return NewImporter(svc), svc
}

func TestLoadBlogFileFormats(t *testing.T) {
	dir := t.TempDir()

	posts, err := LoadBlogFile(writeFile(t, dir, "rfm-analizi.json", jsonPost))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "rfm-analizi", posts[0].Slug, "slug defaults to the file name")
	assert.Equal(t, []string{"rfm", "pandas"}, posts[0].Tags)

	posts, err = LoadBlogFile(writeFile(t, dir, LegacyAggregate, aggregate))
	require.NoError(t, err)
	assert.Len(t, posts, 2)

	posts, err = LoadBlogFile(writeFile(t, dir, "AB Testi.md", markdownPost))
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "ab-testi", posts[0].Slug)
	assert.Equal(t, "A/B Testi Rehberi", posts[0].Title)
	assert.Equal(t, "İstatistik", posts[0].Category)
	assert.Equal(t, []string{"ab", "test"}, posts[0].Tags)
	assert.Equal(t, "2024-03-15", posts[0].PublishDate.Format("2006-01-02"))
	assert.Contains(t, posts[0].Content, "Kontrol ve deney grupları.")
	assert.NotContains(t, posts[0].Content, "title:")

	_, err = LoadBlogFile(writeFile(t, dir, "broken.json", `{"title":`))
	assert.Error(t, err)
}

func TestImportBlogs(t *testing.T) {
	im, svc := setupImporter(t)
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, dir, "rfm-analizi.json", jsonPost)
	writeFile(t, dir, LegacyAggregate, aggregate)
	writeFile(t, dir, "ab-testi.md", markdownPost)
	writeFile(t, dir, "notes.txt", "ignored")

	res, err := im.ImportBlogs(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Created)
	assert.Equal(t, 1, res.Skipped, "aggregate copy of rfm-analizi is a duplicate")

	rfm, err := svc.GetBlog(ctx, "rfm-analizi")
	require.NoError(t, err)
	assert.Equal(t, "RFM Analizi", rfm.Title, "per-slug file wins over the aggregate")
	assert.Equal(t, "1", rfm.ReadTime)

	posts, err := svc.ListBlogs(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "ab-testi", posts[0].Slug)
	assert.Equal(t, "cltv", posts[1].Slug)
	assert.Equal(t, "rfm-analizi", posts[2].Slug)

	// second run without replace changes nothing
	res, err = im.ImportBlogs(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 4, res.Skipped)

	im.Replace = true
	res, err = im.ImportBlogs(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Deleted)
	assert.Equal(t, 3, res.Created)
}

func TestImportBlogsInvalidRecord(t *testing.T) {
	im, _ := setupImporter(t)
	dir := t.TempDir()
	writeFile(t, dir, "empty.json", `{"title": "Eksik"}`)

	_, err := im.ImportBlogs(context.Background(), dir)
	var verr *content.ValidationError
	assert.ErrorAs(t, err, &verr)
}

const projectsYAML = `
- title: BG/NBD ve Gamma-Gamma Modelleri ile CLTV Tahmini
  shortDescription: FLO için CLTV tahmini
  technologies: [Python, Lifetimes, İstatistiksel Modelleme]
  category: Veri Bilimi
  thumbnail: /images/projects/cltv-prediction.jpg
  projectDetails:
    problem: |
      Perakende sektöründe müşteri değeri.

      1. Veri ön işleme
      2. Modelleme
    solution: BG/NBD
  links:
    github: https://github.com/example/cltv
- title: RFM Analizi ile Müşteri Segmentasyonu
  shortDescription: RFM segmentasyonu
  technologies: Python, Pandas
  category: Veri Analizi
`

func TestImportProjectsYAML(t *testing.T) {
	im, svc := setupImporter(t)
	ctx := context.Background()
	path := writeFile(t, t.TempDir(), "projects.yaml", projectsYAML)

	res, err := im.ImportProjects(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)

	cltv, err := svc.GetProject(ctx, "bg-nbd-ve-gamma-gamma-modelleri-ile-cltv-tahmini")
	require.NoError(t, err)
	assert.Equal(t, []string{"Python", "Lifetimes", "İstatistiksel Modelleme"}, cltv.Technologies.List())
	assert.Contains(t, cltv.ProjectDetails.Problem, "1. Veri ön işleme")
	assert.Equal(t, "https://github.com/example/cltv", cltv.Links.Github)

	res, err = im.ImportProjects(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Skipped, "derived ids make re-imports idempotent")

	all, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestImportProjectsJSONDirectory(t *testing.T) {
	im, svc := setupImporter(t)
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, dir, "1700000000000.json", `{"id":"1700000000000","title":"Churn","shortDescription":"d","technologies":"Python","category":"ML"}`)
	writeFile(t, dir, "1700000000001.json", `{"id":"1700000000001","title":"Sales","shortDescription":"d","technologies":["SQL"],"category":"BI"}`)

	res, err := im.ImportProjects(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Created)

	p, err := svc.GetProject(ctx, "1700000000001")
	require.NoError(t, err)
	assert.Equal(t, "Sales", p.Title)
}

func TestWatchImportsChanges(t *testing.T) {
	im, svc := setupImporter(t)
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- im.Watch(ctx, dir, 20*time.Millisecond) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	path := writeFile(t, dir, "ab-testi.md", markdownPost)
	require.Eventually(t, func() bool {
		_, err := svc.GetBlog(context.Background(), "ab-testi")
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	updated := markdownPost[:len(markdownPost)-1] + "\nYeni paragraf.\n"
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o644))
	require.Eventually(t, func() bool {
		post, err := svc.GetBlog(context.Background(), "ab-testi")
		return err == nil && strings.Contains(post.Content, "Yeni paragraf.")
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool {
		_, err := svc.GetBlog(context.Background(), "ab-testi")
		return err != nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestWatchRemovesSlugFromFrontMatter(t *testing.T) {
	im, svc := setupImporter(t)
	dir := t.TempDir()

	custom := strings.Replace(markdownPost, "title: A/B Testi Rehberi\n", "title: A/B Testi Rehberi\nslug: hipotez-testleri\n", 1)
	path := writeFile(t, dir, "taslak.md", custom)
	_, err := im.ImportBlogs(context.Background(), dir)
	require.NoError(t, err)
	_, err = svc.GetBlog(context.Background(), "hipotez-testleri")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- im.Watch(ctx, dir, 20*time.Millisecond) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.Remove(path))
	require.Eventually(t, func() bool {
		_, err := svc.GetBlog(context.Background(), "hipotez-testleri")
		return err != nil
	}, 5*time.Second, 20*time.Millisecond)
}

func TestRemovedSlugs(t *testing.T) {
	dir := t.TempDir()
	known := map[string][]string{
		filepath.Join(dir, "eski.json"): {"yeni-slug"},
	}

	assert.Equal(t, []string{"yeni-slug"}, removedSlugs(known, filepath.Join(dir, "eski.json")))
	assert.Equal(t, []string{"RFM-Notlari"}, removedSlugs(known, filepath.Join(dir, "RFM-Notlari.JSON")), "json names are used as is")
	assert.Equal(t, []string{"ab-testi"}, removedSlugs(known, filepath.Join(dir, "AB Testi.md")))
}

func TestIndexBlogDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "rfm-analizi.json", jsonPost)
	writeFile(t, dir, LegacyAggregate, aggregate)
	writeFile(t, dir, "broken.json", `{"title":`)

	slugs := indexBlogDir(dir)
	assert.Equal(t, map[string][]string{
		filepath.Join(dir, "rfm-analizi.json"): {"rfm-analizi"},
	}, slugs)
}
