package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Zachkp/zach-dev-api/internal/seed"
)

var (
	seedBlogs    string
	seedProjects string
	seedReplace  bool
	seedWatch    bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Imports blog posts and projects from files",
	Long: `The seed command loads blog posts from a directory (one JSON or markdown
file per post, plus the legacy blog-posts.json array) and projects from a
JSON or YAML file or a directory of JSON files, and stores them in the
database. With --watch it keeps running and re-imports blog files as they
change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedBlogs == "" && seedProjects == "" {
			return errors.New("nothing to import: pass --blogs and/or --projects")
		}
		if seedWatch && seedBlogs == "" {
			return errors.New("--watch needs --blogs")
		}

		db, svc, _, err := openService(false)
		if err != nil {
			return err
		}
		defer db.Close()

		im := seed.NewImporter(svc)
		im.Replace = seedReplace
		ctx := cmd.Context()

		if seedBlogs != "" {
			res, err := im.ImportBlogs(ctx, seedBlogs)
			if err != nil {
				return err
			}
			printResult("Blogs", res)
		}
		if seedProjects != "" {
			res, err := im.ImportProjects(ctx, seedProjects)
			if err != nil {
				return err
			}
			printResult("Projects", res)
		}

		if seedWatch {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()
			return im.Watch(ctx, seedBlogs, seed.DefaultDebounce)
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedBlogs, "blogs", "", "directory of blog files to import")
	seedCmd.Flags().StringVar(&seedProjects, "projects", "", "projects file or directory to import")
	seedCmd.Flags().BoolVar(&seedReplace, "replace", false, "delete existing records before importing")
	seedCmd.Flags().BoolVar(&seedWatch, "watch", false, "keep running and re-import blog files when they change")
	rootCmd.AddCommand(seedCmd)
}

func printResult(kind string, res seed.Result) {
	fmt.Printf("✅ %s: %s\n", color.New(color.Bold, color.FgHiGreen).Sprint(kind), color.New(color.FgHiCyan).Sprint(res))
}
