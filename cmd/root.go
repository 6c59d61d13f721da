package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Zachkp/zach-dev-api/internal/config"
	"github.com/Zachkp/zach-dev-api/internal/content"
	"github.com/Zachkp/zach-dev-api/internal/store"
)

var cfgFile string
var appConfig config.Config

var rootCmd = &cobra.Command{
	Use:   "zach-dev-api",
	Short: "Portfolio content API",
	Long: `zach-dev-api serves the blog posts and projects shown on the portfolio
site over a JSON API, relays contact form messages by email, and imports
content from files on disk.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(viper.New(), cfgFile)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
	// Running without a subcommand starts the server
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// openService opens the database named by the config and builds the content
// service on top of it. The caller closes the returned store.
func openService(debug bool) (*store.DB, *content.Service, *content.Validator, error) {
	db, err := store.Open(appConfig.DatabaseURL, debug)
	if err != nil {
		return nil, nil, nil, err
	}
	validator := content.NewValidator()
	return db, content.NewService(db, validator), validator, nil
}
