package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"fyyur/internal/config"
	"fyyur/internal/logger"
)

var (
	envFile string

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fyyur",
	Short: "Fyyur - venue and artist booking directory",
	Long: `Fyyur lists venues and artists and the shows that connect them.

Run "fyyur serve" to start the web server. SQLite databases get their tables on
startup; PostgreSQL databases are managed with "fyyur migrate".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envErr := godotenv.Load(envFile)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		log = logger.NewLogger(cfg.App.LogDir)

		if envErr != nil {
			log.Warn("CONFIG", fmt.Sprintf("%s not loaded, using environment variables", envFile))
		} else {
			log.Info("CONFIG", fmt.Sprintf("Loaded environment variables from %s", envFile))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			log.Close()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading configuration")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
