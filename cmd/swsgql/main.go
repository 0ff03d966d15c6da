// Command swsgql serves the SWS GraphQL API and offers one-shot query, schema
// and token helpers against the same configuration.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/swsgraph/internal/app"
	"github.com/heartmarshall/swsgraph/internal/config"
)

var (
	verbose bool

	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:     "swsgql",
	Short:   "GraphQL facade over the Student Web Service",
	Version: app.BuildVersion(),
	Long: `swsgql exposes the university Student Web Service REST resources as one
GraphQL schema. Configuration comes from the environment, an optional .env
file and the YAML file named by CONFIG_PATH.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if verbose {
			cfg.Log.Level = "debug"
		}
		logger = app.NewLogger(cfg.Log)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	queryCmd.Flags().StringVarP(&queryText, "query", "q", "", "GraphQL query (required)")
	queryCmd.Flags().StringVar(&queryVars, "vars", "", "Variables as a JSON object")
	queryCmd.Flags().StringVar(&queryActAs, "act-as", "", "NetID SWS evaluates the query as")
	_ = queryCmd.MarkFlagRequired("query")

	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "", "Token subject (required)")
	tokenCmd.Flags().StringVar(&tokenActAs, "act-as", "", "NetID the bearer acts as")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime (default: auth.token_ttl)")
	_ = tokenCmd.MarkFlagRequired("subject")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
