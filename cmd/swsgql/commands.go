package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/swsgraph/internal/app"
	"github.com/heartmarshall/swsgraph/internal/transport/graphql"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	queryText  string
	queryVars  string
	queryActAs string

	tokenSubject string
	tokenActAs   string
	tokenTTL     time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the GraphQL HTTP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		logger.Info("starting application", "sws", cfg.SWS.BaseURL, "auth", cfg.Auth.Enabled())
		return a.Run(ctx)
	},
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Execute one GraphQL query against SWS and print the JSON response",
	Long: `Runs a single query through the same schema and loaders the server uses.

Example:
  swsgql query -q '{ GetTermCurrent { Year Quarter } }' --act-as javerage`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var vars map[string]interface{}
		if queryVars != "" {
			if err := json.UnmarshalFromString(queryVars, &vars); err != nil {
				return fmt.Errorf("parse --vars: %w", err)
			}
		}

		a, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*cfg.SWS.Timeout+5*time.Second)
		defer cancel()

		resp := a.Execute(ctx, queryText, vars, queryActAs)
		if err := printJSON(cmd, resp); err != nil {
			return err
		}
		if len(resp.Errors) > 0 {
			return errors.New("query returned errors")
		}
		return nil
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the GraphQL schema in SDL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		_, err = fmt.Fprint(cmd.OutOrStdout(), graphql.PrintSchema(a.Schema()))
		return err
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token signed with auth.jwt_secret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.New(cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		if a.Tokens() == nil {
			return errors.New("auth is disabled: set AUTH_JWT_SECRET")
		}
		token, err := a.Tokens().GenerateToken(tokenSubject, tokenActAs, tokenTTL)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
