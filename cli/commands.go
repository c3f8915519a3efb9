// Package cli provides the Cobra-based CLI for pizzastore.
package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"pizzastore/domain"
	"pizzastore/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootCmd = &cobra.Command{
		Use:   "pizzastore",
		Short: "Build pizzas from a regional pizza store",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// tests inject the store directly
			if pizzaStore != nil {
				return nil
			}

			// a missing .env is fine, a malformed one is not
			if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("load .env: %w", err)
			}

			if cfg := viper.GetString("config"); cfg != "" {
				viper.SetConfigFile(cfg)
				if err := viper.ReadInConfig(); err != nil {
					return err
				}
			}

			slog.SetDefault(slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLevel(viper.GetString("log-level"))}),
			))

			kind := viper.GetString("store")
			var err error
			pizzaStore, err = store.NewStore(kind)
			if err != nil {
				return err
			}
			slog.Debug("store selected", "store", kind)
			return nil
		},
	}

	pizzaStore domain.PizzaFactory
)

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func init() {
	// shell
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive shell mode",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := bufio.NewReader(cmd.InOrStdin())
			for {
				fmt.Print("pizzastore> ")
				line, err := r.ReadString('\n')
				line = strings.TrimSpace(line)
				if line == "exit" || line == "quit" {
					return nil
				}
				if line != "" {
					rootCmd.SetArgs(strings.Fields(line))
					if err := rootCmd.Execute(); err != nil {
						fmt.Fprintln(os.Stderr, err)
					}
					rootCmd.SetArgs(nil)
				}
				if err != nil {
					return nil
				}
			}
		},
	}
	rootCmd.AddCommand(shellCmd)

	rootCmd.PersistentFlags().String("store", "ny", "store kind: ny|newyork")
	rootCmd.PersistentFlags().String("config", "", "config file")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")

	viper.BindPFlag("store", rootCmd.PersistentFlags().Lookup("store"))
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.SetEnvPrefix("PIZZASTORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// create
	createCmd := &cobra.Command{
		Use:   "create <item>",
		Short: "Create a pizza for an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := args[0]
			p, ok := pizzaStore.CreatePizza(item)
			if !ok {
				slog.Warn("no pizza for item", "item", item)
				fmt.Fprintf(os.Stderr, "no pizza for item %q\n", item)
				return nil
			}
			slog.Info("pizza created", "item", item, "pizza_id", p.ID())
			b, err := json.MarshalIndent(p, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		},
	}
	rootCmd.AddCommand(createCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
