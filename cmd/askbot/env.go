package main

import (
	"fmt"
	"strings"

	envconf "github.com/caarlos0/env/v11"
	"github.com/sandevgo/askbot/internal/config"
	"github.com/sandevgo/askbot/pkg/env"
	"github.com/spf13/cobra"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the resolved configuration in .env format",
	Long:  `Renders the current configuration (environment plus .env file plus defaults) as .env content, ready to redirect into the runtime directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		_ = initEnv(ctx, config.GetRuntimePath())

		sections := []any{
			&config.AppConfig{},
			&config.TelegramConfig{},
			&config.SourcesConfig{},
			&config.OpenAIConfig{},
			&config.AnthropicConfig{},
		}

		var out strings.Builder
		for _, c := range sections {
			// Best effort: unset required variables simply stay empty here.
			_ = envconf.Parse(c)

			content, err := env.MarshalEnv(c)
			if err != nil {
				return fmt.Errorf("marshal config: %w", err)
			}
			out.WriteString(content)
		}

		fmt.Print(out.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
