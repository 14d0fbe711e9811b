package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"trivia-titans/internal/config"
)

const releaseVersion = "0.3.0"

type options struct {
	bind            string
	port            int
	shutdownTimeout time.Duration
	game            config.Config
}

func (o *options) validate() error {
	if o.port < 1 || o.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", o.port)
	}
	if o.game.QuestionsPerGame < 1 || o.game.QuestionsPerGame > 50 {
		return errors.New("--questions must be between 1 and 50")
	}
	if o.game.QuestionSeconds < 1 {
		return errors.New("--question-seconds must be positive")
	}
	switch o.game.QuestionSource {
	case config.SourceAI, config.SourceStatic:
	default:
		return fmt.Errorf("unknown question source %q", o.game.QuestionSource)
	}
	return nil
}

func (o *options) addr() string {
	return fmt.Sprintf("%s:%d", o.bind, o.port)
}

// newCmd layers flags and TRIVIA_* variables over the plain environment
// settings already loaded into opts.game.
func newCmd(opts *options) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("TRIVIA")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "trivia-titans",
		Short:         "A shared-screen trivia party game.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), opts)
		},
	}

	fs := cmd.Flags()
	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	game := &opts.game
	fs.StringVarP(&opts.bind, "bind", "b", "0.0.0.0", "address to bind to (env: TRIVIA_BIND)")
	fs.IntVarP(&opts.port, "port", "p", 8080, "port to listen on (env: TRIVIA_PORT)")
	fs.DurationVar(&opts.shutdownTimeout, "shutdown-timeout", 10*time.Second, "time allowed for in-flight requests on shutdown (env: TRIVIA_SHUTDOWN_TIMEOUT)")
	fs.IntVarP(&game.QuestionsPerGame, "questions", "q", game.QuestionsPerGame, "questions per game (env: TRIVIA_QUESTIONS)")
	fs.IntVar(&game.QuestionSeconds, "question-seconds", game.QuestionSeconds, "seconds on the clock per question (env: TRIVIA_QUESTION_SECONDS)")
	fs.StringVar(&game.QuestionSource, "question-source", game.QuestionSource, "default question source, ai or static (env: TRIVIA_QUESTION_SOURCE)")
	fs.StringVar(&game.QuestionLocale, "locale", game.QuestionLocale, "question language (env: TRIVIA_LOCALE)")
	fs.StringVar(&game.GameMode, "mode", game.GameMode, "default game mode (env: TRIVIA_MODE)")
	fs.IntVar(&game.AITimeoutSeconds, "ai-timeout", game.AITimeoutSeconds, "seconds before an AI call is abandoned (env: TRIVIA_AI_TIMEOUT)")
	fs.IntVar(&game.SlowCallSeconds, "slow-call", game.SlowCallSeconds, "seconds before a loading game is flagged as slow (env: TRIVIA_SLOW_CALL)")
	fs.StringVar(&game.DatabaseURL, "database-url", game.DatabaseURL, "postgres connection string; empty disables persistence (env: TRIVIA_DATABASE_URL)")
	fs.StringVar(&game.OpenAIModel, "openai-model", game.OpenAIModel, "chat model used for questions and summaries (env: TRIVIA_OPENAI_MODEL)")
	fs.StringVar(&game.OpenAIBaseURL, "openai-base-url", game.OpenAIBaseURL, "override the OpenAI API base url (env: TRIVIA_OPENAI_BASE_URL)")
	fs.BoolVar(&game.OTelEnabled, "otel", game.OTelEnabled, "export traces over OTLP/HTTP (env: TRIVIA_OTEL)")
	fs.StringVar(&game.OTelEndpoint, "otel-endpoint", game.OTelEndpoint, "OTLP collector url (env: TRIVIA_OTEL_ENDPOINT)")
	fs.StringVarP(&game.LogLevel, "log-level", "l", game.LogLevel, "debug, info, warn or error (env: TRIVIA_LOG_LEVEL)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("trivia-titans v{{.Version}}\n")
	cmd.SilenceUsage = true

	return cmd
}
