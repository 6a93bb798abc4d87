package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
)

const envPrefix = "seqtool"

// options are the flags shared by all the sub-commands
type options struct {
	Seed       string `validate:"omitempty,hexadecimal"`
	Customizer string `validate:"max=12"`
	Input      string `validate:"required"`
	Metrics    bool
	LogLevel   string `validate:"oneof=trace debug info warn error"`
}

var log zerolog.Logger

var validate = validator.New()

func init() {
	log = newLogger(os.Stderr)
}

// newLogger returns the info level console logger of seqtool.
// Logs never go to the command output, which only holds elements.
func newLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(zerolog.InfoLevel).With().Timestamp().Logger()
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// NewRootCmd returns the seqtool command with its sub-commands.
// Every flag can also be set with a SEQTOOL_ prefixed environment variable,
// for instance SEQTOOL_SEED or SEQTOOL_COUNT.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	conf := viper.New()

	rootCmd := &cobra.Command{
		Use:           "seqtool",
		Short:         "Shuffle, sample and find the min and max of sequences of elements",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindEnv(conf, cmd.Flags()); err != nil {
				return err
			}
			if err := validate.Struct(opts); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}
			lvl, err := zerolog.ParseLevel(opts.LogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			log = log.Level(lvl)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.Seed, "seed", "",
		"hex-encoded 32 bytes seed of the deterministic generator, system entropy is used if empty")
	rootCmd.PersistentFlags().StringVar(&opts.Customizer, "customizer", "",
		"customizer of the deterministic generator, at most 12 bytes")
	rootCmd.PersistentFlags().StringVarP(&opts.Input, "input", "i", "-",
		"file with one element per line, used when no element is given as argument ('-' for stdin)")
	rootCmd.PersistentFlags().BoolVar(&opts.Metrics, "metrics", false,
		"log the random source metrics once the command is done")
	rootCmd.PersistentFlags().StringVarP(&opts.LogLevel, "loglevel", "l", "info",
		"level for logging output, logs are written to stderr")

	rootCmd.AddCommand(
		newShuffleCmd(opts),
		newSampleCmd(opts),
		newMinMaxCmd(opts),
	)

	return rootCmd
}

// bindEnv sets the flags that were not given on the command line
// from their environment variables.
func bindEnv(conf *viper.Viper, flags *pflag.FlagSet) error {
	conf.SetEnvPrefix(envPrefix)
	conf.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	conf.AutomaticEnv()

	var errs error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed || !conf.IsSet(f.Name) {
			return
		}
		if err := flags.Set(f.Name, conf.GetString(f.Name)); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("invalid environment value for flag --%s: %w", f.Name, err))
		}
	})
	return errs
}
