package main // import "github.com/swgillespie/cordinfo"

import (
	"io"
	"net/http"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/swgillespie/cordinfo/pkg/cdn"
	"github.com/swgillespie/cordinfo/pkg/config"
	"github.com/swgillespie/cordinfo/pkg/console"
	"github.com/swgillespie/cordinfo/pkg/discord"
	"github.com/swgillespie/cordinfo/pkg/lookup"
)

var (
	configPath string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "cordinfo [id...]",
	Short: "Print a Discord user's profile",
	Long: `Print a Discord user's profile, including resolved avatar, banner and
avatar decoration URLs.

With no arguments cordinfo prompts for ids until end of input.

Examples:
  cordinfo 80351110224678912
  cordinfo --config ~/.cordinfo.json`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		session := newSession(cfg, cmd.OutOrStdout())
		if len(args) > 0 {
			return session.LookupAll(cmd.Context(), args)
		}

		lines, err := newLineReader(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer lines.Close()
		return session.Run(cmd.Context(), lines)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to the JSON config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", log.InfoLevel.String(), "log level (debug, info, warn, error)")
}

func newSession(cfg *config.Config, out io.Writer) *lookup.Session {
	httpClient := &http.Client{}

	options := []discord.ClientOption{
		discord.WithHTTPClient(httpClient),
		discord.WithBaseURL(cfg.APIBaseURL),
	}
	if cfg.UserAgent != "" {
		options = append(options, discord.WithUserAgent(cfg.UserAgent))
	}
	client := discord.New(cfg.Token, options...)

	resolver := cdn.NewResolver(
		cdn.WithHTTPClient(httpClient),
		cdn.WithBaseURL(cfg.CDNBaseURL))
	return lookup.NewSession(client.Users, resolver, out)
}

// newLineReader uses the line editor when stdin is a terminal and a plain
// scanner otherwise, so ids can be piped in.
func newLineReader(in io.Reader, out io.Writer) (console.LineReader, error) {
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		lines, err := console.NewTerminal()
		if err != nil {
			return nil, errors.Wrap(err, "failed to open terminal")
		}
		return lines, nil
	}
	return console.NewScanner(in, out), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Fatalln("cordinfo failed")
	}
}
