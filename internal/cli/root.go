package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/sitesig/sitesig/internal/config"
	"github.com/sitesig/sitesig/internal/document"
	"github.com/sitesig/sitesig/internal/extractor"
	"github.com/sitesig/sitesig/internal/extractor/logo"
	"github.com/sitesig/sitesig/internal/extractor/phone"
	"github.com/sitesig/sitesig/internal/fetcher"
	"github.com/sitesig/sitesig/internal/metadata"
	"github.com/sitesig/sitesig/internal/page"
	"github.com/sitesig/sitesig/pkg/failure"
	"github.com/sitesig/sitesig/pkg/retry"
	"github.com/sitesig/sitesig/pkg/timeutil"
	"github.com/spf13/cobra"
)

var (
	cfgFile          string
	timeout          time.Duration
	userAgent        string
	maxAttempts      int
	domainBonus      int
	logoBonus        int
	aspectRatioBonus int
	iconMIMEBonus    int
	relIconScore     int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sitesig <url>",
	Short: "Extract business-contact signals from a web page.",
	Long: `sitesig fetches a single web page and extracts structured
business-contact signals from it: a representative logo image locator and
the set of phone numbers found on the page.

Each signal is scored from multiple independent cues (domain-name match,
keyword match, image shape, link metadata, microdata, telephone links and
free-text grammar), then deduplicated and ranked. Results print one line per
signal: the phone list first, the logo locator second; a signal with no
match prints the literal string None.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := InitConfigWithError()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		baseURL, err := ParsePageURL(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}

		lines, runErr := Run(cmd.Context(), cfg, *baseURL)
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", runErr)
			os.Exit(1)
		}
		for _, line := range lines {
			fmt.Println(line)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path (e.g., /home/myuser/config.json)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "timeout for the page fetch request")
	rootCmd.PersistentFlags().StringVar(&userAgent, "user-agent", "", "user agent string for the HTTP request")
	rootCmd.PersistentFlags().IntVar(&maxAttempts, "max-attempts", 0, "maximum fetch attempts")
	rootCmd.PersistentFlags().IntVar(&domainBonus, "domain-bonus", 0, "score bonus for a domain-token match")
	rootCmd.PersistentFlags().IntVar(&logoBonus, "logo-bonus", 0, "score bonus for a logo-keyword match")
	rootCmd.PersistentFlags().IntVar(&aspectRatioBonus, "aspect-ratio-bonus", 0, "score bonus for a near-square inline image")
	rootCmd.PersistentFlags().IntVar(&iconMIMEBonus, "icon-mime-bonus", 0, "score bonus for an icon-friendly inline media type")
	rootCmd.PersistentFlags().IntVar(&relIconScore, "rel-icon-score", 0, "fixed score for link-rel icon hints")
}

// Run performs one extraction call end to end and returns the output lines
// in fixed order: phone numbers first, logo locator second.
func Run(ctx context.Context, cfg config.Config, baseURL url.URL) ([]string, failure.ClassifiedError) {
	sink := metadata.NewRecorder()

	htmlFetcher := fetcher.NewHtmlFetcher(sink, cfg.Timeout())
	fetchResult, fetchErr := htmlFetcher.Fetch(
		ctx,
		fetcher.NewFetchParam(baseURL, cfg.UserAgent()),
		retryParamFromConfig(cfg),
	)
	if fetchErr != nil {
		return nil, fetchErr
	}

	doc, parseErr := document.Parse(fetchResult.Body(), fetchResult.ContentType())
	if parseErr != nil {
		return nil, parseErr
	}

	pageCtx := page.NewPageContext(baseURL)

	phoneExtractor := phone.NewExtractor(sink)
	logoExtractor := logo.NewExtractor(weightsFromConfig(cfg), sink)

	// Fixed extractor order; absence is a rendered None, never an abort.
	extractors := []extractor.Extractor{&phoneExtractor, &logoExtractor}

	var lines []string
	for _, ext := range extractors {
		result, extractErr := ext.Extract(doc, pageCtx)
		if extractErr != nil && extractErr.Severity() == failure.SeverityFatal {
			return nil, extractErr
		}
		lines = append(lines, result.Render())
	}
	return lines, nil
}

// InitConfigWithError reads in config file and ENV variables if set,
// returning any errors.
func InitConfigWithError() (config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.WithConfigFile(cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return cfg, nil
	}

	// Build config from CLI flags using the With... functions with method chaining
	builder := config.WithDefault()

	if timeout > 0 {
		builder = builder.WithTimeout(timeout)
	}
	if userAgent != "" {
		builder = builder.WithUserAgent(userAgent)
	}
	if maxAttempts > 0 {
		builder = builder.WithMaxAttempts(maxAttempts)
	}
	if domainBonus > 0 {
		builder = builder.WithDomainBonus(domainBonus)
	}
	if logoBonus > 0 {
		builder = builder.WithLogoBonus(logoBonus)
	}
	if aspectRatioBonus > 0 {
		builder = builder.WithAspectRatioBonus(aspectRatioBonus)
	}
	if iconMIMEBonus > 0 {
		builder = builder.WithIconMIMEBonus(iconMIMEBonus)
	}
	if relIconScore > 0 {
		builder = builder.WithRelIconScore(relIconScore)
	}

	return builder.Build()
}

// ParsePageURL parses the positional argument into an absolute URL.
// A bare hostname is promoted to https.
func ParsePageURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("page URL cannot be empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("error parsing page URL %s: %w", raw, err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("page URL %s has no host", raw)
	}
	return parsed, nil
}

func retryParamFromConfig(cfg config.Config) retry.RetryParam {
	return retry.NewRetryParam(
		cfg.BackoffInitialDuration(),
		cfg.Jitter(),
		cfg.RandomSeed(),
		cfg.MaxAttempts(),
		timeutil.NewBackoffParam(
			cfg.BackoffInitialDuration(),
			cfg.BackoffMultiplier(),
			cfg.BackoffMaxDuration(),
		),
	)
}

func weightsFromConfig(cfg config.Config) logo.Weights {
	return logo.NewWeights(
		cfg.DomainBonus(),
		cfg.LogoBonus(),
		cfg.AspectRatioBonus(),
		cfg.IconMIMEBonus(),
		cfg.RelIconScore(),
	)
}

// ResetFlags restores all flag globals to their zero values.
func ResetFlags() {
	cfgFile = ""
	timeout = 0
	userAgent = ""
	maxAttempts = 0
	domainBonus = 0
	logoBonus = 0
	aspectRatioBonus = 0
	iconMIMEBonus = 0
	relIconScore = 0
}

// Test support functions to set private variables

func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetTimeoutForTest(t time.Duration) {
	timeout = t
}

func SetUserAgentForTest(agent string) {
	userAgent = agent
}

func SetMaxAttemptsForTest(n int) {
	maxAttempts = n
}

func SetDomainBonusForTest(v int) {
	domainBonus = v
}

func SetLogoBonusForTest(v int) {
	logoBonus = v
}

func SetRelIconScoreForTest(v int) {
	relIconScore = v
}
