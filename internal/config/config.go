package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	//===============
	// Scoring policy
	//===============
	// Weight awarded when the domain token is a substring of the image name
	// or of the alt text. Each cue contributes independently.
	domainBonus int
	// Weight awarded when "logo" is a substring of the image name or of the
	// alt text. Slightly below domainBonus: a domain match is more specific
	// than a bare keyword.
	logoBonus int
	// Weight awarded to a decoded inline image whose aspect ratio lies in
	// the near-square band typical of icon logos.
	aspectRatioBonus int
	// Weight awarded to a decoded inline image declaring an icon-friendly
	// media type.
	iconMIMEBonus int
	// Fixed score for link-rel icon hints. These are authoritative and must
	// outrank any achievable heuristic sum.
	relIconScore int

	//===============
	// Fetch
	//===============
	// Maximum time of the single page fetch request
	timeout time.Duration
	// User agent that will be used in the request header. In raw string
	userAgent string
	// Maximum attempts during retry
	maxAttempts int
	// Randomized variation added on top of backoff delays
	jitter time.Duration
	// Controls the random number generator used for jitter
	randomSeed int64
	// Initial delay for backoff
	backoffInitialDuration time.Duration
	// Multiplier during exponential backoff
	backoffMultiplier float64
	// Capped maximum delay for backoff to stop exponential multiplication
	backoffMaxDuration time.Duration
}

type configDTO struct {
	DomainBonus            int           `json:"domainBonus,omitempty"`
	LogoBonus              int           `json:"logoBonus,omitempty"`
	AspectRatioBonus       int           `json:"aspectRatioBonus,omitempty"`
	IconMIMEBonus          int           `json:"iconMimeBonus,omitempty"`
	RelIconScore           int           `json:"relIconScore,omitempty"`
	Timeout                time.Duration `json:"timeout,omitempty"`
	UserAgent              string        `json:"userAgent,omitempty"`
	MaxAttempts            int           `json:"maxAttempts,omitempty"`
	Jitter                 time.Duration `json:"jitter,omitempty"`
	RandomSeed             int64         `json:"randomSeed,omitempty"`
	BackoffInitialDuration time.Duration `json:"backoffInitialDuration,omitempty"`
	BackoffMultiplier      float64       `json:"backoffMultiplier,omitempty"`
	BackoffMaxDuration     time.Duration `json:"backoffMaxDuration,omitempty"`
}

const (
	defaultDomainBonus      = 110
	defaultLogoBonus        = 105
	defaultAspectRatioBonus = 30
	defaultIconMIMEBonus    = 25
	defaultRelIconScore     = 500

	defaultTimeout           = 15 * time.Second
	defaultUserAgent         = "sitesig/1.0"
	defaultMaxAttempts       = 3
	defaultJitter            = 100 * time.Millisecond
	defaultBackoffInitial    = 500 * time.Millisecond
	defaultBackoffMultiplier = 2.0
	defaultBackoffMax        = 5 * time.Second
)

// WithDefault returns a builder seeded with the default scoring weights and
// fetch settings. Environment variables override the defaults; With...
// methods override both.
func WithDefault() Builder {
	cfg := Config{
		domainBonus:            defaultDomainBonus,
		logoBonus:              defaultLogoBonus,
		aspectRatioBonus:       defaultAspectRatioBonus,
		iconMIMEBonus:          defaultIconMIMEBonus,
		relIconScore:           defaultRelIconScore,
		timeout:                defaultTimeout,
		userAgent:              defaultUserAgent,
		maxAttempts:            defaultMaxAttempts,
		jitter:                 defaultJitter,
		backoffInitialDuration: defaultBackoffInitial,
		backoffMultiplier:      defaultBackoffMultiplier,
		backoffMaxDuration:     defaultBackoffMax,
	}
	applyEnvOverrides(&cfg)
	return Builder{cfg: cfg}
}

// WithConfigFile reads a JSON config file and returns the resulting Config.
// Fields absent from the file keep their default values.
func WithConfigFile(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Config{}, fmt.Errorf("%w: %s", ErrFileDoesNotExist, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrReadConfigFail, err)
	}

	var dto configDTO
	if err := json.Unmarshal(raw, &dto); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfigParsingFail, err)
	}

	builder := WithDefault()
	if dto.DomainBonus > 0 {
		builder = builder.WithDomainBonus(dto.DomainBonus)
	}
	if dto.LogoBonus > 0 {
		builder = builder.WithLogoBonus(dto.LogoBonus)
	}
	if dto.AspectRatioBonus > 0 {
		builder = builder.WithAspectRatioBonus(dto.AspectRatioBonus)
	}
	if dto.IconMIMEBonus > 0 {
		builder = builder.WithIconMIMEBonus(dto.IconMIMEBonus)
	}
	if dto.RelIconScore > 0 {
		builder = builder.WithRelIconScore(dto.RelIconScore)
	}
	if dto.Timeout > 0 {
		builder = builder.WithTimeout(dto.Timeout)
	}
	if dto.UserAgent != "" {
		builder = builder.WithUserAgent(dto.UserAgent)
	}
	if dto.MaxAttempts > 0 {
		builder = builder.WithMaxAttempts(dto.MaxAttempts)
	}
	if dto.Jitter > 0 {
		builder = builder.WithJitter(dto.Jitter)
	}
	if dto.RandomSeed != 0 {
		builder = builder.WithRandomSeed(dto.RandomSeed)
	}
	if dto.BackoffInitialDuration > 0 {
		builder = builder.WithBackoff(dto.BackoffInitialDuration, dto.BackoffMultiplier, dto.BackoffMaxDuration)
	}

	return builder.Build()
}

// applyEnvOverrides reads SITESIG_* environment variables into cfg.
func applyEnvOverrides(cfg *Config) {
	if ua := os.Getenv("SITESIG_USER_AGENT"); ua != "" {
		cfg.userAgent = ua
	}
	if raw := os.Getenv("SITESIG_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.timeout = d
		}
	}
	if raw := os.Getenv("SITESIG_MAX_ATTEMPTS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.maxAttempts = n
		}
	}
}

type Builder struct {
	cfg Config
}

func (b Builder) WithDomainBonus(v int) Builder {
	b.cfg.domainBonus = v
	return b
}

func (b Builder) WithLogoBonus(v int) Builder {
	b.cfg.logoBonus = v
	return b
}

func (b Builder) WithAspectRatioBonus(v int) Builder {
	b.cfg.aspectRatioBonus = v
	return b
}

func (b Builder) WithIconMIMEBonus(v int) Builder {
	b.cfg.iconMIMEBonus = v
	return b
}

func (b Builder) WithRelIconScore(v int) Builder {
	b.cfg.relIconScore = v
	return b
}

func (b Builder) WithTimeout(d time.Duration) Builder {
	b.cfg.timeout = d
	return b
}

func (b Builder) WithUserAgent(ua string) Builder {
	b.cfg.userAgent = ua
	return b
}

func (b Builder) WithMaxAttempts(n int) Builder {
	b.cfg.maxAttempts = n
	return b
}

func (b Builder) WithJitter(d time.Duration) Builder {
	b.cfg.jitter = d
	return b
}

func (b Builder) WithRandomSeed(seed int64) Builder {
	b.cfg.randomSeed = seed
	return b
}

func (b Builder) WithBackoff(initial time.Duration, multiplier float64, max time.Duration) Builder {
	b.cfg.backoffInitialDuration = initial
	if multiplier > 0 {
		b.cfg.backoffMultiplier = multiplier
	}
	if max > 0 {
		b.cfg.backoffMaxDuration = max
	}
	return b
}

// Build validates the assembled configuration.
func (b Builder) Build() (Config, error) {
	if b.cfg.domainBonus < 0 || b.cfg.logoBonus < 0 ||
		b.cfg.aspectRatioBonus < 0 || b.cfg.iconMIMEBonus < 0 {
		return Config{}, fmt.Errorf("%w: scoring weights must be non-negative", ErrInvalidConfig)
	}
	if b.cfg.relIconScore < 0 {
		return Config{}, fmt.Errorf("%w: relIconScore must be non-negative", ErrInvalidConfig)
	}
	if b.cfg.maxAttempts < 1 {
		return Config{}, fmt.Errorf("%w: maxAttempts must be at least 1", ErrInvalidConfig)
	}
	if b.cfg.timeout <= 0 {
		return Config{}, fmt.Errorf("%w: timeout must be positive", ErrInvalidConfig)
	}
	return b.cfg, nil
}

func (c Config) DomainBonus() int {
	return c.domainBonus
}

func (c Config) LogoBonus() int {
	return c.logoBonus
}

func (c Config) AspectRatioBonus() int {
	return c.aspectRatioBonus
}

func (c Config) IconMIMEBonus() int {
	return c.iconMIMEBonus
}

func (c Config) RelIconScore() int {
	return c.relIconScore
}

func (c Config) Timeout() time.Duration {
	return c.timeout
}

func (c Config) UserAgent() string {
	return c.userAgent
}

func (c Config) MaxAttempts() int {
	return c.maxAttempts
}

func (c Config) Jitter() time.Duration {
	return c.jitter
}

func (c Config) RandomSeed() int64 {
	return c.randomSeed
}

func (c Config) BackoffInitialDuration() time.Duration {
	return c.backoffInitialDuration
}

func (c Config) BackoffMultiplier() float64 {
	return c.backoffMultiplier
}

func (c Config) BackoffMaxDuration() time.Duration {
	return c.backoffMaxDuration
}
