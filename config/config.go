package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"

	"jobboard/internal/domain/entity"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultAccessTTL          = time.Hour
	defaultRefreshTTL         = 7 * 24 * time.Hour
	defaultOTPLength          = 6
	defaultOTPTTL             = 10 * time.Minute
	defaultOTPSweepSchedule   = "0 */6 * * *"
	defaultOTPResendCooldown  = time.Minute
	minSecretLength           = 32
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		// RateLimit is the sustained requests per second allowed per client IP. Zero disables the limiter.
		RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
		Timeouts  struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Worker configures the mail worker push endpoint.
	Worker struct {
		Port int `json:"port" yaml:"port"`
	} `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	OTP *OTPConfig `json:"otp" yaml:"otp"`

	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`

	// PubSub configuration for OTP delivery events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	Mail *MailConfig `json:"mail" yaml:"mail"`
}

type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// RealmSecrets holds the access and refresh signing secrets of one realm.
type RealmSecrets struct {
	Access  string `json:"access" yaml:"access"`
	Refresh string `json:"refresh" yaml:"refresh"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	Secrets struct {
		User  RealmSecrets `json:"user" yaml:"user"`
		Admin RealmSecrets `json:"admin" yaml:"admin"`
	} `json:"secrets" yaml:"secrets"`

	AccessTTL  time.Duration `json:"accessTTL" yaml:"accessTTL"`
	RefreshTTL time.Duration `json:"refreshTTL" yaml:"refreshTTL"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`

	// EncryptionKey is the master key for field encryption. Sub-keys are derived from it.
	EncryptionKey string `json:"encryptionKey" yaml:"encryptionKey"`
}

// SecretTable returns the signing secret for every (realm, purpose) pair.
func (a *AuthConfig) SecretTable() map[entity.Realm]map[entity.TokenPurpose]string {
	return map[entity.Realm]map[entity.TokenPurpose]string{
		entity.RealmUser: {
			entity.TokenPurposeAccess:  a.Secrets.User.Access,
			entity.TokenPurposeRefresh: a.Secrets.User.Refresh,
		},
		entity.RealmAdmin: {
			entity.TokenPurposeAccess:  a.Secrets.Admin.Access,
			entity.TokenPurposeRefresh: a.Secrets.Admin.Refresh,
		},
	}
}

// Validate checks that all four secrets are present, long enough and pairwise distinct.
func (a *AuthConfig) Validate() error {
	seen := make(map[string]string, 4)
	for realm, purposes := range a.SecretTable() {
		for purpose, secret := range purposes {
			name := realm.String() + "." + purpose.String()
			if len(secret) < minSecretLength {
				return errors.Errorf("auth secret %s must be at least %d characters", name, minSecretLength)
			}
			if other, ok := seen[secret]; ok {
				return errors.Errorf("auth secrets %s and %s must differ", other, name)
			}
			seen[secret] = name
		}
	}
	if len(a.EncryptionKey) < minSecretLength {
		return errors.Errorf("auth encryption key must be at least %d characters", minSecretLength)
	}

	return nil
}

// OTPConfig defines one-time code generation, expiry and cleanup.
type OTPConfig struct {
	Length         int           `json:"length" yaml:"length"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	SweepSchedule  string        `json:"sweepSchedule" yaml:"sweepSchedule"`
	ResendCooldown time.Duration `json:"resendCooldown" yaml:"resendCooldown"`
}

// MongoConfig defines the document store holding chat conversations.
type MongoConfig struct {
	URI      string `json:"uri" yaml:"uri"`
	Database string `json:"database" yaml:"database"`
}

// RedisConfig defines the Redis connection used for request throttling.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// MailConfig defines outgoing mail. An empty Host selects the logging mailer.
type MailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PubSubConfig defines how OTP delivery events leave the API process
type PubSubConfig struct {
	// Provider type: "channel" (in-process, default), "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// BufferSize is the queue length of the channel provider
	BufferSize int `json:"bufferSize" yaml:"bufferSize"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		return nil, errors.New("auth configuration is required")
	}
	applyDefaults(cfg)
	if err := cfg.Auth.Validate(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional auth and OTP settings left empty in the YAML file.
func applyDefaults(cfg *Config) {
	if cfg.Auth != nil {
		if cfg.Auth.AccessTTL <= 0 {
			cfg.Auth.AccessTTL = defaultAccessTTL
		}
		if cfg.Auth.RefreshTTL <= 0 {
			cfg.Auth.RefreshTTL = defaultRefreshTTL
		}
	}

	if cfg.OTP == nil {
		cfg.OTP = &OTPConfig{}
	}
	if cfg.OTP.Length <= 0 {
		cfg.OTP.Length = defaultOTPLength
	}
	if cfg.OTP.TTL <= 0 {
		cfg.OTP.TTL = defaultOTPTTL
	}
	if strings.TrimSpace(cfg.OTP.SweepSchedule) == "" {
		cfg.OTP.SweepSchedule = defaultOTPSweepSchedule
	}
	if cfg.OTP.ResendCooldown < 0 {
		cfg.OTP.ResendCooldown = 0
	} else if cfg.OTP.ResendCooldown == 0 {
		cfg.OTP.ResendCooldown = defaultOTPResendCooldown
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
