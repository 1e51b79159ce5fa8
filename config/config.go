package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "16KB"
	defaultChannelType        = "messaging"
	defaultMessageBuffer      = 200
	defaultRole               = "user"
	defaultAuditWorkerPort    = 8081
	defaultDedupWindow        = 1024
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host               string `json:"host" yaml:"host"`
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Identity selects who this desk signs in as on the chat service
	Identity *IdentityConfig `json:"identity" yaml:"identity"`

	// Firebase configuration for the identity provider
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// TokenEndpoint is the backend that mints chat-service tokens
	TokenEndpoint *TokenEndpointConfig `json:"tokenEndpoint" yaml:"tokenEndpoint"`

	// Chat configuration for the hosted chat service
	Chat *ChatConfig `json:"chat" yaml:"chat"`

	Bootstrap *BootstrapConfig `json:"bootstrap" yaml:"bootstrap"`

	Moderation *ModerationConfig `json:"moderation" yaml:"moderation"`

	// PubSub configuration for moderation audit events
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// AuditWorker configures the push endpoint that receives audit events
	AuditWorker *AuditWorkerConfig `json:"auditWorker" yaml:"auditWorker"`
}

// ProfileConfig is the chat-service profile used for one role
type ProfileConfig struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	AvatarURL string `json:"avatarUrl" yaml:"avatarUrl"`
}

// IdentityConfig defines the fallback role and the profile used for each role.
// The role claim on the verified ID token takes precedence over Role.
type IdentityConfig struct {
	Role     string `json:"role" yaml:"role"`
	Profiles struct {
		Admin ProfileConfig `json:"admin" yaml:"admin"`
		User  ProfileConfig `json:"user" yaml:"user"`
	} `json:"profiles" yaml:"profiles"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase configuration for sign-in and ID token verification
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	APIKey          string `json:"apiKey" yaml:"apiKey"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// Endpoint overrides the Identity Toolkit endpoint, e.g. for the auth emulator
	Endpoint string `json:"endpoint" yaml:"endpoint"`

	// InitialAuthToken is a pre-issued custom token; anonymous sign-in is used when empty
	InitialAuthToken string `json:"initialAuthToken" yaml:"initialAuthToken"`

	RoleClaim string `json:"roleClaim" yaml:"roleClaim"`
}

// TokenEndpointConfig defines the backend token endpoint
type TokenEndpointConfig struct {
	URL     string        `json:"url" yaml:"url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ChatConfig defines the chat service connection and the channel to watch
type ChatConfig struct {
	APIKey          string `json:"apiKey" yaml:"apiKey"`
	BaseURL         string `json:"baseUrl" yaml:"baseUrl"`
	ChannelType     string `json:"channelType" yaml:"channelType"`
	ChannelID       string `json:"channelId" yaml:"channelId"`
	ProfanityFilter string `json:"profanityFilter" yaml:"profanityFilter"`

	// HealthCheckInterval is how often the websocket session is pinged
	HealthCheckInterval time.Duration `json:"healthCheckInterval" yaml:"healthCheckInterval"`

	// MessageBuffer caps the number of recent messages kept per channel
	MessageBuffer int `json:"messageBuffer" yaml:"messageBuffer"`
}

// BootstrapConfig defines startup sequence behaviour
type BootstrapConfig struct {
	// StepTimeout bounds each network step of the bootstrap sequence. Zero disables it.
	StepTimeout time.Duration `json:"stepTimeout" yaml:"stepTimeout"`
}

// ModerationConfig defines limits for moderator actions on the control surface
type ModerationConfig struct {
	RatePerMinute float64 `json:"ratePerMinute" yaml:"ratePerMinute"`
	Burst         int     `json:"burst" yaml:"burst"`
}

// PubSubConfig defines Pub/Sub configuration for moderation audit events
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// AuditWorkerConfig defines the audit worker push endpoint
type AuditWorkerConfig struct {
	Port int `json:"port" yaml:"port"`

	// VerifyPushAuth requires a Google-signed OIDC token on every push
	VerifyPushAuth bool `json:"verifyPushAuth" yaml:"verifyPushAuth"`

	// Audience expected in the push token; derived from the request URL when empty
	Audience string `json:"audience" yaml:"audience"`

	// DedupWindow is how many recent event IDs are remembered to drop redeliveries
	DedupWindow int `json:"dedupWindow" yaml:"dedupWindow"`
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
			// Example: CHAT_CHANNELID -> chat.channelId (not chat.channelid)
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
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Identity == nil {
		cfg.Identity = &IdentityConfig{}
	}
	if strings.TrimSpace(cfg.Identity.Role) == "" {
		cfg.Identity.Role = defaultRole
	}
	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}
	if cfg.Firebase.RoleClaim == "" {
		cfg.Firebase.RoleClaim = "role"
	}
	if cfg.TokenEndpoint == nil {
		cfg.TokenEndpoint = &TokenEndpointConfig{}
	}
	if cfg.Chat == nil {
		cfg.Chat = &ChatConfig{}
	}
	if cfg.Chat.ChannelType == "" {
		cfg.Chat.ChannelType = defaultChannelType
	}
	if cfg.Chat.MessageBuffer <= 0 {
		cfg.Chat.MessageBuffer = defaultMessageBuffer
	}
	if cfg.Bootstrap == nil {
		cfg.Bootstrap = &BootstrapConfig{}
	}
	if cfg.Moderation == nil {
		cfg.Moderation = &ModerationConfig{RatePerMinute: 30, Burst: 5}
	}
	if cfg.PubSub == nil {
		cfg.PubSub = &PubSubConfig{}
	}
	if cfg.AuditWorker == nil {
		cfg.AuditWorker = &AuditWorkerConfig{}
	}
	if cfg.AuditWorker.Port == 0 {
		cfg.AuditWorker.Port = defaultAuditWorkerPort
	}
	if cfg.AuditWorker.DedupWindow <= 0 {
		cfg.AuditWorker.DedupWindow = defaultDedupWindow
	}
}

// Validate checks the settings without which the bootstrap sequence cannot run.
func (c *Config) Validate() error {
	if c.TokenEndpoint == nil || c.TokenEndpoint.URL == "" {
		return errors.New("tokenEndpoint.url is required")
	}
	if c.Chat == nil || c.Chat.APIKey == "" {
		return errors.New("chat.apiKey is required")
	}
	if c.Chat.BaseURL == "" {
		return errors.New("chat.baseUrl is required")
	}
	if c.Chat.ChannelID == "" {
		return errors.New("chat.channelId is required")
	}
	if c.Identity == nil || c.Identity.Profiles.Admin.ID == "" || c.Identity.Profiles.User.ID == "" {
		return errors.New("identity.profiles.admin.id and identity.profiles.user.id are required")
	}
	switch strings.ToLower(strings.TrimSpace(c.Identity.Role)) {
	case "admin", "user":
	default:
		return errors.Errorf("identity.role must be admin or user, got %q", c.Identity.Role)
	}

	return nil
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
