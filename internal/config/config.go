package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Snap      Snap      `mapstructure:",squash"`
	OAuth     OAuth     `mapstructure:",squash"`
	Media     Media     `mapstructure:",squash"`
	Endpoints Endpoints `mapstructure:"-"`
}

type App struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

type Snap struct {
	BaseURL     string        `mapstructure:"snap_base_url"`
	Timeout     time.Duration `mapstructure:"snap_timeout"`
	PageSize    int           `mapstructure:"snap_page_size"`
	UserAgent   string        `mapstructure:"snap_user_agent"`
	AccessToken string        `mapstructure:"snap_access_token"`
}

type OAuth struct {
	AuthURL      string   `mapstructure:"snap_auth_url"`
	TokenURL     string   `mapstructure:"snap_token_url"`
	ClientID     string   `mapstructure:"snap_client_id"`
	ClientSecret string   `mapstructure:"snap_client_secret"`
	RedirectURI  string   `mapstructure:"snap_redirect_uri"`
	Scopes       []string `mapstructure:"snap_oauth_scopes"`
}

// Media concentra os limites usados na validação de uploads (tamanhos em bytes)
type Media struct {
	MinImageWidth  int   `mapstructure:"media_min_image_width"`
	MinImageHeight int   `mapstructure:"media_min_image_height"`
	MaxImageSize   int64 `mapstructure:"media_max_image_size"`
	MaxVideoSize   int64 `mapstructure:"media_max_video_size"`
	MaxChunkSize   int64 `mapstructure:"media_max_chunk_size"`
}

// 31.8 MB
const maxVideoSize = 33_344_716

func SetDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")

	v.SetDefault("SNAP_BASE_URL", "https://adsapi.snapchat.com/v1")
	v.SetDefault("SNAP_TIMEOUT", "30s")
	v.SetDefault("SNAP_PAGE_SIZE", 0) // 0 = tamanho de página padrão da API
	v.SetDefault("SNAP_USER_AGENT", "snapchat-marketing-api-go")
	v.SetDefault("SNAP_ACCESS_TOKEN", "") // ONLY CLI

	v.SetDefault("SNAP_AUTH_URL", "https://accounts.snapchat.com/login/oauth2/authorize")
	v.SetDefault("SNAP_TOKEN_URL", "https://accounts.snapchat.com/login/oauth2/access_token")
	v.SetDefault("SNAP_CLIENT_ID", "")
	v.SetDefault("SNAP_CLIENT_SECRET", "")
	v.SetDefault("SNAP_REDIRECT_URI", "")
	v.SetDefault("SNAP_OAUTH_SCOPES", "snapchat-marketing-api")

	v.SetDefault("MEDIA_MIN_IMAGE_WIDTH", 1080)
	v.SetDefault("MEDIA_MIN_IMAGE_HEIGHT", 1920)
	v.SetDefault("MEDIA_MAX_IMAGE_SIZE", 5*1024*1024)
	v.SetDefault("MEDIA_MAX_VIDEO_SIZE", maxVideoSize)
	v.SetDefault("MEDIA_MAX_CHUNK_SIZE", maxVideoSize)
}

// NewConfig lê variáveis de ambiente (e um .env local, se houver)
func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("config: .env not read by viper, using environment only: ", err)
	}

	return Load(v)
}

// Load decodifica a configuração a partir de uma instância do viper já preparada
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	config := &Config{}
	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Snap.BaseURL = strings.TrimRight(config.Snap.BaseURL, "/")
	config.Endpoints = loadEndpoints(v)

	if config.Media.MaxChunkSize <= 0 {
		return nil, fmt.Errorf("config: media_max_chunk_size must be positive, got %d", config.Media.MaxChunkSize)
	}

	return config, nil
}

// loadEndpoints parte da tabela padrão e aplica SNAP_ENDPOINT_<OPERACAO> quando definido
func loadEndpoints(v *viper.Viper) Endpoints {
	endpoints := make(Endpoints, len(DefaultEndpoints))
	for op, template := range DefaultEndpoints {
		endpoints[op] = template

		key := "SNAP_ENDPOINT_" + strings.ToUpper(strings.ReplaceAll(op, ".", "_"))
		if override := v.GetString(key); override != "" {
			endpoints[op] = override
		}
	}
	return endpoints
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Debug("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Debug("config: .env loaded from ", location)
			return
		}
	}
}
