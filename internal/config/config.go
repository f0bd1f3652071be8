package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/netip"
	"net/url"
	"strings"
	"time"

	viper "github.com/spf13/viper"
)

/*
設定只在啟動時讀取一次, 之後以唯讀 struct 傳給各元件
來源: .env 檔(可選) + 環境變數, 環境變數優先
*/
type Config struct {
	ModulerName string `mapstructure:"MODULER_NAME"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	DbName    string `mapstructure:"POSTGRES_DB"`
	DbHost    string `mapstructure:"POSTGRES_HOST"`
	DbPort    string `mapstructure:"POSTGRES_PORT"`
	DbUser    string `mapstructure:"POSTGRES_USER"`
	DbPas     string `mapstructure:"POSTGRES_PASSWORD"`
	DbSSLMode string `mapstructure:"POSTGRES_SSLMODE"`

	AuthTokenKey  string `mapstructure:"SECRET_KEY"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	AdminEmail    string `mapstructure:"ADMIN_EMAIL"`
	AdminPassword string `mapstructure:"ADMIN_PASSWORD"`
	// yyyy-mm-dd
	AdminReportSince string `mapstructure:"ADMIN_REPORT_SINCE"`

	SeedCatalogFile string `mapstructure:"SEED_CATALOG_FILE"`

	RedisAddr              string        `mapstructure:"REDIS_ADDR"`
	RedisPassword          string        `mapstructure:"REDIS_PASSWORD"`
	RateLimitLoginCapacity int           `mapstructure:"RATE_LIMIT_LOGIN_CAPACITY"`
	RateLimitLoginWindow   time.Duration `mapstructure:"RATE_LIMIT_LOGIN_WINDOW"`

	CorsAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	// 逗號分隔的 ip 或 CIDR, 空值表示不信任任何 forwarding header
	TrustedProxyList string `mapstructure:"TRUSTED_PROXIES"`

	LogKafkaBrokers string `mapstructure:"LOG_KAFKA_BROKERS"`
	LogKafkaTopic   string `mapstructure:"LOG_KAFKA_TOPIC"`
}

var defaults = map[string]any{
	"MODULER_NAME":              "shopcenter",
	"SERVER_PORT":               "5000",
	"LOG_LEVEL":                 "info",
	"POSTGRES_DB":               "shop",
	"POSTGRES_HOST":             "localhost",
	"POSTGRES_PORT":             "5432",
	"POSTGRES_USER":             "postgres",
	"POSTGRES_PASSWORD":         "",
	"POSTGRES_SSLMODE":          "disable",
	"SECRET_KEY":                "",
	"SESSION_SECRET":            "",
	"ADMIN_EMAIL":               "",
	"ADMIN_PASSWORD":            "",
	"ADMIN_REPORT_SINCE":        "2024-01-01",
	"SEED_CATALOG_FILE":         "",
	"REDIS_ADDR":                "",
	"REDIS_PASSWORD":            "",
	"RATE_LIMIT_LOGIN_CAPACITY": 10,
	"RATE_LIMIT_LOGIN_WINDOW":   "1m",
	"CORS_ALLOWED_ORIGINS":      "*",
	"TRUSTED_PROXIES":           "",
	"LOG_KAFKA_BROKERS":         "",
	"LOG_KAFKA_TOPIC":           "shopcenter-log",
}

const minSessionSecretLen = 32

/*
單純回傳錯誤  由外部決定要不要Fatal
envFile 為空或檔案不存在時只讀環境變數
*/
func LoadConfig(envFile string) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.AutomaticEnv()

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config file %s: %w", envFile, err)
			}
		}
	}

	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cf.Validate(); err != nil {
		return nil, err
	}
	return cf, nil
}

// Validate 檢查必填的密鑰與格式
func (c *Config) Validate() error {
	var errs []error
	if c.AuthTokenKey == "" {
		errs = append(errs, errors.New("SECRET_KEY is required"))
	}
	if len(c.SessionSecret) < minSessionSecretLen {
		errs = append(errs, fmt.Errorf("SESSION_SECRET must be at least %d characters", minSessionSecretLen))
	}
	if c.AdminEmail == "" || c.AdminPassword == "" {
		errs = append(errs, errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required"))
	}
	if _, err := c.ReportSince(); err != nil {
		errs = append(errs, fmt.Errorf("ADMIN_REPORT_SINCE: %w", err))
	}
	if c.RateLimitLoginCapacity <= 0 || c.RateLimitLoginWindow <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_LOGIN_CAPACITY and RATE_LIMIT_LOGIN_WINDOW must be positive"))
	}
	if _, err := c.TrustedProxies(); err != nil {
		errs = append(errs, fmt.Errorf("TRUSTED_PROXIES: %w", err))
	}
	return errors.Join(errs...)
}

func (c *Config) ReportSince() (time.Time, error) {
	return time.Parse(time.DateOnly, c.AdminReportSince)
}

func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DbUser, c.DbPas),
		Host:     net.JoinHostPort(c.DbHost, c.DbPort),
		Path:     "/" + c.DbName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DbSSLMode),
	}
	return u.String()
}

func (c *Config) AllowedOrigins() []string {
	return splitList(c.CorsAllowedOrigins)
}

// TrustedProxies 單一 ip 視為 /32 或 /128
func (c *Config) TrustedProxies() ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, item := range splitList(c.TrustedProxyList) {
		if prefix, err := netip.ParsePrefix(item); err == nil {
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(item)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy address %q", item)
		}
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}

func (c *Config) KafkaBrokers() []string {
	return splitList(c.LogKafkaBrokers)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
