package config

import "fmt"

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Driver          string `mapstructure:"driver"`
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Username        string `mapstructure:"username"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
}

// EmailConfig configures the SMTP notifier. Destinations maps a
// notification category (maintenance, rental, supplies, general) to the
// mailbox that receives it.
type EmailConfig struct {
	SMTPHost     string            `mapstructure:"smtp_host"`
	SMTPPort     int               `mapstructure:"smtp_port"`
	SMTPUser     string            `mapstructure:"smtp_user"`
	SMTPPassword string            `mapstructure:"smtp_password"`
	FromAddress  string            `mapstructure:"from_address"`
	FromName     string            `mapstructure:"from_name"`
	Destinations map[string]string `mapstructure:"destinations"`
}

// DestinationFor returns the mailbox for a category, falling back to the
// general destination when the category is unknown.
func (e *EmailConfig) DestinationFor(category string) string {
	if addr, ok := e.Destinations[category]; ok && addr != "" {
		return addr
	}
	return e.Destinations["general"]
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// UploadConfig configures local attachment storage.
type UploadConfig struct {
	Dir         string `mapstructure:"dir"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxSizeByte int64  `mapstructure:"-"`
}

type TimezoneConfig struct {
	Business string `mapstructure:"business"`
}
