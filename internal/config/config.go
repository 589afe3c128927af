package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Store struct {
		Driver     string `mapstructure:"driver"`
		Key        string `mapstructure:"key"`
		Dir        string `mapstructure:"dir"`
		SQLitePath string `mapstructure:"sqlite_path"`
		DSN        string `mapstructure:"dsn"`
	} `mapstructure:"store"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Export struct {
		OutputDir    string `mapstructure:"output_dir"`
		Attempts     int    `mapstructure:"attempts"`
		TemplatesDir string `mapstructure:"templates_dir"`
		Paper        string `mapstructure:"paper"`
	} `mapstructure:"export"`
	Render struct {
		DateStyle string `mapstructure:"date_style"`
	} `mapstructure:"render"`
	Notify struct {
		Duration time.Duration `mapstructure:"duration"`
	} `mapstructure:"notify"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.key", "resume-data")
	v.SetDefault("store.dir", "./data")
	v.SetDefault("store.sqlite_path", "./data/resume.db")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("export.output_dir", "./output")
	v.SetDefault("export.attempts", 3)
	v.SetDefault("export.paper", "letter")
	v.SetDefault("render.date_style", "numeric")
	v.SetDefault("notify.duration", 3*time.Second)
}

// LoadConfig reads .env, then an optional config.yaml (from path when given,
// otherwise the working directory), then environment overrides.
func LoadConfig(path string) (cfg Config, err error) {
	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err = v.ReadInConfig(); err != nil {
		if path != "" {
			return cfg, err
		}
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT", "PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.dsn", "DATABASE_URL", "STORE_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("export.output_dir", "OUTPUT_DIR")
	v.BindEnv("export.templates_dir", "TEMPLATES_DIR")
	v.BindEnv("export.paper", "EXPORT_PAPER")

	err = v.Unmarshal(&cfg)
	return
}
