package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Store      Store      `mapstructure:",squash"`
	AirQuality AirQuality `mapstructure:",squash"`
	Backup     Backup     `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Store aponta para os dois documentos JSON persistidos em disco
type Store struct {
	DataFile     string `mapstructure:"data_file"`
	SettingsFile string `mapstructure:"settings_file"`
}

// AirQuality controla o comportamento das consultas de qualidade do ar
type AirQuality struct {
	// Atraso artificial aplicado antes de responder uma consulta bem-sucedida
	LookupDelay time.Duration `mapstructure:"lookup_delay"`
}

// Backup controla o agendador de cópias de segurança do arquivo de dados
type Backup struct {
	CronSchedule string `mapstructure:"backup_cron"`
	Enabled      bool   `mapstructure:"backup_enabled"`
	Dir          string `mapstructure:"backup_dir"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", "5000")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("DATA_FILE", "dados_mock.json")
	viper.SetDefault("SETTINGS_FILE", "config.json")

	viper.SetDefault("LOOKUP_DELAY", "500ms")

	viper.SetDefault("BACKUP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("BACKUP_ENABLED", false)
	viper.SetDefault("BACKUP_DIR", "backups")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	return config, nil
}

// loadEnvFile tenta carregar o arquivo .env das localizações conhecidas
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}
}
