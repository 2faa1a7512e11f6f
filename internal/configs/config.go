package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// APIConfig - настройки подключения к six-cities REST API.
type APIConfig struct {
	BaseURL   string
	TimeoutMS int
}

// MockServerConfig - настройки dev-сервера фикстур.
type MockServerConfig struct {
	Port string
}

// DemoConfig - учётные данные для демо-сессии клиента (опционально).
type DemoConfig struct {
	Email    string
	Password string
}

type StdoutLogConfig struct {
	Level string
}

type FluentBitConfig struct {
	Host    string
	Port    int
	Enabled bool
	Level   string
}

// AppConfig хранит всю конфигурацию приложения.
type AppConfig struct {
	AppName      string
	API          APIConfig
	TokenPath    string
	MockServer   MockServerConfig
	Demo         DemoConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLogConfig
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Отсутствие .env не является ошибкой: все ключи имеют значения по
// умолчанию или опциональны.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnvAsString("APP_NAME", "six-cities-client")

	cfg.API.BaseURL = getEnvAsString("API_BASE_URL", "http://localhost:8080")
	cfg.API.TimeoutMS = getEnvAsInt("API_TIMEOUT_MS", 5000)

	// Пустой путь означает место по умолчанию в пользовательском
	// каталоге конфигурации.
	cfg.TokenPath = getEnvAsString("TOKEN_PATH", "")

	cfg.MockServer.Port = getEnvAsString("MOCK_SERVER_PORT", "8080")

	cfg.Demo.Email = getEnvAsString("DEMO_EMAIL", "")
	cfg.Demo.Password = getEnvAsString("DEMO_PASSWORD", "")

	cfg.StdoutLogger.Level = getEnvAsString("STDOUT_LOG_LEVEL", "debug")

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	if cfg.FluentBit.Enabled {
		cfg.FluentBit.Host = os.Getenv("FLUENTBIT_HOST")
		if cfg.FluentBit.Host == "" {
			log.Println("WARNING: FLUENTBIT_ENABLED is true, but FLUENTBIT_HOST is not set. Disabling Fluent Bit.")
			cfg.FluentBit.Enabled = false
		}
		cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
		cfg.FluentBit.Level = getEnvAsString("FLUENTBIT_LOG_LEVEL", "info")
	}

	return cfg, nil
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as int: %v. Using default value: %d\n", key, valueStr, err, defaultValue)
		return defaultValue
	}
	return valueInt
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valBool, err := strconv.ParseBool(valStr)
	if err != nil {
		log.Printf("Warning: Environment variable %s (value: %s) could not be parsed as bool: %v. Using default value: %t\n", key, valStr, err, defaultValue)
		return defaultValue
	}
	return valBool
}
