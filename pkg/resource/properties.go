package resource

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"regexp"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

var properties map[string]any
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// init loads application properties from YAML
func init() {
	var value, ok = os.LookupEnv("PROPERTIES_FILE_PATH")
	if !ok {
		value = "configs/application.yml"
	}

	err := Init(value)
	if err == nil {
		return
	}

	// Only an explicitly configured file is mandatory
	if !ok && errors.Is(err, fs.ErrNotExist) {
		log.Printf("Properties file '%s' not found, using defaults.", value)
		return
	}
	log.Fatalf("Fail to read properties: %v", err)
}

// Init reads the given YAML file, resolves ${ENV:default} placeholders and merges the result into viper.
func Init(filepath string) error {
	if _, err := os.Stat(filepath); err != nil {
		return err
	}

	viper.SetConfigFile(filepath)
	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	properties = make(map[string]any)
	parsePropertiesMap("", viper.AllSettings(), properties)

	return viper.MergeConfigMap(properties)
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = resolveEnvVariables(v)
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, bool:
			result[fullKey] = v
		case []any:
			result[fullKey] = v
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			log.Printf("Ignoring key '%s' with unsupported type.", fullKey)
		}
	}
}

// resolveEnvVariables replaces every ${NAME:default} placeholder of value with the environment
// variable NAME, or default when it is not set
func resolveEnvVariables(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(placeholder string) string {
		matches := envPattern.FindStringSubmatch(placeholder)
		if envValue, exists := os.LookupEnv(matches[1]); exists {
			return envValue
		}
		return matches[2]
	})
}

func Get(key string) any {
	return viper.Get(key)
}

func GetString(key string) string {
	return viper.GetString(key)
}

// GetStringOrDefault returns the string value of key, or defaultValue when it is empty
func GetStringOrDefault(key string, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}

func GetBool(key string) bool {
	return viper.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}

// GetDurationOrDefault returns the duration value of key, or defaultValue when it is unset or zero
func GetDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := viper.GetDuration(key); value > 0 {
		return value
	}
	return defaultValue
}

func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetIntOrDefault returns the int value of key, or defaultValue when the key is not set
func GetIntOrDefault(key string, defaultValue int) int {
	if !viper.IsSet(key) || viper.GetString(key) == "" {
		return defaultValue
	}
	return viper.GetInt(key)
}

func GetFloat64(key string) float64 {
	return viper.GetFloat64(key)
}

func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
