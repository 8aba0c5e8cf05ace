package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
	Shop  ShopConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

// StoreConfig configuración del almacén local (SQLite embebido).
// Path es la ruta del archivo de datos; SchemaVersion solo se sobreescribe en tests.
type StoreConfig struct {
	Path          string
	SchemaVersion int // 0 = usar la versión actual del esquema
}

// ShopConfig preferencias de presentación de la tienda.
type ShopConfig struct {
	Currency string // código ISO 4217, ej. XOF
	Locale   string // etiqueta BCP 47, ej. fr
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, STORE_PATH, SHOP_CURRENCY, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "lockre-pos"),
			LogLevel: getString(v, "APP_LOG_LEVEL", "info"),
		},
		Store: StoreConfig{
			Path:          getString(v, "STORE_PATH", "lockre.db"),
			SchemaVersion: getInt(v, "STORE_SCHEMA_VERSION", 0),
		},
		Shop: ShopConfig{
			Currency: getString(v, "SHOP_CURRENCY", "XOF"),
			Locale:   getString(v, "SHOP_LOCALE", "fr"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
