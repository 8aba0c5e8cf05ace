package entity

// Claves de configuración conocidas.
const (
	SettingShopName      = "shop_name"
	SettingSetupComplete = "setup_complete"
)

// Setting es una entrada de configuración clave/valor (last-write-wins).
type Setting struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
