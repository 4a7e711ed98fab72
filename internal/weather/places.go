// Package weather looks up the current weather at the location of a trip day
// and maps weather codes to display categories.
package weather

import "github.com/ukydev/trip-planner/internal/models"

// Places is the static table Day.LocationKey refers to.
var Places = map[string]models.Place{
	"tokyo":    {Location: models.Location{Lat: 35.6895, Lon: 139.6917}, Name: "Tokyo"},
	"yokohama": {Location: models.Location{Lat: 35.4437, Lon: 139.6380}, Name: "Yokohama"},
	"kamakura": {Location: models.Location{Lat: 35.3192, Lon: 139.5467}, Name: "Kamakura"},
	"kawagoe":  {Location: models.Location{Lat: 35.9251, Lon: 139.4858}, Name: "Kawagoe"},
	"nikko":    {Location: models.Location{Lat: 36.7199, Lon: 139.6982}, Name: "Nikko"},
}

// Lookup returns the place registered under key.
func Lookup(key string) (models.Place, bool) {
	p, ok := Places[key]
	return p, ok
}

// Icon categories.
const (
	IconClear        = "clear"
	IconPartlyCloudy = "partly-cloudy"
	IconFog          = "fog"
	IconRain         = "rain"
	IconSnow         = "snow"
	IconStorm        = "storm"
	IconCloud        = "cloud"
)

// Icon maps a WMO weather code to a coarse icon category.
func Icon(code int) string {
	switch {
	case code == 0:
		return IconClear
	case code >= 1 && code <= 3:
		return IconPartlyCloudy
	case code >= 45 && code <= 48:
		return IconFog
	case code >= 51 && code <= 67:
		return IconRain
	case code >= 71 && code <= 77:
		return IconSnow
	case code >= 95:
		return IconStorm
	default:
		return IconCloud
	}
}
