package app

import (
	"strings"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/utils"
)

type Config struct {
	Port           string
	Environment    string
	AllowedOrigins []string
	ContactBase    string
	GazetteerPath  string
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	environment := utils.GetEnv("APP_ENV", "development", log)
	contactBase := utils.GetEnv("CONTACT_BASE_URL", "https://mafqoodat.ma/trouve.php", log)
	gazetteerPath := utils.GetEnv("GAZETTEER_PATH", "", log)

	var origins []string
	for _, o := range strings.Split(utils.GetEnv("ALLOWED_ORIGINS", "", log), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		Port:           port,
		Environment:    environment,
		AllowedOrigins: origins,
		ContactBase:    contactBase,
		GazetteerPath:  gazetteerPath,
	}
}
