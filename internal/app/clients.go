package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/mafqoodat/mafqoodat-backend/internal/db"
	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/platform/openai"
)

// Clients holds the optional external connections. Any of them may be nil:
// the services degrade per connection rather than refusing to start.
type Clients struct {
	DB    *gorm.DB
	Redis *redis.Client
	Model openai.Client

	mysql *db.MySQLService
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	var c Clients

	// Legacy catalog database; absent credentials mean fallback mode.
	if db.Configured() {
		mysqlSvc, err := db.NewMySQLService(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init mysql: %w", err)
		}
		c.mysql = mysqlSvc
		c.DB = mysqlSvc.DB()
	} else {
		log.Warn("catalog database not configured, serving fallback data")
	}

	// Redis
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		c.Redis = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	}

	// Openai
	if openai.Configured() {
		model, err := openai.NewClient(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init openai client: %w", err)
		}
		c.Model = model
	} else {
		log.Warn("model not configured, chat runs rule-based")
	}

	return c, nil
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
