package db

import (
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/utils"
)

// MySQLService wraps the connection to the legacy catalog database. The
// schema belongs to the existing site, so there is no migration here; this
// side only reads.
type MySQLService struct {
	db  *gorm.DB
	log *logger.Logger
}

// Configured reports whether enough connection settings are present to even
// try connecting. Absent credentials are a recognized deployment mode: the
// services fall back to sample data.
func Configured() bool {
	return utils.GetEnv("DB_HOST", "", nil) != "" &&
		utils.GetEnv("DB_USER", "", nil) != "" &&
		utils.GetEnv("DB_NAME", "", nil) != ""
}

func NewMySQLService(log *logger.Logger) (*MySQLService, error) {
	serviceLog := log.With("service", "MySQLService")

	host := utils.GetEnv("DB_HOST", "localhost", log)
	port := utils.GetEnv("DB_PORT", "3306", log)
	user := utils.GetEnv("DB_USER", "root", log)
	password := utils.GetEnv("DB_PASSWORD", "", log)
	name := utils.GetEnv("DB_NAME", "mafqoodat", log)
	poolSize := utils.GetEnvAsInt("DB_POOL_SIZE", 5, log)

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, name)

	log.Info("Connecting to MySQL...", "host", host, "database", name)
	gdb, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		serviceLog.Error("Failed to connect to MySQL", "error", err)
		return nil, fmt.Errorf("connect to mysql: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("access sql pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(poolSize)
	sqlDB.SetMaxIdleConns(poolSize)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return &MySQLService{db: gdb, log: serviceLog}, nil
}

func (s *MySQLService) DB() *gorm.DB {
	return s.db
}

func (s *MySQLService) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
