package configs

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// BuildDSN returns the connection string for the configured driver.
func BuildDSN(env ENV) (string, error) {
	switch env.DBDriver {
	case "", "mysql":
		return fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			env.DBUser, env.DBPassword, env.DBHost, env.DBPort, env.DBName,
		), nil
	case "postgres":
		return fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			env.DBHost, env.DBUser, env.DBPassword, env.DBName, env.DBPort, env.DBSSLMode,
		), nil
	default:
		return "", fmt.Errorf("unsupported DB_DRIVER %q", env.DBDriver)
	}
}

func dialector(env ENV, dsn string) gorm.Dialector {
	if env.DBDriver == "postgres" {
		return postgres.Open(dsn)
	}
	return mysql.Open(dsn)
}

func OpenConnection(env ENV) (*gorm.DB, error) {
	dsn, err := BuildDSN(env)
	if err != nil {
		return nil, err
	}

	logLevel := logger.Warn
	if env.IsDevelopment() {
		logLevel = logger.Info
	}

	maxRetries := 10
	retryDelay := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		log.Printf("Attempting to connect to %s database (Attempt %d/%d) at %s:%s", env.DBDriver, i+1, maxRetries, env.DBHost, env.DBPort)
		db, err := gorm.Open(dialector(env, dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logLevel),
		})
		if err == nil {
			sqlDB, pingErr := db.DB()
			if pingErr == nil {
				pingErr = sqlDB.Ping()
				if pingErr == nil {
					if env.DBMaxOpenConns > 0 {
						sqlDB.SetMaxOpenConns(env.DBMaxOpenConns)
						sqlDB.SetMaxIdleConns(env.DBMaxOpenConns)
					}
					sqlDB.SetConnMaxIdleTime(10 * time.Second)
					log.Println("Database connection successful")
					return db, nil
				}
			}

			log.Printf("Failed to ping database: %v. Retrying in %v...", pingErr, retryDelay)
		} else {
			log.Printf("Failed to open GORM connection: %v. Retrying in %v...", err, retryDelay)
		}

		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("failed to connect to the database after %d retries", maxRetries)
}
