// file: database/connect.go
package database

import (
	"time"

	"github.com/Julius10-hub/UEB/config"
	"github.com/Julius10-hub/UEB/models"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() {
	var err error
	DB, err = gorm.Open(mysql.Open(config.C.MySQLDSN), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		logrus.Fatalf("Failed to get underlying sql.DB: %v", err)
	}

	// SetConnMaxLifetime 解决 MySQL 的 'wait_timeout' 断连问题，
	// 连接在创建1小时后被标记为过期，下一次使用前会安全地重建。
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	logrus.Info("Database connection successfully established and connection pool configured")
}

// MigrateTables 建表/补列，启动时调用
func MigrateTables() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.School{},
		&models.Event{},
		&models.Job{},
		&models.Bursary{},
		&models.Agent{},
		&models.PastPaper{},
		&models.Suggestion{},
	)
	if err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
	logrus.Info("Database migration completed")
}
