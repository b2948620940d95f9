package database

import (
	"github.com/Jhorlodev/horas-extras/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(dsn string) error {
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return err
	}

	// Auto migrate the schema
	return DB.AutoMigrate(&models.User{}, &models.OvertimeRecord{})
}

func GetDB() *gorm.DB {
	return DB
}
