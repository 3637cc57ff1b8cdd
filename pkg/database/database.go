package database

import (
	"log"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"github.com/AnilYadav17/videoHub/cmd/config"
	"github.com/AnilYadav17/videoHub/pkg/models"
)

var DB *gorm.DB

func Init() {
	var err error
	DB, err = gorm.Open(config.DBDialect, config.DBDSN)
	if err != nil {
		log.Fatal("failed to connect to database: ", err)
	}
	DB.AutoMigrate(&models.User{}, &models.Video{})
}
