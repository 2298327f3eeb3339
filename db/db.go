package db

import (
	"inkwell/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var Instance *gorm.DB

func Init() {
	var db *gorm.DB
	var err error
	gormConfig := &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	}
	if config.MYSQL_DSN != "" {
		db, err = gorm.Open(mysql.Open(config.MYSQL_DSN), gormConfig)
	} else {
		db, err = gorm.Open(sqlite.Open(config.SQLITE_FILE), gormConfig)
	}
	if err != nil || db == nil {
		panic(err)
	}
	Instance = db
}
