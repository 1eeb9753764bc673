// file: main.go
package main

import (
	"github.com/Julius10-hub/UEB/config"
	"github.com/Julius10-hub/UEB/database"
	"github.com/Julius10-hub/UEB/routes"
	"github.com/Julius10-hub/UEB/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	config.Load()
	utils.InitJWT(config.C.JWTSecret, config.C.TokenTTL)

	database.Connect()
	database.MigrateTables()
	database.InitRedis()

	r := routes.SetupRouter()

	logrus.Infof("Starting server on :%s", config.C.Port)
	if err := r.Run(":" + config.C.Port); err != nil {
		logrus.Fatalf("Failed to run server: %v", err)
	}
}
