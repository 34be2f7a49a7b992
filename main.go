package main

import (
	"bitwise74/budget-api/api"
	"bitwise74/budget-api/config"
	"bitwise74/budget-api/db"
	"bitwise74/budget-api/service"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	d, err := db.New()
	if err != nil {
		panic(err)
	}

	a, err := api.NewRouter(d, service.NewSMTPMailer())
	if err != nil {
		panic(err)
	}

	zap.L().Info("Server starting")

	err = a.Router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
