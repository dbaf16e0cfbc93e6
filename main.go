package main

import (
	"fmt"
	"log"
	"net/http"

	"go.uber.org/zap"

	"github.com/hoplytravel/hoply-api/api/handlers"
	"github.com/hoplytravel/hoply-api/api/scheduler"
	"github.com/hoplytravel/hoply-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	if err := a.Initialize(); err != nil {
		log.Fatal(err)
	}

	sched := scheduler.New(a.Store, a.Config.RoomTTL)
	sched.Start()

	zap.S().Infow("hoply-api is up and running",
		"port", a.Config.Port,
		"url", a.Config.BaseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", a.Config.Port), a.Router))
}
