package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/hoplytravel/hoply-api/api"
	"github.com/hoplytravel/hoply-api/config"
	"github.com/hoplytravel/hoply-api/databases"
	"github.com/hoplytravel/hoply-api/grouptrip"
	"github.com/hoplytravel/hoply-api/models"
)

// App stores the router and the group trip wiring, so it can be reused
type App struct {
	Router  *mux.Router
	Config  config.Config
	Store   *grouptrip.RoomStore
	Service *grouptrip.Service
	Catalog grouptrip.Catalog

	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	r := mux.NewRouter()

	g := GroupTrip{Service: a.Service, Catalog: a.Catalog}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.TimeoutMiddleware(15 * time.Second))

	apiCreate.Handle("/group-trip", http.HandlerFunc(g.CreateRoomHandler)).Methods("POST")
	apiCreate.Handle("/group-trip/{code}", http.HandlerFunc(g.RoomByCodeHandler)).Methods("GET")
	apiCreate.Handle("/group-trip/{code}/join", http.HandlerFunc(g.JoinRoomHandler)).Methods("POST")
	apiCreate.Handle("/group-trip/{code}/results", http.HandlerFunc(g.RoomResultsHandler)).Methods("GET")
	// websocket; must stay off the timeout-wrapped subrouter
	r.Handle("/api/v1/group-trip/{code}/watch", http.HandlerFunc(g.WatchRoomHandler)).Methods("GET")

	apiCreate.Handle("/destinations", http.HandlerFunc(g.DestinationsHandler)).Methods("GET")

	return r
}

// Initialize is invoked by main to pick the destination catalog, build
// the room store and create a router
func (a *App) Initialize() error {
	if a.Config.URL != "" {
		client, err := databases.NewClient(&a.Config)
		if err != nil {
			// if we fail to create a new database client, then kill the pod
			zap.S().With(err).Error("failed to create new client")
			return err
		}

		a.dbHelper = databases.NewDatabase(&a.Config, client)
		err = client.Connect()
		if err != nil {
			// if we fail to connect to the database, then kill the pod
			zap.S().With(err).Error("failed to connect to database")
			return err
		}
		a.Catalog = databases.NewDestinationCatalog(databases.NewDestinationDatabase(a.dbHelper))
		zap.S().Info("hoply-api has connected to the destination catalog database")
	} else {
		a.Catalog = grouptrip.NewStaticCatalog(grouptrip.DefaultDestinations())
		zap.S().Info("hoply-api is using the built-in destination catalog")
	}

	a.Store = grouptrip.NewRoomStore()
	a.Service = grouptrip.NewService(a.Store, a.Catalog)

	// initialize api router
	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
