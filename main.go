package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"github.com/hatua/futuretech/lib/myhttpclient"
	"github.com/hatua/futuretech/lib/mymetrics"
	"github.com/hatua/futuretech/lib/mytime"
	"github.com/hatua/futuretech/lib/myuuid"
	"github.com/hatua/futuretech/services/checkoutpesapal"
	"github.com/hatua/futuretech/services/pesapal"
	"github.com/hatua/futuretech/services/site"
)

func main() {
	c := context.Background()

	router := mux.NewRouter()

	cfg, err := checkoutpesapal.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Error reading pesapal configuration: %s", err)
	}

	gateway := pesapal.NewClient(myhttpclient.New(cfg.Timeout))
	checkoutService, err := checkoutpesapal.NewWebService(cfg, gateway, mytime.RealNower{})
	if err != nil {
		log.Fatalf("Error creating pesapal checkoutService: %s", err)
	}
	err = checkoutService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering pesapal checkoutService: %s", err)
	}

	siteService := site.NewWebService(myuuid.RealUUIDer{})
	err = siteService.RegisterEndpoints(c, router)
	if err != nil {
		log.Fatalf("Error registering site service: %s", err)
	}

	mymetrics.MustRegister()
	router.Handle("/metrics", mymetrics.Handler()).Methods("GET")

	startWebServerBlocking(router)
}

func startWebServerBlocking(router *mux.Router) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := srv.ListenAndServe()
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
