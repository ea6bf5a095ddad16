package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/internal/mockapi"
)

// Development stand-in for the real backend API. Serves the auth and user
// endpoints under the /api prefix with a seeded set of users.
func main() {
	_ = godotenv.Load()

	port := os.Getenv("MOCK_API_PORT")
	if port == "" {
		port = ":8000"
	}
	secret := os.Getenv("MOCK_API_SECRET")
	if secret == "" {
		secret = "local-dev-secret"
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	backend := mockapi.New(secret, mockapi.WithLogger(logger))
	if err := backend.Seed(); err != nil {
		log.Fatalf("Error seeding mock backend: %s\n", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", backend))

	log.Printf("Mock API listening on %s\n", port)
	if err := http.ListenAndServe(port, mux); err != nil {
		log.Fatalf("Error running mock API: %s\n", err)
	}
}
