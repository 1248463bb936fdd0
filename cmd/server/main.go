package main

import (
	"log"
	"os"

	"github.com/Callmewookie65/planboard/internal/api"
	"github.com/Callmewookie65/planboard/internal/ingest"
	"github.com/Callmewookie65/planboard/internal/roster"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	schema, err := ingest.LoadSchema(os.Getenv("SCHEMA_PATH"))
	if err != nil {
		log.Fatalf("Failed to load schema registry: %v", err)
	}
	engine := ingest.NewEngine(schema)

	store := roster.NewStore()
	if path := os.Getenv("ROSTER_PATH"); path != "" {
		projects, err := roster.LoadSeed(path)
		if err != nil {
			log.Fatalf("Failed to load roster seed: %v", err)
		}
		store.Replace(projects)
		log.Printf("Loaded %d roster projects from %s", len(projects), path)
	}

	srv := api.NewServer(engine, store)
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
