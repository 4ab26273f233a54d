package main

import (
	"log"
	"os"

	"trivia-api/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	if os.Getenv("TRIVIA_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.Printf("Warning: could not load .env file: %v", err)
		}
	}

	if err := newRootCmd(database.NewMigrator).Execute(); err != nil {
		os.Exit(1)
	}
}
