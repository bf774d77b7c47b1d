package main

import (
	"log"

	"hr-chatbot-be/internal/config"
	"hr-chatbot-be/internal/hrmock"
)

// Runs the mock HR backend standalone, for pointing a separately deployed
// chatbot at it.
func main() {
	cfg := config.Load()
	log.Printf("Mock HR API on http://localhost:%s", cfg.HR.Port)
	log.Fatal(hrmock.New().Listen(":" + cfg.HR.Port))
}
