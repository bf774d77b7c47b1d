package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"hr-chatbot-be/internal/bootstrap"
	"hr-chatbot-be/internal/config"
	"hr-chatbot-be/internal/hrmock"
	"hr-chatbot-be/pkg/database"

	"github.com/fatih/color"
	"gorm.io/gorm"
)

const cliSessionID = "cli"

func main() {
	cfg := config.Load()

	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	}

	container := bootstrap.NewContainer(gormDB, cfg)
	ctx := context.Background()

	go func() {
		if err := hrmock.New().Listen(":" + cfg.HR.Port); err != nil {
			log.Printf("Mock HR API error: %v", err)
		}
	}()

	// The CLI ingests synchronously so the first question already has the
	// base corpus behind it.
	bold := color.New(color.Bold)
	bold.Println("Trenkwalder HR Assistant")
	fmt.Println("Loading knowledge base...")
	if n, err := container.Pipeline.IngestDirectory(ctx, cfg.Docs.DocumentsDir); err != nil {
		color.Red("Knowledge base load failed: %v", err)
	} else {
		fmt.Printf("Loaded %d documents.\n", n)
	}
	fmt.Println(`Type your question, "reset" to clear the conversation, "quit" to exit.`)
	fmt.Println()

	userPrompt := color.New(color.FgCyan, color.Bold)
	assistant := color.New(color.FgGreen)

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		userPrompt.Print("You: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "quit", "exit":
			fmt.Println("Bye!")
			return
		case "reset":
			if err := container.ChatService.Reset(ctx, cliSessionID); err != nil {
				color.Red("Reset failed: %v", err)
				continue
			}
			fmt.Println("Conversation reset.")
			continue
		}

		answer, err := container.ChatService.Chat(ctx, cliSessionID, input)
		if err != nil {
			color.Red("Error: %v", err)
			continue
		}
		assistant.Printf("Assistant: %s\n\n", answer)
	}
}
