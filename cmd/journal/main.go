// Command journal is an interactive shell for the journal submission database.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"journal-db-manager/config"
	"journal-db-manager/controllers"
	"journal-db-manager/routes"

	"github.com/ergochat/readline"
	"github.com/joho/godotenv"
)

func main() {
	var (
		configPath  string
		historyPath string
	)
	flag.StringVar(&configPath, "config", ".env", "credentials file with DB_* settings")
	flag.StringVar(&historyPath, "history", "", "command history file (default $HISTORY_FILE or ~/.journal_history)")
	flag.Parse()

	if err := godotenv.Load(configPath); err != nil {
		log.Printf("No %s file found, using environment variables", configPath)
	}

	logFile, _ := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}

	if historyPath == "" {
		historyPath = os.Getenv("HISTORY_FILE")
	}
	if historyPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyPath = filepath.Join(home, ".journal_history")
		}
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:      routes.Prompt,
		HistoryFile: historyPath,
	})
	if err != nil {
		log.Fatalf("failed to start line editor: %v", err)
	}
	defer rl.Close()

	prompt := func(p string) (string, error) {
		pw, err := rl.ReadPassword(p)
		return string(pw), err
	}

	fmt.Fprint(os.Stdout, "Attempting to connect to db...\n\n")
	config.InitDB(config.NewConnector(prompt, os.Stdout))
	defer func() {
		if err := config.CloseDB(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	shell := routes.NewShell(controllers.NewController(config.DB, os.Stdout), rl, os.Stdout)
	if err := shell.Run(ctx); err != nil {
		log.Printf("shell stopped: %v", err)
	}
}
