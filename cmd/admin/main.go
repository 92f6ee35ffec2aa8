package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/algocode/backend/conf"
	"github.com/algocode/backend/judge"
	"github.com/algocode/backend/polechudes"
	"github.com/algocode/backend/standings"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		panic("Error loading .env file")
	}

	gameID := flag.Int64("game", 0, "pole chudes game id")
	flag.Parse()

	if *gameID == 0 {
		fmt.Println("Please provide a game id using the -game flag.")
		os.Exit(1)
	}

	judgesToml := os.Getenv("JUDGES_TOML")
	if judgesToml == "" {
		judgesToml = "judges.toml"
	}
	registry, err := judge.LoadRegistry(judgesToml)
	if err != nil {
		log.Fatal(err)
	}

	pool, err := pgxpool.New(context.Background(), conf.GetPgConnStrFromEnv())
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	srvc := polechudes.NewPoleChudesSrvc(
		polechudes.NewPgRepo(pool),
		standings.NewAggregator(judge.NewClient(registry)))

	p := tea.NewProgram(initialModel(srvc, *gameID))
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
