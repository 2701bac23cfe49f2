package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/atotto/clipboard"
)

type ConsoleConfig struct {
	APIBaseURL string
	Timeout    time.Duration
	Width      int
}

const usage = `Usage:
  console [-copy] FROM TO      print the route between two rooms
  console nearby ID [MAX]      list rooms near a room
  console rooms [QUERY]        list or search rooms
`

func main() {
	copyDirections := flag.Bool("copy", false, "copy the directions to the clipboard")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg := &ConsoleConfig{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		Timeout:    30 * time.Second,
		Width:      80,
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 20 {
		cfg.Width = cols
	}

	client := NewAPIClient(&http.Client{Timeout: cfg.Timeout}, cfg.APIBaseURL)
	if !client.TestConnection() {
		fmt.Fprintf(os.Stderr, "Could not connect to API at %s. Please ensure the API is running.\n", cfg.APIBaseURL)
		os.Exit(1)
	}

	if err := run(client, cfg, flag.Args(), *copyDirections); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func run(client *APIClient, cfg *ConsoleConfig, args []string, copyDirections bool) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command")
	}

	switch args[0] {
	case "nearby":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("usage: console nearby ID [MAX]")
		}
		maxDistance := ""
		if len(args) == 3 {
			maxDistance = args[2]
		}
		rooms, err := client.Nearby(args[1], maxDistance)
		if err != nil {
			return err
		}
		fmt.Print(RenderNearby(args[1], rooms))
		return nil

	case "rooms":
		query := ""
		if len(args) > 1 {
			query = args[1]
		}
		rooms, err := client.Rooms(query)
		if err != nil {
			return err
		}
		fmt.Print(RenderRooms(rooms))
		return nil
	}

	if len(args) != 2 {
		return fmt.Errorf("expected FROM and TO room IDs")
	}

	res, err := client.Route(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Print(RenderRoute(res, cfg.Width))

	if copyDirections {
		if err := clipboard.WriteAll(PlainDirections(res)); err != nil {
			return fmt.Errorf("failed to copy directions: %w", err)
		}
		fmt.Println(promptStyle.Render("Directions copied to clipboard."))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
