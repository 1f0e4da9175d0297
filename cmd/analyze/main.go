package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joelkehle/startup-navigator/internal/ideaanalysis"
)

func main() {
	idea := flag.String("idea", "", "Startup idea text")
	ideaFile := flag.String("idea-file", "", "Path to a file containing the startup idea")
	timeout := flag.Duration("timeout", 2*time.Minute, "Analysis timeout")
	flag.Parse()

	text := *idea
	if *ideaFile != "" {
		b, err := os.ReadFile(*ideaFile)
		if err != nil {
			log.Fatalf("read idea file: %v", err)
		}
		text = string(b)
	}
	apiKey := strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY"))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	ctx, cancelTimeout := context.WithTimeout(ctx, *timeout)
	defer cancelTimeout()

	res, err := ideaanalysis.Analyze(ctx, apiKey, text)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("analysis %s completed in %s", res.ID, res.Elapsed.Round(time.Millisecond))
	fmt.Println(res.Markdown)
}
