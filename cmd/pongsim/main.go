package main

import (
	"fmt"
	"os"

	"pongsim/internal/app"
	"pongsim/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pongsim [options]                Play a match against the AI")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --difficulty <tier>   beginner|intermediate|expert|unbeatable|adaptive")
	fmt.Fprintln(os.Stderr, "  --ball-speed <0-1>    Ball speed scalar (default: 0.5)")
	fmt.Fprintln(os.Stderr, "  --sensitivity <0-1>   Paddle sensitivity scalar (default: 0.5)")
	fmt.Fprintln(os.Stderr, "  --points <n>          Points to win (default: 10)")
	fmt.Fprintln(os.Stderr, "  --model <url>         Inference server (ws://host:port/infer)")
	fmt.Fprintln(os.Stderr, "  --seed <n>            Random seed, 0 = time-based")
	fmt.Fprintln(os.Stderr, "  --mute                Disable sound")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pongsim --difficulty adaptive")
	fmt.Fprintln(os.Stderr, "  pongsim --difficulty expert --model ws://localhost:7777/infer")
}
