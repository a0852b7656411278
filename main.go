package main

import (
	"github.com/joho/godotenv"

	"eventpass-tui/cmd"
)

func main() {
	// Optional .env in the working directory for EVENTPASS_* overrides.
	_ = godotenv.Load()
	cmd.Execute()
}
