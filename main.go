package main

import (
	"github.com/reshipi-labs/reshipi-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
