package main

import (
	"context"
	"os"

	"github.com/fastygo/planner/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}
