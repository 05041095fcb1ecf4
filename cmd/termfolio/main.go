package main

import (
	"context"

	"github.com/kcaldas/termfolio/cmd/cli"
)

func main() {
	cli.Execute(context.Background())
}
