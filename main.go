package main

import (
	"os"

	"github.com/fundledger/backend/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
