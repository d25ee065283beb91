package main

import (
	"os"

	"github.com/Iron-Ham/mobilepane/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
