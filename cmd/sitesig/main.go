package main

import (
	cmd "github.com/sitesig/sitesig/internal/cli"
)

func main() {
	cmd.Execute()
}
