package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

var Version = "dev"

func main() {
	rootCmd := newRootCmd(newApp(os.Stdout, os.Stderr))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
