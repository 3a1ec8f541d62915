package main

import (
	"log"
	"os"
)

func main() {
	log.SetOutput(os.Stdout)

	if err := Execute(); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}
