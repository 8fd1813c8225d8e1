package main

import (
	"log"
	"os"

	"github.com/vexfind/vexfind/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
