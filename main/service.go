package main

import (
	"flag"

	"github.com/apex/log"

	"roadwatch/devserver"
)

func main() {
	flag.Parse()
	log.Info("Hello!")
	devserver.StartService()
	log.Info("Bye!")
}
