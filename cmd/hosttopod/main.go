package main

import (
	"log"

	"github.com/hosttopo/hosttopo/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
