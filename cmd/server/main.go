// Package main - Entry point for the valve-sizing API server
package main

import (
	"flag"
	"fmt"
	"log"

	"valve-sizing/api"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	flag.Parse()

	apiServer := api.NewServer(version)

	fmt.Printf("Control Valve Sizing Server v%s\n", version)
	fmt.Printf("  API: http://localhost%s\n", *addr)

	if err := apiServer.ListenAndServe(*addr); err != nil {
		log.Fatal(err)
	}
}
