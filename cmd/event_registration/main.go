package main

import (
	"fmt"
	"os"

	"github.com/stpnv0/EventRegistration/internal/app"
	"github.com/stpnv0/EventRegistration/internal/config"
)

func main() {
	application, err := app.New(config.MustLoad())
	if err != nil {
		fmt.Fprintf(os.Stderr, "event registration init: %v\n", err)
		os.Exit(1)
	}

	if err = application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "event registration: %v\n", err)
		os.Exit(1)
	}
}
