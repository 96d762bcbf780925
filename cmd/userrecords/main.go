package main

import (
	"context"
	"log"
	"os"

	"user-records-api/internal"
)

// I focused on implementing more important features and left this list for later.
// todo: Implement:
// todo: Linters(GolangCiLint)

func main() {
	ctx := context.Background()

	app, err := internal.NewApp(ctx)
	if err != nil {
		log.Fatalf("init app failed: %v", err)
	}
	defer app.Close()

	app.InitControllers()

	if err = app.Run(ctx); err != nil {
		app.Logger().Sugar().Errorf("userrecordsapi stopped with error: %v", err)
		os.Exit(1)
	}
}
