package main

import (
	"jobboard_backend/internal/app"
	"jobboard_backend/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
