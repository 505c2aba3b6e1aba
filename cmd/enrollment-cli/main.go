package main

import (
	"context"

	"enrollment-backend/cmd/enrollment-cli/commands"
	"enrollment-backend/lib/telemetry"
	"enrollment-backend/lib/util/serviceutil"
)

func main() {
	telemetry.InitSlog(false)
	tel, err := telemetry.SetupFromEnv(context.Background(), "enrollment-cli")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())

	commands.ExecuteContext(serviceutil.SignalContext())
}
