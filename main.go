package main

import (
	"log"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/joho/godotenv"

	"github.com/FelixFel1x/Notendashboard/internal/container"
	"github.com/FelixFel1x/Notendashboard/internal/router"
)

func main() {
	_ = godotenv.Load()

	c := container.New()

	r := router.New(router.RouterConfig{
		TermHandler:        c.TermContainer.Handler,
		UnitHandler:        c.UnitContainer.Handler,
		ProgramGoalHandler: c.ProgramGoalContainer.Handler,
		DashboardHandler:   c.EvaluationContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.NewV2(r).ProxyWithContext)
		return
	}

	addr := ":" + c.Config.Port
	log.Printf("listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, r))
}
