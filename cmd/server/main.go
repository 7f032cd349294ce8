package main

import (
	"fmt"

	"github.com/mlodato/surfrank/server"
	"github.com/mlodato/surfrank/utils"
)

func main() {
	env := utils.ReadEnvVars()
	utils.InitLog(env.ServerLog)
	e := server.New(env)
	utils.FailOnError("Server stopped", e.Start(fmt.Sprintf(":%d", env.Port)))
}
