package main

import (
	"context"
	"log"
	"os"

	"github.com/Rakhulsr/go-catalog/app/cmd"
	"github.com/Rakhulsr/go-catalog/app/configs"
)

func main() {
	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli(env)
		return
	}

	if err := cmd.Serve(context.Background(), env); err != nil {
		log.Fatal(err)
	}
}
