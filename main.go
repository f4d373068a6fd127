package main

import (
	"os"

	"github.com/udistrital/observatorio_mid/internal/cli"

	"github.com/beego/beego/v2/core/logs"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logs.Error("%v", err)
		os.Exit(1)
	}
}
