package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"job-catalog/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		logrus.Errorf("job-catalog: %v", err)
		os.Exit(1)
	}
}
