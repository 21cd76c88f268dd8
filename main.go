package main

import (
	"os"

	"github.com/Benchkram/errz"
	"github.com/qianniaoge/watchman/cmd"
	"github.com/qianniaoge/watchman/config"
)

func main() {
	errz.Fatal(config.Load(), "Failed to load watchman's config")

	os.Exit(cmd.Execute())
}
