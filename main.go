package main

import "github.com/artem-streltsov/esmeralde-bot/cli"

func main() {
	cli.Execute()
}
