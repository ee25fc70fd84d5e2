package main

import "webui-strings/internal/cli"

func main() {
	cli.Execute()
}
