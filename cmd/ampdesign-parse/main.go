// cmd/ampdesign-parse/main.go
package main

import (
	"ampdesign/internal/appshell"
	"ampdesign/internal/parseapp"
)

func main() {
	appshell.Main(parseapp.RunContext)
}
