// cmd/ampdesign/main.go
package main

import (
	"ampdesign/internal/app"
	"ampdesign/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
