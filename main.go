package main

import (
	_ "github.com/joho/godotenv/autoload"

	"github.com/Zachkp/zach-dev-api/cmd"
)

func main() {
	cmd.Execute()
}
