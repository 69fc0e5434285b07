package main

import "github.com/finance-tracker/backend/internal/commands"

func main() {
	commands.Execute()
}
