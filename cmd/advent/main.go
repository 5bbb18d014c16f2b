package main

import (
	"github.com/livp123/advent/cmd/advent/commands"

	// Register puzzle solvers
	// 注册谜题求解器
	_ "github.com/livp123/advent/internal/puzzles/y2024"
	_ "github.com/livp123/advent/internal/puzzles/y2025"
)

func main() {
	commands.Execute()
}
