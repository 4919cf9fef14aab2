// Command nonogram is the CLI entry point: solve and render nonogram
// puzzles from the terminal.
package main

func main() {
	Execute()
}
