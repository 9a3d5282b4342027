// main.go
package main

import (
	"movie-review/cmd"
)

func main() {
	cmd.Execute()
}
