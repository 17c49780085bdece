// Package main is the command-line client of the codemasterpiece content API.
package main

func main() {
	Execute()
}
