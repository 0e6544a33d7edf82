/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/raccoonbooks/biblio-cli/cmd"

func main() {
	cmd.Execute()
}
