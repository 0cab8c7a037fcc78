/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/Aryan1212a/TripSync/cmd"

func main() {
	cmd.Execute()
}
