package main

import "listinglab/cmd/dashboard/cmd"

// go run ./cmd/dashboard describe vendas.xlsx
// go run ./cmd/dashboard suggest vendas.csv
func main() {
	cmd.Execute()
}
