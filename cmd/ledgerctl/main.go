package main

import "github.com/amirhossein-jamali/wallet-ledger/cmd/ledgerctl/cmd"

func main() {
	cmd.Execute()
}
