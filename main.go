package main

import "nathanbeddoewebdev/porkbun-ddns/cmd"

func main() {
	cmd.Execute()
}
