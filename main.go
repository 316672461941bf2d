package main

import "github.com/hrcore/hr-management/cmd"

func main() {
	cmd.Execute()
}
