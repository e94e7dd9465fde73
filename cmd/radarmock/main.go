// Command radarmock serves the traffic monitoring mock API.
package main

import "github.com/sqlutions-fatec/radarmock/pkg/cli"

func main() {
	cli.Execute()
}
