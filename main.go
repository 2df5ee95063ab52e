// SPDX-License-Identifier: MPL-2.0

package main

import "github.com/stylereg/stylereg/cmd/stylereg"

func main() {
	cmd.Execute()
}
