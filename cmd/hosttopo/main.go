/*
Copyright © 2025 Hosttopo Authors
SPDX-License-Identifier: Apache-2.0
*/
package main

import "github.com/hosttopo/hosttopo/pkg/cli"

func main() {
	cli.Execute()
}
