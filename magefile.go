//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "uccharana"

var Default = Build

// Build compiles the uccharana binary
func Build() error {
	fmt.Println("Building", binaryName, "...")
	return sh.RunV("go", "build", "-o", binaryName, "./cmd/uccharana")
}

// Test runs all tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Install builds and installs the binary to GOPATH/bin
func Install() error {
	return sh.RunV("go", "install", "./cmd/uccharana")
}

// Clean removes the built binary and generated output files
func Clean() error {
	for _, path := range []string{binaryName, "pronunciations.json"} {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
