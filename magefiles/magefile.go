//go:build mage

package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	modulePath = "github.com/alexiusacademia/acibeam"
	binPath    = "bin/acibeam"
)

// Default target - build the binary
var Default = Build

// Build builds the acibeam binary with version information
func Build() error {
	mg.Deps(Vet)

	ldflags := fmt.Sprintf("-s -w -X '%[1]s/internal/version.Version=%[2]s' -X '%[1]s/internal/version.GitCommit=%[3]s' -X '%[1]s/internal/version.BuildTime=%[4]s'",
		modulePath, gitVersion(), gitCommit(), time.Now().UTC().Format(time.RFC3339))

	fmt.Println("Building acibeam...")
	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binPath, ".")
}

// Test runs all tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "-count=1", "./...")
}

// Cover writes a coverage profile to coverage.out
func Cover() error {
	return sh.RunV("go", "test", "-coverprofile=coverage.out", "./...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning...")
	if err := os.RemoveAll("bin"); err != nil {
		return err
	}
	return sh.Rm("coverage.out")
}

func gitVersion() string {
	out, err := sh.Output("git", "describe", "--tags", "--always", "--dirty", "--match=v*")
	if err != nil {
		return "dev"
	}
	return strings.TrimPrefix(out, "v")
}

func gitCommit() string {
	out, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		return "unknown"
	}
	return out
}
