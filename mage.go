//go:build mage

package main

import (
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	jetOutput          = "gen"
	sqliteFileLocation = "darts.sqlite"
	serverBin          = "./bin/server"
	serverConfigPath   = "configs/server.toml"
)

const (
	toolsDir     = "tools/"
	toolsModfile = toolsDir + "go.mod"
	toolsBinDir  = toolsDir + "bin/"
	lintTool     = toolsBinDir + "golangci-lint"
	jetTool      = toolsBinDir + "jet"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds server binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-o", serverBin, "./cmd")
}

// Run starts server
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin, "-config", serverConfigPath)
}

// Cert issues a self-signed certificate and key for serving over HTTPS
func Cert() error {
	return sh.Run("go", "run", "./cmd/certgen")
}

// Migrate applies the embedded migrations to the local database
func Migrate() error {
	mg.Deps(Build)
	return sh.RunWith(map[string]string{
		"DARTS_SQLITE_FILE": sqliteFileLocation,
	}, serverBin, "-config", serverConfigPath, "-migrate")
}

// GenJet regenerates gen/model and gen/table from a migrated database
func GenJet() error {
	mg.Deps(Migrate, buildJetTool)
	if err := os.RemoveAll(jetOutput); err != nil {
		return err
	}
	return sh.Run(jetTool, "-source", "sqlite", "-dsn", sqliteFileLocation, "-path", jetOutput)
}

func buildJetTool() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "build", "-modfile", toolsModfile, "-o", jetTool, "github.com/go-jet/jet/v2/cmd/jet")
}

func Lint() error {
	mg.Deps(buildLintTool)
	return sh.Run(lintTool, "run", "./...")
}

func buildLintTool() error {
	return sh.Run(
		"go", "build",
		"-modfile", toolsModfile,
		"-o", lintTool,
		"github.com/golangci/golangci-lint/cmd/golangci-lint",
	)
}

// Test runs unit and integration tests
func Test() error {
	return sh.RunWith(map[string]string{
		"CGO_ENABLED": "1",
	}, "go", "test", "-race", "./...")
}
