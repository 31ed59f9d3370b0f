// Package common holds helpers shared by several services.
//
// It provides the system environment probe (wall clock, hostname, runtime
// descriptor) that the packager records into generated artifacts.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
