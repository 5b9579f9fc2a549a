// Package testutils provides helpers shared by tests across packages:
// HTTP response assertions for the API's error bodies and small file and
// resource helpers.
//
// It is imported only from _test.go files.
package testutils
