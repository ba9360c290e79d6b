// Package testutil provides the shared annotation-database fixture used
// across package tests.
package testutil
