package osproxy

import (
	"os"
)

// OsProxy defines the subset of os package functions the transfer code touches.
// Add more methods as you need them.
type OsProxy interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (*os.File, error)
	Create(name string) (*os.File, error)
	MkdirAll(path string, perm os.FileMode) error
	Remove(name string) error
}

// RealOS is the default implementation that delegates to the real os package.
type RealOS struct{}

func (RealOS) Stat(name string) (os.FileInfo, error)        { return os.Stat(name) }           //nolint:revive
func (RealOS) Open(name string) (*os.File, error)           { return os.Open(name) }           //nolint:revive
func (RealOS) Create(name string) (*os.File, error)         { return os.Create(name) }         //nolint:revive
func (RealOS) MkdirAll(path string, perm os.FileMode) error { return os.MkdirAll(path, perm) } //nolint:revive
func (RealOS) Remove(name string) error                     { return os.Remove(name) }         //nolint:revive
