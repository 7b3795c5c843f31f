package main

import "github.com/pkg/errors"

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
