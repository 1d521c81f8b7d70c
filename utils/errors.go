// Copyright (c) 2020-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package utils

import "github.com/pkg/errors"

var ErrCallInFlight = errors.New("a call is already in progress")
var ErrForbidden = errors.New("forbidden")
var ErrInvalid = errors.New("invalid input")
var ErrNotFound = errors.New("not found")
var ErrTimeout = errors.New("timed out")
var ErrUnauthorized = errors.New("unauthorized")

// NewError wraps source with an optional message. args[0] may be a format
// string followed by its arguments, or an error whose text becomes the
// message. errors.Cause of the result is source.
func NewError(source error, args ...interface{}) error {
	if len(args) == 0 {
		return source
	}
	s, _ := args[0].(string)
	err, _ := args[0].(error)

	switch {
	case s != "":
		return errors.Wrapf(source, s, args[1:]...)
	case err != nil:
		return errors.Wrap(source, err.Error())
	default:
		return source
	}
}

func NewForbiddenError(args ...interface{}) error    { return NewError(ErrForbidden, args...) }
func NewInvalidError(args ...interface{}) error      { return NewError(ErrInvalid, args...) }
func NewNotFoundError(args ...interface{}) error     { return NewError(ErrNotFound, args...) }
func NewTimeoutError(args ...interface{}) error      { return NewError(ErrTimeout, args...) }
func NewUnauthorizedError(args ...interface{}) error { return NewError(ErrUnauthorized, args...) }
