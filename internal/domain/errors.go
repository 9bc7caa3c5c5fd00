package domain

import "errors"

var (
	ErrIllegalMove    = errors.New("illegal move")
	ErrAlreadyFilled  = errors.New("model has already been filled")
	ErrCheeseNotFound = errors.New("cheese not found")
	ErrTourNotFound   = errors.New("tour not found")
)
