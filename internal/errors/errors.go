package errors

import "errors"

// Custom error types for the portfolio application

// ErrProjectNotFound is returned when a project id doesn't exist in the database
var ErrProjectNotFound = errors.New("project not found")

// ErrMessageNotFound is returned when a contact message id doesn't exist in the database
var ErrMessageNotFound = errors.New("contact message not found")

// ErrInvalidCategory is returned when a project category is outside the known set
var ErrInvalidCategory = errors.New("invalid project category")
