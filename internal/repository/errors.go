// Package repository contains data access logic separated from HTTP
// handlers.  Each entity gets its own repository struct wrapping the shared
// *sql.DB pool.  Sentinel errors defined here let handlers distinguish a
// missing row from a driver failure without inspecting error strings.
package repository

import "errors"

// ErrUserNotFound is returned when no account matches a login email.
var ErrUserNotFound = errors.New("user not found")

// ErrStudentNotFound is returned when a student id has no row.
var ErrStudentNotFound = errors.New("student not found")

// ErrCourseNotFound is returned when a course id has no row.
var ErrCourseNotFound = errors.New("course not found")

// ErrAssignmentNotFound is returned when an assignment id has no row.
var ErrAssignmentNotFound = errors.New("assignment not found")

// ErrQuizNotFound is returned when a quiz id has no row.
var ErrQuizNotFound = errors.New("quiz not found")
