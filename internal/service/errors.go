package service

import "errors"

// Business-rule errors. Handlers match these with errors.Is; error text is
// never inspected.
var (
	// accounts / sessions
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrProfileNotFound     = errors.New("profile not found")

	// availability
	ErrInvalidTimeRange = errors.New("slot end time must be after start time")
	ErrInvalidTime      = errors.New("time must be HH:MM")
	ErrPastDate         = errors.New("cannot declare availability on a past date")
	ErrSlotOverlap      = errors.New("slot overlaps an existing slot")
	ErrNoSlots          = errors.New("no slots given")

	// bonding
	ErrStudentNotFound   = errors.New("no student with that exact name or email")
	ErrAlreadyBonded     = errors.New("already bonded with this student")
	ErrRequestPending    = errors.New("a bond request is already pending")
	ErrPreviouslyDenied  = errors.New("previous bond request was denied")
	ErrRequestNotFound   = errors.New("bond request not found")
	ErrNotRequestOwner   = errors.New("bond request belongs to another student")
	ErrRequestNotPending = errors.New("bond request is not pending")

	// ratings
	ErrInvalidRating = errors.New("rating values must be between 1 and 5")
	ErrNotBonded     = errors.New("not bonded with this student")
	ErrForbidden     = errors.New("not allowed")

	// tutors
	ErrTutorNotFound        = errors.New("tutor not found")
	ErrUnknownQualification = errors.New("unknown standard qualification for subject")
)
