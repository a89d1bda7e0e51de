package errs

// Sentinels shared by the command and query sides
var (
	// Room errors
	ErrRoomNotFound      = New("room not found")
	ErrDuplicateRoomCode = New("duplicate room code")

	// Booking errors
	ErrBookingNotFound = New("booking not found")
	ErrBookingConflict = New("room already booked on this date")

	// User errors
	ErrUserNotFound      = New("user not found")
	ErrDuplicateUsername = New("username already exists")

	// Authorization errors
	ErrForbidden = New("forbidden")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
