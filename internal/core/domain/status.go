package domain

// Status is the download state of a single video.
type Status string

const (
	StatusPending           Status = "pending"
	StatusDownloaded        Status = "downloaded"
	StatusError             Status = "error"
	StatusErrorAccessDenied Status = "error_access_denied"
	StatusErrorToolMissing  Status = "error_tool_missing"
	StatusErrorUnexpected   Status = "error_unexpected"
	StatusCancelled         Status = "cancelled"
)

// statusLabels are the values written to the D/N/E column of the status export.
var statusLabels = map[Status]string{
	StatusPending:           "No",
	StatusDownloaded:        "Downloaded",
	StatusError:             "Error",
	StatusErrorAccessDenied: "Error (Access Denied)",
	StatusErrorToolMissing:  "Error (yt-dlp not found)",
	StatusErrorUnexpected:   "Error (Unexpected)",
	StatusCancelled:         "Cancelled",
}

func (s Status) String() string {
	return string(s)
}

// Label returns the spreadsheet label for s.
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsTerminal returns true once a video has been processed, successfully or not.
func (s Status) IsTerminal() bool {
	return s != StatusPending && s != ""
}

// IsFailure returns true for every error subtype.
func (s Status) IsFailure() bool {
	switch s {
	case StatusError, StatusErrorAccessDenied, StatusErrorToolMissing, StatusErrorUnexpected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a ledger entry may move from s to target.
// Entries start Pending and are mutated exactly once.
func (s Status) CanTransitionTo(target Status) bool {
	return s == StatusPending && target.IsTerminal()
}
