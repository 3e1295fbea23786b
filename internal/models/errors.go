package models

import "errors"

// Error kinds reported by mutations and reports. Test with errors.Is.
var (
	ErrUnknownEntity     = errors.New("unknown entity")
	ErrUnknownCampaign   = errors.New("unknown campaign")
	ErrDuplicateEntity   = errors.New("duplicate entity")
	ErrDuplicateCampaign = errors.New("duplicate campaign")
	ErrInvalidEntity     = errors.New("invalid entity")
	ErrInvalidCampaign   = errors.New("invalid campaign")
	ErrInvalidActivity   = errors.New("invalid activity")
	ErrStoreUnavailable  = errors.New("store unavailable")
)

// IsDomainError reports whether err carries one of the domain kinds above,
// as opposed to a storage failure or an unclassified error.
func IsDomainError(err error) bool {
	for _, kind := range []error{
		ErrUnknownEntity, ErrUnknownCampaign,
		ErrDuplicateEntity, ErrDuplicateCampaign,
		ErrInvalidEntity, ErrInvalidCampaign, ErrInvalidActivity,
	} {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
