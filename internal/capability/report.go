package capability

import "errors"

const (
	ReasonContextCreationFailed = "context creation failed"
	ReasonNotAvailable          = "not available"
	ReasonLowEndMobile          = "low-end mobile device"
)

var (
	// ErrContextUnavailable indicates both context versions returned nothing.
	ErrContextUnavailable = errors.New("capability: " + ReasonContextCreationFailed)

	// ErrProbeFailed indicates context creation raised an error.
	ErrProbeFailed = errors.New("capability: " + ReasonNotAvailable)

	// ErrLowEndMobile indicates a mobile device classified as low tier.
	ErrLowEndMobile = errors.New("capability: " + ReasonLowEndMobile)
)

// Report is the outcome of a capability probe. RenderVersion is 0 when no
// context could be created.
type Report struct {
	Supported     bool   `json:"supported" yaml:"supported"`
	Tier          Tier   `json:"tier" yaml:"tier"`
	RenderVersion int    `json:"render_version,omitempty" yaml:"render_version,omitempty"`
	IsMobile      bool   `json:"is_mobile" yaml:"is_mobile"`
	Reason        string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Renderer      string `json:"renderer,omitempty" yaml:"renderer,omitempty"`
}

// Err maps the report's reason back to its sentinel error, or nil when the
// device is supported.
func (r Report) Err() error {
	switch r.Reason {
	case ReasonContextCreationFailed:
		return ErrContextUnavailable
	case ReasonNotAvailable:
		return ErrProbeFailed
	case ReasonLowEndMobile:
		return ErrLowEndMobile
	}
	return nil
}
