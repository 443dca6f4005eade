package client

import "errors"

var (
	errClipboardUnsupported = errors.New("clipboard is not supported on this system")
	errNoLookupTarget       = errors.New("either --url or --platform is required")
	errUnknownSite          = errors.New("url belongs to no supported platform")
)
