package client

import "github.com/atotto/clipboard"

type systemClipboard struct{}

// NewSystemClipboard returns the clipboard of the desktop session.
func NewSystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errClipboardUnsupported
	}
	return clipboard.WriteAll(text)
}
