package service

// TextSanitizer strips markup from chat text before it leaves the process.
type TextSanitizer interface {
	Sanitize(text string) string
}
