package domain

import "fmt"

// FetchError reports a failure while retrieving or parsing a URL.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ClassificationError reports a failed language model call.
type ClassificationError struct {
	Provider string
	Err      error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}
