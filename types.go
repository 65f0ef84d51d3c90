package main

import "errors"

// ErrMissingField is returned for records that lack title, tags or body
var ErrMissingField = errors.New("missing field")

// ErrMalformedRecord is returned for array elements that are not objects or
// whose known keys hold values of the wrong type
var ErrMalformedRecord = errors.New("malformed record")

// Tag is a single entry of a record's tag list
type Tag struct {
	Name string
}

// InputRecord represents one element of the input JSON array. Pointer fields
// distinguish absent keys from empty values.
type InputRecord struct {
	Title *string
	Tags  *[]Tag
	Body  *string

	invalid error // set when the element could not be decoded
}

// Article is the data handed to the front matter template
type Article struct {
	Title  string
	Topics []string
	Body   string
}

// ProcessingStatus represents the outcome status of processing a record
type ProcessingStatus string

const (
	StatusSuccess ProcessingStatus = "success"
	StatusError   ProcessingStatus = "error"
)

// ProcessingResult tracks the outcome of processing each record
type ProcessingResult struct {
	Index    int
	Title    string
	Status   ProcessingStatus
	Filename string
	Error    error
}
