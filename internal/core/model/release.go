package model

// Release is a published version of the client.
type Release struct {
	Version string
	URL     string
}
