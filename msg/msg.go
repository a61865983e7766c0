// Package msg defines the tea.Msg types exchanged between the member list
// host and its background commands. It imports no UI packages.
package msg

import "github.com/jcikl/jcikl-member-app-sub001/dataset"

// -- Dataset loading --

// DatasetLoaded carries a fresh snapshot for the query that produced it.
// Seq lets the host drop results of searches that were superseded.
type DatasetLoaded struct {
	Seq     int
	Query   dataset.Query
	Dataset dataset.Dataset
}

// LoadFailed reports a listing error.
type LoadFailed struct {
	Seq   int
	Query dataset.Query
	Err   error
}
