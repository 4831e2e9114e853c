// Package models defines the records exchanged with the Jabuspark API.
//
// Only fields the client reads are typed. The backend is a PHP application
// that is not consistent about numeric types, so identifiers use FlexID,
// which accepts both JSON numbers and strings.
package models
