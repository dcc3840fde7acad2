// Package logo sets the icon every new creative carries.
//
// The logo media id lives in cell B3 of the Config sheet. It can be copied
// from an existing creative's icon, uploaded from a public URL or uploaded
// from a Drive file.
package logo
