// Package google loads OAuth credentials for the Sheets, Drive and DV360 APIs.
package google
