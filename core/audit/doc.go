// Package audit writes a human readable run log next to the feed.
package audit
