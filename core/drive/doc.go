// Package drive resolves Google Drive folders and files for asset uploads.
//
// Feed rows may point their asset at a Drive folder (a URL with /folders/{id} or a
// bare id) and name the file inside it. ReadFileByName performs that lookup and
// returns the bytes. Missing folders and files are reported as ErrNotFound.
package drive
