// Package file provides a filesystem-backed Source for the greina pipeline.
//
// The source holds only a cleaned path; the file is read inside each Fetch
// call and the handle is released before Fetch returns, on every exit path.
// Nothing is cached: each pipeline run sees the file as it is at that moment.
//
// Usage:
//
//	src := file.New("/etc/app/config.yaml")
//	doc, err := greina.Load(src, expand.OS(), nil)
//
// Error Handling:
//   - Fetch returns an error if the file is missing, unreadable, or a directory
//   - Errors include the path for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
