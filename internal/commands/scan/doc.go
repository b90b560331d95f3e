// Package scan provides the "sigscan scan" command which walks a directory
// tree depth-first and reports every line containing a signature token,
// optionally extending the token set through an interactive prompt first.
package scan
