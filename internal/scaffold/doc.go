// Package scaffold runs one project initialization from a fully decided
// Plan.
//
// The order is fixed: directories are ensured first so the root can be
// canonicalized, then the owned key set is derived from the prefix, the
// env file is reconciled, derived files and the license are written when
// absent, the repository is initialized, the provenance record is written
// once, and finally the initial commit is made.
//
// Errors fall into three classes. Filesystem failures on directories, the
// env file, derived files or the license abort the run. Version-control
// failures become warnings. Provenance failures are logged and ignored.
package scaffold
