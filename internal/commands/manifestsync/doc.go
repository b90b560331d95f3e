// Package manifestsync provides the "sigscan sync" command which keeps
// manifest.json aligned with the identity fields of the project's package
// descriptor (package.json, Cargo.toml, pyproject.toml or composer.json),
// backing the previous manifest up to manifest-backup.json before any rewrite.
package manifestsync
