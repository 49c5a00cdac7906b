// Package auth issues and validates the bearer tokens that guard the
// gateway's write endpoints.
//
// There are no user accounts. An operator mints a token with the CLI
// (`easycontrols token <subject>`), signed with the configured JWT secret,
// and presents it as `Authorization: Bearer <token>`. Reads are public on
// the LAN; writes and forced polls need a token whose role grants them.
package auth
