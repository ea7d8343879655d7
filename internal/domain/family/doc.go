// Package family models the account side of the tracker: users, the babies
// they track and per-user settings.
package family
