// Package file stores OneTimePaste settings in a TOML file, by default
// ~/.onetimepaste/config.toml.
//
// Settings are addressed by dotted keys such as "alerts.play_sound"; the
// first segment becomes a TOML table. Every Set rewrites the file with
// mode 0600.
package file
