// Package profiles holds the generator's read-only, startup-loaded data
// tables: RoomProfile, CaveProfile, PitProfile and Vault. Tables ship as
// embedded YAML and can be overridden by loading a replacement file via the
// LoadTables/LoadTablesFromBytes pair.
//
// Builder functions cannot round-trip through YAML, so each profile names
// a builder *kind* (a small closed enum) rather than embedding a function
// pointer: the director matches on the kind and invokes the right builder.
package profiles
