// Package cavern builds organic, open cave levels with a cellular
// automaton: seed the interior with random noise, smooth it for a handful
// of generations with a birth/survive rule, cull anything too small to
// matter, and bridge what's left into one connected region.
package cavern
